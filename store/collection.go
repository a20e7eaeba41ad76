// Package store implements the in-memory entity collection every domain
// (patients, staff, invoices, ...) is held in.
//
// A Collection is seeded once on activation after a fixed delay, assigns
// integer ids as max+1, recomputes derived fields on every write and swaps
// in a fresh slice on each mutation so snapshots handed out earlier never
// change underneath their readers. Records returned by Get and List are
// copies made with the Clone hook.
package store

import (
	"context"
	"errors"
	"reflect"
	"slices"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrNotFound is returned by Update when no record has the id.
var ErrNotFound = errors.New("record not found")

// Options wires a Collection to its record type.
type Options[T any] struct {
	// Name labels logs and metrics.
	Name string
	// ID and SetID read and assign the integer id.
	ID    func(T) int
	SetID func(*T, int)
	// Seed supplies the initial rows. Nil means an empty collection.
	Seed func(ctx context.Context) ([]T, error)
	// Delay is waited before Seed runs.
	Delay time.Duration
	// Clock defaults to time.Now.
	Clock func() time.Time
	// Prepare fills store-computed fields on Add (timestamps, defaults).
	Prepare func(rec *T, now time.Time)
	// Derive recomputes derived fields; it runs on every write and on seeded rows.
	Derive func(rec *T, now time.Time)
	// Clone deep-copies a record before it is mutated. Needed when T holds slices or pointers.
	Clone func(T) T
	// Match reports whether a record matches a lowercased, trimmed query.
	Match  func(rec T, q string) bool
	Logger *zap.Logger
}

// State is the activation status of a collection.
type State struct {
	Loading bool
	Loaded  bool
	Err     error
}

type Collection[T any] struct {
	opts Options[T]

	mu        sync.RWMutex
	items     []T
	loading   bool
	loaded    bool
	err       error
	observers []func([]T)
	version   uint64

	// notifyMu orders observer delivery; delivered is the last version handed out.
	notifyMu  sync.Mutex
	delivered uint64

	once sync.Once
	done chan struct{}
}

func New[T any](opts Options[T]) *Collection[T] {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Collection[T]{opts: opts, done: make(chan struct{})}
}

func (c *Collection[T]) Name() string { return c.opts.Name }

// OnChange registers fn to receive every new snapshot after a mutation or load.
// fn runs outside the collection lock and may read from the collection, but
// must not write to it. Deliveries never go backwards: a snapshot older than
// one already delivered is dropped.
func (c *Collection[T]) OnChange(fn func([]T)) {
	c.mu.Lock()
	c.observers = append(c.observers, fn)
	c.mu.Unlock()
}

// Activate starts the one-time load in the background. Later calls do nothing.
// The load is detached from ctx's cancellation so an abandoned request does
// not leave the collection permanently failed.
func (c *Collection[T]) Activate(ctx context.Context) {
	c.once.Do(func() {
		c.mu.Lock()
		c.loading = true
		c.mu.Unlock()
		go c.load(context.WithoutCancel(ctx))
	})
}

// Wait activates the collection if needed and blocks until the load finished
// or ctx is done. It returns the load error, if any.
func (c *Collection[T]) Wait(ctx context.Context) error {
	c.Activate(ctx)
	select {
	case <-c.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

func (c *Collection[T]) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return State{Loading: c.loading, Loaded: c.loaded, Err: c.err}
}

func (c *Collection[T]) load(ctx context.Context) {
	defer close(c.done)

	items, err := c.fetch(ctx)

	c.mu.Lock()
	c.loading = false
	if err != nil {
		c.err = err
		c.mu.Unlock()
		c.opts.Logger.Error("load failed", zap.String("collection", c.opts.Name), zap.Error(err))
		return
	}
	now := c.opts.Clock()
	for i := range items {
		c.derive(&items[i], now)
	}
	c.items = items
	c.loaded = true
	c.publish()

	c.opts.Logger.Debug("loaded", zap.String("collection", c.opts.Name), zap.Int("records", len(items)))
}

func (c *Collection[T]) fetch(ctx context.Context) (items []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("seed panicked")
			c.opts.Logger.Error("seed panicked", zap.String("collection", c.opts.Name), zap.Any("panic", r))
		}
	}()

	if c.opts.Delay > 0 {
		t := time.NewTimer(c.opts.Delay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if c.opts.Seed == nil {
		return nil, nil
	}
	return c.opts.Seed(ctx)
}

// List returns a copy of the current records in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	for i, it := range c.items {
		out[i] = c.clone(it)
	}
	return out
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Search filters by case-insensitive substring. An empty query returns everything.
func (c *Collection[T]) Search(query string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	items := c.List()
	if q == "" || c.opts.Match == nil {
		return items
	}
	out := items[:0]
	for _, it := range items {
		if c.opts.Match(it, q) {
			out = append(out, it)
		}
	}
	return out
}

func (c *Collection[T]) Get(id int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.index(id); i >= 0 {
		return c.clone(c.items[i]), true
	}
	var zero T
	return zero, false
}

// Add assigns the next id, runs Prepare and Derive, and appends the record.
func (c *Collection[T]) Add(rec T) T {
	c.mu.Lock()
	next := 1
	for _, it := range c.items {
		if id := c.opts.ID(it); id >= next {
			next = id + 1
		}
	}
	rec = c.clone(rec)
	c.opts.SetID(&rec, next)
	now := c.opts.Clock()
	if c.opts.Prepare != nil {
		c.opts.Prepare(&rec, now)
	}
	c.derive(&rec, now)

	items := make([]T, len(c.items), len(c.items)+1)
	copy(items, c.items)
	c.items = append(items, rec)
	c.publish()
	return c.clone(rec)
}

// Update applies fn to a copy of the record with the given id and stores the
// result. The id cannot be changed by fn. If fn returns an error nothing is
// written. A missing id returns ErrNotFound and changes nothing.
func (c *Collection[T]) Update(id int, fn func(rec *T) error) (T, error) {
	var zero T

	c.mu.Lock()
	i := c.index(id)
	if i < 0 {
		c.mu.Unlock()
		return zero, ErrNotFound
	}
	rec := c.clone(c.items[i])
	if err := fn(&rec); err != nil {
		c.mu.Unlock()
		return zero, err
	}
	c.opts.SetID(&rec, id)
	c.derive(&rec, c.opts.Clock())

	items := slices.Clone(c.items)
	items[i] = rec
	c.items = items
	c.publish()
	return c.clone(rec), nil
}

// Remove deletes the record with the given id and reports whether it existed.
func (c *Collection[T]) Remove(id int) bool {
	c.mu.Lock()
	i := c.index(id)
	if i < 0 {
		c.mu.Unlock()
		return false
	}
	items := make([]T, 0, len(c.items)-1)
	items = append(items, c.items[:i]...)
	c.items = append(items, c.items[i+1:]...)
	c.publish()
	return true
}

// Refresh re-runs Derive over every record and returns how many changed.
// Statuses that depend on the current date drift otherwise.
func (c *Collection[T]) Refresh() int {
	c.mu.Lock()
	if c.opts.Derive == nil || len(c.items) == 0 {
		c.mu.Unlock()
		return 0
	}
	now := c.opts.Clock()
	items := make([]T, len(c.items))
	changed := 0
	for i, it := range c.items {
		rec := c.clone(it)
		c.opts.Derive(&rec, now)
		if !reflect.DeepEqual(rec, it) {
			changed++
		}
		items[i] = rec
	}
	if changed == 0 {
		c.mu.Unlock()
		return 0
	}
	c.items = items
	c.publish()
	return changed
}

func (c *Collection[T]) index(id int) int {
	for i, it := range c.items {
		if c.opts.ID(it) == id {
			return i
		}
	}
	return -1
}

func (c *Collection[T]) clone(rec T) T {
	if c.opts.Clone != nil {
		return c.opts.Clone(rec)
	}
	return rec
}

func (c *Collection[T]) derive(rec *T, now time.Time) {
	if c.opts.Derive != nil {
		c.opts.Derive(rec, now)
	}
}

// publish bumps the version and hands the new snapshot to the observers.
// It must be called with c.mu held and releases it.
func (c *Collection[T]) publish() {
	c.version++
	v, snap, obs := c.version, c.items, c.observers
	c.mu.Unlock()

	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	if v <= c.delivered {
		return
	}
	c.delivered = v
	notify(obs, snap)
}

func notify[T any](observers []func([]T), snap []T) {
	for _, fn := range observers {
		fn(snap)
	}
}
