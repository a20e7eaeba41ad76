// Package records owns the hospital's in-memory collections and the
// operations that span a single domain: billing, restock, the appointment
// lifecycle, discharge completion and the dashboard aggregates.
package records

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bonrecords/models"
	"bonrecords/seed"
	"bonrecords/store"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrNotFound          = store.ErrNotFound
	ErrUnknownPatient    = errors.New("unknown patient")
	ErrNoLineItems       = errors.New("invoice needs at least one line item")
	ErrInvalidLineItem   = errors.New("line item needs a description, a positive quantity and a non-negative price")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidPriority   = errors.New("invalid priority")
	ErrInvalidQuantity   = errors.New("quantity must not be negative")
	ErrInvalidStockOp    = errors.New("stock operation must be add or remove with a positive amount")
	ErrInvalidTime       = errors.New("time must look like 09:30 AM")
	ErrInvalidDate       = errors.New("dates must be YYYY-MM-DD")
	ErrInvalidTransition = errors.New("appointment cannot move to that status")
)

// DefaultTaxRate applies when Options.TaxRate is not set.
var DefaultTaxRate = decimal.RequireFromString("0.10")

type Options struct {
	Clock   func() time.Time
	Delay   time.Duration
	TaxRate decimal.NullDecimal
	Logger  *zap.Logger
	// Empty starts every collection without sample rows.
	Empty bool
}

type Repo struct {
	Patients     *store.Collection[models.Patient]
	Staff        *store.Collection[models.StaffMember]
	Inventory    *store.Collection[models.InventoryItem]
	Invoices     *store.Collection[models.Invoice]
	Appointments *store.Collection[models.Appointment]
	Discharges   *store.Collection[models.DischargeRecord]
	LabTests     *store.Collection[models.LabTest]

	clock   func() time.Time
	taxRate decimal.Decimal
	log     *zap.Logger
}

func New(opts Options) *Repo {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	rate := DefaultTaxRate
	if opts.TaxRate.Valid {
		rate = opts.TaxRate.Decimal
	}
	r := &Repo{clock: opts.Clock, taxRate: rate, log: opts.Logger}

	r.Patients = store.New(store.Options[models.Patient]{
		Name:  "patients",
		ID:    func(p models.Patient) int { return p.ID },
		SetID: func(p *models.Patient, id int) { p.ID = id },
		Seed:  source(opts.Empty, seed.Patients),
		Delay: opts.Delay, Clock: opts.Clock, Logger: opts.Logger,
		Prepare: func(p *models.Patient, now time.Time) {
			p.LastVisit = models.Date(now)
			p.Status = models.PatientActive
		},
		Clone: models.Patient.Clone,
		Match: models.Patient.Matches,
	})
	r.Staff = store.New(store.Options[models.StaffMember]{
		Name:  "staff",
		ID:    func(s models.StaffMember) int { return s.ID },
		SetID: func(s *models.StaffMember, id int) { s.ID = id },
		Seed:  source(opts.Empty, seed.Staff),
		Delay: opts.Delay, Clock: opts.Clock, Logger: opts.Logger,
		Prepare: func(s *models.StaffMember, _ time.Time) {
			if s.Status == "" {
				s.Status = models.StaffActive
			}
		},
		Match: models.StaffMember.Matches,
	})
	r.Inventory = store.New(store.Options[models.InventoryItem]{
		Name:  "inventory",
		ID:    func(i models.InventoryItem) int { return i.ID },
		SetID: func(i *models.InventoryItem, id int) { i.ID = id },
		Seed:  source(opts.Empty, seed.Inventory),
		Delay: opts.Delay, Clock: opts.Clock, Logger: opts.Logger,
		Prepare: func(i *models.InventoryItem, now time.Time) { i.LastUpdated = models.Date(now) },
		Derive:  func(i *models.InventoryItem, _ time.Time) { i.Status = models.StockStatus(i.Quantity) },
		Match:   models.InventoryItem.Matches,
	})
	r.Invoices = store.New(store.Options[models.Invoice]{
		Name:  "invoices",
		ID:    func(inv models.Invoice) int { return inv.ID },
		SetID: func(inv *models.Invoice, id int) { inv.ID = id },
		Seed:  source(opts.Empty, seed.Invoices),
		Delay: opts.Delay, Clock: opts.Clock, Logger: opts.Logger,
		Prepare: func(inv *models.Invoice, now time.Time) {
			if inv.Date == "" {
				inv.Date = models.Date(now)
			}
		},
		Derive: func(inv *models.Invoice, now time.Time) { inv.Status = models.InvoiceStatus(*inv, models.Date(now)) },
		Clone:  models.Invoice.Clone,
		Match:  models.Invoice.Matches,
	})
	r.Appointments = store.New(store.Options[models.Appointment]{
		Name:  "appointments",
		ID:    func(a models.Appointment) int { return a.ID },
		SetID: func(a *models.Appointment, id int) { a.ID = id },
		Seed:  source(opts.Empty, seed.Appointments),
		Delay: opts.Delay, Clock: opts.Clock, Logger: opts.Logger,
		Prepare: func(a *models.Appointment, now time.Time) {
			if a.Date == "" {
				a.Date = models.Date(now)
			}
		},
		Derive: func(a *models.Appointment, _ time.Time) { a.Status = models.AppointmentStatus(*a) },
		Match:  models.Appointment.Matches,
	})
	r.Discharges = store.New(store.Options[models.DischargeRecord]{
		Name:  "discharges",
		ID:    func(d models.DischargeRecord) int { return d.ID },
		SetID: func(d *models.DischargeRecord, id int) { d.ID = id },
		Seed:  source(opts.Empty, seed.Discharges),
		Delay: opts.Delay, Clock: opts.Clock, Logger: opts.Logger,
		Derive: func(d *models.DischargeRecord, _ time.Time) { d.Status = models.DischargeStatus(*d) },
		Match:  models.DischargeRecord.Matches,
	})
	r.LabTests = store.New(store.Options[models.LabTest]{
		Name:  "lab_tests",
		ID:    func(l models.LabTest) int { return l.ID },
		SetID: func(l *models.LabTest, id int) { l.ID = id },
		Seed:  source(opts.Empty, seed.LabTests),
		Delay: opts.Delay, Clock: opts.Clock, Logger: opts.Logger,
		Prepare: func(l *models.LabTest, now time.Time) {
			l.OrderedDate = models.Date(now)
			if l.Status == "" {
				l.Status = models.LabPending
			}
			if l.Priority == "" {
				l.Priority = models.PriorityRoutine
			}
		},
		Match: models.LabTest.Matches,
	})
	return r
}

func source[T any](empty bool, rows func() []T) func(context.Context) ([]T, error) {
	if empty {
		return nil
	}
	return func(context.Context) ([]T, error) { return rows(), nil }
}

func (r *Repo) TaxRate() decimal.Decimal { return r.taxRate }

// checkDates rejects any non-empty date that is not YYYY-MM-DD.
func checkDates(dates ...string) error {
	for _, d := range dates {
		if d != "" && !models.ValidDate(d) {
			return ErrInvalidDate
		}
	}
	return nil
}

func (r *Repo) today() string { return models.Date(r.clock()) }

type collection interface {
	Name() string
	Activate(ctx context.Context)
	Wait(ctx context.Context) error
	Len() int
	Refresh() int
}

func (r *Repo) all() []collection {
	return []collection{r.Patients, r.Staff, r.Inventory, r.Invoices, r.Appointments, r.Discharges, r.LabTests}
}

// Activate starts loading every collection without waiting.
func (r *Repo) Activate(ctx context.Context) {
	for _, c := range r.all() {
		c.Activate(ctx)
	}
}

// WarmUp activates every collection and waits until all of them loaded.
func (r *Repo) WarmUp(ctx context.Context) error {
	r.Activate(ctx)
	for _, c := range r.all() {
		if err := c.Wait(ctx); err != nil {
			return fmt.Errorf("load %s: %w", c.Name(), err)
		}
	}
	return nil
}

// RefreshAll re-derives date-dependent statuses in every loaded collection
// and returns how many records changed.
func (r *Repo) RefreshAll() int {
	total := 0
	for _, c := range r.all() {
		n := c.Refresh()
		if n > 0 {
			r.log.Info("statuses refreshed", zap.String("collection", c.Name()), zap.Int("changed", n))
		}
		total += n
	}
	return total
}

// Watch calls fn with a collection's name and size after every change.
func (r *Repo) Watch(fn func(name string, size int)) {
	watch(r.Patients, fn)
	watch(r.Staff, fn)
	watch(r.Inventory, fn)
	watch(r.Invoices, fn)
	watch(r.Appointments, fn)
	watch(r.Discharges, fn)
	watch(r.LabTests, fn)
}

func watch[T any](c *store.Collection[T], fn func(string, int)) {
	name := c.Name()
	c.OnChange(func(items []T) { fn(name, len(items)) })
}

func (r *Repo) patient(ctx context.Context, id int) (models.Patient, error) {
	if err := r.Patients.Wait(ctx); err != nil {
		return models.Patient{}, err
	}
	p, ok := r.Patients.Get(id)
	if !ok {
		return models.Patient{}, fmt.Errorf("%w: %d", ErrUnknownPatient, id)
	}
	return p, nil
}
