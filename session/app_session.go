package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"bonrecords/kv"
	"bonrecords/models"

	"go.uber.org/zap"
)

// Fixed storage keys, shared with the browser client's local storage layout.
const (
	UsersKey   = "bonrecords_users"
	SessionKey = "user"
)

// Default administrator seeded when no users list exists yet.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Store tracks the registered users and the single active session.
// All state lives in the key/value storage; the in-memory user mirrors the
// session key for this process only.
type Store struct {
	kv     kv.Store
	logger *zap.Logger

	mu   sync.Mutex
	user *models.User
}

func NewStore(store kv.Store, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{kv: store, logger: logger}
}

// Init seeds the default admin when no users list is persisted and restores
// a previously persisted session.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.kv.Get(ctx, UsersKey); errors.Is(err, kv.ErrNotFound) {
		seed := []models.Account{{
			ID:       1,
			Username: DefaultAdminUsername,
			Password: DefaultAdminPassword,
			Role:     models.RoleAdmin,
		}}
		if err := s.saveAccounts(ctx, seed); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
		s.logger.Info("seeded default administrator", zap.String("username", DefaultAdminUsername))
	} else if err != nil {
		return fmt.Errorf("read users: %w", err)
	}

	raw, err := s.kv.Get(ctx, SessionKey)
	switch {
	case errors.Is(err, kv.ErrNotFound):
		s.user = nil
	case err != nil:
		return fmt.Errorf("read session: %w", err)
	default:
		var u models.User
		if err := json.Unmarshal([]byte(raw), &u); err != nil {
			return fmt.Errorf("decode session: %w", err)
		}
		s.user = &u
		s.logger.Info("restored session", zap.String("username", u.Username))
	}
	return nil
}

// Register appends a client account and logs it in. Usernames match
// case-sensitively.
func (s *Store) Register(ctx context.Context, username, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return models.User{}, err
	}
	next := 1
	for _, a := range accounts {
		if a.Username == username {
			return models.User{}, ErrUsernameTaken
		}
		if a.ID >= next {
			next = a.ID + 1
		}
	}

	acc := models.Account{ID: next, Username: username, Password: password, Role: models.RoleClient}
	accounts = append(accounts, acc)
	if err := s.saveAccounts(ctx, accounts); err != nil {
		return models.User{}, err
	}

	u := acc.User()
	if err := s.persistSession(ctx, u); err != nil {
		return models.User{}, err
	}
	s.logger.Info("registered user", zap.String("username", username), zap.Int("id", u.ID))
	return u, nil
}

// Login requires an exact match of both username and password.
func (s *Store) Login(ctx context.Context, username, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, a := range accounts {
		if a.Username == username && a.Password == password {
			u := a.User()
			if err := s.persistSession(ctx, u); err != nil {
				return models.User{}, err
			}
			s.logger.Info("login", zap.String("username", username))
			return u, nil
		}
	}
	s.logger.Info("login rejected", zap.String("username", username))
	return models.User{}, ErrInvalidCredentials
}

// Logout clears the session but keeps the users list.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	if err := s.kv.Delete(ctx, SessionKey); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Current returns the logged-in user, if any.
func (s *Store) Current() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *Store) IsAuthenticated() bool {
	_, ok := s.Current()
	return ok
}

// Accounts lists registered users (passwords stripped) whose username
// contains q, case-insensitively.
func (s *Store) Accounts(ctx context.Context, q string) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return nil, err
	}
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]models.User, 0, len(accounts))
	for _, a := range accounts {
		if q == "" || strings.Contains(strings.ToLower(a.Username), q) {
			out = append(out, a.User())
		}
	}
	return out, nil
}

func (s *Store) persistSession(ctx context.Context, u models.User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, SessionKey, string(b)); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	s.user = &u
	return nil
}

// loadAccounts treats a missing users key as an empty list.
func (s *Store) loadAccounts(ctx context.Context) ([]models.Account, error) {
	raw, err := s.kv.Get(ctx, UsersKey)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read users: %w", err)
	}
	var accounts []models.Account
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return accounts, nil
}

func (s *Store) saveAccounts(ctx context.Context, accounts []models.Account) error {
	b, err := json.Marshal(accounts)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, UsersKey, string(b)); err != nil {
		return fmt.Errorf("write users: %w", err)
	}
	return nil
}
