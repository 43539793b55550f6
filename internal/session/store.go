package session

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/model"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/pkg/storage"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/pkg/token"
)

// Persisted keys, shared with the browser build of the front end.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

type State uint8

const (
	Unknown State = iota
	Authenticated
	Unauthenticated
)

func (s State) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	case Unauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

var ErrInvalidTransition = errors.New("invalid session transition")

// Store owns the current identity. It is created once per process, restored
// with Init and released with Teardown.
type Store struct {
	mu        sync.RWMutex
	storage   storage.Storage
	log       *zap.Logger
	state     State
	identity  *model.Identity
	restoring bool
	now       func() time.Time
}

func New(st storage.Storage, log *zap.Logger) *Store {
	return &Store{
		storage: st,
		log:     log.Named("session"),
		state:   Unknown,
		now:     time.Now,
	}
}

// Init restores the identity persisted by a previous run. It never fails:
// anything missing, unreadable or malformed resolves to Unauthenticated.
func (s *Store) Init(ctx context.Context) State {
	s.mu.Lock()
	if s.state != Unknown {
		state := s.state
		s.mu.Unlock()
		return state
	}
	s.restoring = true
	s.mu.Unlock()

	identity := s.restore(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.restoring = false
	if identity == nil {
		s.state = Unauthenticated
		return s.state
	}
	s.identity = identity
	s.state = Authenticated
	return s.state
}

func (s *Store) restore(ctx context.Context) *model.Identity {
	token, hasToken, err := s.storage.Get(ctx, KeyToken)
	if err != nil {
		s.log.Warn("read persisted token", zap.Error(err))
		return nil
	}
	raw, hasUser, err := s.storage.Get(ctx, KeyUser)
	if err != nil {
		s.log.Warn("read persisted user", zap.Error(err))
		return nil
	}
	if !hasToken || !hasUser || token == "" {
		return nil
	}

	profile, err := model.DecodeProfile([]byte(raw))
	if err != nil {
		s.log.Warn("discarding malformed persisted user", zap.Error(err))
		s.clear(ctx)
		return nil
	}
	if s.expired(token) {
		s.log.Info("persisted token expired")
		s.clear(ctx)
		return nil
	}
	return &model.Identity{Token: token, Profile: profile}
}

// expired reports true only for JWTs with an exp claim in the past; opaque
// tokens are left for the API to judge.
func (s *Store) expired(raw string) bool {
	claims, err := token.Parse(raw)
	if err != nil {
		return false
	}
	if claims.Expired(s.now()) {
		s.log.Debug("token expired", zap.String("subject", claims.Subject()))
		return true
	}
	return false
}

// Login persists and activates an identity. Logging in while already
// authenticated replaces the identity.
func (s *Store) Login(ctx context.Context, profile model.Profile, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Unknown {
		return errors.Wrap(ErrInvalidTransition, "login before restore")
	}

	raw, err := profile.Encode()
	if err != nil {
		return errors.Wrap(err, "encode profile")
	}
	if err := s.storage.Set(ctx, KeyToken, token); err != nil {
		return errors.Wrap(err, "persist token")
	}
	if err := s.storage.Set(ctx, KeyUser, string(raw)); err != nil {
		s.rollbackToken(ctx)
		return errors.Wrap(err, "persist user")
	}

	s.identity = &model.Identity{Token: token, Profile: profile}
	s.state = Authenticated
	s.log.Info("logged in", zap.String("user", profile.ID()))
	return nil
}

// rollbackToken puts back the token of the current identity, or removes the
// key when there is none, so a half-written login never survives a restart.
func (s *Store) rollbackToken(ctx context.Context) {
	var err error
	if s.identity != nil {
		err = s.storage.Set(ctx, KeyToken, s.identity.Token)
	} else {
		err = s.storage.Remove(ctx, KeyToken)
	}
	if err != nil {
		s.log.Warn("roll back token", zap.Error(err))
	}
}

func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Unknown {
		return errors.Wrap(ErrInvalidTransition, "logout before restore")
	}
	if err := s.clear(ctx); err != nil {
		return err
	}
	if s.state == Authenticated {
		s.log.Info("logged out")
	}
	s.identity = nil
	s.state = Unauthenticated
	return nil
}

// Teardown logs out and releases the underlying storage.
func (s *Store) Teardown(ctx context.Context) error {
	s.mu.RLock()
	state := s.state
	s.mu.RUnlock()

	var err error
	if state != Unknown {
		err = s.Logout(ctx)
	}
	if cerr := s.storage.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// Close releases storage but keeps the persisted identity for the next run.
func (s *Store) Close() error {
	return s.storage.Close()
}

func (s *Store) clear(ctx context.Context) error {
	if err := s.storage.Remove(ctx, KeyToken); err != nil {
		return errors.Wrap(err, "clear token")
	}
	if err := s.storage.Remove(ctx, KeyUser); err != nil {
		return errors.Wrap(err, "clear user")
	}
	return nil
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Restoring is true until Init has finished.
func (s *Store) Restoring() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.restoring || s.state == Unknown
}

// Identity returns a copy of the current identity, or nil.
func (s *Store) Identity() *model.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	id := *s.identity
	return &id
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return ""
	}
	return s.identity.Token
}

func (s *Store) Profile() model.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	return s.identity.Profile
}
