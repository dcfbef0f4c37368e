package identity

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/santaluzia/hospital-booking/internal/validation"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Session is the explicit session-context object handed to request handlers.
// It owns one key in the durable store and keeps the active identity in sync
// with it: every mutating operation rewrites the full serialized record, so a
// process restart restores the exact prior state.
//
// Persistence is best effort and unauthenticated. Write failures are logged
// and the in-memory session stays authoritative.
type Session struct {
	mu      sync.Mutex
	store   Store
	dir     *Directory
	key     string
	latency time.Duration
	current *Identity
}

func NewSession(store Store, dir *Directory, key string, latency time.Duration) *Session {
	s := &Session{
		store:   store,
		dir:     dir,
		key:     key,
		latency: latency,
	}
	s.init()
	return s
}

// init restores a previously persisted identity, if any. A corrupt or
// unparsable payload is treated the same as no session: the entry is removed
// and init never propagates the failure.
func (s *Session) init() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := s.store.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("session %s: load error: %v", s.key, err)
		}
		return
	}

	var ident Identity
	if err := json.Unmarshal(data, &ident); err != nil {
		log.Printf("session %s: discarding corrupt record: %v", s.key, err)
		_ = s.store.Delete(ctx, s.key)
		return
	}

	s.current = &ident
}

// Current returns a copy of the active identity, or nil when signed out.
func (s *Session) Current() *Identity {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	ident := *s.current
	return &ident
}

func (s *Session) Authenticated() bool {
	return s.Current() != nil
}

// SignIn activates the session for the account registered under email.
// The password is accepted unconditionally: there is no credential backend
// behind the mock directory, only the e-mail lookup is real.
func (s *Session) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	if verr := validation.Email("email", email); verr != nil {
		return nil, verr
	}
	if verr := validation.MinLength("password", password, 6); verr != nil {
		return nil, verr
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	found, err := s.dir.FindByEmail(email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	s.mu.Lock()
	s.current = found
	s.mu.Unlock()

	s.persist(ctx)

	return s.Current(), nil
}

// SignUp registers a new patient account and activates the session for it.
func (s *Session) SignUp(ctx context.Context, name, email, password, nationalID string) (*Identity, error) {
	if verr := validateSignUp(name, email, password, nationalID); verr != nil {
		return nil, verr
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	ident := Identity{
		ID:         uuid.New(),
		Name:       name,
		Email:      email,
		NationalID: nationalID,
		Role:       RolePatient,
		CreatedAt:  time.Now(),
	}

	if err := s.dir.Register(ident); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = &ident
	s.mu.Unlock()

	s.persist(ctx)

	return s.Current(), nil
}

// SignOut clears the active session and its durable record. It is idempotent
// and never fails: signing out twice leaves the same signed-out state.
func (s *Session) SignOut(ctx context.Context) {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.store.Delete(ctx, s.key); err != nil {
		log.Printf("session %s: delete error: %v", s.key, err)
	}
}

// UpdateProfile merges the non-empty fields of upd into the active identity
// and persists the result. Without an active session it is a silent no-op.
// An e-mail change colliding with another account fails and leaves both the
// session and the directory untouched.
func (s *Session) UpdateProfile(ctx context.Context, upd ProfileUpdate) (*Identity, error) {
	if verr := validateProfile(upd); verr != nil {
		return nil, verr
	}

	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return nil, nil
	}

	merged := *s.current
	if upd.Name != "" {
		merged.Name = upd.Name
	}
	if upd.Email != "" {
		merged.Email = upd.Email
	}
	if upd.Phone != "" {
		merged.Phone = upd.Phone
	}
	if upd.BirthDate != "" {
		merged.BirthDate = upd.BirthDate
	}
	if upd.Address != "" {
		merged.Address = upd.Address
	}
	if upd.AvatarURL != "" {
		merged.AvatarURL = upd.AvatarURL
	}
	s.mu.Unlock()

	if err := s.dir.Update(merged); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, err
		}
		// A session revived from the store may predate the directory seed.
		log.Printf("session %s: directory update: %v", s.key, err)
	}

	s.mu.Lock()
	s.current = &merged
	s.mu.Unlock()

	s.persist(ctx)

	return s.Current(), nil
}

func (s *Session) persist(ctx context.Context) {
	ident := s.Current()
	if ident == nil {
		return
	}

	data, err := json.Marshal(ident)
	if err != nil {
		log.Printf("session %s: marshal: %v", s.key, err)
		return
	}
	if err := s.store.Put(ctx, s.key, data); err != nil {
		log.Printf("session %s: persist: %v", s.key, err)
	}
}

// wait simulates the latency of a network auth call. A second attempt while
// one is in flight is not guarded against; the last writer wins.
func (s *Session) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	select {
	case <-time.After(s.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func validateSignUp(name, email, password, nationalID string) error {
	if verr := validation.MinLength("name", name, 3); verr != nil {
		return verr
	}
	if verr := validation.Email("email", email); verr != nil {
		return verr
	}
	if verr := validation.MinLength("password", password, 6); verr != nil {
		return verr
	}
	if verr := validation.NationalID("national_id", nationalID); verr != nil {
		return verr
	}
	return nil
}

func validateProfile(upd ProfileUpdate) error {
	if upd.Name != "" {
		if verr := validation.MinLength("name", upd.Name, 3); verr != nil {
			return verr
		}
	}
	if upd.Email != "" {
		if verr := validation.Email("email", upd.Email); verr != nil {
			return verr
		}
	}
	return nil
}
