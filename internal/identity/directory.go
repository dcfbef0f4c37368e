package identity

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrEmailTaken      = errors.New("email already registered")
)

// Directory is the in-memory account roster. It stands in for a user
// database: seeded with demo accounts at startup, appended to on sign-up,
// gone on restart except for what the seed file provides.
type Directory struct {
	mu       sync.RWMutex
	accounts []Identity
}

func NewDirectory() *Directory {
	d := &Directory{}
	d.accounts = append(d.accounts, demoAccounts()...)
	return d
}

// demoAccounts are the two fixed identities every environment starts with.
func demoAccounts() []Identity {
	now := time.Now()
	return []Identity{
		{
			ID:         uuid.New(),
			Name:       "Admin User",
			Email:      "admin@example.com",
			Role:       RoleAdmin,
			Phone:      "(41) 98765-4321",
			NationalID: "123.456.789-00",
			BirthDate:  "1980-01-01",
			Address:    "Rua Principal, 123 - Curitiba, PR",
			CreatedAt:  now,
		},
		{
			ID:         uuid.New(),
			Name:       "Maria Silva",
			Email:      "maria@example.com",
			Role:       RolePatient,
			Phone:      "(41) 91234-5678",
			NationalID: "987.654.321-00",
			BirthDate:  "1990-05-15",
			Address:    "Av Cândido de Abreu, 456 - Curitiba, PR",
			CreatedAt:  now,
		},
	}
}

// LoadFile merges extra accounts from a seed file produced by cmd/seed.
// Entries whose email is already registered are skipped.
func (d *Directory) LoadFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read accounts file: %w", err)
	}

	var extra []Identity
	if err := json.Unmarshal(data, &extra); err != nil {
		return 0, fmt.Errorf("parse accounts file: %w", err)
	}

	loaded := 0
	for _, acct := range extra {
		if acct.ID == uuid.Nil {
			acct.ID = uuid.New()
		}
		if acct.Role == "" {
			acct.Role = RolePatient
		}
		if acct.CreatedAt.IsZero() {
			acct.CreatedAt = time.Now()
		}
		if err := d.Register(acct); err != nil {
			continue
		}
		loaded++
	}

	return loaded, nil
}

// FindByEmail looks an account up by e-mail, case-insensitively.
func (d *Directory) FindByEmail(email string) (*Identity, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for i := range d.accounts {
		if strings.EqualFold(d.accounts[i].Email, email) {
			acct := d.accounts[i]
			return &acct, nil
		}
	}
	return nil, ErrAccountNotFound
}

// Register adds a new account. The e-mail must not already be registered,
// compared case-insensitively.
func (d *Directory) Register(acct Identity) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.accounts {
		if strings.EqualFold(d.accounts[i].Email, acct.Email) {
			return ErrEmailTaken
		}
	}
	d.accounts = append(d.accounts, acct)
	return nil
}

// Update replaces the stored account with the same ID so that profile edits
// survive a sign-out within the process lifetime. An e-mail already held by
// a different account is rejected, keeping e-mails unique.
func (d *Directory) Update(acct Identity) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	idx := -1
	for i := range d.accounts {
		if d.accounts[i].ID == acct.ID {
			idx = i
			continue
		}
		if strings.EqualFold(d.accounts[i].Email, acct.Email) {
			return ErrEmailTaken
		}
	}
	if idx == -1 {
		return ErrAccountNotFound
	}
	d.accounts[idx] = acct
	return nil
}

func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.accounts)
}
