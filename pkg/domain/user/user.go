// Package user defines the registered user and the rules guarding their
// single shared balance.
package user

import (
	"errors"
	"strings"
	"time"

	"github.com/amirasaad/minibank/pkg/money"
	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user cannot be resolved by tax ID.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateTaxID is returned when a tax ID is already registered.
	ErrDuplicateTaxID = errors.New("tax ID already registered")
	// ErrTaxIDRequired is returned when a user is created without a tax ID.
	ErrTaxIDRequired = errors.New("tax ID cannot be empty")
)

// User represents a registered user.
//
// Invariants:
//   - TaxID uniquely identifies the user within a session; uniqueness is
//     enforced by the registry, not here.
//   - Balance is the single source of funds for every account referencing
//     this user, and is mutated only through Credit and Debit.
type User struct {
	ID        uuid.UUID
	Name      string
	BirthDate string
	TaxID     string
	Address   string
	Balance   money.Money
	CreatedAt time.Time
}

// New creates a User with a zero balance. All fields are stored trimmed;
// birth date and address are free-form text and intentionally unvalidated.
func New(taxID, name, birthDate, address string) (*User, error) {
	taxID = strings.TrimSpace(taxID)
	if taxID == "" {
		return nil, ErrTaxIDRequired
	}
	return &User{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		BirthDate: strings.TrimSpace(birthDate),
		TaxID:     taxID,
		Address:   strings.TrimSpace(address),
		Balance:   money.Zero,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Credit adds the amount to the user's balance.
func (u *User) Credit(amount money.Money) {
	u.Balance = u.Balance.Add(amount)
}

// Debit removes the amount from the user's balance. Callers must have
// already established that the balance covers the amount.
func (u *User) Debit(amount money.Money) {
	u.Balance = u.Balance.Subtract(amount)
}
