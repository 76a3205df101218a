// Package account defines the bank account entity.
package account

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrOwnerRequired is returned when an account is built without an owner.
	ErrOwnerRequired = errors.New("account owner is required")
	// ErrInvalidNumber is returned when an account number is not positive.
	ErrInvalidNumber = errors.New("account number must be positive")
)

// Account represents one account at a branch.
//
// Invariants:
//   - OwnerID is a non-owning reference to an existing user; the account
//     carries no balance of its own. Funds live on the owner and are shared
//     by every account referencing the same user.
//   - Number is assigned by the registry and is unique within a session.
type Account struct {
	Branch    string
	Number    int
	OwnerID   uuid.UUID
	CreatedAt time.Time
}

// Builder provides a fluent API for constructing Account instances.
type Builder struct {
	branch    string
	number    int
	ownerID   uuid.UUID
	createdAt time.Time
}

// New creates a new Builder.
func New() *Builder {
	return &Builder{createdAt: time.Now().UTC()}
}

// WithBranch sets the branch code for the account being built.
func (b *Builder) WithBranch(branch string) *Builder {
	b.branch = branch
	return b
}

// WithNumber sets the sequential account number. This is a mandatory field.
func (b *Builder) WithNumber(number int) *Builder {
	b.number = number
	return b
}

// WithOwner sets the owning user's ID. This is a mandatory field.
func (b *Builder) WithOwner(ownerID uuid.UUID) *Builder {
	b.ownerID = ownerID
	return b
}

// Build finalizes the construction of the Account, validating that it has
// an owner and a positive number.
func (b *Builder) Build() (*Account, error) {
	if b.ownerID == uuid.Nil {
		return nil, ErrOwnerRequired
	}
	if b.number < 1 {
		return nil, ErrInvalidNumber
	}
	return &Account{
		Branch:    b.branch,
		Number:    b.number,
		OwnerID:   b.ownerID,
		CreatedAt: b.createdAt,
	}, nil
}
