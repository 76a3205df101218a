package account_test

import (
	"testing"

	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	t.Parallel()
	ownerID := uuid.New()
	acc, err := account.New().
		WithBranch("0001").
		WithNumber(1).
		WithOwner(ownerID).
		Build()
	require.NoError(t, err)
	assert.Equal(t, "0001", acc.Branch)
	assert.Equal(t, 1, acc.Number)
	assert.Equal(t, ownerID, acc.OwnerID)
}

func TestBuildRequiresOwner(t *testing.T) {
	t.Parallel()
	_, err := account.New().WithBranch("0001").WithNumber(1).Build()
	assert.ErrorIs(t, err, account.ErrOwnerRequired)
}

func TestBuildRequiresPositiveNumber(t *testing.T) {
	t.Parallel()
	_, err := account.New().WithBranch("0001").WithOwner(uuid.New()).Build()
	assert.ErrorIs(t, err, account.ErrInvalidNumber)
}
