package bank_test

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/amirasaad/minibank/pkg/bank"
	"github.com/amirasaad/minibank/pkg/config"
	"github.com/amirasaad/minibank/pkg/domain/user"
	"github.com/amirasaad/minibank/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

func newTestSession(t *testing.T) *bank.Session {
	t.Helper()
	s, err := bank.NewSession(&config.Bank{
		BranchCode:            "0001",
		WithdrawalCeiling:     500.00,
		WithdrawalsPerSession: 3,
	}, nil)
	require.NoError(t, err)
	return s
}

// newFundedSession returns a session with one user, one account and the
// given starting balance.
func newFundedSession(t *testing.T, balance money.Money) *bank.Session {
	t.Helper()
	s := newTestSession(t)
	_, err := s.CreateUser(bank.CreateUserInput{TaxID: "111", Name: "Maria Silva"})
	require.NoError(t, err)
	_, err = s.OpenAccount("111")
	require.NoError(t, err)
	if balance.IsPositive() {
		require.NoError(t, s.Deposit(balance))
	}
	return s
}

func TestCreateUser(t *testing.T) {
	t.Parallel()
	s := newTestSession(t)

	t.Run("success", func(t *testing.T) {
		u, err := s.CreateUser(bank.CreateUserInput{
			TaxID:     "111",
			Name:      "Maria Silva",
			BirthDate: "01-02-1990",
			Address:   "Rua A, 1 - Centro - SP/SP",
		})
		require.NoError(t, err)
		assert.True(t, u.Balance.IsZero())
	})

	t.Run("duplicate tax ID is rejected without mutation", func(t *testing.T) {
		existing, ok := s.FindUserByTaxID("111")
		require.True(t, ok)

		_, err := s.CreateUser(bank.CreateUserInput{TaxID: " 111 ", Name: "Other Person"})
		assert.ErrorIs(t, err, user.ErrDuplicateTaxID)

		unchanged, ok := s.FindUserByTaxID("111")
		require.True(t, ok)
		assert.Same(t, existing, unchanged)
		assert.Equal(t, "Maria Silva", unchanged.Name)
	})
}

func TestFindUserByTaxID(t *testing.T) {
	t.Parallel()
	s := newTestSession(t)
	_, err := s.CreateUser(bank.CreateUserInput{TaxID: "222", Name: "Jose"})
	require.NoError(t, err)

	_, ok := s.FindUserByTaxID(" 222\n")
	assert.True(t, ok, "lookup compares trimmed tax IDs")

	_, ok = s.FindUserByTaxID("999")
	assert.False(t, ok)
}

func TestOpenAccount(t *testing.T) {
	t.Parallel()
	s := newTestSession(t)

	t.Run("unknown user", func(t *testing.T) {
		_, err := s.OpenAccount("404")
		assert.ErrorIs(t, err, user.ErrUserNotFound)
		assert.Empty(t, s.Accounts())
	})

	t.Run("sequential numbering across users", func(t *testing.T) {
		_, err := s.CreateUser(bank.CreateUserInput{TaxID: "111", Name: "Maria"})
		require.NoError(t, err)
		_, err = s.CreateUser(bank.CreateUserInput{TaxID: "222", Name: "Jose"})
		require.NoError(t, err)

		for i, taxID := range []string{"111", "222", "111"} {
			acc, err := s.OpenAccount(taxID)
			require.NoError(t, err)
			assert.Equal(t, i+1, acc.Number)
			assert.Equal(t, "0001", acc.Branch)
		}

		summaries := s.Accounts()
		require.Len(t, summaries, 3)
		assert.Equal(t, "Maria", summaries[0].OwnerName)
		assert.Equal(t, "Jose", summaries[1].OwnerName)
		assert.Equal(t, 3, summaries[2].Number)
	})
}

func TestNoAccounts(t *testing.T) {
	t.Parallel()
	s := newTestSession(t)
	amount := money.FromCentavos(1000)

	assert.ErrorIs(t, s.Deposit(amount), bank.ErrNoAccounts)
	assert.ErrorIs(t, s.Withdraw(amount), bank.ErrNoAccounts)
	_, err := s.Statement()
	assert.ErrorIs(t, err, bank.ErrNoAccounts)
}

func TestDeposit(t *testing.T) {
	t.Parallel()

	t.Run("balance is the sum of deposits", func(t *testing.T) {
		t.Parallel()
		s := newFundedSession(t, money.Zero)
		var sum int64
		for _, c := range []int64{10000, 2550, 1, 99999} {
			require.NoError(t, s.Deposit(money.FromCentavos(c)))
			sum += c
		}
		st, err := s.Statement()
		require.NoError(t, err)
		assert.Equal(t, sum, st.Balance.Amount())
		assert.Len(t, st.Entries, 4)
	})

	t.Run("non-positive amount is rejected", func(t *testing.T) {
		t.Parallel()
		s := newFundedSession(t, money.Zero)
		assert.ErrorIs(t, s.Deposit(money.Zero), bank.ErrInvalidAmount)
		assert.ErrorIs(t, s.Deposit(money.FromCentavos(-100)), bank.ErrInvalidAmount)

		st, err := s.Statement()
		require.NoError(t, err)
		assert.True(t, st.Empty())
		assert.True(t, st.Balance.IsZero())
	})
}

func TestWithdrawRuleOrder(t *testing.T) {
	t.Parallel()

	t.Run("insufficient balance", func(t *testing.T) {
		t.Parallel()
		s := newFundedSession(t, money.FromCentavos(10000))
		err := s.Withdraw(money.FromCentavos(10001))
		assert.ErrorIs(t, err, bank.ErrInsufficientBalance)
	})

	t.Run("insufficient balance wins over ceiling", func(t *testing.T) {
		t.Parallel()
		s := newFundedSession(t, money.FromCentavos(10000))
		// 600.00 violates both balance and ceiling; balance is checked first.
		err := s.Withdraw(money.FromCentavos(60000))
		assert.ErrorIs(t, err, bank.ErrInsufficientBalance)
	})

	t.Run("ceiling", func(t *testing.T) {
		t.Parallel()
		s := newFundedSession(t, money.FromCentavos(100000))
		err := s.Withdraw(money.FromCentavos(60000))
		assert.ErrorIs(t, err, bank.ErrExceedsWithdrawalCeiling)
	})

	t.Run("quota beats invalid amount", func(t *testing.T) {
		t.Parallel()
		s := newFundedSession(t, money.FromCentavos(100000))
		for i := 0; i < 3; i++ {
			require.NoError(t, s.Withdraw(money.FromCentavos(20000)))
		}
		// Once the quota is used up, even a non-positive amount reports the
		// quota violation.
		err := s.Withdraw(money.Zero)
		assert.ErrorIs(t, err, bank.ErrWithdrawalsExhausted)
	})

	t.Run("invalid amount", func(t *testing.T) {
		t.Parallel()
		s := newFundedSession(t, money.FromCentavos(10000))
		assert.ErrorIs(t, s.Withdraw(money.Zero), bank.ErrInvalidAmount)
		assert.ErrorIs(t, s.Withdraw(money.FromCentavos(-1)), bank.ErrInvalidAmount)
	})
}

func TestWithdrawNeverOverdraws(t *testing.T) {
	t.Parallel()
	s := newFundedSession(t, money.FromCentavos(30000))

	require.NoError(t, s.Withdraw(money.FromCentavos(30000)), "withdrawing the full balance is allowed")
	assert.ErrorIs(t, s.Withdraw(money.FromCentavos(1)), bank.ErrInsufficientBalance)

	st, err := s.Statement()
	require.NoError(t, err)
	assert.False(t, st.Balance.IsNegative())
	assert.True(t, st.Balance.IsZero())
}

func TestWithdrawQuota(t *testing.T) {
	t.Parallel()
	s := newFundedSession(t, money.FromCentavos(100000))

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Withdraw(money.FromCentavos(20000)), "withdrawal %d", i+1)
	}
	assert.Equal(t, 3, s.Withdrawals())

	// The fourth attempt fails even though balance and ceiling would allow it.
	err := s.Withdraw(money.FromCentavos(100))
	assert.ErrorIs(t, err, bank.ErrWithdrawalsExhausted)
	assert.Equal(t, 3, s.Withdrawals())

	st, err := s.Statement()
	require.NoError(t, err)
	assert.Equal(t, int64(100000-3*20000), st.Balance.Amount())
}

func TestFailedOperationsLeaveStateUnchanged(t *testing.T) {
	t.Parallel()
	s := newFundedSession(t, money.FromCentavos(10000))

	before, err := s.Statement()
	require.NoError(t, err)
	accountsBefore := s.Accounts()
	withdrawalsBefore := s.Withdrawals()

	_, _ = s.CreateUser(bank.CreateUserInput{TaxID: "111", Name: "Dup"})
	_, _ = s.OpenAccount("404")
	_ = s.Deposit(money.Zero)
	_ = s.Withdraw(money.FromCentavos(99999))
	_ = s.Withdraw(money.Zero)

	after, err := s.Statement()
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, accountsBefore, s.Accounts())
	assert.Equal(t, withdrawalsBefore, s.Withdrawals())
}

// Accounts referencing the same user share that user's funds.
func TestSharedBalanceAcrossAccounts(t *testing.T) {
	t.Parallel()
	s := newTestSession(t)
	_, err := s.CreateUser(bank.CreateUserInput{TaxID: "111", Name: "Maria"})
	require.NoError(t, err)
	_, err = s.OpenAccount("111")
	require.NoError(t, err)
	_, err = s.OpenAccount("111")
	require.NoError(t, err)

	require.NoError(t, s.Deposit(money.FromCentavos(5000)))

	u, ok := s.FindUserByTaxID("111")
	require.True(t, ok)
	assert.Equal(t, int64(5000), u.Balance.Amount())
}

func TestStatementScenario(t *testing.T) {
	t.Parallel()
	s := newFundedSession(t, money.Zero)

	st, err := s.Statement()
	require.NoError(t, err)
	assert.True(t, st.Empty())
	assert.Contains(t, st.Render(), "No movements recorded.")
	assert.Contains(t, st.Render(), "Balance:\tR$ 0.00\n")

	require.NoError(t, s.Deposit(money.FromCentavos(10000)))

	st, err = s.Statement()
	require.NoError(t, err)
	require.Len(t, st.Entries, 1)
	assert.Equal(t, "Deposit:\tR$ 100.00\n", st.Entries[0].Line())
	assert.Equal(t, "Deposit:\tR$ 100.00\nBalance:\tR$ 100.00\n", st.Render())
}

func TestStatementOrder(t *testing.T) {
	t.Parallel()
	s := newFundedSession(t, money.FromCentavos(50000))
	require.NoError(t, s.Withdraw(money.FromCentavos(10000)))
	require.NoError(t, s.Deposit(money.FromCentavos(2500)))

	st, err := s.Statement()
	require.NoError(t, err)
	want := fmt.Sprintf("%s%s%s",
		"Deposit:\tR$ 500.00\n",
		"Withdrawal:\tR$ 100.00\n",
		"Deposit:\tR$ 25.00\n")
	assert.Equal(t, want+"Balance:\tR$ 425.00\n", st.Render())
}
