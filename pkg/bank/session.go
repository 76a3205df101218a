// Package bank implements the session core: the user and account
// registries, the deposit/withdraw transaction engine and the statement
// log. A Session is the unit of state for one interactive run; nothing in
// it survives the process.
package bank

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/amirasaad/minibank/pkg/config"
	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/amirasaad/minibank/pkg/domain/user"
	"github.com/amirasaad/minibank/pkg/money"
	"github.com/google/uuid"
)

var (
	// ErrNoAccounts is returned when a transaction or statement is
	// attempted before any account exists.
	ErrNoAccounts = errors.New("no accounts available")
	// ErrInvalidAmount is returned when a transaction amount is not
	// strictly positive.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientBalance is returned when a withdrawal exceeds the
	// owner's balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrExceedsWithdrawalCeiling is returned when a single withdrawal
	// exceeds the per-operation ceiling.
	ErrExceedsWithdrawalCeiling = errors.New("amount exceeds the withdrawal limit")
	// ErrWithdrawalsExhausted is returned when the session's withdrawal
	// quota has been used up.
	ErrWithdrawalsExhausted = errors.New("maximum number of withdrawals exceeded")
)

// Session owns all mutable state of one interactive run. It is not safe
// for concurrent use; the menu loop is the single caller.
type Session struct {
	branchCode        string
	withdrawalCeiling money.Money
	withdrawalQuota   int

	users       []*user.User
	usersByTax  map[string]*user.User
	usersByID   map[uuid.UUID]*user.User
	accounts    []*account.Account
	statement   []Entry
	withdrawals int

	logger *slog.Logger
}

// NewSession creates an empty session with the given business constants.
func NewSession(cfg *config.Bank, logger *slog.Logger) (*Session, error) {
	ceiling, err := money.New(cfg.WithdrawalCeiling)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		branchCode:        cfg.BranchCode,
		withdrawalCeiling: ceiling,
		withdrawalQuota:   cfg.WithdrawalsPerSession,
		usersByTax:        make(map[string]*user.User),
		usersByID:         make(map[uuid.UUID]*user.User),
		logger:            logger,
	}, nil
}

// CreateUserInput carries the fields collected for a new user.
type CreateUserInput struct {
	TaxID     string `validate:"required"`
	Name      string `validate:"required"`
	BirthDate string
	Address   string
}

// CreateUser registers a new user with a zero balance. The tax ID must not
// already be registered.
func (s *Session) CreateUser(in CreateUserInput) (*user.User, error) {
	taxID := strings.TrimSpace(in.TaxID)
	if _, ok := s.usersByTax[taxID]; ok {
		return nil, user.ErrDuplicateTaxID
	}
	u, err := user.New(taxID, in.Name, in.BirthDate, in.Address)
	if err != nil {
		return nil, err
	}
	s.users = append(s.users, u)
	s.usersByTax[u.TaxID] = u
	s.usersByID[u.ID] = u
	s.logger.Info("user created", "tax_id", u.TaxID, "user_id", u.ID)
	return u, nil
}

// FindUserByTaxID resolves a user by trimmed tax ID.
func (s *Session) FindUserByTaxID(taxID string) (*user.User, bool) {
	u, ok := s.usersByTax[strings.TrimSpace(taxID)]
	return u, ok
}

// OpenAccount creates an account for the user registered under taxID. The
// account number is the registry size at creation time plus one.
func (s *Session) OpenAccount(taxID string) (*account.Account, error) {
	owner, ok := s.FindUserByTaxID(taxID)
	if !ok {
		return nil, user.ErrUserNotFound
	}
	acc, err := account.New().
		WithBranch(s.branchCode).
		WithNumber(len(s.accounts) + 1).
		WithOwner(owner.ID).
		Build()
	if err != nil {
		return nil, err
	}
	s.accounts = append(s.accounts, acc)
	s.logger.Info("account opened",
		"branch", acc.Branch, "number", acc.Number, "owner", owner.TaxID)
	return acc, nil
}

// AccountSummary is one row of the account listing.
type AccountSummary struct {
	Branch    string
	Number    int
	OwnerName string
}

// Accounts lists all accounts in creation order.
func (s *Session) Accounts() []AccountSummary {
	summaries := make([]AccountSummary, 0, len(s.accounts))
	for _, acc := range s.accounts {
		summaries = append(summaries, AccountSummary{
			Branch:    acc.Branch,
			Number:    acc.Number,
			OwnerName: s.usersByID[acc.OwnerID].Name,
		})
	}
	return summaries
}

// firstAccount returns the session's transaction target. There is no
// account selection step: every transaction and statement applies to the
// oldest account.
func (s *Session) firstAccount() (*account.Account, *user.User, error) {
	if len(s.accounts) == 0 {
		return nil, nil, ErrNoAccounts
	}
	acc := s.accounts[0]
	return acc, s.usersByID[acc.OwnerID], nil
}

// Deposit credits the first account's owner. The amount must be strictly
// positive; nothing changes on failure.
func (s *Session) Deposit(amount money.Money) error {
	_, owner, err := s.firstAccount()
	if err != nil {
		return err
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	owner.Credit(amount)
	s.statement = append(s.statement, newEntry(KindDeposit, amount))
	s.logger.Info("deposit applied",
		"amount", amount.String(), "balance", owner.Balance.String())
	return nil
}

// withdrawalRule pairs a violation predicate with the error it produces.
type withdrawalRule struct {
	violated func(owner *user.User, amount money.Money) bool
	err      error
}

// withdrawalRules is the fixed validation order for withdrawals. The first
// violated rule wins; later rules are not evaluated.
func (s *Session) withdrawalRules() []withdrawalRule {
	return []withdrawalRule{
		{
			violated: func(owner *user.User, amount money.Money) bool {
				return amount.GreaterThan(owner.Balance)
			},
			err: ErrInsufficientBalance,
		},
		{
			violated: func(_ *user.User, amount money.Money) bool {
				return amount.GreaterThan(s.withdrawalCeiling)
			},
			err: ErrExceedsWithdrawalCeiling,
		},
		{
			violated: func(_ *user.User, _ money.Money) bool {
				return s.withdrawals >= s.withdrawalQuota
			},
			err: ErrWithdrawalsExhausted,
		},
		{
			violated: func(_ *user.User, amount money.Money) bool {
				return !amount.IsPositive()
			},
			err: ErrInvalidAmount,
		},
	}
}

// Withdraw debits the first account's owner after running the ordered rule
// chain. A failed withdrawal leaves balance, statement and the withdrawal
// counter untouched.
func (s *Session) Withdraw(amount money.Money) error {
	_, owner, err := s.firstAccount()
	if err != nil {
		return err
	}
	for _, rule := range s.withdrawalRules() {
		if rule.violated(owner, amount) {
			s.logger.Debug("withdrawal rejected",
				"amount", amount.String(), "reason", rule.err)
			return rule.err
		}
	}
	owner.Debit(amount)
	s.statement = append(s.statement, newEntry(KindWithdrawal, amount))
	s.withdrawals++
	s.logger.Info("withdrawal applied",
		"amount", amount.String(),
		"balance", owner.Balance.String(),
		"withdrawals_used", s.withdrawals)
	return nil
}

// Withdrawals reports how many withdrawals succeeded this session.
func (s *Session) Withdrawals() int {
	return s.withdrawals
}

// Statement snapshots the transaction log together with the current
// balance of the first account's owner.
func (s *Session) Statement() (Statement, error) {
	_, owner, err := s.firstAccount()
	if err != nil {
		return Statement{}, err
	}
	entries := make([]Entry, len(s.statement))
	copy(entries, s.statement)
	return Statement{Entries: entries, Balance: owner.Balance}, nil
}
