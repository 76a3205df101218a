// Package cli implements the interactive menu loop: it reads command
// tokens and field values from the operator, dispatches to the session
// core and renders the textual responses. It never touches session state
// directly; all mutation goes through bank.Session.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/amirasaad/minibank/pkg/bank"
	"github.com/amirasaad/minibank/pkg/domain/user"
	"github.com/amirasaad/minibank/pkg/money"
	"github.com/go-playground/validator/v10"
)

// CLI drives one interactive session over a line-oriented input and a
// textual output channel.
type CLI struct {
	session     *bank.Session
	in          *bufio.Reader
	out         io.Writer
	interactive bool
	validate    *validator.Validate
	logger      *slog.Logger
}

// New creates a CLI bound to the given session and channels. Set
// interactive when the input is a terminal; it only affects styling, never
// the conversation itself.
func New(session *bank.Session, in io.Reader, out io.Writer, interactive bool, logger *slog.Logger) *CLI {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLI{
		session:     session,
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
		validate:    validator.New(),
		logger:      logger,
	}
}

// command tokens. The short forms are the primary surface; the long forms
// are accepted as aliases.
const (
	tokenDeposit      = "d"
	tokenWithdraw     = "s"
	tokenStatement    = "e"
	tokenNewAccount   = "nc"
	tokenListAccounts = "lc"
	tokenNewUser      = "nu"
	tokenQuit         = "q"
)

var tokenAliases = map[string]string{
	"deposit":       tokenDeposit,
	"withdraw":      tokenWithdraw,
	"statement":     tokenStatement,
	"new-account":   tokenNewAccount,
	"list-accounts": tokenListAccounts,
	"new-user":      tokenNewUser,
	"quit":          tokenQuit,
}

// Run executes the menu loop until the operator quits or the input channel
// is exhausted. It never returns an error for a failed operation; every
// failure is reported on the output channel and the loop continues.
func (c *CLI) Run() error {
	for {
		fmt.Fprint(c.out, c.renderMenu())

		token, err := c.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				c.logger.Debug("input exhausted, ending session")
				return nil
			}
			return err
		}
		if alias, ok := tokenAliases[token]; ok {
			token = alias
		}
		c.logger.Debug("command dispatched", "token", token)

		switch token {
		case tokenDeposit:
			c.deposit()
		case tokenWithdraw:
			c.withdraw()
		case tokenStatement:
			c.statement()
		case tokenNewAccount:
			c.newAccount()
		case tokenListAccounts:
			c.listAccounts()
		case tokenNewUser:
			c.newUser()
		case tokenQuit:
			return nil
		default:
			c.failure("Invalid operation, please select the desired operation again.")
		}
	}
}

func (c *CLI) deposit() {
	raw, err := c.prompt("Enter the deposit amount: ")
	if err != nil {
		return
	}
	if err := c.session.Deposit(money.Parse(raw)); err != nil {
		c.failure(errorMessage(err))
		return
	}
	c.success("Deposit completed successfully!")
}

func (c *CLI) withdraw() {
	raw, err := c.prompt("Enter the withdrawal amount: ")
	if err != nil {
		return
	}
	if err := c.session.Withdraw(money.Parse(raw)); err != nil {
		c.failure(errorMessage(err))
		return
	}
	c.success("Withdrawal completed successfully!")
}

func (c *CLI) statement() {
	st, err := c.session.Statement()
	if err != nil {
		c.failure(errorMessage(err))
		return
	}
	fmt.Fprint(c.out, c.renderStatement(st))
}

func (c *CLI) newAccount() {
	taxID, err := c.prompt("Enter the user's tax ID: ")
	if err != nil {
		return
	}
	acc, err := c.session.OpenAccount(taxID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			c.failure("User not found, account creation aborted!")
			return
		}
		c.failure(errorMessage(err))
		return
	}
	c.success(fmt.Sprintf("Account %d created successfully!", acc.Number))
}

func (c *CLI) listAccounts() {
	for _, acc := range c.session.Accounts() {
		fmt.Fprintln(c.out, strings.Repeat("=", 40))
		fmt.Fprintf(c.out, "Branch:\t\t%s\n", acc.Branch)
		fmt.Fprintf(c.out, "Account:\t%d\n", acc.Number)
		fmt.Fprintf(c.out, "Holder:\t\t%s\n", acc.OwnerName)
	}
}

func (c *CLI) newUser() {
	taxID, err := c.prompt("Enter the tax ID (numbers only): ")
	if err != nil {
		return
	}
	if _, ok := c.session.FindUserByTaxID(taxID); ok {
		c.failure("A user with this tax ID already exists!")
		return
	}
	name, err := c.prompt("Enter the full name: ")
	if err != nil {
		return
	}
	birthDate, err := c.prompt("Enter the birth date (dd-mm-yyyy): ")
	if err != nil {
		return
	}
	address, err := c.prompt("Enter the address (street, number - district - city/state): ")
	if err != nil {
		return
	}

	input := bank.CreateUserInput{
		TaxID:     taxID,
		Name:      name,
		BirthDate: birthDate,
		Address:   address,
	}
	if err := c.validate.Struct(input); err != nil {
		c.logger.Debug("new-user form rejected", "error", err)
		c.failure("Tax ID and full name are required.")
		return
	}
	if _, err := c.session.CreateUser(input); err != nil {
		c.failure(errorMessage(err))
		return
	}
	c.success("User created successfully!")
}

// prompt writes a field label and reads one trimmed line.
func (c *CLI) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	return c.readLine()
}

func (c *CLI) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// errorMessage maps session errors to operator-facing messages.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, bank.ErrNoAccounts):
		return "No accounts available."
	case errors.Is(err, bank.ErrInvalidAmount):
		return "The amount entered is invalid."
	case errors.Is(err, bank.ErrInsufficientBalance):
		return "You do not have sufficient balance."
	case errors.Is(err, bank.ErrExceedsWithdrawalCeiling):
		return "The withdrawal amount exceeds the limit."
	case errors.Is(err, bank.ErrWithdrawalsExhausted):
		return "Maximum number of withdrawals exceeded."
	case errors.Is(err, user.ErrDuplicateTaxID):
		return "A user with this tax ID already exists!"
	case errors.Is(err, user.ErrUserNotFound):
		return "User not found."
	default:
		return err.Error()
	}
}
