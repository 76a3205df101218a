package bank

import (
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/minibank/pkg/money"
)

// Kind classifies a statement entry.
type Kind string

const (
	KindDeposit    Kind = "Deposit"
	KindWithdrawal Kind = "Withdrawal"
)

// Entry is one completed transaction in the session log.
type Entry struct {
	Kind      Kind
	Amount    money.Money
	CreatedAt time.Time
}

func newEntry(kind Kind, amount money.Money) Entry {
	return Entry{Kind: kind, Amount: amount, CreatedAt: time.Now().UTC()}
}

// Line renders the entry in the statement wire format, tab-separated with
// a trailing newline, e.g. "Deposit:\tR$ 100.00\n".
func (e Entry) Line() string {
	return fmt.Sprintf("%s:\t%s\n", e.Kind, e.Amount)
}

// Statement is a read-only snapshot of the session log plus the current
// balance of the transaction target's owner.
type Statement struct {
	Entries []Entry
	Balance money.Money
}

// Empty reports whether no movements were recorded.
func (st Statement) Empty() bool {
	return len(st.Entries) == 0
}

// Render produces the statement body: the log verbatim in append order, or
// the no-movements notice, always followed by the balance line.
func (st Statement) Render() string {
	var b strings.Builder
	if st.Empty() {
		b.WriteString("No movements recorded.\n")
	} else {
		for _, e := range st.Entries {
			b.WriteString(e.Line())
		}
	}
	fmt.Fprintf(&b, "Balance:\t%s\n", st.Balance)
	return b.String()
}
