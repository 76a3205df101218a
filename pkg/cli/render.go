package cli

import (
	"fmt"
	"strings"

	"github.com/amirasaad/minibank/pkg/bank"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#EE6FF8"})

	successColor = color.New(color.FgGreen, color.Bold)
	failureColor = color.New(color.FgRed, color.Bold)
)

var menuRows = []struct {
	token string
	label string
}{
	{tokenDeposit, "Deposit"},
	{tokenWithdraw, "Withdraw"},
	{tokenStatement, "Statement"},
	{tokenNewAccount, "New account"},
	{tokenListAccounts, "List accounts"},
	{tokenNewUser, "New user"},
	{tokenQuit, "Quit"},
}

// renderMenu produces the menu panel followed by the "=> " prompt. The
// lipgloss framing is applied only on a terminal; piped sessions get the
// plain banner so their transcripts stay stable.
func (c *CLI) renderMenu() string {
	var b strings.Builder
	for _, row := range menuRows {
		fmt.Fprintf(&b, "[%s]\t%s\n", row.token, row.label)
	}
	body := strings.TrimRight(b.String(), "\n")

	if c.interactive {
		panel := panelStyle.Render(titleStyle.Render("MENU") + "\n" + body)
		return "\n" + panel + "\n=> "
	}
	return "\n================ MENU ================\n" + body + "\n=> "
}

// renderStatement produces the framed statement panel.
func (c *CLI) renderStatement(st bank.Statement) string {
	body := strings.TrimRight(st.Render(), "\n")
	if c.interactive {
		panel := panelStyle.Render(titleStyle.Render("STATEMENT") + "\n" + body)
		return "\n" + panel + "\n"
	}
	var b strings.Builder
	b.WriteString("\n================ STATEMENT ================\n")
	b.WriteString(body)
	b.WriteString("\n===========================================\n")
	return b.String()
}

func (c *CLI) success(msg string) {
	line := fmt.Sprintf("\n=== %s ===", msg)
	if c.interactive {
		successColor.Fprintln(c.out, line)
		return
	}
	fmt.Fprintln(c.out, line)
}

func (c *CLI) failure(msg string) {
	line := fmt.Sprintf("\n@@@ Operation failed! %s @@@", msg)
	if c.interactive {
		failureColor.Fprintln(c.out, line)
		return
	}
	fmt.Fprintln(c.out, line)
}
