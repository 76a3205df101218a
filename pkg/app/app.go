// Package app wires configuration, logging, the session core and the menu
// loop into a runnable application.
package app

import (
	"io"
	"log/slog"

	"github.com/amirasaad/minibank/pkg/bank"
	"github.com/amirasaad/minibank/pkg/cli"
	"github.com/amirasaad/minibank/pkg/config"
)

// App is one assembled interactive application.
type App struct {
	Config  *config.App
	Session *bank.Session
	CLI     *cli.CLI
}

// New assembles an App over the given input and output channels.
func New(cfg *config.App, in io.Reader, out io.Writer, interactive bool, logger *slog.Logger) (*App, error) {
	session, err := bank.NewSession(cfg.Bank, logger)
	if err != nil {
		return nil, err
	}
	return &App{
		Config:  cfg,
		Session: session,
		CLI:     cli.New(session, in, out, interactive, logger),
	}, nil
}

// Run executes the menu loop until the operator quits.
func (a *App) Run() error {
	return a.CLI.Run()
}
