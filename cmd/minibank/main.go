package main

import (
	"fmt"
	"os"

	"github.com/amirasaad/minibank/pkg/app"
	"github.com/amirasaad/minibank/pkg/config"
	log "github.com/charmbracelet/log"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	logger := app.SetupLogger(cfg.Log)

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	a, err := app.New(cfg, os.Stdin, os.Stdout, interactive, logger)
	if err != nil {
		return fmt.Errorf("failed to assemble application: %w", err)
	}

	logger.Info("starting session",
		"env", cfg.Env,
		"branch", cfg.Bank.BranchCode,
		"interactive", interactive,
	)

	return a.Run()
}
