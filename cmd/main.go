package main

import (
	"os"

	"console-bank/internal/audit"
	"console-bank/internal/config"
	"console-bank/internal/registry"
	"console-bank/internal/shell"
	"console-bank/internal/statement"
	"console-bank/internal/teller"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
)

func newPrompter(mode string) shell.Prompter {
	switch mode {
	case config.PromptForm:
		return shell.NewFormPrompter()
	case config.PromptPlain:
		return shell.NewLinePrompter(os.Stdin, os.Stdout)
	}

	// auto: forms only make sense on a real terminal
	fd := os.Stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return shell.NewFormPrompter()
	}
	return shell.NewLinePrompter(os.Stdin, os.Stdout)
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "bank"})

	// Load configuration from .env and the environment
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", "err", err)
	}
	logger.SetLevel(cfg.LogLevel)

	journal, err := audit.Open(cfg.AuditLog)
	if err != nil {
		logger.Fatal("failed to open audit log", "path", cfg.AuditLog, "err", err)
	}

	reg := registry.New(cfg.Branch)
	t := teller.New(reg, journal, teller.Options{
		MaxWithdrawals: cfg.MaxWithdrawals,
		Logger:         logger.WithPrefix("teller"),
	})

	sh := shell.New(t, statement.New(cfg.Currency), newPrompter(cfg.PromptMode), os.Stdout, cfg.BankName, logger.WithPrefix("shell"))
	runErr := sh.Run()

	if err := journal.Close(); err != nil {
		logger.Warn("failed to close audit log", "err", err)
	}
	if runErr != nil {
		logger.Error("session ended with error", "err", runErr)
		os.Exit(1)
	}
}
