package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	PromptAuto  = "auto"
	PromptForm  = "form"
	PromptPlain = "plain"
)

type Config struct {
	BankName       string
	Branch         string
	MaxWithdrawals int
	Currency       string
	AuditLog       string
	LogLevel       log.Level
	PromptMode     string
}

// Load reads the optional dotenv files (".env" when none are given) and
// then builds the config from the environment. A missing file is not an
// error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load env file: %w", err)
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Config{
		BankName:   getenv("BANK_NAME", "BANCO BRAGESCO"),
		Branch:     getenv("BRANCH_CODE", "0001"),
		Currency:   getenv("CURRENCY_SYMBOL", "R$"),
		AuditLog:   os.Getenv("AUDIT_LOG"),
		PromptMode: getenv("PROMPT_MODE", PromptAuto),
	}

	quota, err := strconv.Atoi(getenv("MAX_WITHDRAWALS", "2"))
	if err != nil || quota < 0 {
		return Config{}, fmt.Errorf("MAX_WITHDRAWALS must be a non-negative integer, got %q", os.Getenv("MAX_WITHDRAWALS"))
	}
	cfg.MaxWithdrawals = quota

	level, err := log.ParseLevel(getenv("LOG_LEVEL", "warn"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	switch cfg.PromptMode {
	case PromptAuto, PromptForm, PromptPlain:
	default:
		return Config{}, fmt.Errorf("PROMPT_MODE must be one of auto, form, plain, got %q", cfg.PromptMode)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
