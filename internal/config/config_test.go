package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{"BANK_NAME", "BRANCH_CODE", "MAX_WITHDRAWALS", "CURRENCY_SYMBOL", "AUDIT_LOG", "LOG_LEVEL", "PROMPT_MODE"}

// clearEnv unsets every config key for the test and restores them after.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "BANCO BRAGESCO", cfg.BankName)
	assert.Equal(t, "0001", cfg.Branch)
	assert.Equal(t, 2, cfg.MaxWithdrawals)
	assert.Equal(t, "R$", cfg.Currency)
	assert.Empty(t, cfg.AuditLog)
	assert.Equal(t, log.WarnLevel, cfg.LogLevel)
	assert.Equal(t, PromptAuto, cfg.PromptMode)
}

func TestOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("BANK_NAME", "GOPHER BANK")
	t.Setenv("BRANCH_CODE", "0042")
	t.Setenv("MAX_WITHDRAWALS", "5")
	t.Setenv("CURRENCY_SYMBOL", "$")
	t.Setenv("AUDIT_LOG", "/tmp/audit.log")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PROMPT_MODE", "plain")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, Config{
		BankName:       "GOPHER BANK",
		Branch:         "0042",
		MaxWithdrawals: 5,
		Currency:       "$",
		AuditLog:       "/tmp/audit.log",
		LogLevel:       log.DebugLevel,
		PromptMode:     PromptPlain,
	}, cfg)
}

func TestInvalidValues(t *testing.T) {
	cases := map[string]string{
		"MAX_WITHDRAWALS": "-1",
		"LOG_LEVEL":       "loud",
		"PROMPT_MODE":     "gui",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			_, err := FromEnv()
			assert.Error(t, err)
		})
	}

	clearEnv(t)
	t.Setenv("MAX_WITHDRAWALS", "two")
	_, err := FromEnv()
	assert.Error(t, err)
}

func TestLoadDotenv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("MAX_WITHDRAWALS=3\nBANK_NAME=\"DOTENV BANK\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.MaxWithdrawals)
	assert.Equal(t, "DOTENV BANK", cfg.BankName)
}

func TestLoadMissingFileIsIgnored(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.MaxWithdrawals)
}
