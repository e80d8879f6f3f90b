package parser

import (
	"testing"
	"time"

	"console-bank/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxID(t *testing.T) {
	got, err := TaxID(" 123.456.789-00 ")
	require.NoError(t, err)
	assert.Equal(t, "12345678900", got)

	for _, raw := range []string{"", "   ", "12a45", "abc"} {
		_, err := TaxID(raw)
		assert.ErrorIs(t, err, ErrInvalidTaxID, raw)
	}
}

func TestAmount(t *testing.T) {
	cases := map[string]string{
		"100":         "100",
		" 100.50 ":    "100.5",
		"100,50":      "100.5",
		"1.234,56":    "1234.56",
		"R$ 10":       "10",
		"-5":          "-5",
		"0":           "0",
		"$ 2.25":      "2.25",
		"1.000.000,0": "1000000",
		"-1.234,5":    "-1234.5",
		"1234,56":     "1234.56",
	}
	for raw, want := range cases {
		got, err := Amount(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got.String(), raw)
	}

	invalid := []string{
		"", "abc", "1,2,3", "ten", "-",
		"1,234.56", "1,000", "10,5.5", "12.34,56", "1.2345,6", "1e3", ",5", "5,",
	}
	for _, raw := range invalid {
		_, err := Amount(raw)
		assert.ErrorIs(t, err, ErrInvalidAmount, raw)
	}
}

func TestLimit(t *testing.T) {
	got, err := Limit("500")
	require.NoError(t, err)
	assert.Equal(t, "500", got.String())

	_, err = Limit("-1")
	assert.ErrorIs(t, err, ErrNegativeLimit)

	_, err = Limit("x")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestAccountNumber(t *testing.T) {
	n, err := AccountNumber(" 2 ")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, raw := range []string{"0", "-1", "x", ""} {
		_, err := AccountNumber(raw)
		assert.ErrorIs(t, err, ErrInvalidAccountNumber, raw)
	}
}

func TestBirthDate(t *testing.T) {
	want := time.Date(1990, 5, 31, 0, 0, 0, 0, time.UTC)
	for _, raw := range []string{"31-05-1990", "31/05/1990", "1990-05-31"} {
		got, err := BirthDate(raw)
		require.NoError(t, err, raw)
		assert.True(t, want.Equal(got), raw)
	}

	_, err := BirthDate("31-13-1990")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestText(t *testing.T) {
	got, err := Text("  Rua A, 1 ")
	require.NoError(t, err)
	assert.Equal(t, "Rua A, 1", got)

	_, err = Text(" ")
	assert.ErrorIs(t, err, ErrRequired)
}

func TestStatementFilter(t *testing.T) {
	kinds, err := StatementFilter("")
	require.NoError(t, err)
	assert.Empty(t, kinds)

	kinds, err = StatementFilter("D")
	require.NoError(t, err)
	assert.Equal(t, []domain.Kind{domain.Deposit}, kinds)

	kinds, err = StatementFilter("s")
	require.NoError(t, err)
	assert.Equal(t, []domain.Kind{domain.Withdrawal}, kinds)

	_, err = StatementFilter("zzz")
	assert.ErrorIs(t, err, ErrInvalidFilter)
}
