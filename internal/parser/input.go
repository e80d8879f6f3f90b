// Package parser turns raw console text into values the registry and the
// domain accept. It never decides business outcomes: a parsed negative
// deposit is still handed to the account, which declines it.
package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"console-bank/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidTaxID         = errors.New("tax id must contain only digits")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrNegativeLimit        = errors.New("limit must be >= 0")
	ErrInvalidAccountNumber = errors.New("account number must be a positive integer")
	ErrInvalidDate          = errors.New("date must be dd-mm-yyyy")
	ErrRequired             = errors.New("value is required")
	ErrInvalidFilter        = errors.New("unknown statement filter")
)

var dateLayouts = []string{"02-01-2006", "02/01/2006", "2006-01-02"}

var (
	commaAmount = regexp.MustCompile(`^(\d{1,3}(\.\d{3})+|\d+),\d{1,2}$`)
	dotAmount   = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

// TaxID strips the usual punctuation ("123.456.789-00") and requires the
// rest to be digits.
func TaxID(raw string) (string, error) {
	cleaned := strings.NewReplacer(".", "", "-", "", "/", "", " ", "").Replace(strings.TrimSpace(raw))
	if cleaned == "" {
		return "", ErrInvalidTaxID
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: %q", ErrInvalidTaxID, raw)
		}
	}
	return cleaned, nil
}

// Amount parses "100", "100.50", "100,50" and "1.234,56". A leading
// currency symbol is ignored. With a comma the comma is the decimal mark,
// any dots must group thousands and at most two decimals follow, so
// "1,234.56" and "1,000" are refused instead of guessed.
func Amount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(strings.TrimPrefix(s, "R$"))
	s = strings.TrimSpace(strings.TrimPrefix(s, "$"))

	digits, negative := strings.CutPrefix(s, "-")
	switch {
	case commaAmount.MatchString(digits):
		digits = strings.ReplaceAll(digits, ".", "")
		digits = strings.Replace(digits, ",", ".", 1)
	case dotAmount.MatchString(digits):
	default:
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}

	v, err := decimal.NewFromString(digits)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	if negative {
		v = v.Neg()
	}
	return v, nil
}

// Limit is an Amount that may not be negative.
func Limit(raw string) (decimal.Decimal, error) {
	v, err := Amount(raw)
	if err != nil {
		return decimal.Zero, err
	}
	if v.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrNegativeLimit, v)
	}
	return v, nil
}

func AccountNumber(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAccountNumber, raw)
	}
	return n, nil
}

func BirthDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}

// Text trims free text and rejects empty input.
func Text(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ErrRequired
	}
	return s, nil
}

// StatementFilter maps the statement prompt answer to history kinds. An
// empty answer or "a" means every kind.
func StatementFilter(raw string) ([]domain.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "a", "all":
		return nil, nil
	case "d", "deposit", "deposits":
		return []domain.Kind{domain.Deposit}, nil
	case "s", "w", "withdrawal", "withdrawals":
		return []domain.Kind{domain.Withdrawal}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFilter, raw)
	}
}
