// Package statement renders the human-readable views of the registry: the
// session banner, account statements and account listings.
package statement

import (
	"fmt"
	"io"
	"strings"

	"console-bank/internal/domain"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const width = 50

type Renderer struct {
	currency string
	heading  lipgloss.Style
}

func New(currency string) *Renderer {
	return &Renderer{
		currency: currency,
		heading:  lipgloss.NewStyle().Bold(true),
	}
}

// Money formats v rounded to two decimals with thousands separators.
func (r *Renderer) Money(v decimal.Decimal) string {
	v = v.Round(2)
	sign := ""
	if v.IsNegative() {
		sign = "-"
	}

	abs := v.Abs()
	fixed := abs.StringFixed(2)
	cents := fixed[strings.IndexByte(fixed, '.')+1:]
	return r.currency + " " + sign + humanize.BigComma(abs.BigInt()) + "." + cents
}

func (r *Renderer) Banner(w io.Writer, title string) {
	fmt.Fprintln(w, strings.Repeat("*", width))
	fmt.Fprintln(w, r.frame(title, "*"))
	fmt.Fprintln(w, strings.Repeat("*", width))
}

// Statement prints the transactions of a, optionally restricted to kinds,
// followed by the current balance.
func (r *Renderer) Statement(w io.Writer, a *domain.Account, kinds ...domain.Kind) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, r.frame("STATEMENT", "="))
	fmt.Fprintf(w, "Account %d / branch %s (%s)\n", a.Number(), a.Branch(), a.Kind())

	var n int
	for tx := range a.History().Filtered(kinds...) {
		fmt.Fprintf(w, "%-10s %18s  %s\n", tx.Kind, r.Money(tx.Amount), tx.At.Format("02/01/2006 15:04"))
		n++
	}
	if n == 0 {
		fmt.Fprintln(w, "No transactions recorded.")
	}

	fmt.Fprintf(w, "\nBalance: %s\n", r.Money(a.Balance()))
	if a.Kind() == domain.Checking {
		fmt.Fprintf(w, "Overdraft limit: %s | withdrawals left: %d\n",
			r.Money(a.Terms().OverdraftLimit), a.RemainingWithdrawals())
	}
	fmt.Fprintln(w, strings.Repeat("=", width))
}

// Accounts lists every account of c.
func (r *Renderer) Accounts(w io.Writer, c *domain.Customer) {
	fmt.Fprintln(w, strings.Repeat("*", width))
	fmt.Fprintln(w, r.frame("ACTIVE ACCOUNTS", "*"))
	fmt.Fprintln(w, strings.Repeat("*", width))

	if !c.HasAccounts() {
		fmt.Fprintf(w, "Customer with tax id %s has no accounts\n", c.TaxID())
	}
	for _, a := range c.Accounts() {
		fmt.Fprintln(w, "NUMBER: ", a.Number())
		fmt.Fprintln(w, "BRANCH: ", a.Branch())
		fmt.Fprintf(w, "HOLDER:  %s (tax id: %s)\n", c.Name(), c.TaxID())
		fmt.Fprintln(w, "STATUS: ", status(a))
	}
	fmt.Fprintln(w, strings.Repeat("*", width))
}

func (r *Renderer) frame(title, fill string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, r.heading.Render(" "+title+" "),
		lipgloss.WithWhitespaceChars(fill))
}

func status(a *domain.Account) string {
	if a.Active() {
		return "ACTIVE"
	}
	return "INACTIVE"
}
