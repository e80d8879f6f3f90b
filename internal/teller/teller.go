// Package teller is the boundary between the console and the account model.
// Every mutating call is written to the audit journal after the domain has
// decided its outcome.
package teller

import (
	"io"
	"os"

	"console-bank/internal/audit"
	"console-bank/internal/domain"
	"console-bank/internal/registry"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
)

type Options struct {
	// MaxWithdrawals is the quota given to every new checking account.
	MaxWithdrawals int
	Logger         *log.Logger
}

type Teller struct {
	registry       *registry.Registry
	journal        *audit.Journal
	maxWithdrawals int
	log            *log.Logger
}

func New(reg *registry.Registry, journal *audit.Journal, opts Options) *Teller {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "teller"})
	}
	if journal == nil {
		journal = audit.New(io.Discard)
	}

	return &Teller{
		registry:       reg,
		journal:        journal,
		maxWithdrawals: opts.MaxWithdrawals,
		log:            logger,
	}
}

func (t *Teller) CustomerExists(taxID string) bool {
	return t.registry.Exists(taxID)
}

func (t *Teller) Customer(taxID string) (*domain.Customer, error) {
	return t.registry.FindCustomer(taxID)
}

func (t *Teller) Customers() []*domain.Customer {
	return t.registry.Customers()
}

func (t *Teller) Account(taxID string, number int) (*domain.Account, error) {
	return t.registry.FindAccount(taxID, number)
}

// RegisterCustomer adds an individual customer to the registry.
func (t *Teller) RegisterCustomer(p domain.Profile) (*domain.Customer, error) {
	c, err := t.registry.AddCustomer(p)
	t.journal.Record("register_customer", outcome(err), "tax_id", p.TaxID, "name", p.Name)
	if err != nil {
		t.log.Warn("customer registration refused", "tax_id", p.TaxID, "err", err)
		return nil, err
	}

	t.log.Info("customer registered", "tax_id", p.TaxID)
	return c, nil
}

// OpenAccount opens a checking account with the given overdraft limit and
// the configured withdrawal quota.
func (t *Teller) OpenAccount(taxID string, overdraft decimal.Decimal) (*domain.Account, error) {
	a, err := t.registry.OpenChecking(taxID, domain.CheckingTerms{
		OverdraftLimit: overdraft,
		MaxWithdrawals: t.maxWithdrawals,
	})

	args := []any{"tax_id", taxID, "overdraft", overdraft.String()}
	if a != nil {
		args = append(args, "account", a.Number())
	}
	t.journal.Record("open_account", outcome(err), args...)
	if err != nil {
		t.log.Warn("account opening refused", "tax_id", taxID, "err", err)
		return nil, err
	}

	t.log.Info("account opened", "tax_id", taxID, "account", a.Number())
	return a, nil
}

// Deposit applies a deposit to the account and reports whether it was
// accepted.
func (t *Teller) Deposit(a *domain.Account, amount decimal.Decimal) bool {
	return t.apply("deposit", a, amount, a.Deposit)
}

// Withdraw applies a withdrawal to the account and reports whether it was
// accepted.
func (t *Teller) Withdraw(a *domain.Account, amount decimal.Decimal) bool {
	return t.apply("withdraw", a, amount, a.Withdraw)
}

func (t *Teller) apply(op string, a *domain.Account, amount decimal.Decimal, fn func(decimal.Decimal) bool) bool {
	ok := fn(amount)

	t.journal.Record(op, ok,
		"tax_id", a.Holder().TaxID(),
		"account", a.Number(),
		"amount", amount.String(),
		"balance", a.Balance().String(),
	)
	if !ok {
		t.log.Info(op+" declined", "tax_id", a.Holder().TaxID(), "account", a.Number(), "amount", amount.String())
		return false
	}

	t.log.Info(op+" applied", "tax_id", a.Holder().TaxID(), "account", a.Number(), "amount", amount.String())
	return true
}

func outcome(err error) string {
	if err != nil {
		return err.Error()
	}
	return "ok"
}
