package domain

import "github.com/shopspring/decimal"

type AccountKind int

const (
	Basic AccountKind = iota
	Checking
)

func (k AccountKind) String() string {
	switch k {
	case Basic:
		return "basic"
	case Checking:
		return "checking"
	default:
		return "unknown"
	}
}

// Ledger is the capability every account kind exposes to callers that only
// move money.
type Ledger interface {
	Deposit(amount decimal.Decimal) bool
	Withdraw(amount decimal.Decimal) bool
	Balance() decimal.Decimal
}

// CheckingTerms are the extra rules of a checking account.
type CheckingTerms struct {
	OverdraftLimit decimal.Decimal
	MaxWithdrawals int
}

// Account holds a balance and its history. The kind field selects the
// withdrawal policy; terms is only set for Checking.
type Account struct {
	number  int
	branch  string
	holder  *Customer
	balance decimal.Decimal
	active  bool
	history History

	kind        AccountKind
	terms       CheckingTerms
	withdrawals int
}

var _ Ledger = (*Account)(nil)

// NewAccount opens a basic account with a zero balance.
func NewAccount(holder *Customer, number int, branch string) *Account {
	if holder == nil {
		panic(ErrNilHolder)
	}
	return &Account{
		number:  number,
		branch:  branch,
		holder:  holder,
		balance: decimal.Zero,
		active:  true,
		kind:    Basic,
	}
}

// NewCheckingAccount opens a checking account with overdraft and a
// withdrawal quota.
func NewCheckingAccount(holder *Customer, number int, branch string, terms CheckingTerms) *Account {
	if terms.OverdraftLimit.IsNegative() {
		panic(ErrNegativeOverdraft)
	}
	if terms.MaxWithdrawals < 0 {
		panic(ErrNegativeQuota)
	}

	a := NewAccount(holder, number, branch)
	a.kind = Checking
	a.terms = terms
	return a
}

func (a *Account) Number() int              { return a.number }
func (a *Account) Branch() string           { return a.branch }
func (a *Account) Holder() *Customer        { return a.holder }
func (a *Account) Active() bool             { return a.active }
func (a *Account) Kind() AccountKind        { return a.kind }
func (a *Account) Balance() decimal.Decimal { return a.balance }
func (a *Account) History() *History        { return &a.history }
func (a *Account) Terms() CheckingTerms     { return a.terms }
func (a *Account) WithdrawalCount() int     { return a.withdrawals }

// RemainingWithdrawals is the quota left on a checking account. Basic
// accounts have no quota and report -1.
func (a *Account) RemainingWithdrawals() int {
	if a.kind != Checking {
		return -1
	}
	return a.terms.MaxWithdrawals - a.withdrawals
}

// Deposit credits amount and records it. Non-positive amounts are declined.
func (a *Account) Deposit(amount decimal.Decimal) bool {
	if !amount.IsPositive() {
		return false
	}
	return NewTransaction(Deposit, amount).Register(a)
}

// Withdraw debits amount under the policy of the account kind and records
// it. Any failed rule declines the whole withdrawal without side effects.
func (a *Account) Withdraw(amount decimal.Decimal) bool {
	if !amount.IsPositive() {
		return false
	}
	return NewTransaction(Withdrawal, amount).Register(a)
}

func (a *Account) credit(amount decimal.Decimal) bool {
	a.balance = a.balance.Add(amount)
	return true
}

func (a *Account) debit(amount decimal.Decimal) bool {
	switch a.kind {
	case Checking:
		if amount.GreaterThan(a.balance.Add(a.terms.OverdraftLimit)) {
			return false
		}
		if a.withdrawals >= a.terms.MaxWithdrawals {
			return false
		}
		a.balance = a.balance.Sub(amount)
		a.withdrawals++
		return true
	default:
		if amount.GreaterThan(a.balance) {
			return false
		}
		a.balance = a.balance.Sub(amount)
		return true
	}
}
