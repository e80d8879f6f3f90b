package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Kind int

const (
	Deposit Kind = iota
	Withdrawal
)

func (k Kind) String() string {
	switch k {
	case Deposit:
		return "Deposit"
	case Withdrawal:
		return "Withdrawal"
	default:
		return "Unknown"
	}
}

// Transaction is one completed operation on an account. Values are never
// edited once built; Kind and Amount are the observable identity, ID and
// At only exist for statements and the audit log.
type Transaction struct {
	ID     uuid.UUID
	Kind   Kind
	Amount decimal.Decimal
	At     time.Time
}

// NewTransaction builds a transaction command. A non-positive amount is a
// caller bug and panics.
func NewTransaction(kind Kind, amount decimal.Decimal) Transaction {
	mustBeValid(kind, amount)

	return Transaction{
		ID:     uuid.New(),
		Kind:   kind,
		Amount: amount,
		At:     time.Now(),
	}
}

// Register applies the transaction to the account and records it in the
// account history only when the account accepted it. A transaction that
// NewTransaction would refuse panics here too.
func (t Transaction) Register(a *Account) bool {
	mustBeValid(t.Kind, t.Amount)
	if !a.active {
		panic(ErrInactiveAccount)
	}

	var ok bool
	switch t.Kind {
	case Deposit:
		ok = a.credit(t.Amount)
	case Withdrawal:
		ok = a.debit(t.Amount)
	}
	if !ok {
		return false
	}

	a.history.append(t)
	return true
}

func mustBeValid(kind Kind, amount decimal.Decimal) {
	if !amount.IsPositive() {
		panic(ErrNonPositiveAmount)
	}
	if kind != Deposit && kind != Withdrawal {
		panic(ErrUnknownKind)
	}
}
