package domain

import "time"

type CustomerKind int

const (
	Individual CustomerKind = iota
)

func (k CustomerKind) String() string {
	if k == Individual {
		return "individual"
	}
	return "unknown"
}

// Profile is the identity data captured at registration.
type Profile struct {
	TaxID     string
	Name      string
	BirthDate time.Time
	Address   string
}

// Customer owns accounts. Profile fields never change after construction.
type Customer struct {
	kind     CustomerKind
	profile  Profile
	accounts []*Account
}

func NewIndividual(p Profile) *Customer {
	return &Customer{kind: Individual, profile: p}
}

func (c *Customer) Kind() CustomerKind   { return c.kind }
func (c *Customer) TaxID() string        { return c.profile.TaxID }
func (c *Customer) Name() string         { return c.profile.Name }
func (c *Customer) BirthDate() time.Time { return c.profile.BirthDate }
func (c *Customer) Address() string      { return c.profile.Address }

func (c *Customer) AddAccount(a *Account) {
	c.accounts = append(c.accounts, a)
}

func (c *Customer) HasAccounts() bool {
	return len(c.accounts) > 0
}

// Accounts returns the owned accounts in opening order.
func (c *Customer) Accounts() []*Account {
	out := make([]*Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// Account finds an owned account by number.
func (c *Customer) Account(number int) (*Account, bool) {
	for _, a := range c.accounts {
		if a.number == number {
			return a, true
		}
	}
	return nil, false
}
