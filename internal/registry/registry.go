package registry

import (
	"errors"
	"fmt"

	"console-bank/internal/domain"
)

var (
	ErrDuplicateCustomer = errors.New("customer already registered")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrNoAccounts        = errors.New("customer has no accounts")
	ErrAccountNotFound   = errors.New("account not found")
)

// Registry is the in-memory directory of one session: customers in
// registration order, indexed by tax id. It is not safe for concurrent use.
type Registry struct {
	branch    string
	customers []*domain.Customer
	byTaxID   map[string]*domain.Customer
}

// New creates an empty registry whose accounts all belong to branch.
func New(branch string) *Registry {
	return &Registry{
		branch:  branch,
		byTaxID: make(map[string]*domain.Customer),
	}
}

func (r *Registry) Branch() string {
	return r.branch
}

// Exists reports whether a customer with taxID is registered.
func (r *Registry) Exists(taxID string) bool {
	_, ok := r.byTaxID[taxID]
	return ok
}

// AddCustomer registers an individual customer. The tax id must be unique.
func (r *Registry) AddCustomer(p domain.Profile) (*domain.Customer, error) {
	if r.Exists(p.TaxID) {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateCustomer, p.TaxID)
	}

	c := domain.NewIndividual(p)
	r.customers = append(r.customers, c)
	r.byTaxID[p.TaxID] = c
	return c, nil
}

// FindCustomer looks up a customer by tax id.
func (r *Registry) FindCustomer(taxID string) (*domain.Customer, error) {
	c, ok := r.byTaxID[taxID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, taxID)
	}
	return c, nil
}

// Customers returns every registered customer in registration order.
func (r *Registry) Customers() []*domain.Customer {
	out := make([]*domain.Customer, len(r.customers))
	copy(out, r.customers)
	return out
}

// OpenChecking opens a checking account for the customer. Account numbers
// are counted per customer (existing accounts + 1), so two customers can
// both hold account 1 in the same branch; lookups always go through the
// owning customer.
func (r *Registry) OpenChecking(taxID string, terms domain.CheckingTerms) (*domain.Account, error) {
	c, err := r.FindCustomer(taxID)
	if err != nil {
		return nil, err
	}

	number := len(c.Accounts()) + 1
	a := domain.NewCheckingAccount(c, number, r.branch, terms)
	c.AddAccount(a)
	return a, nil
}

// FindAccount resolves an account through its owner.
func (r *Registry) FindAccount(taxID string, number int) (*domain.Account, error) {
	c, err := r.FindCustomer(taxID)
	if err != nil {
		return nil, err
	}
	if !c.HasAccounts() {
		return nil, fmt.Errorf("%w: %s", ErrNoAccounts, taxID)
	}

	a, ok := c.Account(number)
	if !ok {
		return nil, fmt.Errorf("%w: %d for %s", ErrAccountNotFound, number, taxID)
	}
	return a, nil
}
