package registry

import (
	"testing"

	"console-bank/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var terms = domain.CheckingTerms{OverdraftLimit: decimal.NewFromInt(500), MaxWithdrawals: 2}

func TestAddCustomerRejectsDuplicates(t *testing.T) {
	r := New("0001")

	c, err := r.AddCustomer(domain.Profile{TaxID: "111", Name: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", c.Name())
	assert.True(t, r.Exists("111"))

	_, err = r.AddCustomer(domain.Profile{TaxID: "111", Name: "Other"})
	assert.ErrorIs(t, err, ErrDuplicateCustomer)

	got, err := r.FindCustomer("111")
	require.NoError(t, err)
	assert.Same(t, c, got)
	assert.Len(t, r.Customers(), 1)
}

func TestFindCustomerUnknown(t *testing.T) {
	r := New("0001")

	_, err := r.FindCustomer("999")
	assert.ErrorIs(t, err, ErrCustomerNotFound)
	assert.False(t, r.Exists("999"))
}

func TestCustomersKeepRegistrationOrder(t *testing.T) {
	r := New("0001")
	for _, id := range []string{"3", "1", "2"} {
		_, err := r.AddCustomer(domain.Profile{TaxID: id})
		require.NoError(t, err)
	}

	var ids []string
	for _, c := range r.Customers() {
		ids = append(ids, c.TaxID())
	}
	assert.Equal(t, []string{"3", "1", "2"}, ids)
}

func TestOpenCheckingNumbersPerCustomer(t *testing.T) {
	r := New("0042")
	_, err := r.AddCustomer(domain.Profile{TaxID: "111"})
	require.NoError(t, err)
	_, err = r.AddCustomer(domain.Profile{TaxID: "222"})
	require.NoError(t, err)

	a1, err := r.OpenChecking("111", terms)
	require.NoError(t, err)
	a2, err := r.OpenChecking("111", terms)
	require.NoError(t, err)
	b1, err := r.OpenChecking("222", terms)
	require.NoError(t, err)

	assert.Equal(t, 1, a1.Number())
	assert.Equal(t, 2, a2.Number())
	assert.Equal(t, 1, b1.Number())
	assert.Equal(t, "0042", b1.Branch())
	assert.Equal(t, domain.Checking, a1.Kind())
	assert.Equal(t, "111", a1.Holder().TaxID())

	got, err := r.FindAccount("222", 1)
	require.NoError(t, err)
	assert.Same(t, b1, got)

	got, err = r.FindAccount("111", 1)
	require.NoError(t, err)
	assert.Same(t, a1, got)
}

func TestOpenCheckingUnknownCustomer(t *testing.T) {
	r := New("0001")

	_, err := r.OpenChecking("404", terms)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestFindAccountErrors(t *testing.T) {
	r := New("0001")
	_, err := r.AddCustomer(domain.Profile{TaxID: "111"})
	require.NoError(t, err)

	_, err = r.FindAccount("404", 1)
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	_, err = r.FindAccount("111", 1)
	assert.ErrorIs(t, err, ErrNoAccounts)

	_, err = r.OpenChecking("111", terms)
	require.NoError(t, err)

	_, err = r.FindAccount("111", 2)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}
