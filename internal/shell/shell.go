// Package shell runs the interactive menu of one banking session.
package shell

import (
	"errors"
	"fmt"
	"io"

	"console-bank/internal/domain"
	"console-bank/internal/parser"
	"console-bank/internal/registry"
	"console-bank/internal/statement"
	"console-bank/internal/teller"

	"github.com/charmbracelet/log"
)

const (
	msgSuccess  = "Operation completed successfully!"
	msgDeclined = "This transaction could not be completed. Please contact the finance department."
	msgInvalid  = "Invalid operation, please select the desired operation again."
)

var menu = []Option{
	{Key: "d", Label: "Deposit"},
	{Key: "s", Label: "Withdraw"},
	{Key: "e", Label: "Statement"},
	{Key: "a", Label: "Add customer"},
	{Key: "c", Label: "Create account"},
	{Key: "l", Label: "List accounts"},
	{Key: "q", Label: "Quit"},
}

type Shell struct {
	teller *teller.Teller
	render *statement.Renderer
	prompt Prompter
	out    io.Writer
	title  string
	log    *log.Logger
}

func New(t *teller.Teller, r *statement.Renderer, p Prompter, out io.Writer, title string, logger *log.Logger) *Shell {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Shell{teller: t, render: r, prompt: p, out: out, title: title, log: logger}
}

// Run loops over the menu until the user quits or input ends. Both are a
// normal end of session and return nil.
func (s *Shell) Run() error {
	for {
		s.render.Banner(s.out, s.title)

		choice, err := s.prompt.Menu("Choose an operation", menu)
		if err != nil {
			return endOfInput(err)
		}
		s.log.Debug("menu choice", "option", choice)

		switch choice {
		case "d":
			err = s.transact(domain.Deposit)
		case "s":
			err = s.transact(domain.Withdrawal)
		case "e":
			err = s.statement()
		case "a":
			err = s.addCustomer()
		case "c":
			err = s.createAccount()
		case "l":
			s.listAccounts()
		case "q":
			return nil
		default:
			s.say(msgInvalid)
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

func (s *Shell) transact(kind domain.Kind) error {
	taxID, ok, err := s.askTaxID("Account holder tax id")
	if !ok {
		return err
	}

	c, err := s.teller.Customer(taxID)
	if err != nil {
		s.say("Customer not found: %s", taxID)
		return nil
	}
	if !c.HasAccounts() {
		s.say("No accounts registered for tax id %s!", taxID)
		return nil
	}

	raw, err := s.prompt.Input("Account number", validateWith(parser.AccountNumber))
	if err != nil {
		return err
	}
	number, err := parser.AccountNumber(raw)
	if err != nil {
		s.say("Invalid account number: %s", raw)
		return nil
	}

	a, err := s.teller.Account(taxID, number)
	if err != nil {
		s.say("Account %d does not exist for tax id %s!", number, taxID)
		return nil
	}

	label := "deposit"
	if kind == domain.Withdrawal {
		label = "withdrawal"
	}
	raw, err = s.prompt.Input(fmt.Sprintf("Amount of the %s", label), validateWith(parser.Amount))
	if err != nil {
		return err
	}
	amount, err := parser.Amount(raw)
	if err != nil {
		s.say("Invalid amount: %s", raw)
		return nil
	}

	var applied bool
	if kind == domain.Deposit {
		applied = s.teller.Deposit(a, amount)
	} else {
		applied = s.teller.Withdraw(a, amount)
	}
	if !applied {
		s.say(msgDeclined)
		return nil
	}
	s.say(msgSuccess)
	return nil
}

func (s *Shell) statement() error {
	taxID, ok, err := s.askTaxID("Customer tax id")
	if !ok {
		return err
	}

	c, err := s.teller.Customer(taxID)
	if err != nil || !c.HasAccounts() {
		s.say("There is no account for tax id %s", taxID)
		return nil
	}

	raw, err := s.prompt.Input("Filter ([a] all, [d] deposits, [s] withdrawals)", validateWith(parser.StatementFilter))
	if err != nil {
		return err
	}
	kinds, err := parser.StatementFilter(raw)
	if err != nil {
		s.say("Unknown filter: %s", raw)
		return nil
	}
	for _, a := range c.Accounts() {
		s.render.Statement(s.out, a, kinds...)
	}
	return nil
}

func (s *Shell) addCustomer() error {
	taxID, ok, err := s.askTaxID("Tax id of the new customer (digits only)")
	if !ok {
		return err
	}
	if s.teller.CustomerExists(taxID) {
		s.say("A customer with tax id %s already exists", taxID)
		return nil
	}

	name, err := s.prompt.Input("Full name", validateWith(parser.Text))
	if err != nil {
		return err
	}
	rawBirth, err := s.prompt.Input("Date of birth (dd-mm-yyyy)", validateWith(parser.BirthDate))
	if err != nil {
		return err
	}
	address, err := s.prompt.Input("Address (street, number - district - city/state)", validateWith(parser.Text))
	if err != nil {
		return err
	}

	p := domain.Profile{TaxID: taxID}
	if p.Name, err = parser.Text(name); err != nil {
		s.say("Name is required")
		return nil
	}
	if p.BirthDate, err = parser.BirthDate(rawBirth); err != nil {
		s.say("Invalid date of birth: %s", rawBirth)
		return nil
	}
	if p.Address, err = parser.Text(address); err != nil {
		s.say("Address is required")
		return nil
	}

	if _, err := s.teller.RegisterCustomer(p); err != nil {
		if errors.Is(err, registry.ErrDuplicateCustomer) {
			s.say("A customer with tax id %s already exists", taxID)
			return nil
		}
		return err
	}
	s.say("Customer created successfully!")
	return nil
}

func (s *Shell) createAccount() error {
	taxID, ok, err := s.askTaxID("Tax id of the account holder")
	if !ok {
		return err
	}
	if !s.teller.CustomerExists(taxID) {
		s.say("Customer not found, account creation cancelled!")
		return nil
	}

	raw, err := s.prompt.Input("Overdraft limit", validateWith(parser.Limit))
	if err != nil {
		return err
	}
	limit, err := parser.Limit(raw)
	if err != nil {
		s.say("Invalid limit: %s", raw)
		return nil
	}

	a, err := s.teller.OpenAccount(taxID, limit)
	if err != nil {
		if errors.Is(err, registry.ErrCustomerNotFound) {
			s.say("Customer not found, account creation cancelled!")
			return nil
		}
		return err
	}
	s.say("Account %d created successfully!", a.Number())
	return nil
}

func (s *Shell) listAccounts() {
	customers := s.teller.Customers()
	if len(customers) == 0 {
		s.say("No customers registered!")
		return
	}
	for _, c := range customers {
		if c.HasAccounts() {
			s.render.Accounts(s.out, c)
		}
	}
}

// askTaxID prompts for a tax id. ok is false when the turn is over: either
// input failed (err set) or the answer was rejected and already reported.
func (s *Shell) askTaxID(title string) (taxID string, ok bool, err error) {
	raw, err := s.prompt.Input(title, validateWith(parser.TaxID))
	if err != nil {
		return "", false, err
	}
	taxID, perr := parser.TaxID(raw)
	if perr != nil {
		s.say("Invalid tax id: %s", raw)
		return "", false, nil
	}
	return taxID, true, nil
}

func (s *Shell) say(format string, args ...any) {
	fmt.Fprintf(s.out, "\n"+format+"\n", args...)
}

func validateWith[T any](parse func(string) (T, error)) func(string) error {
	return func(raw string) error {
		_, err := parse(raw)
		return err
	}
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
