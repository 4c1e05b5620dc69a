// Package service orchestrates the account domain: it owns the
// registry handle, applies commands, answers queries and emits events
// for out-of-process consumers.
package service

import (
	"context"
	"errors"
	"log"

	"github.com/mohammedmokhtar77/Bank-System/internal/bank"
	"github.com/mohammedmokhtar77/Bank-System/internal/events"
)

// ErrNotSavings reports an interest request against a non-savings
// account.
var ErrNotSavings = errors.New("interest can only be added to a savings account")

// EventPublisher is the slice of the event stream the service needs.
type EventPublisher interface {
	Publish(ctx context.Context, stream, eventType string, data any) error
}

// AccountView is the serialisable projection of an account. The
// credential never appears here.
type AccountView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	AccountType string  `json:"accountType"`
	Balance     float64 `json:"balance"`
	Description string  `json:"description"`
}

// StatsView aggregates registry totals for reporting.
type StatsView struct {
	TotalAccounts int     `json:"totalAccounts"`
	TotalBalance  float64 `json:"totalBalance"`
}

// CreateAccountParams selects a variant and carries its fields. Rate
// and fee fall back to the product defaults when nil.
type CreateAccountParams struct {
	Name           string
	Email          string
	Credential     string
	AccountType    string
	InitialBalance float64
	InterestRate   *float64
	TransactionFee *float64
}

// BankService applies account commands and answers account queries
// against the process-wide registry.
type BankService struct {
	registry  *bank.AccountRegistry
	publisher EventPublisher
}

func NewBankService(registry *bank.AccountRegistry, publisher EventPublisher) *BankService {
	return &BankService{registry: registry, publisher: publisher}
}

// CreateAccount validates, constructs the requested variant and
// registers it. A validation or duplicate-email failure leaves the
// registry untouched.
func (s *BankService) CreateAccount(p CreateAccountParams) (*AccountView, error) {
	var (
		account bank.Account
		err     error
	)
	switch p.AccountType {
	case bank.TypeStandard:
		account, err = bank.NewStandardAccount(p.Name, p.InitialBalance, p.Email, p.Credential)
	case bank.TypeSavings:
		rate := bank.DefaultInterestRate
		if p.InterestRate != nil {
			rate = *p.InterestRate
		}
		account, err = bank.NewSavingsAccount(p.Name, p.InitialBalance, p.Email, p.Credential, rate)
	case bank.TypeChecking:
		fee := bank.DefaultTransactionFee
		if p.TransactionFee != nil {
			fee = *p.TransactionFee
		}
		account, err = bank.NewCheckingAccount(p.Name, p.InitialBalance, p.Email, p.Credential, fee)
	default:
		return nil, bank.ErrInvalidAccountType
	}
	if err != nil {
		return nil, err
	}
	if err := s.registry.Register(account); err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(context.Background(), events.AccountEventsStream, events.AccountCreated, events.AccountCreatedEvent{
		AccountID:   account.ID(),
		Name:        account.Name(),
		Email:       account.Email(),
		AccountType: account.Type(),
		Balance:     account.Balance(),
	}); err != nil {
		log.Printf("Failed to publish account.created event: %v", err)
	}
	return accountToView(account), nil
}

// Deposit credits amount to the account.
func (s *BankService) Deposit(accountID string, amount float64) (*AccountView, error) {
	account, ok := s.registry.FindByID(accountID)
	if !ok {
		return nil, bank.ErrAccountNotFound
	}
	if !account.Deposit(amount) {
		return nil, bank.ErrInvalidAmount
	}
	s.publishBalanceUpdated(account, "deposit", amount)
	return accountToView(account), nil
}

// Withdraw debits amount from the account, dispatching to the variant's
// withdraw (the checking variant also debits its fee).
func (s *BankService) Withdraw(accountID string, amount float64) (*AccountView, error) {
	account, ok := s.registry.FindByID(accountID)
	if !ok {
		return nil, bank.ErrAccountNotFound
	}
	if amount <= 0 {
		return nil, bank.ErrInvalidAmount
	}
	if !account.Withdraw(amount) {
		return nil, bank.ErrInsufficientFunds
	}
	s.publishBalanceUpdated(account, "withdrawal", -amount)
	return accountToView(account), nil
}

// AddInterest accrues interest on a savings account and returns the
// credited amount alongside the updated view.
func (s *BankService) AddInterest(accountID string) (float64, *AccountView, error) {
	account, ok := s.registry.FindByID(accountID)
	if !ok {
		return 0, nil, bank.ErrAccountNotFound
	}
	savings, ok := account.(*bank.SavingsAccount)
	if !ok {
		return 0, nil, ErrNotSavings
	}
	interest := savings.AddInterest()

	if err := s.publisher.Publish(context.Background(), events.AccountEventsStream, events.InterestAccrued, events.InterestAccruedEvent{
		AccountID:  savings.ID(),
		Interest:   interest,
		NewBalance: savings.Balance(),
	}); err != nil {
		log.Printf("Failed to publish interest.accrued event: %v", err)
	}
	return interest, accountToView(account), nil
}

// Transfer authenticates the source credential and moves amount between
// the two accounts.
func (s *BankService) Transfer(sourceID, destinationID string, amount float64, credential string) (*bank.Receipt, error) {
	source, ok := s.registry.FindByID(sourceID)
	if !ok {
		return nil, bank.ErrAccountNotFound
	}
	destination, ok := s.registry.FindByID(destinationID)
	if !ok {
		return nil, bank.ErrAccountNotFound
	}
	receipt, err := bank.Transfer(source, destination, amount, credential)
	if err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(context.Background(), events.TransferEventsStream, events.TransferCompleted, events.TransferCompletedEvent{
		SourceAccountID:      source.ID(),
		DestinationAccountID: destination.ID(),
		SourceName:           receipt.SourceName,
		DestinationName:      receipt.DestinationName,
		Amount:               receipt.Amount,
	}); err != nil {
		log.Printf("Failed to publish transfer.completed event: %v", err)
	}
	return receipt, nil
}

// GetAccount returns the view for one account.
func (s *BankService) GetAccount(accountID string) (*AccountView, error) {
	account, ok := s.registry.FindByID(accountID)
	if !ok {
		return nil, bank.ErrAccountNotFound
	}
	return accountToView(account), nil
}

// ListAccounts returns all account views in creation order.
func (s *BankService) ListAccounts() []AccountView {
	accounts := s.registry.Accounts()
	views := make([]AccountView, len(accounts))
	for i, a := range accounts {
		views[i] = *accountToView(a)
	}
	return views
}

// FindByName returns the first account with the given name.
func (s *BankService) FindByName(name string) (*AccountView, error) {
	account, ok := s.registry.FindByName(name)
	if !ok {
		return nil, bank.ErrAccountNotFound
	}
	return accountToView(account), nil
}

// FindByEmail returns the account holding the given email.
func (s *BankService) FindByEmail(email string) (*AccountView, error) {
	account, ok := s.registry.FindByEmail(email)
	if !ok {
		return nil, bank.ErrAccountNotFound
	}
	return accountToView(account), nil
}

// Stats reports registry totals.
func (s *BankService) Stats() StatsView {
	return StatsView{
		TotalAccounts: s.registry.TotalAccounts(),
		TotalBalance:  s.registry.TotalBalance(),
	}
}

func (s *BankService) publishBalanceUpdated(account bank.Account, operation string, change float64) {
	if err := s.publisher.Publish(context.Background(), events.AccountEventsStream, events.BalanceUpdated, events.BalanceUpdatedEvent{
		AccountID:  account.ID(),
		Operation:  operation,
		Change:     change,
		NewBalance: account.Balance(),
	}); err != nil {
		log.Printf("Failed to publish balance.updated event: %v", err)
	}
}

func accountToView(a bank.Account) *AccountView {
	return &AccountView{
		ID:          a.ID(),
		Name:        a.Name(),
		Email:       a.Email(),
		AccountType: a.Type(),
		Balance:     a.Balance(),
		Description: a.Describe(),
	}
}
