package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohammedmokhtar77/Bank-System/internal/bank"
	"github.com/mohammedmokhtar77/Bank-System/internal/events"
)

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	mu        sync.Mutex
	published []publishedEvent
}

type publishedEvent struct {
	Stream string
	Type   string
	Data   any
}

func (p *recordingPublisher) Publish(_ context.Context, stream, eventType string, data any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, publishedEvent{Stream: stream, Type: eventType, Data: data})
	return nil
}

func (p *recordingPublisher) events() []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]publishedEvent(nil), p.published...)
}

func newTestService() (*BankService, *recordingPublisher) {
	publisher := &recordingPublisher{}
	return NewBankService(bank.NewAccountRegistry(), publisher), publisher
}

func savingsParams() CreateAccountParams {
	rate := 0.05
	return CreateAccountParams{
		Name:           "Mohammed",
		Email:          "m.com",
		Credential:     "1234",
		AccountType:    bank.TypeSavings,
		InitialBalance: 1000,
		InterestRate:   &rate,
	}
}

func checkingParams() CreateAccountParams {
	fee := 10.0
	return CreateAccountParams{
		Name:           "Ali",
		Email:          "a.com",
		Credential:     "pass",
		AccountType:    bank.TypeChecking,
		InitialBalance: 500,
		TransactionFee: &fee,
	}
}

func TestCreateAccountVariants(t *testing.T) {
	svc, publisher := newTestService()

	view, err := svc.CreateAccount(savingsParams())
	require.NoError(t, err)
	assert.Equal(t, bank.TypeSavings, view.AccountType)
	assert.Equal(t, 1000.0, view.Balance)
	assert.Contains(t, view.Description, "Savings Account")

	view, err = svc.CreateAccount(checkingParams())
	require.NoError(t, err)
	assert.Equal(t, bank.TypeChecking, view.AccountType)

	view, err = svc.CreateAccount(CreateAccountParams{
		Name: "Sara", Email: "s.com", Credential: "pw",
		AccountType: bank.TypeStandard, InitialBalance: 250,
	})
	require.NoError(t, err)
	assert.Equal(t, bank.TypeStandard, view.AccountType)

	published := publisher.events()
	require.Len(t, published, 3)
	for _, e := range published {
		assert.Equal(t, events.AccountEventsStream, e.Stream)
		assert.Equal(t, events.AccountCreated, e.Type)
	}
}

func TestCreateAccountDefaultsRateAndFee(t *testing.T) {
	svc, _ := newTestService()

	view, err := svc.CreateAccount(CreateAccountParams{
		Name: "Mohammed", Email: "m.com", Credential: "1234",
		AccountType: bank.TypeSavings, InitialBalance: 1000,
	})
	require.NoError(t, err)

	interest, _, err := svc.AddInterest(view.ID)
	require.NoError(t, err)
	assert.InDelta(t, 1000*bank.DefaultInterestRate, interest, 1e-9)
}

func TestCreateAccountFailures(t *testing.T) {
	svc, publisher := newTestService()

	_, err := svc.CreateAccount(CreateAccountParams{
		Name: "Mohammed", Email: "m.com", Credential: "1234",
		AccountType: "premium", InitialBalance: 1000,
	})
	assert.ErrorIs(t, err, bank.ErrInvalidAccountType)

	_, err = svc.CreateAccount(CreateAccountParams{
		Name: "", Email: "m.com", Credential: "1234",
		AccountType: bank.TypeStandard, InitialBalance: 1000,
	})
	assert.ErrorIs(t, err, bank.ErrInvalidName)

	_, err = svc.CreateAccount(CreateAccountParams{
		Name: "Mohammed", Email: "m.com", Credential: "1234",
		AccountType: bank.TypeStandard, InitialBalance: -1,
	})
	assert.ErrorIs(t, err, bank.ErrInvalidBalance)

	// duplicate email: first registration wins, second is rejected
	_, err = svc.CreateAccount(savingsParams())
	require.NoError(t, err)
	params := checkingParams()
	params.Email = "m.com"
	_, err = svc.CreateAccount(params)
	assert.ErrorIs(t, err, bank.ErrDuplicateEmail)

	assert.Equal(t, 1, svc.Stats().TotalAccounts)
	assert.Len(t, publisher.events(), 1)
}

func TestDepositAndWithdraw(t *testing.T) {
	svc, publisher := newTestService()
	view, err := svc.CreateAccount(savingsParams())
	require.NoError(t, err)

	updated, err := svc.Deposit(view.ID, 200)
	require.NoError(t, err)
	assert.Equal(t, 1200.0, updated.Balance)

	_, err = svc.Deposit(view.ID, -5)
	assert.ErrorIs(t, err, bank.ErrInvalidAmount)

	updated, err = svc.Withdraw(view.ID, 200)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, updated.Balance)

	_, err = svc.Withdraw(view.ID, 0)
	assert.ErrorIs(t, err, bank.ErrInvalidAmount)

	_, err = svc.Withdraw(view.ID, 5000)
	assert.ErrorIs(t, err, bank.ErrInsufficientFunds)

	_, err = svc.Deposit("missing", 10)
	assert.ErrorIs(t, err, bank.ErrAccountNotFound)

	published := publisher.events()
	// account.created plus the two successful balance mutations
	require.Len(t, published, 3)
	assert.Equal(t, events.BalanceUpdated, published[1].Type)
	assert.Equal(t, events.BalanceUpdated, published[2].Type)
}

func TestAddInterest(t *testing.T) {
	svc, publisher := newTestService()

	savings, err := svc.CreateAccount(savingsParams())
	require.NoError(t, err)
	checking, err := svc.CreateAccount(checkingParams())
	require.NoError(t, err)

	interest, view, err := svc.AddInterest(savings.ID)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, interest, 1e-9)
	assert.InDelta(t, 1050.0, view.Balance, 1e-9)

	_, _, err = svc.AddInterest(checking.ID)
	assert.ErrorIs(t, err, ErrNotSavings)

	_, _, err = svc.AddInterest("missing")
	assert.ErrorIs(t, err, bank.ErrAccountNotFound)

	published := publisher.events()
	require.Len(t, published, 3)
	assert.Equal(t, events.InterestAccrued, published[2].Type)
}

func TestServiceTransfer(t *testing.T) {
	svc, publisher := newTestService()

	source, err := svc.CreateAccount(savingsParams())
	require.NoError(t, err)
	destination, err := svc.CreateAccount(checkingParams())
	require.NoError(t, err)

	receipt, err := svc.Transfer(source.ID, destination.ID, 200, "1234")
	require.NoError(t, err)
	assert.Equal(t, "Mohammed", receipt.SourceName)
	assert.Equal(t, "Ali", receipt.DestinationName)

	sourceView, err := svc.GetAccount(source.ID)
	require.NoError(t, err)
	assert.Equal(t, 800.0, sourceView.Balance)

	_, err = svc.Transfer(source.ID, destination.ID, 200, "wrong")
	assert.ErrorIs(t, err, bank.ErrAuthenticationFailed)

	_, err = svc.Transfer("missing", destination.ID, 200, "1234")
	assert.ErrorIs(t, err, bank.ErrAccountNotFound)

	published := publisher.events()
	require.Len(t, published, 3)
	last := published[2]
	assert.Equal(t, events.TransferEventsStream, last.Stream)
	assert.Equal(t, events.TransferCompleted, last.Type)
	data, ok := last.Data.(events.TransferCompletedEvent)
	require.True(t, ok)
	assert.Equal(t, 200.0, data.Amount)
}

func TestQueries(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.CreateAccount(savingsParams())
	require.NoError(t, err)
	_, err = svc.CreateAccount(checkingParams())
	require.NoError(t, err)

	views := svc.ListAccounts()
	require.Len(t, views, 2)
	assert.Equal(t, "Mohammed", views[0].Name)
	assert.Equal(t, "Ali", views[1].Name)

	byName, err := svc.FindByName("Ali")
	require.NoError(t, err)
	assert.Equal(t, "a.com", byName.Email)

	byEmail, err := svc.FindByEmail("m.com")
	require.NoError(t, err)
	assert.Equal(t, "Mohammed", byEmail.Name)

	_, err = svc.FindByName("Nobody")
	assert.ErrorIs(t, err, bank.ErrAccountNotFound)
	_, err = svc.FindByEmail("missing.com")
	assert.ErrorIs(t, err, bank.ErrAccountNotFound)

	stats := svc.Stats()
	assert.Equal(t, 2, stats.TotalAccounts)
	assert.Equal(t, 1500.0, stats.TotalBalance)
}
