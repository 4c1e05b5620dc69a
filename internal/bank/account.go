package bank

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Account type selectors.
const (
	TypeStandard = "standard"
	TypeSavings  = "savings"
	TypeChecking = "checking"
)

// Account is the capability set shared by all account variants. The
// unexported methods keep implementations inside this package and give
// the transfer path locked access to both accounts at once; variants
// override Withdraw/Describe through ordinary interface dispatch.
type Account interface {
	ID() string
	Name() string
	Email() string
	Type() string
	Balance() float64

	// Authenticate compares the supplied credential against the stored
	// one by exact match. No hashing, no rate limiting.
	Authenticate(credential string) bool

	// Deposit credits amount iff amount > 0. Returns false and leaves
	// the balance untouched otherwise.
	Deposit(amount float64) bool

	// Withdraw debits amount iff 0 < amount <= balance. Variants may
	// tighten this (the checking variant also debits its fee).
	Withdraw(amount float64) bool

	// Describe reports the account identity, balance and variant.
	Describe() string

	lock()
	unlock()
	balanceLocked() float64
	depositLocked(amount float64) bool
	withdrawLocked(amount float64) bool
}

// validAmount reports whether v is a positive finite number. The v > 0
// comparison also screens out NaN.
func validAmount(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// baseAccount carries identity, credential and the balance invariant.
// name, email, credential and id are immutable after construction;
// balance is the only mutable field and every mutation goes through
// depositLocked/withdrawLocked under mu.
type baseAccount struct {
	id         string
	name       string
	email      string
	credential string

	mu      sync.Mutex
	balance float64
}

func newBaseAccount(name string, balance float64, email, credential string) (baseAccount, error) {
	if strings.TrimSpace(name) == "" {
		return baseAccount{}, ErrInvalidName
	}
	if !validAmount(balance) {
		return baseAccount{}, ErrInvalidBalance
	}
	return baseAccount{
		id:         uuid.NewString(),
		name:       name,
		email:      email,
		credential: credential,
		balance:    balance,
	}, nil
}

func (a *baseAccount) ID() string    { return a.id }
func (a *baseAccount) Name() string  { return a.name }
func (a *baseAccount) Email() string { return a.email }

func (a *baseAccount) Balance() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

func (a *baseAccount) Authenticate(credential string) bool {
	return credential == a.credential
}

func (a *baseAccount) Deposit(amount float64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.depositLocked(amount)
}

func (a *baseAccount) Withdraw(amount float64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.withdrawLocked(amount)
}

func (a *baseAccount) lock()   { a.mu.Lock() }
func (a *baseAccount) unlock() { a.mu.Unlock() }

func (a *baseAccount) balanceLocked() float64 { return a.balance }

func (a *baseAccount) depositLocked(amount float64) bool {
	if !validAmount(amount) {
		return false
	}
	a.balance += amount
	return true
}

func (a *baseAccount) withdrawLocked(amount float64) bool {
	if !validAmount(amount) || amount > a.balance {
		return false
	}
	a.balance -= amount
	return true
}

func (a *baseAccount) describe() string {
	return fmt.Sprintf("Account name: %s, Balance: %.2f", a.name, a.Balance())
}

var (
	_ Account = (*StandardAccount)(nil)
	_ Account = (*SavingsAccount)(nil)
	_ Account = (*CheckingAccount)(nil)
)

// StandardAccount is the base behavior with no variant field.
type StandardAccount struct {
	baseAccount
}

// NewStandardAccount validates name and initial balance and returns an
// unregistered account. Registration is the registry's job.
func NewStandardAccount(name string, balance float64, email, credential string) (*StandardAccount, error) {
	base, err := newBaseAccount(name, balance, email, credential)
	if err != nil {
		return nil, err
	}
	return &StandardAccount{baseAccount: base}, nil
}

func (a *StandardAccount) Type() string { return TypeStandard }

func (a *StandardAccount) Describe() string { return a.describe() }
