package bank

import "fmt"

// DefaultInterestRate matches the original product default for savings
// accounts opened without an explicit rate.
const DefaultInterestRate = 0.03

// SavingsAccount accrues interest on demand. Deposit and withdraw keep
// the base semantics.
type SavingsAccount struct {
	baseAccount
	interestRate float64
}

// NewSavingsAccount validates the base fields and the rate (must be in
// (0, 1]) and returns an unregistered account.
func NewSavingsAccount(name string, balance float64, email, credential string, interestRate float64) (*SavingsAccount, error) {
	if !(interestRate > 0) || interestRate > 1 {
		return nil, ErrInvalidRate
	}
	base, err := newBaseAccount(name, balance, email, credential)
	if err != nil {
		return nil, err
	}
	return &SavingsAccount{baseAccount: base, interestRate: interestRate}, nil
}

func (a *SavingsAccount) Type() string { return TypeSavings }

// InterestRate returns the fixed accrual rate.
func (a *SavingsAccount) InterestRate() float64 { return a.interestRate }

// AddInterest computes balance * rate, credits it through the shared
// deposit primitive and returns the credited interest. The read and the
// credit happen under one acquisition of the account lock so a
// concurrent withdrawal cannot slip between them.
func (a *SavingsAccount) AddInterest() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	interest := a.balance * a.interestRate
	a.depositLocked(interest)
	return interest
}

func (a *SavingsAccount) Describe() string {
	return fmt.Sprintf("%s (Savings Account, Rate=%g%%)", a.describe(), a.interestRate*100)
}
