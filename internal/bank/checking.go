package bank

import "fmt"

// DefaultTransactionFee matches the original product default for
// checking accounts opened without an explicit fee.
const DefaultTransactionFee = 5.0

// CheckingAccount levies a flat fee on every withdrawal. The fee is
// debited from the payer together with the requested amount and is not
// credited anywhere.
type CheckingAccount struct {
	baseAccount
	transactionFee float64
}

// NewCheckingAccount validates the base fields and the fee (must be
// >= 0) and returns an unregistered account.
func NewCheckingAccount(name string, balance float64, email, credential string, transactionFee float64) (*CheckingAccount, error) {
	if !(transactionFee >= 0) {
		return nil, ErrInvalidFee
	}
	base, err := newBaseAccount(name, balance, email, credential)
	if err != nil {
		return nil, err
	}
	return &CheckingAccount{baseAccount: base, transactionFee: transactionFee}, nil
}

func (a *CheckingAccount) Type() string { return TypeChecking }

// TransactionFee returns the flat per-withdrawal fee.
func (a *CheckingAccount) TransactionFee() float64 { return a.transactionFee }

// Withdraw succeeds iff amount > 0 and amount+fee <= balance; on
// success amount+fee leaves the account. Callers holding an
// Account-typed value reach this override through interface dispatch.
func (a *CheckingAccount) Withdraw(amount float64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.withdrawLocked(amount)
}

func (a *CheckingAccount) withdrawLocked(amount float64) bool {
	if !validAmount(amount) {
		return false
	}
	return a.baseAccount.withdrawLocked(amount + a.transactionFee)
}

func (a *CheckingAccount) Describe() string {
	return fmt.Sprintf("%s (Checking Account, Fee=%g)", a.describe(), a.transactionFee)
}
