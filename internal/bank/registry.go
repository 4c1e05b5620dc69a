package bank

import "sync"

// AccountRegistry owns every account for the process lifetime. Accounts
// are kept in insertion order (creation order) alongside a running
// creation counter; the counter always equals the sequence length.
// There is no deletion.
type AccountRegistry struct {
	mu       sync.RWMutex
	accounts []Account
	created  int
}

func NewAccountRegistry() *AccountRegistry {
	return &AccountRegistry{}
}

// Register appends a fully constructed account. Email uniqueness is
// enforced here so a rejected account is never half-registered.
func (r *AccountRegistry) Register(account Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Email() == account.Email() {
			return ErrDuplicateEmail
		}
	}
	r.accounts = append(r.accounts, account)
	r.created++
	return nil
}

// FindByName returns the first account (in creation order) with the
// given name, or false if none matches.
func (r *AccountRegistry) FindByName(name string) (Account, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if a.Name() == name {
			return a, true
		}
	}
	return nil, false
}

// FindByEmail scans the full sequence for a matching email.
func (r *AccountRegistry) FindByEmail(email string) (Account, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if a.Email() == email {
			return a, true
		}
	}
	return nil, false
}

// FindByID looks an account up by its identifier.
func (r *AccountRegistry) FindByID(id string) (Account, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if a.ID() == id {
			return a, true
		}
	}
	return nil, false
}

// Accounts returns a snapshot of the sequence in creation order.
func (r *AccountRegistry) Accounts() []Account {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Account, len(r.accounts))
	copy(out, r.accounts)
	return out
}

// TotalAccounts reports the creation counter.
func (r *AccountRegistry) TotalAccounts() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.created
}

// TotalBalance sums every account balance. Reporting only; nothing is
// enforced against this figure.
func (r *AccountRegistry) TotalBalance() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var total float64
	for _, a := range r.accounts {
		total += a.Balance()
	}
	return total
}
