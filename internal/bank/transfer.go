package bank

// Receipt reports a completed transfer.
type Receipt struct {
	Amount          float64 `json:"amount"`
	SourceName      string  `json:"sourceName"`
	DestinationName string  `json:"destinationName"`
}

// Transfer moves amount from source to destination after authenticating
// the source credential. Validation order is fixed and short-circuits:
// authenticate, amount > 0, source balance >= amount, then the
// polymorphic withdraw followed by the deposit.
//
// Both account locks are held across the whole debit/credit pair,
// acquired in account-ID order so two transfers running in opposite
// directions cannot deadlock. Other operations on either account see
// the transfer as atomic.
//
// A checking source can pass the plain balance check and still fail the
// withdraw on amount+fee; the transfer then aborts with
// ErrInsufficientFunds and the destination is never credited.
func Transfer(source, destination Account, amount float64, credential string) (*Receipt, error) {
	if source.ID() == destination.ID() {
		return nil, ErrSameAccount
	}

	first, second := source, destination
	if second.ID() < first.ID() {
		first, second = second, first
	}
	first.lock()
	defer first.unlock()
	second.lock()
	defer second.unlock()

	if !source.Authenticate(credential) {
		return nil, ErrAuthenticationFailed
	}
	if !validAmount(amount) {
		return nil, ErrInvalidAmount
	}
	if source.balanceLocked() < amount {
		return nil, ErrInsufficientFunds
	}
	if !source.withdrawLocked(amount) {
		return nil, ErrInsufficientFunds
	}
	destination.depositLocked(amount)

	return &Receipt{
		Amount:          amount,
		SourceName:      source.Name(),
		DestinationName: destination.Name(),
	}, nil
}
