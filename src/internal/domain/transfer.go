package domain

import "time"

type TransferStatus string

const (
	TransferStatusSuccess TransferStatus = "SUCCESS"
)

// TransferRecord is the read-only record of a completed transfer.
type TransferRecord struct {
	ID         string
	SenderID   string
	ReceiverID string
	Amount     Money
	Status     TransferStatus
	Message    string
	CreatedAt  time.Time
}

// PostTransfer atomically moves amount from sender to receiver.
//
// Both account locks are taken in a canonical order, lexicographically
// lower account id first, regardless of which side is the sender. Two
// concurrent transfers over the same pair therefore always acquire the
// locks in the same sequence and can never deadlock each other.
//
// The sufficiency check and both balance mutations happen while both
// locks are held: no other transfer can observe the debit without the
// credit. On ErrInsufficientBalance neither balance changes.
//
// Callers guarantee sender and receiver are distinct accounts.
func PostTransfer(sender, receiver *Account, amount Money) error {
	first, second := sender, receiver
	if second.id < first.id {
		first, second = second, first
	}

	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if err := sender.debit(amount); err != nil {
		return err
	}
	receiver.credit(amount)
	return nil
}
