package domain

import "sync"

// Account holds a non-negative balance behind its own lock. The lock is
// owned by the account and never shared, so credit and debit on one
// account are totally serialized while distinct accounts mutate in
// parallel.
type Account struct {
	id string

	mu      sync.RWMutex
	balance Money
}

func NewAccount(id string, initialBalance Money) *Account {
	return &Account{id: id, balance: initialBalance}
}

func (a *Account) ID() string {
	return a.id
}

// Balance returns a snapshot under the read lock. It is not part of the
// pairwise transfer atomicity guarantee.
func (a *Account) Balance() Money {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.balance
}

// Credit adds amount to the balance. It never fails once the lock is
// held.
func (a *Account) Credit(amount Money) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.credit(amount)
}

// Debit subtracts amount from the balance. When the balance is smaller
// than amount it returns ErrInsufficientBalance and leaves the balance
// untouched.
func (a *Account) Debit(amount Money) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.debit(amount)
}

// credit and debit require a.mu to be held by the caller.

func (a *Account) credit(amount Money) {
	a.balance = a.balance.Add(amount)
}

func (a *Account) debit(amount Money) error {
	if a.balance.Cmp(amount) < 0 {
		return ErrInsufficientBalance
	}
	a.balance = a.balance.Sub(amount)
	return nil
}
