package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/api-sage/fund-transfer-service/src/internal/domain"
)

// AccountStore is the in-memory account registry. Its lock guards the
// map for insert and lookup only; balance mutations happen under each
// account's own lock. Once inserted, an account's identity never
// changes, so references obtained from Get stay valid for the process
// lifetime.
type AccountStore struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
}

func NewAccountStore() *AccountStore {
	return &AccountStore{accounts: make(map[string]*domain.Account)}
}

func (s *AccountStore) Create(_ context.Context, accountID string, initialBalance domain.Money) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[accountID]; exists {
		return nil, fmt.Errorf("account id %s: %w", accountID, domain.ErrDuplicateAccount)
	}

	account := domain.NewAccount(accountID, initialBalance)
	s.accounts[accountID] = account
	return account, nil
}

func (s *AccountStore) Get(_ context.Context, accountID string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, exists := s.accounts[accountID]
	if !exists {
		return nil, fmt.Errorf("account id %s: %w", accountID, domain.ErrAccountNotFound)
	}
	return account, nil
}

func (s *AccountStore) List(_ context.Context) ([]*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]*domain.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].ID() < accounts[j].ID()
	})
	return accounts, nil
}

// Clear removes every account. Test and reset hook, not used by the
// transfer flow.
func (s *AccountStore) Clear(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = make(map[string]*domain.Account)
}
