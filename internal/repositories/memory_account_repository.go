package repositories

import (
	"context"
	"sync"

	"voyago/internal/models/db_models"
)

// memoryAccountRepository is the simplified in-process variant. Good for
// local development and tests; records vanish on restart.
type memoryAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]db_models.Account
}

func NewMemoryAccountRepository() AccountRepository {
	return &memoryAccountRepository{
		accounts: make(map[string]db_models.Account),
	}
}

func (m *memoryAccountRepository) Insert(_ context.Context, account *db_models.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.Username] = *account
	return nil
}

func (m *memoryAccountRepository) FindByUsername(_ context.Context, username string) (*db_models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	account, ok := m.accounts[username]
	if !ok {
		return nil, nil
	}
	return &account, nil
}

func (m *memoryAccountRepository) FindByCredentials(_ context.Context, username, password string) (*db_models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	account, ok := m.accounts[username]
	if !ok || account.Password != password {
		return nil, nil
	}
	return &account, nil
}

func (m *memoryAccountRepository) Exists(_ context.Context, username string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.accounts[username]
	return ok, nil
}
