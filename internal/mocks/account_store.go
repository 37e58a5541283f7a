package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/recipe-api/internal/domain"
	"github.com/phrazzld/recipe-api/internal/store"
)

// MockAccountStore implements store.AccountStore for testing
type MockAccountStore struct {
	CreateFn             func(ctx context.Context, account *domain.Account) error
	GetByIDFn            func(ctx context.Context, id int64) (*domain.Account, error)
	GetByLoginFn         func(ctx context.Context, login string) (*domain.Account, error)
	GetByEmailFn         func(ctx context.Context, email string) (*domain.Account, error)
	LockByIDFn           func(ctx context.Context, id int64) (*domain.Account, error)
	LockByLoginFn        func(ctx context.Context, login string) (*domain.Account, error)
	UpdatePasswordHashFn func(ctx context.Context, id int64, hash string) error
	DeleteFn             func(ctx context.Context, id int64) error
	LoginExistsFn        func(ctx context.Context, login string) (bool, error)
	NicknameExistsFn     func(ctx context.Context, nickname string) (bool, error)

	// WithTxCalls counts how many times the store was bound to a transaction.
	WithTxCalls int
}

var _ store.AccountStore = (*MockAccountStore)(nil)

// Create implements store.AccountStore
func (m *MockAccountStore) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, account)
	}
	return nil
}

// GetByID implements store.AccountStore
func (m *MockAccountStore) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrAccountNotFound
}

// GetByLogin implements store.AccountStore
func (m *MockAccountStore) GetByLogin(ctx context.Context, login string) (*domain.Account, error) {
	if m.GetByLoginFn != nil {
		return m.GetByLoginFn(ctx, login)
	}
	return nil, store.ErrAccountNotFound
}

// GetByEmail implements store.AccountStore
func (m *MockAccountStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, store.ErrAccountNotFound
}

// LockByID implements store.AccountStore
func (m *MockAccountStore) LockByID(ctx context.Context, id int64) (*domain.Account, error) {
	if m.LockByIDFn != nil {
		return m.LockByIDFn(ctx, id)
	}
	return m.GetByID(ctx, id)
}

// LockByLogin implements store.AccountStore
func (m *MockAccountStore) LockByLogin(ctx context.Context, login string) (*domain.Account, error) {
	if m.LockByLoginFn != nil {
		return m.LockByLoginFn(ctx, login)
	}
	return m.GetByLogin(ctx, login)
}

// UpdatePasswordHash implements store.AccountStore
func (m *MockAccountStore) UpdatePasswordHash(ctx context.Context, id int64, hash string) error {
	if m.UpdatePasswordHashFn != nil {
		return m.UpdatePasswordHashFn(ctx, id, hash)
	}
	return nil
}

// Delete implements store.AccountStore
func (m *MockAccountStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// LoginExists implements store.AccountStore
func (m *MockAccountStore) LoginExists(ctx context.Context, login string) (bool, error) {
	if m.LoginExistsFn != nil {
		return m.LoginExistsFn(ctx, login)
	}
	return false, nil
}

// NicknameExists implements store.AccountStore
func (m *MockAccountStore) NicknameExists(ctx context.Context, nickname string) (bool, error) {
	if m.NicknameExistsFn != nil {
		return m.NicknameExistsFn(ctx, nickname)
	}
	return false, nil
}

// WithTx implements store.AccountStore
func (m *MockAccountStore) WithTx(*sql.Tx) store.AccountStore {
	m.WithTxCalls++
	return m
}
