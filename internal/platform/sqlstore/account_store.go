package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/recipe-api/internal/domain"
	"github.com/phrazzld/recipe-api/internal/platform/logger"
	"github.com/phrazzld/recipe-api/internal/store"
)

const accountColumns = `id, login, nickname, email, password_hash, created_at, updated_at`

// AccountStore implements store.AccountStore.
type AccountStore struct {
	db      store.DBTX
	dialect Dialect
	logger  *slog.Logger
}

var _ store.AccountStore = (*AccountStore)(nil)

// NewAccountStore creates an AccountStore. If logger is nil, a default logger will be used.
func NewAccountStore(db store.DBTX, dialect Dialect, logger *slog.Logger) *AccountStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AccountStore{
		db:      db,
		dialect: dialect,
		logger:  logger.With(slog.String("component", "account_store")),
	}
}

// WithTx implements store.AccountStore.WithTx
func (s *AccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	return &AccountStore{db: tx, dialect: s.dialect, logger: s.logger}
}

// Create implements store.AccountStore.Create
func (s *AccountStore) Create(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := account.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := s.dialect.Rebind(`
		INSERT INTO accounts (login, nickname, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`)
	err := s.db.QueryRowContext(ctx, query,
		account.Login,
		account.Nickname,
		account.Email,
		account.PasswordHash,
		account.CreatedAt,
		account.UpdatedAt,
	).Scan(&account.ID)
	if err != nil {
		err = s.dialect.ClassifyError(err)
		if ce, ok := AsConstraintError(err); ok && store.IsDuplicateError(ce) {
			switch {
			case ce.Mentions("nickname"):
				return store.ErrNicknameExists
			case ce.Mentions("email"):
				return store.ErrEmailExists
			case ce.Mentions("login"):
				return store.ErrLoginExists
			}
		}
		log.Error("failed to create account", slog.String("error", err.Error()))
		return fmt.Errorf("failed to create account: %w", err)
	}

	log.Info("account created", slog.Int64("account_id", account.ID))
	return nil
}

// GetByID implements store.AccountStore.GetByID
func (s *AccountStore) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	return s.getOne(ctx, "id = $1", "", id)
}

// GetByLogin implements store.AccountStore.GetByLogin
func (s *AccountStore) GetByLogin(ctx context.Context, login string) (*domain.Account, error) {
	return s.getOne(ctx, "login = $1", "", login)
}

// GetByEmail implements store.AccountStore.GetByEmail
func (s *AccountStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return s.getOne(ctx, "email = $1", "", strings.ToLower(strings.TrimSpace(email)))
}

// LockByID implements store.AccountStore.LockByID
func (s *AccountStore) LockByID(ctx context.Context, id int64) (*domain.Account, error) {
	return s.getOne(ctx, "id = $1", s.dialect.LockClause(), id)
}

// LockByLogin implements store.AccountStore.LockByLogin
func (s *AccountStore) LockByLogin(ctx context.Context, login string) (*domain.Account, error) {
	return s.getOne(ctx, "login = $1", s.dialect.LockClause(), login)
}

func (s *AccountStore) getOne(ctx context.Context, where, lock string, arg any) (*domain.Account, error) {
	query := s.dialect.Rebind(`SELECT ` + accountColumns + ` FROM accounts WHERE ` + where + lock)

	var a domain.Account
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&a.ID,
		&a.Login,
		&a.Nickname,
		&a.Email,
		&a.PasswordHash,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		err = mapError(s.dialect, err, store.ErrAccountNotFound)
		if !store.IsNotFoundError(err) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to load account",
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to load account: %w", err)
		}
		return nil, err
	}
	return &a, nil
}

// UpdatePasswordHash implements store.AccountStore.UpdatePasswordHash
func (s *AccountStore) UpdatePasswordHash(ctx context.Context, id int64, hash string) error {
	if hash == "" {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, domain.ErrEmptyHash)
	}
	query := s.dialect.Rebind(`UPDATE accounts SET password_hash = $1, updated_at = $2 WHERE id = $3`)
	result, err := s.db.ExecContext(ctx, query, hash, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update password hash: %w", s.dialect.ClassifyError(err))
	}
	return checkRowsAffected(result, store.ErrAccountNotFound)
}

// Delete implements store.AccountStore.Delete
func (s *AccountStore) Delete(ctx context.Context, id int64) error {
	query := s.dialect.Rebind(`DELETE FROM accounts WHERE id = $1`)
	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", s.dialect.ClassifyError(err))
	}
	return checkRowsAffected(result, store.ErrAccountNotFound)
}

// LoginExists implements store.AccountStore.LoginExists
func (s *AccountStore) LoginExists(ctx context.Context, login string) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS(SELECT 1 FROM accounts WHERE login = $1)`, strings.TrimSpace(login))
}

// NicknameExists implements store.AccountStore.NicknameExists
func (s *AccountStore) NicknameExists(ctx context.Context, nickname string) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS(SELECT 1 FROM accounts WHERE nickname = $1)`, strings.TrimSpace(nickname))
}

func (s *AccountStore) exists(ctx context.Context, query string, arg any) (bool, error) {
	var found bool
	if err := s.db.QueryRowContext(ctx, s.dialect.Rebind(query), arg).Scan(&found); err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", s.dialect.ClassifyError(err))
	}
	return found, nil
}
