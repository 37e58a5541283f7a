package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/recipe-api/internal/domain"
	"github.com/phrazzld/recipe-api/internal/metrics"
	"github.com/phrazzld/recipe-api/internal/platform/logger"
	"github.com/phrazzld/recipe-api/internal/service/auth"
	"github.com/phrazzld/recipe-api/internal/store"
)

// RegisterInput carries the fields of a new account. Password is plaintext and
// is encoded before anything is stored.
type RegisterInput struct {
	Login    string
	Nickname string
	Email    string
	Password string
}

// AccountService manages the account lifecycle.
type AccountService interface {
	// GetAccount returns the account with the given ID.
	GetAccount(ctx context.Context, accountID int64) (*domain.Account, error)

	// FindLoginByEmail returns the login of the account registered with email.
	FindLoginByEmail(ctx context.Context, email string) (string, error)

	// LoginExists reports whether login is taken.
	LoginExists(ctx context.Context, login string) (bool, error)

	// NicknameExists reports whether nickname is taken.
	NicknameExists(ctx context.Context, nickname string) (bool, error)

	// Register creates an account. Duplicate login, nickname or email is CONFLICT.
	Register(ctx context.Context, in RegisterInput) (*domain.Account, error)

	// Authenticate checks a login and password pair.
	Authenticate(ctx context.Context, login, password string) (*domain.Account, error)

	// ChangePassword replaces the password of accountID after verifying current.
	ChangePassword(ctx context.Context, accountID int64, current, newPassword, confirm string) error

	// ResetPassword overwrites the password of the account registered with email.
	// Callers must have established that the requester controls email.
	ResetPassword(ctx context.Context, email, newPassword string) error

	// DeleteAccount verifies password and removes the account together with every
	// record that references it, in one transaction.
	DeleteAccount(ctx context.Context, login, password string) error
}

type accountService struct {
	db      *sql.DB
	stores  Stores
	hasher  auth.PasswordHasher
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewAccountService creates an AccountService. m may be nil.
func NewAccountService(
	db *sql.DB,
	stores Stores,
	hasher auth.PasswordHasher,
	m *metrics.Metrics,
	logger *slog.Logger,
) AccountService {
	return &accountService{
		db:      db,
		stores:  stores,
		hasher:  hasher,
		metrics: m,
		logger:  logger.With(slog.String("component", "account_service")),
	}
}

func (s *accountService) GetAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := s.stores.Accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, lookupError("account", "retrieve account", err)
	}
	return account, nil
}

func (s *accountService) FindLoginByEmail(ctx context.Context, email string) (string, error) {
	account, err := s.stores.Accounts.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", lookupError("account", "retrieve account by email", err)
	}
	return account.Login, nil
}

func (s *accountService) LoginExists(ctx context.Context, login string) (bool, error) {
	exists, err := s.stores.Accounts.LoginExists(ctx, login)
	if err != nil {
		return false, fmt.Errorf("failed to check login: %w", err)
	}
	return exists, nil
}

func (s *accountService) NicknameExists(ctx context.Context, nickname string) (bool, error) {
	exists, err := s.stores.Accounts.NicknameExists(ctx, nickname)
	if err != nil {
		return false, fmt.Errorf("failed to check nickname: %w", err)
	}
	return exists, nil
}

func (s *accountService) Register(ctx context.Context, in RegisterInput) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if in.Password == "" {
		return nil, domain.InvalidRequest("password cannot be empty")
	}
	hash, err := s.hasher.Encode(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to encode password: %w", err)
	}
	account, err := domain.NewAccount(in.Login, in.Nickname, in.Email, hash)
	if err != nil {
		return nil, domain.InvalidRequest(err.Error())
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.stores.Accounts.WithTx(tx).Create(ctx, account)
	})
	s.metrics.ObserveAccountOperation("register", err)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrLoginExists):
			return nil, domain.Conflict("login already in use", err)
		case errors.Is(err, store.ErrNicknameExists):
			return nil, domain.Conflict("nickname already in use", err)
		case errors.Is(err, store.ErrEmailExists):
			return nil, domain.Conflict("email already in use", err)
		case errors.Is(err, store.ErrDuplicate):
			return nil, domain.Conflict("account already exists", err)
		}
		log.Error("failed to create account",
			slog.String("error", err.Error()),
			slog.String("login", account.Login))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	log.Info("account registered", slog.Int64("account_id", account.ID))
	return account, nil
}

func (s *accountService) Authenticate(ctx context.Context, login, password string) (*domain.Account, error) {
	account, err := s.stores.Accounts.GetByLogin(ctx, strings.TrimSpace(login))
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, domain.InvalidCredential("invalid login or password")
		}
		return nil, fmt.Errorf("failed to retrieve account: %w", err)
	}
	if !s.hasher.Verify(password, account.PasswordHash) {
		logger.FromContextOrDefault(ctx, s.logger).Debug("password mismatch on login",
			slog.Int64("account_id", account.ID))
		return nil, domain.InvalidCredential("invalid login or password")
	}
	return account, nil
}

func (s *accountService) ChangePassword(
	ctx context.Context,
	accountID int64,
	current, newPassword, confirm string,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		accounts := s.stores.Accounts.WithTx(tx)

		account, err := accounts.LockByID(ctx, accountID)
		if err != nil {
			return lookupError("account", "lock account", err)
		}
		if !s.hasher.Verify(current, account.PasswordHash) {
			return domain.InvalidCredential("current password is incorrect")
		}
		if newPassword != confirm {
			return domain.InvalidRequest("new password and confirmation do not match")
		}
		if newPassword == "" {
			return domain.InvalidRequest("new password cannot be empty")
		}

		hash, err := s.hasher.Encode(newPassword)
		if err != nil {
			return fmt.Errorf("failed to encode password: %w", err)
		}
		if err := accounts.UpdatePasswordHash(ctx, account.ID, hash); err != nil {
			return lookupError("account", "update password", err)
		}
		return nil
	})
	s.metrics.ObserveAccountOperation("change_password", err)
	if err != nil {
		if !isDomainError(err) {
			log.Error("failed to change password",
				slog.String("error", err.Error()),
				slog.Int64("account_id", accountID))
		}
		return err
	}

	log.Info("password changed", slog.Int64("account_id", accountID))
	return nil
}

func (s *accountService) ResetPassword(ctx context.Context, email, newPassword string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if newPassword == "" {
		return domain.InvalidRequest("new password cannot be empty")
	}
	hash, err := s.hasher.Encode(newPassword)
	if err != nil {
		return fmt.Errorf("failed to encode password: %w", err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		accounts := s.stores.Accounts.WithTx(tx)

		account, err := accounts.GetByEmail(ctx, normalizeEmail(email))
		if err != nil {
			return lookupError("account", "retrieve account by email", err)
		}
		if err := accounts.UpdatePasswordHash(ctx, account.ID, hash); err != nil {
			return lookupError("account", "update password", err)
		}
		return nil
	})
	s.metrics.ObserveAccountOperation("reset_password", err)
	if err != nil {
		if !isDomainError(err) {
			log.Error("failed to reset password", slog.String("error", err.Error()))
		}
		return err
	}

	log.Info("password reset")
	return nil
}

// deleteStep removes one class of dependent rows for an account.
type deleteStep struct {
	name string
	run  func(ctx context.Context, accountID int64) (int64, error)
}

func (s *accountService) DeleteAccount(ctx context.Context, login, password string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)
	start := time.Now()

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		accounts := s.stores.Accounts.WithTx(tx)

		account, err := accounts.LockByLogin(ctx, strings.TrimSpace(login))
		if err != nil {
			if store.IsNotFoundError(err) {
				return domain.NotFound("account")
			}
			return domain.DeleteFailed(fmt.Errorf("lock account: %w", err))
		}
		if !s.hasher.Verify(password, account.PasswordHash) {
			return domain.InvalidCredential("password does not match")
		}

		// Order matters: nothing cascades, so every row referencing the account
		// or its recipes is removed before the row it references.
		steps := []deleteStep{
			{"likes", s.stores.Likes.WithTx(tx).DeleteByAccount},
			{"bookmarks", s.stores.Bookmarks.WithTx(tx).DeleteByAccount},
			{"user_references", s.stores.References.WithTx(tx).DeleteByAccount},
			{"recipes", s.stores.Recipes.WithTx(tx).DeleteByAuthor},
			{"account", func(ctx context.Context, id int64) (int64, error) {
				return 1, accounts.Delete(ctx, id)
			}},
		}
		for _, step := range steps {
			n, err := step.run(ctx, account.ID)
			if err != nil {
				log.Error("account delete step failed",
					slog.String("step", step.name),
					slog.Int64("account_id", account.ID),
					slog.String("error", err.Error()))
				return domain.DeleteFailed(fmt.Errorf("delete %s: %w", step.name, err))
			}
			log.Debug("account delete step done",
				slog.String("step", step.name),
				slog.Int64("account_id", account.ID),
				slog.Int64("rows", n))
		}
		return nil
	})
	s.metrics.ObserveAccountOperation("delete", err)
	if err != nil {
		if isDomainError(err) {
			return err
		}
		if isContextDone(err) {
			// The caller went away before the transaction opened; nothing changed.
			log.Info("account delete abandoned", slog.String("error", err.Error()))
			return err
		}
		// Begin, commit or rollback failed around an otherwise successful body.
		log.Error("account delete transaction failed", slog.String("error", err.Error()))
		return domain.DeleteFailed(err)
	}

	s.metrics.ObserveAccountDelete(time.Since(start).Seconds())
	log.Info("account deleted", slog.String("login", strings.TrimSpace(login)))
	return nil
}

func isContextDone(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
