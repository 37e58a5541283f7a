package mocks

import (
	"context"

	"github.com/phrazzld/recipe-api/internal/domain"
	"github.com/phrazzld/recipe-api/internal/service"
)

// MockAccountService implements service.AccountService for handler tests.
// Unset functions return zero values.
type MockAccountService struct {
	GetAccountFn       func(ctx context.Context, accountID int64) (*domain.Account, error)
	FindLoginByEmailFn func(ctx context.Context, email string) (string, error)
	LoginExistsFn      func(ctx context.Context, login string) (bool, error)
	NicknameExistsFn   func(ctx context.Context, nickname string) (bool, error)
	RegisterFn         func(ctx context.Context, in service.RegisterInput) (*domain.Account, error)
	AuthenticateFn     func(ctx context.Context, login, password string) (*domain.Account, error)
	ChangePasswordFn   func(ctx context.Context, accountID int64, current, newPassword, confirm string) error
	ResetPasswordFn    func(ctx context.Context, email, newPassword string) error
	DeleteAccountFn    func(ctx context.Context, login, password string) error
}

var _ service.AccountService = (*MockAccountService)(nil)

func (m *MockAccountService) GetAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	if m.GetAccountFn != nil {
		return m.GetAccountFn(ctx, accountID)
	}
	return nil, domain.NotFound("account")
}

func (m *MockAccountService) FindLoginByEmail(ctx context.Context, email string) (string, error) {
	if m.FindLoginByEmailFn != nil {
		return m.FindLoginByEmailFn(ctx, email)
	}
	return "", domain.NotFound("email")
}

func (m *MockAccountService) LoginExists(ctx context.Context, login string) (bool, error) {
	if m.LoginExistsFn != nil {
		return m.LoginExistsFn(ctx, login)
	}
	return false, nil
}

func (m *MockAccountService) NicknameExists(ctx context.Context, nickname string) (bool, error) {
	if m.NicknameExistsFn != nil {
		return m.NicknameExistsFn(ctx, nickname)
	}
	return false, nil
}

func (m *MockAccountService) Register(ctx context.Context, in service.RegisterInput) (*domain.Account, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, in)
	}
	return &domain.Account{ID: 1, Login: in.Login, Nickname: in.Nickname, Email: in.Email}, nil
}

func (m *MockAccountService) Authenticate(ctx context.Context, login, password string) (*domain.Account, error) {
	if m.AuthenticateFn != nil {
		return m.AuthenticateFn(ctx, login, password)
	}
	return nil, domain.InvalidCredential("invalid login or password")
}

func (m *MockAccountService) ChangePassword(ctx context.Context, accountID int64, current, newPassword, confirm string) error {
	if m.ChangePasswordFn != nil {
		return m.ChangePasswordFn(ctx, accountID, current, newPassword, confirm)
	}
	return nil
}

func (m *MockAccountService) ResetPassword(ctx context.Context, email, newPassword string) error {
	if m.ResetPasswordFn != nil {
		return m.ResetPasswordFn(ctx, email, newPassword)
	}
	return nil
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, login, password string) error {
	if m.DeleteAccountFn != nil {
		return m.DeleteAccountFn(ctx, login, password)
	}
	return nil
}

// MockBookmarkService implements service.BookmarkService.
type MockBookmarkService struct {
	ToggleFn       func(ctx context.Context, login string, recipeID int64) (service.BookmarkResult, error)
	IsBookmarkedFn func(ctx context.Context, login string, recipeID int64) bool
}

var _ service.BookmarkService = (*MockBookmarkService)(nil)

func (m *MockBookmarkService) Toggle(ctx context.Context, login string, recipeID int64) (service.BookmarkResult, error) {
	if m.ToggleFn != nil {
		return m.ToggleFn(ctx, login, recipeID)
	}
	return service.BookmarkResult{}, nil
}

func (m *MockBookmarkService) IsBookmarked(ctx context.Context, login string, recipeID int64) bool {
	if m.IsBookmarkedFn != nil {
		return m.IsBookmarkedFn(ctx, login, recipeID)
	}
	return false
}

// MockLikeService implements service.LikeService.
type MockLikeService struct {
	LikeFn func(ctx context.Context, login string, recipeID int64) error
}

var _ service.LikeService = (*MockLikeService)(nil)

func (m *MockLikeService) Like(ctx context.Context, login string, recipeID int64) error {
	if m.LikeFn != nil {
		return m.LikeFn(ctx, login, recipeID)
	}
	return nil
}

// MockReferenceService implements service.ReferenceService.
type MockReferenceService struct {
	RecordCompletionFn func(ctx context.Context, login string, recipeID int64) (*domain.UserReference, error)
}

var _ service.ReferenceService = (*MockReferenceService)(nil)

func (m *MockReferenceService) RecordCompletion(ctx context.Context, login string, recipeID int64) (*domain.UserReference, error) {
	if m.RecordCompletionFn != nil {
		return m.RecordCompletionFn(ctx, login, recipeID)
	}
	return &domain.UserReference{ID: 1, RecipeID: recipeID, Kind: domain.ReferenceCompletion}, nil
}
