package domain

import (
	"errors"
	"strings"
	"time"
)

// Account validation errors.
var (
	ErrEmptyLogin      = errors.New("login cannot be empty")
	ErrEmptyNickname   = errors.New("nickname cannot be empty")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrEmptyHash       = errors.New("password hash cannot be empty")
	ErrLoginTooLong    = errors.New("login must be at most 50 characters long")
	ErrNicknameTooLong = errors.New("nickname must be at most 50 characters long")
)

// Account is a registered user of the recipe service.
// ID is the numeric primary key; Login is the unique handle used to sign in.
type Account struct {
	ID           int64     `json:"id"`
	Login        string    `json:"login"`
	Nickname     string    `json:"nickname"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewAccount builds an unsaved account. The hash must already be encoded;
// the plaintext password never reaches this type.
func NewAccount(login, nickname, email, passwordHash string) (*Account, error) {
	now := time.Now().UTC()
	a := &Account{
		Login:        strings.TrimSpace(login),
		Nickname:     strings.TrimSpace(nickname),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate checks the invariants storage relies on.
func (a *Account) Validate() error {
	switch {
	case a.Login == "":
		return ErrEmptyLogin
	case len(a.Login) > 50:
		return ErrLoginTooLong
	case a.Nickname == "":
		return ErrEmptyNickname
	case len(a.Nickname) > 50:
		return ErrNicknameTooLong
	case !validEmail(a.Email):
		return ErrInvalidEmail
	case a.PasswordHash == "":
		return ErrEmptyHash
	}
	return nil
}

// SetPasswordHash replaces the stored hash and bumps UpdatedAt.
func (a *Account) SetPasswordHash(hash string) {
	a.PasswordHash = hash
	a.UpdatedAt = time.Now().UTC()
}

func validEmail(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at != strings.LastIndexByte(email, '@') {
		return false
	}
	domainPart := email[at+1:]
	dot := strings.LastIndexByte(domainPart, '.')
	return dot > 0 && dot < len(domainPart)-1
}
