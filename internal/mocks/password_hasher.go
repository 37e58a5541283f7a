package mocks

import "github.com/phrazzld/recipe-api/internal/service/auth"

// MockPasswordHasher implements auth.PasswordHasher for testing.
// Without custom functions it "encodes" by prefixing "hashed:" and verifies
// against that prefix.
type MockPasswordHasher struct {
	EncodeFn func(plaintext string) (string, error)
	VerifyFn func(plaintext, hash string) bool

	// VerifyCallCount tracks how many times Verify was called
	VerifyCallCount int
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Encode implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Encode(plaintext string) (string, error) {
	if m.EncodeFn != nil {
		return m.EncodeFn(plaintext)
	}
	return "hashed:" + plaintext, nil
}

// Verify implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Verify(plaintext, hash string) bool {
	m.VerifyCallCount++
	if m.VerifyFn != nil {
		return m.VerifyFn(plaintext, hash)
	}
	return hash == "hashed:"+plaintext
}
