package mocks

import (
	"errors"
	"strings"

	"github.com/phrazzld/blog-api/internal/service/auth"
)

// MockPasswordHasher implements auth.PasswordHasher for testing. Its digest
// is the plaintext with a "hashed:" prefix.
type MockPasswordHasher struct {
	HashFn    func(password string) (string, error)
	CompareFn func(hashedPassword, password string) error

	HashCallCount         int
	CompareCallCount      int
	CompareDummyCallCount int
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// ErrPasswordMismatch is returned by Compare when the passwords differ.
var ErrPasswordMismatch = errors.New("password mismatch")

// Hash implements auth.PasswordHasher
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	m.HashCallCount++
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return "hashed:" + password, nil
}

// Compare implements auth.PasswordVerifier
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	m.CompareCallCount++
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if strings.TrimPrefix(hashedPassword, "hashed:") == password && strings.HasPrefix(hashedPassword, "hashed:") {
		return nil
	}
	return ErrPasswordMismatch
}

// CompareDummy implements auth.PasswordHasher
func (m *MockPasswordHasher) CompareDummy(password string) {
	m.CompareDummyCallCount++
}
