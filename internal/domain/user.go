package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Password length bounds. bcrypt ignores everything past 72 bytes.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

// User validation errors
var (
	ErrEmptyUsername    = fmt.Errorf("%w: username cannot be empty", ErrValidation)
	ErrEmptyEmail       = fmt.Errorf("%w: email cannot be empty", ErrValidation)
	ErrInvalidEmail     = fmt.Errorf("%w: invalid email format", ErrValidation)
	ErrEmptyPassword    = fmt.Errorf("%w: password cannot be empty", ErrValidation)
	ErrPasswordTooShort = fmt.Errorf("%w: password must be at least %d characters long", ErrValidation, MinPasswordLength)
	ErrPasswordTooLong  = fmt.Errorf("%w: password must be at most %d characters long", ErrValidation, MaxPasswordLength)
)

var emailValidator = validator.New()

// User represents a registered author on the blog.
type User struct {
	ID             uint64    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext password, used temporarily during registration/updates
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewUser creates a new User with the given username, email and password.
//
// NOTE: This function only sets up the user structure with the plaintext password.
// The caller is responsible for hashing the password before storing the user.
func NewUser(username, email, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		Username:  strings.TrimSpace(username),
		Email:     strings.TrimSpace(email),
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return ErrEmptyUsername
	}

	if err := ValidateEmail(u.Email); err != nil {
		return err
	}

	if u.Password != "" {
		return ValidatePassword(u.Password)
	}
	if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

// ValidateEmail reports whether email is present and syntactically valid.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmptyEmail
	}
	if err := emailValidator.Var(email, "email"); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

// ValidatePassword checks the plaintext password length bounds.
func ValidatePassword(password string) error {
	switch {
	case password == "":
		return ErrEmptyPassword
	case len(password) < MinPasswordLength:
		return ErrPasswordTooShort
	case len(password) > MaxPasswordLength:
		return ErrPasswordTooLong
	}
	return nil
}
