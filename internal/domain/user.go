package domain

import (
	"errors"
	"net/mail"
	"time"

	"github.com/google/uuid"
)

// User-specific validation errors
var (
	// ErrUserIDEmpty is returned when a user ID is empty or nil.
	ErrUserIDEmpty = errors.New("user ID cannot be empty")

	// ErrUserEmailEmpty is returned when a user's email is empty.
	ErrUserEmailEmpty = errors.New("email cannot be empty")

	// ErrUserEmailInvalid is returned when a user's email is not a valid address.
	ErrUserEmailInvalid = errors.New("invalid email format")

	// ErrUserPasswordEmpty is returned when neither a plaintext password nor
	// a stored hash is present.
	ErrUserPasswordEmpty = errors.New("password cannot be empty")

	// ErrUserPasswordLength is returned when a plaintext password is outside
	// the 12-72 character range (72 is bcrypt's practical limit).
	ErrUserPasswordLength = errors.New("password must be between 12 and 72 characters")
)

// User represents a registered owner of tasks.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext, held only until the store hashes it
	HashedPassword string    `json:"-"` // Never exposed in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given email and plaintext password.
// The caller (normally the user store) is responsible for hashing the
// password before persisting the user.
// Returns an error if validation fails.
func NewUser(email, password string) (*User, error) {
	user := &User{
		ID:        uuid.New(),
		Email:     email,
		Password:  password,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrUserIDEmpty
	}

	if u.Email == "" {
		return ErrUserEmailEmpty
	}

	if _, err := mail.ParseAddress(u.Email); err != nil {
		return ErrUserEmailInvalid
	}

	if u.Password != "" {
		if len(u.Password) < 12 || len(u.Password) > 72 {
			return ErrUserPasswordLength
		}
		return nil
	}

	// Users loaded from the database carry only the hash.
	if u.HashedPassword == "" {
		return ErrUserPasswordEmpty
	}

	return nil
}
