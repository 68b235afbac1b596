package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Username length bounds enforced at signup.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 30
)

// MinPasswordLength is the minimum plaintext password length accepted
// at signup. The hash stored alongside the user is produced by the
// credential collaborator (bcrypt); the domain never sees it again.
const MinPasswordLength = 6

// User represents a registered account. Usernames are unique and
// case-sensitive; the account is immutable after signup.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Password       string    `json:"-"` // Plaintext, only populated during signup
	HashedPassword string    `json:"-"` // Never expose the hash in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given username and plaintext
// password. It generates the user ID and sets the timestamps.
// Returns a ValidationError if validation fails.
//
// The caller is responsible for hashing the password before storing
// the user.
func NewUser(username, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Username:  strings.TrimSpace(username),
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
// Returns a ValidationError if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}

	if len(u.Username) < MinUsernameLength || len(u.Username) > MaxUsernameLength {
		return NewValidationError("username", "must be between 3 and 30 characters", nil)
	}

	if u.Password != "" {
		if len(u.Password) < MinPasswordLength {
			return NewValidationError("password", "must be at least 6 characters", nil)
		}
	} else if u.HashedPassword == "" {
		// Users loaded from the store carry only the hash.
		return NewValidationError("password", "cannot be empty", nil)
	}

	return nil
}
