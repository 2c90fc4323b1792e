package domain

import (
	"regexp"
	"strings"
)

const (
	// MinPasswordLength is the shortest password accepted at registration.
	MinPasswordLength = 8
	// MaxPasswordLength is bcrypt's input limit in bytes.
	MaxPasswordLength = 72
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@([A-Za-z0-9.-]+\.[A-Za-z]{2,})$`)

// Customer is a registered library customer as stored in the database.
// PasswordHash never leaves the service layer; use Profile for output.
type Customer struct {
	ID           int64  `db:"id"       json:"id"`
	Name         string `db:"name"     json:"name"`
	Email        string `db:"email"    json:"email"`
	PasswordHash string `db:"password" json:"-"`
}

// CustomerProfile is the public view of a customer. It has no credential
// field, so it cannot leak one when serialized.
type CustomerProfile struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Profile projects c to its public shape.
func (c *Customer) Profile() CustomerProfile {
	return CustomerProfile{ID: c.ID, Name: c.Name, Email: c.Email}
}

// CustomerCreate carries the fields needed to register a customer.
type CustomerCreate struct {
	Name     string
	Email    string
	Password string
}

// CustomerUpdate is a partial update; nil fields are left unchanged.
type CustomerUpdate struct {
	Name     *string
	Email    *string
	Password *string
}

// ApplyTo merges the provided fields into c. The password is not applied
// because it must be hashed by the caller first.
func (u CustomerUpdate) ApplyTo(c *Customer) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Email != nil {
		c.Email = *u.Email
	}
}

// ValidateEmail returns a validation error if email is not a plausible
// address.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return NewValidationError(MsgInvalidEmail)
	}
	return nil
}

// NormalizeEmail trims surrounding whitespace. Case is preserved.
func NormalizeEmail(email string) string {
	return strings.TrimSpace(email)
}
