// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserType discriminates the two account kinds. It is fixed at account
// creation and decides which profile kind the user may hold.
type UserType string

const (
	// UserTypeVendor marks an account that offers services.
	UserTypeVendor UserType = "vendor"
	// UserTypeCustomer marks an account that searches for services.
	UserTypeCustomer UserType = "customer"
)

// IsValid reports whether the value is one of the known user types.
func (t UserType) IsValid() bool {
	return t == UserTypeVendor || t == UserTypeCustomer
}

// String returns the wire form of the user type.
func (t UserType) String() string {
	return string(t)
}

// User is the root of identity in the system. Exactly one profile of the
// matching kind may be attached to it over its lifetime.
type User struct {
	ID             uuid.UUID // The Global Unique Identifier for the user.
	Username       string    // Unique login identifier.
	UserType       UserType  // Immutable after creation; decides which profile kind may attach.
	CredentialHash string    // bcrypt hash of the credential. Never surfaced in views.
	CreatedAt      time.Time // Timestamp of when this user account was created.
	UpdatedAt      time.Time // Timestamp of the last modification to this user's data.
}

// CanAttach reports whether the given profile kind matches the user's
// declared type. A vendor user can only ever hold a vendor profile, and
// vice versa.
func (u *User) CanAttach(p Profile) bool {
	return p.Kind() == u.UserType
}
