// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a tagged union over the two profile kinds. A value always holds
// exactly one payload matching its kind, so a "vendor profile tagged as
// customer" is unrepresentable rather than merely validated at runtime.
// The zero value is invalid and rejected by IsValid.
type Profile struct {
	kind     UserType
	vendor   *VendorProfile
	customer *CustomerProfile
}

// VendorOwned wraps a VendorProfile into a Profile tagged as vendor.
func VendorOwned(v *VendorProfile) Profile {
	return Profile{kind: UserTypeVendor, vendor: v}
}

// CustomerOwned wraps a CustomerProfile into a Profile tagged as customer.
func CustomerOwned(c *CustomerProfile) Profile {
	return Profile{kind: UserTypeCustomer, customer: c}
}

// Kind returns the profile kind tag.
func (p Profile) Kind() UserType {
	return p.kind
}

// IsValid reports whether the union holds a payload matching its tag.
func (p Profile) IsValid() bool {
	switch p.kind {
	case UserTypeVendor:
		return p.vendor != nil
	case UserTypeCustomer:
		return p.customer != nil
	default:
		return false
	}
}

// Vendor returns the vendor payload, and whether the profile is one.
func (p Profile) Vendor() (*VendorProfile, bool) {
	return p.vendor, p.kind == UserTypeVendor && p.vendor != nil
}

// Customer returns the customer payload, and whether the profile is one.
func (p Profile) Customer() (*CustomerProfile, bool) {
	return p.customer, p.kind == UserTypeCustomer && p.customer != nil
}

// VendorProfile holds the business-facing data of a vendor account.
// It exclusively owns its services, operating hours, business locations and
// social media rows; deleting it deletes them.
type VendorProfile struct {
	ID           uuid.UUID // Primary key.
	UserID       uuid.UUID // FK to the owning User, which must be of type vendor.
	BusinessName string
	Description  string
	Phone        string
	Website      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CustomerProfile holds the consumer-facing data of a customer account.
type CustomerProfile struct {
	ID          uuid.UUID  // Primary key.
	UserID      uuid.UUID  // FK to the owning User, which must be of type customer.
	FirstName   string
	LastName    string
	Email       string     // Unique across all customer profiles.
	DateOfBirth *time.Time // Date-only semantics; nil when not provided.
	Preferences []byte     // Opaque JSON blob, stored as-is.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
