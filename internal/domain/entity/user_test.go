package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUserType_IsValid(t *testing.T) {
	assert.True(t, UserTypeVendor.IsValid())
	assert.True(t, UserTypeCustomer.IsValid())
	assert.False(t, UserType("").IsValid())
	assert.False(t, UserType("admin").IsValid())
}

func TestUser_CanAttach_MatchingKind(t *testing.T) {
	vendorUser := &User{ID: uuid.New(), Username: "shop-owner", UserType: UserTypeVendor}
	customerUser := &User{ID: uuid.New(), Username: "buyer", UserType: UserTypeCustomer}

	vendorProfile := VendorOwned(&VendorProfile{ID: uuid.New(), UserID: vendorUser.ID})
	customerProfile := CustomerOwned(&CustomerProfile{ID: uuid.New(), UserID: customerUser.ID})

	assert.True(t, vendorUser.CanAttach(vendorProfile))
	assert.True(t, customerUser.CanAttach(customerProfile))
}

func TestUser_CanAttach_KindMismatch(t *testing.T) {
	vendorUser := &User{ID: uuid.New(), UserType: UserTypeVendor}
	customerUser := &User{ID: uuid.New(), UserType: UserTypeCustomer}

	vendorProfile := VendorOwned(&VendorProfile{ID: uuid.New()})
	customerProfile := CustomerOwned(&CustomerProfile{ID: uuid.New()})

	assert.False(t, vendorUser.CanAttach(customerProfile))
	assert.False(t, customerUser.CanAttach(vendorProfile))
}
