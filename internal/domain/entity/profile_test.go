package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_VendorOwned(t *testing.T) {
	vendor := &VendorProfile{ID: uuid.New(), BusinessName: "Night Market Noodles"}
	profile := VendorOwned(vendor)

	assert.Equal(t, UserTypeVendor, profile.Kind())
	assert.True(t, profile.IsValid())

	got, ok := profile.Vendor()
	require.True(t, ok)
	assert.Equal(t, vendor, got)

	_, ok = profile.Customer()
	assert.False(t, ok)
}

func TestProfile_CustomerOwned(t *testing.T) {
	customer := &CustomerProfile{ID: uuid.New(), Email: "jamie@example.com"}
	profile := CustomerOwned(customer)

	assert.Equal(t, UserTypeCustomer, profile.Kind())
	assert.True(t, profile.IsValid())

	got, ok := profile.Customer()
	require.True(t, ok)
	assert.Equal(t, customer, got)

	_, ok = profile.Vendor()
	assert.False(t, ok)
}

func TestProfile_ZeroValueIsInvalid(t *testing.T) {
	var profile Profile

	assert.False(t, profile.IsValid())
	assert.False(t, profile.Kind().IsValid())

	_, ok := profile.Vendor()
	assert.False(t, ok)
	_, ok = profile.Customer()
	assert.False(t, ok)
}

func TestProfile_TaggedWithoutPayloadIsInvalid(t *testing.T) {
	assert.False(t, VendorOwned(nil).IsValid())
	assert.False(t, CustomerOwned(nil).IsValid())
}
