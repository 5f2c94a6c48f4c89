package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestService_Validate(t *testing.T) {
	valid := &Service{
		ID:              uuid.New(),
		VendorProfileID: uuid.New(),
		Name:            "Haircut",
		Price:           decimal.RequireFromString("29.99"),
	}
	assert.NoError(t, valid.Validate())
}

func TestService_Validate_EmptyName(t *testing.T) {
	svc := &Service{ID: uuid.New(), Price: decimal.NewFromInt(10)}
	assert.Error(t, svc.Validate())
}

func TestService_Validate_NegativePrice(t *testing.T) {
	svc := &Service{ID: uuid.New(), Name: "Haircut", Price: decimal.NewFromInt(-1)}
	assert.Error(t, svc.Validate())
}

func TestService_Validate_ZeroPriceAllowed(t *testing.T) {
	svc := &Service{ID: uuid.New(), Name: "Consultation", Price: decimal.Zero}
	assert.NoError(t, svc.Validate())
}
