package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
	Logger     *slog.Logger
}

// CustomerHandler holds dependencies for customer profile handlers
type CustomerHandler struct {
	customerUC usecase.CustomerUsecase
	logger     *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		customerUC: params.CustomerUC,
		logger:     params.Logger,
	}
}

// CreateCustomerProfileRequest represents the request body for creating a customer profile
type CreateCustomerProfileRequest struct {
	UserID      uuid.UUID       `json:"user_id" validate:"required"`
	FirstName   string          `json:"first_name" validate:"required,max=100"`
	LastName    string          `json:"last_name" validate:"required,max=100"`
	Email       string          `json:"email" validate:"required,email"`
	DateOfBirth *time.Time      `json:"date_of_birth,omitempty"`
	Preferences json.RawMessage `json:"preferences,omitempty"`
}

// UpdateCustomerProfileRequest represents the request body for updating a customer profile
type UpdateCustomerProfileRequest struct {
	FirstName   *string         `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName    *string         `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Email       *string         `json:"email,omitempty" validate:"omitempty,email"`
	DateOfBirth *time.Time      `json:"date_of_birth,omitempty"`
	Preferences json.RawMessage `json:"preferences,omitempty"`
}

// UpsertSearchPreferenceRequest represents the request body for saving a search preference
type UpsertSearchPreferenceRequest struct {
	SearchRadius        float64  `json:"search_radius" validate:"required,gt=0"`
	PreferredCategories []string `json:"preferred_categories,omitempty"`
	PreferredPriceRange float64  `json:"preferred_price_range,omitempty" validate:"omitempty,gte=0"`
	PreferredRating     float64  `json:"preferred_rating,omitempty"`
}

// CreateProfile handles creating a customer profile for a customer-typed user
func (h *CustomerHandler) CreateProfile(c echo.Context) error {
	var req CreateCustomerProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.CreateCustomerProfileInput{
		UserID:      req.UserID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		DateOfBirth: req.DateOfBirth,
		Preferences: req.Preferences,
	}

	profile, err := h.customerUC.CreateProfile(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, profile)
}

// GetProfile handles retrieving a customer profile with requested relations
func (h *CustomerHandler) GetProfile(c echo.Context) error {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer profile ID")
	}

	relations := parseRelations(
		c.QueryParam("relations"),
		c.QueryParams().Has("relations"),
		repository.AllCustomerRelations(),
	)

	profile, err := h.customerUC.GetProfile(c.Request().Context(), profileID, relations)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// GetProfileByUser handles retrieving the customer profile owned by a user
func (h *CustomerHandler) GetProfileByUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	relations := parseRelations(
		c.QueryParam("relations"),
		c.QueryParams().Has("relations"),
		repository.AllCustomerRelations(),
	)

	profile, err := h.customerUC.GetProfileByUserID(c.Request().Context(), userID, relations)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// ListProfiles handles retrieving all customer profiles
func (h *CustomerHandler) ListProfiles(c echo.Context) error {
	profiles, err := h.customerUC.ListProfiles(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profiles)
}

// UpdateProfile handles a partial update of a customer profile
func (h *CustomerHandler) UpdateProfile(c echo.Context) error {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer profile ID")
	}

	var req UpdateCustomerProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateCustomerProfileInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		DateOfBirth: req.DateOfBirth,
		Preferences: req.Preferences,
	}

	profile, err := h.customerUC.UpdateProfile(c.Request().Context(), profileID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// DeleteProfile handles deleting a customer profile and its search preference
func (h *CustomerHandler) DeleteProfile(c echo.Context) error {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer profile ID")
	}

	if err := h.customerUC.DeleteProfile(c.Request().Context(), profileID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Customer profile deleted successfully"})
}

// UpsertSearchPreference handles saving the customer's search preference
func (h *CustomerHandler) UpsertSearchPreference(c echo.Context) error {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer profile ID")
	}

	var req UpsertSearchPreferenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search preference input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.UpsertSearchPreferenceInput{
		SearchRadius:        req.SearchRadius,
		PreferredCategories: req.PreferredCategories,
		PreferredPriceRange: req.PreferredPriceRange,
		PreferredRating:     req.PreferredRating,
	}

	profile, err := h.customerUC.UpsertSearchPreference(c.Request().Context(), profileID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}
