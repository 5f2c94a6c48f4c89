package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// VendorHandlerParams holds dependencies for VendorHandler, injected by Fx.
type VendorHandlerParams struct {
	fx.In

	VendorUC usecase.VendorUsecase
	Logger   *slog.Logger
}

// VendorHandler holds dependencies for vendor profile handlers
type VendorHandler struct {
	vendorUC usecase.VendorUsecase
	logger   *slog.Logger
}

// NewVendorHandler is the constructor for VendorHandler
func NewVendorHandler(params VendorHandlerParams) *VendorHandler {
	return &VendorHandler{
		vendorUC: params.VendorUC,
		logger:   params.Logger,
	}
}

// CreateVendorProfileRequest represents the request body for creating a vendor profile
type CreateVendorProfileRequest struct {
	UserID       uuid.UUID `json:"user_id" validate:"required"`
	BusinessName string    `json:"business_name" validate:"required,max=255"`
	Description  string    `json:"description,omitempty"`
	Phone        string    `json:"phone,omitempty" validate:"omitempty,max=50"`
	Website      string    `json:"website,omitempty" validate:"omitempty,url"`
}

// UpdateVendorProfileRequest represents the request body for updating a vendor profile
type UpdateVendorProfileRequest struct {
	BusinessName *string `json:"business_name,omitempty" validate:"omitempty,max=255"`
	Description  *string `json:"description,omitempty"`
	Phone        *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Website      *string `json:"website,omitempty" validate:"omitempty,url"`
}

// AddServiceRequest represents the request body for adding a service offering
type AddServiceRequest struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

// AddOperatingHoursRequest represents the request body for adding operating hours
type AddOperatingHoursRequest struct {
	DayOfWeek int    `json:"day_of_week" validate:"min=0,max=6"`
	OpensAt   string `json:"opens_at" validate:"required"`
	ClosesAt  string `json:"closes_at" validate:"required"`
}

// AddBusinessLocationRequest represents the request body for adding a business location
type AddBusinessLocationRequest struct {
	Label       string  `json:"label,omitempty"`
	FullAddress string  `json:"full_address" validate:"required"`
	Latitude    float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude   float64 `json:"longitude" validate:"min=-180,max=180"`
}

// AddSocialMediaRequest represents the request body for adding a social media link
type AddSocialMediaRequest struct {
	Platform string `json:"platform" validate:"required,max=50"`
	URL      string `json:"url" validate:"required,url"`
}

// CreateProfile handles creating a vendor profile for a vendor-typed user
func (h *VendorHandler) CreateProfile(c echo.Context) error {
	var req CreateVendorProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vendor profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.CreateVendorProfileInput{
		UserID:       req.UserID,
		BusinessName: req.BusinessName,
		Description:  req.Description,
		Phone:        req.Phone,
		Website:      req.Website,
	}

	profile, err := h.vendorUC.CreateProfile(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, profile)
}

// GetProfile handles retrieving a vendor profile with requested relations
func (h *VendorHandler) GetProfile(c echo.Context) error {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor profile ID")
	}

	relations := parseRelations(
		c.QueryParam("relations"),
		c.QueryParams().Has("relations"),
		repository.AllVendorRelations(),
	)

	profile, err := h.vendorUC.GetProfile(c.Request().Context(), profileID, relations)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// GetProfileByUser handles retrieving the vendor profile owned by a user
func (h *VendorHandler) GetProfileByUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	relations := parseRelations(
		c.QueryParam("relations"),
		c.QueryParams().Has("relations"),
		repository.AllVendorRelations(),
	)

	profile, err := h.vendorUC.GetProfileByUserID(c.Request().Context(), userID, relations)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// ListProfiles handles retrieving all vendor profiles
func (h *VendorHandler) ListProfiles(c echo.Context) error {
	profiles, err := h.vendorUC.ListProfiles(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profiles)
}

// UpdateProfile handles a partial update of a vendor profile
func (h *VendorHandler) UpdateProfile(c echo.Context) error {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor profile ID")
	}

	var req UpdateVendorProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vendor profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateVendorProfileInput{
		BusinessName: req.BusinessName,
		Description:  req.Description,
		Phone:        req.Phone,
		Website:      req.Website,
	}

	profile, err := h.vendorUC.UpdateProfile(c.Request().Context(), profileID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// DeleteProfile handles deleting a vendor profile and its dependents
func (h *VendorHandler) DeleteProfile(c echo.Context) error {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor profile ID")
	}

	if err := h.vendorUC.DeleteProfile(c.Request().Context(), profileID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Vendor profile deleted successfully"})
}

// AddService handles adding a service offering to a vendor profile
func (h *VendorHandler) AddService(c echo.Context) error {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor profile ID")
	}

	var req AddServiceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.AddServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}

	profile, err := h.vendorUC.AddService(c.Request().Context(), profileID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, profile)
}

// AddOperatingHours handles adding an operating hours entry to a vendor profile
func (h *VendorHandler) AddOperatingHours(c echo.Context) error {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor profile ID")
	}

	var req AddOperatingHoursRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid operating hours input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.AddOperatingHoursInput{
		DayOfWeek: req.DayOfWeek,
		OpensAt:   req.OpensAt,
		ClosesAt:  req.ClosesAt,
	}

	profile, err := h.vendorUC.AddOperatingHours(c.Request().Context(), profileID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, profile)
}

// AddBusinessLocation handles adding a geolocated business location to a vendor profile
func (h *VendorHandler) AddBusinessLocation(c echo.Context) error {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor profile ID")
	}

	var req AddBusinessLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.AddBusinessLocationInput{
		Label:       req.Label,
		FullAddress: req.FullAddress,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}

	profile, err := h.vendorUC.AddBusinessLocation(c.Request().Context(), profileID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, profile)
}

// AddSocialMedia handles adding a social media link to a vendor profile
func (h *VendorHandler) AddSocialMedia(c echo.Context) error {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor profile ID")
	}

	var req AddSocialMediaRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid social media input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.AddSocialMediaInput{
		Platform: req.Platform,
		URL:      req.URL,
	}

	profile, err := h.vendorUC.AddSocialMedia(c.Request().Context(), profileID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, profile)
}
