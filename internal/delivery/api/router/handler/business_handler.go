package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BusinessHandlerParams holds dependencies for BusinessHandler, injected by Fx.
type BusinessHandlerParams struct {
	fx.In

	BusinessUC usecase.BusinessUsecase
	Logger     *slog.Logger
}

// BusinessHandler serves registration, login and profile endpoints.
type BusinessHandler struct {
	businessUC usecase.BusinessUsecase
	logger     *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler
func NewBusinessHandler(params BusinessHandlerParams) *BusinessHandler {
	return &BusinessHandler{
		businessUC: params.BusinessUC,
		logger:     params.Logger,
	}
}

// RegisterRequest represents the request body for registering a hotel or a seller
type RegisterRequest struct {
	BusinessType       string                 `json:"businessType" validate:"required,business_type"`
	Name               string                 `json:"name" validate:"required"`
	OwnerName          string                 `json:"ownerName" validate:"required"`
	Email              string                 `json:"email" validate:"required,email"`
	Phone              string                 `json:"phone" validate:"required"`
	Password           string                 `json:"password" validate:"required,min=8"`
	Address            entity.BusinessAddress `json:"address"`
	LicenseDocument    string                 `json:"licenseDocument" validate:"required"`
	RegistrationNumber string                 `json:"registrationNumber" validate:"required"`
	HotelDetails       *entity.HotelDetails   `json:"hotelDetails"`
	SellerDetails      *entity.SellerDetails  `json:"sellerDetails"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token     string           `json:"token"`
	ExpiresAt int64            `json:"expiresAt"`
	Business  *entity.Business `json:"business"`
}

// LicenseUploadResponse carries the reference to pass as licenseDocument on registration.
type LicenseUploadResponse struct {
	Reference   string `json:"reference"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
	Checksum    string `json:"checksum"`
}

func newAuthResponse(output *usecase.AuthOutput) *AuthResponse {
	return &AuthResponse{
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt.Unix(),
		Business:  output.Business,
	}
}

// Register handles hotel and seller registration
func (h *BusinessHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.RegisterBusinessInput{
		BusinessType:       entity.BusinessType(req.BusinessType),
		Name:               req.Name,
		OwnerName:          req.OwnerName,
		Email:              req.Email,
		Phone:              req.Phone,
		Password:           req.Password,
		Address:            req.Address,
		LicenseDocument:    req.LicenseDocument,
		RegistrationNumber: req.RegistrationNumber,
		Hotel:              req.HotelDetails,
		Seller:             req.SellerDetails,
	}

	output, err := h.businessUC.Register(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newAuthResponse(output))
}

// Login handles email and password login
func (h *BusinessHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.businessUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAuthResponse(output))
}

// GetProfile returns the authenticated business
func (h *BusinessHandler) GetProfile(c echo.Context) error {
	businessID, err := currentBusiness(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	business, err := h.businessUC.GetProfile(c.Request().Context(), businessID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, business)
}

// UploadLicense stores the multipart "file" field and returns its document reference
func (h *BusinessHandler) UploadLicense(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "A license file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded license")
	}
	defer file.Close()

	stored, err := h.businessUC.UploadLicense(c.Request().Context(), &usecase.UploadLicenseInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Content:     file,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &LicenseUploadResponse{
		Reference:   stored.Reference,
		ContentType: stored.ContentType,
		Size:        stored.Size,
		Checksum:    stored.Checksum,
	})
}

// FindNearbySellers lists sellers delivering to the lat/lng query point
func (h *BusinessHandler) FindNearbySellers(c echo.Context) error {
	latitude, err := parseCoordinate(c.QueryParam("lat"), 90)
	if err != nil {
		return response.HandleAppError(c, errors.Wrap(err, "lat"))
	}
	longitude, err := parseCoordinate(c.QueryParam("lng"), 180)
	if err != nil {
		return response.HandleAppError(c, errors.Wrap(err, "lng"))
	}

	sellers, err := h.businessUC.FindSellersNear(c.Request().Context(), latitude, longitude)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sellers)
}

func parseCoordinate(raw string, limit float64) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < -limit || value > limit {
		return 0, errors.Wrapf(domainerrors.ErrValidationFailed, "coordinate must be a number within ±%v", limit)
	}

	return value, nil
}
