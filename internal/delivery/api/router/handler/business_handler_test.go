package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace/internal/delivery/api/validator"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestBusinessHandler(t *testing.T) (*BusinessHandler, *mockUsecase.MockBusinessUsecase) {
	businessUC := mockUsecase.NewMockBusinessUsecase(t)

	return NewBusinessHandler(BusinessHandlerParams{BusinessUC: businessUC, Logger: discardLogger}), businessUC
}

const sellerRegistration = `{
	"businessType": "seller",
	"name": "Fresh Farms",
	"ownerName": "Asha",
	"email": "Sales@FreshFarms.test",
	"phone": "+91-9000000000",
	"password": "s3cretpass",
	"licenseDocument": "licenses/abc.pdf",
	"registrationNumber": "REG-1",
	"sellerDetails": {"productCategories": ["vegetables"], "storageType": "cold", "deliveryRadius": 12.5}
}`

func TestBusinessHandler_Register(t *testing.T) {
	t.Run("creates seller", func(t *testing.T) {
		h, businessUC := newTestBusinessHandler(t)
		expiresAt := time.Unix(1_800_000_000, 0)
		businessUC.EXPECT().
			Register(mock.Anything, mock.MatchedBy(func(input *usecase.RegisterBusinessInput) bool {
				return input.BusinessType == entity.BusinessTypeSeller &&
					input.Seller != nil && input.Seller.DeliveryRadiusKm == 12.5 &&
					input.Hotel == nil && input.Password == "s3cretpass"
			})).
			Return(&usecase.AuthOutput{
				Token:     "token",
				ExpiresAt: expiresAt,
				Business:  &entity.Business{ID: uuid.New(), Type: entity.BusinessTypeSeller},
			}, nil)
		c, rec := newTestContext(http.MethodPost, "/auth/register", sellerRegistration, uuid.Nil, "")

		require.NoError(t, h.Register(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		var out AuthResponse
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &out))
		assert.Equal(t, "token", out.Token)
		assert.Equal(t, expiresAt.Unix(), out.ExpiresAt)
	})

	t.Run("rejects short password", func(t *testing.T) {
		h, _ := newTestBusinessHandler(t)
		body := `{"businessType":"seller","name":"n","ownerName":"o","email":"a@b.test","phone":"1",
			"password":"short","licenseDocument":"l","registrationNumber":"r"}`
		c, rec := newTestContext(http.MethodPost, "/auth/register", body, uuid.Nil, "")

		require.NoError(t, h.Register(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeEnvelope(t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
		assert.Contains(t, resp.Error.Details, "Password must be at least 8")
	})

	t.Run("rejects unknown business type", func(t *testing.T) {
		h, _ := newTestBusinessHandler(t)
		body := `{"businessType":"caterer","name":"n","ownerName":"o","email":"a@b.test","phone":"1",
			"password":"longenough","licenseDocument":"l","registrationNumber":"r"}`
		c, rec := newTestContext(http.MethodPost, "/auth/register", body, uuid.Nil, "")

		require.NoError(t, h.Register(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		h, businessUC := newTestBusinessHandler(t)
		businessUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrDuplicateEmail)
		c, rec := newTestContext(http.MethodPost, "/auth/register", sellerRegistration, uuid.Nil, "")

		require.NoError(t, h.Register(c))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "DUPLICATE_EMAIL", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestBusinessHandler_Login(t *testing.T) {
	h, businessUC := newTestBusinessHandler(t)
	businessUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "a@b.test", Password: "wrong-password"}).
		Return(nil, domainerrors.ErrInvalidCredentials)
	c, rec := newTestContext(http.MethodPost, "/auth/login", `{"email":"a@b.test","password":"wrong-password"}`, uuid.Nil, "")

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Equal(t, "INVALID_CREDENTIALS", resp.Error.Code)
	assert.Nil(t, resp.Error.Details)
}

func TestBusinessHandler_GetProfile(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		h, businessUC := newTestBusinessHandler(t)
		businessID := uuid.New()
		businessUC.EXPECT().GetProfile(mock.Anything, businessID).
			Return(&entity.Business{ID: businessID, Name: "Grand Hotel"}, nil)
		c, rec := newTestContext(http.MethodGet, "/api/v1/profile", "", businessID, entity.BusinessTypeHotel)

		require.NoError(t, h.GetProfile(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Grand Hotel")
	})

	t.Run("without session", func(t *testing.T) {
		h, _ := newTestBusinessHandler(t)
		c, rec := newTestContext(http.MethodGet, "/api/v1/profile", "", uuid.Nil, "")

		require.NoError(t, h.GetProfile(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestBusinessHandler_UploadLicense(t *testing.T) {
	t.Run("stores multipart file", func(t *testing.T) {
		h, businessUC := newTestBusinessHandler(t)
		businessUC.EXPECT().
			UploadLicense(mock.Anything, mock.MatchedBy(func(input *usecase.UploadLicenseInput) bool {
				return input.Filename == "license.pdf"
			})).
			Return(&service.StoredDocument{Reference: "licenses/0192.pdf", Size: 7, Checksum: "abc"}, nil)

		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		part, err := writer.CreateFormFile("file", "license.pdf")
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1."))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		e := echo.New()
		e.Validator = validator.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads/license", &body)
		req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
		rec := httptest.NewRecorder()

		require.NoError(t, h.UploadLicense(e.NewContext(req, rec)))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"reference":"licenses/0192.pdf"`)
	})

	t.Run("missing file", func(t *testing.T) {
		h, _ := newTestBusinessHandler(t)
		c, rec := newTestContext(http.MethodPost, "/api/v1/uploads/license", "", uuid.Nil, "")

		require.NoError(t, h.UploadLicense(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBusinessHandler_FindNearbySellers(t *testing.T) {
	t.Run("valid point", func(t *testing.T) {
		h, businessUC := newTestBusinessHandler(t)
		businessUC.EXPECT().FindSellersNear(mock.Anything, 19.07, 72.87).
			Return([]*entity.Business{{Name: "Fresh Farms"}}, nil)
		c, rec := newTestContext(http.MethodGet, "/api/v1/sellers/nearby?lat=19.07&lng=72.87", "", uuid.New(), entity.BusinessTypeHotel)

		require.NoError(t, h.FindNearbySellers(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Fresh Farms")
	})

	tests := []struct {
		name  string
		query string
	}{
		{name: "missing lat", query: "lng=72.87"},
		{name: "latitude out of range", query: "lat=91&lng=72.87"},
		{name: "longitude not a number", query: "lat=19&lng=east"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestBusinessHandler(t)
			c, rec := newTestContext(http.MethodGet, "/api/v1/sellers/nearby?"+tt.query, "", uuid.New(), entity.BusinessTypeHotel)

			require.NoError(t, h.FindNearbySellers(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
