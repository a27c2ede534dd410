package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"
	domainerrors "marketplace/internal/domain/errors"
	mockSvc "marketplace/internal/mocks/service"
	mockUsecase "marketplace/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newAuthTestContext(header, value string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	if header != "" {
		req.Header.Set(header, value)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	businessID := uuid.New()

	t.Run("valid token", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("good").
			Return(&service.Claims{BusinessID: businessID, BusinessType: entity.BusinessTypeSeller}, nil)
		businessUC := mockUsecase.NewMockBusinessUsecase(t)
		businessUC.EXPECT().GetProfile(mock.Anything, businessID).
			Return(&entity.Business{ID: businessID, Type: entity.BusinessTypeSeller, IsActive: true}, nil)
		m := NewAuthMiddleware(tokenSvc, businessUC, &config.Config{}, discardLogger)
		c, rec := newAuthTestContext(echo.HeaderAuthorization, "Bearer good")

		require.NoError(t, m.Authenticate(okHandler)(c))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		gotID, ok := deliverycontext.GetBusinessID(c)
		assert.True(t, ok)
		assert.Equal(t, businessID, gotID)
		assert.Equal(t, entity.BusinessTypeSeller, deliverycontext.GetBusinessType(c))
	})

	t.Run("missing header", func(t *testing.T) {
		m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), mockUsecase.NewMockBusinessUsecase(t), &config.Config{}, discardLogger)
		c, rec := newAuthTestContext("", "")

		require.NoError(t, m.Authenticate(okHandler)(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), mockUsecase.NewMockBusinessUsecase(t), &config.Config{}, discardLogger)
		c, rec := newAuthTestContext(echo.HeaderAuthorization, "Basic abc")

		require.NoError(t, m.Authenticate(okHandler)(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("old").Return(nil, errors.New("token is expired"))
		m := NewAuthMiddleware(tokenSvc, mockUsecase.NewMockBusinessUsecase(t), &config.Config{}, discardLogger)
		c, rec := newAuthTestContext(echo.HeaderAuthorization, "Bearer old")

		require.NoError(t, m.Authenticate(okHandler)(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("deactivated business", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("good").
			Return(&service.Claims{BusinessID: businessID, BusinessType: entity.BusinessTypeHotel}, nil)
		businessUC := mockUsecase.NewMockBusinessUsecase(t)
		businessUC.EXPECT().GetProfile(mock.Anything, businessID).
			Return(&entity.Business{ID: businessID, Type: entity.BusinessTypeHotel, IsActive: false}, nil)
		m := NewAuthMiddleware(tokenSvc, businessUC, &config.Config{}, discardLogger)
		c, rec := newAuthTestContext(echo.HeaderAuthorization, "Bearer good")

		require.NoError(t, m.Authenticate(okHandler)(c))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "BUSINESS_INACTIVE")
		_, ok := deliverycontext.GetBusinessID(c)
		assert.False(t, ok)
	})

	t.Run("deleted business", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("good").
			Return(&service.Claims{BusinessID: businessID, BusinessType: entity.BusinessTypeHotel}, nil)
		businessUC := mockUsecase.NewMockBusinessUsecase(t)
		businessUC.EXPECT().GetProfile(mock.Anything, businessID).
			Return(nil, errors.Wrap(domainerrors.ErrBusinessNotFound, "failed to get business profile"))
		m := NewAuthMiddleware(tokenSvc, businessUC, &config.Config{}, discardLogger)
		c, rec := newAuthTestContext(echo.HeaderAuthorization, "Bearer good")

		require.NoError(t, m.Authenticate(okHandler)(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthMiddleware_RequireBusinessType(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), mockUsecase.NewMockBusinessUsecase(t), &config.Config{}, discardLogger)

	c, rec := newAuthTestContext("", "")
	deliverycontext.SetBusiness(c, uuid.New(), entity.BusinessTypeHotel)
	require.NoError(t, m.RequireBusinessType(entity.BusinessTypeSeller)(okHandler)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	c, rec = newAuthTestContext("", "")
	deliverycontext.SetBusiness(c, uuid.New(), entity.BusinessTypeSeller)
	require.NoError(t, m.RequireBusinessType(entity.BusinessTypeSeller)(okHandler)(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthMiddleware_RequireAdmin(t *testing.T) {
	cfg := &config.Config{Admin: &config.AdminConfig{APIKey: "s3cret"}}

	tests := []struct {
		name     string
		cfg      *config.Config
		key      string
		wantCode int
	}{
		{name: "matching key", cfg: cfg, key: "s3cret", wantCode: http.StatusNoContent},
		{name: "wrong key", cfg: cfg, key: "guess", wantCode: http.StatusUnauthorized},
		{name: "missing key", cfg: cfg, key: "", wantCode: http.StatusUnauthorized},
		{name: "admin disabled", cfg: &config.Config{}, key: "", wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), mockUsecase.NewMockBusinessUsecase(t), tt.cfg, discardLogger)
			c, rec := newAuthTestContext(HeaderAdminKey, tt.key)

			require.NoError(t, m.RequireAdmin(okHandler)(c))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
