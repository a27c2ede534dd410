package middleware

import (
	"crypto/subtle"
	"log/slog"
	"strings"

	"marketplace/config"
	"marketplace/internal/delivery/api/response"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HeaderAdminKey carries the shared key accepted by admin routes.
const HeaderAdminKey = "X-Admin-Key"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc   service.TokenService
	businessUC usecase.BusinessUsecase
	adminKey   string
	logger     *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, businessUC usecase.BusinessUsecase, cfg *config.Config, logger *slog.Logger) *AuthMiddleware {
	middleware := &AuthMiddleware{tokenSvc: tokenSvc, businessUC: businessUC, logger: logger}
	if cfg.Admin != nil {
		middleware.adminKey = cfg.Admin.APIKey
	}

	return middleware
}

// Authenticate validates the bearer session token and stores the business on the context.
// Tokens of deleted or deactivated businesses are refused even before they expire.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected session token", slog.Any("error", err))

			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		business, err := m.businessUC.GetProfile(c.Request().Context(), claims.BusinessID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrBusinessNotFound) {
				return response.Unauthorized(c, "UNAUTHORIZED", "Account no longer exists")
			}

			return response.HandleAppError(c, err)
		}
		if !business.IsActive {
			return response.HandleAppError(c, domainerrors.ErrBusinessInactive)
		}

		deliverycontext.SetBusiness(c, claims.BusinessID, claims.BusinessType)

		return next(c)
	}
}

// RequireBusinessType only admits businesses of the given type.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireBusinessType(required entity.BusinessType) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if deliverycontext.GetBusinessType(c) != required {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: requires a "+required.String()+" account")
			}

			return next(c)
		}
	}
}

// RequireAdmin checks the shared admin key. With no key configured every admin request is refused.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		provided := c.Request().Header.Get(HeaderAdminKey)
		if m.adminKey == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(m.adminKey)) != 1 {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid admin key")
		}

		return next(c)
	}
}
