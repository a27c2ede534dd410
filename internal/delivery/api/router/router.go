// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/router/handler"
	"marketplace/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	BusinessHandler *handler.BusinessHandler
	CategoryHandler *handler.CategoryHandler
	ProductHandler  *handler.ProductHandler
	OrderHandler    *handler.OrderHandler
	PaymentHandler  *handler.PaymentHandler
	ReviewHandler   *handler.ReviewHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	businessHandler *handler.BusinessHandler
	categoryHandler *handler.CategoryHandler
	productHandler  *handler.ProductHandler
	orderHandler    *handler.OrderHandler
	paymentHandler  *handler.PaymentHandler
	reviewHandler   *handler.ReviewHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		businessHandler: params.BusinessHandler,
		categoryHandler: params.CategoryHandler,
		productHandler:  params.ProductHandler,
		orderHandler:    params.OrderHandler,
		paymentHandler:  params.PaymentHandler,
		reviewHandler:   params.ReviewHandler,
		adminHandler:    params.AdminHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// LicenseUploadPath receives license documents. Its body limit follows the storage
// upload limit instead of the JSON limit.
const LicenseUploadPath = "/api/v1/uploads/license"

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.businessHandler.Register)
		authGroup.POST("/login", r.businessHandler.Login)
	}

	// Registration needs the license reference before an account exists.
	e.POST(LicenseUploadPath, r.businessHandler.UploadLicense)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)
	requireSeller := r.authMiddleware.RequireBusinessType(entity.BusinessTypeSeller)

	apiV1.GET("/profile", r.businessHandler.GetProfile)

	sellersGroup := apiV1.Group("/sellers")
	{
		sellersGroup.GET("/nearby", r.businessHandler.FindNearbySellers)
		sellersGroup.GET("/:id/products", r.productHandler.ListSellerProducts)
	}

	categoriesGroup := apiV1.Group("/categories")
	{
		categoriesGroup.POST("", r.categoryHandler.CreateCategory, requireSeller)
		categoriesGroup.GET("", r.categoryHandler.ListCategories, requireSeller)
		categoriesGroup.GET("/:id", r.categoryHandler.GetCategory)
		categoriesGroup.PUT("/:id", r.categoryHandler.UpdateCategory, requireSeller)
		categoriesGroup.DELETE("/:id", r.categoryHandler.DeleteCategory, requireSeller)
	}

	productsGroup := apiV1.Group("/products")
	{
		productsGroup.POST("", r.productHandler.CreateProduct, requireSeller)
		productsGroup.GET("", r.productHandler.ListOwnProducts, requireSeller)
		productsGroup.POST("/:id/reviews", r.reviewHandler.SubmitReview)
		productsGroup.GET("/:id/reviews", r.reviewHandler.ListReviews)
	}

	ordersGroup := apiV1.Group("/orders")
	{
		ordersGroup.POST("", r.orderHandler.CreateOrder)
		ordersGroup.GET("", r.orderHandler.ListPlacedOrders)
		ordersGroup.GET("/received", r.orderHandler.ListReceivedOrders, requireSeller)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.PATCH("/:id/status", r.orderHandler.UpdateOrderStatus, requireSeller)
	}

	paymentMethodsGroup := apiV1.Group("/payment-methods", requireSeller)
	{
		paymentMethodsGroup.POST("", r.paymentHandler.CreatePaymentMethod)
		paymentMethodsGroup.GET("", r.paymentHandler.ListPaymentMethods)
		paymentMethodsGroup.PUT("/:id/default", r.paymentHandler.SetDefaultPaymentMethod)
		paymentMethodsGroup.GET("/:id/qr", r.paymentHandler.GetPaymentQR)
	}

	summaryGroup := apiV1.Group("/payment-summary", requireSeller)
	{
		summaryGroup.GET("", r.paymentHandler.GetPaymentSummary)
		summaryGroup.PUT("/schedule", r.paymentHandler.UpdatePayoutSchedule)
	}

	adminGroup := e.Group("/admin", r.authMiddleware.RequireAdmin)
	{
		adminGroup.PUT("/businesses/:id/verification", r.adminHandler.UpdateBusinessVerification)
		adminGroup.POST("/businesses/:id/deactivate", r.adminHandler.DeactivateBusiness)
		adminGroup.PUT("/payment-methods/:id/status", r.adminHandler.UpdatePaymentMethodStatus)
		adminGroup.POST("/sellers/:id/payouts", r.adminHandler.RecordPayout)
	}
}
