package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves the catalogue endpoints.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// CreateProductRequest represents the request body for listing a product
type CreateProductRequest struct {
	CategoryID *uuid.UUID      `json:"categoryId"`
	Name       string          `json:"name" validate:"required"`
	Price      decimal.Decimal `json:"price" validate:"decimal_gte0"`
	Unit       string          `json:"unit" validate:"required"`
}

// CreateProduct handles listing a product for the authenticated seller
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	sellerID, err := currentBusiness(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.Create(c.Request().Context(), &usecase.CreateProductInput{
		SellerID:   sellerID,
		CategoryID: req.CategoryID,
		Name:       req.Name,
		Price:      req.Price,
		Unit:       req.Unit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// ListOwnProducts handles listing the authenticated seller's catalogue
func (h *ProductHandler) ListOwnProducts(c echo.Context) error {
	sellerID, err := currentBusiness(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.list(c, sellerID)
}

// ListSellerProducts handles listing the catalogue of the seller in the path
func (h *ProductHandler) ListSellerProducts(c echo.Context) error {
	sellerID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.list(c, sellerID)
}

func (h *ProductHandler) list(c echo.Context, sellerID uuid.UUID) error {
	products, err := h.productUC.ListForSeller(c.Request().Context(), sellerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}
