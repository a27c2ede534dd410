package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CategoryHandlerParams holds dependencies for CategoryHandler, injected by Fx.
type CategoryHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
	Logger     *slog.Logger
}

// CategoryHandler serves the seller category endpoints.
type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
	logger     *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler
func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{
		categoryUC: params.CategoryUC,
		logger:     params.Logger,
	}
}

// CategoryRequest represents the request body for creating or updating a category.
// Omitted color and order keep the stored values on update.
type CategoryRequest struct {
	Name  string  `json:"name" validate:"required,max=100"`
	Color *string `json:"color" validate:"omitempty,max=32"`
	Order *int    `json:"order" validate:"omitempty,min=0"`
}

// CreateCategory handles creating a category for the authenticated seller
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	return h.upsert(c, nil, http.StatusCreated)
}

// UpdateCategory handles updating one of the seller's categories
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	categoryID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.upsert(c, &categoryID, http.StatusOK)
}

func (h *CategoryHandler) upsert(c echo.Context, categoryID *uuid.UUID, status int) error {
	sellerID, err := currentBusiness(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.categoryUC.Upsert(c.Request().Context(), &usecase.UpsertCategoryInput{
		ID:       categoryID,
		SellerID: sellerID,
		Name:     req.Name,
		Color:    req.Color,
		Order:    req.Order,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, status, category)
}

// ListCategories handles listing the authenticated seller's categories
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	sellerID, err := currentBusiness(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	categories, err := h.categoryUC.ListForSeller(c.Request().Context(), sellerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

// GetCategory handles retrieving a category by ID
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	categoryID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.categoryUC.Get(c.Request().Context(), categoryID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category)
}

// DeleteCategory handles deleting one of the seller's categories
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	sellerID, err := currentBusiness(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	categoryID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.categoryUC.Delete(c.Request().Context(), sellerID, categoryID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
