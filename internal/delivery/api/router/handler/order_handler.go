package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves the order ledger endpoints.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderItemRequest is one line of a new order
type OrderItemRequest struct {
	ProductID uuid.UUID       `json:"productId" validate:"required"`
	Name      string          `json:"name" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	Price     decimal.Decimal `json:"price" validate:"decimal_gte0"`
	Unit      string          `json:"unit"`
}

// CreateOrderRequest represents the request body for placing an order
type CreateOrderRequest struct {
	SellerID        uuid.UUID              `json:"sellerId" validate:"required"`
	Items           []OrderItemRequest     `json:"items" validate:"required,min=1,dive"`
	ShippingAddress entity.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
}

// UpdateOrderStatusRequest represents the request body for moving an order along its lifecycle
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled returned"`
}

// CreateOrder handles placing an order as the authenticated buyer
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	buyerID, err := currentBusiness(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	items := make([]entity.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		productID := item.ProductID
		items = append(items, entity.OrderItem{
			ProductID: &productID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Unit:      item.Unit,
		})
	}

	order, err := h.orderUC.Create(c.Request().Context(), &usecase.CreateOrderInput{
		BuyerID:         buyerID,
		SellerID:        req.SellerID,
		Items:           items,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// ListPlacedOrders handles listing the orders placed by the authenticated buyer
func (h *OrderHandler) ListPlacedOrders(c echo.Context) error {
	buyerID, err := currentBusiness(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.orderUC.ListForBuyer(c.Request().Context(), buyerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// ListReceivedOrders handles listing the orders received by the authenticated seller
func (h *OrderHandler) ListReceivedOrders(c echo.Context) error {
	sellerID, err := currentBusiness(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.orderUC.ListForSeller(c.Request().Context(), sellerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// GetOrder handles retrieving an order visible to the authenticated business
func (h *OrderHandler) GetOrder(c echo.Context) error {
	requesterID, err := currentBusiness(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.Get(c.Request().Context(), requesterID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// UpdateOrderStatus handles a seller moving one of its orders to a new status
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	sellerID, err := currentBusiness(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateOrderStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), sellerID, orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}
