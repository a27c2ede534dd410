package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/fx"
)

type orderService struct {
	orderRepo    repository.OrderRepository
	businessRepo repository.BusinessRepository
	productRepo  repository.ProductRepository
	publisher    service.EventPublisher
	now          func() time.Time
	logger       *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo    repository.OrderRepository
	BusinessRepo repository.BusinessRepository
	ProductRepo  repository.ProductRepository
	Publisher    service.EventPublisher `optional:"true"`
	Logger       *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:    params.OrderRepo,
		businessRepo: params.BusinessRepo,
		productRepo:  params.ProductRepo,
		publisher:    params.Publisher,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create places an order. The buyer is copied into an immutable snapshot and the total
// is always computed from the items.
func (srv *orderService) Create(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if err := entity.ValidateItems(input.Items); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}
	if input.BuyerID == input.SellerID {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "a seller cannot order from itself")
	}

	buyer, err := srv.businessRepo.FindByID(ctx, input.BuyerID)
	if err != nil {
		return nil, errors.Wrap(mapBusinessRepoError(err), "failed to load buyer")
	}

	if err := srv.ensureActiveSeller(ctx, input.SellerID); err != nil {
		return nil, err
	}

	if err := srv.ensureSellerProducts(ctx, input.SellerID, input.Items); err != nil {
		return nil, err
	}

	sellerID := input.SellerID
	order := &entity.Order{
		Buyer: entity.BuyerSnapshot{
			ID:    buyer.ID,
			Name:  buyer.Name,
			Email: buyer.Email,
			Phone: buyer.Phone,
		},
		SellerID:        &sellerID,
		Items:           input.Items,
		ShippingAddress: input.ShippingAddress,
		TotalAmount:     entity.ComputeTotal(input.Items).Round(2),
		Status:          entity.OrderPending,
		PaymentMethod:   strings.TrimSpace(input.PaymentMethod),
		PaymentStatus:   entity.PaymentPending,
	}
	if buyer.IsHotel() {
		hotelID := buyer.ID
		order.HotelID = &hotelID
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.log(ctx).Info("Order created",
		slog.Any("order_id", order.ID),
		slog.Any("seller_id", sellerID),
		slog.String("total", order.TotalAmount.StringFixed(2)),
	)

	srv.publishOrderEvent(ctx, constants.EventOrderCreated, order)

	return order, nil
}

func (srv *orderService) ensureActiveSeller(ctx context.Context, sellerID uuid.UUID) error {
	seller, err := srv.businessRepo.FindByID(ctx, sellerID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return errors.Wrap(domainerrors.ErrSellerNotFound, err.Error())
		}

		return errors.Wrap(err, "failed to load seller")
	}
	if !seller.IsSeller() {
		return errors.Wrap(domainerrors.ErrSellerNotFound, "business is not a seller")
	}
	if !seller.IsActive {
		return errors.Wrap(domainerrors.ErrBusinessInactive, "seller is deactivated")
	}

	return nil
}

// ensureSellerProducts checks that every referenced product exists and belongs to the seller.
func (srv *orderService) ensureSellerProducts(ctx context.Context, sellerID uuid.UUID, items []entity.OrderItem) error {
	productIDs := lo.Uniq(lo.FilterMap(items, func(item entity.OrderItem, _ int) (uuid.UUID, bool) {
		return lo.FromPtr(item.ProductID), item.ProductID != nil
	}))
	if len(productIDs) == 0 {
		return nil
	}

	products, err := srv.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		return errors.Wrap(err, "failed to load ordered products")
	}

	owned := lo.SliceToMap(products, func(product *entity.Product) (uuid.UUID, bool) {
		return product.ID, product.SellerID == sellerID
	})
	for _, productID := range productIDs {
		if !owned[productID] {
			return errors.Wrapf(domainerrors.ErrValidationFailed, "product %s is not sold by this seller", productID)
		}
	}

	return nil
}

func (srv *orderService) Get(ctx context.Context, requesterID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	isParty := order.Buyer.ID == requesterID ||
		lo.FromPtr(order.SellerID) == requesterID ||
		lo.FromPtr(order.HotelID) == requesterID
	if !isParty {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "order belongs to other parties")
	}

	return order, nil
}

func (srv *orderService) ListForSeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindBySeller(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller orders")
	}

	return orders, nil
}

func (srv *orderService) ListForBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByBuyer(ctx, buyerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list buyer orders")
	}

	return orders, nil
}

// UpdateStatus applies a lifecycle transition. The repository compares the stored status,
// so a concurrent transition surfaces as ErrInvalidStatusTransition.
func (srv *orderService) UpdateStatus(ctx context.Context, sellerID, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown order status %q", status)
	}

	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if lo.FromPtr(order.SellerID) != sellerID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "order belongs to another seller")
	}
	if !order.Status.CanTransitionTo(status) {
		return nil, errors.Wrapf(domainerrors.ErrInvalidStatusTransition, "%s -> %s", order.Status, status)
	}

	if err := srv.orderRepo.UpdateStatus(ctx, orderID, order.Status, status); err != nil {
		switch {
		case errors.Is(err, repository.ErrOrderStatusChanged):
			return nil, errors.Wrap(domainerrors.ErrInvalidStatusTransition, err.Error())
		case errors.Is(err, repository.ErrOrderNotFound):
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, err.Error())
		default:
			return nil, errors.Wrap(err, "failed to update order status")
		}
	}

	srv.log(ctx).Info("Order status changed",
		slog.Any("order_id", orderID),
		slog.String("from", string(order.Status)),
		slog.String("to", string(status)),
	)

	order.Status = status
	order.UpdatedAt = srv.now()
	srv.publishOrderEvent(ctx, constants.EventOrderStatusChanged, order)

	return order, nil
}

func (srv *orderService) findOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, err.Error())
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

func (srv *orderService) publishOrderEvent(ctx context.Context, eventType string, order *entity.Order) {
	now := srv.now()
	publishEvent(ctx, srv.publisher, srv.log(ctx), eventType, &entity.OrderEvent{
		OrderID:    order.ID,
		SellerID:   lo.FromPtr(order.SellerID),
		Status:     order.Status,
		Amount:     order.TotalAmount,
		OccurredAt: now,
	}, now)
}
