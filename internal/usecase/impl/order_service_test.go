package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service      usecase.OrderUsecase
	orderRepo    *mockRepo.MockOrderRepository
	businessRepo *mockRepo.MockBusinessRepository
	productRepo  *mockRepo.MockProductRepository
	publisher    *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	fixtures := orderServiceFixtures{
		orderRepo:    mockRepo.NewMockOrderRepository(t),
		businessRepo: mockRepo.NewMockBusinessRepository(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}

	fixtures.service = NewOrderService(OrderServiceParams{
		OrderRepo:    fixtures.orderRepo,
		BusinessRepo: fixtures.businessRepo,
		ProductRepo:  fixtures.productRepo,
		Publisher:    fixtures.publisher,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return fixtures
}

func TestOrderService_Create_HotelBuyer(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	hotel := &entity.Business{
		ID: uuid.New(), Type: entity.BusinessTypeHotel, Name: "Grand Palace",
		Email: "kitchen@grand.example", Phone: "555-0100", IsActive: true,
	}
	seller := &entity.Business{ID: uuid.New(), Type: entity.BusinessTypeSeller, IsActive: true}
	productID := uuid.New()

	var created *entity.Order

	fx.businessRepo.EXPECT().FindByID(ctx, hotel.ID).Return(hotel, nil)
	fx.businessRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)
	fx.productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{productID}).
		Return([]*entity.Product{{ID: productID, SellerID: seller.ID}}, nil)
	fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = uuid.New()
			created = order
		}).
		Return(nil)
	fx.publisher.EXPECT().Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Run(func(_ context.Context, event *service.DomainEvent) {
			assert.Equal(t, "order.created", event.Type)
		}).
		Return(nil)

	order, err := fx.service.Create(ctx, &usecase.CreateOrderInput{
		BuyerID:  hotel.ID,
		SellerID: seller.ID,
		Items: []entity.OrderItem{
			{ProductID: &productID, Name: "Tomatoes", Quantity: 3, Price: decimal.RequireFromString("40.50"), Unit: "kg"},
			{Name: "Coriander", Quantity: 2, Price: decimal.RequireFromString("10"), Unit: "bunch"},
		},
		ShippingAddress: entity.ShippingAddress{Street: "1 Palace Road", City: "Mysuru"},
		PaymentMethod:   " upi ",
	})

	require.NoError(t, err)
	assert.Same(t, created, order)
	assert.Equal(t, "141.50", order.TotalAmount.StringFixed(2))
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, entity.PaymentPending, order.PaymentStatus)
	assert.Equal(t, "upi", order.PaymentMethod)
	assert.Equal(t, entity.BuyerSnapshot{ID: hotel.ID, Name: "Grand Palace", Email: "kitchen@grand.example", Phone: "555-0100"}, order.Buyer)
	assert.Equal(t, seller.ID, lo.FromPtr(order.SellerID))
	assert.Equal(t, hotel.ID, lo.FromPtr(order.HotelID))
}

func TestOrderService_Create_Errors(t *testing.T) {
	buyer := &entity.Business{ID: uuid.New(), Type: entity.BusinessTypeHotel, IsActive: true}
	sellerID := uuid.New()
	productID := uuid.New()
	items := []entity.OrderItem{{ProductID: &productID, Name: "Onions", Quantity: 1, Price: decimal.NewFromInt(30)}}

	tests := []struct {
		name    string
		input   *usecase.CreateOrderInput
		setup   func(fx orderServiceFixtures)
		wantErr error
	}{
		{
			name:    "no items",
			input:   &usecase.CreateOrderInput{BuyerID: buyer.ID, SellerID: sellerID},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name: "zero quantity",
			input: &usecase.CreateOrderInput{BuyerID: buyer.ID, SellerID: sellerID, Items: []entity.OrderItem{
				{Name: "Onions", Quantity: 0, Price: decimal.NewFromInt(30)},
			}},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "ordering from itself",
			input:   &usecase.CreateOrderInput{BuyerID: sellerID, SellerID: sellerID, Items: items},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:  "unknown seller",
			input: &usecase.CreateOrderInput{BuyerID: buyer.ID, SellerID: sellerID, Items: items},
			setup: func(fx orderServiceFixtures) {
				fx.businessRepo.EXPECT().FindByID(mock.Anything, buyer.ID).Return(buyer, nil)
				fx.businessRepo.EXPECT().FindByID(mock.Anything, sellerID).Return(nil, repository.ErrBusinessNotFound)
			},
			wantErr: domainerrors.ErrSellerNotFound,
		},
		{
			name:  "seller is a hotel",
			input: &usecase.CreateOrderInput{BuyerID: buyer.ID, SellerID: sellerID, Items: items},
			setup: func(fx orderServiceFixtures) {
				fx.businessRepo.EXPECT().FindByID(mock.Anything, buyer.ID).Return(buyer, nil)
				fx.businessRepo.EXPECT().FindByID(mock.Anything, sellerID).
					Return(&entity.Business{ID: sellerID, Type: entity.BusinessTypeHotel, IsActive: true}, nil)
			},
			wantErr: domainerrors.ErrSellerNotFound,
		},
		{
			name:  "deactivated seller",
			input: &usecase.CreateOrderInput{BuyerID: buyer.ID, SellerID: sellerID, Items: items},
			setup: func(fx orderServiceFixtures) {
				fx.businessRepo.EXPECT().FindByID(mock.Anything, buyer.ID).Return(buyer, nil)
				fx.businessRepo.EXPECT().FindByID(mock.Anything, sellerID).
					Return(&entity.Business{ID: sellerID, Type: entity.BusinessTypeSeller}, nil)
			},
			wantErr: domainerrors.ErrBusinessInactive,
		},
		{
			name:  "product of another seller",
			input: &usecase.CreateOrderInput{BuyerID: buyer.ID, SellerID: sellerID, Items: items},
			setup: func(fx orderServiceFixtures) {
				fx.businessRepo.EXPECT().FindByID(mock.Anything, buyer.ID).Return(buyer, nil)
				fx.businessRepo.EXPECT().FindByID(mock.Anything, sellerID).
					Return(&entity.Business{ID: sellerID, Type: entity.BusinessTypeSeller, IsActive: true}, nil)
				fx.productRepo.EXPECT().FindByIDs(mock.Anything, []uuid.UUID{productID}).
					Return([]*entity.Product{{ID: productID, SellerID: uuid.New()}}, nil)
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:  "missing product",
			input: &usecase.CreateOrderInput{BuyerID: buyer.ID, SellerID: sellerID, Items: items},
			setup: func(fx orderServiceFixtures) {
				fx.businessRepo.EXPECT().FindByID(mock.Anything, buyer.ID).Return(buyer, nil)
				fx.businessRepo.EXPECT().FindByID(mock.Anything, sellerID).
					Return(&entity.Business{ID: sellerID, Type: entity.BusinessTypeSeller, IsActive: true}, nil)
				fx.productRepo.EXPECT().FindByIDs(mock.Anything, []uuid.UUID{productID}).Return([]*entity.Product{}, nil)
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			if tt.setup != nil {
				tt.setup(fx)
			}

			order, err := fx.service.Create(context.Background(), tt.input)

			require.Error(t, err)
			assert.Nil(t, order)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestOrderService_Get_OnlyParties(t *testing.T) {
	buyerID := uuid.New()
	sellerID := uuid.New()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, Buyer: entity.BuyerSnapshot{ID: buyerID}, SellerID: &sellerID}

	for name, requester := range map[string]uuid.UUID{"buyer": buyerID, "seller": sellerID} {
		t.Run(name, func(t *testing.T) {
			fx := createTestOrderService(t)
			fx.orderRepo.EXPECT().FindByID(mock.Anything, orderID).Return(order, nil)

			got, err := fx.service.Get(context.Background(), requester, orderID)

			require.NoError(t, err)
			assert.Equal(t, order, got)
		})
	}

	t.Run("stranger", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.orderRepo.EXPECT().FindByID(mock.Anything, orderID).Return(order, nil)

		_, err := fx.service.Get(context.Background(), uuid.New(), orderID)

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("missing order", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.orderRepo.EXPECT().FindByID(mock.Anything, orderID).Return(nil, repository.ErrOrderNotFound)

		_, err := fx.service.Get(context.Background(), buyerID, orderID)

		assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, SellerID: &sellerID, Status: entity.OrderPending, TotalAmount: decimal.NewFromInt(100)}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.orderRepo.EXPECT().UpdateStatus(ctx, orderID, entity.OrderPending, entity.OrderProcessing).Return(nil)
	fx.publisher.EXPECT().Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Run(func(_ context.Context, event *service.DomainEvent) {
			assert.Equal(t, "order.status_changed", event.Type)
			assert.Contains(t, string(event.Data), `"status":"processing"`)
		}).
		Return(nil)

	updated, err := fx.service.UpdateStatus(ctx, sellerID, orderID, entity.OrderProcessing)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderProcessing, updated.Status)
}

func TestOrderService_UpdateStatus_Errors(t *testing.T) {
	sellerID := uuid.New()
	orderID := uuid.New()

	t.Run("unknown status", func(t *testing.T) {
		fx := createTestOrderService(t)

		_, err := fx.service.UpdateStatus(context.Background(), sellerID, orderID, "lost")

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("illegal transition", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.orderRepo.EXPECT().FindByID(mock.Anything, orderID).
			Return(&entity.Order{ID: orderID, SellerID: &sellerID, Status: entity.OrderPending}, nil)

		_, err := fx.service.UpdateStatus(context.Background(), sellerID, orderID, entity.OrderDelivered)

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
	})

	t.Run("another seller", func(t *testing.T) {
		fx := createTestOrderService(t)
		other := uuid.New()
		fx.orderRepo.EXPECT().FindByID(mock.Anything, orderID).
			Return(&entity.Order{ID: orderID, SellerID: &other, Status: entity.OrderPending}, nil)

		_, err := fx.service.UpdateStatus(context.Background(), sellerID, orderID, entity.OrderProcessing)

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("concurrent change", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.orderRepo.EXPECT().FindByID(mock.Anything, orderID).
			Return(&entity.Order{ID: orderID, SellerID: &sellerID, Status: entity.OrderPending}, nil)
		fx.orderRepo.EXPECT().UpdateStatus(mock.Anything, orderID, entity.OrderPending, entity.OrderCancelled).
			Return(repository.ErrOrderStatusChanged)

		_, err := fx.service.UpdateStatus(context.Background(), sellerID, orderID, entity.OrderCancelled)

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
	})
}

func TestOrderService_PublishFailureDoesNotFailCreate(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyer := &entity.Business{ID: uuid.New(), Type: entity.BusinessTypeSeller, IsActive: true}
	seller := &entity.Business{ID: uuid.New(), Type: entity.BusinessTypeSeller, IsActive: true}

	fx.businessRepo.EXPECT().FindByID(ctx, buyer.ID).Return(buyer, nil)
	fx.businessRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)
	fx.orderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(errors.New("topic unavailable"))

	order, err := fx.service.Create(ctx, &usecase.CreateOrderInput{
		BuyerID:  buyer.ID,
		SellerID: seller.ID,
		Items:    []entity.OrderItem{{Name: "Salt", Quantity: 1, Price: decimal.NewFromInt(20)}},
	})

	require.NoError(t, err)
	assert.Nil(t, order.HotelID)
}
