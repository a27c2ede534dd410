package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderMigrationFixtures holds all test dependencies for order migration tests.
type orderMigrationFixtures struct {
	service      *orderMigrationService
	orderRepo    *mockRepo.MockOrderRepository
	businessRepo *mockRepo.MockBusinessRepository
	productRepo  *mockRepo.MockProductRepository
}

func createTestOrderMigrationService(t *testing.T) orderMigrationFixtures {
	fixtures := orderMigrationFixtures{
		orderRepo:    mockRepo.NewMockOrderRepository(t),
		businessRepo: mockRepo.NewMockBusinessRepository(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
	}

	fixtures.service = NewOrderMigrationService(OrderMigrationServiceParams{
		OrderRepo:    fixtures.orderRepo,
		BusinessRepo: fixtures.businessRepo,
		ProductRepo:  fixtures.productRepo,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*orderMigrationService)

	return fixtures
}

func TestOrderMigration_BackfillSellerField(t *testing.T) {
	fx := createTestOrderMigrationService(t)

	ctx := context.Background()
	sellerID := uuid.New()

	fx.businessRepo.EXPECT().FindByID(ctx, sellerID).Return(&entity.Business{ID: sellerID, Type: entity.BusinessTypeSeller}, nil)
	fx.orderRepo.EXPECT().BackfillSeller(ctx, sellerID).Return(int64(7), nil)

	report, err := fx.service.BackfillSellerField(ctx, sellerID)

	require.NoError(t, err)
	assert.Equal(t, int64(7), report.Modified)
}

func TestOrderMigration_BackfillSellerField_UnknownSeller(t *testing.T) {
	fx := createTestOrderMigrationService(t)

	ctx := context.Background()
	sellerID := uuid.New()

	fx.businessRepo.EXPECT().FindByID(ctx, sellerID).Return(nil, repository.ErrBusinessNotFound)

	_, err := fx.service.BackfillSellerField(ctx, sellerID)

	assert.True(t, errors.Is(err, domainerrors.ErrSellerNotFound))
}

func TestOrderMigration_MigrateLegacyAssociations(t *testing.T) {
	fx := createTestOrderMigrationService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	liveProduct := uuid.New()
	deletedProduct := uuid.New()

	olderHotel := &entity.Business{ID: uuid.New(), Type: entity.BusinessTypeHotel, Address: entity.BusinessAddress{Street: "12 MG Road"}}
	newerHotel := &entity.Business{ID: uuid.New(), Type: entity.BusinessTypeHotel, Address: entity.BusinessAddress{Street: "MG Road"}}
	streetless := &entity.Business{ID: uuid.New(), Type: entity.BusinessTypeHotel}

	matched := &entity.Order{
		ID:              uuid.New(),
		Items:           []entity.OrderItem{{ProductID: &deletedProduct}, {ProductID: &liveProduct}},
		ShippingAddress: entity.ShippingAddress{Street: "Gate 2, 12 mg road", City: "Bengaluru"},
	}
	unmatched := &entity.Order{
		ID:              uuid.New(),
		Items:           []entity.OrderItem{{ProductID: &deletedProduct}, {Name: "free text"}},
		ShippingAddress: entity.ShippingAddress{Street: "Lake View", City: "Udaipur"},
	}

	fx.orderRepo.EXPECT().FindMissingAssociations(ctx).Return([]*entity.Order{matched, unmatched}, nil)
	fx.businessRepo.EXPECT().FindHotelsByCreation(ctx).Return([]*entity.Business{streetless, olderHotel, newerHotel}, nil)
	fx.productRepo.EXPECT().FindByIDs(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return([]*entity.Product{{ID: liveProduct, SellerID: sellerID}}, nil)
	fx.orderRepo.EXPECT().SetSellerIfMissing(ctx, matched.ID, sellerID).Return(true, nil)
	fx.orderRepo.EXPECT().SetHotelIfMissing(ctx, matched.ID, olderHotel.ID).Return(true, nil)

	report, err := fx.service.MigrateLegacyAssociations(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, report.Scanned)
	assert.Equal(t, int64(1), report.Modified)
	assert.Equal(t, 1, report.Skipped)
}

func TestOrderMigration_MigrateLegacyAssociations_StoreFailureAborts(t *testing.T) {
	fx := createTestOrderMigrationService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	productID := uuid.New()
	hotelID := uuid.New()
	order := &entity.Order{ID: uuid.New(), HotelID: &hotelID, Items: []entity.OrderItem{{ProductID: &productID}}}

	fx.orderRepo.EXPECT().FindMissingAssociations(ctx).Return([]*entity.Order{order}, nil)
	fx.businessRepo.EXPECT().FindHotelsByCreation(ctx).Return(nil, nil)
	fx.productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{productID}).
		Return([]*entity.Product{{ID: productID, SellerID: sellerID}}, nil)
	fx.orderRepo.EXPECT().SetSellerIfMissing(ctx, order.ID, sellerID).Return(false, errors.New("connection reset"))

	_, err := fx.service.MigrateLegacyAssociations(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestMatchHotel(t *testing.T) {
	hotels := []*entity.Business{
		{ID: uuid.New(), Address: entity.BusinessAddress{Street: "  "}},
		{ID: uuid.New(), Address: entity.BusinessAddress{Street: "Beach Road"}},
	}

	hotel, ok := matchHotel(entity.ShippingAddress{Street: "4 BEACH ROAD", City: "Goa"}, hotels)
	require.True(t, ok)
	assert.Equal(t, hotels[1], hotel)

	_, ok = matchHotel(entity.ShippingAddress{}, hotels)
	assert.False(t, ok)
}

func TestOrderMigration_BackfillBuyerNames(t *testing.T) {
	fx := createTestOrderMigrationService(t)
	fx.service.pickName = func(names []string) string { return names[len(names)-1] }

	ctx := context.Background()
	first := &entity.Order{ID: uuid.New()}
	second := &entity.Order{ID: uuid.New()}

	fx.orderRepo.EXPECT().FindBlankBuyerNames(ctx).Return([]*entity.Order{first, second}, nil)
	fx.orderRepo.EXPECT().SetBuyerNameIfBlank(ctx, first.ID, "Ravi").Return(true, nil)
	fx.orderRepo.EXPECT().SetBuyerNameIfBlank(ctx, second.ID, "Ravi").Return(false, nil)

	report, err := fx.service.BackfillBuyerNames(ctx, []string{"Meera", " ", "Ravi", "Ravi "})

	require.NoError(t, err)
	assert.Equal(t, 2, report.Scanned)
	assert.Equal(t, int64(1), report.Modified)
	assert.Equal(t, 1, report.Skipped)
}

func TestOrderMigration_BackfillBuyerNames_EmptyPool(t *testing.T) {
	fx := createTestOrderMigrationService(t)

	_, err := fx.service.BackfillBuyerNames(context.Background(), []string{"", "  "})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
