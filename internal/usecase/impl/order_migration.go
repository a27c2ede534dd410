package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/fx"
)

type orderMigrationService struct {
	orderRepo    repository.OrderRepository
	businessRepo repository.BusinessRepository
	productRepo  repository.ProductRepository
	pickName     func(names []string) string
	logger       *slog.Logger
}

// OrderMigrationServiceParams holds dependencies for OrderMigrationService, injected by Fx.
type OrderMigrationServiceParams struct {
	fx.In

	OrderRepo    repository.OrderRepository
	BusinessRepo repository.BusinessRepository
	ProductRepo  repository.ProductRepository
	Logger       *slog.Logger
}

// NewOrderMigrationService is the constructor for orderMigrationService.
func NewOrderMigrationService(params OrderMigrationServiceParams) usecase.OrderMigrationUsecase {
	return &orderMigrationService{
		orderRepo:    params.OrderRepo,
		businessRepo: params.BusinessRepo,
		productRepo:  params.ProductRepo,
		pickName:     lo.Sample[string],
		logger:       params.Logger,
	}
}

func (srv *orderMigrationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BackfillSellerField assigns defaultSellerID to every order without a seller.
func (srv *orderMigrationService) BackfillSellerField(ctx context.Context, defaultSellerID uuid.UUID) (*usecase.MigrationReport, error) {
	seller, err := srv.businessRepo.FindByID(ctx, defaultSellerID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSellerNotFound, err.Error())
		}

		return nil, errors.Wrap(err, "failed to load default seller")
	}
	if !seller.IsSeller() {
		return nil, errors.Wrap(domainerrors.ErrSellerNotFound, "default business is not a seller")
	}

	modified, err := srv.orderRepo.BackfillSeller(ctx, defaultSellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to backfill order sellers")
	}

	srv.log(ctx).Info("Backfilled order seller field",
		slog.Any("seller_id", defaultSellerID),
		slog.Int64("modified", modified),
	)

	return &usecase.MigrationReport{Modified: modified}, nil
}

// MigrateLegacyAssociations derives sellerId from the first item whose product still
// exists and hotelId from the first hotel whose street appears in the shipping address.
// Orders that match nothing are skipped.
func (srv *orderMigrationService) MigrateLegacyAssociations(ctx context.Context) (*usecase.MigrationReport, error) {
	orders, err := srv.orderRepo.FindMissingAssociations(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders missing associations")
	}

	hotels, err := srv.businessRepo.FindHotelsByCreation(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list hotels")
	}

	products, err := srv.productRepo.FindByIDs(ctx, lo.FlatMap(orders, func(order *entity.Order, _ int) []uuid.UUID {
		return order.ProductIDs()
	}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load ordered products")
	}
	productSellers := lo.SliceToMap(products, func(product *entity.Product) (uuid.UUID, uuid.UUID) {
		return product.ID, product.SellerID
	})

	report := &usecase.MigrationReport{Scanned: len(orders)}
	for _, order := range orders {
		changed := false

		if !order.HasSeller() {
			ok, err := srv.migrateSeller(ctx, order, productSellers)
			if err != nil {
				return report, err
			}
			changed = changed || ok
		}

		if order.HotelID == nil {
			ok, err := srv.migrateHotel(ctx, order, hotels)
			if err != nil {
				return report, err
			}
			changed = changed || ok
		}

		if changed {
			report.Modified++
		} else {
			report.Skipped++
		}
	}

	srv.log(ctx).Info("Migrated legacy order associations",
		slog.Int("scanned", report.Scanned),
		slog.Int64("modified", report.Modified),
		slog.Int("skipped", report.Skipped),
	)

	return report, nil
}

func (srv *orderMigrationService) migrateSeller(ctx context.Context, order *entity.Order, productSellers map[uuid.UUID]uuid.UUID) (bool, error) {
	productID, found := lo.Find(order.ProductIDs(), func(productID uuid.UUID) bool {
		_, ok := productSellers[productID]
		return ok
	})
	if !found {
		srv.log(ctx).Warn("No existing product to derive seller from", slog.Any("order_id", order.ID))

		return false, nil
	}

	ok, err := srv.orderRepo.SetSellerIfMissing(ctx, order.ID, productSellers[productID])
	if err != nil {
		return false, errors.Wrapf(err, "failed to set seller on order %s", order.ID)
	}

	return ok, nil
}

func (srv *orderMigrationService) migrateHotel(ctx context.Context, order *entity.Order, hotels []*entity.Business) (bool, error) {
	hotel, found := matchHotel(order.ShippingAddress, hotels)
	if !found {
		srv.log(ctx).Warn("No hotel matches shipping address", slog.Any("order_id", order.ID))

		return false, nil
	}

	ok, err := srv.orderRepo.SetHotelIfMissing(ctx, order.ID, hotel.ID)
	if err != nil {
		return false, errors.Wrapf(err, "failed to set hotel on order %s", order.ID)
	}

	return ok, nil
}

// matchHotel returns the first hotel whose street is a case-insensitive substring of the
// formatted shipping address. Hotels without a street never match.
func matchHotel(address entity.ShippingAddress, hotels []*entity.Business) (*entity.Business, bool) {
	shipping := strings.ToLower(address.String())
	if shipping == "" {
		return nil, false
	}

	return lo.Find(hotels, func(hotel *entity.Business) bool {
		street := strings.ToLower(strings.TrimSpace(hotel.Address.Street))
		return street != "" && strings.Contains(shipping, street)
	})
}

// BackfillBuyerNames replaces blank buyer names with a random candidate.
func (srv *orderMigrationService) BackfillBuyerNames(ctx context.Context, candidates []string) (*usecase.MigrationReport, error) {
	names := lo.Uniq(lo.Compact(lo.Map(candidates, func(name string, _ int) string {
		return strings.TrimSpace(name)
	})))
	if len(names) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "at least one candidate name is required")
	}

	orders, err := srv.orderRepo.FindBlankBuyerNames(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders with blank buyer names")
	}

	report := &usecase.MigrationReport{Scanned: len(orders)}
	for _, order := range orders {
		ok, err := srv.orderRepo.SetBuyerNameIfBlank(ctx, order.ID, srv.pickName(names))
		if err != nil {
			return report, errors.Wrapf(err, "failed to set buyer name on order %s", order.ID)
		}

		if ok {
			report.Modified++
		} else {
			report.Skipped++
		}
	}

	srv.log(ctx).Info("Backfilled buyer names",
		slog.Int("scanned", report.Scanned),
		slog.Int64("modified", report.Modified),
	)

	return report, nil
}
