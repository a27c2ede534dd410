package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// blankBuyerNameCondition matches orders whose buyer snapshot has no usable name.
const blankBuyerNameCondition = "COALESCE(TRIM(buyer->>'name'), '') = ''"

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).First(&orderM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) FindBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Order, error) {
	return repo.findOrders(ctx, "failed to find orders by seller", "seller_id = ?", sellerID)
}

func (repo *orderRepository) FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error) {
	return repo.findOrders(ctx, "failed to find orders by buyer", "buyer_id = ?", buyerID)
}

func (repo *orderRepository) findOrders(ctx context.Context, details, query string, args ...any) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Where(query, args...).
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, details)
	}

	return toOrderDomains(orderModels), nil
}

// UpdateStatus compares and swaps the status so concurrent transitions cannot both win.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Update("status", string(to))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check order existence")
	}
	if count == 0 {
		return repository.ErrOrderNotFound
	}

	return repository.ErrOrderStatusChanged
}

func (repo *orderRepository) BackfillSeller(ctx context.Context, sellerID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("seller_id IS NULL").
		Update("seller_id", sellerID)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to backfill order seller")
	}

	return result.RowsAffected, nil
}

func (repo *orderRepository) FindMissingAssociations(ctx context.Context) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Where("seller_id IS NULL OR hotel_id IS NULL").
		Order("created_at ASC").
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders missing associations")
	}

	return toOrderDomains(orderModels), nil
}

func (repo *orderRepository) SetSellerIfMissing(ctx context.Context, id, sellerID uuid.UUID) (bool, error) {
	return repo.updateIf(ctx, "id = ? AND seller_id IS NULL", id, "seller_id", sellerID)
}

func (repo *orderRepository) SetHotelIfMissing(ctx context.Context, id, hotelID uuid.UUID) (bool, error) {
	return repo.updateIf(ctx, "id = ? AND hotel_id IS NULL", id, "hotel_id", hotelID)
}

func (repo *orderRepository) FindBlankBuyerNames(ctx context.Context) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Where(blankBuyerNameCondition).
		Order("created_at ASC").
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders with blank buyer names")
	}

	return toOrderDomains(orderModels), nil
}

func (repo *orderRepository) SetBuyerNameIfBlank(ctx context.Context, id uuid.UUID, name string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND "+blankBuyerNameCondition, id).
		Update("buyer", gorm.Expr("jsonb_set(buyer, '{name}', to_jsonb(?::text))", name))
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to set buyer name")
	}

	return result.RowsAffected > 0, nil
}

func (repo *orderRepository) updateIf(ctx context.Context, condition string, id uuid.UUID, column string, value any) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where(condition, id).
		Update(column, value)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order "+column)
	}

	return result.RowsAffected > 0, nil
}

// --- Mapper Functions ---

func toOrderDomains(models []*model.OrderModel) []*entity.Order {
	return lo.Map(models, func(orderM *model.OrderModel, _ int) *entity.Order {
		return toOrderDomain(orderM)
	})
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	return &entity.Order{
		ID: data.ID,
		Buyer: entity.BuyerSnapshot{
			ID:    data.Buyer.ID,
			Name:  data.Buyer.Name,
			Email: data.Buyer.Email,
			Phone: data.Buyer.Phone,
		},
		SellerID: data.SellerID,
		HotelID:  data.HotelID,
		Items: lo.Map(data.Items, func(item model.OrderItemDoc, _ int) entity.OrderItem {
			return entity.OrderItem{
				ProductID: item.ProductID,
				Name:      item.Name,
				Quantity:  item.Quantity,
				Price:     item.Price,
				Unit:      item.Unit,
			}
		}),
		ShippingAddress: entity.ShippingAddress{
			Street:     data.ShippingAddress.Street,
			City:       data.ShippingAddress.City,
			State:      data.ShippingAddress.State,
			PostalCode: data.ShippingAddress.PostalCode,
			Country:    data.ShippingAddress.Country,
		},
		TotalAmount:   data.TotalAmount,
		Status:        entity.OrderStatus(data.Status),
		PaymentMethod: data.PaymentMethod,
		PaymentStatus: entity.PaymentStatus(data.PaymentStatus),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:      data.ID,
		BuyerID: data.Buyer.ID,
		Buyer: model.BuyerDoc{
			ID:    data.Buyer.ID,
			Name:  data.Buyer.Name,
			Email: data.Buyer.Email,
			Phone: data.Buyer.Phone,
		},
		SellerID: data.SellerID,
		HotelID:  data.HotelID,
		Items: lo.Map(data.Items, func(item entity.OrderItem, _ int) model.OrderItemDoc {
			return model.OrderItemDoc{
				ProductID: item.ProductID,
				Name:      item.Name,
				Quantity:  item.Quantity,
				Price:     item.Price,
				Unit:      item.Unit,
			}
		}),
		ShippingAddress: model.ShippingAddressCols{
			Street:     data.ShippingAddress.Street,
			City:       data.ShippingAddress.City,
			State:      data.ShippingAddress.State,
			PostalCode: data.ShippingAddress.PostalCode,
			Country:    data.ShippingAddress.Country,
		},
		TotalAmount:   data.TotalAmount,
		Status:        string(data.Status),
		PaymentMethod: data.PaymentMethod,
		PaymentStatus: string(data.PaymentStatus),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
