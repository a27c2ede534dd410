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
	"gorm.io/gorm/clause"
)

type paymentMethodRepository struct {
	db *gorm.DB
}

// NewPaymentMethodRepository is the constructor for paymentMethodRepository.
func NewPaymentMethodRepository(db *gorm.DB) repository.PaymentMethodRepository {
	return &paymentMethodRepository{db: db}
}

// Create stores the method as non-default. Promotion goes through SetDefault.
func (repo *paymentMethodRepository) Create(ctx context.Context, method *entity.PaymentMethod) error {
	methodM := fromPaymentMethodDomain(method)
	methodM.IsDefault = false

	if err := repo.db.WithContext(ctx).Create(methodM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment method")
	}

	method.ID = methodM.ID
	method.IsDefault = false
	method.CreatedAt = methodM.CreatedAt
	method.UpdatedAt = methodM.UpdatedAt

	return nil
}

func (repo *paymentMethodRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentMethod, error) {
	var methodM model.PaymentMethodModel
	if err := repo.db.WithContext(ctx).First(&methodM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentMethodNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment method by ID")
	}

	return toPaymentMethodDomain(&methodM), nil
}

func (repo *paymentMethodRepository) FindBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.PaymentMethod, error) {
	var methodModels []*model.PaymentMethodModel
	err := repo.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("is_default DESC").
		Order("created_at ASC").
		Find(&methodModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payment methods by seller")
	}

	return lo.Map(methodModels, func(methodM *model.PaymentMethodModel, _ int) *entity.PaymentMethod {
		return toPaymentMethodDomain(methodM)
	}), nil
}

func (repo *paymentMethodRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.VerificationStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentMethodModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update payment method status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPaymentMethodNotFound
	}

	return nil
}

// SetDefault must run inside a transaction: the row locks taken here serialise
// concurrent promotions for the same seller.
func (repo *paymentMethodRepository) SetDefault(ctx context.Context, sellerID, methodID uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	var ids []uuid.UUID
	err := db.Model(&model.PaymentMethodModel{}).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("seller_id = ?", sellerID).
		Pluck("id", &ids).Error
	if err != nil {
		return errors.Wrap(err, "failed to lock seller payment methods")
	}
	if !lo.Contains(ids, methodID) {
		return repository.ErrPaymentMethodNotFound
	}

	// Demote first so the single-default index never sees two defaults.
	err = db.Model(&model.PaymentMethodModel{}).
		Where("seller_id = ? AND id <> ? AND is_default", sellerID, methodID).
		Update("is_default", false).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to demote payment methods")
	}

	err = db.Model(&model.PaymentMethodModel{}).
		Where("id = ?", methodID).
		Update("is_default", true).Error
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok && constraint == idxPaymentMethodsSingleDefault {
			return errors.Wrap(err, "concurrent default payment method change")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to promote payment method")
	}

	return nil
}

// --- Mapper Functions ---

func toPaymentMethodDomain(data *model.PaymentMethodModel) *entity.PaymentMethod {
	method := &entity.PaymentMethod{
		ID:        data.ID,
		SellerID:  data.SellerID,
		Type:      entity.PaymentMethodType(data.MethodType),
		IsDefault: data.IsDefault,
		Status:    entity.VerificationStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	if data.BankDetails != nil {
		method.Bank = &entity.BankDetails{
			AccountHolderName: data.BankDetails.AccountHolderName,
			AccountNumber:     data.BankDetails.AccountNumber,
			IFSC:              data.BankDetails.IFSC,
			BankName:          data.BankDetails.BankName,
		}
	}
	if data.UPIDetails != nil {
		method.UPI = &entity.UPIDetails{UPIID: data.UPIDetails.UPIID}
	}
	if data.WalletDetails != nil {
		method.Wallet = &entity.WalletDetails{
			Provider: data.WalletDetails.Provider,
			WalletID: data.WalletDetails.WalletID,
		}
	}

	return method
}

// fromPaymentMethodDomain persists only the detail group matching the method type.
func fromPaymentMethodDomain(data *entity.PaymentMethod) *model.PaymentMethodModel {
	methodM := &model.PaymentMethodModel{
		ID:         data.ID,
		SellerID:   data.SellerID,
		MethodType: string(data.Type),
		IsDefault:  data.IsDefault,
		Status:     string(data.Status),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}

	switch data.Type {
	case entity.PaymentMethodBank:
		if data.Bank != nil {
			methodM.BankDetails = &model.BankDetailsDoc{
				AccountHolderName: data.Bank.AccountHolderName,
				AccountNumber:     data.Bank.AccountNumber,
				IFSC:              data.Bank.IFSC,
				BankName:          data.Bank.BankName,
			}
		}
	case entity.PaymentMethodUPI:
		if data.UPI != nil {
			methodM.UPIDetails = &model.UPIDetailsDoc{UPIID: data.UPI.UPIID}
		}
	case entity.PaymentMethodWallet:
		if data.Wallet != nil {
			methodM.WalletDetails = &model.WalletDetailsDoc{
				Provider: data.Wallet.Provider,
				WalletID: data.Wallet.WalletID,
			}
		}
	}

	return methodM
}
