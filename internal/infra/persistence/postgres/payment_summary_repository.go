package postgres

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type paymentSummaryRepository struct {
	db *gorm.DB
}

// NewPaymentSummaryRepository is the constructor for paymentSummaryRepository.
func NewPaymentSummaryRepository(db *gorm.DB) repository.PaymentSummaryRepository {
	return &paymentSummaryRepository{db: db}
}

func (repo *paymentSummaryRepository) Create(ctx context.Context, summary *entity.PaymentSummary) error {
	summaryM := fromPaymentSummaryDomain(summary)

	if err := repo.db.WithContext(ctx).Create(summaryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment summary")
	}

	summary.ID = summaryM.ID
	summary.CreatedAt = summaryM.CreatedAt
	summary.UpdatedAt = summaryM.UpdatedAt

	return nil
}

// CreateIfMissing inserts the summary with ON CONFLICT (seller_id) DO NOTHING.
func (repo *paymentSummaryRepository) CreateIfMissing(ctx context.Context, summary *entity.PaymentSummary) (bool, error) {
	summaryM := fromPaymentSummaryDomain(summary)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "seller_id"}}, DoNothing: true}).
		Create(summaryM)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create payment summary")
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	summary.ID = summaryM.ID
	summary.CreatedAt = summaryM.CreatedAt
	summary.UpdatedAt = summaryM.UpdatedAt

	return true, nil
}

func (repo *paymentSummaryRepository) FindBySeller(ctx context.Context, sellerID uuid.UUID) (*entity.PaymentSummary, error) {
	return repo.findBySeller(ctx, repo.db.WithContext(ctx), sellerID)
}

func (repo *paymentSummaryRepository) FindBySellerForUpdate(ctx context.Context, sellerID uuid.UUID) (*entity.PaymentSummary, error) {
	locked := repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})

	return repo.findBySeller(ctx, locked, sellerID)
}

func (repo *paymentSummaryRepository) findBySeller(_ context.Context, db *gorm.DB, sellerID uuid.UUID) (*entity.PaymentSummary, error) {
	var summaryM model.PaymentSummaryModel
	err := db.Where("seller_id = ?", sellerID).
		Take(&summaryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentSummaryNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment summary by seller")
	}

	return toPaymentSummaryDomain(&summaryM), nil
}

// Update overwrites every mutable column of the summary.
func (repo *paymentSummaryRepository) Update(ctx context.Context, summary *entity.PaymentSummary) error {
	summaryM := fromPaymentSummaryDomain(summary)

	result := repo.db.WithContext(ctx).
		Model(&model.PaymentSummaryModel{}).
		Where("id = ?", summary.ID).
		Select("*").
		Omit("id", "seller_id", "created_at").
		Updates(summaryM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update payment summary")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPaymentSummaryNotFound
	}
	summary.UpdatedAt = summaryM.UpdatedAt

	return nil
}

// MarkEventApplied inserts the (order, status) key; a conflict means the event was
// already booked. Concurrent inserts of the same key wait on the primary key until
// the first transaction ends.
func (repo *paymentSummaryRepository) MarkEventApplied(ctx context.Context, event *entity.OrderEvent) (bool, error) {
	appliedM := &model.AppliedOrderEventModel{
		OrderID:   event.OrderID,
		Status:    string(event.Status),
		SellerID:  event.SellerID,
		AppliedAt: time.Now(),
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(appliedM)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to record applied order event")
	}

	return result.RowsAffected == 1, nil
}

// --- Mapper Functions ---

func toPaymentSummaryDomain(data *model.PaymentSummaryModel) *entity.PaymentSummary {
	return &entity.PaymentSummary{
		ID:               data.ID,
		SellerID:         data.SellerID,
		TotalEarnings:    data.TotalEarnings,
		PendingPayments:  data.PendingPayments,
		AvailableBalance: data.AvailableBalance,
		LastPayoutDate:   data.LastPayoutDate,
		LastPayoutAmount: data.LastPayoutAmount,
		Monthly: entity.MonthlyTotals{
			Period: data.MonthlyPeriod,
			PeriodTotals: entity.PeriodTotals{
				Sales:   data.MonthlySales,
				Refunds: data.MonthlyRefunds,
				Fees:    data.MonthlyFees,
				Net:     data.MonthlyNet,
			},
		},
		YearToDate: entity.YearTotals{
			Year: data.YTDYear,
			PeriodTotals: entity.PeriodTotals{
				Sales:   data.YTDSales,
				Refunds: data.YTDRefunds,
				Fees:    data.YTDFees,
				Net:     data.YTDNet,
			},
		},
		PayoutSchedule: entity.PayoutSchedule{
			Frequency:      entity.PayoutFrequency(data.PayoutFrequency),
			NextPayoutDate: data.NextPayoutDate,
			MinimumAmount:  data.MinimumPayout,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromPaymentSummaryDomain(data *entity.PaymentSummary) *model.PaymentSummaryModel {
	return &model.PaymentSummaryModel{
		ID:               data.ID,
		SellerID:         data.SellerID,
		TotalEarnings:    data.TotalEarnings,
		PendingPayments:  data.PendingPayments,
		AvailableBalance: data.AvailableBalance,
		LastPayoutDate:   data.LastPayoutDate,
		LastPayoutAmount: data.LastPayoutAmount,
		MonthlyPeriod:    data.Monthly.Period,
		MonthlySales:     data.Monthly.Sales,
		MonthlyRefunds:   data.Monthly.Refunds,
		MonthlyFees:      data.Monthly.Fees,
		MonthlyNet:       data.Monthly.Net,
		YTDYear:          data.YearToDate.Year,
		YTDSales:         data.YearToDate.Sales,
		YTDRefunds:       data.YearToDate.Refunds,
		YTDFees:          data.YearToDate.Fees,
		YTDNet:           data.YearToDate.Net,
		PayoutFrequency:  string(data.PayoutSchedule.Frequency),
		NextPayoutDate:   data.PayoutSchedule.NextPayoutDate,
		MinimumPayout:    data.PayoutSchedule.MinimumAmount,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
