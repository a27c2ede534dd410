package impl

import (
	"context"
	"log/slog"
	"time"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var hundred = decimal.NewFromInt(100)

type paymentSummaryService struct {
	txManager     repository.TransactionManager
	summaryRepo   repository.PaymentSummaryRepository
	feePercent    decimal.Decimal
	payoutDefault payoutDefaults
	now           func() time.Time
	logger        *slog.Logger
}

// PaymentSummaryServiceParams holds dependencies for PaymentSummaryService, injected by Fx.
type PaymentSummaryServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	SummaryRepo repository.PaymentSummaryRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewPaymentSummaryService is the constructor for paymentSummaryService.
func NewPaymentSummaryService(params PaymentSummaryServiceParams) usecase.PaymentSummaryUsecase {
	feePercent := decimal.Zero
	if params.Config != nil && params.Config.Accounting != nil {
		feePercent = decimal.NewFromFloat(params.Config.Accounting.FeePercent)
	}

	return &paymentSummaryService{
		txManager:     params.TxManager,
		summaryRepo:   params.SummaryRepo,
		feePercent:    feePercent,
		payoutDefault: newPayoutDefaults(params.Config),
		now:           time.Now,
		logger:        params.Logger,
	}
}

func (srv *paymentSummaryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *paymentSummaryService) Get(ctx context.Context, sellerID uuid.UUID) (*entity.PaymentSummary, error) {
	summary, err := srv.summaryRepo.FindBySeller(ctx, sellerID)
	if err != nil {
		return nil, mapSummaryRepoError(err)
	}

	return summary, nil
}

func (srv *paymentSummaryService) UpdatePayoutSchedule(ctx context.Context, input *usecase.UpdatePayoutScheduleInput) (*entity.PaymentSummary, error) {
	var summary *entity.PaymentSummary
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		summaryRepo := factory.PaymentSummaryRepo()

		var err error
		summary, err = summaryRepo.FindBySellerForUpdate(ctx, input.SellerID)
		if err != nil {
			return err
		}

		if err := summary.Reschedule(input.Frequency, input.MinimumAmount.Round(2), srv.now()); err != nil {
			return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
		}

		return summaryRepo.Update(ctx, summary)
	})
	if err != nil {
		return nil, mapSummaryRepoError(err)
	}

	srv.log(ctx).Info("Payout schedule updated",
		slog.Any("seller_id", input.SellerID),
		slog.String("frequency", string(summary.PayoutSchedule.Frequency)),
		slog.Time("next_payout_date", summary.PayoutSchedule.NextPayoutDate),
	)

	return summary, nil
}

// ApplyOrderEvent books an order event under a row lock. Each (order, status) pair is
// booked once; redeliveries report false. Sellers onboarded before summaries existed
// get one created on their first event.
func (srv *paymentSummaryService) ApplyOrderEvent(ctx context.Context, event *entity.OrderEvent) (bool, error) {
	if event == nil || event.SellerID == uuid.Nil || event.OrderID == uuid.Nil {
		return false, errors.Wrap(domainerrors.ErrValidationFailed, "order event needs an order and a seller")
	}
	if event.Amount.IsNegative() {
		return false, errors.Wrap(domainerrors.ErrValidationFailed, "order event amount cannot be negative")
	}
	if !event.AffectsBalances() {
		return false, nil
	}

	fee := srv.fee(event.Amount)
	duplicate := false
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		summaryRepo := factory.PaymentSummaryRepo()

		fresh, err := summaryRepo.MarkEventApplied(ctx, event)
		if err != nil {
			return err
		}
		if !fresh {
			duplicate = true
			return nil
		}

		summary, err := srv.lockSummary(ctx, summaryRepo, event)
		if err != nil {
			return err
		}

		summary.ApplyOrderEvent(*event, fee)

		return summaryRepo.Update(ctx, summary)
	})
	if err != nil {
		return false, mapSummaryRepoError(err)
	}

	if duplicate {
		srv.log(ctx).Info("Order event already booked",
			slog.Any("order_id", event.OrderID),
			slog.String("status", string(event.Status)),
		)

		return false, nil
	}

	srv.log(ctx).Debug("Order event applied",
		slog.Any("order_id", event.OrderID),
		slog.Any("seller_id", event.SellerID),
		slog.String("status", string(event.Status)),
	)

	return true, nil
}

// lockSummary returns the seller's summary under a row lock, creating an empty one
// first when the seller has none. A concurrent creator wins the insert and both
// callers then lock the same row.
func (srv *paymentSummaryService) lockSummary(ctx context.Context, summaryRepo repository.PaymentSummaryRepository, event *entity.OrderEvent) (*entity.PaymentSummary, error) {
	summary, err := summaryRepo.FindBySellerForUpdate(ctx, event.SellerID)
	if !errors.Is(err, repository.ErrPaymentSummaryNotFound) {
		return summary, err
	}

	seed := entity.NewPaymentSummary(event.SellerID, srv.payoutDefault.frequency, srv.payoutDefault.minimum, event.OccurredAt)
	if _, err := summaryRepo.CreateIfMissing(ctx, seed); err != nil {
		return nil, err
	}

	return summaryRepo.FindBySellerForUpdate(ctx, event.SellerID)
}

// fee is the platform fee on amount, rounded to cents.
func (srv *paymentSummaryService) fee(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(srv.feePercent).Div(hundred).Round(2)
}

func (srv *paymentSummaryService) RecordPayout(ctx context.Context, sellerID uuid.UUID, amount decimal.Decimal) (*entity.PaymentSummary, error) {
	var summary *entity.PaymentSummary
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		summaryRepo := factory.PaymentSummaryRepo()

		var err error
		summary, err = summaryRepo.FindBySellerForUpdate(ctx, sellerID)
		if err != nil {
			return err
		}

		if err := summary.RecordPayout(amount.Round(2), srv.now()); err != nil {
			return err
		}

		return summaryRepo.Update(ctx, summary)
	})
	if err != nil {
		return nil, mapSummaryRepoError(err)
	}

	srv.log(ctx).Info("Payout recorded",
		slog.Any("seller_id", sellerID),
		slog.String("amount", summary.LastPayoutAmount.StringFixed(2)),
		slog.String("available_balance", summary.AvailableBalance.StringFixed(2)),
	)

	return summary, nil
}

func mapSummaryRepoError(err error) error {
	switch {
	case errors.Is(err, repository.ErrPaymentSummaryNotFound):
		return errors.Wrap(domainerrors.ErrPaymentSummaryNotFound, err.Error())
	case errors.Is(err, entity.ErrInsufficientBalance):
		return errors.Wrap(domainerrors.ErrInsufficientBalance, err.Error())
	case errors.Is(err, entity.ErrInvalidPayoutAmount):
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	default:
		return err
	}
}
