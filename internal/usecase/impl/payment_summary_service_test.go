package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// paymentSummaryServiceFixtures holds all test dependencies for payment summary service tests.
type paymentSummaryServiceFixtures struct {
	service     *paymentSummaryService
	txManager   *mockRepo.MockTransactionManager
	summaryRepo *mockRepo.MockPaymentSummaryRepository
	now         time.Time
}

func createTestPaymentSummaryService(t *testing.T) paymentSummaryServiceFixtures {
	now := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)
	txManager := mockRepo.NewMockTransactionManager(t)
	summaryRepo := mockRepo.NewMockPaymentSummaryRepository(t)

	service := NewPaymentSummaryService(PaymentSummaryServiceParams{
		TxManager:   txManager,
		SummaryRepo: summaryRepo,
		Config:      &config.Config{Accounting: &config.AccountingConfig{FeePercent: 2.5, DefaultPayoutFrequency: "weekly"}},
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*paymentSummaryService)
	service.now = func() time.Time { return now }

	return paymentSummaryServiceFixtures{
		service:     service,
		txManager:   txManager,
		summaryRepo: summaryRepo,
		now:         now,
	}
}

// expectSummaryTx expects one transaction whose summary repository is prepared by setup.
func expectSummaryTx(t *testing.T, fx paymentSummaryServiceFixtures, setup func(summaryRepo *mockRepo.MockPaymentSummaryRepository)) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSummaryRepo := mockRepo.NewMockPaymentSummaryRepository(t)

			mockFactory.EXPECT().PaymentSummaryRepo().Return(mockSummaryRepo)
			setup(mockSummaryRepo)

			return fn(mockFactory)
		})
}

func TestPaymentSummaryService_ApplyOrderEvent_Delivered(t *testing.T) {
	fx := createTestPaymentSummaryService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	summary := entity.NewPaymentSummary(sellerID, entity.PayoutWeekly, decimal.Zero, fx.now)
	summary.PendingPayments = decimal.NewFromInt(1000)

	event := &entity.OrderEvent{
		OrderID:    uuid.New(),
		SellerID:   sellerID,
		Status:     entity.OrderDelivered,
		Amount:     decimal.RequireFromString("399.99"),
		OccurredAt: fx.now,
	}

	expectSummaryTx(t, fx, func(summaryRepo *mockRepo.MockPaymentSummaryRepository) {
		summaryRepo.EXPECT().MarkEventApplied(ctx, event).Return(true, nil)
		summaryRepo.EXPECT().FindBySellerForUpdate(ctx, sellerID).Return(summary, nil)
		summaryRepo.EXPECT().Update(ctx, summary).Return(nil)
	})

	changed, err := fx.service.ApplyOrderEvent(ctx, event)

	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "600.01", summary.PendingPayments.StringFixed(2))
	// 2.5% of 399.99 is 9.99975, booked as 10.00.
	assert.Equal(t, "389.99", summary.AvailableBalance.StringFixed(2))
	assert.Equal(t, "10.00", summary.Monthly.Fees.StringFixed(2))
	assert.Equal(t, "399.99", summary.YearToDate.Sales.StringFixed(2))
}

func TestPaymentSummaryService_ApplyOrderEvent_CreatesMissingSummary(t *testing.T) {
	fx := createTestPaymentSummaryService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	event := &entity.OrderEvent{
		OrderID:    uuid.New(),
		SellerID:   sellerID,
		Status:     entity.OrderPending,
		Amount:     decimal.NewFromInt(250),
		OccurredAt: fx.now,
	}
	var created *entity.PaymentSummary

	expectSummaryTx(t, fx, func(summaryRepo *mockRepo.MockPaymentSummaryRepository) {
		summaryRepo.EXPECT().MarkEventApplied(ctx, event).Return(true, nil)
		summaryRepo.EXPECT().FindBySellerForUpdate(ctx, sellerID).Return(nil, repository.ErrPaymentSummaryNotFound).Once()
		summaryRepo.EXPECT().CreateIfMissing(ctx, mock.AnythingOfType("*entity.PaymentSummary")).
			Run(func(_ context.Context, summary *entity.PaymentSummary) { created = summary }).
			Return(true, nil)
		summaryRepo.EXPECT().FindBySellerForUpdate(ctx, sellerID).
			RunAndReturn(func(context.Context, uuid.UUID) (*entity.PaymentSummary, error) { return created, nil }).
			Once()
		summaryRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.PaymentSummary")).Return(nil)
	})

	changed, err := fx.service.ApplyOrderEvent(ctx, event)

	require.NoError(t, err)
	assert.True(t, changed)
	require.NotNil(t, created)
	assert.Equal(t, sellerID, created.SellerID)
	assert.Equal(t, "250.00", created.PendingPayments.StringFixed(2))
	assert.Equal(t, "2025-03", created.Monthly.Period)
}

func TestPaymentSummaryService_ApplyOrderEvent_ConcurrentFirstEvent(t *testing.T) {
	fx := createTestPaymentSummaryService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	// Created by another worker between our lookup and our insert.
	existing := entity.NewPaymentSummary(sellerID, entity.PayoutWeekly, decimal.Zero, fx.now)
	existing.ID = uuid.New()
	existing.PendingPayments = decimal.NewFromInt(100)
	event := &entity.OrderEvent{
		OrderID:    uuid.New(),
		SellerID:   sellerID,
		Status:     entity.OrderPending,
		Amount:     decimal.NewFromInt(50),
		OccurredAt: fx.now,
	}

	expectSummaryTx(t, fx, func(summaryRepo *mockRepo.MockPaymentSummaryRepository) {
		summaryRepo.EXPECT().MarkEventApplied(ctx, event).Return(true, nil)
		summaryRepo.EXPECT().FindBySellerForUpdate(ctx, sellerID).Return(nil, repository.ErrPaymentSummaryNotFound).Once()
		summaryRepo.EXPECT().CreateIfMissing(ctx, mock.AnythingOfType("*entity.PaymentSummary")).Return(false, nil)
		summaryRepo.EXPECT().FindBySellerForUpdate(ctx, sellerID).Return(existing, nil).Once()
		summaryRepo.EXPECT().Update(ctx, existing).Return(nil)
	})

	changed, err := fx.service.ApplyOrderEvent(ctx, event)

	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "150.00", existing.PendingPayments.StringFixed(2))
}

func TestPaymentSummaryService_ApplyOrderEvent_Redelivered(t *testing.T) {
	fx := createTestPaymentSummaryService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	summary := entity.NewPaymentSummary(sellerID, entity.PayoutWeekly, decimal.Zero, fx.now)
	summary.PendingPayments = decimal.NewFromInt(100)
	event := &entity.OrderEvent{
		OrderID:    uuid.New(),
		SellerID:   sellerID,
		Status:     entity.OrderDelivered,
		Amount:     decimal.NewFromInt(100),
		OccurredAt: fx.now,
	}

	booked := map[entity.OrderStatus]bool{}
	markApplied := func(_ context.Context, e *entity.OrderEvent) (bool, error) {
		if booked[e.Status] {
			return false, nil
		}
		booked[e.Status] = true

		return true, nil
	}

	expectSummaryTx(t, fx, func(summaryRepo *mockRepo.MockPaymentSummaryRepository) {
		summaryRepo.EXPECT().MarkEventApplied(ctx, event).RunAndReturn(markApplied)
		summaryRepo.EXPECT().FindBySellerForUpdate(ctx, sellerID).Return(summary, nil).Maybe()
		summaryRepo.EXPECT().Update(ctx, summary).Return(nil).Maybe()
	})

	first, err := fx.service.ApplyOrderEvent(ctx, event)
	require.NoError(t, err)
	second, err := fx.service.ApplyOrderEvent(ctx, event)
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
	// 2.5% fee on 100 is 2.50, booked once.
	assert.Equal(t, "97.50", summary.AvailableBalance.StringFixed(2))
	assert.Equal(t, "97.50", summary.TotalEarnings.StringFixed(2))
	assert.Equal(t, "100.00", summary.Monthly.Sales.StringFixed(2))
	assert.Equal(t, "0.00", summary.PendingPayments.StringFixed(2))
}

func TestPaymentSummaryService_ApplyOrderEvent_IgnoredStatus(t *testing.T) {
	fx := createTestPaymentSummaryService(t)

	changed, err := fx.service.ApplyOrderEvent(context.Background(), &entity.OrderEvent{
		OrderID:    uuid.New(),
		SellerID:   uuid.New(),
		Status:     entity.OrderShipped,
		Amount:     decimal.NewFromInt(10),
		OccurredAt: fx.now,
	})

	require.NoError(t, err)
	assert.False(t, changed)
}

func TestPaymentSummaryService_ApplyOrderEvent_MissingSeller(t *testing.T) {
	fx := createTestPaymentSummaryService(t)

	_, err := fx.service.ApplyOrderEvent(context.Background(), &entity.OrderEvent{Status: entity.OrderPending})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPaymentSummaryService_UpdatePayoutSchedule(t *testing.T) {
	fx := createTestPaymentSummaryService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	summary := entity.NewPaymentSummary(sellerID, entity.PayoutWeekly, decimal.Zero, fx.now)

	expectSummaryTx(t, fx, func(summaryRepo *mockRepo.MockPaymentSummaryRepository) {
		summaryRepo.EXPECT().FindBySellerForUpdate(ctx, sellerID).Return(summary, nil)
		summaryRepo.EXPECT().Update(ctx, summary).Return(nil)
	})

	updated, err := fx.service.UpdatePayoutSchedule(ctx, &usecase.UpdatePayoutScheduleInput{
		SellerID:      sellerID,
		Frequency:     entity.PayoutMonthly,
		MinimumAmount: decimal.RequireFromString("500.005"),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PayoutMonthly, updated.PayoutSchedule.Frequency)
	assert.Equal(t, fx.now.AddDate(0, 1, 0), updated.PayoutSchedule.NextPayoutDate)
	assert.Equal(t, "500.01", updated.PayoutSchedule.MinimumAmount.StringFixed(2))
}

func TestPaymentSummaryService_UpdatePayoutSchedule_InvalidFrequency(t *testing.T) {
	fx := createTestPaymentSummaryService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	summary := entity.NewPaymentSummary(sellerID, entity.PayoutWeekly, decimal.Zero, fx.now)

	expectSummaryTx(t, fx, func(summaryRepo *mockRepo.MockPaymentSummaryRepository) {
		summaryRepo.EXPECT().FindBySellerForUpdate(ctx, sellerID).Return(summary, nil)
	})

	_, err := fx.service.UpdatePayoutSchedule(ctx, &usecase.UpdatePayoutScheduleInput{SellerID: sellerID, Frequency: "daily"})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPaymentSummaryService_RecordPayout(t *testing.T) {
	fx := createTestPaymentSummaryService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	summary := entity.NewPaymentSummary(sellerID, entity.PayoutBiweekly, decimal.Zero, fx.now)
	summary.AvailableBalance = decimal.NewFromInt(300)

	expectSummaryTx(t, fx, func(summaryRepo *mockRepo.MockPaymentSummaryRepository) {
		summaryRepo.EXPECT().FindBySellerForUpdate(ctx, sellerID).Return(summary, nil)
		summaryRepo.EXPECT().Update(ctx, summary).Return(nil)
	})

	updated, err := fx.service.RecordPayout(ctx, sellerID, decimal.NewFromInt(120))

	require.NoError(t, err)
	assert.Equal(t, "180.00", updated.AvailableBalance.StringFixed(2))
	assert.Equal(t, fx.now, *updated.LastPayoutDate)
	assert.Equal(t, fx.now.AddDate(0, 0, 14), updated.PayoutSchedule.NextPayoutDate)
}

func TestPaymentSummaryService_RecordPayout_Errors(t *testing.T) {
	tests := []struct {
		name    string
		amount  decimal.Decimal
		wantErr error
	}{
		{name: "exceeds balance", amount: decimal.NewFromInt(301), wantErr: domainerrors.ErrInsufficientBalance},
		{name: "zero amount", amount: decimal.Zero, wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPaymentSummaryService(t)
			sellerID := uuid.New()
			summary := entity.NewPaymentSummary(sellerID, entity.PayoutWeekly, decimal.Zero, fx.now)
			summary.AvailableBalance = decimal.NewFromInt(300)

			expectSummaryTx(t, fx, func(summaryRepo *mockRepo.MockPaymentSummaryRepository) {
				summaryRepo.EXPECT().FindBySellerForUpdate(mock.Anything, sellerID).Return(summary, nil)
			})

			_, err := fx.service.RecordPayout(context.Background(), sellerID, tt.amount)

			assert.True(t, errors.Is(err, tt.wantErr))
			assert.Equal(t, "300.00", summary.AvailableBalance.StringFixed(2))
		})
	}
}

func TestPaymentSummaryService_Get_NotFound(t *testing.T) {
	fx := createTestPaymentSummaryService(t)

	sellerID := uuid.New()
	fx.summaryRepo.EXPECT().FindBySeller(mock.Anything, sellerID).Return(nil, repository.ErrPaymentSummaryNotFound)

	_, err := fx.service.Get(context.Background(), sellerID)

	assert.True(t, errors.Is(err, domainerrors.ErrPaymentSummaryNotFound))
}
