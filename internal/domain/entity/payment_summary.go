package entity

import (
	"time"

	"marketplace/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayoutFrequency is how often a seller is paid out.
type PayoutFrequency string

const (
	PayoutWeekly   PayoutFrequency = "weekly"
	PayoutBiweekly PayoutFrequency = "biweekly"
	PayoutMonthly  PayoutFrequency = "monthly"
)

// IsValid checks if the PayoutFrequency is a valid value.
func (f PayoutFrequency) IsValid() bool {
	switch f {
	case PayoutWeekly, PayoutBiweekly, PayoutMonthly:
		return true
	default:
		return false
	}
}

// Next returns the payout date following from.
func (f PayoutFrequency) Next(from time.Time) time.Time {
	switch f {
	case PayoutBiweekly:
		return from.AddDate(0, 0, 14)
	case PayoutMonthly:
		return from.AddDate(0, 1, 0)
	default:
		return from.AddDate(0, 0, 7)
	}
}

const monthlyPeriodLayout = "2006-01"

// Accounting errors.
var (
	ErrInvalidPayoutAmount = errors.New("payout amount must be positive")
	ErrInsufficientBalance = errors.New("payout amount exceeds available balance")
	ErrInvalidFrequency    = errors.New("payout frequency must be weekly, biweekly or monthly")
)

// PeriodTotals aggregates order money for one accounting bucket.
type PeriodTotals struct {
	Sales   decimal.Decimal `json:"sales"`
	Refunds decimal.Decimal `json:"refunds"`
	Fees    decimal.Decimal `json:"fees"`
	Net     decimal.Decimal `json:"net"`
}

// MonthlyTotals is the bucket for one calendar month, Period formatted "YYYY-MM".
type MonthlyTotals struct {
	Period string `json:"period"`
	PeriodTotals
}

// YearTotals is the year-to-date bucket.
type YearTotals struct {
	Year int `json:"year"`
	PeriodTotals
}

// PayoutSchedule controls when a seller's available balance is paid out.
type PayoutSchedule struct {
	Frequency      PayoutFrequency `json:"frequency"`
	NextPayoutDate time.Time       `json:"nextPayoutDate"`
	MinimumAmount  decimal.Decimal `json:"minimumAmount"`
}

// PaymentSummary is a seller's financial rollup.
type PaymentSummary struct {
	ID               uuid.UUID       `json:"id"`
	SellerID         uuid.UUID       `json:"sellerId"`
	TotalEarnings    decimal.Decimal `json:"totalEarnings"`
	PendingPayments  decimal.Decimal `json:"pendingPayments"`
	AvailableBalance decimal.Decimal `json:"availableBalance"`
	LastPayoutDate   *time.Time      `json:"lastPayoutDate,omitempty"`
	LastPayoutAmount decimal.Decimal `json:"lastPayoutAmount"`
	Monthly          MonthlyTotals   `json:"monthly"`
	YearToDate       YearTotals      `json:"yearToDate"`
	PayoutSchedule   PayoutSchedule  `json:"payoutSchedule"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// NewPaymentSummary returns an empty summary for a freshly onboarded seller.
func NewPaymentSummary(sellerID uuid.UUID, frequency PayoutFrequency, minimum decimal.Decimal, now time.Time) *PaymentSummary {
	return &PaymentSummary{
		SellerID:   sellerID,
		Monthly:    MonthlyTotals{Period: now.Format(monthlyPeriodLayout)},
		YearToDate: YearTotals{Year: now.Year()},
		PayoutSchedule: PayoutSchedule{
			Frequency:      frequency,
			NextPayoutDate: frequency.Next(now),
			MinimumAmount:  minimum,
		},
	}
}

// OrderEvent is the accounting view of an order lifecycle change.
type OrderEvent struct {
	OrderID    uuid.UUID       `json:"orderId"`
	SellerID   uuid.UUID       `json:"sellerId"`
	Status     OrderStatus     `json:"status"`
	Amount     decimal.Decimal `json:"amount"`
	OccurredAt time.Time       `json:"occurredAt"`
}

// AffectsBalances reports whether the event's status moves money in a summary.
func (e OrderEvent) AffectsBalances() bool {
	switch e.Status {
	case OrderPending, OrderDelivered, OrderCancelled, OrderReturned:
		return true
	default:
		return false
	}
}

// ApplyOrderEvent folds an order event into the summary. fee is the platform fee owed
// on the order amount. Buckets only roll forward; an event older than the current
// bucket updates balances but not that bucket. It reports whether the summary changed.
func (s *PaymentSummary) ApplyOrderEvent(event OrderEvent, fee decimal.Decimal) bool {
	if !event.AffectsBalances() {
		return false
	}

	s.rollBuckets(event.OccurredAt)
	at := event.OccurredAt

	amount := event.Amount
	net := amount.Sub(fee)

	switch event.Status {
	case OrderPending:
		s.PendingPayments = s.PendingPayments.Add(amount)
	case OrderDelivered:
		s.PendingPayments = floorZero(s.PendingPayments.Sub(amount))
		s.AvailableBalance = s.AvailableBalance.Add(net)
		s.TotalEarnings = s.TotalEarnings.Add(net)
		s.book(at, func(t *PeriodTotals) {
			t.Sales = t.Sales.Add(amount)
			t.Fees = t.Fees.Add(fee)
			t.Net = t.Net.Add(net)
		})
	case OrderCancelled:
		s.PendingPayments = floorZero(s.PendingPayments.Sub(amount))
	case OrderReturned:
		s.AvailableBalance = s.AvailableBalance.Sub(net)
		s.TotalEarnings = s.TotalEarnings.Sub(net)
		s.book(at, func(t *PeriodTotals) {
			t.Refunds = t.Refunds.Add(amount)
			t.Net = t.Net.Sub(net)
		})
	default:
		return false
	}

	return true
}

// RecordPayout debits a payout from the available balance and advances the schedule.
func (s *PaymentSummary) RecordPayout(amount decimal.Decimal, at time.Time) error {
	if !amount.IsPositive() {
		return ErrInvalidPayoutAmount
	}
	if amount.GreaterThan(s.AvailableBalance) {
		return ErrInsufficientBalance
	}

	s.AvailableBalance = s.AvailableBalance.Sub(amount)
	s.LastPayoutDate = &at
	s.LastPayoutAmount = amount
	s.PayoutSchedule.NextPayoutDate = s.PayoutSchedule.Frequency.Next(at)

	return nil
}

// Reschedule changes the payout frequency and minimum, recomputing the next payout date from now.
func (s *PaymentSummary) Reschedule(frequency PayoutFrequency, minimum decimal.Decimal, now time.Time) error {
	if !frequency.IsValid() {
		return ErrInvalidFrequency
	}
	if minimum.IsNegative() {
		return errors.Wrap(ErrInvalidPayoutAmount, "minimum amount cannot be negative")
	}

	s.PayoutSchedule = PayoutSchedule{
		Frequency:      frequency,
		NextPayoutDate: frequency.Next(now),
		MinimumAmount:  minimum,
	}

	return nil
}

func (s *PaymentSummary) rollBuckets(at time.Time) {
	// "YYYY-MM" sorts chronologically as a string.
	if period := at.Format(monthlyPeriodLayout); period > s.Monthly.Period {
		s.Monthly = MonthlyTotals{Period: period}
	}
	if at.Year() > s.YearToDate.Year {
		s.YearToDate = YearTotals{Year: at.Year()}
	}
}

func (s *PaymentSummary) book(at time.Time, fn func(t *PeriodTotals)) {
	if at.Format(monthlyPeriodLayout) == s.Monthly.Period {
		fn(&s.Monthly.PeriodTotals)
	}
	if at.Year() == s.YearToDate.Year {
		fn(&s.YearToDate.PeriodTotals)
	}
}

func floorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}

	return d
}
