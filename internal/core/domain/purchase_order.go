package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseOrder settles a booking against its actual display period.
type PurchaseOrder struct {
	ID              uuid.UUID       `json:"id"`
	PONumber        string          `json:"poNumber"`
	BookingID       uuid.UUID       `json:"bookingId"`
	ActualStartDate Date            `json:"actualStartDate"`
	ActualEndDate   Date            `json:"actualEndDate"`
	ActualValue     decimal.Decimal `json:"actualValue"`
	AdjustmentNotes string          `json:"adjustmentNotes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// ProRata is the result of comparing the notional and actual periods.
type ProRata struct {
	BookingID            uuid.UUID       `json:"bookingId"`
	OriginalDays         int             `json:"originalDays"`
	ActualDays           int             `json:"actualDays"`
	RatePerDay           decimal.Decimal `json:"ratePerDay"`
	NotionalValue        decimal.Decimal `json:"notionalValue"`
	ActualValue          decimal.Decimal `json:"actualValue"`
	Adjustment           decimal.Decimal `json:"adjustment"`
	AdjustmentPercentage string          `json:"adjustmentPercentage"`
}

var hundred = decimal.NewFromInt(100)

// CalculateProRata prices the actual period at the billboard rate and
// compares it with the notional value. A zero notional value reports a
// 0.00 percentage.
func CalculateProRata(b *Booking, rate decimal.Decimal, actualStart, actualEnd Date) ProRata {
	actualDays := InclusiveDays(actualStart, actualEnd)
	actualValue := rate.Mul(decimal.NewFromInt(int64(actualDays)))
	adjustment := actualValue.Sub(b.NotionalValue)
	pct := decimal.Zero
	if !b.NotionalValue.IsZero() {
		pct = adjustment.Div(b.NotionalValue).Mul(hundred)
	}
	return ProRata{
		BookingID:            b.ID,
		OriginalDays:         InclusiveDays(b.StartDate, b.EndDate),
		ActualDays:           actualDays,
		RatePerDay:           rate,
		NotionalValue:        b.NotionalValue,
		ActualValue:          actualValue,
		Adjustment:           adjustment,
		AdjustmentPercentage: pct.StringFixed(2),
	}
}
