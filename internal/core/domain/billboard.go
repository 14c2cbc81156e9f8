package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BillboardType string

const (
	BillboardStatic  BillboardType = "static"
	BillboardDigital BillboardType = "digital"
)

type BillboardStatus string

const (
	BillboardActive      BillboardStatus = "active"
	BillboardInactive    BillboardStatus = "inactive"
	BillboardMaintenance BillboardStatus = "maintenance"
)

// MaxSlotCount bounds the display loop of a digital billboard.
const MaxSlotCount = 20

// Billboard is a physical advertising face. Static billboards are booked as
// a whole; digital billboards are divided into numbered slots 1..SlotCount.
type Billboard struct {
	ID         uuid.UUID       `json:"id"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Location   string          `json:"location"`
	Type       BillboardType   `json:"type"`
	SlotCount  int             `json:"slotCount,omitempty"`
	RatePerDay decimal.Decimal `json:"ratePerDay"`
	Status     BillboardStatus `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

func (b *Billboard) IsDigital() bool {
	return b.Type == BillboardDigital
}

// Validate checks the type/slot invariant and the rate.
func (b *Billboard) Validate() error {
	if b.Code == "" || b.Name == "" {
		return Validation("billboard code and name are required")
	}
	switch b.Type {
	case BillboardDigital:
		if b.SlotCount < 1 || b.SlotCount > MaxSlotCount {
			return Validation("digital billboard slot count must be between 1 and %d", MaxSlotCount)
		}
	case BillboardStatic:
		if b.SlotCount != 0 {
			return Validation("static billboard cannot have slots")
		}
	default:
		return Validation("unknown billboard type %q", b.Type)
	}
	switch b.Status {
	case BillboardActive, BillboardInactive, BillboardMaintenance:
	default:
		return Validation("unknown billboard status %q", b.Status)
	}
	if b.RatePerDay.IsNegative() {
		return Validation("rate per day cannot be negative")
	}
	return nil
}

// ValidateSlot checks that slot is meaningful for this billboard. A nil slot
// is always accepted.
func (b *Billboard) ValidateSlot(slot *int) error {
	if slot == nil {
		return nil
	}
	if !b.IsDigital() {
		return Validation("billboard %s is static and has no slots", b.Code)
	}
	if *slot < 1 || *slot > b.SlotCount {
		return Validation("slot %d is out of range 1..%d for billboard %s", *slot, b.SlotCount, b.Code)
	}
	return nil
}

// ValueFor prices the inclusive range [start, end] at the billboard rate.
func (b *Billboard) ValueFor(start, end Date) decimal.Decimal {
	return b.RatePerDay.Mul(decimal.NewFromInt(int64(InclusiveDays(start, end))))
}
