package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingCreated     BookingStatus = "created"
	BookingConfirmed   BookingStatus = "confirmed"
	BookingActive      BookingStatus = "active"
	BookingCompleted   BookingStatus = "completed"
	BookingPOGenerated BookingStatus = "po_generated"
	BookingInvoiced    BookingStatus = "invoiced"

	// BookingCancelled is only reachable through an explicit cancellation.
	// Cancelled bookings no longer hold their dates.
	BookingCancelled BookingStatus = "cancelled"
)

// LifecycleStatuses lists the states a caller may set directly, in order.
var LifecycleStatuses = []BookingStatus{
	BookingCreated,
	BookingConfirmed,
	BookingActive,
	BookingCompleted,
	BookingPOGenerated,
	BookingInvoiced,
}

// ParseLifecycleStatus accepts only the six lifecycle states.
func ParseLifecycleStatus(s string) (BookingStatus, error) {
	for _, st := range LifecycleStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", Validation("invalid booking status %q", s)
}

// IsFinalized reports whether the booking can no longer be edited.
func (s BookingStatus) IsFinalized() bool {
	switch s {
	case BookingCompleted, BookingPOGenerated, BookingInvoiced, BookingCancelled:
		return true
	}
	return false
}

// IsOpen reports whether the booking has not started or is still running.
// Short-close and cancellation are only possible from an open state.
func (s BookingStatus) IsOpen() bool {
	switch s {
	case BookingCreated, BookingConfirmed, BookingActive:
		return true
	}
	return false
}

// CanRaisePurchaseOrder reports whether a purchase order may be generated.
func (s BookingStatus) CanRaisePurchaseOrder() bool {
	switch s {
	case BookingCompleted, BookingConfirmed, BookingActive:
		return true
	}
	return false
}

// Booking reserves a billboard (or one slot of a digital billboard) for an
// inclusive date range.
type Booking struct {
	ID            uuid.UUID       `json:"id"`
	ReferenceCode string          `json:"referenceCode"`
	CustomerID    uuid.UUID       `json:"customerId"`
	BillboardID   uuid.UUID       `json:"billboardId"`
	CampaignID    *uuid.UUID      `json:"campaignId,omitempty"`
	SlotNumber    *int            `json:"slotNumber,omitempty"`
	StartDate     Date            `json:"startDate"`
	EndDate       Date            `json:"endDate"`
	ActualEndDate *Date           `json:"actualEndDate,omitempty"`
	NotionalValue decimal.Decimal `json:"notionalValue"`
	Status        BookingStatus   `json:"status"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// EffectiveEndDate is the last display day: the short-close date when set,
// otherwise the scheduled end date.
func (b *Booking) EffectiveEndDate() Date {
	if b.ActualEndDate != nil {
		return *b.ActualEndDate
	}
	return b.EndDate
}

// AppendNote adds a line to the booking notes.
func (b *Booking) AppendNote(note string) {
	if strings.TrimSpace(b.Notes) == "" {
		b.Notes = note
		return
	}
	b.Notes = b.Notes + "\n" + note
}

// ShortClose ends the display period early on actualEnd. The scheduled end
// date is kept for the record.
func (b *Booking) ShortClose(actualEnd Date, reason string) error {
	if !b.Status.IsOpen() {
		return InvalidState("booking %s cannot be short-closed in status %s", b.ReferenceCode, b.Status)
	}
	if !actualEnd.Before(b.EndDate) {
		return InvalidState("actual end date %s must be strictly before end date %s", actualEnd, b.EndDate)
	}
	if actualEnd.Before(b.StartDate) {
		return InvalidState("actual end date %s is before start date %s", actualEnd, b.StartDate)
	}
	b.ActualEndDate = &actualEnd
	b.Status = BookingCompleted
	b.AppendNote(fmt.Sprintf("Short-closed on %s: %s", actualEnd, reason))
	return nil
}

// Cancel releases the booking's dates.
func (b *Booking) Cancel(reason string) error {
	if !b.Status.IsOpen() {
		return InvalidState("booking %s cannot be cancelled in status %s", b.ReferenceCode, b.Status)
	}
	b.Status = BookingCancelled
	if reason != "" {
		b.AppendNote("Cancelled: " + reason)
	}
	return nil
}

// ReferenceCodes collects the reference codes of bookings.
func ReferenceCodes(bookings []Booking) []string {
	codes := make([]string, 0, len(bookings))
	for _, b := range bookings {
		codes = append(codes, b.ReferenceCode)
	}
	return codes
}

// ValidateRange checks start <= end.
func ValidateRange(start, end Date) error {
	if start.IsZero() || end.IsZero() {
		return Validation("start date and end date are required")
	}
	if start.After(end) {
		return InvalidState("start date %s is after end date %s", start, end)
	}
	return nil
}
