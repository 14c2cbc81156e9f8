package domain

import (
	"time"

	"github.com/google/uuid"
)

type BookingEventType string

const (
	BookingEventCreated       BookingEventType = "booking.created"
	BookingEventUpdated       BookingEventType = "booking.updated"
	BookingEventStatusChanged BookingEventType = "booking.status_changed"
	BookingEventDeleted       BookingEventType = "booking.deleted"
)

// BookingEvent is published after a booking mutation is committed.
type BookingEvent struct {
	Type          BookingEventType `json:"type"`
	BookingID     uuid.UUID        `json:"bookingId"`
	ReferenceCode string           `json:"referenceCode"`
	BillboardID   uuid.UUID        `json:"billboardId"`
	Status        BookingStatus    `json:"status"`
	OccurredAt    time.Time        `json:"occurredAt"`
}

// NewBookingEvent snapshots b for publication.
func NewBookingEvent(t BookingEventType, b *Booking) BookingEvent {
	return BookingEvent{
		Type:          t,
		BookingID:     b.ID,
		ReferenceCode: b.ReferenceCode,
		BillboardID:   b.BillboardID,
		Status:        b.Status,
		OccurredAt:    time.Now().UTC(),
	}
}
