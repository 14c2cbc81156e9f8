package port

import (
	"context"

	"github.com/google/uuid"

	"billboard-ops/internal/core/domain"
)

// Transactor runs fn inside a single database transaction. Repositories
// called with the ctx passed to fn join that transaction. The transaction
// commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// BillboardRepository is the outbound port for billboard inventory. Getters
// return nil without error when the row does not exist.
type BillboardRepository interface {
	Create(ctx context.Context, b *domain.Billboard) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Billboard, error)
	// GetMany resolves ids in one query. Unknown ids are simply absent from
	// the result.
	GetMany(ctx context.Context, ids []uuid.UUID) ([]domain.Billboard, error)
	// Lock takes row locks on the billboards until the surrounding
	// transaction ends. Rows are locked in ascending id order.
	Lock(ctx context.Context, ids []uuid.UUID) error
	List(ctx context.Context, status *domain.BillboardStatus) ([]domain.Billboard, error)
}

// CustomerRepository persists customers.
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
}

// OverlapQuery selects the non-cancelled bookings of a billboard whose
// inclusive range overlaps [StartDate, EndDate].
type OverlapQuery struct {
	BillboardID      uuid.UUID
	StartDate        domain.Date
	EndDate          domain.Date
	ExcludeBookingID *uuid.UUID
}

// BookingFilter narrows booking listings. Zero values mean "any".
type BookingFilter struct {
	BillboardID *uuid.UUID
	CustomerID  *uuid.UUID
	CampaignID  *uuid.UUID
	Status      *domain.BookingStatus
	From        *domain.Date
	To          *domain.Date
	Limit       int
	Offset      int
}

// BookingRepository persists bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOverlapping(ctx context.Context, q OverlapQuery) ([]domain.Booking, error)
	List(ctx context.Context, f BookingFilter) ([]domain.Booking, error)
	Count(ctx context.Context, f BookingFilter) (int64, error)
	ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]domain.Booking, error)
}

// CampaignRepository persists campaigns.
type CampaignRepository interface {
	Create(ctx context.Context, c *domain.Campaign) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	Update(ctx context.Context, c *domain.Campaign) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]domain.Campaign, error)
	Count(ctx context.Context) (int64, error)
}

// PurchaseOrderRepository persists purchase orders. Create fails with a
// domain.ErrConflict error when the booking already has one.
type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *domain.PurchaseOrder) error
	Get(ctx context.Context, id uuid.UUID) (*domain.PurchaseOrder, error)
	GetByBooking(ctx context.Context, bookingID uuid.UUID) (*domain.PurchaseOrder, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]domain.PurchaseOrder, error)
	Count(ctx context.Context) (int64, error)
}

// Sequencer issues year-scoped reference codes such as BK-2024-0007. Codes
// are unique and increase monotonically per entity and calendar year.
type Sequencer interface {
	Next(ctx context.Context, entity domain.SequenceEntity) (string, error)
}

// EventPublisher delivers booking events to downstream consumers. The events
// of one call are written as a single batch.
type EventPublisher interface {
	PublishBookingEvents(ctx context.Context, evs []domain.BookingEvent) error
}
