package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"billboard-ops/internal/core/domain"
	"billboard-ops/internal/core/port"
)

var tracer = otel.Tracer("billboard-ops/usecase")

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Repositories bundles the outbound persistence ports shared by the
// services. Tx joins repository calls into one transaction.
type Repositories struct {
	Tx             port.Transactor
	Billboards     port.BillboardRepository
	Customers      port.CustomerRepository
	Bookings       port.BookingRepository
	Campaigns      port.CampaignRepository
	PurchaseOrders port.PurchaseOrderRepository
}

// normalizePage clamps a limit/offset pair to sane bounds.
func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// fail records err on the span and returns it unchanged.
func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

// unavailable builds the conflict error reported when a billboard or slot is
// already taken.
func unavailable(bb *domain.Billboard, slot *int, start, end domain.Date, conflicts []domain.Booking) error {
	target := "billboard " + bb.Code
	if slot != nil {
		target = fmt.Sprintf("%s slot %d", target, *slot)
	}
	refs := domain.ReferenceCodes(conflicts)
	return domain.Conflict(
		fmt.Sprintf("%s is not available from %s to %s: conflicts with %v", target, start, end, refs),
		refs...,
	)
}

// eventSink publishes booking events after commit. Delivery failures are
// logged and never fail the operation that produced the event.
type eventSink struct {
	events port.EventPublisher
	logger *slog.Logger
}

func (s eventSink) publish(ctx context.Context, t domain.BookingEventType, bookings ...*domain.Booking) {
	if s.events == nil || len(bookings) == 0 {
		return
	}
	evs := make([]domain.BookingEvent, 0, len(bookings))
	refs := make([]string, 0, len(bookings))
	for _, b := range bookings {
		evs = append(evs, domain.NewBookingEvent(t, b))
		refs = append(refs, b.ReferenceCode)
	}
	if err := s.events.PublishBookingEvents(ctx, evs); err != nil {
		s.logger.Warn("publish booking events",
			slog.String("type", string(t)),
			slog.Any("bookings", refs),
			slog.Any("error", err))
	}
}
