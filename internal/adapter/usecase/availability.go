package usecase

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"billboard-ops/internal/core/domain"
	"billboard-ops/internal/core/port"
	"billboard-ops/internal/metrics"
)

// AvailabilityService decides whether a billboard, or one slot of a digital
// billboard, is free over an inclusive date range. It only reads.
type AvailabilityService struct {
	billboards port.BillboardRepository
	bookings   port.BookingRepository
}

func NewAvailabilityService(billboards port.BillboardRepository, bookings port.BookingRepository) *AvailabilityService {
	return &AvailabilityService{billboards: billboards, bookings: bookings}
}

// CheckAvailability resolves the billboard and reports the bookings that
// would conflict with the requested range. Cancelled bookings and the
// excluded booking never conflict.
func (s *AvailabilityService) CheckAvailability(ctx context.Context, q port.AvailabilityQuery) (*port.AvailabilityResult, error) {
	ctx, span := tracer.Start(ctx, "availability.CheckAvailability")
	defer span.End()
	span.SetAttributes(
		attribute.String("billboard.id", q.BillboardID.String()),
		attribute.String("range.start", q.StartDate.String()),
		attribute.String("range.end", q.EndDate.String()),
	)

	bb, err := s.billboards.Get(ctx, q.BillboardID)
	if err != nil {
		return nil, fail(span, err)
	}
	if bb == nil {
		return nil, fail(span, domain.NotFound("billboard", q.BillboardID))
	}
	res, err := s.check(ctx, bb, q)
	if err != nil {
		return nil, fail(span, err)
	}
	span.SetAttributes(attribute.Bool("available", res.Available))
	return res, nil
}

// check runs the engine against an already resolved billboard. Callers that
// hold the billboard row lock use it inside their transaction.
func (s *AvailabilityService) check(ctx context.Context, bb *domain.Billboard, q port.AvailabilityQuery) (*port.AvailabilityResult, error) {
	if err := domain.ValidateRange(q.StartDate, q.EndDate); err != nil {
		return nil, err
	}
	scope := q.Scope
	if scope == "" {
		scope = port.ScopeAuto
	}
	if bb.IsDigital() && scope == port.ScopeSlot && q.SlotNumber == nil {
		return nil, domain.Validation("slot number is required for a slot-scoped check on billboard %s", bb.Code)
	}
	if err := bb.ValidateSlot(q.SlotNumber); err != nil {
		return nil, err
	}

	existing, err := s.bookings.FindOverlapping(ctx, port.OverlapQuery{
		BillboardID:      bb.ID,
		StartDate:        q.StartDate,
		EndDate:          q.EndDate,
		ExcludeBookingID: q.ExcludeBookingID,
	})
	if err != nil {
		return nil, err
	}
	conflicts := conflictsFor(bb, existing, q, scope)
	metrics.ObserveAvailability(bb.Type, len(conflicts) == 0)
	return &port.AvailabilityResult{Available: len(conflicts) == 0, Conflicts: conflicts}, nil
}

// conflictsFor applies the overlap predicate and the slot rules to the
// candidate bookings of one billboard.
//
// Static billboards conflict on any overlap. Digital billboards compare slot
// numbers only when a slot is requested and the scope is not billboard-wide;
// without a slot every overlapping booking of the billboard conflicts. A
// digital booking without a slot holds the whole billboard and therefore
// conflicts with every slot.
func conflictsFor(bb *domain.Billboard, existing []domain.Booking, q port.AvailabilityQuery, scope port.AvailabilityScope) []domain.Booking {
	slotScoped := bb.IsDigital() && q.SlotNumber != nil && scope != port.ScopeBillboard
	conflicts := make([]domain.Booking, 0)
	for _, b := range existing {
		if b.Status == domain.BookingCancelled {
			continue
		}
		if q.ExcludeBookingID != nil && b.ID == *q.ExcludeBookingID {
			continue
		}
		if !domain.Overlaps(q.StartDate, q.EndDate, b.StartDate, b.EndDate) {
			continue
		}
		if slotScoped && b.SlotNumber != nil && *b.SlotNumber != *q.SlotNumber {
			continue
		}
		conflicts = append(conflicts, b)
	}
	return conflicts
}
