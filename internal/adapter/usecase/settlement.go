package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"billboard-ops/internal/core/domain"
	"billboard-ops/internal/core/port"
	"billboard-ops/internal/metrics"
)

// SettlementService prices the actual display period of a booking and
// raises its purchase order.
type SettlementService struct {
	repos  Repositories
	seq    port.Sequencer
	sink   eventSink
	logger *slog.Logger
}

func NewSettlementService(repos Repositories, seq port.Sequencer, events port.EventPublisher, logger *slog.Logger) *SettlementService {
	return &SettlementService{
		repos:  repos,
		seq:    seq,
		sink:   eventSink{events: events, logger: logger},
		logger: logger,
	}
}

func (s *SettlementService) CalculateProRata(ctx context.Context, bookingID uuid.UUID, actualStart, actualEnd domain.Date) (*domain.ProRata, error) {
	ctx, span := tracer.Start(ctx, "settlement.CalculateProRata")
	defer span.End()
	span.SetAttributes(attribute.String("booking.id", bookingID.String()))

	if err := domain.ValidateRange(actualStart, actualEnd); err != nil {
		return nil, fail(span, err)
	}
	b, bb, err := s.resolve(ctx, bookingID)
	if err != nil {
		return nil, fail(span, err)
	}
	pr := domain.CalculateProRata(b, bb.RatePerDay, actualStart, actualEnd)
	return &pr, nil
}

// CreatePurchaseOrder settles a booking. The actual period defaults to the
// booking start and its effective end date; the actual value defaults to the
// pro-rata price of that period. The booking moves to po_generated in the
// same transaction.
func (s *SettlementService) CreatePurchaseOrder(ctx context.Context, req port.CreatePurchaseOrderReq) (*domain.PurchaseOrder, error) {
	ctx, span := tracer.Start(ctx, "settlement.CreatePurchaseOrder")
	defer span.End()
	span.SetAttributes(attribute.String("booking.id", req.BookingID.String()))

	if req.BookingID == uuid.Nil {
		return nil, fail(span, domain.Validation("bookingId is required"))
	}
	if req.ActualValue != nil && req.ActualValue.IsNegative() {
		return nil, fail(span, domain.Validation("actual value cannot be negative"))
	}

	var (
		po      *domain.PurchaseOrder
		booking *domain.Booking
	)
	err := s.repos.Tx.WithinTx(ctx, func(ctx context.Context) error {
		b, bb, err := s.resolve(ctx, req.BookingID)
		if err != nil {
			return err
		}
		existing, err := s.repos.PurchaseOrders.GetByBooking(ctx, b.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.Conflict("booking "+b.ReferenceCode+" already has purchase order "+existing.PONumber, b.ReferenceCode)
		}
		if !b.Status.CanRaisePurchaseOrder() {
			return domain.InvalidState("cannot raise a purchase order for booking %s in status %s", b.ReferenceCode, b.Status)
		}

		start, end := b.StartDate, b.EffectiveEndDate()
		if req.ActualStartDate != nil {
			start = *req.ActualStartDate
		}
		if req.ActualEndDate != nil {
			end = *req.ActualEndDate
		}
		if err = domain.ValidateRange(start, end); err != nil {
			return err
		}
		value := domain.CalculateProRata(b, bb.RatePerDay, start, end).ActualValue
		if req.ActualValue != nil {
			value = *req.ActualValue
		}

		number, err := s.seq.Next(ctx, domain.SequencePurchaseOrder)
		if err != nil {
			return err
		}
		po = &domain.PurchaseOrder{
			ID:              uuid.New(),
			PONumber:        number,
			BookingID:       b.ID,
			ActualStartDate: start,
			ActualEndDate:   end,
			ActualValue:     value,
			AdjustmentNotes: req.AdjustmentNotes,
		}
		if err = s.repos.PurchaseOrders.Create(ctx, po); err != nil {
			return err
		}
		b.Status = domain.BookingPOGenerated
		if err = s.repos.Bookings.Update(ctx, b); err != nil {
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, fail(span, err)
	}

	s.logger.Info("purchase order created",
		slog.String("po", po.PONumber),
		slog.String("booking", booking.ReferenceCode),
		slog.String("actual_value", po.ActualValue.StringFixed(2)))
	metrics.ObserveTransition(booking.Status)
	s.sink.publish(ctx, domain.BookingEventStatusChanged, booking)
	return po, nil
}

func (s *SettlementService) GetPurchaseOrder(ctx context.Context, id uuid.UUID) (*domain.PurchaseOrder, error) {
	po, err := s.repos.PurchaseOrders.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, domain.NotFound("purchase order", id)
	}
	return po, nil
}

func (s *SettlementService) ListPurchaseOrders(ctx context.Context, limit, offset int) (*port.Page[domain.PurchaseOrder], error) {
	limit, offset = normalizePage(limit, offset)
	var (
		items []domain.PurchaseOrder
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.repos.PurchaseOrders.List(gctx, limit, offset)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repos.PurchaseOrders.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.PurchaseOrder{}
	}
	return &port.Page[domain.PurchaseOrder]{Items: items, Total: total, Limit: limit, Offset: offset}, nil
}

// DeletePurchaseOrder reverts the booking to completed and removes the
// purchase order.
func (s *SettlementService) DeletePurchaseOrder(ctx context.Context, id uuid.UUID) error {
	ctx, span := tracer.Start(ctx, "settlement.DeletePurchaseOrder")
	defer span.End()

	var booking *domain.Booking
	err := s.repos.Tx.WithinTx(ctx, func(ctx context.Context) error {
		po, err := s.repos.PurchaseOrders.Get(ctx, id)
		if err != nil {
			return err
		}
		if po == nil {
			return domain.NotFound("purchase order", id)
		}
		b, err := s.repos.Bookings.Get(ctx, po.BookingID)
		if err != nil {
			return err
		}
		if b == nil {
			return domain.NotFound("booking", po.BookingID)
		}
		b.Status = domain.BookingCompleted
		if err = s.repos.Bookings.Update(ctx, b); err != nil {
			return err
		}
		booking = b
		return s.repos.PurchaseOrders.Delete(ctx, id)
	})
	if err != nil {
		return fail(span, err)
	}

	metrics.ObserveTransition(booking.Status)
	s.sink.publish(ctx, domain.BookingEventStatusChanged, booking)
	return nil
}

func (s *SettlementService) resolve(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, *domain.Billboard, error) {
	b, err := s.repos.Bookings.Get(ctx, bookingID)
	if err != nil {
		return nil, nil, err
	}
	if b == nil {
		return nil, nil, domain.NotFound("booking", bookingID)
	}
	bb, err := s.repos.Billboards.Get(ctx, b.BillboardID)
	if err != nil {
		return nil, nil, err
	}
	if bb == nil {
		return nil, nil, domain.NotFound("billboard", b.BillboardID)
	}
	return b, bb, nil
}
