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

// BookingService owns the lifecycle of individual bookings. Every change of
// dates, billboard or slot is validated by the availability engine inside
// a transaction that holds the billboard row lock, so two concurrent
// requests for the same billboard cannot both pass the check.
type BookingService struct {
	repos        Repositories
	availability *AvailabilityService
	seq          port.Sequencer
	sink         eventSink
	logger       *slog.Logger
}

func NewBookingService(repos Repositories, availability *AvailabilityService, seq port.Sequencer, events port.EventPublisher, logger *slog.Logger) *BookingService {
	return &BookingService{
		repos:        repos,
		availability: availability,
		seq:          seq,
		sink:         eventSink{events: events, logger: logger},
		logger:       logger,
	}
}

// CreateBooking reserves a billboard for the requested range. The notional
// value defaults to rate per day times the inclusive day count.
func (s *BookingService) CreateBooking(ctx context.Context, req port.CreateBookingReq) (*domain.Booking, error) {
	ctx, span := tracer.Start(ctx, "booking.CreateBooking")
	defer span.End()
	span.SetAttributes(attribute.String("billboard.id", req.BillboardID.String()))

	if req.CustomerID == uuid.Nil || req.BillboardID == uuid.Nil {
		return nil, fail(span, domain.Validation("customerId and billboardId are required"))
	}
	if err := domain.ValidateRange(req.StartDate, req.EndDate); err != nil {
		return nil, fail(span, err)
	}
	if req.NotionalValue != nil && req.NotionalValue.IsNegative() {
		return nil, fail(span, domain.Validation("notional value cannot be negative"))
	}
	customer, err := s.repos.Customers.Get(ctx, req.CustomerID)
	if err != nil {
		return nil, fail(span, err)
	}
	if customer == nil {
		return nil, fail(span, domain.NotFound("customer", req.CustomerID))
	}

	var created *domain.Booking
	err = s.repos.Tx.WithinTx(ctx, func(ctx context.Context) error {
		bb, err := lockBillboard(ctx, s.repos.Billboards, req.BillboardID)
		if err != nil {
			return err
		}
		if req.CampaignID != nil {
			if err = s.checkCampaignOwner(ctx, *req.CampaignID, req.CustomerID); err != nil {
				return err
			}
		}
		res, err := s.availability.check(ctx, bb, port.AvailabilityQuery{
			BillboardID: bb.ID,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			SlotNumber:  req.SlotNumber,
		})
		if err != nil {
			return err
		}
		if !res.Available {
			return unavailable(bb, req.SlotNumber, req.StartDate, req.EndDate, res.Conflicts)
		}

		value := bb.ValueFor(req.StartDate, req.EndDate)
		if req.NotionalValue != nil {
			value = *req.NotionalValue
		}
		code, err := s.seq.Next(ctx, domain.SequenceBooking)
		if err != nil {
			return err
		}
		b := &domain.Booking{
			ID:            uuid.New(),
			ReferenceCode: code,
			CustomerID:    req.CustomerID,
			BillboardID:   bb.ID,
			CampaignID:    req.CampaignID,
			SlotNumber:    req.SlotNumber,
			StartDate:     req.StartDate,
			EndDate:       req.EndDate,
			NotionalValue: value,
			Status:        domain.BookingCreated,
			Notes:         req.Notes,
		}
		if err = s.repos.Bookings.Create(ctx, b); err != nil {
			return err
		}
		if b.CampaignID != nil {
			if err = recalculateCampaign(ctx, s.repos, *b.CampaignID); err != nil {
				return err
			}
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, fail(span, err)
	}

	metrics.ObserveTransition(created.Status)
	s.logger.Info("booking created",
		slog.String("booking", created.ReferenceCode),
		slog.String("billboard", created.BillboardID.String()))
	s.sink.publish(ctx, domain.BookingEventCreated, created)
	return created, nil
}

// GetBooking returns a booking by id.
func (s *BookingService) GetBooking(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	b, err := s.repos.Bookings.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.NotFound("booking", id)
	}
	return b, nil
}

// ListBookings returns one page of bookings. The page and the total count
// are read concurrently.
func (s *BookingService) ListBookings(ctx context.Context, f port.BookingFilter) (*port.Page[domain.Booking], error) {
	f.Limit, f.Offset = normalizePage(f.Limit, f.Offset)
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		return nil, domain.InvalidState("from %s is after to %s", *f.From, *f.To)
	}

	var (
		items []domain.Booking
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.repos.Bookings.List(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repos.Bookings.Count(gctx, f)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Booking{}
	}
	return &port.Page[domain.Booking]{Items: items, Total: total, Limit: f.Limit, Offset: f.Offset}, nil
}

// UpdateBooking applies a partial update. Finalized bookings cannot be
// edited. Moving the booking in time or space re-runs the availability
// check with the booking itself excluded.
func (s *BookingService) UpdateBooking(ctx context.Context, id uuid.UUID, req port.UpdateBookingReq) (*domain.Booking, error) {
	ctx, span := tracer.Start(ctx, "booking.UpdateBooking")
	defer span.End()
	span.SetAttributes(attribute.String("booking.id", id.String()))

	if req.NotionalValue != nil && req.NotionalValue.IsNegative() {
		return nil, fail(span, domain.Validation("notional value cannot be negative"))
	}

	var updated *domain.Booking
	err := s.repos.Tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.repos.Bookings.Get(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.NotFound("booking", id)
		}
		if current.Status.IsFinalized() {
			return domain.InvalidState("booking %s is %s and can no longer be edited", current.ReferenceCode, current.Status)
		}

		next := *current
		if req.BillboardID != nil {
			next.BillboardID = *req.BillboardID
		}
		if req.SlotNumber != nil {
			next.SlotNumber = req.SlotNumber
		}
		if req.StartDate != nil {
			next.StartDate = *req.StartDate
		}
		if req.EndDate != nil {
			next.EndDate = *req.EndDate
		}
		if req.Notes != nil {
			next.Notes = *req.Notes
		}
		if err = domain.ValidateRange(next.StartDate, next.EndDate); err != nil {
			return err
		}

		if req.TouchesSchedule() {
			bb, err := lockBillboard(ctx, s.repos.Billboards, next.BillboardID)
			if err != nil {
				return err
			}
			if !bb.IsDigital() && req.SlotNumber == nil {
				next.SlotNumber = nil
			}
			res, err := s.availability.check(ctx, bb, port.AvailabilityQuery{
				BillboardID:      bb.ID,
				StartDate:        next.StartDate,
				EndDate:          next.EndDate,
				SlotNumber:       next.SlotNumber,
				ExcludeBookingID: &current.ID,
			})
			if err != nil {
				return err
			}
			if !res.Available {
				return unavailable(bb, next.SlotNumber, next.StartDate, next.EndDate, res.Conflicts)
			}
			moved := next.BillboardID != current.BillboardID ||
				!next.StartDate.Equal(current.StartDate) ||
				!next.EndDate.Equal(current.EndDate)
			if moved && req.NotionalValue == nil {
				next.NotionalValue = bb.ValueFor(next.StartDate, next.EndDate)
			}
		}
		if req.NotionalValue != nil {
			next.NotionalValue = *req.NotionalValue
		}

		if err = s.repos.Bookings.Update(ctx, &next); err != nil {
			return err
		}
		if next.CampaignID != nil {
			if err = recalculateCampaign(ctx, s.repos, *next.CampaignID); err != nil {
				return err
			}
		}
		updated = &next
		return nil
	})
	if err != nil {
		return nil, fail(span, err)
	}
	s.sink.publish(ctx, domain.BookingEventUpdated, updated)
	return updated, nil
}

// DeleteBooking removes a booking that is still in its initial state.
func (s *BookingService) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	ctx, span := tracer.Start(ctx, "booking.DeleteBooking")
	defer span.End()

	var deleted *domain.Booking
	err := s.repos.Tx.WithinTx(ctx, func(ctx context.Context) error {
		b, err := s.repos.Bookings.Get(ctx, id)
		if err != nil {
			return err
		}
		if b == nil {
			return domain.NotFound("booking", id)
		}
		if b.Status != domain.BookingCreated {
			return domain.InvalidState("booking %s is %s; only created bookings can be deleted", b.ReferenceCode, b.Status)
		}
		if err = s.repos.Bookings.Delete(ctx, id); err != nil {
			return err
		}
		if b.CampaignID != nil {
			if err = recalculateCampaign(ctx, s.repos, *b.CampaignID); err != nil {
				return err
			}
		}
		deleted = b
		return nil
	})
	if err != nil {
		return fail(span, err)
	}
	s.sink.publish(ctx, domain.BookingEventDeleted, deleted)
	return nil
}

// UpdateStatus sets any of the six lifecycle states. There is no transition
// graph: a booking may jump between lifecycle states freely. Cancelled
// bookings stay cancelled.
func (s *BookingService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*domain.Booking, error) {
	ctx, span := tracer.Start(ctx, "booking.UpdateStatus")
	defer span.End()
	span.SetAttributes(attribute.String("booking.status", status))

	next, err := domain.ParseLifecycleStatus(status)
	if err != nil {
		return nil, fail(span, err)
	}
	b, err := s.mutate(ctx, id, func(b *domain.Booking) error {
		if b.Status == domain.BookingCancelled {
			return domain.InvalidState("booking %s is cancelled", b.ReferenceCode)
		}
		b.Status = next
		return nil
	})
	if err != nil {
		return nil, fail(span, err)
	}
	metrics.ObserveTransition(b.Status)
	s.sink.publish(ctx, domain.BookingEventStatusChanged, b)
	return b, nil
}

// ShortClose ends the display period early and marks the booking completed.
// The original end date is preserved.
func (s *BookingService) ShortClose(ctx context.Context, id uuid.UUID, actualEndDate domain.Date, reason string) (*domain.Booking, error) {
	ctx, span := tracer.Start(ctx, "booking.ShortClose")
	defer span.End()

	if actualEndDate.IsZero() {
		return nil, fail(span, domain.Validation("actualEndDate is required"))
	}
	b, err := s.mutate(ctx, id, func(b *domain.Booking) error {
		return b.ShortClose(actualEndDate, reason)
	})
	if err != nil {
		return nil, fail(span, err)
	}
	metrics.ObserveTransition(b.Status)
	s.logger.Info("booking short-closed",
		slog.String("booking", b.ReferenceCode),
		slog.String("actual_end", actualEndDate.String()))
	s.sink.publish(ctx, domain.BookingEventStatusChanged, b)
	return b, nil
}

// CancelBooking releases the dates of an open booking.
func (s *BookingService) CancelBooking(ctx context.Context, id uuid.UUID, reason string) (*domain.Booking, error) {
	ctx, span := tracer.Start(ctx, "booking.CancelBooking")
	defer span.End()

	var campaignID *uuid.UUID
	b, err := s.mutate(ctx, id, func(b *domain.Booking) error {
		campaignID = b.CampaignID
		return b.Cancel(reason)
	}, func(ctx context.Context) error {
		if campaignID == nil {
			return nil
		}
		return recalculateCampaign(ctx, s.repos, *campaignID)
	})
	if err != nil {
		return nil, fail(span, err)
	}
	metrics.ObserveTransition(b.Status)
	s.sink.publish(ctx, domain.BookingEventStatusChanged, b)
	return b, nil
}

// mutate loads a booking, applies change and saves it in one transaction.
// after hooks run in the same transaction once the booking is saved.
func (s *BookingService) mutate(ctx context.Context, id uuid.UUID, change func(*domain.Booking) error, after ...func(context.Context) error) (*domain.Booking, error) {
	var out *domain.Booking
	err := s.repos.Tx.WithinTx(ctx, func(ctx context.Context) error {
		b, err := s.repos.Bookings.Get(ctx, id)
		if err != nil {
			return err
		}
		if b == nil {
			return domain.NotFound("booking", id)
		}
		if err = change(b); err != nil {
			return err
		}
		if err = s.repos.Bookings.Update(ctx, b); err != nil {
			return err
		}
		for _, fn := range after {
			if err = fn(ctx); err != nil {
				return err
			}
		}
		out = b
		return nil
	})
	return out, err
}

func (s *BookingService) checkCampaignOwner(ctx context.Context, campaignID, customerID uuid.UUID) error {
	c, err := s.repos.Campaigns.Get(ctx, campaignID)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.NotFound("campaign", campaignID)
	}
	if c.CustomerID != customerID {
		return domain.InvalidState("campaign %s belongs to another customer", c.ReferenceCode)
	}
	return nil
}

// lockBillboard takes the billboard row lock and loads the billboard.
func lockBillboard(ctx context.Context, repo port.BillboardRepository, id uuid.UUID) (*domain.Billboard, error) {
	if err := repo.Lock(ctx, []uuid.UUID{id}); err != nil {
		return nil, err
	}
	bb, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if bb == nil {
		return nil, domain.NotFound("billboard", id)
	}
	return bb, nil
}
