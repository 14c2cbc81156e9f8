package usecase

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"billboard-ops/internal/core/domain"
	"billboard-ops/internal/core/port"
	"billboard-ops/internal/metrics"
)

// CampaignService creates multi-billboard campaigns and keeps their derived
// totals in step with the member bookings.
type CampaignService struct {
	repos        Repositories
	availability *AvailabilityService
	seq          port.Sequencer
	sink         eventSink
	logger       *slog.Logger
}

func NewCampaignService(repos Repositories, availability *AvailabilityService, seq port.Sequencer, events port.EventPublisher, logger *slog.Logger) *CampaignService {
	return &CampaignService{
		repos:        repos,
		availability: availability,
		seq:          seq,
		sink:         eventSink{events: events, logger: logger},
		logger:       logger,
	}
}

// CreateCampaign books every selected billboard over the campaign range.
// The whole operation runs in one transaction: the billboard rows are locked
// and then loaded, availability is checked for each selection in order, and
// the first conflict aborts the campaign without persisting anything.
func (s *CampaignService) CreateCampaign(ctx context.Context, req port.CreateCampaignReq) (*port.CampaignDetail, error) {
	ctx, span := tracer.Start(ctx, "campaign.CreateCampaign")
	defer span.End()
	span.SetAttributes(attribute.Int("campaign.selections", len(req.Billboards)))

	if req.CustomerID == uuid.Nil {
		return nil, fail(span, domain.Validation("customerId is required"))
	}
	if len(req.Billboards) == 0 {
		return nil, fail(span, domain.Validation("at least one billboard must be selected"))
	}
	if err := domain.ValidateRange(req.StartDate, req.EndDate); err != nil {
		return nil, fail(span, err)
	}
	if err := validateSelections(req.Billboards); err != nil {
		return nil, fail(span, err)
	}
	customer, err := s.repos.Customers.Get(ctx, req.CustomerID)
	if err != nil {
		return nil, fail(span, err)
	}
	if customer == nil {
		return nil, fail(span, domain.NotFound("customer", req.CustomerID))
	}

	ids := selectionIDs(req.Billboards)
	var detail *port.CampaignDetail
	err = s.repos.Tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repos.Billboards.Lock(ctx, ids); err != nil {
			return err
		}
		// read rate and slot count under the lock
		byID, err := s.loadSelected(ctx, ids)
		if err != nil {
			return err
		}
		for _, sel := range req.Billboards {
			bb := byID[sel.BillboardID]
			res, err := s.availability.check(ctx, bb, port.AvailabilityQuery{
				BillboardID: bb.ID,
				StartDate:   req.StartDate,
				EndDate:     req.EndDate,
				SlotNumber:  sel.SlotNumber,
			})
			if err != nil {
				return err
			}
			if !res.Available {
				return unavailable(bb, sel.SlotNumber, req.StartDate, req.EndDate, res.Conflicts)
			}
		}

		code, err := s.seq.Next(ctx, domain.SequenceCampaign)
		if err != nil {
			return err
		}
		camp := &domain.Campaign{
			ID:            uuid.New(),
			ReferenceCode: code,
			CustomerID:    req.CustomerID,
			Name:          req.Name,
			Notes:         req.Notes,
		}
		if camp.Name == "" {
			camp.Name = code
		}
		if err = s.repos.Campaigns.Create(ctx, camp); err != nil {
			return err
		}

		bookings := make([]domain.Booking, 0, len(req.Billboards))
		for _, sel := range req.Billboards {
			bb := byID[sel.BillboardID]
			bookingCode, err := s.seq.Next(ctx, domain.SequenceBooking)
			if err != nil {
				return err
			}
			b := domain.Booking{
				ID:            uuid.New(),
				ReferenceCode: bookingCode,
				CustomerID:    req.CustomerID,
				BillboardID:   bb.ID,
				CampaignID:    &camp.ID,
				SlotNumber:    sel.SlotNumber,
				StartDate:     req.StartDate,
				EndDate:       req.EndDate,
				NotionalValue: bb.ValueFor(req.StartDate, req.EndDate),
				Status:        domain.BookingCreated,
			}
			if err = s.repos.Bookings.Create(ctx, &b); err != nil {
				return err
			}
			bookings = append(bookings, b)
		}

		camp.Apply(domain.SummarizeBookings(bookings))
		if err = s.repos.Campaigns.Update(ctx, camp); err != nil {
			return err
		}
		detail = &port.CampaignDetail{Campaign: *camp, Bookings: bookings}
		return nil
	})
	if err != nil {
		return nil, fail(span, err)
	}

	s.logger.Info("campaign created",
		slog.String("campaign", detail.ReferenceCode),
		slog.Int("bookings", len(detail.Bookings)),
		slog.String("total_value", detail.TotalValue.StringFixed(2)))
	created := make([]*domain.Booking, 0, len(detail.Bookings))
	for i := range detail.Bookings {
		metrics.ObserveTransition(detail.Bookings[i].Status)
		created = append(created, &detail.Bookings[i])
	}
	s.sink.publish(ctx, domain.BookingEventCreated, created...)
	return detail, nil
}

// GetCampaign returns a campaign with its member bookings.
func (s *CampaignService) GetCampaign(ctx context.Context, id uuid.UUID) (*port.CampaignDetail, error) {
	return loadCampaignDetail(ctx, s.repos, id)
}

// ListCampaigns returns one page of campaigns.
func (s *CampaignService) ListCampaigns(ctx context.Context, limit, offset int) (*port.Page[domain.Campaign], error) {
	limit, offset = normalizePage(limit, offset)
	var (
		items []domain.Campaign
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.repos.Campaigns.List(gctx, limit, offset)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repos.Campaigns.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Campaign{}
	}
	return &port.Page[domain.Campaign]{Items: items, Total: total, Limit: limit, Offset: offset}, nil
}

// UpdateCampaign edits the descriptive fields. Totals are derived and
// cannot be set.
func (s *CampaignService) UpdateCampaign(ctx context.Context, id uuid.UUID, req port.UpdateCampaignReq) (*domain.Campaign, error) {
	var out *domain.Campaign
	err := s.repos.Tx.WithinTx(ctx, func(ctx context.Context) error {
		c, err := s.repos.Campaigns.Get(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.NotFound("campaign", id)
		}
		if req.Name != nil {
			if strings.TrimSpace(*req.Name) == "" {
				return domain.Validation("campaign name cannot be empty")
			}
			c.Name = *req.Name
		}
		if req.Notes != nil {
			c.Notes = *req.Notes
		}
		if err = s.repos.Campaigns.Update(ctx, c); err != nil {
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteCampaign removes a campaign that no longer owns any booking.
func (s *CampaignService) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	ctx, span := tracer.Start(ctx, "campaign.DeleteCampaign")
	defer span.End()

	err := s.repos.Tx.WithinTx(ctx, func(ctx context.Context) error {
		c, err := s.repos.Campaigns.Get(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.NotFound("campaign", id)
		}
		members, err := s.repos.Bookings.ListByCampaign(ctx, id)
		if err != nil {
			return err
		}
		if len(members) > 0 {
			return domain.InvalidState("campaign %s still owns %d bookings", c.ReferenceCode, len(members))
		}
		return s.repos.Campaigns.Delete(ctx, id)
	})
	if err != nil {
		return fail(span, err)
	}
	return nil
}

// AddBooking moves a booking of the same customer into the campaign. When
// the booking belonged to another campaign, both campaigns are recomputed.
func (s *CampaignService) AddBooking(ctx context.Context, campaignID, bookingID uuid.UUID) (*port.CampaignDetail, error) {
	ctx, span := tracer.Start(ctx, "campaign.AddBooking")
	defer span.End()

	err := s.repos.Tx.WithinTx(ctx, func(ctx context.Context) error {
		c, b, err := s.loadPair(ctx, campaignID, bookingID)
		if err != nil {
			return err
		}
		if b.CampaignID != nil && *b.CampaignID == c.ID {
			return nil
		}
		previous := b.CampaignID
		b.CampaignID = &c.ID
		if err = s.repos.Bookings.Update(ctx, b); err != nil {
			return err
		}
		if previous != nil {
			if err = recalculateCampaign(ctx, s.repos, *previous); err != nil {
				return err
			}
		}
		return recalculateCampaign(ctx, s.repos, c.ID)
	})
	if err != nil {
		return nil, fail(span, err)
	}
	return loadCampaignDetail(ctx, s.repos, campaignID)
}

// RemoveBooking detaches a member booking from the campaign.
func (s *CampaignService) RemoveBooking(ctx context.Context, campaignID, bookingID uuid.UUID) (*port.CampaignDetail, error) {
	ctx, span := tracer.Start(ctx, "campaign.RemoveBooking")
	defer span.End()

	err := s.repos.Tx.WithinTx(ctx, func(ctx context.Context) error {
		c, b, err := s.loadPair(ctx, campaignID, bookingID)
		if err != nil {
			return err
		}
		if b.CampaignID == nil || *b.CampaignID != c.ID {
			return domain.InvalidState("booking %s is not part of campaign %s", b.ReferenceCode, c.ReferenceCode)
		}
		b.CampaignID = nil
		if err = s.repos.Bookings.Update(ctx, b); err != nil {
			return err
		}
		return recalculateCampaign(ctx, s.repos, c.ID)
	})
	if err != nil {
		return nil, fail(span, err)
	}
	return loadCampaignDetail(ctx, s.repos, campaignID)
}

// AvailableBillboards reports every active billboard over the range. Each
// slot of a digital billboard is checked on its own; the billboard counts as
// available while at least one slot is free.
func (s *CampaignService) AvailableBillboards(ctx context.Context, start, end domain.Date) ([]port.BillboardAvailability, error) {
	ctx, span := tracer.Start(ctx, "campaign.AvailableBillboards")
	defer span.End()

	if err := domain.ValidateRange(start, end); err != nil {
		return nil, fail(span, err)
	}
	active := domain.BillboardActive
	billboards, err := s.repos.Billboards.List(ctx, &active)
	if err != nil {
		return nil, fail(span, err)
	}

	out := make([]port.BillboardAvailability, 0, len(billboards))
	for i := range billboards {
		bb := &billboards[i]
		existing, err := s.repos.Bookings.FindOverlapping(ctx, port.OverlapQuery{
			BillboardID: bb.ID,
			StartDate:   start,
			EndDate:     end,
		})
		if err != nil {
			return nil, fail(span, err)
		}
		q := port.AvailabilityQuery{BillboardID: bb.ID, StartDate: start, EndDate: end}
		if !bb.IsDigital() {
			free := len(conflictsFor(bb, existing, q, port.ScopeAuto)) == 0
			metrics.ObserveAvailability(bb.Type, free)
			out = append(out, port.BillboardAvailability{Billboard: *bb, IsAvailable: free})
			continue
		}
		freeSlots := make([]int, 0, bb.SlotCount)
		for slot := 1; slot <= bb.SlotCount; slot++ {
			q.SlotNumber = &slot
			if len(conflictsFor(bb, existing, q, port.ScopeAuto)) == 0 {
				freeSlots = append(freeSlots, slot)
			}
		}
		metrics.ObserveAvailability(bb.Type, len(freeSlots) > 0)
		out = append(out, port.BillboardAvailability{
			Billboard:   *bb,
			IsAvailable: len(freeSlots) > 0,
			FreeSlots:   freeSlots,
		})
	}
	return out, nil
}

// loadSelected resolves every id in one batch and fails with NotFound naming
// the ids that do not exist.
func (s *CampaignService) loadSelected(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Billboard, error) {
	found, err := s.repos.Billboards.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*domain.Billboard, len(found))
	for i := range found {
		byID[found[i].ID] = &found[i]
	}
	var missing []string
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			missing = append(missing, id.String())
		}
	}
	if len(missing) > 0 {
		return nil, domain.NotFound("billboards", strings.Join(missing, ", "))
	}
	return byID, nil
}

// loadPair resolves a campaign and a booking and checks that they share a
// customer.
func (s *CampaignService) loadPair(ctx context.Context, campaignID, bookingID uuid.UUID) (*domain.Campaign, *domain.Booking, error) {
	c, err := s.repos.Campaigns.Get(ctx, campaignID)
	if err != nil {
		return nil, nil, err
	}
	if c == nil {
		return nil, nil, domain.NotFound("campaign", campaignID)
	}
	b, err := s.repos.Bookings.Get(ctx, bookingID)
	if err != nil {
		return nil, nil, err
	}
	if b == nil {
		return nil, nil, domain.NotFound("booking", bookingID)
	}
	if b.CustomerID != c.CustomerID {
		return nil, nil, domain.InvalidState("booking %s and campaign %s belong to different customers", b.ReferenceCode, c.ReferenceCode)
	}
	return c, b, nil
}

// recalculateCampaign derives total value and period from the current
// member set and stores them.
func recalculateCampaign(ctx context.Context, repos Repositories, id uuid.UUID) error {
	c, err := repos.Campaigns.Get(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.NotFound("campaign", id)
	}
	members, err := repos.Bookings.ListByCampaign(ctx, id)
	if err != nil {
		return err
	}
	c.Apply(domain.SummarizeBookings(members))
	return repos.Campaigns.Update(ctx, c)
}

func loadCampaignDetail(ctx context.Context, repos Repositories, id uuid.UUID) (*port.CampaignDetail, error) {
	c, err := repos.Campaigns.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NotFound("campaign", id)
	}
	members, err := repos.Bookings.ListByCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if members == nil {
		members = []domain.Booking{}
	}
	return &port.CampaignDetail{Campaign: *c, Bookings: members}, nil
}

// validateSelections rejects selections that would collide with each other:
// the same static billboard twice, the same digital slot twice, or a
// whole-billboard selection next to any other selection of that billboard.
func validateSelections(sels []port.BillboardSelection) error {
	seen := make(map[uuid.UUID][]*int, len(sels))
	for _, sel := range sels {
		if sel.BillboardID == uuid.Nil {
			return domain.Validation("billboard selection without billboardId")
		}
		for _, other := range seen[sel.BillboardID] {
			if other == nil || sel.SlotNumber == nil || *other == *sel.SlotNumber {
				return domain.Validation("billboard %s is selected more than once for the same slot", sel.BillboardID)
			}
		}
		seen[sel.BillboardID] = append(seen[sel.BillboardID], sel.SlotNumber)
	}
	return nil
}

// selectionIDs returns the distinct billboard ids in ascending order, the
// order in which their rows are locked.
func selectionIDs(sels []port.BillboardSelection) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(sels))
	for _, sel := range sels {
		if !slices.Contains(ids, sel.BillboardID) {
			ids = append(ids, sel.BillboardID)
		}
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int {
		return strings.Compare(a.String(), b.String())
	})
	return ids
}
