package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billboard-ops/internal/core/domain"
	"billboard-ops/internal/core/port"
	"billboard-ops/internal/core/port/mocks"
)

func newCampaignService(m *repoMocks) *CampaignService {
	availability := NewAvailabilityService(m.billboards, m.bookings)
	return NewCampaignService(m.repos(), availability, m.seq, m.events, discardLogger())
}

func TestCreateCampaign(t *testing.T) {
	ctx := context.Background()
	m := newRepoMocks(t)
	customer := &domain.Customer{ID: uuid.New(), Name: "Acme"}
	static := staticBillboard("X-01", "1000")
	digital := digitalBillboard("D-01", "250", 8)
	start, end := date("2024-09-01"), date("2024-09-10")

	m.customers.EXPECT().Get(mock.Anything, customer.ID).Return(customer, nil)
	m.billboards.EXPECT().GetMany(mock.Anything, mock.Anything).Return([]domain.Billboard{*static, *digital}, nil)
	m.billboards.EXPECT().Lock(mock.Anything, selectionIDs([]port.BillboardSelection{{BillboardID: static.ID}, {BillboardID: digital.ID}})).Return(nil)
	m.bookings.EXPECT().FindOverlapping(mock.Anything, mock.Anything).Return(nil, nil).Times(2)
	m.sequence(domain.SequenceCampaign, "CP-2024-0001")
	m.sequence(domain.SequenceBooking, "BK-2024-0010", "BK-2024-0011")
	m.campaigns.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Campaign")).Return(nil)
	m.bookings.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil).Times(2)
	m.campaigns.EXPECT().Update(mock.Anything, mock.AnythingOfType("*domain.Campaign")).Return(nil)

	// both bookings go out in one batch
	m.events = mocks.NewMockEventPublisher(t)
	m.events.EXPECT().
		PublishBookingEvents(mock.Anything, mock.MatchedBy(func(evs []domain.BookingEvent) bool {
			return len(evs) == 2 &&
				evs[0].Type == domain.BookingEventCreated &&
				evs[0].ReferenceCode == "BK-2024-0010" &&
				evs[1].ReferenceCode == "BK-2024-0011"
		})).
		Return(nil).
		Once()

	detail, err := newCampaignService(m).CreateCampaign(ctx, port.CreateCampaignReq{
		CustomerID: customer.ID,
		Name:       "Autumn launch",
		StartDate:  start,
		EndDate:    end,
		Billboards: []port.BillboardSelection{
			{BillboardID: static.ID},
			{BillboardID: digital.ID, SlotNumber: slot(4)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "CP-2024-0001", detail.ReferenceCode)
	assert.Equal(t, "12500.00", detail.TotalValue.StringFixed(2))
	require.NotNil(t, detail.StartDate)
	assert.Equal(t, start, *detail.StartDate)
	assert.Equal(t, end, *detail.EndDate)
	require.Len(t, detail.Bookings, 2)
	for _, b := range detail.Bookings {
		assert.Equal(t, detail.ID, *b.CampaignID)
		assert.Equal(t, domain.BookingCreated, b.Status)
	}
	assert.Equal(t, "BK-2024-0010", detail.Bookings[0].ReferenceCode)
	assert.Equal(t, 4, *detail.Bookings[1].SlotNumber)
}

func TestCreateCampaign_ConflictPersistsNothing(t *testing.T) {
	ctx := context.Background()
	m := newRepoMocks(t)
	customer := &domain.Customer{ID: uuid.New(), Name: "Acme"}
	free := staticBillboard("X-01", "1000")
	taken := staticBillboard("X-02", "1000")
	existing := booking("BK-2024-0004", taken, "2024-09-05", "2024-09-06", domain.BookingConfirmed)

	m.customers.EXPECT().Get(mock.Anything, customer.ID).Return(customer, nil)
	m.billboards.EXPECT().GetMany(mock.Anything, mock.Anything).Return([]domain.Billboard{*free, *taken}, nil)
	m.billboards.EXPECT().Lock(mock.Anything, mock.Anything).Return(nil)
	m.bookings.EXPECT().
		FindOverlapping(mock.Anything, mock.MatchedBy(func(q port.OverlapQuery) bool { return q.BillboardID == free.ID })).
		Return(nil, nil)
	m.bookings.EXPECT().
		FindOverlapping(mock.Anything, mock.MatchedBy(func(q port.OverlapQuery) bool { return q.BillboardID == taken.ID })).
		Return([]domain.Booking{existing}, nil)

	_, err := newCampaignService(m).CreateCampaign(ctx, port.CreateCampaignReq{
		CustomerID: customer.ID,
		StartDate:  date("2024-09-01"),
		EndDate:    date("2024-09-10"),
		Billboards: []port.BillboardSelection{{BillboardID: free.ID}, {BillboardID: taken.ID}},
	})
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "X-02")
	assert.Equal(t, []string{"BK-2024-0004"}, domain.ConflictCodes(err))

	m.seq.AssertNotCalled(t, "Next", mock.Anything, mock.Anything)
	m.campaigns.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateCampaign_Rejects(t *testing.T) {
	ctx := context.Background()
	bbID := uuid.New()
	base := func() port.CreateCampaignReq {
		return port.CreateCampaignReq{
			CustomerID: uuid.New(),
			StartDate:  date("2024-09-01"),
			EndDate:    date("2024-09-10"),
			Billboards: []port.BillboardSelection{{BillboardID: bbID}},
		}
	}

	tests := []struct {
		name   string
		modify func(*port.CreateCampaignReq)
		want   error
	}{
		{"no billboards", func(r *port.CreateCampaignReq) { r.Billboards = nil }, domain.ErrValidation},
		{"no start", func(r *port.CreateCampaignReq) { r.StartDate = domain.Date{} }, domain.ErrValidation},
		{"reversed", func(r *port.CreateCampaignReq) { r.StartDate = date("2024-09-11") }, domain.ErrInvalidState},
		{"same billboard twice", func(r *port.CreateCampaignReq) {
			r.Billboards = append(r.Billboards, port.BillboardSelection{BillboardID: bbID, SlotNumber: slot(1)})
		}, domain.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newRepoMocks(t)
			req := base()
			tt.modify(&req)
			_, err := newCampaignService(m).CreateCampaign(ctx, req)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("unknown billboard", func(t *testing.T) {
		m := newRepoMocks(t)
		req := base()
		m.customers.EXPECT().Get(mock.Anything, req.CustomerID).Return(&domain.Customer{ID: req.CustomerID}, nil)
		m.billboards.EXPECT().Lock(mock.Anything, []uuid.UUID{bbID}).Return(nil)
		m.billboards.EXPECT().GetMany(mock.Anything, []uuid.UUID{bbID}).Return(nil, nil)

		_, err := newCampaignService(m).CreateCampaign(ctx, req)
		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.Contains(t, err.Error(), bbID.String())
		m.campaigns.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCreateCampaign_PricesBillboardsReadUnderLock(t *testing.T) {
	ctx := context.Background()
	m := newRepoMocks(t)
	customer := &domain.Customer{ID: uuid.New(), Name: "Acme"}
	bb := staticBillboard("X-01", "1000")
	repriced := *bb
	repriced.RatePerDay = money("1200")

	locked := false
	m.customers.EXPECT().Get(mock.Anything, customer.ID).Return(customer, nil)
	m.billboards.EXPECT().
		Lock(mock.Anything, []uuid.UUID{bb.ID}).
		Run(func(context.Context, []uuid.UUID) { locked = true }).
		Return(nil)
	m.billboards.EXPECT().
		GetMany(mock.Anything, []uuid.UUID{bb.ID}).
		RunAndReturn(func(context.Context, []uuid.UUID) ([]domain.Billboard, error) {
			assert.True(t, locked, "billboards must be loaded after the row lock")
			return []domain.Billboard{repriced}, nil
		})
	m.bookings.EXPECT().FindOverlapping(mock.Anything, mock.Anything).Return(nil, nil)
	m.sequence(domain.SequenceCampaign, "CP-2024-0002")
	m.sequence(domain.SequenceBooking, "BK-2024-0020")
	m.campaigns.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.campaigns.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	detail, err := newCampaignService(m).CreateCampaign(ctx, port.CreateCampaignReq{
		CustomerID: customer.ID,
		StartDate:  date("2024-09-01"),
		EndDate:    date("2024-09-10"),
		Billboards: []port.BillboardSelection{{BillboardID: bb.ID}},
	})
	require.NoError(t, err)
	assert.Equal(t, "12000.00", detail.TotalValue.StringFixed(2))
	assert.Equal(t, "12000.00", detail.Bookings[0].NotionalValue.StringFixed(2))
}

func TestValidateSelections(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	tests := []struct {
		name string
		sels []port.BillboardSelection
		ok   bool
	}{
		{"distinct billboards", []port.BillboardSelection{{BillboardID: a}, {BillboardID: b}}, true},
		{"distinct slots", []port.BillboardSelection{{BillboardID: a, SlotNumber: slot(1)}, {BillboardID: a, SlotNumber: slot(2)}}, true},
		{"same slot", []port.BillboardSelection{{BillboardID: a, SlotNumber: slot(1)}, {BillboardID: a, SlotNumber: slot(1)}}, false},
		{"whole and slot", []port.BillboardSelection{{BillboardID: a}, {BillboardID: a, SlotNumber: slot(2)}}, false},
		{"nil id", []port.BillboardSelection{{}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSelections(tt.sels)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrValidation)
			}
		})
	}
}

func TestAvailableBillboards(t *testing.T) {
	ctx := context.Background()
	m := newRepoMocks(t)
	static := staticBillboard("X-01", "1000")
	digital := digitalBillboard("D-01", "250", 3)
	taken := booking("BK-2024-0001", digital, "2024-09-01", "2024-09-30", domain.BookingActive)
	taken.SlotNumber = slot(2)

	active := domain.BillboardActive
	m.billboards.EXPECT().List(mock.Anything, &active).Return([]domain.Billboard{*static, *digital}, nil)
	m.bookings.EXPECT().
		FindOverlapping(mock.Anything, mock.MatchedBy(func(q port.OverlapQuery) bool { return q.BillboardID == static.ID })).
		Return(nil, nil)
	m.bookings.EXPECT().
		FindOverlapping(mock.Anything, mock.MatchedBy(func(q port.OverlapQuery) bool { return q.BillboardID == digital.ID })).
		Return([]domain.Booking{taken}, nil)

	got, err := newCampaignService(m).AvailableBillboards(ctx, date("2024-09-10"), date("2024-09-12"))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].IsAvailable)
	assert.Empty(t, got[0].FreeSlots)
	assert.True(t, got[1].IsAvailable)
	assert.Equal(t, []int{1, 3}, got[1].FreeSlots)
}

func TestAvailableBillboards_FullyBookedDigital(t *testing.T) {
	ctx := context.Background()
	m := newRepoMocks(t)
	static := staticBillboard("X-01", "1000")
	digital := digitalBillboard("D-01", "250", 3)
	// booked as a whole: holds every slot
	whole := booking("BK-2024-0001", digital, "2024-09-01", "2024-09-30", domain.BookingActive)

	active := domain.BillboardActive
	m.billboards.EXPECT().List(mock.Anything, &active).Return([]domain.Billboard{*static, *digital}, nil)
	m.bookings.EXPECT().
		FindOverlapping(mock.Anything, mock.MatchedBy(func(q port.OverlapQuery) bool { return q.BillboardID == static.ID })).
		Return(nil, nil)
	m.bookings.EXPECT().
		FindOverlapping(mock.Anything, mock.MatchedBy(func(q port.OverlapQuery) bool { return q.BillboardID == digital.ID })).
		Return([]domain.Booking{whole}, nil)

	got, err := newCampaignService(m).AvailableBillboards(ctx, date("2024-09-10"), date("2024-09-12"))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.False(t, got[1].IsAvailable)
	assert.NotNil(t, got[1].FreeSlots)
	assert.Empty(t, got[1].FreeSlots)

	out, err := json.Marshal(got)
	require.NoError(t, err)
	var raw []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &raw))
	assert.Equal(t, "null", string(raw[0]["freeSlots"]))
	assert.Equal(t, "[]", string(raw[1]["freeSlots"]))
}

func TestAddBooking(t *testing.T) {
	ctx := context.Background()
	bb := staticBillboard("X-01", "100")

	t.Run("other customer", func(t *testing.T) {
		m := newRepoMocks(t)
		camp := &domain.Campaign{ID: uuid.New(), CustomerID: uuid.New(), ReferenceCode: "CP-2024-0001"}
		b := booking("BK-2024-0001", bb, "2024-07-01", "2024-07-10", domain.BookingCreated)
		m.campaigns.EXPECT().Get(mock.Anything, camp.ID).Return(camp, nil)
		m.bookings.EXPECT().Get(mock.Anything, b.ID).Return(&b, nil)

		_, err := newCampaignService(m).AddBooking(ctx, camp.ID, b.ID)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("moves between campaigns", func(t *testing.T) {
		m := newRepoMocks(t)
		b := booking("BK-2024-0001", bb, "2024-07-01", "2024-07-10", domain.BookingCreated)
		prev := &domain.Campaign{ID: uuid.New(), CustomerID: b.CustomerID, TotalValue: money("1000")}
		next := &domain.Campaign{ID: uuid.New(), CustomerID: b.CustomerID}
		b.CampaignID = &prev.ID

		m.campaigns.EXPECT().Get(mock.Anything, next.ID).Return(next, nil)
		m.campaigns.EXPECT().Get(mock.Anything, prev.ID).Return(prev, nil)
		m.bookings.EXPECT().Get(mock.Anything, b.ID).Return(&b, nil)
		m.bookings.EXPECT().Update(mock.Anything, &b).Return(nil)
		m.bookings.EXPECT().ListByCampaign(mock.Anything, prev.ID).Return(nil, nil)
		m.bookings.EXPECT().
			ListByCampaign(mock.Anything, next.ID).
			RunAndReturn(func(context.Context, uuid.UUID) ([]domain.Booking, error) {
				return []domain.Booking{b}, nil
			})
		m.campaigns.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Times(2)

		detail, err := newCampaignService(m).AddBooking(ctx, next.ID, b.ID)
		require.NoError(t, err)
		assert.True(t, prev.TotalValue.IsZero())
		assert.Nil(t, prev.StartDate)
		assert.Equal(t, "1000.00", next.TotalValue.StringFixed(2))
		require.Len(t, detail.Bookings, 1)
		assert.Equal(t, next.ID, *detail.Bookings[0].CampaignID)
	})
}

func TestRemoveBooking_NotMember(t *testing.T) {
	m := newRepoMocks(t)
	bb := staticBillboard("X-01", "100")
	b := booking("BK-2024-0001", bb, "2024-07-01", "2024-07-10", domain.BookingCreated)
	camp := &domain.Campaign{ID: uuid.New(), CustomerID: b.CustomerID}
	m.campaigns.EXPECT().Get(mock.Anything, camp.ID).Return(camp, nil)
	m.bookings.EXPECT().Get(mock.Anything, b.ID).Return(&b, nil)

	_, err := newCampaignService(m).RemoveBooking(context.Background(), camp.ID, b.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestDeleteCampaign(t *testing.T) {
	ctx := context.Background()
	bb := staticBillboard("X-01", "100")

	t.Run("with members", func(t *testing.T) {
		m := newRepoMocks(t)
		camp := &domain.Campaign{ID: uuid.New(), ReferenceCode: "CP-2024-0001"}
		m.campaigns.EXPECT().Get(mock.Anything, camp.ID).Return(camp, nil)
		m.bookings.EXPECT().
			ListByCampaign(mock.Anything, camp.ID).
			Return([]domain.Booking{booking("BK-2024-0001", bb, "2024-07-01", "2024-07-10", domain.BookingCreated)}, nil)

		err := newCampaignService(m).DeleteCampaign(ctx, camp.ID)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("empty", func(t *testing.T) {
		m := newRepoMocks(t)
		camp := &domain.Campaign{ID: uuid.New(), ReferenceCode: "CP-2024-0002"}
		m.campaigns.EXPECT().Get(mock.Anything, camp.ID).Return(camp, nil)
		m.bookings.EXPECT().ListByCampaign(mock.Anything, camp.ID).Return(nil, nil)
		m.campaigns.EXPECT().Delete(mock.Anything, camp.ID).Return(nil)

		require.NoError(t, newCampaignService(m).DeleteCampaign(ctx, camp.ID))
	})
}

func TestGetCampaign(t *testing.T) {
	m := newRepoMocks(t)
	bb := staticBillboard("X-01", "100")
	camp := &domain.Campaign{ID: uuid.New(), ReferenceCode: "CP-2024-0003"}
	m.campaigns.EXPECT().Get(mock.Anything, camp.ID).Return(camp, nil)
	m.bookings.EXPECT().
		ListByCampaign(mock.Anything, camp.ID).
		Return([]domain.Booking{booking("BK-2024-0007", bb, "2024-07-01", "2024-07-10", domain.BookingConfirmed)}, nil)

	got, err := newCampaignService(m).GetCampaign(context.Background(), camp.ID)
	require.NoError(t, err)
	assert.Equal(t, "CP-2024-0003", got.ReferenceCode)
	require.Len(t, got.Bookings, 1)
	assert.Equal(t, "BK-2024-0007", got.Bookings[0].ReferenceCode)

	missing := uuid.New()
	m.campaigns.EXPECT().Get(mock.Anything, missing).Return(nil, nil)
	_, err = newCampaignService(m).GetCampaign(context.Background(), missing)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListCampaigns(t *testing.T) {
	m := newRepoMocks(t)
	m.campaigns.EXPECT().List(mock.Anything, 100, 0).Return(nil, nil)
	m.campaigns.EXPECT().Count(mock.Anything).Return(int64(0), nil)

	page, err := newCampaignService(m).ListCampaigns(context.Background(), 500, -3)
	require.NoError(t, err)
	assert.Equal(t, 100, page.Limit)
	assert.Equal(t, 0, page.Offset)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}

func TestUpdateCampaign(t *testing.T) {
	ctx := context.Background()

	t.Run("renames", func(t *testing.T) {
		m := newRepoMocks(t)
		camp := &domain.Campaign{ID: uuid.New(), Name: "Summer", TotalValue: money("1000")}
		m.campaigns.EXPECT().Get(mock.Anything, camp.ID).Return(camp, nil)
		m.campaigns.EXPECT().
			Update(mock.Anything, mock.MatchedBy(func(c *domain.Campaign) bool {
				return c.Name == "Summer sale" && c.TotalValue.Equal(money("1000"))
			})).
			Return(nil)

		name := "Summer sale"
		got, err := newCampaignService(m).UpdateCampaign(ctx, camp.ID, port.UpdateCampaignReq{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Summer sale", got.Name)
	})

	t.Run("blank name", func(t *testing.T) {
		m := newRepoMocks(t)
		camp := &domain.Campaign{ID: uuid.New(), Name: "Summer"}
		m.campaigns.EXPECT().Get(mock.Anything, camp.ID).Return(camp, nil)

		blank := "  "
		_, err := newCampaignService(m).UpdateCampaign(ctx, camp.ID, port.UpdateCampaignReq{Name: &blank})
		assert.ErrorIs(t, err, domain.ErrValidation)
		m.campaigns.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
