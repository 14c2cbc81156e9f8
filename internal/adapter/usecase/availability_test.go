package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billboard-ops/internal/core/domain"
	"billboard-ops/internal/core/port"
)

func TestCheckAvailability_StaticOverlap(t *testing.T) {
	bb := staticBillboard("X-01", "1000")
	first := booking("BK-2024-0001", bb, "2024-07-01", "2024-07-10", domain.BookingCreated)

	tests := []struct {
		name      string
		start     string
		end       string
		available bool
	}{
		{"inside", "2024-07-05", "2024-07-08", false},
		{"covers", "2024-06-25", "2024-07-15", false},
		{"touches start", "2024-06-25", "2024-07-01", false},
		{"touches end", "2024-07-10", "2024-07-12", false},
		{"day before", "2024-06-20", "2024-06-30", true},
		{"day after", "2024-07-11", "2024-07-20", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := port.AvailabilityQuery{BillboardID: bb.ID, StartDate: date(tt.start), EndDate: date(tt.end)}
			got := conflictsFor(bb, []domain.Booking{first}, q, port.ScopeAuto)
			assert.Equal(t, tt.available, len(got) == 0)
		})
	}
}

func TestCheckAvailability_StaticIgnoresSlot(t *testing.T) {
	bb := staticBillboard("X-01", "1000")
	first := booking("BK-2024-0001", bb, "2024-07-01", "2024-07-10", domain.BookingConfirmed)

	q := port.AvailabilityQuery{BillboardID: bb.ID, StartDate: date("2024-07-02"), EndDate: date("2024-07-03"), SlotNumber: slot(3)}
	got := conflictsFor(bb, []domain.Booking{first}, q, port.ScopeAuto)
	require.Len(t, got, 1)
	assert.Equal(t, "BK-2024-0001", got[0].ReferenceCode)
}

func TestCheckAvailability_DigitalSlots(t *testing.T) {
	const slots = 4
	bb := digitalBillboard("D-01", "500", slots)

	// every slot booked over the same dates
	var existing []domain.Booking
	for n := 1; n <= slots; n++ {
		b := booking(domain.FormatReference("BK", 2024, int64(n)), bb, "2024-08-01", "2024-08-31", domain.BookingCreated)
		b.SlotNumber = slot(n)
		q := port.AvailabilityQuery{BillboardID: bb.ID, StartDate: b.StartDate, EndDate: b.EndDate, SlotNumber: slot(n)}
		require.Empty(t, conflictsFor(bb, existing, q, port.ScopeAuto), "slot %d should be free", n)
		existing = append(existing, b)
	}

	q := port.AvailabilityQuery{BillboardID: bb.ID, StartDate: date("2024-08-15"), EndDate: date("2024-08-20"), SlotNumber: slot(2)}
	got := conflictsFor(bb, existing, q, port.ScopeAuto)
	require.Len(t, got, 1)
	assert.Equal(t, 2, *got[0].SlotNumber)

	t.Run("no slot conflicts with every booking", func(t *testing.T) {
		q := port.AvailabilityQuery{BillboardID: bb.ID, StartDate: date("2024-08-15"), EndDate: date("2024-08-20")}
		assert.Len(t, conflictsFor(bb, existing, q, port.ScopeAuto), slots)
	})

	t.Run("billboard scope ignores the slot", func(t *testing.T) {
		assert.Len(t, conflictsFor(bb, existing, q, port.ScopeBillboard), slots)
	})
}

func TestCheckAvailability_WholeDigitalBookingBlocksSlots(t *testing.T) {
	bb := digitalBillboard("D-02", "500", 3)
	whole := booking("BK-2024-0010", bb, "2024-08-01", "2024-08-31", domain.BookingConfirmed)

	for n := 1; n <= 3; n++ {
		q := port.AvailabilityQuery{BillboardID: bb.ID, StartDate: date("2024-08-10"), EndDate: date("2024-08-12"), SlotNumber: slot(n)}
		for _, scope := range []port.AvailabilityScope{port.ScopeAuto, port.ScopeSlot} {
			got := conflictsFor(bb, []domain.Booking{whole}, q, scope)
			require.Len(t, got, 1, "slot %d scope %s", n, scope)
			assert.Equal(t, "BK-2024-0010", got[0].ReferenceCode)
		}
	}

	// the selection rule agrees: a whole-billboard selection collides with any slot
	err := validateSelections([]port.BillboardSelection{{BillboardID: bb.ID}, {BillboardID: bb.ID, SlotNumber: slot(1)}})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCheckAvailability_IgnoresCancelledAndExcluded(t *testing.T) {
	bb := staticBillboard("X-01", "1000")
	cancelled := booking("BK-2024-0001", bb, "2024-07-01", "2024-07-10", domain.BookingCancelled)
	own := booking("BK-2024-0002", bb, "2024-07-11", "2024-07-20", domain.BookingCreated)

	q := port.AvailabilityQuery{
		BillboardID:      bb.ID,
		StartDate:        date("2024-07-05"),
		EndDate:          date("2024-07-15"),
		ExcludeBookingID: &own.ID,
	}
	assert.Empty(t, conflictsFor(bb, []domain.Booking{cancelled, own}, q, port.ScopeAuto))
}

func TestCheckAvailability(t *testing.T) {
	ctx := context.Background()
	bb := staticBillboard("X-01", "1000")
	first := booking("BK-2024-0001", bb, "2024-07-01", "2024-07-10", domain.BookingCreated)

	m := newRepoMocks(t)
	m.billboards.EXPECT().Get(mock.Anything, bb.ID).Return(bb, nil)
	m.bookings.EXPECT().
		FindOverlapping(mock.Anything, port.OverlapQuery{
			BillboardID: bb.ID,
			StartDate:   date("2024-07-05"),
			EndDate:     date("2024-07-08"),
		}).
		Return([]domain.Booking{first}, nil)

	svc := NewAvailabilityService(m.billboards, m.bookings)
	q := port.AvailabilityQuery{BillboardID: bb.ID, StartDate: date("2024-07-05"), EndDate: date("2024-07-08")}

	res, err := svc.CheckAvailability(ctx, q)
	require.NoError(t, err)
	assert.False(t, res.Available)
	assert.Equal(t, []string{"BK-2024-0001"}, domain.ReferenceCodes(res.Conflicts))

	// no writes in between: same answer
	again, err := svc.CheckAvailability(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, res, again)
}

func TestCheckAvailability_Errors(t *testing.T) {
	ctx := context.Background()
	digital := digitalBillboard("D-01", "500", 3)

	t.Run("unknown billboard", func(t *testing.T) {
		m := newRepoMocks(t)
		id := uuid.New()
		m.billboards.EXPECT().Get(mock.Anything, id).Return(nil, nil)

		svc := NewAvailabilityService(m.billboards, m.bookings)
		_, err := svc.CheckAvailability(ctx, port.AvailabilityQuery{BillboardID: id, StartDate: date("2024-01-01"), EndDate: date("2024-01-02")})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	tests := []struct {
		name string
		q    port.AvailabilityQuery
		want error
	}{
		{
			name: "start after end",
			q:    port.AvailabilityQuery{StartDate: date("2024-01-05"), EndDate: date("2024-01-01")},
			want: domain.ErrInvalidState,
		},
		{
			name: "slot scope without slot",
			q:    port.AvailabilityQuery{StartDate: date("2024-01-01"), EndDate: date("2024-01-05"), Scope: port.ScopeSlot},
			want: domain.ErrValidation,
		},
		{
			name: "slot out of range",
			q:    port.AvailabilityQuery{StartDate: date("2024-01-01"), EndDate: date("2024-01-05"), SlotNumber: slot(4)},
			want: domain.ErrValidation,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newRepoMocks(t)
			m.billboards.EXPECT().Get(mock.Anything, digital.ID).Return(digital, nil)

			tt.q.BillboardID = digital.ID
			svc := NewAvailabilityService(m.billboards, m.bookings)
			_, err := svc.CheckAvailability(ctx, tt.q)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
