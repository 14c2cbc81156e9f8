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

func newSettlementService(m *repoMocks) *SettlementService {
	return NewSettlementService(m.repos(), m.seq, m.events, discardLogger())
}

func TestCalculateProRata(t *testing.T) {
	ctx := context.Background()
	m := newRepoMocks(t)
	bb := staticBillboard("X-01", "1000")
	b := booking("BK-2024-0001", bb, "2024-03-01", "2024-03-10", domain.BookingCompleted)

	m.bookings.EXPECT().Get(mock.Anything, b.ID).Return(&b, nil)
	m.billboards.EXPECT().Get(mock.Anything, bb.ID).Return(bb, nil)

	pr, err := newSettlementService(m).CalculateProRata(ctx, b.ID, date("2024-03-01"), date("2024-03-07"))
	require.NoError(t, err)
	assert.Equal(t, 10, pr.OriginalDays)
	assert.Equal(t, 7, pr.ActualDays)
	assert.Equal(t, "7000.00", pr.ActualValue.StringFixed(2))
	assert.Equal(t, "-3000.00", pr.Adjustment.StringFixed(2))
	assert.Equal(t, "-30.00", pr.AdjustmentPercentage)
}

func TestCalculateProRata_ZeroNotional(t *testing.T) {
	ctx := context.Background()
	m := newRepoMocks(t)
	bb := staticBillboard("X-01", "1000")
	b := booking("BK-2024-0001", bb, "2024-03-01", "2024-03-10", domain.BookingCompleted)
	b.NotionalValue = money("0")

	m.bookings.EXPECT().Get(mock.Anything, b.ID).Return(&b, nil)
	m.billboards.EXPECT().Get(mock.Anything, bb.ID).Return(bb, nil)

	pr, err := newSettlementService(m).CalculateProRata(ctx, b.ID, date("2024-03-01"), date("2024-03-02"))
	require.NoError(t, err)
	assert.Equal(t, "0.00", pr.AdjustmentPercentage)
	assert.Equal(t, "2000.00", pr.Adjustment.StringFixed(2))
}

func TestCalculateProRata_NotFound(t *testing.T) {
	m := newRepoMocks(t)
	id := uuid.New()
	m.bookings.EXPECT().Get(mock.Anything, id).Return(nil, nil)

	_, err := newSettlementService(m).CalculateProRata(context.Background(), id, date("2024-03-01"), date("2024-03-02"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreatePurchaseOrder(t *testing.T) {
	ctx := context.Background()
	m := newRepoMocks(t)
	bb := staticBillboard("X-01", "1000")
	b := booking("BK-2024-0001", bb, "2024-03-01", "2024-03-10", domain.BookingActive)
	require.NoError(t, b.ShortClose(date("2024-03-07"), "site works"))

	m.bookings.EXPECT().Get(mock.Anything, b.ID).Return(&b, nil)
	m.billboards.EXPECT().Get(mock.Anything, bb.ID).Return(bb, nil)
	m.pos.EXPECT().GetByBooking(mock.Anything, b.ID).Return(nil, nil)
	m.sequence(domain.SequencePurchaseOrder, "PO-2024-0001")
	m.pos.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.PurchaseOrder")).Return(nil)
	m.bookings.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(u *domain.Booking) bool {
			return u.Status == domain.BookingPOGenerated
		})).
		Return(nil)

	po, err := newSettlementService(m).CreatePurchaseOrder(ctx, port.CreatePurchaseOrderReq{BookingID: b.ID})
	require.NoError(t, err)
	assert.Equal(t, "PO-2024-0001", po.PONumber)
	assert.Equal(t, date("2024-03-01"), po.ActualStartDate)
	assert.Equal(t, date("2024-03-07"), po.ActualEndDate)
	assert.Equal(t, "7000.00", po.ActualValue.StringFixed(2))
	assert.Equal(t, domain.BookingPOGenerated, b.Status)
}

func TestCreatePurchaseOrder_Rejects(t *testing.T) {
	ctx := context.Background()
	bb := staticBillboard("X-01", "1000")

	t.Run("duplicate", func(t *testing.T) {
		m := newRepoMocks(t)
		b := booking("BK-2024-0001", bb, "2024-03-01", "2024-03-10", domain.BookingCompleted)
		m.bookings.EXPECT().Get(mock.Anything, b.ID).Return(&b, nil)
		m.billboards.EXPECT().Get(mock.Anything, bb.ID).Return(bb, nil)
		m.pos.EXPECT().GetByBooking(mock.Anything, b.ID).Return(&domain.PurchaseOrder{PONumber: "PO-2024-0003"}, nil)

		_, err := newSettlementService(m).CreatePurchaseOrder(ctx, port.CreatePurchaseOrderReq{BookingID: b.ID})
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	for _, status := range []domain.BookingStatus{domain.BookingCreated, domain.BookingInvoiced, domain.BookingCancelled} {
		t.Run(string(status), func(t *testing.T) {
			m := newRepoMocks(t)
			b := booking("BK-2024-0001", bb, "2024-03-01", "2024-03-10", status)
			m.bookings.EXPECT().Get(mock.Anything, b.ID).Return(&b, nil)
			m.billboards.EXPECT().Get(mock.Anything, bb.ID).Return(bb, nil)
			m.pos.EXPECT().GetByBooking(mock.Anything, b.ID).Return(nil, nil)

			_, err := newSettlementService(m).CreatePurchaseOrder(ctx, port.CreatePurchaseOrderReq{BookingID: b.ID})
			assert.ErrorIs(t, err, domain.ErrInvalidState)
		})
	}

	t.Run("missing booking", func(t *testing.T) {
		m := newRepoMocks(t)
		id := uuid.New()
		m.bookings.EXPECT().Get(mock.Anything, id).Return(nil, nil)

		_, err := newSettlementService(m).CreatePurchaseOrder(ctx, port.CreatePurchaseOrderReq{BookingID: id})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCreatePurchaseOrder_ExplicitValue(t *testing.T) {
	ctx := context.Background()
	m := newRepoMocks(t)
	bb := staticBillboard("X-01", "1000")
	b := booking("BK-2024-0001", bb, "2024-03-01", "2024-03-10", domain.BookingConfirmed)
	value := money("8250")
	start, end := date("2024-03-02"), date("2024-03-09")

	m.bookings.EXPECT().Get(mock.Anything, b.ID).Return(&b, nil)
	m.billboards.EXPECT().Get(mock.Anything, bb.ID).Return(bb, nil)
	m.pos.EXPECT().GetByBooking(mock.Anything, b.ID).Return(nil, nil)
	m.sequence(domain.SequencePurchaseOrder, "PO-2024-0002")
	m.pos.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.bookings.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	po, err := newSettlementService(m).CreatePurchaseOrder(ctx, port.CreatePurchaseOrderReq{
		BookingID:       b.ID,
		ActualStartDate: &start,
		ActualEndDate:   &end,
		ActualValue:     &value,
		AdjustmentNotes: "negotiated",
	})
	require.NoError(t, err)
	assert.True(t, po.ActualValue.Equal(value))
	assert.Equal(t, start, po.ActualStartDate)
	assert.Equal(t, "negotiated", po.AdjustmentNotes)
}

func TestDeletePurchaseOrder(t *testing.T) {
	ctx := context.Background()
	m := newRepoMocks(t)
	bb := staticBillboard("X-01", "1000")
	b := booking("BK-2024-0001", bb, "2024-03-01", "2024-03-10", domain.BookingPOGenerated)
	po := &domain.PurchaseOrder{ID: uuid.New(), PONumber: "PO-2024-0001", BookingID: b.ID}

	m.pos.EXPECT().Get(mock.Anything, po.ID).Return(po, nil)
	m.bookings.EXPECT().Get(mock.Anything, b.ID).Return(&b, nil)
	m.bookings.EXPECT().Update(mock.Anything, &b).Return(nil)
	m.pos.EXPECT().Delete(mock.Anything, po.ID).Return(nil)

	require.NoError(t, newSettlementService(m).DeletePurchaseOrder(ctx, po.ID))
	assert.Equal(t, domain.BookingCompleted, b.Status)

	t.Run("unknown", func(t *testing.T) {
		m := newRepoMocks(t)
		id := uuid.New()
		m.pos.EXPECT().Get(mock.Anything, id).Return(nil, nil)

		err := newSettlementService(m).DeletePurchaseOrder(ctx, id)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestGetPurchaseOrder(t *testing.T) {
	m := newRepoMocks(t)
	po := &domain.PurchaseOrder{ID: uuid.New(), PONumber: "PO-2024-0002"}
	m.pos.EXPECT().Get(mock.Anything, po.ID).Return(po, nil)

	got, err := newSettlementService(m).GetPurchaseOrder(context.Background(), po.ID)
	require.NoError(t, err)
	assert.Equal(t, "PO-2024-0002", got.PONumber)

	missing := uuid.New()
	m.pos.EXPECT().Get(mock.Anything, missing).Return(nil, nil)
	_, err = newSettlementService(m).GetPurchaseOrder(context.Background(), missing)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListPurchaseOrders(t *testing.T) {
	m := newRepoMocks(t)
	items := []domain.PurchaseOrder{{ID: uuid.New(), PONumber: "PO-2024-0001"}}
	m.pos.EXPECT().List(mock.Anything, 20, 40).Return(items, nil)
	m.pos.EXPECT().Count(mock.Anything).Return(int64(41), nil)

	page, err := newSettlementService(m).ListPurchaseOrders(context.Background(), 0, 40)
	require.NoError(t, err)
	assert.Equal(t, port.Page[domain.PurchaseOrder]{Items: items, Total: 41, Limit: 20, Offset: 40}, *page)
}
