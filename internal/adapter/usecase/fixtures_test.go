package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"billboard-ops/internal/core/domain"
	"billboard-ops/internal/core/port/mocks"
)

// repoMocks wires every outbound port to a mockery mock. The transactor runs
// the callback directly.
type repoMocks struct {
	tx         *mocks.MockTransactor
	billboards *mocks.MockBillboardRepository
	customers  *mocks.MockCustomerRepository
	bookings   *mocks.MockBookingRepository
	campaigns  *mocks.MockCampaignRepository
	pos        *mocks.MockPurchaseOrderRepository
	seq        *mocks.MockSequencer
	events     *mocks.MockEventPublisher
}

func newRepoMocks(t *testing.T) *repoMocks {
	m := &repoMocks{
		tx:         mocks.NewMockTransactor(t),
		billboards: mocks.NewMockBillboardRepository(t),
		customers:  mocks.NewMockCustomerRepository(t),
		bookings:   mocks.NewMockBookingRepository(t),
		campaigns:  mocks.NewMockCampaignRepository(t),
		pos:        mocks.NewMockPurchaseOrderRepository(t),
		seq:        mocks.NewMockSequencer(t),
		events:     mocks.NewMockEventPublisher(t),
	}
	m.tx.EXPECT().
		WithinTx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		Maybe()
	m.events.EXPECT().
		PublishBookingEvents(mock.Anything, mock.Anything).
		Return(nil).
		Maybe()
	return m
}

func (m *repoMocks) repos() Repositories {
	return Repositories{
		Tx:             m.tx,
		Billboards:     m.billboards,
		Customers:      m.customers,
		Bookings:       m.bookings,
		Campaigns:      m.campaigns,
		PurchaseOrders: m.pos,
	}
}

// sequence makes the sequencer hand out the given codes for entity in order.
func (m *repoMocks) sequence(entity domain.SequenceEntity, codes ...string) {
	for _, c := range codes {
		m.seq.EXPECT().Next(mock.Anything, entity).Return(c, nil).Once()
	}
}

// lockable expects the billboard row lock followed by a load of bb.
func (m *repoMocks) lockable(bb *domain.Billboard) {
	m.billboards.EXPECT().Lock(mock.Anything, []uuid.UUID{bb.ID}).Return(nil)
	m.billboards.EXPECT().Get(mock.Anything, bb.ID).Return(bb, nil)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func date(s string) domain.Date {
	return domain.MustParseDate(s)
}

func slot(n int) *int {
	return &n
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func staticBillboard(code, rate string) *domain.Billboard {
	return &domain.Billboard{
		ID:         uuid.New(),
		Code:       code,
		Name:       code,
		Type:       domain.BillboardStatic,
		RatePerDay: money(rate),
		Status:     domain.BillboardActive,
	}
}

func digitalBillboard(code, rate string, slots int) *domain.Billboard {
	return &domain.Billboard{
		ID:         uuid.New(),
		Code:       code,
		Name:       code,
		Type:       domain.BillboardDigital,
		SlotCount:  slots,
		RatePerDay: money(rate),
		Status:     domain.BillboardActive,
	}
}

func booking(code string, bb *domain.Billboard, start, end string, status domain.BookingStatus) domain.Booking {
	return domain.Booking{
		ID:            uuid.New(),
		ReferenceCode: code,
		CustomerID:    uuid.New(),
		BillboardID:   bb.ID,
		StartDate:     date(start),
		EndDate:       date(end),
		NotionalValue: bb.ValueFor(date(start), date(end)),
		Status:        status,
	}
}
