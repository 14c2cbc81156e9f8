package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billboard-ops/internal/core/domain"
	"billboard-ops/internal/core/port"
	"billboard-ops/internal/core/port/mocks"
)

type serviceMocks struct {
	availability *mocks.MockAvailabilityUseCase
	bookings     *mocks.MockBookingUseCase
	campaigns    *mocks.MockCampaignUseCase
	settlement   *mocks.MockSettlementUseCase
	inventory    *mocks.MockInventoryUseCase
}

func newTestHandler(t *testing.T) (*Handler, serviceMocks) {
	m := serviceMocks{
		availability: mocks.NewMockAvailabilityUseCase(t),
		bookings:     mocks.NewMockBookingUseCase(t),
		campaigns:    mocks.NewMockCampaignUseCase(t),
		settlement:   mocks.NewMockSettlementUseCase(t),
		inventory:    mocks.NewMockInventoryUseCase(t),
	}
	h := NewHandler(Services{
		Availability: m.availability,
		Bookings:     m.bookings,
		Campaigns:    m.campaigns,
		Settlement:   m.settlement,
		Inventory:    m.inventory,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return h, m
}

func serve(h *Handler, method, target, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthz(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := serve(h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestMetrics(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := serve(h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateBooking(t *testing.T) {
	h, m := newTestHandler(t)
	customerID, billboardID := uuid.New(), uuid.New()

	m.bookings.EXPECT().
		CreateBooking(mock.Anything, mock.MatchedBy(func(req port.CreateBookingReq) bool {
			return req.CustomerID == customerID &&
				req.BillboardID == billboardID &&
				req.StartDate.Equal(domain.MustParseDate("2024-07-01")) &&
				req.EndDate.Equal(domain.MustParseDate("2024-07-10"))
		})).
		Return(&domain.Booking{
			ID:            uuid.New(),
			ReferenceCode: "BK-2024-0001",
			CustomerID:    customerID,
			BillboardID:   billboardID,
			StartDate:     domain.MustParseDate("2024-07-01"),
			EndDate:       domain.MustParseDate("2024-07-10"),
			NotionalValue: decimal.RequireFromString("5000.00"),
			Status:        domain.BookingCreated,
		}, nil)

	body := `{"customerId":"` + customerID.String() + `","billboardId":"` + billboardID.String() +
		`","startDate":"2024-07-01","endDate":"2024-07-10"}`
	rec := serve(h, http.MethodPost, "/api/v1/bookings", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got domain.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "BK-2024-0001", got.ReferenceCode)
	assert.Equal(t, "5000", got.NotionalValue.String())
}

func TestCreateBooking_Conflict(t *testing.T) {
	h, m := newTestHandler(t)
	m.bookings.EXPECT().
		CreateBooking(mock.Anything, mock.Anything).
		Return(nil, domain.Conflict("billboard is not available", "BK-2024-0001"))

	body := `{"customerId":"` + uuid.NewString() + `","billboardId":"` + uuid.NewString() +
		`","startDate":"2024-07-05","endDate":"2024-07-15"}`
	rec := serve(h, http.MethodPost, "/api/v1/bookings", body)

	require.Equal(t, http.StatusConflict, rec.Code)
	got := decodeError(t, rec)
	assert.Equal(t, "billboard is not available", got.Error)
	assert.Equal(t, []string{"BK-2024-0001"}, got.Conflicts)
}

func TestCreateBooking_BadJSON(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := serve(h, http.MethodPost, "/api/v1/bookings", `{"customerId":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(h, http.MethodPost, "/api/v1/bookings", `{"unknown":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", domain.NotFound("booking", "x"), http.StatusNotFound},
		{"conflict", domain.Conflict("taken"), http.StatusConflict},
		{"invalid state", domain.InvalidState("booking is finalized"), http.StatusBadRequest},
		{"validation", domain.Validation("bad range"), http.StatusBadRequest},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			id := uuid.New()
			m.bookings.EXPECT().GetBooking(mock.Anything, id).Return(nil, tt.err)

			rec := serve(h, http.MethodGet, "/api/v1/bookings/"+id.String(), "")
			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusInternalServerError {
				assert.Equal(t, "internal error", decodeError(t, rec).Error)
			}
		})
	}
}

func TestGetBooking_InvalidID(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := serve(h, http.MethodGet, "/api/v1/bookings/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListBookings_Filter(t *testing.T) {
	h, m := newTestHandler(t)
	billboardID := uuid.New()

	m.bookings.EXPECT().
		ListBookings(mock.Anything, mock.MatchedBy(func(f port.BookingFilter) bool {
			return f.BillboardID != nil && *f.BillboardID == billboardID &&
				f.Status != nil && *f.Status == domain.BookingCancelled &&
				f.From != nil && f.From.Equal(domain.MustParseDate("2024-01-01")) &&
				f.To == nil && f.CustomerID == nil &&
				f.Limit == 10 && f.Offset == 20
		})).
		Return(&port.Page[domain.Booking]{Items: []domain.Booking{}, Total: 0, Limit: 10, Offset: 20}, nil)

	rec := serve(h, http.MethodGet, "/api/v1/bookings?billboardId="+billboardID.String()+
		"&status=cancelled&from=2024-01-01&limit=10&offset=20", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListBookings_InvalidParams(t *testing.T) {
	h, _ := newTestHandler(t)
	for _, q := range []string{"status=archived", "from=01/02/2024", "limit=ten", "customerId=42"} {
		rec := serve(h, http.MethodGet, "/api/v1/bookings?"+q, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestCheckAvailability(t *testing.T) {
	h, m := newTestHandler(t)
	billboardID, exclude := uuid.New(), uuid.New()

	m.availability.EXPECT().
		CheckAvailability(mock.Anything, mock.MatchedBy(func(q port.AvailabilityQuery) bool {
			return q.BillboardID == billboardID &&
				q.SlotNumber != nil && *q.SlotNumber == 3 &&
				q.ExcludeBookingID != nil && *q.ExcludeBookingID == exclude &&
				q.Scope == port.ScopeSlot
		})).
		Return(&port.AvailabilityResult{Available: true, Conflicts: []domain.Booking{}}, nil)

	rec := serve(h, http.MethodGet, "/api/v1/billboards/"+billboardID.String()+
		"/availability?startDate=2024-07-01&endDate=2024-07-10&slotNumber=3&excludeBookingId="+
		exclude.String()+"&scope=slot", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got port.AvailabilityResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Available)
}

func TestCheckAvailability_MissingDates(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := serve(h, http.MethodGet, "/api/v1/billboards/"+uuid.NewString()+"/availability?startDate=2024-07-01", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Error, "endDate")

	rec = serve(h, http.MethodGet, "/api/v1/billboards/"+uuid.NewString()+
		"/availability?startDate=2024-07-01&endDate=2024-07-02&scope=everything", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShortClose(t *testing.T) {
	h, m := newTestHandler(t)
	id := uuid.New()
	m.bookings.EXPECT().
		ShortClose(mock.Anything, id, domain.MustParseDate("2024-07-05"), "client withdrew").
		Return(&domain.Booking{ID: id, Status: domain.BookingCompleted}, nil)

	rec := serve(h, http.MethodPost, "/api/v1/bookings/"+id.String()+"/short-close",
		`{"actualEndDate":"2024-07-05","reason":"client withdrew"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCancelBooking_EmptyBody(t *testing.T) {
	h, m := newTestHandler(t)
	id := uuid.New()
	m.bookings.EXPECT().
		CancelBooking(mock.Anything, id, "").
		Return(&domain.Booking{ID: id, Status: domain.BookingCancelled}, nil)

	rec := serve(h, http.MethodPost, "/api/v1/bookings/"+id.String()+"/cancel", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateStatus(t *testing.T) {
	h, m := newTestHandler(t)
	id := uuid.New()
	m.bookings.EXPECT().
		UpdateStatus(mock.Anything, id, "confirmed").
		Return(&domain.Booking{ID: id, Status: domain.BookingConfirmed}, nil)

	rec := serve(h, http.MethodPatch, "/api/v1/bookings/"+id.String()+"/status", `{"status":"confirmed"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteBooking(t *testing.T) {
	h, m := newTestHandler(t)
	id := uuid.New()
	m.bookings.EXPECT().DeleteBooking(mock.Anything, id).Return(nil)

	rec := serve(h, http.MethodDelete, "/api/v1/bookings/"+id.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestProRata(t *testing.T) {
	h, m := newTestHandler(t)
	id := uuid.New()
	m.settlement.EXPECT().
		CalculateProRata(mock.Anything, id, domain.MustParseDate("2024-07-01"), domain.MustParseDate("2024-07-07")).
		Return(&domain.ProRata{
			BookingID:            id,
			OriginalDays:         10,
			ActualDays:           7,
			Adjustment:           decimal.RequireFromString("-1500.00"),
			AdjustmentPercentage: "-30.00",
		}, nil)

	rec := serve(h, http.MethodGet, "/api/v1/bookings/"+id.String()+
		"/pro-rata?actualStartDate=2024-07-01&actualEndDate=2024-07-07", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.ProRata
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "-30.00", got.AdjustmentPercentage)
	assert.Equal(t, 7, got.ActualDays)
}

func TestCampaignBookings(t *testing.T) {
	h, m := newTestHandler(t)
	campaignID, bookingID := uuid.New(), uuid.New()
	detail := &port.CampaignDetail{Campaign: domain.Campaign{ID: campaignID}}

	m.campaigns.EXPECT().AddBooking(mock.Anything, campaignID, bookingID).Return(detail, nil)
	m.campaigns.EXPECT().RemoveBooking(mock.Anything, campaignID, bookingID).Return(detail, nil)

	target := "/api/v1/campaigns/" + campaignID.String() + "/bookings/" + bookingID.String()
	assert.Equal(t, http.StatusOK, serve(h, http.MethodPost, target, "").Code)
	assert.Equal(t, http.StatusOK, serve(h, http.MethodDelete, target, "").Code)
}

func TestDeleteCampaign_HasBookings(t *testing.T) {
	h, m := newTestHandler(t)
	id := uuid.New()
	m.campaigns.EXPECT().
		DeleteCampaign(mock.Anything, id).
		Return(domain.InvalidState("campaign still has 2 bookings"))

	rec := serve(h, http.MethodDelete, "/api/v1/campaigns/"+id.String(), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAvailableBillboards(t *testing.T) {
	h, m := newTestHandler(t)
	m.campaigns.EXPECT().
		AvailableBillboards(mock.Anything, domain.MustParseDate("2024-08-01"), domain.MustParseDate("2024-08-31")).
		Return([]port.BillboardAvailability{{IsAvailable: true, FreeSlots: []int{1, 2}}}, nil)

	rec := serve(h, http.MethodGet, "/api/v1/availability?startDate=2024-08-01&endDate=2024-08-31", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got []port.BillboardAvailability
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, []int{1, 2}, got[0].FreeSlots)
}

func TestCreatePurchaseOrder_Duplicate(t *testing.T) {
	h, m := newTestHandler(t)
	bookingID := uuid.New()
	m.settlement.EXPECT().
		CreatePurchaseOrder(mock.Anything, port.CreatePurchaseOrderReq{BookingID: bookingID}).
		Return(nil, domain.Conflict("purchase order already exists for booking BK-2024-0001"))

	rec := serve(h, http.MethodPost, "/api/v1/purchase-orders", `{"bookingId":"`+bookingID.String()+`"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListBillboards_Status(t *testing.T) {
	h, m := newTestHandler(t)
	m.inventory.EXPECT().
		ListBillboards(mock.Anything, mock.MatchedBy(func(s *domain.BillboardStatus) bool {
			return s != nil && *s == domain.BillboardMaintenance
		})).
		Return([]domain.Billboard{}, nil)

	rec := serve(h, http.MethodGet, "/api/v1/billboards?status=maintenance", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterCustomer(t *testing.T) {
	h, m := newTestHandler(t)
	m.inventory.EXPECT().
		RegisterCustomer(mock.Anything, port.RegisterCustomerReq{Name: "Acme"}).
		Return(&domain.Customer{ID: uuid.New(), Name: "Acme"}, nil)

	rec := serve(h, http.MethodPost, "/api/v1/customers", `{"name":"Acme"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}
