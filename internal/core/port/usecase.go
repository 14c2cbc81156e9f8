package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"billboard-ops/internal/core/domain"
)

// AvailabilityScope decides which existing bookings of a digital billboard
// count against a request.
type AvailabilityScope string

const (
	// ScopeAuto compares slot against slot when a slot number is given and
	// against every booking of the billboard when it is not.
	ScopeAuto AvailabilityScope = "auto"
	// ScopeBillboard ignores slot numbers: any overlapping booking conflicts.
	ScopeBillboard AvailabilityScope = "billboard"
	// ScopeSlot requires a slot number on digital billboards.
	ScopeSlot AvailabilityScope = "slot"
)

// ParseAvailabilityScope maps an empty string to ScopeAuto.
func ParseAvailabilityScope(s string) (AvailabilityScope, error) {
	switch AvailabilityScope(s) {
	case "", ScopeAuto:
		return ScopeAuto, nil
	case ScopeBillboard, ScopeSlot:
		return AvailabilityScope(s), nil
	}
	return "", domain.Validation("invalid availability scope %q", s)
}

type AvailabilityQuery struct {
	BillboardID      uuid.UUID
	StartDate        domain.Date
	EndDate          domain.Date
	SlotNumber       *int
	ExcludeBookingID *uuid.UUID
	Scope            AvailabilityScope
}

type AvailabilityResult struct {
	Available bool             `json:"available"`
	Conflicts []domain.Booking `json:"conflicts"`
}

// BillboardAvailability reports one active billboard over a period. For a
// digital billboard FreeSlots lists the slot numbers with no overlap and is
// empty, not nil, when every slot is taken. Static billboards have nil
// FreeSlots.
type BillboardAvailability struct {
	Billboard   domain.Billboard `json:"billboard"`
	IsAvailable bool             `json:"isAvailable"`
	FreeSlots   []int            `json:"freeSlots"`
}

// AvailabilityUseCase answers whether a billboard or slot is free.
type AvailabilityUseCase interface {
	CheckAvailability(ctx context.Context, q AvailabilityQuery) (*AvailabilityResult, error)
}

// Page is one window of a listing along with the total row count.
type Page[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

type CreateBookingReq struct {
	CustomerID    uuid.UUID        `json:"customerId"`
	BillboardID   uuid.UUID        `json:"billboardId"`
	CampaignID    *uuid.UUID       `json:"campaignId,omitempty"`
	SlotNumber    *int             `json:"slotNumber,omitempty"`
	StartDate     domain.Date      `json:"startDate"`
	EndDate       domain.Date      `json:"endDate"`
	NotionalValue *decimal.Decimal `json:"notionalValue,omitempty"`
	Notes         string           `json:"notes,omitempty"`
}

// UpdateBookingReq carries a partial update: nil fields are left unchanged.
type UpdateBookingReq struct {
	BillboardID   *uuid.UUID       `json:"billboardId,omitempty"`
	SlotNumber    *int             `json:"slotNumber,omitempty"`
	StartDate     *domain.Date     `json:"startDate,omitempty"`
	EndDate       *domain.Date     `json:"endDate,omitempty"`
	NotionalValue *decimal.Decimal `json:"notionalValue,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
}

// TouchesSchedule reports whether the update moves the booking in time or
// space and therefore needs an availability check.
func (r UpdateBookingReq) TouchesSchedule() bool {
	return r.BillboardID != nil || r.SlotNumber != nil || r.StartDate != nil || r.EndDate != nil
}

// BookingUseCase manages the lifecycle of individual bookings.
type BookingUseCase interface {
	CreateBooking(ctx context.Context, req CreateBookingReq) (*domain.Booking, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	ListBookings(ctx context.Context, f BookingFilter) (*Page[domain.Booking], error)
	UpdateBooking(ctx context.Context, id uuid.UUID, req UpdateBookingReq) (*domain.Booking, error)
	DeleteBooking(ctx context.Context, id uuid.UUID) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*domain.Booking, error)
	ShortClose(ctx context.Context, id uuid.UUID, actualEndDate domain.Date, reason string) (*domain.Booking, error)
	CancelBooking(ctx context.Context, id uuid.UUID, reason string) (*domain.Booking, error)
}

// BillboardSelection is one billboard (and optionally one slot) requested
// by a campaign.
type BillboardSelection struct {
	BillboardID uuid.UUID `json:"billboardId"`
	SlotNumber  *int      `json:"slotNumber,omitempty"`
}

type CreateCampaignReq struct {
	CustomerID uuid.UUID            `json:"customerId"`
	Name       string               `json:"name"`
	Notes      string               `json:"notes,omitempty"`
	StartDate  domain.Date          `json:"startDate"`
	EndDate    domain.Date          `json:"endDate"`
	Billboards []BillboardSelection `json:"billboards"`
}

type UpdateCampaignReq struct {
	Name  *string `json:"name,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

// CampaignDetail is a campaign together with its member bookings.
type CampaignDetail struct {
	domain.Campaign
	Bookings []domain.Booking `json:"bookings"`
}

// CampaignUseCase creates and maintains multi-billboard campaigns.
type CampaignUseCase interface {
	CreateCampaign(ctx context.Context, req CreateCampaignReq) (*CampaignDetail, error)
	GetCampaign(ctx context.Context, id uuid.UUID) (*CampaignDetail, error)
	ListCampaigns(ctx context.Context, limit, offset int) (*Page[domain.Campaign], error)
	UpdateCampaign(ctx context.Context, id uuid.UUID, req UpdateCampaignReq) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id uuid.UUID) error
	AddBooking(ctx context.Context, campaignID, bookingID uuid.UUID) (*CampaignDetail, error)
	RemoveBooking(ctx context.Context, campaignID, bookingID uuid.UUID) (*CampaignDetail, error)
	AvailableBillboards(ctx context.Context, start, end domain.Date) ([]BillboardAvailability, error)
}

type CreatePurchaseOrderReq struct {
	BookingID       uuid.UUID        `json:"bookingId"`
	ActualStartDate *domain.Date     `json:"actualStartDate,omitempty"`
	ActualEndDate   *domain.Date     `json:"actualEndDate,omitempty"`
	ActualValue     *decimal.Decimal `json:"actualValue,omitempty"`
	AdjustmentNotes string           `json:"adjustmentNotes,omitempty"`
}

// SettlementUseCase turns finished bookings into purchase orders.
type SettlementUseCase interface {
	CalculateProRata(ctx context.Context, bookingID uuid.UUID, actualStart, actualEnd domain.Date) (*domain.ProRata, error)
	CreatePurchaseOrder(ctx context.Context, req CreatePurchaseOrderReq) (*domain.PurchaseOrder, error)
	GetPurchaseOrder(ctx context.Context, id uuid.UUID) (*domain.PurchaseOrder, error)
	ListPurchaseOrders(ctx context.Context, limit, offset int) (*Page[domain.PurchaseOrder], error)
	DeletePurchaseOrder(ctx context.Context, id uuid.UUID) error
}

type RegisterBillboardReq struct {
	Code       string                 `json:"code"`
	Name       string                 `json:"name"`
	Location   string                 `json:"location"`
	Type       domain.BillboardType   `json:"type"`
	SlotCount  int                    `json:"slotCount,omitempty"`
	RatePerDay decimal.Decimal        `json:"ratePerDay"`
	Status     domain.BillboardStatus `json:"status,omitempty"`
}

type RegisterCustomerReq struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// InventoryUseCase registers the billboards and customers bookings refer to.
type InventoryUseCase interface {
	RegisterBillboard(ctx context.Context, req RegisterBillboardReq) (*domain.Billboard, error)
	GetBillboard(ctx context.Context, id uuid.UUID) (*domain.Billboard, error)
	ListBillboards(ctx context.Context, status *domain.BillboardStatus) ([]domain.Billboard, error)
	RegisterCustomer(ctx context.Context, req RegisterCustomerReq) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
}
