package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Campaign groups bookings of one customer. Its value and period are
// derived from the member bookings.
type Campaign struct {
	ID            uuid.UUID       `json:"id"`
	ReferenceCode string          `json:"referenceCode"`
	CustomerID    uuid.UUID       `json:"customerId"`
	Name          string          `json:"name"`
	Notes         string          `json:"notes,omitempty"`
	TotalValue    decimal.Decimal `json:"totalValue"`
	StartDate     *Date           `json:"startDate,omitempty"`
	EndDate       *Date           `json:"endDate,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// CampaignTotals are the derived aggregates of a campaign.
type CampaignTotals struct {
	TotalValue decimal.Decimal
	StartDate  *Date
	EndDate    *Date
}

// SummarizeBookings computes totals over the member bookings. Cancelled
// bookings are left out. An empty set yields a zero value and no period.
func SummarizeBookings(bookings []Booking) CampaignTotals {
	totals := CampaignTotals{TotalValue: decimal.Zero}
	for _, b := range bookings {
		if b.Status == BookingCancelled {
			continue
		}
		totals.TotalValue = totals.TotalValue.Add(b.NotionalValue)
		start, end := b.StartDate, b.EndDate
		if totals.StartDate == nil || start.Before(*totals.StartDate) {
			totals.StartDate = &start
		}
		if totals.EndDate == nil || end.After(*totals.EndDate) {
			totals.EndDate = &end
		}
	}
	return totals
}

// Apply copies the totals onto the campaign.
func (c *Campaign) Apply(t CampaignTotals) {
	c.TotalValue = t.TotalValue
	c.StartDate = t.StartDate
	c.EndDate = t.EndDate
}
