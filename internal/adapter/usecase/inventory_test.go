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

func TestRegisterBillboard(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		req  port.RegisterBillboardReq
		want error
	}{
		{
			name: "static",
			req:  port.RegisterBillboardReq{Code: "X-01", Name: "Ring road", Type: domain.BillboardStatic, RatePerDay: money("1000")},
		},
		{
			name: "digital",
			req:  port.RegisterBillboardReq{Code: "D-01", Name: "Station", Type: domain.BillboardDigital, SlotCount: 20, RatePerDay: money("250")},
		},
		{
			name: "digital without slots",
			req:  port.RegisterBillboardReq{Code: "D-02", Name: "Mall", Type: domain.BillboardDigital, RatePerDay: money("250")},
			want: domain.ErrValidation,
		},
		{
			name: "too many slots",
			req:  port.RegisterBillboardReq{Code: "D-03", Name: "Mall", Type: domain.BillboardDigital, SlotCount: 21, RatePerDay: money("250")},
			want: domain.ErrValidation,
		},
		{
			name: "static with slots",
			req:  port.RegisterBillboardReq{Code: "X-02", Name: "Bridge", Type: domain.BillboardStatic, SlotCount: 2, RatePerDay: money("100")},
			want: domain.ErrValidation,
		},
		{
			name: "negative rate",
			req:  port.RegisterBillboardReq{Code: "X-03", Name: "Bridge", Type: domain.BillboardStatic, RatePerDay: money("-1")},
			want: domain.ErrValidation,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newRepoMocks(t)
			if tt.want == nil {
				m.billboards.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Billboard")).Return(nil)
			}
			svc := NewInventoryService(m.billboards, m.customers, discardLogger())

			bb, err := svc.RegisterBillboard(ctx, tt.req)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.BillboardActive, bb.Status)
			assert.NotEqual(t, uuid.Nil, bb.ID)
		})
	}
}

func TestRegisterCustomer(t *testing.T) {
	ctx := context.Background()
	m := newRepoMocks(t)
	m.customers.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Customer")).Return(nil)
	svc := NewInventoryService(m.billboards, m.customers, discardLogger())

	c, err := svc.RegisterCustomer(ctx, port.RegisterCustomerReq{Name: "  Acme  ", Email: "ads@acme.test"})
	require.NoError(t, err)
	assert.Equal(t, "Acme", c.Name)

	_, err = svc.RegisterCustomer(ctx, port.RegisterCustomerReq{Name: " "})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGetBillboard_NotFound(t *testing.T) {
	m := newRepoMocks(t)
	id := uuid.New()
	m.billboards.EXPECT().Get(mock.Anything, id).Return(nil, nil)

	_, err := NewInventoryService(m.billboards, m.customers, discardLogger()).GetBillboard(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
