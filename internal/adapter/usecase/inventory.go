package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"billboard-ops/internal/core/domain"
	"billboard-ops/internal/core/port"
)

// InventoryService registers billboards and customers.
type InventoryService struct {
	billboards port.BillboardRepository
	customers  port.CustomerRepository
	logger     *slog.Logger
}

func NewInventoryService(billboards port.BillboardRepository, customers port.CustomerRepository, logger *slog.Logger) *InventoryService {
	return &InventoryService{billboards: billboards, customers: customers, logger: logger}
}

func (s *InventoryService) RegisterBillboard(ctx context.Context, req port.RegisterBillboardReq) (*domain.Billboard, error) {
	bb := &domain.Billboard{
		ID:         uuid.New(),
		Code:       strings.TrimSpace(req.Code),
		Name:       strings.TrimSpace(req.Name),
		Location:   req.Location,
		Type:       req.Type,
		SlotCount:  req.SlotCount,
		RatePerDay: req.RatePerDay,
		Status:     req.Status,
	}
	if bb.Status == "" {
		bb.Status = domain.BillboardActive
	}
	if err := bb.Validate(); err != nil {
		return nil, err
	}
	if err := s.billboards.Create(ctx, bb); err != nil {
		return nil, err
	}
	s.logger.Info("billboard registered",
		slog.String("code", bb.Code),
		slog.String("type", string(bb.Type)),
		slog.Int("slots", bb.SlotCount))
	return bb, nil
}

func (s *InventoryService) GetBillboard(ctx context.Context, id uuid.UUID) (*domain.Billboard, error) {
	bb, err := s.billboards.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if bb == nil {
		return nil, domain.NotFound("billboard", id)
	}
	return bb, nil
}

func (s *InventoryService) ListBillboards(ctx context.Context, status *domain.BillboardStatus) ([]domain.Billboard, error) {
	out, err := s.billboards.List(ctx, status)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Billboard{}
	}
	return out, nil
}

func (s *InventoryService) RegisterCustomer(ctx context.Context, req port.RegisterCustomerReq) (*domain.Customer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.Validation("customer name is required")
	}
	c := &domain.Customer{ID: uuid.New(), Name: name, Email: strings.TrimSpace(req.Email)}
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *InventoryService) GetCustomer(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	c, err := s.customers.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NotFound("customer", id)
	}
	return c, nil
}
