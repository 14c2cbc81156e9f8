package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"billboard-ops/internal/core/port"
)

// Services bundles the use cases served over HTTP.
type Services struct {
	Availability port.AvailabilityUseCase
	Bookings     port.BookingUseCase
	Campaigns    port.CampaignUseCase
	Settlement   port.SettlementUseCase
	Inventory    port.InventoryUseCase
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the use cases that execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	svc    Services
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. Business routes
// live under /api/v1; /healthz and /metrics sit at the root.
func NewHandler(svc Services, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/customers", func(r chi.Router) {
			r.Post("/", h.handleRegisterCustomer)
			r.Get("/{id}", h.handleGetCustomer)
		})
		r.Route("/billboards", func(r chi.Router) {
			r.Post("/", h.handleRegisterBillboard)
			r.Get("/", h.handleListBillboards)
			r.Get("/{id}", h.handleGetBillboard)
			r.Get("/{id}/availability", h.handleCheckAvailability)
		})
		r.Get("/availability", h.handleAvailableBillboards)
		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", h.handleCreateBooking)
			r.Get("/", h.handleListBookings)
			r.Get("/{id}", h.handleGetBooking)
			r.Patch("/{id}", h.handleUpdateBooking)
			r.Delete("/{id}", h.handleDeleteBooking)
			r.Patch("/{id}/status", h.handleUpdateStatus)
			r.Post("/{id}/short-close", h.handleShortClose)
			r.Post("/{id}/cancel", h.handleCancelBooking)
			r.Get("/{id}/pro-rata", h.handleProRata)
		})
		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)
			r.Get("/{id}", h.handleGetCampaign)
			r.Patch("/{id}", h.handleUpdateCampaign)
			r.Delete("/{id}", h.handleDeleteCampaign)
			r.Post("/{id}/bookings/{bookingId}", h.handleAddCampaignBooking)
			r.Delete("/{id}/bookings/{bookingId}", h.handleRemoveCampaignBooking)
		})
		r.Route("/purchase-orders", func(r chi.Router) {
			r.Post("/", h.handleCreatePurchaseOrder)
			r.Get("/", h.handleListPurchaseOrders)
			r.Get("/{id}", h.handleGetPurchaseOrder)
			r.Delete("/{id}", h.handleDeletePurchaseOrder)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Debug("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("took", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())))
	})
}
