package httpadapter

import (
	"net/http"

	"billboard-ops/internal/core/domain"
	"billboard-ops/internal/core/port"
)

type statusRequest struct {
	Status string `json:"status"`
}

type shortCloseRequest struct {
	ActualEndDate domain.Date `json:"actualEndDate"`
	Reason        string      `json:"reason"`
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	var req port.CreateBookingReq
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	b, err := h.svc.Bookings.CreateBooking(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, b)
}

func (h *Handler) handleListBookings(w http.ResponseWriter, r *http.Request) {
	f, err := bookingFilter(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	p, err := h.svc.Bookings.ListBookings(r.Context(), f)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

func bookingFilter(r *http.Request) (f port.BookingFilter, err error) {
	if f.BillboardID, err = queryUUID(r, "billboardId"); err != nil {
		return f, err
	}
	if f.CustomerID, err = queryUUID(r, "customerId"); err != nil {
		return f, err
	}
	if f.CampaignID, err = queryUUID(r, "campaignId"); err != nil {
		return f, err
	}
	if s := r.URL.Query().Get("status"); s != "" {
		st := domain.BookingStatus(s)
		if st != domain.BookingCancelled {
			if st, err = domain.ParseLifecycleStatus(s); err != nil {
				return f, err
			}
		}
		f.Status = &st
	}
	if f.From, err = queryDate(r, "from"); err != nil {
		return f, err
	}
	if f.To, err = queryDate(r, "to"); err != nil {
		return f, err
	}
	f.Limit, f.Offset, err = page(r)
	return f, err
}

func (h *Handler) handleGetBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	b, err := h.svc.Bookings.GetBooking(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, b)
}

func (h *Handler) handleUpdateBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req port.UpdateBookingReq
	if err = decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	b, err := h.svc.Bookings.UpdateBooking(r.Context(), id, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, b)
}

func (h *Handler) handleDeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err = h.svc.Bookings.DeleteBooking(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req statusRequest
	if err = decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	b, err := h.svc.Bookings.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, b)
}

func (h *Handler) handleShortClose(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req shortCloseRequest
	if err = decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	b, err := h.svc.Bookings.ShortClose(r.Context(), id, req.ActualEndDate, req.Reason)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, b)
}

func (h *Handler) handleCancelBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req cancelRequest
	if r.ContentLength != 0 {
		if err = decode(r, &req); err != nil {
			h.writeError(w, r, err)
			return
		}
	}
	b, err := h.svc.Bookings.CancelBooking(r.Context(), id, req.Reason)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, b)
}

func (h *Handler) handleProRata(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	start, err := requiredDate(r, "actualStartDate")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	end, err := requiredDate(r, "actualEndDate")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	pr, err := h.svc.Settlement.CalculateProRata(r.Context(), id, start, end)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, pr)
}
