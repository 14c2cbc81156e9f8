package httpadapter

import (
	"net/http"

	"billboard-ops/internal/core/port"
)

// handleCheckAvailability answers
// GET /billboards/{id}/availability?startDate&endDate[&slotNumber][&excludeBookingId][&scope].
func (h *Handler) handleCheckAvailability(w http.ResponseWriter, r *http.Request) {
	q, err := availabilityQuery(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.svc.Availability.CheckAvailability(r.Context(), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func availabilityQuery(r *http.Request) (q port.AvailabilityQuery, err error) {
	if q.BillboardID, err = pathUUID(r, "id"); err != nil {
		return q, err
	}
	if q.StartDate, err = requiredDate(r, "startDate"); err != nil {
		return q, err
	}
	if q.EndDate, err = requiredDate(r, "endDate"); err != nil {
		return q, err
	}
	if q.SlotNumber, err = queryInt(r, "slotNumber"); err != nil {
		return q, err
	}
	if q.ExcludeBookingID, err = queryUUID(r, "excludeBookingId"); err != nil {
		return q, err
	}
	q.Scope, err = port.ParseAvailabilityScope(r.URL.Query().Get("scope"))
	return q, err
}

// handleAvailableBillboards lists every active billboard with its free slots
// for the requested period.
func (h *Handler) handleAvailableBillboards(w http.ResponseWriter, r *http.Request) {
	start, err := requiredDate(r, "startDate")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	end, err := requiredDate(r, "endDate")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	list, err := h.svc.Campaigns.AvailableBillboards(r.Context(), start, end)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}
