package httpadapter

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"billboard-ops/internal/core/port"
)

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req port.CreateCampaignReq
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.Campaigns.CreateCampaign(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := page(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	p, err := h.svc.Campaigns.ListCampaigns(r.Context(), limit, offset)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.Campaigns.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req port.UpdateCampaignReq
	if err = decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.Campaigns.UpdateCampaign(r.Context(), id, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err = h.svc.Campaigns.DeleteCampaign(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleAddCampaignBooking(w http.ResponseWriter, r *http.Request) {
	h.moveCampaignBooking(w, r, h.svc.Campaigns.AddBooking)
}

func (h *Handler) handleRemoveCampaignBooking(w http.ResponseWriter, r *http.Request) {
	h.moveCampaignBooking(w, r, h.svc.Campaigns.RemoveBooking)
}

// moveCampaignBooking parses both path ids and runs op, which either attaches
// or detaches the booking.
func (h *Handler) moveCampaignBooking(
	w http.ResponseWriter, r *http.Request,
	op func(ctx context.Context, campaignID, bookingID uuid.UUID) (*port.CampaignDetail, error),
) {
	campaignID, err := pathUUID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	bookingID, err := pathUUID(r, "bookingId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := op(r.Context(), campaignID, bookingID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}
