package httpadapter

import (
	"net/http"

	"billboard-ops/internal/core/port"
)

func (h *Handler) handleCreatePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	var req port.CreatePurchaseOrderReq
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	po, err := h.svc.Settlement.CreatePurchaseOrder(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, po)
}

func (h *Handler) handleListPurchaseOrders(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := page(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	p, err := h.svc.Settlement.ListPurchaseOrders(r.Context(), limit, offset)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleGetPurchaseOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	po, err := h.svc.Settlement.GetPurchaseOrder(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, po)
}

func (h *Handler) handleDeletePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err = h.svc.Settlement.DeletePurchaseOrder(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
