package httpadapter

import (
	"net/http"

	"billboard-ops/internal/core/domain"
	"billboard-ops/internal/core/port"
)

func (h *Handler) handleRegisterCustomer(w http.ResponseWriter, r *http.Request) {
	var req port.RegisterCustomerReq
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.Inventory.RegisterCustomer(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleGetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.Inventory.GetCustomer(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleRegisterBillboard(w http.ResponseWriter, r *http.Request) {
	var req port.RegisterBillboardReq
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	b, err := h.svc.Inventory.RegisterBillboard(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, b)
}

func (h *Handler) handleListBillboards(w http.ResponseWriter, r *http.Request) {
	var status *domain.BillboardStatus
	if s := r.URL.Query().Get("status"); s != "" {
		st := domain.BillboardStatus(s)
		status = &st
	}
	list, err := h.svc.Inventory.ListBillboards(r.Context(), status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) handleGetBillboard(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	b, err := h.svc.Inventory.GetBillboard(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, b)
}
