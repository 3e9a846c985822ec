package http

import (
	"net/http"

	"pousada-backend/internal/domain"
	"pousada-backend/internal/service"
	"pousada-backend/internal/validation"

	"github.com/gorilla/mux"
)

type MaintenanceHandler struct {
	svc service.MaintenanceService
}

func NewMaintenanceHandler(svc service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{svc: svc}
}

func (h *MaintenanceHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListItems(r.Context(), r.URL.Query().Get("unit_id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *MaintenanceHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var form validation.ItemForm
	if !decodeBody(w, r, &form) {
		return
	}
	item, err := h.svc.CreateItem(r.Context(), UserIDFromContext(r.Context()), form)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func (h *MaintenanceHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var form validation.ItemForm
	if !decodeBody(w, r, &form) {
		return
	}
	item, err := h.svc.UpdateItem(r.Context(), UserIDFromContext(r.Context()), mux.Vars(r)["id"], form)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (h *MaintenanceHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.GetItem(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (h *MaintenanceHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteItem(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MaintenanceHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := domain.MaintenanceFilters{
		UnitID: q.Get("unit_id"),
		ItemID: q.Get("item_id"),
		Status: q.Get("status"),
	}
	logs, err := h.svc.ListLogs(r.Context(), filters)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, logs)
}

func (h *MaintenanceHandler) CreateLog(w http.ResponseWriter, r *http.Request) {
	var form validation.MaintenanceForm
	if !decodeBody(w, r, &form) {
		return
	}
	log, err := h.svc.CreateLog(r.Context(), UserIDFromContext(r.Context()), form)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, log)
}

func (h *MaintenanceHandler) UpdateLog(w http.ResponseWriter, r *http.Request) {
	var form validation.MaintenanceForm
	if !decodeBody(w, r, &form) {
		return
	}
	log, err := h.svc.UpdateLog(r.Context(), UserIDFromContext(r.Context()), mux.Vars(r)["id"], form)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, log)
}

func (h *MaintenanceHandler) GetLog(w http.ResponseWriter, r *http.Request) {
	log, err := h.svc.GetLog(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, log)
}

func (h *MaintenanceHandler) DeleteLog(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteLog(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
