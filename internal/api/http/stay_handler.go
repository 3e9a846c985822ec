package http

import (
	"net/http"

	"pousada-backend/internal/service"
	"pousada-backend/internal/validation"

	"github.com/gorilla/mux"
)

type StayHandler struct {
	svc service.StayService
}

func NewStayHandler(svc service.StayService) *StayHandler {
	return &StayHandler{svc: svc}
}

func (h *StayHandler) List(w http.ResponseWriter, r *http.Request) {
	stays, err := h.svc.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stays)
}

func (h *StayHandler) Get(w http.ResponseWriter, r *http.Request) {
	stay, err := h.svc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stay)
}

func (h *StayHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form validation.StayForm
	if !decodeBody(w, r, &form) {
		return
	}
	stay, err := h.svc.Create(r.Context(), UserIDFromContext(r.Context()), form)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, stay)
}

// updateStayRequest carries the form plus the unit the stay referenced
// before editing, so the service can free it on re-assignment.
type updateStayRequest struct {
	validation.StayForm
	OriginalUnitID string `json:"original_unit_id"`
}

func (h *StayHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateStayRequest
	if !decodeBody(w, r, &req) {
		return
	}
	stay, err := h.svc.Update(r.Context(), UserIDFromContext(r.Context()), mux.Vars(r)["id"], req.StayForm, req.OriginalUnitID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stay)
}

type finalizeStayRequest struct {
	UnitID string `json:"unit_id"`
}

// Finalize is the check-out action. The client asks the user to confirm
// before calling it.
func (h *StayHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	var req finalizeStayRequest
	if !decodeBody(w, r, &req) {
		return
	}
	stay, err := h.svc.Finalize(r.Context(), UserIDFromContext(r.Context()), mux.Vars(r)["id"], req.UnitID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stay)
}
