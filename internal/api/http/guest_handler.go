package http

import (
	"net/http"

	"pousada-backend/internal/service"
	"pousada-backend/internal/validation"

	"github.com/gorilla/mux"
)

type GuestHandler struct {
	svc service.GuestService
}

func NewGuestHandler(svc service.GuestService) *GuestHandler {
	return &GuestHandler{svc: svc}
}

func (h *GuestHandler) List(w http.ResponseWriter, r *http.Request) {
	guests, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, guests)
}

func (h *GuestHandler) Get(w http.ResponseWriter, r *http.Request) {
	guest, err := h.svc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, guest)
}

func (h *GuestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form validation.GuestForm
	if !decodeBody(w, r, &form) {
		return
	}
	guest, err := h.svc.Create(r.Context(), UserIDFromContext(r.Context()), form)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, guest)
}

func (h *GuestHandler) Update(w http.ResponseWriter, r *http.Request) {
	var form validation.GuestForm
	if !decodeBody(w, r, &form) {
		return
	}
	guest, err := h.svc.Update(r.Context(), UserIDFromContext(r.Context()), mux.Vars(r)["id"], form)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, guest)
}

func (h *GuestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
