package http

import (
	"net/http"

	"pousada-backend/internal/service"
	"pousada-backend/internal/validation"

	"github.com/gorilla/mux"
)

type AddressHandler struct {
	svc service.AddressService
}

func NewAddressHandler(svc service.AddressService) *AddressHandler {
	return &AddressHandler{svc: svc}
}

func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	addresses, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, addresses)
}

func (h *AddressHandler) Get(w http.ResponseWriter, r *http.Request) {
	addr, err := h.svc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, addr)
}

func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form validation.AddressForm
	if !decodeBody(w, r, &form) {
		return
	}
	addr, err := h.svc.Create(r.Context(), UserIDFromContext(r.Context()), form)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, addr)
}

func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	var form validation.AddressForm
	if !decodeBody(w, r, &form) {
		return
	}
	addr, err := h.svc.Update(r.Context(), UserIDFromContext(r.Context()), mux.Vars(r)["id"], form)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, addr)
}

func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
