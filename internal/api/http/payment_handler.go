package http

import (
	"net/http"
	"strconv"

	"pousada-backend/internal/domain"
	"pousada-backend/internal/service"
	"pousada-backend/internal/validation"

	"github.com/gorilla/mux"
)

type PaymentHandler struct {
	svc service.PaymentService
}

func NewPaymentHandler(svc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := domain.PaymentFilters{
		UnitID:  q.Get("unit_id"),
		GuestID: q.Get("guest_id"),
		Status:  q.Get("status"),
	}
	if v := q.Get("month"); v != "" {
		filters.Month, _ = strconv.Atoi(v)
	}
	if v := q.Get("year"); v != "" {
		filters.Year, _ = strconv.Atoi(v)
	}

	payments, err := h.svc.List(r.Context(), filters)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, payments)
}

func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	payment, err := h.svc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, payment)
}

func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form validation.PaymentForm
	if !decodeBody(w, r, &form) {
		return
	}
	payment, err := h.svc.Create(r.Context(), UserIDFromContext(r.Context()), form)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, payment)
}

func (h *PaymentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var form validation.PaymentForm
	if !decodeBody(w, r, &form) {
		return
	}
	payment, err := h.svc.Update(r.Context(), UserIDFromContext(r.Context()), mux.Vars(r)["id"], form)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, payment)
}
