package http

import (
	"net/http"

	"pousada-backend/internal/security"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Address     *AddressHandler
	Unit        *UnitHandler
	Guest       *GuestHandler
	Stay        *StayHandler
	Payment     *PaymentHandler
	Maintenance *MaintenanceHandler
	Employee    *EmployeeHandler
	Dashboard   *DashboardHandler
}

// NewRouter mounts the API under /api/v1 behind auth, logging and
// metrics. /healthz and /metrics stay outside the authenticated
// subrouter so probes and scrapers need no token.
func NewRouter(h Handlers, tm security.TokenManager) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(LoggingMiddleware, MetricsMiddleware, AuthMiddleware(tm))

	api.HandleFunc("/addresses", h.Address.List).Methods(http.MethodGet)
	api.HandleFunc("/addresses", h.Address.Create).Methods(http.MethodPost)
	api.HandleFunc("/addresses/{id}", h.Address.Get).Methods(http.MethodGet)
	api.HandleFunc("/addresses/{id}", h.Address.Update).Methods(http.MethodPut)
	api.HandleFunc("/addresses/{id}", h.Address.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/units", h.Unit.List).Methods(http.MethodGet)
	api.HandleFunc("/units", h.Unit.Create).Methods(http.MethodPost)
	api.HandleFunc("/units/{id}", h.Unit.Get).Methods(http.MethodGet)
	api.HandleFunc("/units/{id}", h.Unit.Update).Methods(http.MethodPut)
	api.HandleFunc("/units/{id}", h.Unit.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/guests", h.Guest.List).Methods(http.MethodGet)
	api.HandleFunc("/guests", h.Guest.Create).Methods(http.MethodPost)
	api.HandleFunc("/guests/{id}", h.Guest.Get).Methods(http.MethodGet)
	api.HandleFunc("/guests/{id}", h.Guest.Update).Methods(http.MethodPut)
	api.HandleFunc("/guests/{id}", h.Guest.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/stays", h.Stay.List).Methods(http.MethodGet)
	api.HandleFunc("/stays", h.Stay.Create).Methods(http.MethodPost)
	api.HandleFunc("/stays/{id}", h.Stay.Get).Methods(http.MethodGet)
	api.HandleFunc("/stays/{id}", h.Stay.Update).Methods(http.MethodPut)
	api.HandleFunc("/stays/{id}/finalize", h.Stay.Finalize).Methods(http.MethodPost)

	api.HandleFunc("/payments", h.Payment.List).Methods(http.MethodGet)
	api.HandleFunc("/payments", h.Payment.Create).Methods(http.MethodPost)
	api.HandleFunc("/payments/{id}", h.Payment.Get).Methods(http.MethodGet)
	api.HandleFunc("/payments/{id}", h.Payment.Update).Methods(http.MethodPut)

	api.HandleFunc("/items", h.Maintenance.ListItems).Methods(http.MethodGet)
	api.HandleFunc("/items", h.Maintenance.CreateItem).Methods(http.MethodPost)
	api.HandleFunc("/items/{id}", h.Maintenance.GetItem).Methods(http.MethodGet)
	api.HandleFunc("/items/{id}", h.Maintenance.UpdateItem).Methods(http.MethodPut)
	api.HandleFunc("/items/{id}", h.Maintenance.DeleteItem).Methods(http.MethodDelete)

	api.HandleFunc("/maintenance-logs", h.Maintenance.ListLogs).Methods(http.MethodGet)
	api.HandleFunc("/maintenance-logs", h.Maintenance.CreateLog).Methods(http.MethodPost)
	api.HandleFunc("/maintenance-logs/{id}", h.Maintenance.GetLog).Methods(http.MethodGet)
	api.HandleFunc("/maintenance-logs/{id}", h.Maintenance.UpdateLog).Methods(http.MethodPut)
	api.HandleFunc("/maintenance-logs/{id}", h.Maintenance.DeleteLog).Methods(http.MethodDelete)

	api.HandleFunc("/employees", h.Employee.List).Methods(http.MethodGet)
	api.HandleFunc("/employees", h.Employee.Create).Methods(http.MethodPost)
	api.HandleFunc("/employees/{id}", h.Employee.Get).Methods(http.MethodGet)
	api.HandleFunc("/employees/{id}", h.Employee.Update).Methods(http.MethodPut)
	api.HandleFunc("/employees/{id}", h.Employee.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/dashboard", h.Dashboard.Counts).Methods(http.MethodGet)

	return r
}
