package service

import (
	"context"

	"pousada-backend/internal/domain"
	"pousada-backend/internal/validation"
)

type AddressService interface {
	Create(ctx context.Context, userID string, form validation.AddressForm) (*domain.Address, error)
	Update(ctx context.Context, userID, id string, form validation.AddressForm) (*domain.Address, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.Address, error)
	List(ctx context.Context) ([]domain.Address, error)
}

type UnitService interface {
	Create(ctx context.Context, userID string, form validation.UnitForm) (*domain.Unit, error)
	Update(ctx context.Context, userID, id string, form validation.UnitForm) (*domain.Unit, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.Unit, error)
	List(ctx context.Context, status string) ([]domain.Unit, error)
}

type GuestService interface {
	Create(ctx context.Context, userID string, form validation.GuestForm) (*domain.Guest, error)
	Update(ctx context.Context, userID, id string, form validation.GuestForm) (*domain.Guest, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.Guest, error)
	List(ctx context.Context) ([]domain.Guest, error)
}

// StayService is the stay lifecycle manager. It owns the occupancy rule:
// a unit referenced by an active stay is occupied, and ending or moving
// that stay frees the unit. The stay write always precedes any unit write.
type StayService interface {
	Create(ctx context.Context, userID string, form validation.StayForm) (*domain.Stay, error)
	Update(ctx context.Context, userID, stayID string, form validation.StayForm, originalUnitID string) (*domain.Stay, error)
	Finalize(ctx context.Context, userID, stayID, unitID string) (*domain.Stay, error)
	Get(ctx context.Context, id string) (*domain.Stay, error)
	List(ctx context.Context, status string) ([]domain.StayDetails, error)
}

type PaymentService interface {
	Create(ctx context.Context, userID string, form validation.PaymentForm) (*domain.Payment, error)
	Update(ctx context.Context, userID, id string, form validation.PaymentForm) (*domain.Payment, error)
	Get(ctx context.Context, id string) (*domain.Payment, error)
	List(ctx context.Context, filters domain.PaymentFilters) ([]domain.PaymentDetails, error)
}

type MaintenanceService interface {
	CreateItem(ctx context.Context, userID string, form validation.ItemForm) (*domain.Item, error)
	UpdateItem(ctx context.Context, userID, id string, form validation.ItemForm) (*domain.Item, error)
	DeleteItem(ctx context.Context, id string) error
	GetItem(ctx context.Context, id string) (*domain.Item, error)
	ListItems(ctx context.Context, unitID string) ([]domain.Item, error)

	CreateLog(ctx context.Context, userID string, form validation.MaintenanceForm) (*domain.MaintenanceLog, error)
	UpdateLog(ctx context.Context, userID, id string, form validation.MaintenanceForm) (*domain.MaintenanceLog, error)
	DeleteLog(ctx context.Context, id string) error
	GetLog(ctx context.Context, id string) (*domain.MaintenanceLog, error)
	ListLogs(ctx context.Context, filters domain.MaintenanceFilters) ([]domain.MaintenanceLog, error)
}

type EmployeeService interface {
	Create(ctx context.Context, userID string, form validation.EmployeeForm) (*domain.Employee, error)
	Update(ctx context.Context, userID, id string, form validation.EmployeeForm) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
}

type DashboardService interface {
	Counts(ctx context.Context) (*domain.DashboardCounts, error)
}

type EmailService interface {
	SendCheckoutConfirmation(ctx context.Context, email, guestName, unitNumber string) error
	SendOverdueNotice(ctx context.Context, notice domain.OverdueNotice) error
}

// requireUser rejects writes that arrive without an identified user,
// before any persistence call.
func requireUser(userID string) error {
	if userID == "" {
		return domain.ErrAuthenticationRequired
	}
	return nil
}
