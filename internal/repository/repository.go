package repository

import (
	"context"

	"pousada-backend/internal/domain"
)

type AddressRepository interface {
	Create(ctx context.Context, addr *domain.Address) error
	GetByID(ctx context.Context, id string) (*domain.Address, error)
	Update(ctx context.Context, addr *domain.Address) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Address, error)
}

type UnitRepository interface {
	Create(ctx context.Context, unit *domain.Unit) error
	GetByID(ctx context.Context, id string) (*domain.Unit, error)
	Update(ctx context.Context, unit *domain.Unit) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, status string) ([]domain.Unit, error)
	// UpdateStatus writes only the status and audit columns. Used by the
	// stay lifecycle to keep occupancy in sync.
	UpdateStatus(ctx context.Context, id string, status domain.UnitStatus, userID string) error
	Count(ctx context.Context) (int64, error)
}

type GuestRepository interface {
	Create(ctx context.Context, guest *domain.Guest) error
	GetByID(ctx context.Context, id string) (*domain.Guest, error)
	Update(ctx context.Context, guest *domain.Guest) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Guest, error)
	Count(ctx context.Context) (int64, error)
}

type StayRepository interface {
	Create(ctx context.Context, stay *domain.Stay) error
	GetByID(ctx context.Context, id string) (*domain.Stay, error)
	Update(ctx context.Context, stay *domain.Stay) error
	ListWithDetails(ctx context.Context, status string) ([]domain.StayDetails, error)
	// ListIDsByUnit and ListIDsByGuest resolve the first step of filtering
	// payments by a field that lives on the joined stay.
	ListIDsByUnit(ctx context.Context, unitID string) ([]string, error)
	ListIDsByGuest(ctx context.Context, guestID string) ([]string, error)
	CountActiveByUnit(ctx context.Context, unitID string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	Update(ctx context.Context, payment *domain.Payment) error
	// ListWithDetails applies equality filters; stayIDs narrows to the stay
	// identifier set resolved by the two-step unit/guest lookup (nil means
	// no stay filter).
	ListWithDetails(ctx context.Context, stayIDs []string, month, year int, status string) ([]domain.PaymentDetails, error)
	// MarkOverdue flips pending payments whose reference month precedes the
	// given month/year to overdue and returns how many rows changed.
	MarkOverdue(ctx context.Context, month, year int) (int64, error)
	ListOverdueNotices(ctx context.Context) ([]domain.OverdueNotice, error)
	Count(ctx context.Context) (int64, error)
}

type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id string) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, unitID string) ([]domain.Item, error)
}

type MaintenanceLogRepository interface {
	Create(ctx context.Context, log *domain.MaintenanceLog) error
	GetByID(ctx context.Context, id string) (*domain.MaintenanceLog, error)
	Update(ctx context.Context, log *domain.MaintenanceLog) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters domain.MaintenanceFilters) ([]domain.MaintenanceLog, error)
	Count(ctx context.Context) (int64, error)
}

type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	Update(ctx context.Context, emp *domain.Employee) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Employee, error)
	Count(ctx context.Context) (int64, error)
}
