package postgres

import (
	"database/sql"

	"pousada-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.AddressRepository
	repository.UnitRepository
	repository.GuestRepository
	repository.StayRepository
	repository.PaymentRepository
	repository.ItemRepository
	repository.MaintenanceLogRepository
	repository.EmployeeRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                       db,
		AddressRepository:        NewAddressRepository(db),
		UnitRepository:           NewUnitRepository(db),
		GuestRepository:          NewGuestRepository(db),
		StayRepository:           NewStayRepository(db),
		PaymentRepository:        NewPaymentRepository(db),
		ItemRepository:           NewItemRepository(db),
		MaintenanceLogRepository: NewMaintenanceLogRepository(db),
		EmployeeRepository:       NewEmployeeRepository(db),
	}
}
