package unit

import (
	"context"

	"pousada-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockAddressRepo
type MockAddressRepo struct {
	mock.Mock
}

func (m *MockAddressRepo) Create(ctx context.Context, addr *domain.Address) error {
	args := m.Called(ctx, addr)
	return args.Error(0)
}
func (m *MockAddressRepo) GetByID(ctx context.Context, id string) (*domain.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}
func (m *MockAddressRepo) Update(ctx context.Context, addr *domain.Address) error {
	args := m.Called(ctx, addr)
	return args.Error(0)
}
func (m *MockAddressRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockAddressRepo) List(ctx context.Context) ([]domain.Address, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Address), args.Error(1)
}

// MockUnitRepo
type MockUnitRepo struct {
	mock.Mock
}

func (m *MockUnitRepo) Create(ctx context.Context, unit *domain.Unit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}
func (m *MockUnitRepo) GetByID(ctx context.Context, id string) (*domain.Unit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Unit), args.Error(1)
}
func (m *MockUnitRepo) Update(ctx context.Context, unit *domain.Unit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}
func (m *MockUnitRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockUnitRepo) List(ctx context.Context, status string) ([]domain.Unit, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Unit), args.Error(1)
}
func (m *MockUnitRepo) UpdateStatus(ctx context.Context, id string, status domain.UnitStatus, userID string) error {
	args := m.Called(ctx, id, status, userID)
	return args.Error(0)
}
func (m *MockUnitRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockGuestRepo
type MockGuestRepo struct {
	mock.Mock
}

func (m *MockGuestRepo) Create(ctx context.Context, guest *domain.Guest) error {
	args := m.Called(ctx, guest)
	return args.Error(0)
}
func (m *MockGuestRepo) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guest), args.Error(1)
}
func (m *MockGuestRepo) Update(ctx context.Context, guest *domain.Guest) error {
	args := m.Called(ctx, guest)
	return args.Error(0)
}
func (m *MockGuestRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockGuestRepo) List(ctx context.Context) ([]domain.Guest, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Guest), args.Error(1)
}
func (m *MockGuestRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockStayRepo
type MockStayRepo struct {
	mock.Mock
}

func (m *MockStayRepo) Create(ctx context.Context, stay *domain.Stay) error {
	args := m.Called(ctx, stay)
	return args.Error(0)
}
func (m *MockStayRepo) GetByID(ctx context.Context, id string) (*domain.Stay, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stay), args.Error(1)
}
func (m *MockStayRepo) Update(ctx context.Context, stay *domain.Stay) error {
	args := m.Called(ctx, stay)
	return args.Error(0)
}
func (m *MockStayRepo) ListWithDetails(ctx context.Context, status string) ([]domain.StayDetails, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.StayDetails), args.Error(1)
}
func (m *MockStayRepo) ListIDsByUnit(ctx context.Context, unitID string) ([]string, error) {
	args := m.Called(ctx, unitID)
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockStayRepo) ListIDsByGuest(ctx context.Context, guestID string) ([]string, error) {
	args := m.Called(ctx, guestID)
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockStayRepo) CountActiveByUnit(ctx context.Context, unitID string) (int64, error) {
	args := m.Called(ctx, unitID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockStayRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}
func (m *MockPaymentRepo) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) Update(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}
func (m *MockPaymentRepo) ListWithDetails(ctx context.Context, stayIDs []string, month, year int, status string) ([]domain.PaymentDetails, error) {
	args := m.Called(ctx, stayIDs, month, year, status)
	return args.Get(0).([]domain.PaymentDetails), args.Error(1)
}
func (m *MockPaymentRepo) MarkOverdue(ctx context.Context, month, year int) (int64, error) {
	args := m.Called(ctx, month, year)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockPaymentRepo) ListOverdueNotices(ctx context.Context) ([]domain.OverdueNotice, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.OverdueNotice), args.Error(1)
}
func (m *MockPaymentRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockItemRepo
type MockItemRepo struct {
	mock.Mock
}

func (m *MockItemRepo) Create(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockItemRepo) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockItemRepo) Update(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockItemRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockItemRepo) List(ctx context.Context, unitID string) ([]domain.Item, error) {
	args := m.Called(ctx, unitID)
	return args.Get(0).([]domain.Item), args.Error(1)
}

// MockMaintenanceLogRepo
type MockMaintenanceLogRepo struct {
	mock.Mock
}

func (m *MockMaintenanceLogRepo) Create(ctx context.Context, log *domain.MaintenanceLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}
func (m *MockMaintenanceLogRepo) GetByID(ctx context.Context, id string) (*domain.MaintenanceLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaintenanceLog), args.Error(1)
}
func (m *MockMaintenanceLogRepo) Update(ctx context.Context, log *domain.MaintenanceLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}
func (m *MockMaintenanceLogRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockMaintenanceLogRepo) List(ctx context.Context, filters domain.MaintenanceFilters) ([]domain.MaintenanceLog, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).([]domain.MaintenanceLog), args.Error(1)
}
func (m *MockMaintenanceLogRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockEmployeeRepo
type MockEmployeeRepo struct {
	mock.Mock
}

func (m *MockEmployeeRepo) Create(ctx context.Context, emp *domain.Employee) error {
	args := m.Called(ctx, emp)
	return args.Error(0)
}
func (m *MockEmployeeRepo) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepo) Update(ctx context.Context, emp *domain.Employee) error {
	args := m.Called(ctx, emp)
	return args.Error(0)
}
func (m *MockEmployeeRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockEmployeeRepo) List(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendCheckoutConfirmation(ctx context.Context, email, guestName, unitNumber string) error {
	args := m.Called(ctx, email, guestName, unitNumber)
	return args.Error(0)
}
func (m *MockEmailService) SendOverdueNotice(ctx context.Context, notice domain.OverdueNotice) error {
	args := m.Called(ctx, notice)
	return args.Error(0)
}
