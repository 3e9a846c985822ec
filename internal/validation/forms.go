package validation

import (
	"strconv"

	"pousada-backend/internal/domain"
)

// AddressForm mirrors the address dialog fields.
type AddressForm struct {
	Name         string `json:"name"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
}

func (f AddressForm) Validate() (*domain.Address, error) {
	verr := domain.NewValidationError()
	requireString(verr, "name", f.Name)
	requireString(verr, "street", f.Street)
	requireString(verr, "number", f.Number)
	requireString(verr, "neighborhood", f.Neighborhood)
	requireString(verr, "city", f.City)
	requireString(verr, "state", f.State)
	requireString(verr, "zip_code", f.ZipCode)
	if verr.HasErrors() {
		return nil, verr
	}
	return &domain.Address{
		Name:         f.Name,
		Street:       f.Street,
		Number:       f.Number,
		Neighborhood: f.Neighborhood,
		City:         f.City,
		State:        f.State,
		ZipCode:      f.ZipCode,
	}, nil
}

type UnitForm struct {
	AddressID   string `json:"address_id"`
	UnitNumber  string `json:"unit_number"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func (f UnitForm) Validate() (*domain.Unit, error) {
	verr := domain.NewValidationError()
	requireString(verr, "address_id", f.AddressID)
	requireString(verr, "unit_number", f.UnitNumber)
	if !domain.ValidUnitStatus(f.Status) {
		verr.Add("status", "must be one of available, occupied, maintenance, inactive")
	}
	if verr.HasErrors() {
		return nil, verr
	}
	return &domain.Unit{
		AddressID:   f.AddressID,
		UnitNumber:  f.UnitNumber,
		Description: f.Description,
		Status:      domain.UnitStatus(f.Status),
	}, nil
}

type GuestForm struct {
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	DocumentID string `json:"document_id"`
	Notes      string `json:"notes"`
}

func (f GuestForm) Validate() (*domain.Guest, error) {
	verr := domain.NewValidationError()
	requireString(verr, "full_name", f.FullName)
	requireString(verr, "phone", f.Phone)
	requireString(verr, "document_id", f.DocumentID)
	if f.Email == "" {
		verr.Add("email", "is required")
	} else if !validEmail(f.Email) {
		verr.Add("email", "must be a valid email address")
	}
	if verr.HasErrors() {
		return nil, verr
	}
	return &domain.Guest{
		FullName:   f.FullName,
		Phone:      f.Phone,
		Email:      f.Email,
		DocumentID: f.DocumentID,
		Notes:      f.Notes,
	}, nil
}

// StayForm mirrors the stay dialog. MonthlyRent arrives as text and must
// coerce to a positive amount.
type StayForm struct {
	UnitID      string `json:"unit_id"`
	GuestID     string `json:"guest_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	MonthlyRent string `json:"monthly_rent"`
	Status      string `json:"status"`
}

func (f StayForm) Validate() (*domain.Stay, error) {
	verr := domain.NewValidationError()
	requireString(verr, "unit_id", f.UnitID)
	requireString(verr, "guest_id", f.GuestID)
	requireDate(verr, "start_date", f.StartDate)
	endDate := optionalDate(verr, "end_date", f.EndDate)
	rent := requireMoney(verr, "monthly_rent", f.MonthlyRent, true)
	status := f.Status
	if status == "" {
		status = string(domain.StayStatusActive)
	}
	if !domain.ValidStayStatus(status) {
		verr.Add("status", "must be one of active, completed, cancelled")
	}
	if verr.HasErrors() {
		return nil, verr
	}
	return &domain.Stay{
		UnitID:      f.UnitID,
		GuestID:     f.GuestID,
		StartDate:   f.StartDate,
		EndDate:     endDate,
		MonthlyRent: rent,
		Status:      domain.StayStatus(status),
	}, nil
}

type PaymentForm struct {
	StayID         string `json:"stay_id"`
	PaymentDate    string `json:"payment_date"`
	AmountPaid     string `json:"amount_paid"`
	ReferenceMonth string `json:"reference_month"`
	ReferenceYear  string `json:"reference_year"`
	Status         string `json:"status"`
	Notes          string `json:"notes"`
}

func (f PaymentForm) Validate() (*domain.Payment, error) {
	verr := domain.NewValidationError()
	requireString(verr, "stay_id", f.StayID)
	requireDate(verr, "payment_date", f.PaymentDate)
	amount := requireMoney(verr, "amount_paid", f.AmountPaid, true)

	month, err := strconv.Atoi(f.ReferenceMonth)
	if err != nil || month < 1 || month > 12 {
		verr.Add("reference_month", "must be between 1 and 12")
	}
	year, err := strconv.Atoi(f.ReferenceYear)
	if err != nil || year < 2000 || year > 2100 {
		verr.Add("reference_year", "must be between 2000 and 2100")
	}
	if !domain.ValidPaymentStatus(f.Status) {
		verr.Add("status", "must be one of paid, pending, overdue, cancelled")
	}
	if verr.HasErrors() {
		return nil, verr
	}
	return &domain.Payment{
		StayID:         f.StayID,
		PaymentDate:    f.PaymentDate,
		AmountPaid:     amount,
		ReferenceMonth: month,
		ReferenceYear:  year,
		Status:         domain.PaymentStatus(f.Status),
		Notes:          f.Notes,
	}, nil
}

type ItemForm struct {
	UnitID       string `json:"unit_id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	PurchaseDate string `json:"purchase_date"`
	Condition    string `json:"condition"`
	Notes        string `json:"notes"`
}

func (f ItemForm) Validate() (*domain.Item, error) {
	verr := domain.NewValidationError()
	requireString(verr, "unit_id", f.UnitID)
	requireString(verr, "name", f.Name)
	requireString(verr, "type", f.Type)
	purchaseDate := optionalDate(verr, "purchase_date", f.PurchaseDate)
	if !domain.ValidItemCondition(f.Condition) {
		verr.Add("condition", "must be one of excellent, good, fair, poor, broken")
	}
	if verr.HasErrors() {
		return nil, verr
	}
	return &domain.Item{
		UnitID:       f.UnitID,
		Name:         f.Name,
		Type:         f.Type,
		Brand:        f.Brand,
		Model:        f.Model,
		PurchaseDate: purchaseDate,
		Condition:    domain.ItemCondition(f.Condition),
		Notes:        f.Notes,
	}, nil
}

// MaintenanceForm carries the completion fields even for non-completed
// statuses; the service clears them before persistence.
type MaintenanceForm struct {
	UnitID          string `json:"unit_id"`
	ItemID          string `json:"item_id"`
	Description     string `json:"description"`
	DateReported    string `json:"date_reported"`
	DateCompleted   string `json:"date_completed"`
	Cost            string `json:"cost"`
	ServiceProvider string `json:"service_provider"`
	Status          string `json:"status"`
	Notes           string `json:"notes"`
}

func (f MaintenanceForm) Validate() (*domain.MaintenanceLog, error) {
	verr := domain.NewValidationError()
	requireString(verr, "unit_id", f.UnitID)
	requireString(verr, "description", f.Description)
	requireDate(verr, "date_reported", f.DateReported)
	dateCompleted := optionalDate(verr, "date_completed", f.DateCompleted)
	cost := optionalMoney(verr, "cost", f.Cost)
	if !domain.ValidMaintenanceStatus(f.Status) {
		verr.Add("status", "must be one of reported, scheduled, in_progress, completed, cancelled")
	}
	if verr.HasErrors() {
		return nil, verr
	}
	return &domain.MaintenanceLog{
		UnitID:          f.UnitID,
		ItemID:          optionalPtr(f.ItemID),
		Description:     f.Description,
		DateReported:    f.DateReported,
		DateCompleted:   dateCompleted,
		Cost:            cost,
		ServiceProvider: optionalPtr(f.ServiceProvider),
		Status:          domain.MaintenanceStatus(f.Status),
		Notes:           f.Notes,
	}, nil
}

type EmployeeForm struct {
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Salary    string `json:"salary"`
	Notes     string `json:"notes"`
}

func (f EmployeeForm) Validate() (*domain.Employee, error) {
	verr := domain.NewValidationError()
	requireString(verr, "full_name", f.FullName)
	if !domain.ValidEmployeeRole(f.Role) {
		verr.Add("role", "must be one of manager, receptionist, cleaner, maintenance, security, other")
	}
	// Email is optional for employees, blank is fine.
	if f.Email != "" && !validEmail(f.Email) {
		verr.Add("email", "must be a valid email address")
	}
	requireDate(verr, "start_date", f.StartDate)
	endDate := optionalDate(verr, "end_date", f.EndDate)
	salary := optionalMoney(verr, "salary", f.Salary)
	if verr.HasErrors() {
		return nil, verr
	}
	return &domain.Employee{
		FullName:  f.FullName,
		Role:      domain.EmployeeRole(f.Role),
		Phone:     f.Phone,
		Email:     f.Email,
		StartDate: f.StartDate,
		EndDate:   endDate,
		Salary:    salary,
		Notes:     f.Notes,
	}, nil
}
