package service

import (
	"context"
	"errors"

	"pousada-backend/internal/domain"
	"pousada-backend/internal/repository"
	"pousada-backend/internal/validation"
)

type employeeService struct {
	employeeRepo repository.EmployeeRepository
}

func NewEmployeeService(employeeRepo repository.EmployeeRepository) EmployeeService {
	return &employeeService{employeeRepo: employeeRepo}
}

func (s *employeeService) Create(ctx context.Context, userID string, form validation.EmployeeForm) (*domain.Employee, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	emp, err := form.Validate()
	if err != nil {
		return nil, err
	}
	emp.CreatedBy = userID
	emp.UpdatedBy = userID
	if err := s.employeeRepo.Create(ctx, emp); err != nil {
		return nil, domain.NewPersistenceError("create employee", err)
	}
	return emp, nil
}

func (s *employeeService) Update(ctx context.Context, userID, id string, form validation.EmployeeForm) (*domain.Employee, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	emp, err := form.Validate()
	if err != nil {
		return nil, err
	}
	emp.ID = id
	emp.UpdatedBy = userID
	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return nil, domain.NewPersistenceError("update employee", err)
	}
	return emp, nil
}

func (s *employeeService) Delete(ctx context.Context, id string) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return domain.NewPersistenceError("delete employee", err)
	}
	return nil
}

func (s *employeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, domain.NewPersistenceError("load employee", err)
	}
	return emp, nil
}

func (s *employeeService) List(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, domain.NewPersistenceError("list employees", err)
	}
	return employees, nil
}
