package service

import (
	"context"
	"errors"

	"pousada-backend/internal/domain"
	"pousada-backend/internal/repository"
	"pousada-backend/internal/validation"
)

type unitService struct {
	unitRepo repository.UnitRepository
	stayRepo repository.StayRepository
}

func NewUnitService(unitRepo repository.UnitRepository, stayRepo repository.StayRepository) UnitService {
	return &unitService{unitRepo: unitRepo, stayRepo: stayRepo}
}

func (s *unitService) Create(ctx context.Context, userID string, form validation.UnitForm) (*domain.Unit, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	unit, err := form.Validate()
	if err != nil {
		return nil, err
	}
	unit.CreatedBy = userID
	unit.UpdatedBy = userID
	if err := s.unitRepo.Create(ctx, unit); err != nil {
		return nil, domain.NewPersistenceError("create unit", err)
	}
	return unit, nil
}

func (s *unitService) Update(ctx context.Context, userID, id string, form validation.UnitForm) (*domain.Unit, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	unit, err := form.Validate()
	if err != nil {
		return nil, err
	}
	unit.ID = id
	unit.UpdatedBy = userID
	if err := s.unitRepo.Update(ctx, unit); err != nil {
		return nil, domain.NewPersistenceError("update unit", err)
	}
	return unit, nil
}

// Delete refuses while an active stay still references the unit.
func (s *unitService) Delete(ctx context.Context, id string) error {
	active, err := s.stayRepo.CountActiveByUnit(ctx, id)
	if err != nil {
		return domain.NewPersistenceError("check active stays", err)
	}
	if active > 0 {
		verr := domain.NewValidationError()
		verr.Add("unit_id", "unit has an active stay")
		return verr
	}
	if err := s.unitRepo.Delete(ctx, id); err != nil {
		return domain.NewPersistenceError("delete unit", err)
	}
	return nil
}

func (s *unitService) Get(ctx context.Context, id string) (*domain.Unit, error) {
	unit, err := s.unitRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, domain.NewPersistenceError("load unit", err)
	}
	return unit, nil
}

func (s *unitService) List(ctx context.Context, status string) ([]domain.Unit, error) {
	units, err := s.unitRepo.List(ctx, status)
	if err != nil {
		return nil, domain.NewPersistenceError("list units", err)
	}
	return units, nil
}
