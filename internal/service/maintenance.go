package service

import (
	"context"
	"errors"

	"pousada-backend/internal/domain"
	"pousada-backend/internal/repository"
	"pousada-backend/internal/validation"

	"github.com/shopspring/decimal"
)

type maintenanceService struct {
	itemRepo repository.ItemRepository
	logRepo  repository.MaintenanceLogRepository
}

func NewMaintenanceService(itemRepo repository.ItemRepository, logRepo repository.MaintenanceLogRepository) MaintenanceService {
	return &maintenanceService{itemRepo: itemRepo, logRepo: logRepo}
}

// SanitizeCompletionFields clears date_completed, cost and service_provider
// unless the log is completed, whatever the form contained. Pure function,
// applied on both create and update.
func SanitizeCompletionFields(log domain.MaintenanceLog) domain.MaintenanceLog {
	if log.Status != domain.MaintenanceStatusCompleted {
		log.DateCompleted = nil
		log.Cost = decimal.NullDecimal{}
		log.ServiceProvider = nil
	}
	return log
}

func (s *maintenanceService) CreateItem(ctx context.Context, userID string, form validation.ItemForm) (*domain.Item, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	item, err := form.Validate()
	if err != nil {
		return nil, err
	}
	item.CreatedBy = userID
	item.UpdatedBy = userID
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, domain.NewPersistenceError("create item", err)
	}
	return item, nil
}

func (s *maintenanceService) UpdateItem(ctx context.Context, userID, id string, form validation.ItemForm) (*domain.Item, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	item, err := form.Validate()
	if err != nil {
		return nil, err
	}
	item.ID = id
	item.UpdatedBy = userID
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, domain.NewPersistenceError("update item", err)
	}
	return item, nil
}

func (s *maintenanceService) DeleteItem(ctx context.Context, id string) error {
	if err := s.itemRepo.Delete(ctx, id); err != nil {
		return domain.NewPersistenceError("delete item", err)
	}
	return nil
}

func (s *maintenanceService) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, domain.NewPersistenceError("load item", err)
	}
	return item, nil
}

func (s *maintenanceService) ListItems(ctx context.Context, unitID string) ([]domain.Item, error) {
	items, err := s.itemRepo.List(ctx, unitID)
	if err != nil {
		return nil, domain.NewPersistenceError("list items", err)
	}
	return items, nil
}

func (s *maintenanceService) CreateLog(ctx context.Context, userID string, form validation.MaintenanceForm) (*domain.MaintenanceLog, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	log, err := form.Validate()
	if err != nil {
		return nil, err
	}
	sanitized := SanitizeCompletionFields(*log)
	sanitized.CreatedBy = userID
	sanitized.UpdatedBy = userID
	if err := s.logRepo.Create(ctx, &sanitized); err != nil {
		return nil, domain.NewPersistenceError("create maintenance log", err)
	}
	return &sanitized, nil
}

func (s *maintenanceService) UpdateLog(ctx context.Context, userID, id string, form validation.MaintenanceForm) (*domain.MaintenanceLog, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	log, err := form.Validate()
	if err != nil {
		return nil, err
	}
	sanitized := SanitizeCompletionFields(*log)
	sanitized.ID = id
	sanitized.UpdatedBy = userID
	if err := s.logRepo.Update(ctx, &sanitized); err != nil {
		return nil, domain.NewPersistenceError("update maintenance log", err)
	}
	return &sanitized, nil
}

func (s *maintenanceService) DeleteLog(ctx context.Context, id string) error {
	if err := s.logRepo.Delete(ctx, id); err != nil {
		return domain.NewPersistenceError("delete maintenance log", err)
	}
	return nil
}

func (s *maintenanceService) GetLog(ctx context.Context, id string) (*domain.MaintenanceLog, error) {
	log, err := s.logRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, domain.NewPersistenceError("load maintenance log", err)
	}
	return log, nil
}

func (s *maintenanceService) ListLogs(ctx context.Context, filters domain.MaintenanceFilters) ([]domain.MaintenanceLog, error) {
	logs, err := s.logRepo.List(ctx, filters)
	if err != nil {
		return nil, domain.NewPersistenceError("list maintenance logs", err)
	}
	return logs, nil
}
