package service

import (
	"context"
	"errors"
	"time"

	"pousada-backend/internal/domain"
	"pousada-backend/internal/logger"
	"pousada-backend/internal/repository"
	"pousada-backend/internal/validation"
)

type stayService struct {
	stayRepo  repository.StayRepository
	unitRepo  repository.UnitRepository
	guestRepo repository.GuestRepository
	emailSvc  EmailService
}

func NewStayService(
	stayRepo repository.StayRepository,
	unitRepo repository.UnitRepository,
	guestRepo repository.GuestRepository,
	emailSvc EmailService,
) StayService {
	return &stayService{
		stayRepo:  stayRepo,
		unitRepo:  unitRepo,
		guestRepo: guestRepo,
		emailSvc:  emailSvc,
	}
}

// Create inserts the stay, then marks the unit occupied. The unit write is
// skipped entirely when the stay insert fails. A failed unit write after a
// successful insert is surfaced to the caller and left for manual
// reconciliation; there is no rollback of the stay.
func (s *stayService) Create(ctx context.Context, userID string, form validation.StayForm) (*domain.Stay, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	stay, err := form.Validate()
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, stay.UnitID, stay.GuestID); err != nil {
		return nil, err
	}

	stay.CreatedBy = userID
	stay.UpdatedBy = userID
	if err := s.stayRepo.Create(ctx, stay); err != nil {
		return nil, domain.NewPersistenceError("create stay", err)
	}

	if err := s.unitRepo.UpdateStatus(ctx, stay.UnitID, domain.UnitStatusOccupied, userID); err != nil {
		logger.Warn("Stay created but unit status update failed", "stay_id", stay.ID, "unit_id", stay.UnitID, "error", err)
		return nil, domain.NewPersistenceError("occupy unit", err)
	}
	return stay, nil
}

// Update writes the stay first, then reconciles unit status:
//   - unit changed: original unit freed; new unit occupied when the stay
//     stays active
//   - unit unchanged, status left active: no unit write
//   - unit unchanged, status moved to completed/cancelled: unit freed
func (s *stayService) Update(ctx context.Context, userID, stayID string, form validation.StayForm, originalUnitID string) (*domain.Stay, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	stay, err := form.Validate()
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, stay.UnitID, stay.GuestID); err != nil {
		return nil, err
	}

	stay.ID = stayID
	stay.UpdatedBy = userID
	if err := s.stayRepo.Update(ctx, stay); err != nil {
		return nil, domain.NewPersistenceError("update stay", err)
	}

	if originalUnitID != stay.UnitID {
		if err := s.unitRepo.UpdateStatus(ctx, originalUnitID, domain.UnitStatusAvailable, userID); err != nil {
			logger.Warn("Stay updated but original unit not freed", "stay_id", stayID, "unit_id", originalUnitID, "error", err)
			return nil, domain.NewPersistenceError("free original unit", err)
		}
		if stay.Status == domain.StayStatusActive {
			if err := s.unitRepo.UpdateStatus(ctx, stay.UnitID, domain.UnitStatusOccupied, userID); err != nil {
				logger.Warn("Stay updated but new unit not occupied", "stay_id", stayID, "unit_id", stay.UnitID, "error", err)
				return nil, domain.NewPersistenceError("occupy unit", err)
			}
		}
	} else if stay.Status != domain.StayStatusActive {
		if err := s.unitRepo.UpdateStatus(ctx, stay.UnitID, domain.UnitStatusAvailable, userID); err != nil {
			logger.Warn("Stay updated but unit not freed", "stay_id", stayID, "unit_id", stay.UnitID, "error", err)
			return nil, domain.NewPersistenceError("free unit", err)
		}
	}
	return stay, nil
}

// Finalize is the check-out shortcut: status to completed, end date to
// today, unit back to available. Confirmation is the caller's job.
func (s *stayService) Finalize(ctx context.Context, userID, stayID, unitID string) (*domain.Stay, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	stay, err := s.stayRepo.GetByID(ctx, stayID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, domain.NewPersistenceError("load stay", err)
	}

	today := time.Now().Format("2006-01-02")
	stay.Status = domain.StayStatusCompleted
	stay.EndDate = &today
	stay.UpdatedBy = userID
	if err := s.stayRepo.Update(ctx, stay); err != nil {
		return nil, domain.NewPersistenceError("finalize stay", err)
	}

	if err := s.unitRepo.UpdateStatus(ctx, unitID, domain.UnitStatusAvailable, userID); err != nil {
		logger.Warn("Stay finalized but unit not freed", "stay_id", stayID, "unit_id", unitID, "error", err)
		return nil, domain.NewPersistenceError("free unit", err)
	}

	// Checkout confirmation is best-effort.
	guest, _ := s.guestRepo.GetByID(ctx, stay.GuestID)
	unit, _ := s.unitRepo.GetByID(ctx, unitID)
	if guest != nil && unit != nil && guest.Email != "" {
		_ = s.emailSvc.SendCheckoutConfirmation(ctx, guest.Email, guest.FullName, unit.UnitNumber)
	}

	return stay, nil
}

func (s *stayService) Get(ctx context.Context, id string) (*domain.Stay, error) {
	stay, err := s.stayRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, domain.NewPersistenceError("load stay", err)
	}
	return stay, nil
}

func (s *stayService) List(ctx context.Context, status string) ([]domain.StayDetails, error) {
	stays, err := s.stayRepo.ListWithDetails(ctx, status)
	if err != nil {
		return nil, domain.NewPersistenceError("list stays", err)
	}
	return stays, nil
}

// checkReferences turns a dangling unit or guest reference into a
// field-level validation error.
func (s *stayService) checkReferences(ctx context.Context, unitID, guestID string) error {
	if _, err := s.unitRepo.GetByID(ctx, unitID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			verr := domain.NewValidationError()
			verr.Add("unit_id", "unit does not exist")
			return verr
		}
		return domain.NewPersistenceError("load unit", err)
	}
	if _, err := s.guestRepo.GetByID(ctx, guestID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			verr := domain.NewValidationError()
			verr.Add("guest_id", "guest does not exist")
			return verr
		}
		return domain.NewPersistenceError("load guest", err)
	}
	return nil
}
