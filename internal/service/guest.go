package service

import (
	"context"
	"errors"

	"pousada-backend/internal/domain"
	"pousada-backend/internal/repository"
	"pousada-backend/internal/validation"
)

type guestService struct {
	guestRepo repository.GuestRepository
}

func NewGuestService(guestRepo repository.GuestRepository) GuestService {
	return &guestService{guestRepo: guestRepo}
}

func (s *guestService) Create(ctx context.Context, userID string, form validation.GuestForm) (*domain.Guest, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	guest, err := form.Validate()
	if err != nil {
		return nil, err
	}
	guest.CreatedBy = userID
	guest.UpdatedBy = userID
	if err := s.guestRepo.Create(ctx, guest); err != nil {
		return nil, domain.NewPersistenceError("create guest", err)
	}
	return guest, nil
}

func (s *guestService) Update(ctx context.Context, userID, id string, form validation.GuestForm) (*domain.Guest, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	guest, err := form.Validate()
	if err != nil {
		return nil, err
	}
	guest.ID = id
	guest.UpdatedBy = userID
	if err := s.guestRepo.Update(ctx, guest); err != nil {
		return nil, domain.NewPersistenceError("update guest", err)
	}
	return guest, nil
}

func (s *guestService) Delete(ctx context.Context, id string) error {
	if err := s.guestRepo.Delete(ctx, id); err != nil {
		return domain.NewPersistenceError("delete guest", err)
	}
	return nil
}

func (s *guestService) Get(ctx context.Context, id string) (*domain.Guest, error) {
	guest, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, domain.NewPersistenceError("load guest", err)
	}
	return guest, nil
}

func (s *guestService) List(ctx context.Context) ([]domain.Guest, error) {
	guests, err := s.guestRepo.List(ctx)
	if err != nil {
		return nil, domain.NewPersistenceError("list guests", err)
	}
	return guests, nil
}
