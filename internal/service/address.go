package service

import (
	"context"
	"errors"

	"pousada-backend/internal/domain"
	"pousada-backend/internal/repository"
	"pousada-backend/internal/validation"
)

type addressService struct {
	addressRepo repository.AddressRepository
}

func NewAddressService(addressRepo repository.AddressRepository) AddressService {
	return &addressService{addressRepo: addressRepo}
}

func (s *addressService) Create(ctx context.Context, userID string, form validation.AddressForm) (*domain.Address, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	addr, err := form.Validate()
	if err != nil {
		return nil, err
	}
	addr.CreatedBy = userID
	addr.UpdatedBy = userID
	if err := s.addressRepo.Create(ctx, addr); err != nil {
		return nil, domain.NewPersistenceError("create address", err)
	}
	return addr, nil
}

func (s *addressService) Update(ctx context.Context, userID, id string, form validation.AddressForm) (*domain.Address, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	addr, err := form.Validate()
	if err != nil {
		return nil, err
	}
	addr.ID = id
	addr.UpdatedBy = userID
	if err := s.addressRepo.Update(ctx, addr); err != nil {
		return nil, domain.NewPersistenceError("update address", err)
	}
	return addr, nil
}

func (s *addressService) Delete(ctx context.Context, id string) error {
	if err := s.addressRepo.Delete(ctx, id); err != nil {
		return domain.NewPersistenceError("delete address", err)
	}
	return nil
}

func (s *addressService) Get(ctx context.Context, id string) (*domain.Address, error) {
	addr, err := s.addressRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, domain.NewPersistenceError("load address", err)
	}
	return addr, nil
}

func (s *addressService) List(ctx context.Context) ([]domain.Address, error) {
	addresses, err := s.addressRepo.List(ctx)
	if err != nil {
		return nil, domain.NewPersistenceError("list addresses", err)
	}
	return addresses, nil
}
