package service

import (
	"context"
	"errors"

	"pousada-backend/internal/domain"
	"pousada-backend/internal/repository"
	"pousada-backend/internal/validation"
)

type paymentService struct {
	paymentRepo repository.PaymentRepository
	stayRepo    repository.StayRepository
}

func NewPaymentService(paymentRepo repository.PaymentRepository, stayRepo repository.StayRepository) PaymentService {
	return &paymentService{paymentRepo: paymentRepo, stayRepo: stayRepo}
}

func (s *paymentService) Create(ctx context.Context, userID string, form validation.PaymentForm) (*domain.Payment, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	payment, err := form.Validate()
	if err != nil {
		return nil, err
	}
	payment.CreatedBy = userID
	payment.UpdatedBy = userID
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, domain.NewPersistenceError("create payment", err)
	}
	return payment, nil
}

func (s *paymentService) Update(ctx context.Context, userID, id string, form validation.PaymentForm) (*domain.Payment, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	payment, err := form.Validate()
	if err != nil {
		return nil, err
	}
	payment.ID = id
	payment.UpdatedBy = userID
	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, domain.NewPersistenceError("update payment", err)
	}
	return payment, nil
}

func (s *paymentService) Get(ctx context.Context, id string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, domain.NewPersistenceError("load payment", err)
	}
	return payment, nil
}

// List applies the payment list filters. Unit and guest live on the joined
// stay, so they resolve as a two-step lookup: matching stay IDs first, then
// payments narrowed to that set. Zero matching stays short-circuits to an
// empty result without querying payments at all.
func (s *paymentService) List(ctx context.Context, filters domain.PaymentFilters) ([]domain.PaymentDetails, error) {
	var stayIDs []string

	if filters.UnitID != "" {
		ids, err := s.stayRepo.ListIDsByUnit(ctx, filters.UnitID)
		if err != nil {
			return nil, domain.NewPersistenceError("resolve stays by unit", err)
		}
		if len(ids) == 0 {
			return []domain.PaymentDetails{}, nil
		}
		stayIDs = ids
	}

	if filters.GuestID != "" {
		ids, err := s.stayRepo.ListIDsByGuest(ctx, filters.GuestID)
		if err != nil {
			return nil, domain.NewPersistenceError("resolve stays by guest", err)
		}
		if len(ids) == 0 {
			return []domain.PaymentDetails{}, nil
		}
		if stayIDs == nil {
			stayIDs = ids
		} else {
			stayIDs = intersect(stayIDs, ids)
			if len(stayIDs) == 0 {
				return []domain.PaymentDetails{}, nil
			}
		}
	}

	payments, err := s.paymentRepo.ListWithDetails(ctx, stayIDs, filters.Month, filters.Year, filters.Status)
	if err != nil {
		return nil, domain.NewPersistenceError("list payments", err)
	}
	return payments, nil
}

func intersect(a, b []string) []string {
	set := make(map[string]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}
	var out []string
	for _, v := range b {
		if _, ok := set[v]; ok {
			out = append(out, v)
		}
	}
	return out
}
