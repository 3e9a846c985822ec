package unit

import (
	"context"
	"testing"
	"time"

	"pousada-backend/internal/domain"
	"pousada-backend/internal/service"
	"pousada-backend/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testUserID = "11111111-1111-1111-1111-111111111111"

func validStayForm() validation.StayForm {
	return validation.StayForm{
		UnitID:      "unit-1",
		GuestID:     "guest-1",
		StartDate:   "2026-08-01",
		MonthlyRent: "1500.00",
		Status:      "active",
	}
}

func TestStayService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success occupies unit", func(t *testing.T) {
		stayRepo := new(MockStayRepo)
		unitRepo := new(MockUnitRepo)
		guestRepo := new(MockGuestRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewStayService(stayRepo, unitRepo, guestRepo, emailSvc)

		unitRepo.On("GetByID", ctx, "unit-1").Return(&domain.Unit{ID: "unit-1", UnitNumber: "101"}, nil)
		guestRepo.On("GetByID", ctx, "guest-1").Return(&domain.Guest{ID: "guest-1", FullName: "Ana Souza"}, nil)
		stayRepo.On("Create", ctx, mock.AnythingOfType("*domain.Stay")).Return(nil)
		unitRepo.On("UpdateStatus", ctx, "unit-1", domain.UnitStatusOccupied, testUserID).Return(nil)

		stay, err := svc.Create(ctx, testUserID, validStayForm())
		assert.NoError(t, err)
		assert.NotNil(t, stay)
		assert.Equal(t, domain.StayStatusActive, stay.Status)
		assert.Equal(t, testUserID, stay.CreatedBy)
		unitRepo.AssertCalled(t, "UpdateStatus", ctx, "unit-1", domain.UnitStatusOccupied, testUserID)
	})

	t.Run("Zero rent rejected before any repo call", func(t *testing.T) {
		stayRepo := new(MockStayRepo)
		unitRepo := new(MockUnitRepo)
		guestRepo := new(MockGuestRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewStayService(stayRepo, unitRepo, guestRepo, emailSvc)

		form := validStayForm()
		form.MonthlyRent = "0"

		stay, err := svc.Create(ctx, testUserID, form)
		assert.Nil(t, stay)

		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "monthly_rent")
		stayRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		unitRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing user rejected", func(t *testing.T) {
		stayRepo := new(MockStayRepo)
		unitRepo := new(MockUnitRepo)
		guestRepo := new(MockGuestRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewStayService(stayRepo, unitRepo, guestRepo, emailSvc)

		stay, err := svc.Create(ctx, "", validStayForm())
		assert.Nil(t, stay)
		assert.ErrorIs(t, err, domain.ErrAuthenticationRequired)
		stayRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Unit write failure surfaces without rolling back the stay", func(t *testing.T) {
		stayRepo := new(MockStayRepo)
		unitRepo := new(MockUnitRepo)
		guestRepo := new(MockGuestRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewStayService(stayRepo, unitRepo, guestRepo, emailSvc)

		unitRepo.On("GetByID", ctx, "unit-1").Return(&domain.Unit{ID: "unit-1"}, nil)
		guestRepo.On("GetByID", ctx, "guest-1").Return(&domain.Guest{ID: "guest-1"}, nil)
		stayRepo.On("Create", ctx, mock.AnythingOfType("*domain.Stay")).Return(nil)
		unitRepo.On("UpdateStatus", ctx, "unit-1", domain.UnitStatusOccupied, testUserID).Return(assert.AnError)

		stay, err := svc.Create(ctx, testUserID, validStayForm())
		assert.Nil(t, stay)

		var perr *domain.PersistenceError
		if assert.ErrorAs(t, err, &perr) {
			assert.Equal(t, "occupy unit", perr.Op)
		}
		// The stay insert stands; no compensating write is issued.
		stayRepo.AssertNumberOfCalls(t, "Create", 1)
		stayRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Dangling unit reference becomes field error", func(t *testing.T) {
		stayRepo := new(MockStayRepo)
		unitRepo := new(MockUnitRepo)
		guestRepo := new(MockGuestRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewStayService(stayRepo, unitRepo, guestRepo, emailSvc)

		unitRepo.On("GetByID", ctx, "unit-1").Return(nil, domain.ErrNotFound)

		stay, err := svc.Create(ctx, testUserID, validStayForm())
		assert.Nil(t, stay)

		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "unit_id")
		stayRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestStayService_Update(t *testing.T) {
	ctx := context.Background()

	setup := func() (*MockStayRepo, *MockUnitRepo, *MockGuestRepo, service.StayService) {
		stayRepo := new(MockStayRepo)
		unitRepo := new(MockUnitRepo)
		guestRepo := new(MockGuestRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewStayService(stayRepo, unitRepo, guestRepo, emailSvc)

		unitRepo.On("GetByID", ctx, mock.AnythingOfType("string")).Return(&domain.Unit{ID: "any"}, nil)
		guestRepo.On("GetByID", ctx, "guest-1").Return(&domain.Guest{ID: "guest-1"}, nil)
		stayRepo.On("Update", ctx, mock.AnythingOfType("*domain.Stay")).Return(nil)
		return stayRepo, unitRepo, guestRepo, svc
	}

	t.Run("Re-assignment frees original and occupies new unit", func(t *testing.T) {
		_, unitRepo, _, svc := setup()

		form := validStayForm()
		form.UnitID = "unit-2"

		unitRepo.On("UpdateStatus", ctx, "unit-1", domain.UnitStatusAvailable, testUserID).Return(nil)
		unitRepo.On("UpdateStatus", ctx, "unit-2", domain.UnitStatusOccupied, testUserID).Return(nil)

		stay, err := svc.Update(ctx, testUserID, "stay-1", form, "unit-1")
		assert.NoError(t, err)
		assert.NotNil(t, stay)
		unitRepo.AssertCalled(t, "UpdateStatus", ctx, "unit-1", domain.UnitStatusAvailable, testUserID)
		unitRepo.AssertCalled(t, "UpdateStatus", ctx, "unit-2", domain.UnitStatusOccupied, testUserID)
	})

	t.Run("Re-assignment of a completed stay only frees the original unit", func(t *testing.T) {
		_, unitRepo, _, svc := setup()

		form := validStayForm()
		form.UnitID = "unit-2"
		form.Status = "completed"

		unitRepo.On("UpdateStatus", ctx, "unit-1", domain.UnitStatusAvailable, testUserID).Return(nil)

		_, err := svc.Update(ctx, testUserID, "stay-1", form, "unit-1")
		assert.NoError(t, err)
		unitRepo.AssertCalled(t, "UpdateStatus", ctx, "unit-1", domain.UnitStatusAvailable, testUserID)
		unitRepo.AssertNumberOfCalls(t, "UpdateStatus", 1)
	})

	t.Run("Same unit, deactivated stay frees the unit", func(t *testing.T) {
		_, unitRepo, _, svc := setup()

		form := validStayForm()
		form.Status = "cancelled"

		unitRepo.On("UpdateStatus", ctx, "unit-1", domain.UnitStatusAvailable, testUserID).Return(nil)

		_, err := svc.Update(ctx, testUserID, "stay-1", form, "unit-1")
		assert.NoError(t, err)
		unitRepo.AssertCalled(t, "UpdateStatus", ctx, "unit-1", domain.UnitStatusAvailable, testUserID)
	})

	t.Run("Same unit, still active leaves unit untouched", func(t *testing.T) {
		_, unitRepo, _, svc := setup()

		_, err := svc.Update(ctx, testUserID, "stay-1", validStayForm(), "unit-1")
		assert.NoError(t, err)
		unitRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failed free of the original unit surfaces after the stay write", func(t *testing.T) {
		stayRepo, unitRepo, _, svc := setup()

		form := validStayForm()
		form.UnitID = "unit-2"

		unitRepo.On("UpdateStatus", ctx, "unit-1", domain.UnitStatusAvailable, testUserID).Return(assert.AnError)

		stay, err := svc.Update(ctx, testUserID, "stay-1", form, "unit-1")
		assert.Nil(t, stay)

		var perr *domain.PersistenceError
		if assert.ErrorAs(t, err, &perr) {
			assert.Equal(t, "free original unit", perr.Op)
		}
		// The stay row already points at unit-2 and is not reverted;
		// the new unit is never occupied either.
		stayRepo.AssertNumberOfCalls(t, "Update", 1)
		unitRepo.AssertNumberOfCalls(t, "UpdateStatus", 1)
	})
}

func TestStayService_Finalize(t *testing.T) {
	ctx := context.Background()

	t.Run("Success completes stay and frees unit", func(t *testing.T) {
		stayRepo := new(MockStayRepo)
		unitRepo := new(MockUnitRepo)
		guestRepo := new(MockGuestRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewStayService(stayRepo, unitRepo, guestRepo, emailSvc)

		existing := &domain.Stay{
			ID:      "stay-1",
			UnitID:  "unit-1",
			GuestID: "guest-1",
			Status:  domain.StayStatusActive,
		}
		stayRepo.On("GetByID", ctx, "stay-1").Return(existing, nil)
		stayRepo.On("Update", ctx, mock.AnythingOfType("*domain.Stay")).Return(nil)
		unitRepo.On("UpdateStatus", ctx, "unit-1", domain.UnitStatusAvailable, testUserID).Return(nil)
		guestRepo.On("GetByID", ctx, "guest-1").Return(&domain.Guest{ID: "guest-1", FullName: "Ana Souza", Email: "ana@test.com"}, nil)
		unitRepo.On("GetByID", ctx, "unit-1").Return(&domain.Unit{ID: "unit-1", UnitNumber: "101"}, nil)
		emailSvc.On("SendCheckoutConfirmation", ctx, "ana@test.com", "Ana Souza", "101").Return(nil)

		stay, err := svc.Finalize(ctx, testUserID, "stay-1", "unit-1")
		assert.NoError(t, err)
		assert.Equal(t, domain.StayStatusCompleted, stay.Status)
		if assert.NotNil(t, stay.EndDate) {
			assert.Equal(t, time.Now().Format("2006-01-02"), *stay.EndDate)
		}
		unitRepo.AssertCalled(t, "UpdateStatus", ctx, "unit-1", domain.UnitStatusAvailable, testUserID)
		emailSvc.AssertCalled(t, "SendCheckoutConfirmation", ctx, "ana@test.com", "Ana Souza", "101")
	})

	t.Run("Unknown stay returns not found", func(t *testing.T) {
		stayRepo := new(MockStayRepo)
		unitRepo := new(MockUnitRepo)
		guestRepo := new(MockGuestRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewStayService(stayRepo, unitRepo, guestRepo, emailSvc)

		stayRepo.On("GetByID", ctx, "missing").Return(nil, domain.ErrNotFound)

		stay, err := svc.Finalize(ctx, testUserID, "missing", "unit-1")
		assert.Nil(t, stay)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		unitRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failed unit free surfaces after the stay is completed", func(t *testing.T) {
		stayRepo := new(MockStayRepo)
		unitRepo := new(MockUnitRepo)
		guestRepo := new(MockGuestRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewStayService(stayRepo, unitRepo, guestRepo, emailSvc)

		stayRepo.On("GetByID", ctx, "stay-1").Return(&domain.Stay{ID: "stay-1", UnitID: "unit-1", GuestID: "guest-1", Status: domain.StayStatusActive}, nil)
		stayRepo.On("Update", ctx, mock.AnythingOfType("*domain.Stay")).Return(nil)
		unitRepo.On("UpdateStatus", ctx, "unit-1", domain.UnitStatusAvailable, testUserID).Return(assert.AnError)

		stay, err := svc.Finalize(ctx, testUserID, "stay-1", "unit-1")
		assert.Nil(t, stay)

		var perr *domain.PersistenceError
		if assert.ErrorAs(t, err, &perr) {
			assert.Equal(t, "free unit", perr.Op)
		}
		// The completed stay is not reverted and no confirmation goes out.
		stayRepo.AssertNumberOfCalls(t, "Update", 1)
		emailSvc.AssertNotCalled(t, "SendCheckoutConfirmation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Email failure does not fail the checkout", func(t *testing.T) {
		stayRepo := new(MockStayRepo)
		unitRepo := new(MockUnitRepo)
		guestRepo := new(MockGuestRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewStayService(stayRepo, unitRepo, guestRepo, emailSvc)

		stayRepo.On("GetByID", ctx, "stay-1").Return(&domain.Stay{ID: "stay-1", UnitID: "unit-1", GuestID: "guest-1", Status: domain.StayStatusActive}, nil)
		stayRepo.On("Update", ctx, mock.AnythingOfType("*domain.Stay")).Return(nil)
		unitRepo.On("UpdateStatus", ctx, "unit-1", domain.UnitStatusAvailable, testUserID).Return(nil)
		guestRepo.On("GetByID", ctx, "guest-1").Return(&domain.Guest{ID: "guest-1", FullName: "Ana Souza", Email: "ana@test.com"}, nil)
		unitRepo.On("GetByID", ctx, "unit-1").Return(&domain.Unit{ID: "unit-1", UnitNumber: "101"}, nil)
		emailSvc.On("SendCheckoutConfirmation", ctx, mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

		stay, err := svc.Finalize(ctx, testUserID, "stay-1", "unit-1")
		assert.NoError(t, err)
		assert.NotNil(t, stay)
	})
}
