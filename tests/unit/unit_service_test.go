package unit

import (
	"context"
	"testing"

	"pousada-backend/internal/domain"
	"pousada-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUnitService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Refuses while an active stay references the unit", func(t *testing.T) {
		unitRepo := new(MockUnitRepo)
		stayRepo := new(MockStayRepo)
		svc := service.NewUnitService(unitRepo, stayRepo)

		stayRepo.On("CountActiveByUnit", ctx, "unit-1").Return(int64(1), nil)

		err := svc.Delete(ctx, "unit-1")

		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "unit_id")
		unitRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Deletes when no active stays remain", func(t *testing.T) {
		unitRepo := new(MockUnitRepo)
		stayRepo := new(MockStayRepo)
		svc := service.NewUnitService(unitRepo, stayRepo)

		stayRepo.On("CountActiveByUnit", ctx, "unit-1").Return(int64(0), nil)
		unitRepo.On("Delete", ctx, "unit-1").Return(nil)

		err := svc.Delete(ctx, "unit-1")
		assert.NoError(t, err)
		unitRepo.AssertCalled(t, "Delete", ctx, "unit-1")
	})
}
