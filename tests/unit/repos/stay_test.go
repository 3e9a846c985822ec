package repos

import (
	"context"
	"testing"
	"time"

	"pousada-backend/internal/domain"
	"pousada-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStayRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewStayRepository(db)
	ctx := context.Background()

	t.Run("Success assigns id and timestamps", func(t *testing.T) {
		stay := &domain.Stay{
			UnitID:      "unit-1",
			GuestID:     "guest-1",
			StartDate:   "2026-08-01",
			MonthlyRent: decimal.NewFromInt(1500),
			Status:      domain.StayStatusActive,
			CreatedBy:   "user-1",
			UpdatedBy:   "user-1",
		}

		mock.ExpectExec("INSERT INTO stays").
			WithArgs(sqlmock.AnyArg(), stay.UnitID, stay.GuestID, stay.StartDate, nil, stay.MonthlyRent, stay.Status, stay.CreatedBy, stay.UpdatedBy, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, stay)
		assert.NoError(t, err)
		assert.NotEmpty(t, stay.ID)
		assert.False(t, stay.CreatedAt.IsZero())
	})
}

func TestStayRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewStayRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "unit_id", "guest_id", "start_date", "end_date", "monthly_rent", "status", "created_by", "updated_by", "created_at", "updated_at"}).
			AddRow("stay-1", "unit-1", "guest-1", "2026-08-01", nil, "1500", "active", "user-1", "user-1", time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM stays WHERE id = \\$1").
			WithArgs("stay-1").
			WillReturnRows(rows)

		stay, err := repo.GetByID(ctx, "stay-1")
		assert.NoError(t, err)
		assert.NotNil(t, stay)
		assert.Equal(t, "stay-1", stay.ID)
		assert.Equal(t, domain.StayStatusActive, stay.Status)
		assert.Nil(t, stay.EndDate)
	})

	t.Run("Missing row maps to not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM stays WHERE id = \\$1").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		stay, err := repo.GetByID(ctx, "missing")
		assert.Nil(t, stay)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestStayRepository_ListIDsByUnit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewStayRepository(db)
	ctx := context.Background()

	t.Run("Returns matching stay ids", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id"}).AddRow("stay-1").AddRow("stay-2")

		mock.ExpectQuery("SELECT id FROM stays WHERE unit_id = \\$1").
			WithArgs("unit-1").
			WillReturnRows(rows)

		ids, err := repo.ListIDsByUnit(ctx, "unit-1")
		assert.NoError(t, err)
		assert.Equal(t, []string{"stay-1", "stay-2"}, ids)
	})

	t.Run("No stays yields empty set", func(t *testing.T) {
		mock.ExpectQuery("SELECT id FROM stays WHERE unit_id = \\$1").
			WithArgs("unit-9").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		ids, err := repo.ListIDsByUnit(ctx, "unit-9")
		assert.NoError(t, err)
		assert.Empty(t, ids)
	})
}

func TestStayRepository_CountActiveByUnit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewStayRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM stays WHERE unit_id = \\$1 AND status = 'active'").
		WithArgs("unit-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountActiveByUnit(ctx, "unit-1")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
