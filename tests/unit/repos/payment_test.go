package repos

import (
	"context"
	"testing"
	"time"

	"pousada-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func paymentDetailColumns() []string {
	return []string{"id", "stay_id", "payment_date", "amount_paid", "reference_month", "reference_year", "status", "notes", "created_by", "updated_by", "created_at", "updated_at", "unit_number", "full_name"}
}

func TestPaymentRepository_ListWithDetails(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPaymentRepository(db)
	ctx := context.Background()

	t.Run("No filters queries all joined payments", func(t *testing.T) {
		rows := sqlmock.NewRows(paymentDetailColumns()).
			AddRow("pay-1", "stay-1", "2026-08-05", "1500", 8, 2026, "paid", "", "user-1", "user-1", time.Now(), time.Now(), "101", "Ana Souza")

		mock.ExpectQuery("SELECT (.+) FROM payments p").
			WillReturnRows(rows)

		payments, err := repo.ListWithDetails(ctx, nil, 0, 0, "")
		assert.NoError(t, err)
		assert.Len(t, payments, 1)
		assert.Equal(t, "101", payments[0].UnitNumber)
		assert.Equal(t, "Ana Souza", payments[0].GuestFullName)
	})

	t.Run("Stay set and equality filters bind in order", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM payments p").
			WithArgs(sqlmock.AnyArg(), 8, 2026, "pending").
			WillReturnRows(sqlmock.NewRows(paymentDetailColumns()))

		payments, err := repo.ListWithDetails(ctx, []string{"stay-1", "stay-2"}, 8, 2026, "pending")
		assert.NoError(t, err)
		assert.Empty(t, payments)
	})
}

func TestPaymentRepository_MarkOverdue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPaymentRepository(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE payments SET status = 'overdue'").
		WithArgs(sqlmock.AnyArg(), 2026, 8).
		WillReturnResult(sqlmock.NewResult(0, 3))

	count, err := repo.MarkOverdue(ctx, 8, 2026)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestPaymentRepository_ListOverdueNotices(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPaymentRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "full_name", "email", "unit_number", "reference_month", "reference_year", "amount_paid"}).
		AddRow("pay-1", "Ana Souza", "ana@test.com", "101", 7, 2026, "1500")

	mock.ExpectQuery("SELECT (.+) FROM payments p").
		WillReturnRows(rows)

	notices, err := repo.ListOverdueNotices(ctx)
	assert.NoError(t, err)
	assert.Len(t, notices, 1)
	assert.Equal(t, "ana@test.com", notices[0].GuestEmail)
	assert.Equal(t, 7, notices[0].ReferenceMonth)
}
