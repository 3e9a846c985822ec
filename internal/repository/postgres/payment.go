package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pousada-backend/internal/domain"
	"pousada-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	query := `INSERT INTO payments (id, stay_id, payment_date, amount_paid, reference_month, reference_year, status, notes, created_by, updated_by, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, query, p.ID, p.StayID, p.PaymentDate, p.AmountPaid, p.ReferenceMonth, p.ReferenceYear, p.Status, p.Notes, p.CreatedBy, p.UpdatedBy, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *paymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	p := &domain.Payment{}
	query := `SELECT id, stay_id, payment_date, amount_paid, reference_month, reference_year, status, notes, created_by, updated_by, created_at, updated_at FROM payments WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.StayID, &p.PaymentDate, &p.AmountPaid, &p.ReferenceMonth, &p.ReferenceYear, &p.Status, &p.Notes, &p.CreatedBy, &p.UpdatedBy, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *paymentRepository) Update(ctx context.Context, p *domain.Payment) error {
	query := `UPDATE payments SET stay_id=$1, payment_date=$2, amount_paid=$3, reference_month=$4, reference_year=$5, status=$6, notes=$7, updated_by=$8, updated_at=$9 WHERE id=$10`
	p.UpdatedAt = time.Now()
	_, err := r.db.ExecContext(ctx, query, p.StayID, p.PaymentDate, p.AmountPaid, p.ReferenceMonth, p.ReferenceYear, p.Status, p.Notes, p.UpdatedBy, p.UpdatedAt, p.ID)
	return err
}

func (r *paymentRepository) ListWithDetails(ctx context.Context, stayIDs []string, month, year int, status string) ([]domain.PaymentDetails, error) {
	query := `SELECT p.id, p.stay_id, p.payment_date, p.amount_paid, p.reference_month, p.reference_year, p.status, p.notes, p.created_by, p.updated_by, p.created_at, p.updated_at, u.unit_number, g.full_name
	          FROM payments p
	          JOIN stays s ON s.id = p.stay_id
	          JOIN units u ON u.id = s.unit_id
	          JOIN guests g ON g.id = s.guest_id
	          WHERE 1=1`

	args := []interface{}{}
	argIdx := 1
	if stayIDs != nil {
		query += fmt.Sprintf(" AND p.stay_id = ANY($%d)", argIdx)
		args = append(args, pq.Array(stayIDs))
		argIdx++
	}
	if month != 0 {
		query += fmt.Sprintf(" AND p.reference_month = $%d", argIdx)
		args = append(args, month)
		argIdx++
	}
	if year != 0 {
		query += fmt.Sprintf(" AND p.reference_year = $%d", argIdx)
		args = append(args, year)
		argIdx++
	}
	if status != "" {
		query += fmt.Sprintf(" AND p.status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}
	query += " ORDER BY p.payment_date DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.PaymentDetails
	for rows.Next() {
		var p domain.PaymentDetails
		if err := rows.Scan(&p.ID, &p.StayID, &p.PaymentDate, &p.AmountPaid, &p.ReferenceMonth, &p.ReferenceYear, &p.Status, &p.Notes, &p.CreatedBy, &p.UpdatedBy, &p.CreatedAt, &p.UpdatedAt, &p.UnitNumber, &p.GuestFullName); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *paymentRepository) MarkOverdue(ctx context.Context, month, year int) (int64, error) {
	query := `UPDATE payments SET status = 'overdue', updated_at = $1
	          WHERE status = 'pending'
	            AND (reference_year < $2 OR (reference_year = $2 AND reference_month < $3))`
	res, err := r.db.ExecContext(ctx, query, time.Now(), year, month)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *paymentRepository) ListOverdueNotices(ctx context.Context) ([]domain.OverdueNotice, error) {
	query := `SELECT p.id, g.full_name, g.email, u.unit_number, p.reference_month, p.reference_year, p.amount_paid
	          FROM payments p
	          JOIN stays s ON s.id = p.stay_id
	          JOIN units u ON u.id = s.unit_id
	          JOIN guests g ON g.id = s.guest_id
	          WHERE p.status = 'overdue' AND g.email <> ''
	          ORDER BY p.reference_year, p.reference_month`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notices []domain.OverdueNotice
	for rows.Next() {
		var n domain.OverdueNotice
		if err := rows.Scan(&n.PaymentID, &n.GuestFullName, &n.GuestEmail, &n.UnitNumber, &n.ReferenceMonth, &n.ReferenceYear, &n.Amount); err != nil {
			return nil, err
		}
		notices = append(notices, n)
	}
	return notices, rows.Err()
}

func (r *paymentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM payments`).Scan(&count)
	return count, err
}
