package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"pousada-backend/internal/domain"
	"pousada-backend/internal/repository"

	"github.com/google/uuid"
)

type stayRepository struct {
	db *sql.DB
}

func NewStayRepository(db *sql.DB) repository.StayRepository {
	return &stayRepository{db: db}
}

func (r *stayRepository) Create(ctx context.Context, st *domain.Stay) error {
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	query := `INSERT INTO stays (id, unit_id, guest_id, start_date, end_date, monthly_rent, status, created_by, updated_by, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	now := time.Now()
	st.CreatedAt = now
	st.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, query, st.ID, st.UnitID, st.GuestID, st.StartDate, st.EndDate, st.MonthlyRent, st.Status, st.CreatedBy, st.UpdatedBy, st.CreatedAt, st.UpdatedAt)
	return err
}

func (r *stayRepository) GetByID(ctx context.Context, id string) (*domain.Stay, error) {
	st := &domain.Stay{}
	query := `SELECT id, unit_id, guest_id, start_date, end_date, monthly_rent, status, created_by, updated_by, created_at, updated_at FROM stays WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&st.ID, &st.UnitID, &st.GuestID, &st.StartDate, &st.EndDate, &st.MonthlyRent, &st.Status, &st.CreatedBy, &st.UpdatedBy, &st.CreatedAt, &st.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return st, nil
}

func (r *stayRepository) Update(ctx context.Context, st *domain.Stay) error {
	query := `UPDATE stays SET unit_id=$1, guest_id=$2, start_date=$3, end_date=$4, monthly_rent=$5, status=$6, updated_by=$7, updated_at=$8 WHERE id=$9`
	st.UpdatedAt = time.Now()
	_, err := r.db.ExecContext(ctx, query, st.UnitID, st.GuestID, st.StartDate, st.EndDate, st.MonthlyRent, st.Status, st.UpdatedBy, st.UpdatedAt, st.ID)
	return err
}

func (r *stayRepository) ListWithDetails(ctx context.Context, status string) ([]domain.StayDetails, error) {
	query := `SELECT s.id, s.unit_id, s.guest_id, s.start_date, s.end_date, s.monthly_rent, s.status, s.created_by, s.updated_by, s.created_at, s.updated_at, u.unit_number, g.full_name
	          FROM stays s
	          JOIN units u ON u.id = s.unit_id
	          JOIN guests g ON g.id = s.guest_id`
	args := []interface{}{}
	if status != "" {
		query += " WHERE s.status = $1"
		args = append(args, status)
	}
	query += " ORDER BY s.start_date DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stays []domain.StayDetails
	for rows.Next() {
		var st domain.StayDetails
		if err := rows.Scan(&st.ID, &st.UnitID, &st.GuestID, &st.StartDate, &st.EndDate, &st.MonthlyRent, &st.Status, &st.CreatedBy, &st.UpdatedBy, &st.CreatedAt, &st.UpdatedAt, &st.UnitNumber, &st.GuestFullName); err != nil {
			return nil, err
		}
		stays = append(stays, st)
	}
	return stays, rows.Err()
}

func (r *stayRepository) ListIDsByUnit(ctx context.Context, unitID string) ([]string, error) {
	return r.listIDs(ctx, `SELECT id FROM stays WHERE unit_id = $1`, unitID)
}

func (r *stayRepository) ListIDsByGuest(ctx context.Context, guestID string) ([]string, error) {
	return r.listIDs(ctx, `SELECT id FROM stays WHERE guest_id = $1`, guestID)
}

func (r *stayRepository) listIDs(ctx context.Context, query, arg string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *stayRepository) CountActiveByUnit(ctx context.Context, unitID string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM stays WHERE unit_id = $1 AND status = 'active'`, unitID).Scan(&count)
	return count, err
}

func (r *stayRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM stays`).Scan(&count)
	return count, err
}
