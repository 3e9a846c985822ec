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

type unitRepository struct {
	db *sql.DB
}

func NewUnitRepository(db *sql.DB) repository.UnitRepository {
	return &unitRepository{db: db}
}

func (r *unitRepository) Create(ctx context.Context, u *domain.Unit) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	query := `INSERT INTO units (id, address_id, unit_number, description, status, created_by, updated_by, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, query, u.ID, u.AddressID, u.UnitNumber, u.Description, u.Status, u.CreatedBy, u.UpdatedBy, u.CreatedAt, u.UpdatedAt)
	return err
}

func (r *unitRepository) GetByID(ctx context.Context, id string) (*domain.Unit, error) {
	u := &domain.Unit{}
	query := `SELECT id, address_id, unit_number, description, status, created_by, updated_by, created_at, updated_at FROM units WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.AddressID, &u.UnitNumber, &u.Description, &u.Status, &u.CreatedBy, &u.UpdatedBy, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *unitRepository) Update(ctx context.Context, u *domain.Unit) error {
	query := `UPDATE units SET address_id=$1, unit_number=$2, description=$3, status=$4, updated_by=$5, updated_at=$6 WHERE id=$7`
	u.UpdatedAt = time.Now()
	_, err := r.db.ExecContext(ctx, query, u.AddressID, u.UnitNumber, u.Description, u.Status, u.UpdatedBy, u.UpdatedAt, u.ID)
	return err
}

func (r *unitRepository) UpdateStatus(ctx context.Context, id string, status domain.UnitStatus, userID string) error {
	query := `UPDATE units SET status=$1, updated_by=$2, updated_at=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, status, userID, time.Now(), id)
	return err
}

func (r *unitRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM units WHERE id = $1`, id)
	return err
}

func (r *unitRepository) List(ctx context.Context, status string) ([]domain.Unit, error) {
	query := `SELECT id, address_id, unit_number, description, status, created_by, updated_by, created_at, updated_at FROM units`
	args := []interface{}{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY unit_number"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []domain.Unit
	for rows.Next() {
		var u domain.Unit
		if err := rows.Scan(&u.ID, &u.AddressID, &u.UnitNumber, &u.Description, &u.Status, &u.CreatedBy, &u.UpdatedBy, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

func (r *unitRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM units`).Scan(&count)
	return count, err
}
