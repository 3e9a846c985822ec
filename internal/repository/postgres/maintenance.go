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
)

type maintenanceLogRepository struct {
	db *sql.DB
}

func NewMaintenanceLogRepository(db *sql.DB) repository.MaintenanceLogRepository {
	return &maintenanceLogRepository{db: db}
}

func (r *maintenanceLogRepository) Create(ctx context.Context, l *domain.MaintenanceLog) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	query := `INSERT INTO maintenance_logs (id, unit_id, item_id, description, date_reported, date_completed, cost, service_provider, status, notes, created_by, updated_by, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	now := time.Now()
	l.CreatedAt = now
	l.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, query, l.ID, l.UnitID, l.ItemID, l.Description, l.DateReported, l.DateCompleted, l.Cost, l.ServiceProvider, l.Status, l.Notes, l.CreatedBy, l.UpdatedBy, l.CreatedAt, l.UpdatedAt)
	return err
}

func (r *maintenanceLogRepository) GetByID(ctx context.Context, id string) (*domain.MaintenanceLog, error) {
	l := &domain.MaintenanceLog{}
	query := `SELECT id, unit_id, item_id, description, date_reported, date_completed, cost, service_provider, status, notes, created_by, updated_by, created_at, updated_at FROM maintenance_logs WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&l.ID, &l.UnitID, &l.ItemID, &l.Description, &l.DateReported, &l.DateCompleted, &l.Cost, &l.ServiceProvider, &l.Status, &l.Notes, &l.CreatedBy, &l.UpdatedBy, &l.CreatedAt, &l.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *maintenanceLogRepository) Update(ctx context.Context, l *domain.MaintenanceLog) error {
	query := `UPDATE maintenance_logs SET unit_id=$1, item_id=$2, description=$3, date_reported=$4, date_completed=$5, cost=$6, service_provider=$7, status=$8, notes=$9, updated_by=$10, updated_at=$11 WHERE id=$12`
	l.UpdatedAt = time.Now()
	_, err := r.db.ExecContext(ctx, query, l.UnitID, l.ItemID, l.Description, l.DateReported, l.DateCompleted, l.Cost, l.ServiceProvider, l.Status, l.Notes, l.UpdatedBy, l.UpdatedAt, l.ID)
	return err
}

func (r *maintenanceLogRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM maintenance_logs WHERE id = $1`, id)
	return err
}

func (r *maintenanceLogRepository) List(ctx context.Context, filters domain.MaintenanceFilters) ([]domain.MaintenanceLog, error) {
	query := `SELECT id, unit_id, item_id, description, date_reported, date_completed, cost, service_provider, status, notes, created_by, updated_by, created_at, updated_at FROM maintenance_logs WHERE 1=1`

	args := []interface{}{}
	argIdx := 1
	if filters.UnitID != "" {
		query += fmt.Sprintf(" AND unit_id = $%d", argIdx)
		args = append(args, filters.UnitID)
		argIdx++
	}
	if filters.ItemID != "" {
		query += fmt.Sprintf(" AND item_id = $%d", argIdx)
		args = append(args, filters.ItemID)
		argIdx++
	}
	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, filters.Status)
		argIdx++
	}
	query += " ORDER BY date_reported DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []domain.MaintenanceLog
	for rows.Next() {
		var l domain.MaintenanceLog
		if err := rows.Scan(&l.ID, &l.UnitID, &l.ItemID, &l.Description, &l.DateReported, &l.DateCompleted, &l.Cost, &l.ServiceProvider, &l.Status, &l.Notes, &l.CreatedBy, &l.UpdatedBy, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (r *maintenanceLogRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM maintenance_logs`).Scan(&count)
	return count, err
}
