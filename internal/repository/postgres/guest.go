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

type guestRepository struct {
	db *sql.DB
}

func NewGuestRepository(db *sql.DB) repository.GuestRepository {
	return &guestRepository{db: db}
}

func (r *guestRepository) Create(ctx context.Context, g *domain.Guest) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	query := `INSERT INTO guests (id, full_name, phone, email, document_id, notes, created_by, updated_by, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	now := time.Now()
	g.CreatedAt = now
	g.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, query, g.ID, g.FullName, g.Phone, g.Email, g.DocumentID, g.Notes, g.CreatedBy, g.UpdatedBy, g.CreatedAt, g.UpdatedAt)
	return err
}

func (r *guestRepository) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	g := &domain.Guest{}
	query := `SELECT id, full_name, phone, email, document_id, notes, created_by, updated_by, created_at, updated_at FROM guests WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&g.ID, &g.FullName, &g.Phone, &g.Email, &g.DocumentID, &g.Notes, &g.CreatedBy, &g.UpdatedBy, &g.CreatedAt, &g.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (r *guestRepository) Update(ctx context.Context, g *domain.Guest) error {
	query := `UPDATE guests SET full_name=$1, phone=$2, email=$3, document_id=$4, notes=$5, updated_by=$6, updated_at=$7 WHERE id=$8`
	g.UpdatedAt = time.Now()
	_, err := r.db.ExecContext(ctx, query, g.FullName, g.Phone, g.Email, g.DocumentID, g.Notes, g.UpdatedBy, g.UpdatedAt, g.ID)
	return err
}

func (r *guestRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM guests WHERE id = $1`, id)
	return err
}

func (r *guestRepository) List(ctx context.Context) ([]domain.Guest, error) {
	query := `SELECT id, full_name, phone, email, document_id, notes, created_by, updated_by, created_at, updated_at FROM guests ORDER BY full_name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var guests []domain.Guest
	for rows.Next() {
		var g domain.Guest
		if err := rows.Scan(&g.ID, &g.FullName, &g.Phone, &g.Email, &g.DocumentID, &g.Notes, &g.CreatedBy, &g.UpdatedBy, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		guests = append(guests, g)
	}
	return guests, rows.Err()
}

func (r *guestRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM guests`).Scan(&count)
	return count, err
}
