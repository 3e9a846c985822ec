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

type addressRepository struct {
	db *sql.DB
}

func NewAddressRepository(db *sql.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) Create(ctx context.Context, a *domain.Address) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	query := `INSERT INTO addresses (id, name, street, number, neighborhood, city, state, zip_code, created_by, updated_by, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, query, a.ID, a.Name, a.Street, a.Number, a.Neighborhood, a.City, a.State, a.ZipCode, a.CreatedBy, a.UpdatedBy, a.CreatedAt, a.UpdatedAt)
	return err
}

func (r *addressRepository) GetByID(ctx context.Context, id string) (*domain.Address, error) {
	a := &domain.Address{}
	query := `SELECT id, name, street, number, neighborhood, city, state, zip_code, created_by, updated_by, created_at, updated_at FROM addresses WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Name, &a.Street, &a.Number, &a.Neighborhood, &a.City, &a.State, &a.ZipCode, &a.CreatedBy, &a.UpdatedBy, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *addressRepository) Update(ctx context.Context, a *domain.Address) error {
	query := `UPDATE addresses SET name=$1, street=$2, number=$3, neighborhood=$4, city=$5, state=$6, zip_code=$7, updated_by=$8, updated_at=$9 WHERE id=$10`
	a.UpdatedAt = time.Now()
	_, err := r.db.ExecContext(ctx, query, a.Name, a.Street, a.Number, a.Neighborhood, a.City, a.State, a.ZipCode, a.UpdatedBy, a.UpdatedAt, a.ID)
	return err
}

func (r *addressRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	return err
}

func (r *addressRepository) List(ctx context.Context) ([]domain.Address, error) {
	query := `SELECT id, name, street, number, neighborhood, city, state, zip_code, created_by, updated_by, created_at, updated_at FROM addresses ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var addresses []domain.Address
	for rows.Next() {
		var a domain.Address
		if err := rows.Scan(&a.ID, &a.Name, &a.Street, &a.Number, &a.Neighborhood, &a.City, &a.State, &a.ZipCode, &a.CreatedBy, &a.UpdatedBy, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}
