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

type itemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, it *domain.Item) error {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	query := `INSERT INTO items (id, unit_id, name, type, brand, model, purchase_date, condition, notes, created_by, updated_by, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	now := time.Now()
	it.CreatedAt = now
	it.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, query, it.ID, it.UnitID, it.Name, it.Type, it.Brand, it.Model, it.PurchaseDate, it.Condition, it.Notes, it.CreatedBy, it.UpdatedBy, it.CreatedAt, it.UpdatedAt)
	return err
}

func (r *itemRepository) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	it := &domain.Item{}
	query := `SELECT id, unit_id, name, type, brand, model, purchase_date, condition, notes, created_by, updated_by, created_at, updated_at FROM items WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&it.ID, &it.UnitID, &it.Name, &it.Type, &it.Brand, &it.Model, &it.PurchaseDate, &it.Condition, &it.Notes, &it.CreatedBy, &it.UpdatedBy, &it.CreatedAt, &it.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (r *itemRepository) Update(ctx context.Context, it *domain.Item) error {
	query := `UPDATE items SET unit_id=$1, name=$2, type=$3, brand=$4, model=$5, purchase_date=$6, condition=$7, notes=$8, updated_by=$9, updated_at=$10 WHERE id=$11`
	it.UpdatedAt = time.Now()
	_, err := r.db.ExecContext(ctx, query, it.UnitID, it.Name, it.Type, it.Brand, it.Model, it.PurchaseDate, it.Condition, it.Notes, it.UpdatedBy, it.UpdatedAt, it.ID)
	return err
}

func (r *itemRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	return err
}

func (r *itemRepository) List(ctx context.Context, unitID string) ([]domain.Item, error) {
	query := `SELECT id, unit_id, name, type, brand, model, purchase_date, condition, notes, created_by, updated_by, created_at, updated_at FROM items`
	args := []interface{}{}
	if unitID != "" {
		query += " WHERE unit_id = $1"
		args = append(args, unitID)
	}
	query += " ORDER BY name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.ID, &it.UnitID, &it.Name, &it.Type, &it.Brand, &it.Model, &it.PurchaseDate, &it.Condition, &it.Notes, &it.CreatedBy, &it.UpdatedBy, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
