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

type employeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) repository.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	query := `INSERT INTO employees (id, full_name, role, phone, email, start_date, end_date, salary, notes, created_by, updated_by, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, query, e.ID, e.FullName, e.Role, e.Phone, e.Email, e.StartDate, e.EndDate, e.Salary, e.Notes, e.CreatedBy, e.UpdatedBy, e.CreatedAt, e.UpdatedAt)
	return err
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	e := &domain.Employee{}
	query := `SELECT id, full_name, role, phone, email, start_date, end_date, salary, notes, created_by, updated_by, created_at, updated_at FROM employees WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.FullName, &e.Role, &e.Phone, &e.Email, &e.StartDate, &e.EndDate, &e.Salary, &e.Notes, &e.CreatedBy, &e.UpdatedBy, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *employeeRepository) Update(ctx context.Context, e *domain.Employee) error {
	query := `UPDATE employees SET full_name=$1, role=$2, phone=$3, email=$4, start_date=$5, end_date=$6, salary=$7, notes=$8, updated_by=$9, updated_at=$10 WHERE id=$11`
	e.UpdatedAt = time.Now()
	_, err := r.db.ExecContext(ctx, query, e.FullName, e.Role, e.Phone, e.Email, e.StartDate, e.EndDate, e.Salary, e.Notes, e.UpdatedBy, e.UpdatedAt, e.ID)
	return err
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = $1`, id)
	return err
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	query := `SELECT id, full_name, role, phone, email, start_date, end_date, salary, notes, created_by, updated_by, created_at, updated_at FROM employees ORDER BY full_name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.FullName, &e.Role, &e.Phone, &e.Email, &e.StartDate, &e.EndDate, &e.Salary, &e.Notes, &e.CreatedBy, &e.UpdatedBy, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM employees`).Scan(&count)
	return count, err
}
