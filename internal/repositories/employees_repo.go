package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"coffeehouse/internal/dbtext"
	"coffeehouse/internal/models"
)

type EmployeeRepository interface {
	ListActive(ctx context.Context) ([]*models.Employee, error)
	GetByID(ctx context.Context, id string) (*models.Employee, error)
	Create(ctx context.Context, employee *models.Employee) error
	Update(ctx context.Context, employee *models.Employee) error
	SoftDelete(ctx context.Context, id string, deletedAt dbtext.DateTime) error
}

type employeesRepo struct {
	db Database
}

func NewEmployeesRepo(db Database) EmployeeRepository {
	return &employeesRepo{db: db}
}

func (r *employeesRepo) ListActive(ctx context.Context) ([]*models.Employee, error) {
	query := `
		SELECT id, name, email, birth_date, created_at, updated_at, deleted_at
		FROM employees
		WHERE deleted_at IS NULL
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []*models.Employee
	for rows.Next() {
		employee := &models.Employee{}
		if err := rows.Scan(&employee.ID, &employee.Name, &employee.Email, &employee.BirthDate, &employee.CreatedAt, &employee.UpdatedAt, &employee.DeletedAt); err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}
	return employees, rows.Err()
}

func (r *employeesRepo) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	employee := &models.Employee{}
	query := `
		SELECT id, name, email, birth_date, created_at, updated_at, deleted_at
		FROM employees
		WHERE id = $1 AND deleted_at IS NULL
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&employee.ID, &employee.Name, &employee.Email, &employee.BirthDate, &employee.CreatedAt, &employee.UpdatedAt, &employee.DeletedAt)
	if err != nil {
		return nil, err
	}
	return employee, nil
}

func (r *employeesRepo) Create(ctx context.Context, employee *models.Employee) error {
	query := `
		INSERT INTO employees (id, name, email, birth_date, created_at, updated_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, employee.ID, employee.Name, employee.Email, employee.BirthDate, employee.CreatedAt, employee.UpdatedAt, employee.DeletedAt)
	return err
}

// Update persists name, email and updated_at; birth_date is immutable.
func (r *employeesRepo) Update(ctx context.Context, employee *models.Employee) error {
	query := `
		UPDATE employees
		SET name = $1, email = $2, updated_at = $3
		WHERE id = $4 AND deleted_at IS NULL
	`
	tag, err := r.db.Exec(ctx, query, employee.Name, employee.Email, employee.UpdatedAt, employee.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeesRepo) SoftDelete(ctx context.Context, id string, deletedAt dbtext.DateTime) error {
	query := `
		UPDATE employees
		SET deleted_at = $1, updated_at = $1
		WHERE id = $2 AND deleted_at IS NULL
	`
	tag, err := r.db.Exec(ctx, query, deletedAt, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
