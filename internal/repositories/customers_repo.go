package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"coffeehouse/internal/dbtext"
	"coffeehouse/internal/models"
)

type CustomerRepository interface {
	ListActive(ctx context.Context) ([]*models.Customer, error)
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	Create(ctx context.Context, customer *models.Customer) error
	Update(ctx context.Context, customer *models.Customer) error
	SoftDelete(ctx context.Context, id string, deletedAt dbtext.DateTime) error
}

type customersRepo struct {
	db Database
}

func NewCustomersRepo(db Database) CustomerRepository {
	return &customersRepo{db: db}
}

func (r *customersRepo) ListActive(ctx context.Context) ([]*models.Customer, error) {
	query := `
		SELECT id, name, email, created_at, updated_at, deleted_at
		FROM customers
		WHERE deleted_at IS NULL
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		customer := &models.Customer{}
		if err := rows.Scan(&customer.ID, &customer.Name, &customer.Email, &customer.CreatedAt, &customer.UpdatedAt, &customer.DeletedAt); err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, rows.Err()
}

func (r *customersRepo) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	customer := &models.Customer{}
	query := `
		SELECT id, name, email, created_at, updated_at, deleted_at
		FROM customers
		WHERE id = $1 AND deleted_at IS NULL
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&customer.ID, &customer.Name, &customer.Email, &customer.CreatedAt, &customer.UpdatedAt, &customer.DeletedAt)
	if err != nil {
		return nil, err
	}
	return customer, nil
}

func (r *customersRepo) Create(ctx context.Context, customer *models.Customer) error {
	query := `
		INSERT INTO customers (id, name, email, created_at, updated_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, customer.ID, customer.Name, customer.Email, customer.CreatedAt, customer.UpdatedAt, customer.DeletedAt)
	return err
}

func (r *customersRepo) Update(ctx context.Context, customer *models.Customer) error {
	query := `
		UPDATE customers
		SET name = $1, email = $2, updated_at = $3
		WHERE id = $4 AND deleted_at IS NULL
	`
	tag, err := r.db.Exec(ctx, query, customer.Name, customer.Email, customer.UpdatedAt, customer.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *customersRepo) SoftDelete(ctx context.Context, id string, deletedAt dbtext.DateTime) error {
	query := `
		UPDATE customers
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
