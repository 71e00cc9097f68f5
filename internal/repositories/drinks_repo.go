package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"coffeehouse/internal/dbtext"
	"coffeehouse/internal/models"
)

type DrinkRepository interface {
	ListActive(ctx context.Context) ([]*models.Drink, error)
	GetByID(ctx context.Context, id string) (*models.Drink, error)
	Create(ctx context.Context, drink *models.Drink) error
	Update(ctx context.Context, drink *models.Drink) error
	SoftDelete(ctx context.Context, id string, deletedAt dbtext.DateTime) error
}

type drinksRepo struct {
	db Database
}

func NewDrinksRepo(db Database) DrinkRepository {
	return &drinksRepo{db: db}
}

func (r *drinksRepo) ListActive(ctx context.Context) ([]*models.Drink, error) {
	query := `
		SELECT id, name, base_price, created_at, updated_at, deleted_at
		FROM drinks
		WHERE deleted_at IS NULL
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drinks []*models.Drink
	for rows.Next() {
		drink := &models.Drink{}
		if err := rows.Scan(&drink.ID, &drink.Name, &drink.BasePrice, &drink.CreatedAt, &drink.UpdatedAt, &drink.DeletedAt); err != nil {
			return nil, err
		}
		drinks = append(drinks, drink)
	}
	return drinks, rows.Err()
}

func (r *drinksRepo) GetByID(ctx context.Context, id string) (*models.Drink, error) {
	drink := &models.Drink{}
	query := `
		SELECT id, name, base_price, created_at, updated_at, deleted_at
		FROM drinks
		WHERE id = $1 AND deleted_at IS NULL
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&drink.ID, &drink.Name, &drink.BasePrice, &drink.CreatedAt, &drink.UpdatedAt, &drink.DeletedAt)
	if err != nil {
		return nil, err
	}
	return drink, nil
}

func (r *drinksRepo) Create(ctx context.Context, drink *models.Drink) error {
	query := `
		INSERT INTO drinks (id, name, base_price, created_at, updated_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, drink.ID, drink.Name, drink.BasePrice, drink.CreatedAt, drink.UpdatedAt, drink.DeletedAt)
	return err
}

// Update persists only the mutable column; name stays whatever it was at
// insert time.
func (r *drinksRepo) Update(ctx context.Context, drink *models.Drink) error {
	query := `
		UPDATE drinks
		SET base_price = $1, updated_at = $2
		WHERE id = $3 AND deleted_at IS NULL
	`
	tag, err := r.db.Exec(ctx, query, drink.BasePrice, drink.UpdatedAt, drink.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *drinksRepo) SoftDelete(ctx context.Context, id string, deletedAt dbtext.DateTime) error {
	query := `
		UPDATE drinks
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
