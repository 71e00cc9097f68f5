package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"coffeehouse/internal/models"
)

// Extras have no soft delete, so List returns every row.
type ExtraRepository interface {
	List(ctx context.Context) ([]*models.Extra, error)
	GetByID(ctx context.Context, id string) (*models.Extra, error)
	Create(ctx context.Context, extra *models.Extra) error
	Update(ctx context.Context, extra *models.Extra) error
}

type extrasRepo struct {
	db Database
}

func NewExtrasRepo(db Database) ExtraRepository {
	return &extrasRepo{db: db}
}

func (r *extrasRepo) List(ctx context.Context) ([]*models.Extra, error) {
	query := `
		SELECT id, name, extra_price, is_available
		FROM extras
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var extras []*models.Extra
	for rows.Next() {
		extra := &models.Extra{}
		if err := rows.Scan(&extra.ID, &extra.Name, &extra.ExtraPrice, &extra.IsAvailable); err != nil {
			return nil, err
		}
		extras = append(extras, extra)
	}
	return extras, rows.Err()
}

func (r *extrasRepo) GetByID(ctx context.Context, id string) (*models.Extra, error) {
	extra := &models.Extra{}
	query := `
		SELECT id, name, extra_price, is_available
		FROM extras
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&extra.ID, &extra.Name, &extra.ExtraPrice, &extra.IsAvailable)
	if err != nil {
		return nil, err
	}
	return extra, nil
}

func (r *extrasRepo) Create(ctx context.Context, extra *models.Extra) error {
	query := `
		INSERT INTO extras (id, name, extra_price, is_available)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(ctx, query, extra.ID, extra.Name, extra.ExtraPrice, extra.IsAvailable)
	return err
}

func (r *extrasRepo) Update(ctx context.Context, extra *models.Extra) error {
	query := `
		UPDATE extras
		SET name = $1, extra_price = $2, is_available = $3
		WHERE id = $4
	`
	tag, err := r.db.Exec(ctx, query, extra.Name, extra.ExtraPrice, extra.IsAvailable, extra.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
