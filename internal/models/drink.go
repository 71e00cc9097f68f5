package models

import (
	"time"

	"github.com/shopspring/decimal"

	"coffeehouse/internal/dbtext"
)

// Drink is the storage representation; base_price is a TEXT decimal.
type Drink struct {
	ID        string              `db:"id"`
	Name      string              `db:"name"`
	BasePrice dbtext.Decimal      `db:"base_price"`
	CreatedAt dbtext.DateTime     `db:"created_at"`
	UpdatedAt dbtext.DateTime     `db:"updated_at"`
	DeletedAt dbtext.NullDateTime `db:"deleted_at"`
}

// DrinkAPIModel carries the base price as a native decimal; it serializes as a
// JSON string to preserve scale.
type DrinkAPIModel struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	BasePrice decimal.Decimal `json:"base_price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt *time.Time      `json:"deleted_at"`
}

type NewDrink struct {
	Name      string          `json:"name"`
	BasePrice decimal.Decimal `json:"base_price"`
}

// UpdateDrink carries only the mutable field. A drink's name is fixed at
// creation.
type UpdateDrink struct {
	BasePrice decimal.Decimal `json:"base_price"`
}

func DrinkFromNew(in NewDrink, id string) Drink {
	now := time.Now().UTC()
	return Drink{
		ID:        id,
		Name:      in.Name,
		BasePrice: dbtext.NewDecimal(in.BasePrice),
		CreatedAt: dbtext.NewDateTime(now),
		UpdatedAt: dbtext.NewDateTime(now),
	}
}

// UpdateFromInput replaces base_price and refreshes updated_at. Name, ID and
// created_at are never touched.
func (d *Drink) UpdateFromInput(in UpdateDrink) {
	d.BasePrice = dbtext.NewDecimal(in.BasePrice)
	d.UpdatedAt = dbtext.NewDateTime(time.Now().UTC())
}

func (d Drink) ToAPIModel() DrinkAPIModel {
	return DrinkAPIModel{
		ID:        d.ID,
		Name:      d.Name,
		BasePrice: d.BasePrice.Decimal,
		CreatedAt: d.CreatedAt.Time,
		UpdatedAt: d.UpdatedAt.Time,
		DeletedAt: d.DeletedAt.Ptr(),
	}
}
