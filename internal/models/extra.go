package models

import (
	"github.com/shopspring/decimal"

	"coffeehouse/internal/dbtext"
)

// Extra is an add-on for a drink. Extras have no soft delete; availability is
// toggled instead.
type Extra struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	ExtraPrice  dbtext.Decimal `db:"extra_price"`
	IsAvailable bool           `db:"is_available"`
}

type ExtraAPIModel struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	ExtraPrice  decimal.Decimal `json:"extra_price"`
	IsAvailable bool            `json:"is_available"`
}

type NewExtra struct {
	Name        string          `json:"name"`
	ExtraPrice  decimal.Decimal `json:"extra_price"`
	IsAvailable *bool           `json:"is_available"`
}

type UpdateExtra struct {
	Name        string          `json:"name"`
	ExtraPrice  decimal.Decimal `json:"extra_price"`
	IsAvailable bool            `json:"is_available"`
}

// ExtraFromNew builds an extra; availability defaults to true when the input
// omits it.
func ExtraFromNew(in NewExtra, id string) Extra {
	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}
	return Extra{
		ID:          id,
		Name:        in.Name,
		ExtraPrice:  dbtext.NewDecimal(in.ExtraPrice),
		IsAvailable: available,
	}
}

func (e *Extra) UpdateFromInput(in UpdateExtra) {
	e.Name = in.Name
	e.ExtraPrice = dbtext.NewDecimal(in.ExtraPrice)
	e.IsAvailable = in.IsAvailable
}

func (e Extra) ToAPIModel() ExtraAPIModel {
	return ExtraAPIModel{
		ID:          e.ID,
		Name:        e.Name,
		ExtraPrice:  e.ExtraPrice.Decimal,
		IsAvailable: e.IsAvailable,
	}
}
