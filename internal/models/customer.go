package models

import (
	"time"

	"coffeehouse/internal/dbtext"
)

// Customer is the storage representation; timestamp columns are TEXT.
type Customer struct {
	ID        string              `db:"id"`
	Name      string              `db:"name"`
	Email     string              `db:"email"`
	CreatedAt dbtext.DateTime     `db:"created_at"`
	UpdatedAt dbtext.DateTime     `db:"updated_at"`
	DeletedAt dbtext.NullDateTime `db:"deleted_at"`
}

// CustomerAPIModel is the API-facing representation with native types.
type CustomerAPIModel struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}

type NewCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UpdateCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CustomerFromNew builds a storage model from validated input. Timestamps are
// stamped server-side; deleted_at starts absent.
func CustomerFromNew(in NewCustomer, id string) Customer {
	now := time.Now().UTC()
	return Customer{
		ID:        id,
		Name:      in.Name,
		Email:     in.Email,
		CreatedAt: dbtext.NewDateTime(now),
		UpdatedAt: dbtext.NewDateTime(now),
	}
}

// UpdateFromInput replaces the mutable fields (name, email) and refreshes
// updated_at. ID and created_at are never touched.
func (c *Customer) UpdateFromInput(in UpdateCustomer) {
	c.Name = in.Name
	c.Email = in.Email
	c.UpdatedAt = dbtext.NewDateTime(time.Now().UTC())
}

func (c Customer) ToAPIModel() CustomerAPIModel {
	return CustomerAPIModel{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: c.CreatedAt.Time,
		UpdatedAt: c.UpdatedAt.Time,
		DeletedAt: c.DeletedAt.Ptr(),
	}
}
