package models

import (
	"time"

	"coffeehouse/internal/dbtext"
)

// Employee is the storage representation; birth_date is a TEXT date.
type Employee struct {
	ID        string              `db:"id"`
	Name      string              `db:"name"`
	Email     string              `db:"email"`
	BirthDate dbtext.Date         `db:"birth_date"`
	CreatedAt dbtext.DateTime     `db:"created_at"`
	UpdatedAt dbtext.DateTime     `db:"updated_at"`
	DeletedAt dbtext.NullDateTime `db:"deleted_at"`
}

type EmployeeAPIModel struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	BirthDate dbtext.Date `json:"birth_date"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	DeletedAt *time.Time  `json:"deleted_at"`
}

type NewEmployee struct {
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	BirthDate dbtext.Date `json:"birth_date"`
}

// UpdateEmployee carries the mutable fields. Birth date is fixed at creation.
type UpdateEmployee struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func EmployeeFromNew(in NewEmployee, id string) Employee {
	now := time.Now().UTC()
	return Employee{
		ID:        id,
		Name:      in.Name,
		Email:     in.Email,
		BirthDate: in.BirthDate,
		CreatedAt: dbtext.NewDateTime(now),
		UpdatedAt: dbtext.NewDateTime(now),
	}
}

// UpdateFromInput replaces name and email and refreshes updated_at. ID,
// birth_date and created_at are never touched.
func (e *Employee) UpdateFromInput(in UpdateEmployee) {
	e.Name = in.Name
	e.Email = in.Email
	e.UpdatedAt = dbtext.NewDateTime(time.Now().UTC())
}

func (e Employee) ToAPIModel() EmployeeAPIModel {
	return EmployeeAPIModel{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		BirthDate: e.BirthDate,
		CreatedAt: e.CreatedAt.Time,
		UpdatedAt: e.UpdatedAt.Time,
		DeletedAt: e.DeletedAt.Ptr(),
	}
}
