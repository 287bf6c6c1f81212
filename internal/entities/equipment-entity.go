package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Equipment struct {
	ID           uint64      `json:"id" db:"id"`
	Name         string      `json:"name" db:"name"`
	SerialNumber string      `json:"serial_number" db:"serial_number"`
	Category     string      `json:"category" db:"category"`
	Department   string      `json:"department" db:"department"`
	Location     null.String `json:"location" db:"location"`
	AssignedTo   null.String `json:"assigned_to" db:"assigned_to"`
	TeamID       null.Uint64 `json:"team_id" db:"team_id"`
	PurchaseDate null.Time   `json:"purchase_date" db:"purchase_date"`
	WarrantyDate null.Time   `json:"warranty_expiry" db:"warranty_expiry"`
	Status       string      `json:"status" db:"status"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	Team *Team `json:"team,omitempty" db:"-"`
}
