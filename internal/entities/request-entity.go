package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Request struct {
	ID            uint64       `json:"id" db:"id"`
	Type          string       `json:"type" db:"type"`
	Subject       string       `json:"subject" db:"subject"`
	Description   null.String  `json:"description" db:"description"`
	EquipmentID   uint64       `json:"equipment_id" db:"equipment_id"`
	Department    null.String  `json:"department" db:"department"`
	TeamID        null.Uint64  `json:"team_id" db:"team_id"`
	AssignedTo    null.Uint64  `json:"assigned_to" db:"assigned_to"`
	Priority      string       `json:"priority" db:"priority"`
	Status        string       `json:"status" db:"status"`
	ScheduledDate null.Time    `json:"scheduled_date" db:"scheduled_date"`
	Duration      null.Float64 `json:"duration" db:"duration"`
	CompletedDate null.Time    `json:"completed_date" db:"completed_date"`
	CreatedBy     uint64       `json:"created_by" db:"created_by"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// RequestWithRelations — результат выборки заявки вместе со связями.
// Каждая включённая связь названа явно, никаких «мешков свойств».
type RequestWithRelations struct {
	Request

	Equipment    *Equipment `json:"equipment,omitempty" db:"-"`
	Team         *Team      `json:"team,omitempty" db:"-"`
	AssignedUser *User      `json:"assigned_user,omitempty" db:"-"`
	Creator      *User      `json:"creator,omitempty" db:"-"`
}
