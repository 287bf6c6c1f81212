package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Team struct {
	ID             uint64      `json:"id" db:"id"`
	Name           string      `json:"name" db:"name"`
	Description    null.String `json:"description" db:"description"`
	Icon           null.String `json:"icon" db:"icon"`
	Specialization null.String `json:"specialization" db:"specialization"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	// Участники подтягиваются отдельным запросом по team_members.
	Members []User `json:"members,omitempty" db:"-"`
}

type TeamMember struct {
	TeamID uint64 `json:"team_id" db:"team_id"`
	UserID uint64 `json:"user_id" db:"user_id"`
}
