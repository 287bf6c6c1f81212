package dto

type CreateTeamDTO struct {
	Name           string  `json:"name" validate:"required,max=255"`
	Description    *string `json:"description"`
	Icon           *string `json:"icon" validate:"omitempty,max=10"`
	Specialization *string `json:"specialization" validate:"omitempty,max=255"`
}

type UpdateTeamDTO struct {
	Name           *string `json:"name" validate:"omitempty,max=255"`
	Description    *string `json:"description"`
	Icon           *string `json:"icon" validate:"omitempty,max=10"`
	Specialization *string `json:"specialization" validate:"omitempty,max=255"`
}

type AddTeamMemberDTO struct {
	UserID uint64 `json:"user_id" validate:"required"`
}
