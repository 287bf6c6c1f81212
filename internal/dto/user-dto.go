package dto

type UpdateUserDTO struct {
	Name  *string `json:"name" validate:"omitempty,min=2,max=255"`
	Phone *string `json:"phone" validate:"omitempty,max=32"`
	Role  *string `json:"role" validate:"omitempty,user_role"`
}
