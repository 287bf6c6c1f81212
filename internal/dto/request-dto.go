package dto

type CreateRequestDTO struct {
	Type          string  `json:"type" validate:"required,request_type"`
	Subject       string  `json:"subject" validate:"required,max=255"`
	Description   *string `json:"description"`
	EquipmentID   uint64  `json:"equipment_id" validate:"required"`
	Department    *string `json:"department" validate:"omitempty,max=128"`
	TeamID        *uint64 `json:"team_id"`
	AssignedTo    *uint64 `json:"assigned_to"`
	Priority      string  `json:"priority" validate:"omitempty,request_priority"`
	ScheduledDate *string `json:"scheduled_date" validate:"omitempty,datetime=2006-01-02,required_if=Type preventive"`
}

// UpdateRequestDTO намеренно не содержит статуса, длительности и даты
// завершения: любые изменения статуса идут только через PATCH .../status.
type UpdateRequestDTO struct {
	Subject       *string `json:"subject" validate:"omitempty,max=255"`
	Description   *string `json:"description"`
	Department    *string `json:"department" validate:"omitempty,max=128"`
	TeamID        *uint64 `json:"team_id"`
	Priority      *string `json:"priority" validate:"omitempty,request_priority"`
	ScheduledDate *string `json:"scheduled_date" validate:"omitempty,datetime=2006-01-02"`
}

type ChangeRequestStatusDTO struct {
	Status   string   `json:"status" validate:"required,request_status"`
	Duration *float64 `json:"duration" validate:"omitempty,gt=0"`
}

type AssignRequestDTO struct {
	UserID *uint64 `json:"user_id"`
}
