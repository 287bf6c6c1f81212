package dto

type CreateEquipmentDTO struct {
	Name         string  `json:"name" validate:"required,max=255"`
	SerialNumber string  `json:"serial_number" validate:"required,max=128"`
	Category     string  `json:"category" validate:"required,max=128"`
	Department   string  `json:"department" validate:"required,max=128"`
	Location     *string `json:"location" validate:"omitempty,max=255"`
	AssignedTo   *string `json:"assigned_to" validate:"omitempty,max=255"`
	TeamID       *uint64 `json:"team_id"`
	PurchaseDate *string `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	WarrantyDate *string `json:"warranty_expiry" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateEquipmentDTO struct {
	Name         *string `json:"name" validate:"omitempty,max=255"`
	SerialNumber *string `json:"serial_number" validate:"omitempty,max=128"`
	Category     *string `json:"category" validate:"omitempty,max=128"`
	Department   *string `json:"department" validate:"omitempty,max=128"`
	Location     *string `json:"location" validate:"omitempty,max=255"`
	AssignedTo   *string `json:"assigned_to" validate:"omitempty,max=255"`
	TeamID       *uint64 `json:"team_id"`
	PurchaseDate *string `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	WarrantyDate *string `json:"warranty_expiry" validate:"omitempty,datetime=2006-01-02"`
	Status       *string `json:"status" validate:"omitempty,equipment_status"`
}
