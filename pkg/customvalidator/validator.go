package customvalidator

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"maintenance-system/pkg/constants"
)

// RegisterCustomValidations регистрирует все доменные правила валидации
// в переданном экземпляре валидатора.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("request_status", isRequestStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("request_type", isRequestType); err != nil {
		return err
	}
	if err := v.RegisterValidation("request_priority", isRequestPriority); err != nil {
		return err
	}
	if err := v.RegisterValidation("equipment_status", isEquipmentStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("user_role", isUserRole); err != nil {
		return err
	}
	if err := v.RegisterValidation("email", isGoodEmailFormat); err != nil {
		return err
	}

	return nil
}

func isGoodEmailFormat(fl validator.FieldLevel) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(fl.Field().String())
}

func isRequestStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constants.RequestStatusNew,
		constants.RequestStatusInProgress,
		constants.RequestStatusRepaired,
		constants.RequestStatusScrap:
		return true
	}
	return false
}

func isRequestType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constants.RequestTypeCorrective, constants.RequestTypePreventive:
		return true
	}
	return false
}

func isRequestPriority(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constants.PriorityLow,
		constants.PriorityMedium,
		constants.PriorityHigh,
		constants.PriorityUrgent:
		return true
	}
	return false
}

func isEquipmentStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constants.EquipmentStatusActive,
		constants.EquipmentStatusMaintenance,
		constants.EquipmentStatusScrapped:
		return true
	}
	return false
}

func isUserRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constants.RoleAdmin,
		constants.RoleManager,
		constants.RoleTechnician,
		constants.RoleUser:
		return true
	}
	return false
}
