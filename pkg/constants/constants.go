package constants

// --- СТАТУСЫ ЗАЯВОК (Совпадает со значениями в БД) ---
const (
	RequestStatusNew        = "new"
	RequestStatusInProgress = "in_progress"
	RequestStatusRepaired   = "repaired"
	RequestStatusScrap      = "scrap"
)

// Финальные статусы. Из них нет переходов.
var TerminalRequestStatuses = []string{
	RequestStatusRepaired,
	RequestStatusScrap,
}

func IsTerminalRequestStatus(status string) bool {
	for _, s := range TerminalRequestStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// --- ТИПЫ ЗАЯВОК ---
const (
	RequestTypeCorrective = "corrective"
	RequestTypePreventive = "preventive"
)

// --- ПРИОРИТЕТЫ ЗАЯВОК ---
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// --- СТАТУСЫ ОБОРУДОВАНИЯ ---
const (
	EquipmentStatusActive      = "active"
	EquipmentStatusMaintenance = "maintenance"
	EquipmentStatusScrapped    = "scrapped"
)

// --- РОЛИ ПОЛЬЗОВАТЕЛЕЙ ---
const (
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleTechnician = "technician"
	RoleUser       = "user"
)
