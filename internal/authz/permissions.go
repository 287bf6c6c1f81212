package authz

// --- СПИСОК ВСЕХ ОПЕРАЦИЙ В СИСТЕМЕ ---

const (
	// Заявки (Requests)
	RequestsCreate = "requests:create"
	RequestsView   = "requests:view"
	RequestsUpdate = "requests:update"
	RequestsDelete = "requests:delete"
	RequestsStatus = "requests:status"
	RequestsAssign = "requests:assign"

	// Оборудование (Equipment)
	EquipmentCreate = "equipment:create"
	EquipmentView   = "equipment:view"
	EquipmentUpdate = "equipment:update"
	EquipmentDelete = "equipment:delete"

	// Команды (Teams)
	TeamsCreate       = "teams:create"
	TeamsView         = "teams:view"
	TeamsUpdate       = "teams:update"
	TeamsDelete       = "teams:delete"
	TeamsMemberAdd    = "teams:members:add"
	TeamsMemberRemove = "teams:members:remove"

	// Пользователи (Users)
	UsersView   = "users:view"
	UsersUpdate = "users:update"
	UsersDelete = "users:delete"

	// Отчёты (Reports)
	ReportsView = "reports:view"
)
