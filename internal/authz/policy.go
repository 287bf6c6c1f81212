package authz

import "maintenance-system/pkg/constants"

// Плоская политика доступа: роль → набор операций. Роли друг от друга
// ничего не наследуют, каждая пара (роль, операция) перечислена явно.

var commonOperations = []string{
	RequestsCreate,
	RequestsView,
	RequestsUpdate,
	RequestsStatus,
	RequestsAssign,
	EquipmentView,
	TeamsView,
}

var rolePermissions = map[string]map[string]bool{
	constants.RoleAdmin: buildSet(append(commonOperations,
		RequestsDelete,
		EquipmentCreate,
		EquipmentUpdate,
		EquipmentDelete,
		TeamsCreate,
		TeamsUpdate,
		TeamsDelete,
		TeamsMemberAdd,
		TeamsMemberRemove,
		UsersView,
		UsersUpdate,
		UsersDelete,
		ReportsView,
	)...),
	constants.RoleManager: buildSet(append(commonOperations,
		RequestsDelete,
		EquipmentCreate,
		EquipmentUpdate,
		TeamsCreate,
		TeamsUpdate,
		TeamsMemberAdd,
		TeamsMemberRemove,
		UsersView,
		ReportsView,
	)...),
	constants.RoleTechnician: buildSet(commonOperations...),
	constants.RoleUser:       buildSet(commonOperations...),
}

func buildSet(operations ...string) map[string]bool {
	set := make(map[string]bool, len(operations))
	for _, op := range operations {
		set[op] = true
	}
	return set
}

// CanPerform отвечает, разрешена ли операция для роли.
// Неизвестная роль не может ничего.
func CanPerform(role, operation string) bool {
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}
	return perms[operation]
}
