package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"maintenance-system/pkg/constants"
)

func TestCanPerform(t *testing.T) {
	cases := []struct {
		name      string
		role      string
		operation string
		allowed   bool
	}{
		{"админ удаляет оборудование", constants.RoleAdmin, EquipmentDelete, true},
		{"админ удаляет пользователей", constants.RoleAdmin, UsersDelete, true},
		{"менеджер видит отчёты", constants.RoleManager, ReportsView, true},
		{"менеджер управляет составом команд", constants.RoleManager, TeamsMemberAdd, true},
		{"менеджер не удаляет оборудование", constants.RoleManager, EquipmentDelete, false},
		{"менеджер не удаляет команды", constants.RoleManager, TeamsDelete, false},
		{"менеджер не меняет пользователей", constants.RoleManager, UsersUpdate, false},
		{"техник создаёт заявки", constants.RoleTechnician, RequestsCreate, true},
		{"техник меняет статус заявки", constants.RoleTechnician, RequestsStatus, true},
		{"техник не видит отчёты", constants.RoleTechnician, ReportsView, false},
		{"техник не создаёт оборудование", constants.RoleTechnician, EquipmentCreate, false},
		{"пользователь создаёт заявки", constants.RoleUser, RequestsCreate, true},
		{"пользователь не удаляет заявки", constants.RoleUser, RequestsDelete, false},
		{"пользователь не видит список пользователей", constants.RoleUser, UsersView, false},
		{"неизвестная роль не может ничего", "superhero", RequestsView, false},
		{"пустая роль не может ничего", "", RequestsView, false},
		{"неизвестная операция запрещена всем", constants.RoleAdmin, "requests:transmogrify", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanPerform(tc.role, tc.operation))
		})
	}
}

// Каждая роль из констант должна присутствовать в политике:
// роль без набора операций означала бы молчаливый запрет всего.
func TestEveryRoleHasPolicy(t *testing.T) {
	for _, role := range []string{constants.RoleAdmin, constants.RoleManager, constants.RoleTechnician, constants.RoleUser} {
		_, ok := rolePermissions[role]
		assert.True(t, ok, "роль %q не описана в политике", role)
	}
}
