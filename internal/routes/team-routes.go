package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-system/internal/authz"
	"maintenance-system/internal/controllers"
	"maintenance-system/pkg/middleware"
)

func registerTeamRoutes(g *echo.Group, ctrl *controllers.TeamController, authMW *middleware.AuthMiddleware) {
	g.GET("", ctrl.GetTeams, authMW.RequirePermission(authz.TeamsView))
	g.GET("/:id", ctrl.FindTeam, authMW.RequirePermission(authz.TeamsView))
	g.POST("", ctrl.CreateTeam, authMW.RequirePermission(authz.TeamsCreate))
	g.PUT("/:id", ctrl.UpdateTeam, authMW.RequirePermission(authz.TeamsUpdate))
	g.DELETE("/:id", ctrl.DeleteTeam, authMW.RequirePermission(authz.TeamsDelete))

	g.POST("/:id/members", ctrl.AddTeamMember, authMW.RequirePermission(authz.TeamsMemberAdd))
	g.DELETE("/:id/members/:userId", ctrl.RemoveTeamMember, authMW.RequirePermission(authz.TeamsMemberRemove))
}
