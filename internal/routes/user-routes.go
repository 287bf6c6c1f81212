package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-system/internal/authz"
	"maintenance-system/internal/controllers"
	"maintenance-system/pkg/middleware"
)

func registerUserRoutes(g *echo.Group, ctrl *controllers.UserController, authMW *middleware.AuthMiddleware) {
	g.GET("", ctrl.GetUsers, authMW.RequirePermission(authz.UsersView))
	g.GET("/:id", ctrl.FindUser, authMW.RequirePermission(authz.UsersView))
	g.PUT("/:id", ctrl.UpdateUser, authMW.RequirePermission(authz.UsersUpdate))
	g.DELETE("/:id", ctrl.DeleteUser, authMW.RequirePermission(authz.UsersDelete))
}
