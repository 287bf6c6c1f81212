package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-system/internal/authz"
	"maintenance-system/internal/controllers"
	"maintenance-system/pkg/middleware"
)

func registerRequestRoutes(g *echo.Group, ctrl *controllers.RequestController, authMW *middleware.AuthMiddleware) {
	g.GET("", ctrl.GetRequests, authMW.RequirePermission(authz.RequestsView))
	g.GET("/:id", ctrl.FindRequest, authMW.RequirePermission(authz.RequestsView))
	g.POST("", ctrl.CreateRequest, authMW.RequirePermission(authz.RequestsCreate))
	g.PUT("/:id", ctrl.UpdateRequest, authMW.RequirePermission(authz.RequestsUpdate))
	g.DELETE("/:id", ctrl.DeleteRequest, authMW.RequirePermission(authz.RequestsDelete))

	// Смена статуса и назначение исполнителя идут отдельными операциями,
	// обычный PUT заявки их не затрагивает.
	g.PATCH("/:id/status", ctrl.ChangeStatus, authMW.RequirePermission(authz.RequestsStatus))
	g.PATCH("/:id/assign", ctrl.AssignRequest, authMW.RequirePermission(authz.RequestsAssign))
}
