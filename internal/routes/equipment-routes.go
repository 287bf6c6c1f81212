package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-system/internal/authz"
	"maintenance-system/internal/controllers"
	"maintenance-system/pkg/middleware"
)

func registerEquipmentRoutes(g *echo.Group, ctrl *controllers.EquipmentController, authMW *middleware.AuthMiddleware) {
	g.GET("", ctrl.GetEquipments, authMW.RequirePermission(authz.EquipmentView))
	g.GET("/:id", ctrl.FindEquipment, authMW.RequirePermission(authz.EquipmentView))
	g.GET("/:id/requests", ctrl.GetEquipmentRequests, authMW.RequirePermission(authz.EquipmentView))
	g.POST("", ctrl.CreateEquipment, authMW.RequirePermission(authz.EquipmentCreate))
	g.PUT("/:id", ctrl.UpdateEquipment, authMW.RequirePermission(authz.EquipmentUpdate))
	g.DELETE("/:id", ctrl.DeleteEquipment, authMW.RequirePermission(authz.EquipmentDelete))
}
