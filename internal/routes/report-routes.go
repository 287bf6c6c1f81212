package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-system/internal/authz"
	"maintenance-system/internal/controllers"
	"maintenance-system/pkg/middleware"
)

func registerReportRoutes(g *echo.Group, ctrl *controllers.ReportController, authMW *middleware.AuthMiddleware) {
	g.GET("/summary", ctrl.GetSummary, authMW.RequirePermission(authz.ReportsView))
	g.GET("/requests/export", ctrl.ExportRequests, authMW.RequirePermission(authz.ReportsView))
}
