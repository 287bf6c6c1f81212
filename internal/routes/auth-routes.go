package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-system/internal/controllers"
)

func registerAuthRoutes(g *echo.Group, ctrl *controllers.AuthController) {
	g.POST("/register", ctrl.Register)
	g.POST("/login", ctrl.Login)
	g.POST("/refresh", ctrl.RefreshToken)
}

// registerProfileRoutes — часть /auth, доступная только с access-токеном.
func registerProfileRoutes(g *echo.Group, ctrl *controllers.AuthController) {
	g.GET("/me", ctrl.Me)
	g.PUT("/change-password", ctrl.ChangePassword)
}
