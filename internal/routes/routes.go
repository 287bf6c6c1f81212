package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"maintenance-system/internal/controllers"
	"maintenance-system/internal/repositories"
	"maintenance-system/internal/services"
	"maintenance-system/pkg/config"
	"maintenance-system/pkg/middleware"
	"maintenance-system/pkg/service"
)

// InitRouter собирает весь граф зависимостей приложения:
// репозитории → сервисы → контроллеры → маршруты.
func InitRouter(e *echo.Echo, db repositories.DB, cacheRepo repositories.CacheRepositoryInterface, cfg *config.Config, logger *zap.Logger) {
	// Репозитории
	userRepo := repositories.NewUserRepository(db, logger)
	teamRepo := repositories.NewTeamRepository(db, logger)
	equipmentRepo := repositories.NewEquipmentRepository(db, logger)
	requestRepo := repositories.NewRequestRepository(db, logger)
	reportRepo := repositories.NewReportRepository(db, logger)
	txManager := repositories.NewTxManager(db)

	// Сервисы
	jwtService := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL, logger)
	authService := services.NewAuthService(userRepo, cacheRepo, jwtService, cfg.Auth, logger)
	userService := services.NewUserService(userRepo, logger)
	teamService := services.NewTeamService(teamRepo, userRepo, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, requestRepo, teamRepo, logger)
	requestService := services.NewRequestService(requestRepo, equipmentRepo, teamRepo, userRepo, txManager, logger)
	reportService := services.NewReportService(reportRepo, requestRepo, logger)

	// Контроллеры
	authController := controllers.NewAuthController(authService, logger)
	userController := controllers.NewUserController(userService, logger)
	teamController := controllers.NewTeamController(teamService, logger)
	equipmentController := controllers.NewEquipmentController(equipmentService, logger)
	requestController := controllers.NewRequestController(requestService, logger)
	reportController := controllers.NewReportController(reportService, logger)

	authMW := middleware.NewAuthMiddleware(jwtService, logger)

	api := e.Group("/api")

	public := api.Group("/auth")
	registerAuthRoutes(public, authController)

	secure := api.Group("", authMW.Auth)
	registerProfileRoutes(secure.Group("/auth"), authController)
	registerUserRoutes(secure.Group("/users"), userController, authMW)
	registerTeamRoutes(secure.Group("/teams"), teamController, authMW)
	registerEquipmentRoutes(secure.Group("/equipments"), equipmentController, authMW)
	registerRequestRoutes(secure.Group("/requests"), requestController, authMW)
	registerReportRoutes(secure.Group("/reports"), reportController, authMW)
}
