package routes

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"research-admin/internal/controllers"
	"research-admin/internal/repositories"
	"research-admin/internal/services"
	"research-admin/pkg/config"
	"research-admin/pkg/filestorage"
	"research-admin/pkg/middleware"
	"research-admin/pkg/service"
)

const facetCacheTTL = 5 * time.Minute

// InitRouter wires repositories, services and controllers and mounts every
// route. /api/directory and /api/events are public; /api/admin requires a
// valid access token.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, cfg *config.Config, logger *zap.Logger) error {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	fileStorage, err := filestorage.NewLocalFileStorage(cfg.Upload.BasePath)
	if err != nil {
		return err
	}
	txManager := repositories.NewTxManager(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	labRepo := repositories.NewLabRepository(dbConn, logger)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	eventRepo := repositories.NewEventRepository(dbConn)
	publicationRepo := repositories.NewPublicationRepository(dbConn)
	grantRepo := repositories.NewGrantRepository(dbConn)
	partnerRepo := repositories.NewPartnerRepository(dbConn)
	userRepo := repositories.NewUserRepository(dbConn)
	dashboardRepo := repositories.NewDashboardRepository(dbConn, logger)

	labService := services.NewLabService(labRepo, txManager, cacheRepo, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, logger)
	eventService := services.NewEventService(eventRepo, logger)
	publicationService := services.NewPublicationService(publicationRepo, labRepo, logger)
	grantService := services.NewGrantService(grantRepo, labRepo, logger)
	partnerService := services.NewPartnerService(partnerRepo, logger)
	authService := services.NewAuthService(userRepo, cacheRepo, jwtSvc, cfg.Auth, logger)
	directoryService := services.NewDirectoryService(labRepo, cacheRepo, facetCacheTTL, logger)
	dashboardService := services.NewDashboardService(dashboardRepo, logger)
	reportService := services.NewReportService(labRepo, grantRepo, logger)

	labCtrl := controllers.NewLabController(labService, logger)
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)
	eventCtrl := controllers.NewEventController(eventService, logger)
	publicationCtrl := controllers.NewPublicationController(publicationService, logger)
	grantCtrl := controllers.NewGrantController(grantService, logger)
	partnerCtrl := controllers.NewPartnerController(partnerService, logger)
	authCtrl := controllers.NewAuthController(authService, logger)
	directoryCtrl := controllers.NewDirectoryController(directoryService, logger)
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)
	reportCtrl := controllers.NewReportController(reportService, logger)
	uploadCtrl := controllers.NewUploadController(fileStorage, eventService, partnerService, cfg.Upload, logger)

	runDirectoryRouter(api, directoryCtrl)
	runPublicEventRouter(api, eventCtrl)
	runAuthRouter(api, authCtrl, authMW)

	admin := api.Group("/admin", authMW.Auth)
	runLabRouter(admin, labCtrl)
	runEquipmentRouter(admin, equipmentCtrl)
	runEventRouter(admin, eventCtrl)
	runPublicationRouter(admin, publicationCtrl)
	runGrantRouter(admin, grantCtrl)
	runPartnerRouter(admin, partnerCtrl)
	runDashboardRouter(admin, dashboardCtrl)
	runReportRouter(admin, reportCtrl)
	runUploadRouter(admin, uploadCtrl)

	logger.Info("routes mounted")
	return nil
}
