package main

import (
	"github.com/gin-gonic/gin"
	catalogAPI "github.com/ridloal/tattoo-studio-backend/internal/catalog/api"
	catalogRepo "github.com/ridloal/tattoo-studio-backend/internal/catalog/repository"
	catalogService "github.com/ridloal/tattoo-studio-backend/internal/catalog/service"
	ledgerAPI "github.com/ridloal/tattoo-studio-backend/internal/ledger/api"
	ledgerRepo "github.com/ridloal/tattoo-studio-backend/internal/ledger/repository"
	ledgerService "github.com/ridloal/tattoo-studio-backend/internal/ledger/service"
	"github.com/ridloal/tattoo-studio-backend/internal/platform/config"
	"github.com/ridloal/tattoo-studio-backend/internal/platform/database"
	"github.com/ridloal/tattoo-studio-backend/internal/platform/logger"
	salesAPI "github.com/ridloal/tattoo-studio-backend/internal/sales/api"
	salesRepo "github.com/ridloal/tattoo-studio-backend/internal/sales/repository"
	salesService "github.com/ridloal/tattoo-studio-backend/internal/sales/service"
	scheduleAPI "github.com/ridloal/tattoo-studio-backend/internal/schedule/api"
	scheduleRepo "github.com/ridloal/tattoo-studio-backend/internal/schedule/repository"
	scheduleService "github.com/ridloal/tattoo-studio-backend/internal/schedule/service"
)

func main() {
	// Load Config
	config.LoadEnvFile()
	dbCfg := config.LoadStudioDBConfig()
	serverCfg := config.LoadServerConfig("8080")
	lowStockThreshold := config.GetEnvAsInt("LOW_STOCK_THRESHOLD", 5)

	logger.Info("Starting Studio Service...")

	// Setup Database
	db, err := database.Connect(dbCfg.DSN)
	if err != nil {
		logger.Error("Failed to connect to database for Studio Service", err)
		return
	}
	defer db.Close()

	if err := database.RunMigrations(db, dbCfg.MigrationsDir); err != nil {
		logger.Error("Failed to run database migrations", err)
		return
	}

	// Setup Dependencies
	productRepository := catalogRepo.NewPostgresProductRepository(db)
	catalogSvc := catalogService.NewCatalogService(productRepository, lowStockThreshold)
	catalogHandler := catalogAPI.NewCatalogHandler(catalogSvc)

	ledgerRepository := ledgerRepo.NewPostgresLedgerRepository(db)
	ledgerSvc := ledgerService.NewLedgerService(ledgerRepository)
	ledgerHandler := ledgerAPI.NewLedgerHandler(ledgerSvc)

	cartStore := salesService.NewCartStore()
	cartSvc := salesService.NewCartService(cartStore, catalogSvc)
	salesRepository := salesRepo.NewPostgresSalesRepository(db)
	checkoutSvc := salesService.NewCheckoutService(salesRepository, catalogSvc, ledgerSvc, cartStore)
	salesHandler := salesAPI.NewSalesHandler(cartSvc, checkoutSvc)

	appointmentRepository := scheduleRepo.NewPostgresAppointmentRepository(db)
	scheduleSvc := scheduleService.NewScheduleService(appointmentRepository)
	scheduleHandler := scheduleAPI.NewScheduleHandler(scheduleSvc)

	// Setup Gin Router
	router := gin.Default()
	router.RedirectTrailingSlash = false

	apiV1 := router.Group("/api/v1")
	catalogHandler.RegisterRoutes(apiV1)
	salesHandler.RegisterRoutes(apiV1)
	ledgerHandler.RegisterRoutes(apiV1)
	scheduleHandler.RegisterRoutes(apiV1)

	logger.Info("Studio Service running on port " + serverCfg.Port)
	if errSrv := router.Run(serverCfg.Port); errSrv != nil {
		logger.Error("Failed to run Studio Service server", errSrv)
	}
}
