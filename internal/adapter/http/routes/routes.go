package routes

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "rfq_console/docs"
	"rfq_console/internal/adapter/cache"
	"rfq_console/internal/adapter/http/handlers"
	"rfq_console/internal/adapter/http/middleware"
	"rfq_console/internal/adapter/persistence/repository"
	"rfq_console/internal/config"
	"rfq_console/internal/infrastructure/backend"
	redisclient "rfq_console/internal/infrastructure/cache"
	"rfq_console/internal/infrastructure/database"
	"rfq_console/internal/infrastructure/export"
	"rfq_console/internal/usecase"
	"rfq_console/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run wires the application and serves HTTP until the listener fails.
func Run(cfg *config.Config, logger *zap.Logger) error {
	gin.SetMode(cfg.Server.Mode)
	ctx := context.Background()

	composition, rawMaterials, err := buildHandlers(ctx, cfg)
	if err != nil {
		return err
	}

	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authed := v1.Group("", middleware.Session(cfg.JWT.Secret))
	addCompositionRoutes(authed, composition)
	addRawMaterialRoutes(authed, rawMaterials)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("[http] listening", zap.String("addr", addr))
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

func buildHandlers(ctx context.Context, cfg *config.Config) (*handlers.CompositionHandler, *handlers.RawMaterialHandler, error) {
	client, err := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Token, cfg.Backend.Timeout)
	if err != nil {
		return nil, nil, err
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return nil, nil, fmt.Errorf("dynamodb: %w", err)
	}
	workspaceRepo := repository.NewWorkspaceDynamoRepository(ddb, cfg.DynamoDB.WorkspacesTable)

	var lock interfaces.IBusyLock
	if cfg.Redis.Enabled() {
		rdb, err := redisclient.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		lock = cache.NewRedisBusyLock(rdb, cfg.BusyLock.TTL)
	} else {
		zap.L().Warn("[http] redis not configured, busy flags are local to this instance")
		lock = cache.NewMemoryBusyLock(cfg.BusyLock.TTL)
	}

	catalog := usecase.NewRawMaterialCatalog(client, cfg.Catalog.TTL)
	policy := usecase.NewViewPolicy(usecase.ViewPolicyConfig{
		EarlyStages:    cfg.Policy.EarlyStages,
		OverheadStage:  cfg.Policy.OverheadStage,
		LateStages:     cfg.Policy.LateStages,
		ComponentRole:  cfg.Policy.ComponentRole,
		BOMRole:        cfg.Policy.BOMRole,
		CostSheetRoles: cfg.Policy.CostSheetRoles,
	})

	compositionUseCase := usecase.NewCompositionUseCase(client, workspaceRepo, lock, export.NewCostSheetExcel(), catalog, policy)

	return handlers.NewCompositionHandler(compositionUseCase), handlers.NewRawMaterialHandler(catalog), nil
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("[http] recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
