package handlers

import (
	"fmt"

	"github.com/SscSPs/campaign_finance/cmd/docs"
	portssvc "github.com/SscSPs/campaign_finance/internal/core/ports/services"
	"github.com/SscSPs/campaign_finance/internal/middleware"
	"github.com/SscSPs/campaign_finance/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	lim, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("invalid RATE_LIMIT: %w", err)
	}
	v1 := r.Group("/api/v1", middleware.RateLimit(lim))
	RegisterAPIV1Routes(v1, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// RegisterAPIV1Routes delegates route registration to specific handlers, passing required services
func RegisterAPIV1Routes(v1 *gin.RouterGroup, services *portssvc.ServiceContainer) {
	registerLedgerRoutes(v1, services.Ledger)
	registerFiscalYearRoutes(v1, services.FiscalYear)
	registerReconciliationRoutes(v1, services.Reconciliation)
	registerMortgageRoutes(v1, services.Mortgage)
	registerBudgetRoutes(v1, services.Budget)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
