package handlers

import (
	"net/http"

	"github.com/SscSPs/personal_finance_app/cmd/docs"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/middleware"
	"github.com/SscSPs/personal_finance_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	authRepo portsrepo.AuthRepository,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	authHandler := NewAuthHandler(services.Auth)
	if !cfg.IsProduction {
		registerDevLoginRoute(r, authHandler)
	}

	v1 := r.Group("/api/v1", middleware.AuthMiddleware(authRepo))
	v1.POST("/auth/refresh", authHandler.RefreshToken)
	RegisterAPIV1Routes(v1, services)

	setupSwaggerRoutes(r, cfg)
}

// RegisterAPIV1Routes registers every authenticated route on v1.
func RegisterAPIV1Routes(v1 *gin.RouterGroup, services *portssvc.ServiceContainer) {
	RegisterUserRoutes(v1, services.User)
	RegisterBudgetRoutes(v1, services.Budget)
	RegisterIncomeRoutes(v1, services.Income)
	RegisterPotRoutes(v1, services.Pot)
	RegisterTransactionRoutes(v1, services.Transaction)
	RegisterCategoryRoutes(v1, services.Category)
	RegisterRecurringBillRoutes(v1, services.RecurringBill)
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
