package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"affiliatehub/internal/handlers"
	"affiliatehub/internal/middleware"
)

type Options struct {
	JWTSecret      string
	AllowedOrigins []string
	MetricsEnabled bool
}

func SetupRoutes(
	r *gin.Engine,
	opts Options,
	accounts middleware.AccountResolver,
	dashboardHandler *handlers.DashboardHandler,
	leadHandler *handlers.LeadHandler,
	kvkHandler *handlers.KvkHandler,
	contentHandler *handlers.ContentHandler,
	accountHandler *handlers.AccountHandler,
) *gin.Engine {
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.CORSMiddleware(opts.AllowedOrigins))
	if opts.MetricsEnabled {
		r.Use(middleware.Metrics())
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// ---- public
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ---- protected
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(opts.JWTSecret))
	api.Use(middleware.ResolveAccount(accounts))

	api.GET("/me", accountHandler.Me)

	dashboard := api.Group("/dashboard")
	{
		dashboard.GET("", dashboardHandler.GetDashboard)
		dashboard.GET("/stats", dashboardHandler.GetStats)
		dashboard.GET("/activity", dashboardHandler.GetActivity)
		dashboard.GET("/leads", dashboardHandler.GetRecentLeads)
	}

	api.POST("/leads", leadHandler.CreateLead)

	kvk := api.Group("/kvk")
	{
		kvk.GET("", kvkHandler.Lookup)
		kvk.GET("/:kvkNummer", kvkHandler.Lookup)
	}

	content := api.Group("/content")
	{
		content.GET("", contentHandler.ListSections)
		content.GET("/:section", contentHandler.GetSection)
	}

	return r
}
