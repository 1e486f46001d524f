package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gstbill/internal/domain"
	"gstbill/internal/handler"
	"gstbill/internal/middleware"
	"gstbill/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	invoiceH *handler.InvoiceHandler,
	reportH *handler.ReportHandler,
	customerH *handler.CustomerHandler,
	companyH *handler.CompanyHandler,
	hsnH *handler.HSNHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.Refresh)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Invoice routes
	invoices := protected.Group("/invoices")
	invoices.POST("", invoiceH.Create)
	invoices.GET("", invoiceH.List)
	invoices.GET("/summary", invoiceH.Summary)
	invoices.GET("/:id", invoiceH.GetByID)

	// Statutory reports
	reports := protected.Group("/reports")
	reports.GET("/gstr1", reportH.GSTR1)
	reports.GET("/gstr1/export", reportH.GSTR1Export)
	reports.GET("/gstr3b", reportH.GSTR3B)

	// Customer routes
	customers := protected.Group("/customers")
	customers.POST("", customerH.Create)
	customers.GET("", customerH.List)
	customers.GET("/:id", customerH.GetByID)

	// Company settings - writes are admin only
	company := protected.Group("/company")
	company.GET("", companyH.Get)
	company.PUT("", middleware.RequireRole(domain.RoleAdmin), companyH.Update)

	// HSN lookup
	protected.GET("/hsn/search", hsnH.Search)

	return r
}
