package main

import (
	"fmt"
	"log"

	"gstbill/internal/config"
	"gstbill/internal/handler"
	"gstbill/internal/repository/postgres"
	"gstbill/internal/router"
	"gstbill/internal/service"
)

// @title           GSTBill API
// @version         1.0
// @description     Invoice generation and GST statutory reporting for the CRM backend.
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	customerRepo := postgres.NewCustomerRepo(db)
	companyRepo := postgres.NewCompanyRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)
	reportRepo := postgres.NewReportRepo(db)
	hsnRepo := postgres.NewHSNRepo(db)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	customerSvc := service.NewCustomerService(customerRepo)
	companySvc := service.NewCompanyService(companyRepo)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, customerRepo, companyRepo, cfg.Invoice.NumberPrefix)
	reportSvc := service.NewReportService(reportRepo)
	hsnSvc := service.NewHSNService(hsnRepo)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	invoiceH := handler.NewInvoiceHandler(invoiceSvc)
	reportH := handler.NewReportHandler(reportSvc)
	customerH := handler.NewCustomerHandler(customerSvc)
	companyH := handler.NewCompanyHandler(companySvc)
	hsnH := handler.NewHSNHandler(hsnSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(authSvc, authH, invoiceH, reportH, customerH, companyH, hsnH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
