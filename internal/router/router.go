package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/udhayakumar-002/inventory-management-system-v3/internal/apierror"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/config"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/handler"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/middleware"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/repository"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/service"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/session"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, sessions *session.Manager) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.ErrorHandler())

	r.LoadHTMLGlob("templates/*.html")

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	historyRepo := repository.NewStockHistoryRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo)
	categorySvc := service.NewCategoryService(categoryRepo)
	productSvc := service.NewProductService(productRepo, historyRepo)
	stockSvc := service.NewStockService(productRepo, historyRepo)
	supplierSvc := service.NewSupplierService(supplierRepo)
	customerSvc := service.NewCustomerService(customerRepo)
	saleSvc := service.NewSaleService(saleRepo, productRepo, historyRepo)
	purchaseSvc := service.NewPurchaseService(purchaseRepo, productRepo, historyRepo)
	reportSvc := service.NewReportService(productRepo, categoryRepo, supplierRepo, customerRepo, saleRepo, historyRepo)
	exportSvc := service.NewExportService(saleRepo, productRepo, historyRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc, sessions)
	dashboardH := handler.NewDashboardHandler(reportSvc, sessions)
	categoryH := handler.NewCategoryHandler(categorySvc, sessions)
	productH := handler.NewProductHandler(productSvc, categorySvc, sessions)
	stockH := handler.NewStockHandler(stockSvc, productSvc, sessions)
	supplierH := handler.NewSupplierHandler(supplierSvc, sessions)
	customerH := handler.NewCustomerHandler(customerSvc, sessions)
	saleH := handler.NewSaleHandler(saleSvc, productSvc, customerSvc, sessions)
	purchaseH := handler.NewPurchaseHandler(purchaseSvc, productSvc, supplierSvc, sessions)
	reportH := handler.NewReportHandler(reportSvc, exportSvc, sessions)
	profileH := handler.NewProfileHandler(authSvc, sessions)
	apiH := handler.NewAPIHandler(productSvc, customerSvc)

	// ── Public routes ────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))
	r.GET("/", authH.Home)
	r.GET("/login", middleware.LoginRateLimiter(), authH.LoginPage)
	r.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	r.GET("/logout", authH.Logout)

	// ── Session-gated pages ──────────────────────────────────────────────────
	auth := r.Group("/", middleware.RequireSession(sessions))
	{
		auth.GET("/dashboard", dashboardH.Show)

		auth.GET("/categories", categoryH.List)
		auth.POST("/category/add", categoryH.Create)
		auth.POST("/category/edit/:id", categoryH.Update)
		auth.GET("/category/delete/:id", categoryH.Delete)

		auth.GET("/products", productH.List)
		auth.POST("/product/add", productH.Create)
		auth.POST("/product/edit/:id", productH.Update)
		auth.GET("/product/delete/:id", productH.Delete)

		auth.GET("/stock", stockH.Manage)
		auth.POST("/stock/adjust/:id", stockH.Adjust)
		auth.GET("/stock/history", stockH.History)

		auth.GET("/suppliers", supplierH.List)
		auth.POST("/supplier/add", supplierH.Create)
		auth.POST("/supplier/edit/:id", supplierH.Update)
		auth.GET("/supplier/delete/:id", supplierH.Delete)

		auth.GET("/customers", customerH.List)
		auth.POST("/customer/add", customerH.Create)
		auth.POST("/customer/edit/:id", customerH.Update)
		auth.GET("/customer/delete/:id", customerH.Delete)

		auth.GET("/sales", saleH.List)
		auth.GET("/sale/new", saleH.New)
		auth.POST("/sale/create", saleH.Create)
		auth.GET("/sale/invoice/:id", saleH.Invoice)
		auth.GET("/sale/delete/:id", saleH.Delete)

		auth.GET("/purchases", purchaseH.List)
		auth.GET("/purchase/new", purchaseH.New)
		auth.POST("/purchase/create", purchaseH.Create)
		auth.GET("/purchase/receive/:id", purchaseH.Receive)
		auth.GET("/purchase/delete/:id", purchaseH.Delete)

		auth.GET("/reports", reportH.Show)
		auth.GET("/reports/export/sales", reportH.ExportSales)
		auth.GET("/reports/export/products", reportH.ExportProducts)
		auth.GET("/reports/export/inventory", reportH.ExportInventory)

		auth.GET("/profile", profileH.Show)
		auth.POST("/profile/update", profileH.Update)
		auth.POST("/profile/change-password", profileH.ChangePassword)

		auth.GET("/api/product/:id", apiH.GetProduct)
		auth.GET("/api/customers", apiH.ListCustomers)
		auth.POST("/api/customer/add", apiH.AddCustomer)
	}

	// Unknown pages bounce to the dashboard with a notice rather than a bare 404.
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, apierror.New("Not found"))
			return
		}
		sessions.AddFlash(c, "Page not found!", "warning")
		c.Redirect(http.StatusFound, "/dashboard")
	})

	return r
}
