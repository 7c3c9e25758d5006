package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Moskzow/StoreControl/internal/config"
	"github.com/Moskzow/StoreControl/internal/handler"
	"github.com/Moskzow/StoreControl/internal/kv"
	"github.com/Moskzow/StoreControl/internal/middleware"
	"github.com/Moskzow/StoreControl/internal/state"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Container ← KV store
func New(cfg *config.Config, store kv.Store, st *state.Container) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Handlers ─────────────────────────────────────────────────────────────
	productsH := handler.NewProductsHandler(st)
	suppliersH := handler.NewSuppliersHandler(st)
	customersH := handler.NewCustomersHandler(st)
	customerTypesH := handler.NewCustomerTypesHandler(st)
	cartH := handler.NewCartHandler(st)
	salesH := handler.NewSalesHandler(st, cfg.PDFStoragePath)
	registerH := handler.NewRegisterHandler(st)
	purchasesH := handler.NewPurchasesHandler(st)
	settingsH := handler.NewSettingsHandler(st)
	reportsH := handler.NewReportsHandler(st)
	backupH := handler.NewBackupHandler(st)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(store))

	v1 := r.Group("/v1")
	{
		products := v1.Group("/products")
		{
			products.POST("", productsH.Create)
			products.GET("", productsH.List)
			products.GET("/low-stock", productsH.LowStock)
			products.GET("/:id", productsH.Get)
			products.PUT("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Delete)
			products.PUT("/:id/supplier-price", productsH.SetSupplierPrice)
			products.PUT("/:id/profit-margins", productsH.SetProfitMargins)
		}

		suppliers := v1.Group("/suppliers")
		{
			suppliers.POST("", suppliersH.Create)
			suppliers.GET("", suppliersH.List)
			suppliers.GET("/:id", suppliersH.Get)
			suppliers.PUT("/:id", suppliersH.Update)
			suppliers.DELETE("/:id", suppliersH.Delete)
		}

		customers := v1.Group("/customers")
		{
			customers.POST("", customersH.Create)
			customers.GET("", customersH.List)
			customers.GET("/:id", customersH.Get)
			customers.PUT("/:id", customersH.Update)
			customers.DELETE("/:id", customersH.Delete)
		}

		customerTypes := v1.Group("/customer-types")
		{
			customerTypes.POST("", customerTypesH.Create)
			customerTypes.GET("", customerTypesH.List)
			customerTypes.PUT("/:id", customerTypesH.Update)
			customerTypes.DELETE("/:id", customerTypesH.Delete)
		}

		cart := v1.Group("/cart")
		{
			cart.GET("", cartH.Get)
			cart.POST("/customer-type", cartH.SelectCustomerType)
			cart.POST("/customer", cartH.SelectCustomer)
			cart.DELETE("/customer", cartH.ClearCustomer)
			cart.POST("/items", cartH.AddItem)
			cart.PUT("/items/:index", cartH.UpdateItem)
			cart.DELETE("/items/:index", cartH.RemoveItem)
			cart.DELETE("", cartH.Clear)
		}

		sales := v1.Group("/sales")
		{
			sales.POST("", salesH.Complete)
			sales.GET("", salesH.List)
			sales.GET("/:id", salesH.Get)
			sales.GET("/:id/ticket", salesH.Ticket)
		}

		register := v1.Group("/register")
		{
			register.POST("/open", registerH.Open)
			register.POST("/close", registerH.Close)
			register.GET("/status", registerH.Status)
			register.GET("/history", registerH.History)
		}

		purchases := v1.Group("/purchases")
		{
			purchases.POST("", purchasesH.Create)
			purchases.GET("", purchasesH.List)
			purchases.GET("/:id", purchasesH.Get)
			purchases.PUT("/:id", purchasesH.Update)
			purchases.DELETE("/:id", purchasesH.Delete)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/sales", reportsH.Sales)
			reports.GET("/products", reportsH.Products)
			reports.GET("/stock", reportsH.Stock)
			reports.GET("/customers", reportsH.Customers)
		}

		v1.GET("/settings", settingsH.Get)
		v1.PUT("/settings", settingsH.Update)
		v1.GET("/company", settingsH.GetCompanyInfo)
		v1.PUT("/company", settingsH.UpdateCompanyInfo)

		v1.GET("/export", backupH.Export)
		v1.POST("/import", backupH.Import)

		v1.POST("/reset", settingsH.Reset)
	}

	return r
}
