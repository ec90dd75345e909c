package devserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

// Server implements the backend contract over in-memory storage.
type Server struct {
	store  *Storage
	secret []byte
}

// Options overrides Server defaults.
type Options struct {
	// Storage defaults to a fresh empty store.
	Storage *Storage
	// Secret signs token pairs. Defaults to a per-process random value,
	// which invalidates all tokens on restart.
	Secret []byte
	// LogLevel is one of debug, info, warn, error, off. Defaults to warn.
	LogLevel string
}

// New builds the echo server with every route of the contract mounted
// under /api.
func New(opts Options) *echo.Echo {
	store := opts.Storage
	if store == nil {
		store = NewStorage()
	}
	secret := opts.Secret
	if len(secret) == 0 {
		secret = []byte(uuid.NewString())
	}
	s := &Server{store: store, secret: secret}

	e := echo.New()
	e.HideBanner = true
	switch opts.LogLevel {
	case "debug":
		e.Logger.SetLevel(log.DEBUG)
	case "info":
		e.Logger.SetLevel(log.INFO)
	case "error":
		e.Logger.SetLevel(log.ERROR)
	case "off":
		e.Logger.SetLevel(log.OFF)
	default:
		e.Logger.SetLevel(log.WARN)
	}
	e.Use(middleware.Recover())

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"message": "LedgerDesk API",
			"version": "1.0.0",
		})
	})
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/login", s.handleLogin)
	auth.POST("/register", s.handleRegister)
	auth.POST("/refresh", s.handleRefresh)
	auth.POST("/logout", s.handleLogout, s.requireAuth)
	auth.GET("/me", s.handleMe, s.requireAuth)
	auth.PUT("/me", s.handleUpdateMe, s.requireAuth)
	auth.POST("/change-password", s.handleChangePassword, s.requireAuth)

	invoices := api.Group("/invoices", s.requireAuth)
	invoices.GET("", s.handleListInvoices)
	invoices.POST("", s.handleCreateInvoice)
	invoices.GET("/stats/summary", s.handleInvoiceSummary)
	invoices.GET("/stats/analytics", s.handleInvoiceAnalytics)
	invoices.GET("/overdue", s.handleOverdueInvoices)
	invoices.POST("/bulk-actions", s.handleBulkInvoiceAction)
	invoices.GET("/:id", s.handleGetInvoice)
	invoices.PUT("/:id", s.handleUpdateInvoice)
	invoices.DELETE("/:id", s.handleDeleteInvoice)
	invoices.POST("/:id/send-reminder", s.handleSendReminder)

	crm := api.Group("/crm", s.requireAuth)
	crm.GET("/customers", s.handleListCustomers)
	crm.POST("/customers", s.handleCreateCustomer)
	crm.GET("/customers/stats/summary", s.handleCustomerSummary)
	crm.GET("/customers/:id", s.handleGetCustomer)
	crm.PUT("/customers/:id", s.handleUpdateCustomer)
	crm.DELETE("/customers/:id", s.handleDeleteCustomer)
	crm.GET("/interactions", s.handleListInteractions)
	crm.POST("/interactions", s.handleCreateInteraction)
	crm.PUT("/interactions/:id", s.handleUpdateInteraction)
	crm.GET("/follow-ups", s.handleFollowUps)

	ai := api.Group("/ai", s.requireAuth)
	ai.POST("/query", s.handleAIQuery)
	ai.GET("/insights", s.handleAIInsights)
	ai.GET("/recommendations", s.handleAIRecommendations)
	ai.GET("/context", s.handleAIContext)
	ai.POST("/feedback", s.handleAIFeedback)
	ai.GET("/history", s.handleAIHistory)
	ai.GET("/analytics", s.handleAIAnalytics)
	ai.POST("/smart-insights", s.handleSmartInsights)

	reports := api.Group("/reports", s.requireAuth)
	reports.POST("/generate", s.handleGenerateReport)
	reports.GET("", s.handleListReports)
	reports.GET("/dashboard", s.handleDashboard)
	reports.GET("/analytics/overview", s.handleAnalyticsOverview)
	reports.GET("/metrics/kpi", s.handleKPIMetrics)
	reports.GET("/:id", s.handleGetReport)
	reports.DELETE("/:id", s.handleDeleteReport)

	return e
}
