// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/cashease/backend/internal/integration/entrypoint/controller"
	"github.com/cashease/backend/internal/integration/entrypoint/middleware"
)

// Controllers groups every HTTP handler the router mounts.
type Controllers struct {
	Health  *controller.HealthController
	Auth    *controller.AuthController
	Expense *controller.ExpenseController
	Goal    *controller.GoalController
	Budget  *controller.BudgetController
	Insight *controller.InsightController
	Report  *controller.ReportController
}

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine         *gin.Engine
	controllers    Controllers
	authRateLimit  *middleware.RateLimiter
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(controllers Controllers, authRateLimit *middleware.RateLimiter, authMiddleware *middleware.AuthMiddleware) *Router {
	return &Router{
		controllers:    controllers,
		authRateLimit:  authRateLimit,
		authMiddleware: authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	if environment == "test" {
		r.engine = gin.New()
		r.engine.Use(gin.Recovery())
	} else {
		r.engine = gin.Default()
	}

	r.engine.GET("/health", r.controllers.Health.Check)
	r.setupAPIRoutes()

	return r.engine
}

func (r *Router) setupAPIRoutes() {
	c := r.controllers
	v1 := r.engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.authRateLimit.Middleware(), c.Auth.Register)
		auth.POST("/login", r.authRateLimit.Middleware(), c.Auth.Login)
		auth.POST("/refresh", c.Auth.RefreshToken)
		auth.POST("/logout", c.Auth.Logout)
	}

	protected := v1.Group("")
	protected.Use(r.authMiddleware.Authenticate())

	expenses := protected.Group("/expenses")
	{
		expenses.GET("", c.Expense.List)
		expenses.POST("", c.Expense.Create)
		expenses.POST("/suggest-category", c.Expense.SuggestCategory)
		expenses.DELETE("/:id", c.Expense.Delete)
	}

	goals := protected.Group("/goals")
	{
		goals.GET("", c.Goal.List)
		goals.POST("", c.Goal.Create)
		goals.GET("/:id", c.Goal.Get)
		goals.DELETE("/:id", c.Goal.Delete)
		goals.POST("/:id/savings", c.Goal.AddSavings)
	}

	protected.GET("/budget", c.Budget.Get)
	protected.PUT("/budget", c.Budget.Set)

	protected.GET("/insights", c.Insight.Insights)
	protected.GET("/summary", c.Insight.Summary)

	protected.GET("/reports", c.Report.Export)
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
