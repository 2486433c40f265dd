// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/cashease/backend/config"
	"github.com/cashease/backend/internal/application/adapter"
	"github.com/cashease/backend/internal/application/session"
	"github.com/cashease/backend/internal/application/usecase/auth"
	"github.com/cashease/backend/internal/application/usecase/budget"
	"github.com/cashease/backend/internal/application/usecase/expense"
	"github.com/cashease/backend/internal/application/usecase/goal"
	insightuc "github.com/cashease/backend/internal/application/usecase/insight"
	reportuc "github.com/cashease/backend/internal/application/usecase/report"
	"github.com/cashease/backend/internal/domain/insight"
	"github.com/cashease/backend/internal/infra/server/router"
	"github.com/cashease/backend/internal/integration/adapters"
	"github.com/cashease/backend/internal/integration/cache"
	"github.com/cashease/backend/internal/integration/email"
	"github.com/cashease/backend/internal/integration/email/templates"
	"github.com/cashease/backend/internal/integration/entrypoint/controller"
	"github.com/cashease/backend/internal/integration/entrypoint/middleware"
	"github.com/cashease/backend/internal/integration/persistence"
	"github.com/cashease/backend/internal/integration/report"
)

// Resources are the external connections the application is built on.
type Resources struct {
	DB *gorm.DB
	// Redis is optional; without it streaks are stored in the database.
	Redis redis.Cmdable
	// EmailSender overrides the Resend client, e.g. with email.MockEmailSender.
	EmailSender adapter.EmailSender
	// Clock overrides time.Now for sessions.
	Clock func() time.Time
	// Picker overrides the random tip selection of the insight engine.
	Picker insight.Picker
}

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	Router      *router.Router
	Sessions    *session.Manager
	RateLimiter *middleware.RateLimiter
	// RefreshTokens is pruned periodically by the server.
	RefreshTokens persistence.TokenRepository
	// EmailWorker is nil when email delivery is disabled.
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, res Resources) (*Injector, error) {
	if res.DB == nil {
		return nil, fmt.Errorf("database is required")
	}
	db := res.DB

	// Repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	store := session.Store{
		Expenses: persistence.NewExpenseRepository(db),
		Goals:    persistence.NewGoalRepository(db),
		Budget:   persistence.NewBudgetRepository(db),
		Streaks:  persistence.NewStreakRepository(db),
	}
	if res.Redis != nil {
		store.Streaks = cache.NewStreakRepository(res.Redis)
	}

	// Services
	passwords := adapters.NewPasswordHasher(cfg.JWT.BcryptCost)
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry, tokenRepo)
	suggester := adapters.NewFallbackSuggester(adapters.NewGeminiService(cfg.Gemini.APIKey), adapters.NewKeywordSuggester())

	notifier, worker, err := buildNotifications(cfg, db, userRepo, res.EmailSender)
	if err != nil {
		return nil, err
	}

	var sessionOpts []session.Option
	if res.Clock != nil {
		sessionOpts = append(sessionOpts, session.WithClock(res.Clock))
	}
	sessions := session.NewManager(store, notifier, sessionOpts...)

	engineOpts := []insight.Option{
		insight.WithCurrency(cfg.Insights.Currency),
		insight.WithDailyThreshold(cfg.Insights.DailyThreshold),
	}
	if res.Picker != nil {
		engineOpts = append(engineOpts, insight.WithPicker(res.Picker))
	}
	engine := insight.NewEngine(engineOpts...)

	// Controllers
	healthChecks := map[string]controller.Checker{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if res.Redis != nil {
		healthChecks["redis"] = func(ctx context.Context) error {
			return res.Redis.Ping(ctx).Err()
		}
	}

	controllers := router.Controllers{
		Health: controller.NewHealthController(healthChecks),
		Auth: controller.NewAuthController(
			auth.NewRegisterUserUseCase(userRepo, passwords, tokenService, sessions),
			auth.NewLoginUserUseCase(userRepo, passwords, tokenService, sessions),
			auth.NewRefreshTokenUseCase(tokenService),
			auth.NewLogoutUserUseCase(tokenService, sessions),
		),
		Expense: controller.NewExpenseController(
			expense.NewCreateExpenseUseCase(sessions),
			expense.NewListExpensesUseCase(sessions),
			expense.NewDeleteExpenseUseCase(sessions),
			expense.NewSuggestCategoryUseCase(sessions, suggester),
		),
		Goal: controller.NewGoalController(
			goal.NewCreateGoalUseCase(sessions),
			goal.NewListGoalsUseCase(sessions),
			goal.NewGetGoalUseCase(sessions),
			goal.NewDeleteGoalUseCase(sessions),
			goal.NewAddSavingsUseCase(sessions),
		),
		Budget: controller.NewBudgetController(
			budget.NewSetLimitUseCase(sessions),
			budget.NewGetLimitUseCase(sessions),
		),
		Insight: controller.NewInsightController(
			insightuc.NewGetInsightsUseCase(sessions, engine),
			insightuc.NewGetSummaryUseCase(sessions),
		),
		Report: controller.NewReportController(
			reportuc.NewExportReportUseCase(sessions, report.Renderers(), cfg.Insights.Currency),
		),
	}

	limit := cfg.RateLimit.LoginPerMinute
	if cfg.Server.Environment == config.EnvTest {
		limit = 0
	}
	rateLimiter := middleware.NewRateLimiterWithConfig(limit, time.Minute)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	return &Injector{
		Config:        cfg,
		Router:        router.NewRouter(controllers, rateLimiter, authMiddleware),
		Sessions:      sessions,
		RateLimiter:   rateLimiter,
		RefreshTokens: tokenRepo,
		EmailWorker:   worker,
	}, nil
}

// buildNotifications queues emails when delivery is enabled and only logs otherwise.
func buildNotifications(cfg *config.Config, db *gorm.DB, users adapter.UserRepository, sender adapter.EmailSender) (adapter.Notifier, *email.Worker, error) {
	if !cfg.Email.Enabled {
		return email.NewLogNotifier(), nil, nil
	}

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	if sender == nil {
		if cfg.Email.ResendAPIKey != "" {
			sender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		} else {
			slog.Warn("RESEND_API_KEY not set, emails are captured by the mock sender")
			sender = email.NewMockEmailSender()
		}
	}

	queue := persistence.NewEmailQueueRepository(db)
	worker := email.NewWorker(queue, sender, renderer, email.WorkerConfig{
		PollInterval:  cfg.Email.PollInterval,
		BatchSize:     cfg.Email.BatchSize,
		RetentionDays: cfg.Email.RetentionDays,
	})

	return email.NewService(queue, users, cfg.Insights.Currency), worker, nil
}
