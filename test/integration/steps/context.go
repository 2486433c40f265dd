//go:build integration

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/cashease/backend/config"
	"github.com/cashease/backend/internal/infra/dependency"
	"github.com/cashease/backend/internal/integration/email"
	"github.com/cashease/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

type response struct {
	status  int
	headers http.Header
	body    []byte
}

type testContext struct {
	engine   *gin.Engine
	injector *dependency.Injector
	db       *mock.Db
	timeMock *mock.Time
	sender   *email.MockEmailSender

	headers     map[string]string
	response    *response
	accessToken string
	userID      string
	// saved holds values captured from responses for {{name}} placeholders.
	saved map[string]string
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		mock.NewDb()
		mock.NewRedis()
	})
}

// InitializeScenario builds a fresh application per scenario and registers all steps.
func InitializeScenario(sc *godog.ScenarioContext) {
	t := &testContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		return ctx, t.before()
	})

	t.registerRequestSteps(sc)
	t.registerResponseSteps(sc)
	t.registerStateSteps(sc)
}

func testConfig() *config.Config {
	cfg := config.Load()
	cfg.Server.Environment = config.EnvTest
	cfg.JWT.Secret = testJWTSecret
	cfg.JWT.BcryptCost = 4
	cfg.Email.Enabled = true
	cfg.Gemini.APIKey = ""
	cfg.Insights.Currency = "₹"
	cfg.Insights.DailyThreshold = decimal.NewFromInt(1000)
	return cfg
}

func (t *testContext) before() error {
	t.db = mock.NewDb()
	if err := t.db.ClearDB(); err != nil {
		return fmt.Errorf("failed to clear database: %w", err)
	}
	redisClient := mock.NewRedis()
	if err := mock.ClearRedis(redisClient); err != nil {
		return fmt.Errorf("failed to clear redis: %w", err)
	}

	t.timeMock = mock.NewTime()
	t.sender = email.NewMockEmailSender()
	t.headers = map[string]string{}
	t.response = nil
	t.accessToken = ""
	t.userID = ""
	t.saved = map[string]string{}

	injector, err := dependency.NewInjector(testConfig(), dependency.Resources{
		DB:          t.db.DbConn,
		Redis:       redisClient,
		EmailSender: t.sender,
		Clock:       t.timeMock.Now,
		Picker:      func(int) int { return 0 },
	})
	if err != nil {
		return err
	}

	t.injector = injector
	t.engine = injector.Router.Setup(config.EnvTest)
	return nil
}

func (t *testContext) theCurrentDateIs(date string) error {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return err
	}
	t.timeMock.SetCurrentTime(day.Add(12 * time.Hour))
	return nil
}
