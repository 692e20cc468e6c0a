// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/pawz-connect/backend/config"
	"github.com/pawz-connect/backend/internal/infra/dependency"
	"github.com/pawz-connect/backend/internal/integration/email"
	"github.com/pawz-connect/backend/internal/integration/persistence/model"
	"github.com/pawz-connect/backend/test/integration/mock"
)

const (
	testJWTSecret     = "test-jwt-secret-key-for-testing-purposes"
	testResendAPIKey  = "re_test_key"
	testDailyLimit    = 3
	testMonthlyLimit  = 100
	resendEmailsPath  = "/emails"
	requestTimeout    = 10 * time.Second
	blockedReviewWord = "scam"
)

// tableOrder is the migration order; ClearDB walks it backwards.
var tableOrder = []string{
	"users",
	"profiles",
	"refresh_tokens",
	"password_reset_tokens",
	"pets",
	"health_records",
	"posts",
	"post_likes",
	"comments",
	"pet_services",
	"service_reviews",
	"consents",
	"audit_logs",
	"email_queue",
}

var tableModels = map[string]any{
	"users":                 &model.UserModel{},
	"profiles":              &model.ProfileModel{},
	"refresh_tokens":        &model.RefreshTokenModel{},
	"password_reset_tokens": &model.PasswordResetTokenModel{},
	"pets":                  &model.PetModel{},
	"health_records":        &model.HealthRecordModel{},
	"posts":                 &model.PostModel{},
	"post_likes":            &model.PostLikeModel{},
	"comments":              &model.CommentModel{},
	"pet_services":          &model.PetServiceModel{},
	"service_reviews":       &model.ServiceReviewModel{},
	"consents":              &model.ConsentModel{},
	"audit_logs":            &model.AuditLogModel{},
	"email_queue":           &model.EmailQueueModel{},
}

// suite holds resources shared by every scenario.
type suite struct {
	server   *httptest.Server
	injector *dependency.Injector
	db       *mock.Db
	redis    *redis.Client
	storage  *mock.Storage
	resend   *mock.ApiMock
}

var shared *suite

// InitializeTestSuite starts the API once for the whole run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)

		s, err := startSuite()
		if err != nil {
			panic(err)
		}
		shared = s
	})

	ctx.AfterSuite(func() {
		if shared == nil {
			return
		}
		shared.server.Close()
		shared.resend.Close()
	})
}

func startSuite() (*suite, error) {
	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.JWT.Secret = testJWTSecret
	cfg.Usage.DailyLimit = testDailyLimit
	cfg.Usage.MonthlyLimit = testMonthlyLimit
	cfg.Email.AppBaseURL = "http://app.test"

	s := &suite{
		db:      mock.NewDb(tableOrder, tableModels),
		redis:   mock.NewRedis(),
		storage: mock.NewStorage(),
		resend:  mock.NewApiServer(),
	}
	s.resend.Start()

	resendClient := email.NewResendClient(testResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	if err := resendClient.SetBaseURL(s.resend.GetUrl()); err != nil {
		return nil, err
	}

	injector, err := dependency.NewInjector(cfg, dependency.Infrastructure{
		DB:          s.db.DbConn,
		Redis:       s.redis,
		Storage:     s.storage,
		EmailSender: resendClient,
		Moderator:   mock.NewModerator(blockedReviewWord),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to wire test dependencies: %w", err)
	}
	s.injector = injector
	s.server = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))

	return s, nil
}

// reset restores an empty world between scenarios.
func (s *suite) reset() error {
	if err := s.db.ClearDB(); err != nil {
		return err
	}
	if err := mock.ClearRedis(s.redis); err != nil {
		return fmt.Errorf("failed to clear redis: %w", err)
	}
	s.storage.Clear()
	s.resend.Reset()
	s.resend.SetResponse(http.MethodPost, resendEmailsPath, http.StatusOK, map[string]any{"id": "re_test_email"})
	s.injector.LoginRateLimiter.Reset()
	return nil
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: requestTimeout},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, shared.reset()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		test.closeStream()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Account steps
	ctx.Given(`^a user "([^"]*)" is registered$`, test.aUserIsRegistered)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^a password reset token exists for "([^"]*)"$`, test.aPasswordResetTokenExistsFor)
	ctx.Given(`^an expired password reset token exists for "([^"]*)"$`, test.anExpiredPasswordResetTokenExistsFor)

	// Fixture steps
	ctx.Given(`^a "([^"]*)" service named "([^"]*)" exists$`, test.aServiceNamedExists)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^I upload a (\d+)x(\d+) png image to "([^"]*)"$`, test.iUploadAPNGImageTo)
	ctx.When(`^I save the response field "([^"]*)" as "([^"]*)"$`, test.iSaveTheResponseFieldAs)

	// Feed stream steps
	ctx.When(`^I open the feed stream$`, test.iOpenTheFeedStream)
	ctx.Then(`^the feed stream should receive a "([^"]*)" event containing "([^"]*)"$`, test.theFeedStreamShouldReceiveAnEventContaining)

	// Email steps
	ctx.When(`^the email worker runs$`, test.theEmailWorkerRuns)
	ctx.Then(`^the email API should have received (\d+) requests?$`, test.theEmailAPIShouldHaveReceivedRequests)
	ctx.Then(`^the email API request (\d+) should be sent to "([^"]*)"$`, test.theEmailAPIRequestShouldBeSentTo)

	// Storage steps
	ctx.Then(`^the object storage should contain (\d+) objects?$`, test.theObjectStorageShouldContainObjects)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should not exist$`, test.theResponseFieldShouldNotExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items?$`, test.theResponseFieldShouldHaveItems)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}
