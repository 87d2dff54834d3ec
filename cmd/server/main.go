package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/labelops/royhub/db"
	"github.com/labelops/royhub/db/migrations"
	"github.com/labelops/royhub/gateway"
	"github.com/labelops/royhub/lib/logging"
	"github.com/labelops/royhub/lib/service"
	"github.com/labelops/royhub/lib/tokens"
	"github.com/labelops/royhub/lib/transport"
	"github.com/uptrace/bun/migrate"
)

// @title        royhub
// @version      1.0.0
// @description  Royalty recoupment, distribution and payout ledger for label operations.

// @BasePath  /

// @securitydefinitions.apikey  AdminToken
// @in                          header
// @name                        Authorization
// @schemes                     https http
func main() {

	c := &service.Config{}

	// Load configuration from environment variables
	err := godotenv.Load(".env")
	if err != nil {
		fmt.Println("Failed to load .env file")
	}
	err = envconfig.Process("", c)
	if err != nil {
		log.Fatalf("Error loading environment variables: %v", err)
	}

	// Setup logging to STDOUT or a configured log file
	logger := logging.Logger(c.LogFilePath)

	// Open a DB connection based on the configured DATABASE_URI
	dbConn, err := db.Open(c)
	if err != nil {
		logger.Fatalf("Error initializing db connection: %v", err)
	}

	// Migrate the DB
	startupCtx := context.Background()
	migrator := migrate.NewMigrator(dbConn, migrations.Migrations)
	err = migrator.Init(startupCtx)
	if err != nil {
		logger.Fatalf("Error initializing db migrator: %v", err)
	}
	_, err = migrator.Migrate(startupCtx)
	if err != nil {
		logger.Fatalf("Error migrating database: %v", err)
	}

	// Setup exception tracking with Sentry if configured
	// sentry init needs to happen before the echo middlewares are added
	if c.SentryDSN != "" {
		if err = sentry.Init(sentry.ClientOptions{
			Dsn:              c.SentryDSN,
			IgnoreErrors:     []string{"401"},
			EnableTracing:    c.SentryTracesSampleRate > 0,
			TracesSampleRate: c.SentryTracesSampleRate,
		}); err != nil {
			logger.Errorf("sentry init error: %v", err)
		}
	}

	// Client for the external payment rail
	railClient := gateway.NewClient(c.RailUrl, c.RailSecret, time.Duration(c.RailTimeout)*time.Second)

	svc := &service.Service{
		Config:      c,
		DB:          dbConn,
		RailClient:  railClient,
		Logger:      logger,
		EventPubSub: service.NewPubsub(),
	}

	//init echo server
	e := transport.InitEcho(c, logger)

	logMw := transport.CreateLoggingMiddleware(logger)
	// strict rate limit for payout runs
	strictRateLimitMiddleware := transport.CreateRateLimitMiddleware(c.StrictRateLimit, c.BurstRateLimit)
	adminMw := tokens.AdminTokenMiddleware(c.AdminToken)

	admin := e.Group("", adminMw, logMw)
	adminWithStrictRateLimit := e.Group("", adminMw, strictRateLimitMiddleware, logMw)

	transport.RegisterEndpoints(svc, e, admin, adminWithStrictRateLimit)

	var backgroundWg sync.WaitGroup
	backGroundCtx, _ := signal.NotifyContext(context.Background(), os.Interrupt)

	//Start webhook subscription. Runs unconditionally: brands can carry
	//their own webhook urls on top of the global one.
	backgroundWg.Add(1)
	go func() {
		svc.StartWebhookSubscription(backGroundCtx)
		svc.Logger.Info("Webhook routine done")
		backgroundWg.Done()
	}()
	//Start rabbitmq publisher
	if svc.Config.RabbitMQUri != "" {
		backgroundWg.Add(1)
		go func() {
			err = svc.StartRabbitMqPublisher(backGroundCtx)
			if err != nil && err != context.Canceled {
				svc.Logger.Error(err)
				sentry.CaptureException(err)
			}

			svc.Logger.Info("Rabbit ledger publisher done")
			backgroundWg.Done()
		}()
	}

	//Start Prometheus server if necessary
	if svc.Config.EnablePrometheus {
		go transport.StartPrometheusEcho(logger, svc, e)
	}

	// Start server
	go func() {
		if err := e.Start(fmt.Sprintf(":%v", c.Port)); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server")
		}
	}()

	<-backGroundCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
	//Wait for graceful shutdown of background routines
	backgroundWg.Wait()
	svc.Logger.Info("royhub exiting gracefully. Goodbye.")
}
