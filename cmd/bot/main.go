package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sponsorbot/internal/completion"
	"sponsorbot/internal/config"
	"sponsorbot/internal/handler"
	"sponsorbot/internal/logging"
	"sponsorbot/internal/repository"
	"sponsorbot/internal/repository/memory"
	"sponsorbot/internal/repository/postgres"
	"sponsorbot/internal/service"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Sponsor Bot",
		zap.String("model", cfg.Completion.Model),
		zap.Bool("feedback_archive", cfg.Database.Enabled()),
	)

	// Optional feedback archive
	var archive repository.FeedbackRepository
	if cfg.Database.Enabled() {
		db, err := connectDatabase(cfg.DSN(), logger)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		if err := runMigrations(db, logger); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}

		archive = postgres.NewFeedbackRepo(db)
		logger.Info("Feedback archive enabled")
	}

	if cfg.FeedbackChatID == 0 {
		logger.Warn("FEEDBACK_CHAT_ID is not set, feedback will not be delivered")
	}

	// Initialize repositories and clients
	states := memory.NewStateRepo(memory.WithHistoryLimit(cfg.State.HistoryLimit))

	completionCfg := completion.DefaultConfig(cfg.Completion.APIKey)
	completionCfg.BaseURL = cfg.Completion.BaseURL
	completionCfg.Model = cfg.Completion.Model
	completionCfg.Timeout = cfg.Completion.Timeout
	completionCfg.SiteURL = cfg.Completion.SiteURL
	completionCfg.SiteName = cfg.Completion.SiteName
	completer := completion.NewClient(completionCfg, logger)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			logger.Error("Telegram handler error", zap.Error(err))
		},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized", zap.String("username", bot.Me.Username))

	// Initialize services
	feedbackService := service.NewFeedbackService(handler.NewBotNotifier(bot), cfg.FeedbackChatID, archive, logger)
	conversationService := service.NewConversationService(states, completer, feedbackService, logger)
	commandService := service.NewCommandService(states, logger)
	maintenanceService := service.NewMaintenanceService(
		states,
		archive,
		cfg.State.IdleTTL,
		cfg.State.FeedbackRetentionDays,
		logger,
	)

	// Canceled on SIGINT/SIGTERM; aborts in-flight completions
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize handler
	h := handler.NewHandler(ctx, bot, conversationService, commandService, logger)
	h.RegisterHandlers()

	if err := bot.SetCommands(handler.BotCommands()); err != nil {
		logger.Warn("Failed to publish command menu", zap.Error(err))
	}

	logger.Info("Handlers registered")

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		runCleanupJob(ctx, maintenanceService, cfg.State.CleanupInterval, logger)
		return nil
	})

	g.Go(func() error {
		logger.Info("Bot started successfully")
		bot.Start()
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutdown signal received, stopping bot...")
		bot.Stop()
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Bot stopped with error", zap.Error(err))
		return
	}

	logger.Info("Bot stopped gracefully")
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		// The archive sees one insert per feedback message
		db.SetMaxOpenConns(5)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations creates the feedback archive schema
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("No new migrations to apply")
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	default:
		logger.Info("Migrations applied successfully")
	}

	return nil
}

// runCleanupJob evicts idle users and expires archived feedback until ctx is done
func runCleanupJob(ctx context.Context, maintenance *service.MaintenanceService, interval time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Cleanup job stopped")
			return
		case <-ticker.C:
			logger.Info("Running scheduled cleanup")
			if err := maintenance.Cleanup(); err != nil {
				logger.Error("Failed to run scheduled cleanup", zap.Error(err))
			}
		}
	}
}
