package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/AslanEminovi/codex-blogsite/internal/adminservice"
	"github.com/AslanEminovi/codex-blogsite/internal/blogservice"
	"github.com/AslanEminovi/codex-blogsite/internal/common"
	"github.com/AslanEminovi/codex-blogsite/internal/userservice"
)

type application struct {
	config       *Config
	logger       *slog.Logger
	userService  *userservice.UserService
	blogService  *blogservice.BlogService
	adminService *adminservice.AdminService
}

func newApplication(cfg *Config, logger *slog.Logger, db *sql.DB, producer common.MessageProducer) *application {
	events := common.NewEventPublisher(producer, logger)
	tokens := userservice.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.Expiry)
	blogs := blogservice.NewBlogService(db, events)

	return &application{
		config:       cfg,
		logger:       logger,
		userService:  userservice.NewUserService(db, tokens, events),
		blogService:  blogs,
		adminService: adminservice.NewAdminService(db, blogs, events),
	}
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := loadConfig(".env")
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbURI := common.PostgresURI(cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name)

	err = common.Migrate(dbURI)
	if err != nil {
		logger.Error("failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := common.NewDB(dbURI, 10, 5, 15*time.Minute)
	if err != nil {
		logger.Error("failed to connect to the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer common.CloseDB(db)

	var producer common.MessageProducer = common.NopProducer{}

	if cfg.RabbitMQ.Host != "" {
		broker, err := common.NewMessageBroker(common.AMQPURI(cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.RabbitMQ.Host, cfg.RabbitMQ.Port))
		if err != nil {
			logger.Error("failed to connect to the message broker", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer broker.Close()

		err = common.SetupBlogsiteExchange(broker)
		if err != nil {
			logger.Error("failed to setup the blogsite exchange", slog.String("error", err.Error()))
			os.Exit(1)
		}

		producer = broker
	} else {
		logger.Info("RABBITMQ_HOST is not set, domain events are disabled")
	}

	app := newApplication(cfg, logger, db, producer)

	err = app.bootstrap(context.Background())
	if err != nil {
		logger.Error("failed to bootstrap the admin account", slog.String("error", err.Error()))
		os.Exit(1)
	}

	err = app.serve()
	if err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// bootstrap creates the configured admin account when none exists and, for a
// freshly created admin, optionally writes the sample posts.
func (app *application) bootstrap(ctx context.Context) error {
	if app.config.Admin.Password == "" {
		app.logger.Info("ADMIN_PASSWORD is not set, skipping admin bootstrap")
		return nil
	}

	admin, created, err := app.userService.EnsureAdmin(ctx, app.config.Admin.Username, app.config.Admin.Email, app.config.Admin.Password)
	if err != nil {
		return err
	}
	if !created {
		return nil
	}

	app.logger.Info("created admin account", slog.String("username", admin.Username))

	if !app.config.Admin.SeedSampleBlogs {
		return nil
	}

	n, err := app.blogService.SeedSampleBlogs(ctx, admin.ID)
	if err != nil {
		return err
	}

	app.logger.Info("seeded sample blogs", slog.Int("count", n))

	return nil
}
