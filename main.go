package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"chai/internal/config"
	"chai/internal/database"
	"chai/internal/handlers"
	"chai/internal/logger"
	"chai/internal/repositories"
	"chai/internal/services"
	"chai/pkg/rabbitmq"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log)

	app, cleanup, err := buildApp(*cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to start")
	}
	defer cleanup()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.WithField("addr", cfg.Server.Port).Info("starting server")
		if err := app.Listen(cfg.Server.Port); err != nil {
			log.WithError(err).Fatal("server failed to start")
		}
	}()

	<-quit
	log.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.WithError(err).Error("error during fiber shutdown")
	}
	log.Info("server gracefully stopped")
}

// buildApp opens the database, connects the optional event publisher and
// wires every service into the web app. cleanup releases what was opened.
func buildApp(cfg config.Config, log *logrus.Logger) (*fiber.App, func(), error) {
	db, err := database.OpenAndMigrate(cfg.Database, log)
	if err != nil {
		return nil, nil, err
	}
	closers := []func(){func() {
		if err := database.Close(db); err != nil {
			log.WithError(err).Error("failed to close database")
		}
	}}
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var publisher services.EventPublisher
	if cfg.RabbitMQ.URL != "" {
		mq, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQ.URL, Queue: cfg.RabbitMQ.Queue}, log)
		if err != nil {
			// Events are best effort; the site still works without a broker.
			log.WithError(err).Warn("record events disabled")
		} else {
			publisher = mq
			closers = append(closers, func() {
				if err := mq.Close(); err != nil {
					log.WithError(err).Error("failed to close rabbitmq client")
				}
			})
			if cfg.RabbitMQ.Audit {
				if err := mq.ConsumeRecordEvents(rabbitmq.AuditLogger(log)); err != nil {
					log.WithError(err).Warn("record event audit disabled")
				}
			}
		}
	}

	auth, err := services.NewAdminAuthService(cfg.Admin.Username, cfg.Admin.Password, cfg.Admin.JWTSecret, cfg.Admin.TokenTTL)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	app := handlers.NewApp(handlers.Dependencies{
		Config:    cfg,
		Log:       log,
		Students:  services.NewStudentService(repositories.NewGORMStudentRepository(db), publisher, log),
		Signups:   services.NewSignupService(repositories.NewGORMSignupRepository(db), publisher, log),
		Employees: services.NewEmployeeService(repositories.NewGORMEmployeeRepository(db)),
		Blog:      services.NewBlogService(repositories.NewGORMBlogPostRepository(db), cfg.Media.Dir, cfg.Media.AllowedTypes, publisher, log),
		Auth:      auth,
	})
	return app, cleanup, nil
}
