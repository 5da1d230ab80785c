// main.go
package main

import (
	"context"
	"log"
	"time"

	"notes-backend/cmd"
	"notes-backend/internal/data/repository"
	"notes-backend/internal/wire"
	"notes-backend/pkg/database"
	"notes-backend/pkg/mail"
	"notes-backend/pkg/token"
	"notes-backend/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// A missing signing secret is a fatal configuration error
	issuer, err := token.NewIssuer(
		config.JWT.Secret,
		time.Duration(config.JWT.ExpiryDays)*24*time.Hour,
	)
	if err != nil {
		logger.Fatal("Failed to init token issuer", zap.Error(err))
	}

	mailer, err := mail.NewSMTP(mail.SMTPConfig{
		Host:     config.Email.Host,
		Port:     config.Email.Port,
		Username: config.Email.User,
		Password: config.Email.Password,
		From:     config.Email.From,
	})
	if err != nil {
		logger.Fatal("Failed to init mailer", zap.Error(err))
	}

	// Connect to database
	db, err := database.Connect(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.Disconnect(ctx); err != nil {
			logger.Error("Failed to disconnect database", zap.Error(err))
		}
	}()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(
		db,
		time.Duration(config.OTP.ExpiryMinutes)*time.Minute,
		logger,
	)

	// Wire all dependencies
	app := wire.Wiring(repos, config, issuer, mailer, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port, logger)
}
