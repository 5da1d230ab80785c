package wire

import (
	"net/http"
	"time"

	"notes-backend/internal/adaptor"
	"notes-backend/internal/data/repository"
	"notes-backend/internal/usecase"
	"notes-backend/pkg/mail"
	"notes-backend/pkg/middleware"
	"notes-backend/pkg/token"
	"notes-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

// App holds the wired application.
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router.
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	issuer *token.Issuer,
	mailer mail.Mailer,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, issuer, mailer, logger)
	handler := adaptor.NewHandler(service, config, logger)

	router := setupRouter(handler, repo, config, issuer, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	issuer *token.Issuer,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.ClientURL))
	r.Use(httprate.LimitByIP(
		config.RateLimit.Requests,
		time.Duration(config.RateLimit.WindowMinutes)*time.Minute,
	))

	wireAuth(r, handler.Auth, repo, config, issuer, logger)
	wireNote(r, handler.Note, repo, issuer, logger)

	// Liveness probe, no auth
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "OK", map[string]string{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})

	return r
}
