package wire

import (
	"time"

	"notes-backend/internal/adaptor"
	"notes-backend/internal/data/repository"
	"notes-backend/pkg/middleware"
	"notes-backend/pkg/token"
	"notes-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	issuer *token.Issuer,
	log *zap.Logger,
) {
	// Issuing codes is cheap for the caller and costs a mail send for us, so
	// the two send-otp routes get a tighter per-IP limit than the rest.
	otpLimit := httprate.LimitByIP(
		config.RateLimit.OTPRequests,
		time.Duration(config.RateLimit.OTPWindowMin)*time.Minute,
	)

	// ==================== PUBLIC ROUTES ====================
	r.With(otpLimit).Post("/api/auth/signup/send-otp", authHandler.SendSignupOTP)
	r.Post("/api/auth/signup/verify-otp", authHandler.VerifySignupOTP)
	r.With(otpLimit).Post("/api/auth/signin/send-otp", authHandler.SendSigninOTP)
	r.Post("/api/auth/signin/verify-otp", authHandler.VerifySigninOTP)
	r.Post("/api/auth/logout", authHandler.Logout)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.Auth(issuer, repo.User, log)).Get("/api/auth/profile", authHandler.Profile)
}
