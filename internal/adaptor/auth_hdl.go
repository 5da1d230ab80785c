package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"notes-backend/internal/dto/request"
	"notes-backend/internal/usecase"
	"notes-backend/pkg/middleware"
	"notes-backend/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service      usecase.AuthService
	cookieSecure bool
	cookieMaxAge int
	log          *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, config *utils.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service:      service,
		cookieSecure: config.JWT.CookieSecure,
		cookieMaxAge: int((time.Duration(config.JWT.ExpiryDays) * 24 * time.Hour).Seconds()),
		log:          log.With(zap.String("handler", "auth")),
	}
}

// SendSignupOTP handles POST /api/auth/signup/send-otp
func (h *AuthHandler) SendSignupOTP(w http.ResponseWriter, r *http.Request) {
	var req request.SignupOTPRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.RequestSignupOTP(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "send signup OTP")
		return
	}

	utils.ResponseSuccess(w, "OTP sent successfully", nil)
}

// VerifySignupOTP handles POST /api/auth/signup/verify-otp
func (h *AuthHandler) VerifySignupOTP(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyOTPRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.ConfirmSignup(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "verify signup OTP")
		return
	}

	h.setSessionCookie(w, resp.Token)
	utils.ResponseCreated(w, "Account created successfully", resp)
}

// SendSigninOTP handles POST /api/auth/signin/send-otp
func (h *AuthHandler) SendSigninOTP(w http.ResponseWriter, r *http.Request) {
	var req request.SigninOTPRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.RequestSigninOTP(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "send signin OTP")
		return
	}

	utils.ResponseSuccess(w, "OTP sent successfully", nil)
}

// VerifySigninOTP handles POST /api/auth/signin/verify-otp
func (h *AuthHandler) VerifySigninOTP(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyOTPRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.ConfirmSignin(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "verify signin OTP")
		return
	}

	h.setSessionCookie(w, resp.Token)
	utils.ResponseSuccess(w, "Signed in successfully", resp)
}

// Logout handles POST /api/auth/logout. Stateless: the cookie is cleared but
// already-issued tokens stay valid until natural expiry.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	utils.ResponseSuccess(w, "Logged out successfully", nil)
}

// Profile handles GET /api/auth/profile (protected)
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	user, err := h.service.Profile(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "success", user)
}

// ==================== HELPER METHODS ====================

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   h.cookieMaxAge,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteNoneMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteNoneMode,
	})
}

// handleServiceError maps service failures to HTTP responses
func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "already registered"):
		h.log.Warn(operation+" failed - duplicate email", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid or expired"):
		h.log.Warn(operation+" failed - invalid OTP", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "no account found"):
		h.log.Warn(operation+" failed - unknown account", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "user not found"):
		h.log.Warn(operation+" failed - user not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "failed to send"):
		h.log.Error(operation+" failed - mail delivery", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to send OTP")

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
