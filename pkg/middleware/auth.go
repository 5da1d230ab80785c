package middleware

import (
	"errors"
	"net/http"
	"strings"

	"notes-backend/internal/data/repository"
	"notes-backend/pkg/token"
	"notes-backend/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// SessionCookieName is the HTTP-only cookie carrying the session token.
const SessionCookieName = "token"

// extractToken reads the session token from the cookie first, then falls back
// to a bearer Authorization header.
func extractToken(r *http.Request) string {
	if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}

// Auth validates the session token and resolves the user before the request
// proceeds. Every token failure reads as unauthenticated to the client; the
// cause is only logged.
func Auth(issuer *token.Issuer, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := extractToken(r)
			if tokenStr == "" {
				utils.ResponseUnauthorized(w, "Access token required")
				return
			}

			userID, err := issuer.Verify(tokenStr)
			if err != nil {
				switch {
				case errors.Is(err, token.ErrTokenExpired):
					logger.Warn("Session token expired", zap.String("path", r.URL.Path))
					utils.ResponseUnauthorized(w, "Token expired")
				default:
					logger.Warn("Session token rejected",
						zap.Error(err),
						zap.String("path", r.URL.Path))
					utils.ResponseUnauthorized(w, "Invalid token")
				}
				return
			}

			oid, err := primitive.ObjectIDFromHex(userID)
			if err != nil {
				logger.Warn("Session token carries malformed user id", zap.String("user_id", userID))
				utils.ResponseUnauthorized(w, "Invalid token")
				return
			}

			user, err := userRepo.FindByID(r.Context(), oid)
			if err != nil {
				logger.Error("Failed to resolve session user",
					zap.Error(err),
					zap.String("user_id", userID))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil {
				logger.Warn("Session user no longer exists", zap.String("user_id", userID))
				utils.ResponseUnauthorized(w, "User not found")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID.Hex())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
