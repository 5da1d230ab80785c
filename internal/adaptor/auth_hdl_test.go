package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"notes-backend/internal/dto/request"
	"notes-backend/internal/dto/response"
	"notes-backend/pkg/middleware"
	"notes-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubAuthService returns canned results per operation.
type stubAuthService struct {
	requestSignupErr error
	confirmSignup    *response.AuthResponse
	confirmSignupErr error
	requestSigninErr error
	confirmSignin    *response.AuthResponse
	confirmSigninErr error
	profile          *response.UserResponse
	profileErr       error
}

func (s *stubAuthService) RequestSignupOTP(context.Context, *request.SignupOTPRequest) error {
	return s.requestSignupErr
}

func (s *stubAuthService) ConfirmSignup(context.Context, *request.VerifyOTPRequest) (*response.AuthResponse, error) {
	return s.confirmSignup, s.confirmSignupErr
}

func (s *stubAuthService) RequestSigninOTP(context.Context, *request.SigninOTPRequest) error {
	return s.requestSigninErr
}

func (s *stubAuthService) ConfirmSignin(context.Context, *request.VerifyOTPRequest) (*response.AuthResponse, error) {
	return s.confirmSignin, s.confirmSigninErr
}

func (s *stubAuthService) Profile(context.Context, string) (*response.UserResponse, error) {
	return s.profile, s.profileErr
}

func newAuthHandler(service *stubAuthService) *AuthHandler {
	config := &utils.Config{
		JWT: utils.JWTConfig{ExpiryDays: 7, CookieSecure: false},
	}
	return NewAuthHandler(service, config, zap.NewNop())
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var env utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestAuthHandler_SendSignupOTP(t *testing.T) {
	handler := newAuthHandler(&stubAuthService{})

	body := `{"email":"ann@example.com","fullName":"Ann Lee","dateOfBirth":"1990-04-12"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup/send-otp", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.SendSignupOTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Status)
	assert.Equal(t, "OTP sent successfully", env.Message)
}

func TestAuthHandler_SendSignupOTP_InvalidEmail(t *testing.T) {
	handler := newAuthHandler(&stubAuthService{})

	body := `{"email":"not-an-email","fullName":"Ann Lee","dateOfBirth":"1990-04-12"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup/send-otp", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.SendSignupOTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Status)
	assert.NotNil(t, env.Errors)
}

func TestAuthHandler_SendSignupOTP_DuplicateEmail(t *testing.T) {
	handler := newAuthHandler(&stubAuthService{
		requestSignupErr: fmt.Errorf("email already registered"),
	})

	body := `{"email":"ann@example.com","fullName":"Ann Lee","dateOfBirth":"1990-04-12"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup/send-otp", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.SendSignupOTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "email already registered", env.Message)
}

func TestAuthHandler_SendSignupOTP_MailFailure(t *testing.T) {
	handler := newAuthHandler(&stubAuthService{
		requestSignupErr: fmt.Errorf("failed to send OTP email"),
	})

	body := `{"email":"ann@example.com","fullName":"Ann Lee","dateOfBirth":"1990-04-12"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup/send-otp", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.SendSignupOTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Failed to send OTP", env.Message)
}

func TestAuthHandler_VerifySignupOTP(t *testing.T) {
	handler := newAuthHandler(&stubAuthService{
		confirmSignup: &response.AuthResponse{
			User: response.UserResponse{
				ID:          "64f1c0ffee0000000000abcd",
				FullName:    "Ann Lee",
				Email:       "ann@example.com",
				DateOfBirth: "1990-04-12",
			},
			Token: "signed.jwt.token",
		},
	})

	body := `{"email":"ann@example.com","otp":"123456"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup/verify-otp", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.VerifySignupOTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Account created successfully", env.Message)

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie, "session cookie must be set")
	assert.Equal(t, "signed.jwt.token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 7*24*60*60, cookie.MaxAge)

	// The token travels only in the cookie, never in the body
	assert.NotContains(t, rec.Body.String(), "signed.jwt.token")
}

func TestAuthHandler_VerifySignupOTP_BadCode(t *testing.T) {
	handler := newAuthHandler(&stubAuthService{
		confirmSignupErr: fmt.Errorf("invalid or expired OTP"),
	})

	body := `{"email":"ann@example.com","otp":"123456"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup/verify-otp", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.VerifySignupOTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, sessionCookie(rec))
}

func TestAuthHandler_VerifyOTP_MalformedCode(t *testing.T) {
	handler := newAuthHandler(&stubAuthService{})

	// Too short and non-numeric codes fail request validation
	for _, otp := range []string{"12345", "abcdef"} {
		body := fmt.Sprintf(`{"email":"ann@example.com","otp":"%s"}`, otp)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/signin/verify-otp", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.VerifySigninOTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "otp %q", otp)
	}
}

func TestAuthHandler_SendSigninOTP_UnknownAccount(t *testing.T) {
	handler := newAuthHandler(&stubAuthService{
		requestSigninErr: fmt.Errorf("no account found with this email"),
	})

	body := `{"email":"ghost@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signin/send-otp", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.SendSigninOTP(rec, req)

	// Account absence on signin reads as a bad request, not 404
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "no account found with this email", env.Message)
}

func TestAuthHandler_VerifySigninOTP(t *testing.T) {
	handler := newAuthHandler(&stubAuthService{
		confirmSignin: &response.AuthResponse{
			User: response.UserResponse{
				ID:    "64f1c0ffee0000000000abcd",
				Email: "ann@example.com",
			},
			Token: "signed.jwt.token",
		},
	})

	body := `{"email":"ann@example.com","otp":"123456"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signin/verify-otp", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.VerifySigninOTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, sessionCookie(rec))
}

func TestAuthHandler_Logout(t *testing.T) {
	handler := newAuthHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()

	handler.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge, "logout must expire the cookie")
}

func TestAuthHandler_Profile(t *testing.T) {
	handler := newAuthHandler(&stubAuthService{
		profile: &response.UserResponse{
			ID:       "64f1c0ffee0000000000abcd",
			FullName: "Ann Lee",
			Email:    "ann@example.com",
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req = req.WithContext(utils.SetUserContext(req.Context(), "64f1c0ffee0000000000abcd"))
	rec := httptest.NewRecorder()

	handler.Profile(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ann@example.com")
}

func TestAuthHandler_Profile_Unauthenticated(t *testing.T) {
	handler := newAuthHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	rec := httptest.NewRecorder()

	handler.Profile(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Profile_Vanished(t *testing.T) {
	handler := newAuthHandler(&stubAuthService{
		profileErr: fmt.Errorf("user not found"),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req = req.WithContext(utils.SetUserContext(req.Context(), "64f1c0ffee0000000000abcd"))
	rec := httptest.NewRecorder()

	handler.Profile(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
