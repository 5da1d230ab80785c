package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"notes-backend/internal/data/entity"
	"notes-backend/internal/data/repository"
	"notes-backend/internal/dto/request"
	"notes-backend/internal/dto/response"
	"notes-backend/pkg/mail"
	"notes-backend/pkg/token"
	"notes-backend/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type AuthService interface {
	RequestSignupOTP(ctx context.Context, req *request.SignupOTPRequest) error
	ConfirmSignup(ctx context.Context, req *request.VerifyOTPRequest) (*response.AuthResponse, error)
	RequestSigninOTP(ctx context.Context, req *request.SigninOTPRequest) error
	ConfirmSignin(ctx context.Context, req *request.VerifyOTPRequest) (*response.AuthResponse, error)
	Profile(ctx context.Context, userID string) (*response.UserResponse, error)
}

type authService struct {
	repo   *repository.Repository
	issuer *token.Issuer
	mailer mail.Mailer
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	issuer *token.Issuer,
	mailer mail.Mailer,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		issuer: issuer,
		mailer: mailer,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) RequestSignupOTP(ctx context.Context, req *request.SignupOTPRequest) error {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Signup OTP request validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	dob, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		return fmt.Errorf("validation failed: dateOfBirth must be a valid date")
	}

	// 2. Age derived from date of birth must be in range
	age := time.Now().Year() - dob.Year()
	if age < 13 || age > 120 {
		return fmt.Errorf("validation failed: age must be between 13 and 120 years")
	}

	email := normalizeEmail(req.Email)

	// 3. Reject already registered emails before issuing anything
	existing, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("failed to check email")
	}
	if existing != nil {
		return fmt.Errorf("email already registered")
	}

	// 4. Issue the challenge, carrying the signup payload until verification
	code := s.repo.OTP.Issue(email, entity.OTPPurposeSignup, &entity.SignupData{
		FullName:    strings.TrimSpace(req.FullName),
		DateOfBirth: dob,
	})

	// 5. Deliver out-of-band; the mail relay runs outside the store's lock
	if err := s.sendOTPEmail(ctx, email, code, entity.OTPPurposeSignup); err != nil {
		s.log.Error("Failed to send signup OTP email", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("failed to send OTP email")
	}

	s.log.Info("Signup OTP issued", zap.String("email", email))
	return nil
}

func (s *authService) ConfirmSignup(ctx context.Context, req *request.VerifyOTPRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Signup confirmation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	email := normalizeEmail(req.Email)

	// Wrong code, expired and absent all read the same to the caller.
	signup, ok := s.repo.OTP.Verify(email, req.OTP, entity.OTPPurposeSignup)
	if !ok {
		return nil, fmt.Errorf("invalid or expired OTP")
	}

	// The payload was validated when the OTP was requested; trust it here.
	user := &entity.User{
		ID:          primitive.NewObjectID(),
		FullName:    signup.FullName,
		Email:       email,
		DateOfBirth: signup.DateOfBirth,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if err == repository.ErrEmailTaken {
			return nil, fmt.Errorf("email already registered")
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to create account")
	}

	tok, err := s.issuer.Issue(user.ID.Hex())
	if err != nil {
		s.log.Error("Failed to mint session token", zap.Error(err), zap.String("user_id", user.ID.Hex()))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.Hex()),
		zap.String("email", email))

	return &response.AuthResponse{
		User:  response.UserToResponse(user),
		Token: tok,
	}, nil
}

func (s *authService) RequestSigninOTP(ctx context.Context, req *request.SigninOTPRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Signin OTP request validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	email := normalizeEmail(req.Email)

	// This deliberately reveals account existence; signup does not.
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user for signin OTP", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("failed to check email")
	}
	if user == nil {
		return fmt.Errorf("no account found with this email")
	}

	code := s.repo.OTP.Issue(email, entity.OTPPurposeSignin, nil)

	if err := s.sendOTPEmail(ctx, email, code, entity.OTPPurposeSignin); err != nil {
		s.log.Error("Failed to send signin OTP email", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("failed to send OTP email")
	}

	s.log.Info("Signin OTP issued", zap.String("email", email))
	return nil
}

func (s *authService) ConfirmSignin(ctx context.Context, req *request.VerifyOTPRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Signin confirmation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	email := normalizeEmail(req.Email)

	_, ok := s.repo.OTP.Verify(email, req.OTP, entity.OTPPurposeSignin)
	if !ok {
		return nil, fmt.Errorf("invalid or expired OTP")
	}

	// Re-resolve: the account must still exist at confirmation time.
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user for signin", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		return nil, fmt.Errorf("no account found with this email")
	}

	tok, err := s.issuer.Issue(user.ID.Hex())
	if err != nil {
		s.log.Error("Failed to mint session token", zap.Error(err), zap.String("user_id", user.ID.Hex()))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User signed in",
		zap.String("user_id", user.ID.Hex()),
		zap.String("email", email))

	return &response.AuthResponse{
		User:  response.UserToResponse(user),
		Token: tok,
	}, nil
}

func (s *authService) Profile(ctx context.Context, userID string) (*response.UserResponse, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}

	user, err := s.repo.User.FindByID(ctx, oid)
	if err != nil {
		s.log.Error("Failed to load profile", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to load profile")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// ==================== HELPER METHODS ====================

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) sendOTPEmail(ctx context.Context, email, code string, purpose entity.OTPPurpose) error {
	subject := "HD Notes - Sign In Verification"
	heading := "Sign In to HD Notes"
	if purpose == entity.OTPPurposeSignup {
		subject = "Welcome to HD Notes - Verify Your Email"
		heading = "Welcome to HD Notes!"
	}

	body := fmt.Sprintf(otpEmailTemplate, subject, heading, code)

	return s.mailer.Send(ctx, mail.Message{
		To:       []string{email},
		Subject:  subject,
		HTMLBody: body,
	})
}

const otpEmailTemplate = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
      body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
      .container { max-width: 600px; margin: 0 auto; padding: 20px; }
      .header { text-align: center; margin-bottom: 30px; }
      .logo { color: #4F46E5; font-size: 24px; font-weight: bold; }
      .otp-code { font-size: 32px; font-weight: bold; color: #4F46E5; text-align: center; margin: 20px 0; padding: 20px; background: #f8fafc; border-radius: 8px; letter-spacing: 4px; }
      .footer { margin-top: 30px; padding-top: 20px; border-top: 1px solid #e5e7eb; font-size: 14px; color: #6b7280; }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header">
        <div class="logo">HD Notes</div>
      </div>
      <h2>%s</h2>
      <p>Your verification code is:</p>
      <div class="otp-code">%s</div>
      <p>This code will expire in 10 minutes. If you didn't request this code, please ignore this email.</p>
      <div class="footer">
        <p>Best regards,<br>The HD Notes Team</p>
      </div>
    </div>
  </body>
</html>`
