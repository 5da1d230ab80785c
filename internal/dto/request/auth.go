package request

// SignupOTPRequest starts the signup flow.
type SignupOTPRequest struct {
	Email       string `json:"email" validate:"required,email"`
	FullName    string `json:"fullName" validate:"required,min=2,max=50"`
	DateOfBirth string `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
}

// SigninOTPRequest starts the signin flow for an existing account.
type SigninOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyOTPRequest confirms either flow with the emailed code.
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}
