package entity

import (
	"time"
)

// OTPPurpose scopes a verification code to the flow that requested it.
type OTPPurpose string

const (
	OTPPurposeSignup OTPPurpose = "signup"
	OTPPurposeSignin OTPPurpose = "signin"
)

// SignupData is carried by a pending signup challenge until the account is
// actually created. Signin challenges carry nothing.
type SignupData struct {
	FullName    string
	DateOfBirth time.Time
}
