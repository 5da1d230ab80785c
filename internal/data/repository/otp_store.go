package repository

import (
	"sync"
	"time"

	"notes-backend/internal/data/entity"
	"notes-backend/pkg/utils"

	"go.uber.org/zap"
)

// OTPStore issues and verifies single-use, time-limited codes keyed by
// recipient email. It is the only in-process shared mutable state; the backing
// structure is an implementation detail, verify-and-consume atomicity is the
// contract.
type OTPStore interface {
	// Issue stores a new pending challenge for the email, superseding any
	// prior one regardless of purpose, and returns the code for out-of-band
	// delivery. The code must never be logged.
	Issue(email string, purpose entity.OTPPurpose, signup *entity.SignupData) string

	// Verify consumes the pending challenge on the first successful attempt
	// and returns the signup payload, if any. It reports false when no entry
	// exists, the entry expired, or code/purpose do not match.
	Verify(email, code string, purpose entity.OTPPurpose) (*entity.SignupData, bool)
}

type pendingOTP struct {
	code      string
	purpose   entity.OTPPurpose
	expiresAt time.Time
	signup    *entity.SignupData
}

type otpStore struct {
	mu      sync.Mutex
	pending map[string]pendingOTP
	ttl     time.Duration
	log     *zap.Logger
}

func NewOTPStore(ttl time.Duration, log *zap.Logger) OTPStore {
	return &otpStore{
		pending: make(map[string]pendingOTP),
		ttl:     ttl,
		log:     log.With(zap.String("repository", "otp")),
	}
}

func (s *otpStore) Issue(email string, purpose entity.OTPPurpose, signup *entity.SignupData) string {
	code := utils.GenerateOTPCode()
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Last write wins per email: a fresh request replaces whatever challenge
	// was pending, even one of a different purpose.
	s.pending[email] = pendingOTP{
		code:      code,
		purpose:   purpose,
		expiresAt: now.Add(s.ttl),
		signup:    signup,
	}

	// Amortized cleanup instead of a background task.
	s.purgeExpiredLocked(now)

	s.log.Debug("OTP issued",
		zap.String("email", email),
		zap.String("purpose", string(purpose)),
	)

	return code
}

func (s *otpStore) Verify(email, code string, purpose entity.OTPPurpose) (*entity.SignupData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pending[email]
	if !ok {
		return nil, false
	}

	if time.Now().After(p.expiresAt) {
		delete(s.pending, email)
		return nil, false
	}

	if p.code != code || p.purpose != purpose {
		return nil, false
	}

	// One-time use: consume before returning.
	delete(s.pending, email)
	return p.signup, true
}

// purgeExpiredLocked drops every expired entry. Caller holds the lock.
func (s *otpStore) purgeExpiredLocked(now time.Time) {
	for email, p := range s.pending {
		if now.After(p.expiresAt) {
			delete(s.pending, email)
		}
	}
}
