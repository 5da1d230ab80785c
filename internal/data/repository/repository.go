package repository

import (
	"time"

	"notes-backend/pkg/database"

	"go.uber.org/zap"
)

// Repository groups the user directory, the note collection and the OTP store.
type Repository struct {
	User UserRepository
	Note NoteRepository
	OTP  OTPStore
}

func NewRepository(db *database.Mongo, otpTTL time.Duration, log *zap.Logger) *Repository {
	return &Repository{
		User: NewUserRepository(db, log),
		Note: NewNoteRepository(db, log),
		OTP:  NewOTPStore(otpTTL, log),
	}
}
