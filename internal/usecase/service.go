package usecase

import (
	"notes-backend/internal/data/repository"
	"notes-backend/pkg/mail"
	"notes-backend/pkg/token"

	"go.uber.org/zap"
)

// Service groups all application services.
type Service struct {
	Auth AuthService
	Note NoteService
}

func NewService(
	repo *repository.Repository,
	issuer *token.Issuer,
	mailer mail.Mailer,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth: NewAuthService(repo, issuer, mailer, log),
		Note: NewNoteService(repo, log),
	}
}
