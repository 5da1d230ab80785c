package adaptor

import (
	"notes-backend/internal/usecase"
	"notes-backend/pkg/utils"

	"go.uber.org/zap"
)

// Handler groups all HTTP handlers.
type Handler struct {
	Auth *AuthHandler
	Note *NoteHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth: NewAuthHandler(service.Auth, config, log),
		Note: NewNoteHandler(service.Note, log),
	}
}
