package wire

import (
	"notes-backend/internal/adaptor"
	"notes-backend/internal/data/repository"
	"notes-backend/pkg/middleware"
	"notes-backend/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireNote(
	r chi.Router,
	noteHandler *adaptor.NoteHandler,
	repo *repository.Repository,
	issuer *token.Issuer,
	log *zap.Logger,
) {
	// Every note route requires a valid session
	r.Route("/api/notes", func(r chi.Router) {
		r.Use(middleware.Auth(issuer, repo.User, log))

		r.Post("/", noteHandler.CreateNote)
		r.Get("/", noteHandler.ListNotes)
		r.Put("/{id}", noteHandler.UpdateNote)
		r.Delete("/{id}", noteHandler.DeleteNote)
	})
}
