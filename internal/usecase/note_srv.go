package usecase

import (
	"context"
	"fmt"
	"time"

	"notes-backend/internal/data/entity"
	"notes-backend/internal/data/repository"
	"notes-backend/internal/dto/request"
	"notes-backend/internal/dto/response"
	"notes-backend/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type NoteService interface {
	CreateNote(ctx context.Context, userID string, req *request.CreateNoteRequest) (*response.NoteResponse, error)
	ListNotes(ctx context.Context, userID string) ([]response.NoteResponse, error)
	UpdateNote(ctx context.Context, noteID, userID string, req *request.UpdateNoteRequest) (*response.NoteResponse, error)
	DeleteNote(ctx context.Context, noteID, userID string) error
}

type noteService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewNoteService(repo *repository.Repository, log *zap.Logger) NoteService {
	return &noteService{
		repo: repo,
		log:  log.With(zap.String("service", "note")),
	}
}

func (s *noteService) CreateNote(ctx context.Context, userID string, req *request.CreateNoteRequest) (*response.NoteResponse, error) {
	// Validate before touching persistence
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create note validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	ownerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	now := time.Now()
	note := &entity.Note{
		ID:        primitive.NewObjectID(),
		UserID:    ownerID,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Note.Create(ctx, note); err != nil {
		s.log.Error("Failed to create note",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("create note: %w", err)
	}

	s.log.Info("Note created",
		zap.String("note_id", note.ID.Hex()),
		zap.String("user_id", userID),
	)

	noteResp := response.NoteToResponse(note)
	return &noteResp, nil
}

func (s *noteService) ListNotes(ctx context.Context, userID string) ([]response.NoteResponse, error) {
	ownerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	notes, err := s.repo.Note.FindByOwner(ctx, ownerID)
	if err != nil {
		s.log.Error("Failed to list notes",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("list notes: %w", err)
	}

	noteResponses := make([]response.NoteResponse, len(notes))
	for i, note := range notes {
		noteResponses[i] = response.NoteToResponse(note)
	}

	return noteResponses, nil
}

func (s *noteService) UpdateNote(ctx context.Context, noteID, userID string, req *request.UpdateNoteRequest) (*response.NoteResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update note validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	ownerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	// A malformed note id can never match anything the caller owns.
	id, err := primitive.ObjectIDFromHex(noteID)
	if err != nil {
		return nil, fmt.Errorf("note not found")
	}

	note, err := s.repo.Note.Update(ctx, id, ownerID, req.Title, req.Content)
	if err != nil {
		s.log.Error("Failed to update note",
			zap.Error(err),
			zap.String("note_id", noteID),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("update note: %w", err)
	}
	if note == nil {
		// Absent or owned by someone else: indistinguishable on purpose.
		return nil, fmt.Errorf("note not found")
	}

	s.log.Info("Note updated",
		zap.String("note_id", noteID),
		zap.String("user_id", userID),
	)

	noteResp := response.NoteToResponse(note)
	return &noteResp, nil
}

func (s *noteService) DeleteNote(ctx context.Context, noteID, userID string) error {
	ownerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	id, err := primitive.ObjectIDFromHex(noteID)
	if err != nil {
		return fmt.Errorf("note not found")
	}

	deleted, err := s.repo.Note.Delete(ctx, id, ownerID)
	if err != nil {
		s.log.Error("Failed to delete note",
			zap.Error(err),
			zap.String("note_id", noteID),
			zap.String("user_id", userID),
		)
		return fmt.Errorf("delete note: %w", err)
	}
	if !deleted {
		return fmt.Errorf("note not found")
	}

	s.log.Info("Note deleted",
		zap.String("note_id", noteID),
		zap.String("user_id", userID),
	)

	return nil
}
