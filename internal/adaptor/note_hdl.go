package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"notes-backend/internal/dto/request"
	"notes-backend/internal/usecase"
	"notes-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type NoteHandler struct {
	service usecase.NoteService
	log     *zap.Logger
}

func NewNoteHandler(service usecase.NoteService, log *zap.Logger) *NoteHandler {
	return &NoteHandler{
		service: service,
		log:     log.With(zap.String("handler", "note")),
	}
}

// CreateNote handles POST /api/notes (protected)
func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	note, err := h.service.CreateNote(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create note")
		return
	}

	utils.ResponseCreated(w, "Note created successfully", note)
}

// ListNotes handles GET /api/notes (protected)
func (h *NoteHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	notes, err := h.service.ListNotes(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "list notes")
		return
	}

	utils.ResponseSuccess(w, "success", notes)
}

// UpdateNote handles PUT /api/notes/{id} (protected)
func (h *NoteHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	noteID := chi.URLParam(r, "id")
	if noteID == "" {
		utils.ResponseBadRequest(w, "Note ID is required", nil)
		return
	}

	var req request.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	note, err := h.service.UpdateNote(r.Context(), noteID, userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update note")
		return
	}

	utils.ResponseSuccess(w, "Note updated successfully", note)
}

// DeleteNote handles DELETE /api/notes/{id} (protected)
func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	noteID := chi.URLParam(r, "id")
	if noteID == "" {
		utils.ResponseBadRequest(w, "Note ID is required", nil)
		return
	}

	if err := h.service.DeleteNote(r.Context(), noteID, userID); err != nil {
		h.handleServiceError(w, err, "delete note")
		return
	}

	utils.ResponseSuccess(w, "Note deleted successfully", nil)
}

// handleServiceError maps service failures to HTTP responses
func (h *NoteHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
