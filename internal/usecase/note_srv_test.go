package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"notes-backend/internal/data/entity"
	"notes-backend/internal/data/repository"
	"notes-backend/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// fakeNoteRepo mirrors the owner-scoped contract of the real repository:
// single-note operations match on both note id and owner id.
type fakeNoteRepo struct {
	mu    sync.Mutex
	notes map[primitive.ObjectID]*entity.Note
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[primitive.ObjectID]*entity.Note)}
}

func (f *fakeNoteRepo) Create(_ context.Context, note *entity.Note) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *note
	f.notes[note.ID] = &copied
	return nil
}

func (f *fakeNoteRepo) FindByOwner(_ context.Context, ownerID primitive.ObjectID) ([]*entity.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var owned []*entity.Note
	for _, note := range f.notes {
		if note.UserID == ownerID {
			copied := *note
			owned = append(owned, &copied)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})
	return owned, nil
}

func (f *fakeNoteRepo) Update(_ context.Context, id, ownerID primitive.ObjectID, title, content string) (*entity.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	note, ok := f.notes[id]
	if !ok || note.UserID != ownerID {
		return nil, nil
	}
	note.Title = title
	note.Content = content
	note.UpdatedAt = time.Now()
	copied := *note
	return &copied, nil
}

func (f *fakeNoteRepo) Delete(_ context.Context, id, ownerID primitive.ObjectID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	note, ok := f.notes[id]
	if !ok || note.UserID != ownerID {
		return false, nil
	}
	delete(f.notes, id)
	return true, nil
}

func (f *fakeNoteRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.notes)
}

func newNoteFixture() (NoteService, *fakeNoteRepo) {
	notes := newFakeNoteRepo()
	repo := &repository.Repository{Note: notes}
	return NewNoteService(repo, zap.NewNop()), notes
}

func TestNoteService_CreateAndList(t *testing.T) {
	service, _ := newNoteFixture()
	ctx := context.Background()
	owner := primitive.NewObjectID().Hex()

	first, err := service.CreateNote(ctx, owner, &request.CreateNoteRequest{
		Title:   "Groceries",
		Content: "Milk, eggs",
	})
	require.NoError(t, err)
	assert.Equal(t, "Groceries", first.Title)
	assert.NotEmpty(t, first.ID)

	time.Sleep(5 * time.Millisecond)

	second, err := service.CreateNote(ctx, owner, &request.CreateNoteRequest{
		Title:   "Ideas",
		Content: "Note app",
	})
	require.NoError(t, err)

	listed, err := service.ListNotes(ctx, owner)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	// Newest first
	assert.Equal(t, second.ID, listed[0].ID)
	assert.Equal(t, first.ID, listed[1].ID)
}

func TestNoteService_ListScopedToOwner(t *testing.T) {
	service, _ := newNoteFixture()
	ctx := context.Background()
	alice := primitive.NewObjectID().Hex()
	bob := primitive.NewObjectID().Hex()

	_, err := service.CreateNote(ctx, alice, &request.CreateNoteRequest{Title: "Alice's", Content: "a"})
	require.NoError(t, err)
	_, err = service.CreateNote(ctx, bob, &request.CreateNoteRequest{Title: "Bob's", Content: "b"})
	require.NoError(t, err)

	listed, err := service.ListNotes(ctx, alice)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Alice's", listed[0].Title)
}

func TestNoteService_CreateValidation(t *testing.T) {
	service, notes := newNoteFixture()
	ctx := context.Background()
	owner := primitive.NewObjectID().Hex()

	_, err := service.CreateNote(ctx, owner, &request.CreateNoteRequest{
		Title:   strings.Repeat("x", 101),
		Content: "body",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	_, err = service.CreateNote(ctx, owner, &request.CreateNoteRequest{
		Title:   "fine",
		Content: strings.Repeat("x", 5001),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	assert.Zero(t, notes.count(), "nothing should be persisted on validation failure")
}

func TestNoteService_UpdateCrossOwner(t *testing.T) {
	service, _ := newNoteFixture()
	ctx := context.Background()
	alice := primitive.NewObjectID().Hex()
	bob := primitive.NewObjectID().Hex()

	created, err := service.CreateNote(ctx, alice, &request.CreateNoteRequest{Title: "Private", Content: "a"})
	require.NoError(t, err)

	_, err = service.UpdateNote(ctx, created.ID, bob, &request.UpdateNoteRequest{
		Title:   "Hijacked",
		Content: "b",
	})
	require.EqualError(t, err, "note not found")

	// The owner still sees the original
	listed, err := service.ListNotes(ctx, alice)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Private", listed[0].Title)
}

func TestNoteService_UpdateOwn(t *testing.T) {
	service, _ := newNoteFixture()
	ctx := context.Background()
	owner := primitive.NewObjectID().Hex()

	created, err := service.CreateNote(ctx, owner, &request.CreateNoteRequest{Title: "Draft", Content: "v1"})
	require.NoError(t, err)

	updated, err := service.UpdateNote(ctx, created.ID, owner, &request.UpdateNoteRequest{
		Title:   "Final",
		Content: "v2",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Final", updated.Title)
	assert.Equal(t, "v2", updated.Content)
}

func TestNoteService_UpdateMalformedID(t *testing.T) {
	service, _ := newNoteFixture()
	owner := primitive.NewObjectID().Hex()

	_, err := service.UpdateNote(context.Background(), "not-a-hex-id", owner, &request.UpdateNoteRequest{
		Title:   "t",
		Content: "c",
	})
	require.EqualError(t, err, "note not found")
}

func TestNoteService_DeleteCrossOwner(t *testing.T) {
	service, notes := newNoteFixture()
	ctx := context.Background()
	alice := primitive.NewObjectID().Hex()
	bob := primitive.NewObjectID().Hex()

	created, err := service.CreateNote(ctx, alice, &request.CreateNoteRequest{Title: "Keep", Content: "a"})
	require.NoError(t, err)

	err = service.DeleteNote(ctx, created.ID, bob)
	require.EqualError(t, err, "note not found")
	assert.Equal(t, 1, notes.count())

	err = service.DeleteNote(ctx, created.ID, alice)
	require.NoError(t, err)
	assert.Zero(t, notes.count())

	// Deleting again reads as absent
	err = service.DeleteNote(ctx, created.ID, alice)
	require.EqualError(t, err, "note not found")
}
