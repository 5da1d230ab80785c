package repository

import (
	"context"
	"fmt"
	"time"

	"notes-backend/internal/data/entity"
	"notes-backend/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// NoteRepository scopes every single-note operation to (note id, owner id).
// A lookup without the owner filter would leak cross-user access and must
// never be added here.
type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*entity.Note, error)
	Update(ctx context.Context, id, ownerID primitive.ObjectID, title, content string) (*entity.Note, error)
	Delete(ctx context.Context, id, ownerID primitive.ObjectID) (bool, error)
}

type noteRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewNoteRepository(db *database.Mongo, log *zap.Logger) NoteRepository {
	return &noteRepository{
		coll: db.Notes(),
		log:  log.With(zap.String("repository", "note")),
	}
}

func (r *noteRepository) Create(ctx context.Context, note *entity.Note) error {
	_, err := r.coll.InsertOne(ctx, note)
	if err != nil {
		r.log.Error("Failed to create note",
			zap.Error(err),
			zap.String("user_id", note.UserID.Hex()),
		)
		return fmt.Errorf("create note for user %s: %w", note.UserID.Hex(), err)
	}

	return nil
}

func (r *noteRepository) FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*entity.Note, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.M{"user_id": ownerID}, opts)
	if err != nil {
		r.log.Error("Failed to find notes by owner",
			zap.Error(err),
			zap.String("user_id", ownerID.Hex()),
		)
		return nil, fmt.Errorf("find notes for user %s: %w", ownerID.Hex(), err)
	}
	defer cursor.Close(ctx)

	var notes []*entity.Note
	for cursor.Next(ctx) {
		var note entity.Note
		if err := cursor.Decode(&note); err != nil {
			r.log.Error("Failed to decode note", zap.Error(err))
			return nil, fmt.Errorf("decode note: %w", err)
		}
		notes = append(notes, &note)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes for user %s: %w", ownerID.Hex(), err)
	}

	return notes, nil
}

// Update replaces title and content of the owner's note and returns the
// updated document, or nil when no note matches the (id, owner) pair.
func (r *noteRepository) Update(ctx context.Context, id, ownerID primitive.ObjectID, title, content string) (*entity.Note, error) {
	filter := bson.M{"_id": id, "user_id": ownerID}
	update := bson.M{"$set": bson.M{
		"title":      title,
		"content":    content,
		"updated_at": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var note entity.Note
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&note)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update note",
			zap.Error(err),
			zap.String("note_id", id.Hex()),
			zap.String("user_id", ownerID.Hex()),
		)
		return nil, fmt.Errorf("update note %s for user %s: %w", id.Hex(), ownerID.Hex(), err)
	}

	return &note, nil
}

// Delete removes the owner's note and reports whether anything was deleted.
func (r *noteRepository) Delete(ctx context.Context, id, ownerID primitive.ObjectID) (bool, error) {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "user_id": ownerID})
	if err != nil {
		r.log.Error("Failed to delete note",
			zap.Error(err),
			zap.String("note_id", id.Hex()),
			zap.String("user_id", ownerID.Hex()),
		)
		return false, fmt.Errorf("delete note %s for user %s: %w", id.Hex(), ownerID.Hex(), err)
	}

	return result.DeletedCount > 0, nil
}
