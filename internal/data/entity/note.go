package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// NoteTitleMaxLen is the title length ceiling.
	NoteTitleMaxLen = 100
	// NoteContentMaxLen is the content length ceiling.
	NoteContentMaxLen = 5000
)

// Note is an owned content record. Every note has exactly one owner and all
// reads/writes are scoped to it.
type Note struct {
	ID        primitive.ObjectID `bson:"_id"`
	UserID    primitive.ObjectID `bson:"user_id"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}
