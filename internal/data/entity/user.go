package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an identity record. Created on first successful signup verification,
// never mutated afterwards. Email is stored lowercase and unique.
type User struct {
	ID          primitive.ObjectID `bson:"_id"`
	FullName    string             `bson:"full_name"`
	Email       string             `bson:"email"`
	DateOfBirth time.Time          `bson:"date_of_birth"`
	CreatedAt   time.Time          `bson:"created_at"`
}
