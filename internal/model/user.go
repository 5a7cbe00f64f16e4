package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents a registered account. Password holds the bcrypt hash and
// is never serialized.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
}
