package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Tag maps an opaque tag identifier to its display name.
type Tag struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name string             `bson:"name" json:"name"`
}
