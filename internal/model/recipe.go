package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Recipe represents a recipe document. Tags holds tag ObjectID hex strings
// as stored; the service layer substitutes tag names before responses.
type Recipe struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name            string             `bson:"name" json:"name"`
	CookingDuration int                `bson:"cooking_duration" json:"cooking_duration"`
	Difficulty      string             `bson:"difficulty" json:"difficulty"`
	Cuisine         string             `bson:"cuisine" json:"cuisine"`
	Tags            []string           `bson:"tags" json:"tags"`
	Ingredients     []string           `bson:"ingredients" json:"ingredients"`
}
