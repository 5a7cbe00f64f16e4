package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"recipebox/internal/model"
)

const recipesCollection = "recipes"

// RecipeFilter narrows List results. Zero values apply no constraint.
type RecipeFilter struct {
	// Name matches as a case-insensitive substring.
	Name string
	// Ingredient matches recipes whose ingredients array contains the exact value.
	Ingredient string
}

// RecipeRepository defines persistence operations.
type RecipeRepository interface {
	List(ctx context.Context, filter RecipeFilter) ([]model.Recipe, error)
	Create(ctx context.Context, recipe *model.Recipe) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Recipe, error)
	Update(ctx context.Context, id primitive.ObjectID, recipe *model.Recipe) (matched int64, err error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type recipeRepository struct {
	coll *mongo.Collection
}

// NewRecipeRepository builds a MongoDB-backed repository.
func NewRecipeRepository(db *mongo.Database) RecipeRepository {
	return &recipeRepository{coll: db.Collection(recipesCollection)}
}

// List returns recipes matching the filter in the store's natural iteration
// order. No explicit sort is applied.
func (r *recipeRepository) List(ctx context.Context, filter RecipeFilter) ([]model.Recipe, error) {
	criteria := bson.M{}
	if filter.Name != "" {
		criteria["name"] = bson.M{"$regex": filter.Name, "$options": "i"}
	}
	if filter.Ingredient != "" {
		criteria["ingredients"] = bson.M{"$in": bson.A{filter.Ingredient}}
	}

	cursor, err := r.coll.Find(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("find recipes: %w", err)
	}

	recipes := []model.Recipe{}
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, fmt.Errorf("decode recipes: %w", err)
	}
	return recipes, nil
}

func (r *recipeRepository) Create(ctx context.Context, recipe *model.Recipe) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, recipe)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert recipe: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (r *recipeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Update replaces the six recipe fields on the matched document and reports
// how many documents matched. Matched rather than modified count: replaying
// an update with identical data is a match, not a miss.
func (r *recipeRepository) Update(ctx context.Context, id primitive.ObjectID, recipe *model.Recipe) (int64, error) {
	update := bson.M{"$set": bson.M{
		"name":             recipe.Name,
		"cooking_duration": recipe.CookingDuration,
		"difficulty":       recipe.Difficulty,
		"cuisine":          recipe.Cuisine,
		"tags":             recipe.Tags,
		"ingredients":      recipe.Ingredients,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return 0, fmt.Errorf("update recipe: %w", err)
	}
	return res.MatchedCount, nil
}

// Delete removes the document with the given id. Deleting an absent document
// is not an error.
func (r *recipeRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}
