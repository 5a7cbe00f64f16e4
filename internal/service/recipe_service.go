package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	apperrors "recipebox/internal/errors"
	"recipebox/internal/model"
	"recipebox/internal/repository"
)

// RecipeService exposes domain operations over the recipe collection.
type RecipeService interface {
	ListRecipes(ctx context.Context, filter repository.RecipeFilter) ([]model.Recipe, error)
	CreateRecipe(ctx context.Context, recipe *model.Recipe) (primitive.ObjectID, error)
	GetRecipe(ctx context.Context, idHex string) (*model.Recipe, error)
	UpdateRecipe(ctx context.Context, idHex string, recipe *model.Recipe) error
	DeleteRecipe(ctx context.Context, idHex string) error
}

type recipeService struct {
	recipes repository.RecipeRepository
	tags    repository.TagRepository
}

// NewRecipeService builds a RecipeService.
func NewRecipeService(recipes repository.RecipeRepository, tags repository.TagRepository) RecipeService {
	return &recipeService{recipes: recipes, tags: tags}
}

// ListRecipes returns recipes matching the filter with tag ids resolved to
// names. The tag map is rebuilt on every call.
func (s *recipeService) ListRecipes(ctx context.Context, filter repository.RecipeFilter) ([]model.Recipe, error) {
	recipes, err := s.recipes.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	tags, err := s.tags.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tags: %w", err)
	}
	ResolveTags(recipes, tags)

	return recipes, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, recipe *model.Recipe) (primitive.ObjectID, error) {
	return s.recipes.Create(ctx, recipe)
}

func (s *recipeService) GetRecipe(ctx context.Context, idHex string) (*model.Recipe, error) {
	id, err := parseRecipeID(idHex)
	if err != nil {
		return nil, err
	}
	recipe, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, idHex string, recipe *model.Recipe) error {
	id, err := parseRecipeID(idHex)
	if err != nil {
		return err
	}
	matched, err := s.recipes.Update(ctx, id, recipe)
	if err != nil {
		return err
	}
	if matched == 0 {
		return apperrors.ErrRecipeNotFound
	}
	return nil
}

// DeleteRecipe removes the recipe if it exists. Deletion is idempotent:
// an absent id is still a success.
func (s *recipeService) DeleteRecipe(ctx context.Context, idHex string) error {
	id, err := parseRecipeID(idHex)
	if err != nil {
		return err
	}
	return s.recipes.Delete(ctx, id)
}

func parseRecipeID(idHex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return primitive.NilObjectID, apperrors.ErrInvalidRecipeID
	}
	return id, nil
}
