package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	apperrors "recipebox/internal/errors"
	"recipebox/internal/model"
	"recipebox/internal/repository"
)

// MockRecipeRepository is a mock implementation of RecipeRepository.
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) List(ctx context.Context, filter repository.RecipeFilter) ([]model.Recipe, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) Create(ctx context.Context, recipe *model.Recipe) (primitive.ObjectID, error) {
	args := m.Called(ctx, recipe)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockRecipeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) Update(ctx context.Context, id primitive.ObjectID, recipe *model.Recipe) (int64, error) {
	args := m.Called(ctx, id, recipe)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecipeRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTagRepository is a mock implementation of TagRepository.
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) List(ctx context.Context) ([]model.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tag), args.Error(1)
}

func (m *MockTagRepository) Create(ctx context.Context, tag *model.Tag) (primitive.ObjectID, error) {
	args := m.Called(ctx, tag)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func TestRecipeService_ListRecipes(t *testing.T) {
	vegTag := model.Tag{ID: primitive.NewObjectID(), Name: "vegetarian"}
	unknownID := primitive.NewObjectID().Hex()

	filter := repository.RecipeFilter{Name: "soup", Ingredient: "onion"}

	mockRecipes := new(MockRecipeRepository)
	mockRecipes.On("List", mock.Anything, filter).Return([]model.Recipe{
		{Name: "French Onion Soup", Tags: []string{vegTag.ID.Hex(), unknownID}},
	}, nil)

	mockTags := new(MockTagRepository)
	mockTags.On("List", mock.Anything).Return([]model.Tag{vegTag}, nil)

	svc := NewRecipeService(mockRecipes, mockTags)
	recipes, err := svc.ListRecipes(context.Background(), filter)

	assert.NoError(t, err)
	assert.Len(t, recipes, 1)
	// Known tag id resolved to its name, unknown id left untouched.
	assert.Equal(t, []string{"vegetarian", unknownID}, recipes[0].Tags)

	mockRecipes.AssertExpectations(t)
	mockTags.AssertExpectations(t)
}

func TestRecipeService_GetRecipe(t *testing.T) {
	recipeID := primitive.NewObjectID()

	tests := []struct {
		name          string
		idHex         string
		setupMock     func(*MockRecipeRepository)
		expectedError error
	}{
		{
			name:  "found",
			idHex: recipeID.Hex(),
			setupMock: func(m *MockRecipeRepository) {
				m.On("FindByID", mock.Anything, recipeID).Return(&model.Recipe{ID: recipeID, Name: "Soup"}, nil)
			},
		},
		{
			name:  "not found",
			idHex: recipeID.Hex(),
			setupMock: func(m *MockRecipeRepository) {
				m.On("FindByID", mock.Anything, recipeID).Return(nil, mongo.ErrNoDocuments)
			},
			expectedError: apperrors.ErrRecipeNotFound,
		},
		{
			name:          "invalid id",
			idHex:         "not-an-object-id",
			setupMock:     func(m *MockRecipeRepository) {},
			expectedError: apperrors.ErrInvalidRecipeID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRecipes := new(MockRecipeRepository)
			tt.setupMock(mockRecipes)

			svc := NewRecipeService(mockRecipes, new(MockTagRepository))
			recipe, err := svc.GetRecipe(context.Background(), tt.idHex)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, recipe)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Soup", recipe.Name)
			}

			mockRecipes.AssertExpectations(t)
		})
	}
}

func TestRecipeService_UpdateRecipe(t *testing.T) {
	recipeID := primitive.NewObjectID()
	recipe := &model.Recipe{Name: "Soup", Ingredients: []string{"water", "salt"}}

	tests := []struct {
		name          string
		idHex         string
		matched       int64
		expectedError error
	}{
		{name: "matched", idHex: recipeID.Hex(), matched: 1},
		{name: "no match is not found", idHex: recipeID.Hex(), matched: 0, expectedError: apperrors.ErrRecipeNotFound},
		{name: "invalid id", idHex: "bogus", expectedError: apperrors.ErrInvalidRecipeID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRecipes := new(MockRecipeRepository)
			if tt.expectedError != apperrors.ErrInvalidRecipeID {
				mockRecipes.On("Update", mock.Anything, recipeID, recipe).Return(tt.matched, nil)
			}

			svc := NewRecipeService(mockRecipes, new(MockTagRepository))
			err := svc.UpdateRecipe(context.Background(), tt.idHex, recipe)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}

			mockRecipes.AssertExpectations(t)
		})
	}
}

func TestRecipeService_DeleteRecipe(t *testing.T) {
	recipeID := primitive.NewObjectID()

	mockRecipes := new(MockRecipeRepository)
	mockRecipes.On("Delete", mock.Anything, recipeID).Return(nil)

	svc := NewRecipeService(mockRecipes, new(MockTagRepository))

	assert.NoError(t, svc.DeleteRecipe(context.Background(), recipeID.Hex()))
	assert.Equal(t, apperrors.ErrInvalidRecipeID, svc.DeleteRecipe(context.Background(), "bogus"))

	mockRecipes.AssertExpectations(t)
}

func TestRecipeService_CreateRecipe(t *testing.T) {
	recipeID := primitive.NewObjectID()
	recipe := &model.Recipe{
		Name:            "Soup",
		CookingDuration: 30,
		Difficulty:      "easy",
		Cuisine:         "French",
		Tags:            []string{},
		Ingredients:     []string{"water", "salt"},
	}

	mockRecipes := new(MockRecipeRepository)
	mockRecipes.On("Create", mock.Anything, recipe).Return(recipeID, nil)

	svc := NewRecipeService(mockRecipes, new(MockTagRepository))
	id, err := svc.CreateRecipe(context.Background(), recipe)

	assert.NoError(t, err)
	assert.Equal(t, recipeID, id)

	mockRecipes.AssertExpectations(t)
}
