package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "recipebox/internal/errors"
	"recipebox/internal/model"
	"recipebox/internal/repository"
	"recipebox/internal/service"
)

// RecipeHandler handles recipe endpoints.
type RecipeHandler struct {
	recipeService service.RecipeService
}

// NewRecipeHandler creates a new recipe handler.
func NewRecipeHandler(recipeService service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// CreateRecipeRequest represents a recipe creation request. Tags and
// Ingredients are pointers so that a present-but-empty array is accepted
// while a missing key fails validation.
type CreateRecipeRequest struct {
	Name            string    `json:"name" validate:"required"`
	CookingDuration int       `json:"cooking_duration" validate:"required"`
	Difficulty      string    `json:"difficulty" validate:"required"`
	Cuisine         string    `json:"cuisine" validate:"required"`
	Tags            *[]string `json:"tags" validate:"required"`
	Ingredients     *[]string `json:"ingredients" validate:"required"`
}

// UpdateRecipeRequest represents a recipe update request. Only name and a
// non-empty ingredients list are mandatory; the remaining fields are written
// as submitted.
type UpdateRecipeRequest struct {
	Name            string   `json:"name" validate:"required"`
	CookingDuration int      `json:"cooking_duration"`
	Difficulty      string   `json:"difficulty"`
	Cuisine         string   `json:"cuisine"`
	Tags            []string `json:"tags"`
	Ingredients     []string `json:"ingredients" validate:"required,min=1"`
}

// ListRecipesResponse wraps the recipe list.
type ListRecipesResponse struct {
	Recipes []model.Recipe `json:"recipes"`
}

// CreateRecipeResponse carries the identifier assigned by the store.
type CreateRecipeResponse struct {
	InsertedID string `json:"inserted_id"`
}

// MessageResponse is a plain acknowledgment body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ListRecipes godoc
// @Summary List recipes
// @Description Lists recipes, optionally filtered by name substring and ingredient membership. Tag ids are resolved to names.
// @Tags recipes
// @Produce json
// @Param name query string false "Case-insensitive name substring"
// @Param ingredients query string false "Exact ingredient"
// @Success 200 {object} ListRecipesResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /recipes [get]
func (h *RecipeHandler) ListRecipes(c echo.Context) error {
	filter := repository.RecipeFilter{
		Name:       c.QueryParam("name"),
		Ingredient: c.QueryParam("ingredients"),
	}

	recipes, err := h.recipeService.ListRecipes(c.Request().Context(), filter)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, ListRecipesResponse{Recipes: recipes})
}

// CreateRecipe godoc
// @Summary Create a recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Param request body CreateRecipeRequest true "Recipe payload"
// @Success 201 {object} CreateRecipeResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /recipes [post]
func (h *RecipeHandler) CreateRecipe(c echo.Context) error {
	var req CreateRecipeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	recipe := &model.Recipe{
		Name:            req.Name,
		CookingDuration: req.CookingDuration,
		Difficulty:      req.Difficulty,
		Cuisine:         req.Cuisine,
		Tags:            *req.Tags,
		Ingredients:     *req.Ingredients,
	}

	id, err := h.recipeService.CreateRecipe(c.Request().Context(), recipe)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, CreateRecipeResponse{InsertedID: id.Hex()})
}

// GetRecipe godoc
// @Summary Get a recipe by id
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} model.Recipe
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /recipes/{id} [get]
func (h *RecipeHandler) GetRecipe(c echo.Context) error {
	recipe, err := h.recipeService.GetRecipe(c.Request().Context(), c.Param("id"))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, recipe)
}

// UpdateRecipe godoc
// @Summary Update a recipe
// @Description Replaces all recipe fields on the matched document.
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Param request body UpdateRecipeRequest true "Recipe payload"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /recipes/{id} [put]
func (h *RecipeHandler) UpdateRecipe(c echo.Context) error {
	var req UpdateRecipeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	recipe := &model.Recipe{
		Name:            req.Name,
		CookingDuration: req.CookingDuration,
		Difficulty:      req.Difficulty,
		Cuisine:         req.Cuisine,
		Tags:            req.Tags,
		Ingredients:     req.Ingredients,
	}

	if err := h.recipeService.UpdateRecipe(c.Request().Context(), c.Param("id"), recipe); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "recipe updated successfully"})
}

// DeleteRecipe godoc
// @Summary Delete a recipe
// @Description Removes the recipe. Deleting an absent id still succeeds.
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /recipes/{id} [delete]
func (h *RecipeHandler) DeleteRecipe(c echo.Context) error {
	if err := h.recipeService.DeleteRecipe(c.Request().Context(), c.Param("id")); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "recipe deleted"})
}
