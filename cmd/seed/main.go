package main

import (
	"context"
	"errors"
	"log"

	"recipebox/internal/auth"
	"recipebox/internal/config"
	"recipebox/internal/db"
	apperrors "recipebox/internal/errors"
	"recipebox/internal/model"
	"recipebox/internal/repository"
	"recipebox/internal/service"
)

const (
	demoEmail    = "demo@example.com"
	demoPassword = "demo-password"
)

var tagNames = []string{"vegetarian", "quick", "dessert", "spicy", "comfort food"}

// seedRecipe is a recipe template whose TagNames are translated to seeded tag
// ids before insertion, so GET /recipes exercises tag resolution.
type seedRecipe struct {
	Name            string
	CookingDuration int
	Difficulty      string
	Cuisine         string
	TagNames        []string
	Ingredients     []string
}

var seedRecipes = []seedRecipe{
	{
		Name:            "French Onion Soup",
		CookingDuration: 75,
		Difficulty:      "medium",
		Cuisine:         "French",
		TagNames:        []string{"vegetarian", "comfort food"},
		Ingredients:     []string{"onion", "butter", "beef stock", "baguette", "gruyere"},
	},
	{
		Name:            "Pad Thai",
		CookingDuration: 30,
		Difficulty:      "easy",
		Cuisine:         "Thai",
		TagNames:        []string{"quick", "spicy"},
		Ingredients:     []string{"rice noodles", "egg", "peanuts", "tamarind", "tofu"},
	},
	{
		Name:            "Tiramisu",
		CookingDuration: 40,
		Difficulty:      "medium",
		Cuisine:         "Italian",
		TagNames:        []string{"dessert"},
		Ingredients:     []string{"mascarpone", "espresso", "ladyfingers", "cocoa", "egg"},
	},
	{
		Name:            "Shakshuka",
		CookingDuration: 25,
		Difficulty:      "easy",
		Cuisine:         "Middle Eastern",
		TagNames:        []string{"vegetarian", "quick", "spicy"},
		Ingredients:     []string{"egg", "tomato", "bell pepper", "onion", "cumin"},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	database, err := db.NewMongo(context.Background(), cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	ctx := context.Background()

	recipeRepo := repository.NewRecipeRepository(database)
	tagRepo := repository.NewTagRepository(database)
	userRepo := repository.NewUserRepository(database)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}
	log.Println("Unique email index ensured")

	tagIDs, created, err := seedTags(ctx, tagRepo)
	if err != nil {
		log.Fatalf("Failed to seed tags: %v", err)
	}
	log.Printf("Tags: %d created, %d total", created, len(tagIDs))

	seeded, err := seedRecipeDocs(ctx, recipeRepo, tagIDs)
	if err != nil {
		log.Fatalf("Failed to seed recipes: %v", err)
	}
	log.Printf("Recipes: %d created", seeded)

	authService := service.NewAuthService(userRepo, auth.NewJWTService(cfg.TokenSecret))
	if _, err := authService.Register(ctx, demoEmail, demoPassword); err != nil {
		if errors.Is(err, apperrors.ErrUserAlreadyExists) {
			log.Printf("Demo user %s already registered", demoEmail)
		} else {
			log.Fatalf("Failed to register demo user: %v", err)
		}
	} else {
		log.Printf("Demo user %s registered", demoEmail)
	}

	log.Println("Seed completed successfully!")
}

// seedTags inserts any tag names not already present and returns the full
// name to id mapping.
func seedTags(ctx context.Context, repo repository.TagRepository) (map[string]string, int, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	tagIDs := make(map[string]string, len(tagNames))
	for _, tag := range existing {
		tagIDs[tag.Name] = tag.ID.Hex()
	}

	created := 0
	for _, name := range tagNames {
		if _, ok := tagIDs[name]; ok {
			continue
		}
		id, err := repo.Create(ctx, &model.Tag{Name: name})
		if err != nil {
			return nil, created, err
		}
		tagIDs[name] = id.Hex()
		created++
	}
	return tagIDs, created, nil
}

// seedRecipeDocs inserts the demo recipes unless the collection already has
// documents, translating tag names to seeded tag ids.
func seedRecipeDocs(ctx context.Context, repo repository.RecipeRepository, tagIDs map[string]string) (int, error) {
	existing, err := repo.List(ctx, repository.RecipeFilter{})
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		log.Printf("Recipes collection already has %d documents, skipping", len(existing))
		return 0, nil
	}

	seeded := 0
	for _, sr := range seedRecipes {
		tags := make([]string, 0, len(sr.TagNames))
		for _, name := range sr.TagNames {
			if id, ok := tagIDs[name]; ok {
				tags = append(tags, id)
			}
		}

		recipe := &model.Recipe{
			Name:            sr.Name,
			CookingDuration: sr.CookingDuration,
			Difficulty:      sr.Difficulty,
			Cuisine:         sr.Cuisine,
			Tags:            tags,
			Ingredients:     sr.Ingredients,
		}
		if _, err := repo.Create(ctx, recipe); err != nil {
			return seeded, err
		}
		seeded++
	}
	return seeded, nil
}
