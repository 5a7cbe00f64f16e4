package main

import (
	"context"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "recipebox/docs" // swagger docs

	"recipebox/internal/auth"
	"recipebox/internal/config"
	"recipebox/internal/db"
	"recipebox/internal/handler"
	"recipebox/internal/repository"
	"recipebox/internal/router"
	"recipebox/internal/service"
)

// @title Recipe Box API
// @version 1.0
// @description Recipe catalog API with tag resolution and JWT authentication.
// @host localhost:3070
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	database, err := db.NewMongo(context.Background(), cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	log.Printf("connected to mongodb, database %q", cfg.MongoDatabase)

	// Initialize repositories
	recipeRepo := repository.NewRecipeRepository(database)
	tagRepo := repository.NewTagRepository(database)
	userRepo := repository.NewUserRepository(database)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.TokenSecret)

	// Initialize services
	recipeService := service.NewRecipeService(recipeRepo, tagRepo)
	authService := service.NewAuthService(userRepo, jwtService)

	// Initialize handlers
	recipeHandler := handler.NewRecipeHandler(recipeService)
	authHandler := handler.NewAuthHandler(authService)

	// Register routes
	router.Register(e, cfg, recipeHandler, authHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
