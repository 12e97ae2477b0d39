package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ak1058/Ai-Recipe-Maker/config"
	"github.com/ak1058/Ai-Recipe-Maker/controllers"
	"github.com/ak1058/Ai-Recipe-Maker/llm"
	"github.com/ak1058/Ai-Recipe-Maker/metrics"
	"github.com/ak1058/Ai-Recipe-Maker/middleware"
	"github.com/ak1058/Ai-Recipe-Maker/repository"
	"github.com/ak1058/Ai-Recipe-Maker/services"
	"github.com/ak1058/Ai-Recipe-Maker/youtube"
)

// Setup wires repositories, services and controllers onto the router.
func Setup(r *gin.Engine, cfg *config.Config, db *gorm.DB) {
	userRepo := repository.NewUserRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)

	authService := services.NewAuthService(userRepo, cfg)
	inventoryService := services.NewInventoryService(inventoryRepo)
	recipeService := services.NewRecipeService(
		llm.NewClient(cfg.GeminiAPIKey),
		youtube.NewClient(cfg.YouTubeAPIKey),
		recipeRepo,
	)

	userController := controllers.NewUserController(authService)
	inventoryController := controllers.NewInventoryController(inventoryService)
	recipeController := controllers.NewRecipeController(recipeService)

	r.Use(middleware.RequestID())
	r.Use(metrics.Middleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://127.0.0.1:5173"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to Recipe App API"})
	})
	r.GET("/metrics", metrics.Handler())

	users := r.Group("/users")
	users.POST("/signup", userController.Signup)
	users.POST("/login", userController.Login)

	protected := r.Group("/", middleware.RequireAuth(cfg, userRepo))
	protected.GET("/inventory/", inventoryController.List)

	recipes := protected.Group("/recipes")
	recipes.POST("/generate", recipeController.Generate)
	recipes.POST("/youtube-search", recipeController.SearchVideos)
	recipes.POST("/save", recipeController.Save)
	recipes.GET("/saved", recipeController.ListSaved)
}
