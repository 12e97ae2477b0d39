package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ak1058/Ai-Recipe-Maker/middleware"
	"github.com/ak1058/Ai-Recipe-Maker/schemas"
	"github.com/ak1058/Ai-Recipe-Maker/services"
)

type RecipeController struct {
	recipes *services.RecipeService
}

func NewRecipeController(recipes *services.RecipeService) *RecipeController {
	return &RecipeController{recipes: recipes}
}

// Generate handles POST /recipes/generate.
func (ctl *RecipeController) Generate(c *gin.Context) {
	var req schemas.IngredientsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipes, err := ctl.recipes.Generate(c.Request.Context(), req.Ingredients)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipes)
}

// SearchVideos handles POST /recipes/youtube-search.
func (ctl *RecipeController) SearchVideos(c *gin.Context) {
	var req schemas.VideoSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	videos, err := ctl.recipes.SearchVideos(c.Request.Context(), req.RecipeName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, schemas.YouTubeResponse{Videos: videos})
}

// Save handles POST /recipes/save.
func (ctl *RecipeController) Save(c *gin.Context) {
	user := middleware.Identity(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req schemas.SavedRecipeCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := ctl.recipes.Save(c.Request.Context(), user, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, saved)
}

// ListSaved handles GET /recipes/saved.
func (ctl *RecipeController) ListSaved(c *gin.Context) {
	user := middleware.Identity(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	recipes, err := ctl.recipes.ListSaved(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipes)
}
