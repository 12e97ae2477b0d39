package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ak1058/Ai-Recipe-Maker/apperr"
	"github.com/ak1058/Ai-Recipe-Maker/llm"
	"github.com/ak1058/Ai-Recipe-Maker/metrics"
	"github.com/ak1058/Ai-Recipe-Maker/models"
	"github.com/ak1058/Ai-Recipe-Maker/repository"
	"github.com/ak1058/Ai-Recipe-Maker/schemas"
	"github.com/ak1058/Ai-Recipe-Maker/youtube"
)

// TextGenerator is the surface of the llm client the service needs.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string, cfg *llm.GenerationConfig) (string, error)
}

// VideoSearcher is the surface of the youtube client the service needs.
type VideoSearcher interface {
	SearchRecipeVideos(ctx context.Context, recipeName string) ([]schemas.YouTubeVideo, error)
}

// RecipeService bridges the generative provider's loosely structured
// output into validated recipes, and persists the ones users keep.
// Provider calls never happen inside a storage transaction.
type RecipeService struct {
	generator TextGenerator
	videos    VideoSearcher
	recipes   *repository.RecipeRepository
}

func NewRecipeService(generator TextGenerator, videos VideoSearcher, recipes *repository.RecipeRepository) *RecipeService {
	return &RecipeService{generator: generator, videos: videos, recipes: recipes}
}

const recipePromptTemplate = `
I have these ingredients in my kitchen: %s.
Please suggest 2 different recipes I can make using primarily these ingredients.
You may include minimal additional common pantry items if absolutely necessary.

For each recipe, provide:
- Recipe name
- Ingredients grouped as:
  * available: ingredients I already have
  * needed: minimal additional ingredients required
- Step-by-step instructions with step numbers
- Preparation time
- Cooking time
- Total time
- Number of servings
- Nutrition information:
    * protein (g)
    * carbs (g)
    * fat (g)
    * sugars (g)

Format the response as a perfect JSON object with this exact structure:
{
    "recipes": [
        {
            "name": "Recipe name",
            "ingredients": {
                "available": ["ingredient1", "ingredient2"],
                "needed": ["salt", "pepper"]
            },
            "instructions": [
                {"step": "1", "description": "Do something"},
                {"step": "2", "description": "Do something else"}
            ],
            "prep_time": "10 mins",
            "cook_time": "20 mins",
            "total_time": "30 mins",
            "servings": 2,
            "nutrition": {
                "protein": "10g",
                "carbs": "30g",
                "fat": "15g",
                "sugars": "5g"
            }
        }
    ]
}

Important:
1. Return ONLY the JSON object
2. Don't include any additional text or markdown formatting
3. Ensure all fields are included for each recipe
4. Ingredients must be grouped under "available" and "needed"
`

// codeFenceRE matches fence-only lines so a ` ```json ... ``` ` wrapper
// around the model output can be stripped before parsing.
var codeFenceRE = regexp.MustCompile("(?m)^```(?:json)?[ \t]*$")

func stripCodeFences(s string) string {
	return strings.TrimSpace(codeFenceRE.ReplaceAllString(s, ""))
}

// Generate asks the model for recipes built around the given ingredients
// and normalizes the response into the strict schema. Malformed model
// output is a data-integrity fault: nothing unparseable ever reaches
// storage or the client.
func (s *RecipeService) Generate(ctx context.Context, ingredients []string) (*schemas.RecipeResponse, error) {
	if len(ingredients) == 0 {
		return nil, apperr.New(apperr.Internal, "No ingredients provided")
	}

	prompt := fmt.Sprintf(recipePromptTemplate, strings.Join(ingredients, ", "))

	raw, err := s.generator.GenerateContent(ctx, prompt, &llm.GenerationConfig{
		Temperature:     0.7,
		MaxOutputTokens: 2000,
	})
	metrics.ObserveProviderCall("gemini", err)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error generating recipes", err)
	}

	cleaned := stripCodeFences(raw)

	var out schemas.RecipeResponse
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to parse Gemini response", err)
	}
	if len(out.Recipes) == 0 {
		return nil, apperr.New(apperr.Internal, "Gemini response contained no recipes")
	}

	return &out, nil
}

// SearchVideos looks up cooking videos for a recipe name. Zero results is
// a valid outcome, not an error.
func (s *RecipeService) SearchVideos(ctx context.Context, recipeName string) ([]schemas.YouTubeVideo, error) {
	videos, err := s.videos.SearchRecipeVideos(ctx, recipeName)
	metrics.ObserveProviderCall("youtube", err)
	if err != nil {
		if errors.Is(err, youtube.ErrNotConfigured) {
			return nil, apperr.Wrap(apperr.Internal, "YouTube API key not configured", err)
		}
		return nil, apperr.Wrap(apperr.ServiceUnavailable, "YouTube API request failed", err)
	}
	if videos == nil {
		videos = []schemas.YouTubeVideo{}
	}
	return videos, nil
}

// Save persists a recipe and its videos for the acting user. The nested
// lists are serialized to text columns; the whole write is atomic.
func (s *RecipeService) Save(ctx context.Context, user *models.User, req schemas.SavedRecipeCreate) (*schemas.SavedRecipeOut, error) {
	available, err := json.Marshal(req.Ingredients.Available)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error saving recipe", err)
	}
	needed, err := json.Marshal(req.Ingredients.Needed)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error saving recipe", err)
	}
	instructions, err := json.Marshal(req.Instructions)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error saving recipe", err)
	}
	nutrition, err := json.Marshal(req.Nutrition)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error saving recipe", err)
	}

	recipe := models.SavedRecipe{
		UserID:               user.ID,
		Name:                 req.Name,
		IngredientsAvailable: string(available),
		IngredientsNeeded:    string(needed),
		Instructions:         string(instructions),
		PrepTime:             req.PrepTime,
		CookTime:             req.CookTime,
		TotalTime:            req.TotalTime,
		Servings:             req.Servings,
		Nutrition:            string(nutrition),
	}

	videos := make([]models.RecipeVideo, 0, len(req.YouTubeVideos))
	for _, v := range req.YouTubeVideos {
		videos = append(videos, models.RecipeVideo{
			VideoID:      v.VideoID,
			Title:        v.Title,
			Description:  v.Description,
			ThumbnailURL: v.ThumbnailURL,
			ChannelTitle: v.ChannelTitle,
			PublishedAt:  v.PublishedAt,
		})
	}

	if err := s.recipes.Save(ctx, &recipe, videos); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error saving recipe", err)
	}

	out := schemas.SavedRecipeOut{
		ID:            recipe.ID,
		UserID:        recipe.UserID,
		Name:          req.Name,
		Ingredients:   req.Ingredients,
		Instructions:  req.Instructions,
		PrepTime:      req.PrepTime,
		CookTime:      req.CookTime,
		TotalTime:     req.TotalTime,
		Servings:      req.Servings,
		Nutrition:     req.Nutrition,
		YouTubeVideos: req.YouTubeVideos,
	}
	if out.YouTubeVideos == nil {
		out.YouTubeVideos = []schemas.YouTubeVideo{}
	}
	return &out, nil
}

// ListSaved returns every recipe owned by the user, text columns
// deserialized back to their structured form.
func (s *RecipeService) ListSaved(ctx context.Context, user *models.User) ([]schemas.SavedRecipeOut, error) {
	recipes, err := s.recipes.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error retrieving saved recipes", err)
	}

	out := make([]schemas.SavedRecipeOut, 0, len(recipes))
	for _, recipe := range recipes {
		item, err := savedRecipeToOut(recipe)
		if err != nil {
			return nil, apperr.Wrap(apperr.Internal, "Error retrieving saved recipes", err)
		}
		out = append(out, item)
	}
	return out, nil
}

func savedRecipeToOut(recipe models.SavedRecipe) (schemas.SavedRecipeOut, error) {
	out := schemas.SavedRecipeOut{
		ID:        recipe.ID,
		UserID:    recipe.UserID,
		Name:      recipe.Name,
		PrepTime:  recipe.PrepTime,
		CookTime:  recipe.CookTime,
		TotalTime: recipe.TotalTime,
		Servings:  recipe.Servings,
	}

	if err := json.Unmarshal([]byte(recipe.IngredientsAvailable), &out.Ingredients.Available); err != nil {
		return out, fmt.Errorf("corrupt ingredients_available for recipe %d: %w", recipe.ID, err)
	}
	if err := json.Unmarshal([]byte(recipe.IngredientsNeeded), &out.Ingredients.Needed); err != nil {
		return out, fmt.Errorf("corrupt ingredients_needed for recipe %d: %w", recipe.ID, err)
	}
	if err := json.Unmarshal([]byte(recipe.Instructions), &out.Instructions); err != nil {
		return out, fmt.Errorf("corrupt instructions for recipe %d: %w", recipe.ID, err)
	}
	if err := json.Unmarshal([]byte(recipe.Nutrition), &out.Nutrition); err != nil {
		return out, fmt.Errorf("corrupt nutrition for recipe %d: %w", recipe.ID, err)
	}

	out.YouTubeVideos = make([]schemas.YouTubeVideo, 0, len(recipe.Videos))
	for _, v := range recipe.Videos {
		out.YouTubeVideos = append(out.YouTubeVideos, schemas.YouTubeVideo{
			VideoID:      v.VideoID,
			Title:        v.Title,
			Description:  v.Description,
			ThumbnailURL: v.ThumbnailURL,
			ChannelTitle: v.ChannelTitle,
			PublishedAt:  v.PublishedAt,
		})
	}
	return out, nil
}
