package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ak1058/Ai-Recipe-Maker/models"
)

// RecipeRepository persists saved recipes and their provider videos.
type RecipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// Save inserts a recipe and its videos in one transaction. The recipe
// insert yields the generated id the video rows are bound to; any failure
// rolls the whole operation back, so a recipe is never observable without
// its videos.
func (r *RecipeRepository) Save(ctx context.Context, recipe *models.SavedRecipe, videos []models.RecipeVideo) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		if len(videos) == 0 {
			return nil
		}
		for i := range videos {
			videos[i].RecipeID = recipe.ID
		}
		return tx.Create(&videos).Error
	})
}

// ListByUser returns all recipes owned by a user, videos included.
func (r *RecipeRepository) ListByUser(ctx context.Context, userID uint) ([]models.SavedRecipe, error) {
	var recipes []models.SavedRecipe
	err := r.db.WithContext(ctx).
		Preload("Videos").
		Where("user_id = ?", userID).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}
