package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ak1058/Ai-Recipe-Maker/models"
)

// InventoryRepository reads the static catalog; writes only happen through
// the offline seeder.
type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// ListAll returns every catalog item.
func (r *InventoryRepository) ListAll(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CreateIfMissing inserts an item unless one with the same name already
// exists. Returns whether a row was created, keeping the seeder idempotent.
func (r *InventoryRepository) CreateIfMissing(ctx context.Context, name, category string) (bool, error) {
	item := models.InventoryItem{Name: name, Category: category}
	result := r.db.WithContext(ctx).
		Where("name = ?", name).
		Attrs(models.InventoryItem{Category: category}).
		FirstOrCreate(&item)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
