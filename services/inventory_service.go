package services

import (
	"context"

	"github.com/ak1058/Ai-Recipe-Maker/apperr"
	"github.com/ak1058/Ai-Recipe-Maker/repository"
	"github.com/ak1058/Ai-Recipe-Maker/schemas"
)

// InventoryService projects the static catalog into its grouped API shape.
type InventoryService struct {
	items *repository.InventoryRepository
}

func NewInventoryService(items *repository.InventoryRepository) *InventoryService {
	return &InventoryService{items: items}
}

// ListGrouped returns all catalog items grouped by category. An empty
// catalog is reported as NotFound; the web client depends on that status
// to show its "nothing seeded" state.
func (s *InventoryService) ListGrouped(ctx context.Context) (map[string][]schemas.InventoryItemOut, error) {
	items, err := s.items.ListAll(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Database error occurred while fetching inventory", err)
	}

	if len(items) == 0 {
		return nil, apperr.New(apperr.NotFound, "No inventory items found")
	}

	grouped := make(map[string][]schemas.InventoryItemOut)
	for _, item := range items {
		grouped[item.Category] = append(grouped[item.Category], schemas.InventoryItemOut{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			ImageURL:    item.ImageURL,
			Unit:        item.Unit,
		})
	}
	return grouped, nil
}
