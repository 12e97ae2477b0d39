// Command seed loads the static inventory catalog from a JSON or YAML file
// mapping categories to item names. It is idempotent: items already present
// by name are left untouched, so it can be re-run after editing the file.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"github.com/ak1058/Ai-Recipe-Maker/config"
	"github.com/ak1058/Ai-Recipe-Maker/database"
	"github.com/ak1058/Ai-Recipe-Maker/logger"
	"github.com/ak1058/Ai-Recipe-Maker/repository"
)

func main() {
	logger.Init()
	defer logger.Close()

	path := flag.String("file", "seed/inventory.json", "path to the seed file (.json, .yaml or .yml)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, using system env vars")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	db, err := database.Init(cfg)
	if err != nil {
		logger.Fatal("Database initialization failed", zap.Error(err))
	}
	defer database.Close(db)

	catalog, err := loadCatalog(*path)
	if err != nil {
		logger.Fatal("Failed to load seed file", zap.String("file", *path), zap.Error(err))
	}

	repo := repository.NewInventoryRepository(db)
	ctx := context.Background()

	created, skipped := 0, 0
	for category, names := range catalog {
		for _, name := range names {
			ok, err := repo.CreateIfMissing(ctx, name, category)
			if err != nil {
				logger.Fatal("Failed to seed item",
					zap.String("name", name), zap.String("category", category), zap.Error(err))
			}
			if ok {
				created++
			} else {
				skipped++
			}
		}
	}

	logger.Info("Inventory seeded successfully",
		zap.Int("created", created), zap.Int("skipped", skipped))
}

func loadCatalog(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	catalog := make(map[string][]string)
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &catalog)
	default:
		err = json.Unmarshal(data, &catalog)
	}
	if err != nil {
		return nil, err
	}
	return catalog, nil
}
