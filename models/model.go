package models

import "time"

// User is an application account. The email is unique at the storage layer.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	HashedPassword string    `gorm:"not null" json:"-"`
	Name           string    `json:"name"`
	Gender         *string   `json:"gender"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

// InventoryItem is a static catalog entry, populated offline by the seeder
// and read-only at runtime.
type InventoryItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"uniqueIndex;not null" json:"name"`
	Category    string  `gorm:"not null" json:"category"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	Unit        *string `json:"unit"`
}

func (InventoryItem) TableName() string { return "inventory" }

// SavedRecipe is a recipe persisted by a user. Ingredient lists,
// instructions and nutrition are JSON-serialized text columns, not
// normalized child tables.
type SavedRecipe struct {
	ID                   uint   `gorm:"primaryKey"`
	UserID               uint   `gorm:"not null;index"`
	Name                 string `gorm:"not null"`
	IngredientsAvailable string
	IngredientsNeeded    string
	Instructions         string
	PrepTime             string
	CookTime             string
	TotalTime            string
	Servings             int
	Nutrition            string
	CreatedAt            time.Time
	Videos               []RecipeVideo `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

func (SavedRecipe) TableName() string { return "saved_recipes" }

// RecipeVideo is a provider search result stored alongside its parent
// recipe. Its lifetime is bound to the recipe row.
type RecipeVideo struct {
	ID           uint   `gorm:"primaryKey"`
	RecipeID     uint   `gorm:"not null;index"`
	VideoID      string `gorm:"not null"`
	Title        string
	Description  string
	ThumbnailURL string
	ChannelTitle string
	PublishedAt  string
}

func (RecipeVideo) TableName() string { return "recipe_youtube_videos" }
