package schemas

import "github.com/ak1058/Ai-Recipe-Maker/models"

type SignupRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Gender   *string `json:"gender"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserOut is the public projection of a user record. The password hash is
// never part of any response.
type UserOut struct {
	ID     uint    `json:"id"`
	Email  string  `json:"email"`
	Name   string  `json:"name"`
	Gender *string `json:"gender"`
}

func NewUserOut(u *models.User) UserOut {
	return UserOut{
		ID:     u.ID,
		Email:  u.Email,
		Name:   u.Name,
		Gender: u.Gender,
	}
}

type LoginResponse struct {
	AccessToken string  `json:"access_token"`
	User        UserOut `json:"user"`
}

// InventoryItemOut is a catalog entry as listed under its category.
type InventoryItemOut struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	Unit        *string `json:"unit"`
}

type IngredientsRequest struct {
	Ingredients []string `json:"ingredients" binding:"required,min=1"`
}

type VideoSearchRequest struct {
	RecipeName string `json:"recipe_name" binding:"required"`
}
