package structs

import "kitchenbook-go-server/models"

// RecipeLine is one resolved ingredient line of a recipe.
type RecipeLine struct {
	IngredientID int64  `json:"ingredient_id"`
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	Quantity     int64  `json:"quantity"`
}

type RecipeDetail struct {
	models.Recipe
	Ingredients []RecipeLine     `json:"ingredients"`
	Comments    []models.Comment `json:"comments"`
}

type HomeStats struct {
	Recipes     int `json:"recipes"`
	Ingredients int `json:"ingredients"`
}

type ProfileResponse struct {
	Username  string          `json:"username"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Email     string          `json:"email"`
	AuthToken string          `json:"auth_token"`
	Recipes   []models.Recipe `json:"recipes"`
}
