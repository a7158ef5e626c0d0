package models

type RecipeIngredient struct {
	ID           int64 `gorm:"column:id;primary_key" json:"id"`
	IngredientID int64 `gorm:"column:ingredient_id;not null;unique_index:uix_recipe_ingredient" json:"ingredient_id"`
	Quantity     int64 `gorm:"column:quantity;not null;default:1" json:"quantity"`
	RecipeID     int64 `gorm:"column:recipe_id;not null;unique_index:uix_recipe_ingredient" json:"recipe_id"`
}

// TableName sets the insert table name for this struct type
func (r *RecipeIngredient) TableName() string {
	return "recipes_ingredients"
}
