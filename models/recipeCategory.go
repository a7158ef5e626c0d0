package models

type RecipeCategory struct {
	ID   int64  `gorm:"column:id;primary_key" json:"id"`
	Name string `gorm:"column:name;size:64;not null" json:"name"`
}

// TableName sets the insert table name for this struct type
func (r *RecipeCategory) TableName() string {
	return "recipe_categories"
}
