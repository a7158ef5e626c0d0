package models

import "time"

type Comment struct {
	ID          int64     `gorm:"column:id;primary_key" json:"id"`
	PublishedOn time.Time `gorm:"column:published_on;not null" json:"published_on"`
	RecipeID    int64     `gorm:"column:recipe_id;not null" json:"recipe_id"`
	Text        string    `gorm:"column:text;type:text;not null" json:"text"`
	UserID      int64     `gorm:"column:user_id;not null" json:"user_id"`
}

// TableName sets the insert table name for this struct type
func (c *Comment) TableName() string {
	return "comments"
}
