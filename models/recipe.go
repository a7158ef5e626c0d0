package models

import "time"

type Recipe struct {
	CategoryID  *int64    `gorm:"column:category_id" json:"category"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	Description string    `gorm:"column:description;type:text;not null" json:"description"`
	ID          int64     `gorm:"column:id;primary_key" json:"id"`
	Name        string    `gorm:"column:name;size:64;not null" json:"name"`
	UserID      int64     `gorm:"column:user_id;not null" json:"user_id"`
}

// TableName sets the insert table name for this struct type
func (r *Recipe) TableName() string {
	return "recipes"
}
