package models

import "time"

type AuthToken struct {
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	Key       string    `gorm:"column:key;size:64;primary_key" json:"key"`
	UserID    int64     `gorm:"column:user_id;not null;unique_index" json:"user_id"`
}

// TableName sets the insert table name for this struct type
func (a *AuthToken) TableName() string {
	return "auth_tokens"
}
