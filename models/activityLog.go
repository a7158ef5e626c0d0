package models

import "time"

type ActivityLog struct {
	Action    string    `gorm:"column:action;size:32;not null" json:"action"`
	ActorID   int64     `gorm:"column:actor_id" json:"actor_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	Entity    string    `gorm:"column:entity;size:32;not null" json:"entity"`
	EntityID  int64     `gorm:"column:entity_id" json:"entity_id"`
	ID        int64     `gorm:"column:id;primary_key" json:"id"`
}

// TableName sets the insert table name for this struct type
func (a *ActivityLog) TableName() string {
	return "activity_logs"
}
