package activity

import (
	"fmt"
	"time"

	"kitchenbook-go-server/database"
	"kitchenbook-go-server/models"
	"kitchenbook-go-server/services/trackLog"
)

// Record writes one audit row. Best effort: a failed write is logged
// and never fails the mutation it describes.
func Record(actorID int64, action, entity string, entityID int64) {
	activityLogEntity := models.ActivityLog{
		ActorID:   actorID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		CreatedAt: time.Now(),
	}
	if err := database.Mysql.Create(&activityLogEntity).Error; err != nil {
		trackLog.Error(fmt.Sprintf("activity log fail: %s", err.Error()), false)
	}
}
