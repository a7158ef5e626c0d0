package comment

import (
	"fmt"
	"strings"
	"time"

	"kitchenbook-go-server/database"
	"kitchenbook-go-server/enums"
	"kitchenbook-go-server/models"
	"kitchenbook-go-server/services/activity"
	"kitchenbook-go-server/services/events"
	"kitchenbook-go-server/structs"

	"github.com/jinzhu/gorm"
)

const pageSize = 10

type CommentService struct{}

// Create attaches a comment to an existing recipe, authored by the
// requester, timestamped server-side.
func (s *CommentService) Create(payload structs.CommentPayload, userID int64) (*models.Comment, error) {
	if strings.TrimSpace(payload.Text) == "" {
		return nil, structs.NewAppError(enums.ErrorValidationFailed, "text is required")
	}

	var recipeEntity models.Recipe
	if err := database.Mysql.First(&recipeEntity, payload.RecipeID).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, structs.NewAppError(enums.ErrorNotFound, fmt.Sprintf("recipe %d does not exist", payload.RecipeID))
		}
		return nil, err
	}

	commentEntity := models.Comment{
		Text:        payload.Text,
		RecipeID:    recipeEntity.ID,
		UserID:      userID,
		PublishedOn: time.Now(),
	}
	if err := database.Mysql.Create(&commentEntity).Error; err != nil {
		return nil, err
	}

	activity.Record(userID, enums.ActionCreate, enums.EntityComment, commentEntity.ID)
	events.Publish(enums.ActionCreate, enums.EntityComment, commentEntity.ID, userID)
	return &commentEntity, nil
}

func (s *CommentService) List(page int) ([]models.Comment, error) {
	var commentEntities []models.Comment
	if err := database.Mysql.Order("id asc").Offset(offset(page)).Limit(pageSize).Find(&commentEntities).Error; err != nil {
		return nil, err
	}
	return commentEntities, nil
}

// ListByRecipe returns all comments on a recipe. The recipe reference
// may be dangling after a recipe delete, so it is not checked here.
func (s *CommentService) ListByRecipe(recipeID int64) ([]models.Comment, error) {
	var commentEntities []models.Comment
	if err := database.Mysql.Where(models.Comment{RecipeID: recipeID}).Order("id asc").Find(&commentEntities).Error; err != nil {
		return nil, err
	}
	return commentEntities, nil
}

func (s *CommentService) Get(id int64) (*models.Comment, error) {
	var commentEntity models.Comment
	if err := database.Mysql.First(&commentEntity, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, structs.NewAppError(enums.ErrorNotFound, fmt.Sprintf("comment %d does not exist", id))
		}
		return nil, err
	}
	return &commentEntity, nil
}

// Update edits the text. Any authenticated user may edit any comment,
// ownership is not checked.
func (s *CommentService) Update(id int64, payload structs.CommentPayload, actorID int64) (*models.Comment, error) {
	commentEntity, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(payload.Text) == "" {
		return nil, structs.NewAppError(enums.ErrorValidationFailed, "text is required")
	}
	commentEntity.Text = payload.Text
	if err := database.Mysql.Save(commentEntity).Error; err != nil {
		return nil, err
	}
	activity.Record(actorID, enums.ActionUpdate, enums.EntityComment, id)
	return commentEntity, nil
}

func (s *CommentService) Delete(id int64, actorID int64) error {
	commentEntity, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := database.Mysql.Delete(commentEntity).Error; err != nil {
		return err
	}
	activity.Record(actorID, enums.ActionDelete, enums.EntityComment, id)
	events.Publish(enums.ActionDelete, enums.EntityComment, id, actorID)
	return nil
}

func offset(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}
