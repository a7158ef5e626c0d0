package ingredient

import (
	"fmt"
	"strings"

	"kitchenbook-go-server/database"
	"kitchenbook-go-server/enums"
	"kitchenbook-go-server/models"
	"kitchenbook-go-server/services/activity"
	"kitchenbook-go-server/services/events"
	"kitchenbook-go-server/structs"

	"github.com/jinzhu/gorm"
)

const pageSize = 10

type IngredientService struct{}

func (s *IngredientService) List(page int) ([]models.Ingredient, error) {
	var ingredientEntities []models.Ingredient
	if err := database.Mysql.Order("id asc").Offset(offset(page)).Limit(pageSize).Find(&ingredientEntities).Error; err != nil {
		return nil, err
	}
	return ingredientEntities, nil
}

// ListByCategory requires the category to exist: an unknown category id
// is a hard NotFound, not an empty list.
func (s *IngredientService) ListByCategory(categoryID int64) ([]models.Ingredient, error) {
	var categoryEntity models.IngredientCategory
	if err := database.Mysql.First(&categoryEntity, categoryID).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, structs.NewAppError(enums.ErrorNotFound, fmt.Sprintf("ingredient category %d does not exist", categoryID))
		}
		return nil, err
	}
	var ingredientEntities []models.Ingredient
	if err := database.Mysql.Where(models.Ingredient{CategoryID: categoryID}).Order("id asc").Find(&ingredientEntities).Error; err != nil {
		return nil, err
	}
	return ingredientEntities, nil
}

func (s *IngredientService) Get(id int64) (*models.Ingredient, error) {
	var ingredientEntity models.Ingredient
	if err := database.Mysql.First(&ingredientEntity, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, structs.NewAppError(enums.ErrorNotFound, fmt.Sprintf("ingredient %d does not exist", id))
		}
		return nil, err
	}
	return &ingredientEntity, nil
}

func (s *IngredientService) Create(payload structs.IngredientPayload, actorID int64) (*models.Ingredient, error) {
	if err := validate(payload); err != nil {
		return nil, err
	}

	var categoryEntity models.IngredientCategory
	if err := database.Mysql.First(&categoryEntity, payload.Category).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, structs.NewAppError(enums.ErrorNotFound, fmt.Sprintf("ingredient category %d does not exist", payload.Category))
		}
		return nil, err
	}

	ingredientEntity := models.Ingredient{
		Name:       payload.Name,
		CategoryID: categoryEntity.ID,
		Price:      payload.Price,
	}
	if err := database.Mysql.Create(&ingredientEntity).Error; err != nil {
		// ingredient names are unique
		return nil, structs.NewAppError(enums.ErrorIntegrityConflict, fmt.Sprintf("ingredient %s already exists", payload.Name))
	}

	activity.Record(actorID, enums.ActionCreate, enums.EntityIngredient, ingredientEntity.ID)
	events.Publish(enums.ActionCreate, enums.EntityIngredient, ingredientEntity.ID, actorID)
	return &ingredientEntity, nil
}

func (s *IngredientService) Update(id int64, payload structs.IngredientPayload, actorID int64) (*models.Ingredient, error) {
	ingredientEntity, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := validate(payload); err != nil {
		return nil, err
	}

	var categoryEntity models.IngredientCategory
	if err := database.Mysql.First(&categoryEntity, payload.Category).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, structs.NewAppError(enums.ErrorNotFound, fmt.Sprintf("ingredient category %d does not exist", payload.Category))
		}
		return nil, err
	}

	ingredientEntity.Name = payload.Name
	ingredientEntity.CategoryID = categoryEntity.ID
	ingredientEntity.Price = payload.Price
	if err := database.Mysql.Save(ingredientEntity).Error; err != nil {
		return nil, structs.NewAppError(enums.ErrorIntegrityConflict, fmt.Sprintf("ingredient %s already exists", payload.Name))
	}

	activity.Record(actorID, enums.ActionUpdate, enums.EntityIngredient, id)
	return ingredientEntity, nil
}

// Delete removes the ingredient and cascades to its recipe lines.
func (s *IngredientService) Delete(id int64, actorID int64) error {
	ingredientEntity, err := s.Get(id)
	if err != nil {
		return err
	}

	tx := database.Mysql.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := tx.Where(models.RecipeIngredient{IngredientID: id}).Delete(models.RecipeIngredient{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(ingredientEntity).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit().Error; err != nil {
		return err
	}

	activity.Record(actorID, enums.ActionDelete, enums.EntityIngredient, id)
	events.Publish(enums.ActionDelete, enums.EntityIngredient, id, actorID)
	return nil
}

func validate(payload structs.IngredientPayload) error {
	if strings.TrimSpace(payload.Name) == "" {
		return structs.NewAppError(enums.ErrorValidationFailed, "name is required")
	}
	if payload.Price < 1 {
		return structs.NewAppError(enums.ErrorValidationFailed, "price must be at least 1")
	}
	return nil
}

func offset(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}
