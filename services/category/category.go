package category

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

// RecipeCategoryService covers the recipe-category resource. Deleting a
// recipe category leaves its recipes with a dangling category reference.
type RecipeCategoryService struct{}

func (s *RecipeCategoryService) List(page int) ([]models.RecipeCategory, error) {
	var categoryEntities []models.RecipeCategory
	if err := database.Mysql.Order("id asc").Offset(offset(page)).Limit(pageSize).Find(&categoryEntities).Error; err != nil {
		return nil, err
	}
	return categoryEntities, nil
}

func (s *RecipeCategoryService) Get(id int64) (*models.RecipeCategory, error) {
	var categoryEntity models.RecipeCategory
	if err := database.Mysql.First(&categoryEntity, id).Error; err != nil {
		return nil, wrapNotFound(err, "recipe category", id)
	}
	return &categoryEntity, nil
}

func (s *RecipeCategoryService) Create(payload structs.CategoryPayload, actorID int64) (*models.RecipeCategory, error) {
	if strings.TrimSpace(payload.Name) == "" {
		return nil, structs.NewAppError(enums.ErrorValidationFailed, "name is required")
	}
	categoryEntity := models.RecipeCategory{Name: payload.Name}
	if err := database.Mysql.Create(&categoryEntity).Error; err != nil {
		return nil, err
	}
	activity.Record(actorID, enums.ActionCreate, enums.EntityRecipeCategory, categoryEntity.ID)
	events.Publish(enums.ActionCreate, enums.EntityRecipeCategory, categoryEntity.ID, actorID)
	return &categoryEntity, nil
}

func (s *RecipeCategoryService) Update(id int64, payload structs.CategoryPayload, actorID int64) (*models.RecipeCategory, error) {
	categoryEntity, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(payload.Name) == "" {
		return nil, structs.NewAppError(enums.ErrorValidationFailed, "name is required")
	}
	categoryEntity.Name = payload.Name
	if err := database.Mysql.Save(categoryEntity).Error; err != nil {
		return nil, err
	}
	activity.Record(actorID, enums.ActionUpdate, enums.EntityRecipeCategory, id)
	return categoryEntity, nil
}

func (s *RecipeCategoryService) Delete(id int64, actorID int64) error {
	categoryEntity, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := database.Mysql.Delete(categoryEntity).Error; err != nil {
		return err
	}
	activity.Record(actorID, enums.ActionDelete, enums.EntityRecipeCategory, id)
	events.Publish(enums.ActionDelete, enums.EntityRecipeCategory, id, actorID)
	return nil
}

// IngredientCategoryService covers the ingredient-category resource.
// Deleting an ingredient category cascades to its ingredients and their
// recipe lines.
type IngredientCategoryService struct{}

func (s *IngredientCategoryService) List(page int) ([]models.IngredientCategory, error) {
	var categoryEntities []models.IngredientCategory
	if err := database.Mysql.Order("id asc").Offset(offset(page)).Limit(pageSize).Find(&categoryEntities).Error; err != nil {
		return nil, err
	}
	return categoryEntities, nil
}

func (s *IngredientCategoryService) Get(id int64) (*models.IngredientCategory, error) {
	var categoryEntity models.IngredientCategory
	if err := database.Mysql.First(&categoryEntity, id).Error; err != nil {
		return nil, wrapNotFound(err, "ingredient category", id)
	}
	return &categoryEntity, nil
}

func (s *IngredientCategoryService) Create(payload structs.CategoryPayload, actorID int64) (*models.IngredientCategory, error) {
	if strings.TrimSpace(payload.Name) == "" {
		return nil, structs.NewAppError(enums.ErrorValidationFailed, "name is required")
	}
	categoryEntity := models.IngredientCategory{Name: payload.Name}
	if err := database.Mysql.Create(&categoryEntity).Error; err != nil {
		return nil, err
	}
	activity.Record(actorID, enums.ActionCreate, enums.EntityIngredientCategory, categoryEntity.ID)
	events.Publish(enums.ActionCreate, enums.EntityIngredientCategory, categoryEntity.ID, actorID)
	return &categoryEntity, nil
}

func (s *IngredientCategoryService) Update(id int64, payload structs.CategoryPayload, actorID int64) (*models.IngredientCategory, error) {
	categoryEntity, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(payload.Name) == "" {
		return nil, structs.NewAppError(enums.ErrorValidationFailed, "name is required")
	}
	categoryEntity.Name = payload.Name
	if err := database.Mysql.Save(categoryEntity).Error; err != nil {
		return nil, err
	}
	activity.Record(actorID, enums.ActionUpdate, enums.EntityIngredientCategory, id)
	return categoryEntity, nil
}

func (s *IngredientCategoryService) Delete(id int64, actorID int64) error {
	categoryEntity, err := s.Get(id)
	if err != nil {
		return err
	}

	tx := database.Mysql.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var ingredientEntities []models.Ingredient
	if err := tx.Where(models.Ingredient{CategoryID: id}).Find(&ingredientEntities).Error; err != nil {
		tx.Rollback()
		return err
	}
	for _, ingredientEntity := range ingredientEntities {
		if err := tx.Where(models.RecipeIngredient{IngredientID: ingredientEntity.ID}).Delete(models.RecipeIngredient{}).Error; err != nil {
			tx.Rollback()
			return err
		}
	}
	if err := tx.Where(models.Ingredient{CategoryID: id}).Delete(models.Ingredient{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(categoryEntity).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit().Error; err != nil {
		return err
	}

	activity.Record(actorID, enums.ActionDelete, enums.EntityIngredientCategory, id)
	events.Publish(enums.ActionDelete, enums.EntityIngredientCategory, id, actorID)
	return nil
}

func offset(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}

func wrapNotFound(err error, what string, id int64) error {
	if gorm.IsRecordNotFoundError(err) {
		return structs.NewAppError(enums.ErrorNotFound, fmt.Sprintf("%s %d does not exist", what, id))
	}
	return err
}
