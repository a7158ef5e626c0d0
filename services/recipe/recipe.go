package recipe

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
	gormbulk "github.com/t-tiger/gorm-bulk-insert/v2"
)

const pageSize = 10

type RecipeService struct{}

// Create inserts the recipe row and all its ingredient lines as one
// transaction. Any unresolved reference or invalid line rolls the whole
// thing back; a recipe is never committed without its lines.
func (s *RecipeService) Create(payload structs.RecipePayload, userID int64) (*structs.RecipeDetail, error) {
	if strings.TrimSpace(payload.Name) == "" || strings.TrimSpace(payload.Description) == "" {
		return nil, structs.NewAppError(enums.ErrorValidationFailed, "name and description are required")
	}

	tx := database.Mysql.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var categoryEntity models.RecipeCategory
	if err := tx.First(&categoryEntity, payload.Category).Error; err != nil {
		tx.Rollback()
		if gorm.IsRecordNotFoundError(err) {
			return nil, structs.NewAppError(enums.ErrorNotFound, fmt.Sprintf("recipe category %d does not exist", payload.Category))
		}
		return nil, err
	}

	recipeEntity := models.Recipe{
		Name:        payload.Name,
		Description: payload.Description,
		CategoryID:  &categoryEntity.ID,
		UserID:      userID,
		CreatedAt:   time.Now(),
	}
	if err := tx.Create(&recipeEntity).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	// lines are validated only after the category resolves
	seen := make(map[int64]bool)
	insertRecords := make([]interface{}, 0, len(payload.Ingredients))
	for _, line := range payload.Ingredients {
		if seen[line.IngredientID] {
			tx.Rollback()
			return nil, structs.NewAppError(enums.ErrorIntegrityConflict, fmt.Sprintf("ingredient %d listed more than once", line.IngredientID))
		}
		seen[line.IngredientID] = true
		quantity := int64(1)
		if line.Quantity != nil {
			quantity = *line.Quantity
		}
		if quantity < 1 {
			tx.Rollback()
			return nil, structs.NewAppError(enums.ErrorValidationFailed, "quantity must be at least 1")
		}
		var ingredientEntity models.Ingredient
		if err := tx.First(&ingredientEntity, line.IngredientID).Error; err != nil {
			tx.Rollback()
			if gorm.IsRecordNotFoundError(err) {
				return nil, structs.NewAppError(enums.ErrorNotFound, fmt.Sprintf("ingredient %d does not exist", line.IngredientID))
			}
			return nil, err
		}
		insertRecords = append(insertRecords, models.RecipeIngredient{
			RecipeID:     recipeEntity.ID,
			IngredientID: ingredientEntity.ID,
			Quantity:     quantity,
		})
	}
	if err := gormbulk.BulkInsert(tx, insertRecords, 3000); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	activity.Record(userID, enums.ActionCreate, enums.EntityRecipe, recipeEntity.ID)
	events.Publish(enums.ActionCreate, enums.EntityRecipe, recipeEntity.ID, userID)
	return s.Get(recipeEntity.ID)
}

func (s *RecipeService) List(page int) ([]models.Recipe, error) {
	var recipeEntities []models.Recipe
	if err := database.Mysql.Order("id asc").Offset(offset(page)).Limit(pageSize).Find(&recipeEntities).Error; err != nil {
		return nil, err
	}
	return recipeEntities, nil
}

// ListByCategory requires the category to exist: an unknown category id
// is a hard NotFound, not an empty list.
func (s *RecipeService) ListByCategory(categoryID int64) ([]models.Recipe, error) {
	var categoryEntity models.RecipeCategory
	if err := database.Mysql.First(&categoryEntity, categoryID).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, structs.NewAppError(enums.ErrorNotFound, fmt.Sprintf("recipe category %d does not exist", categoryID))
		}
		return nil, err
	}
	var recipeEntities []models.Recipe
	if err := database.Mysql.Where("category_id = ?", categoryID).Order("id asc").Find(&recipeEntities).Error; err != nil {
		return nil, err
	}
	return recipeEntities, nil
}

// MyRecipes filters by owner, ordered by primary key for stable paging.
func (s *RecipeService) MyRecipes(userID int64) ([]models.Recipe, error) {
	var recipeEntities []models.Recipe
	if err := database.Mysql.Raw(
		"SELECT * FROM recipes WHERE user_id = ? ORDER BY id ASC", userID,
	).Scan(&recipeEntities).Error; err != nil {
		return nil, err
	}
	return recipeEntities, nil
}

func (s *RecipeService) Get(id int64) (*structs.RecipeDetail, error) {
	var recipeEntity models.Recipe
	if err := database.Mysql.First(&recipeEntity, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, structs.NewAppError(enums.ErrorNotFound, fmt.Sprintf("recipe %d does not exist", id))
		}
		return nil, err
	}

	var lines []structs.RecipeLine
	if err := database.Mysql.Table("recipes_ingredients").
		Select("recipes_ingredients.ingredient_id, ingredients.name, ingredients.price, recipes_ingredients.quantity").
		Joins("join ingredients on ingredients.id = recipes_ingredients.ingredient_id").
		Where("recipes_ingredients.recipe_id = ?", id).
		Order("recipes_ingredients.id asc").
		Scan(&lines).Error; err != nil {
		return nil, err
	}

	var commentEntities []models.Comment
	if err := database.Mysql.Where(models.Comment{RecipeID: id}).Order("id asc").Find(&commentEntities).Error; err != nil {
		return nil, err
	}

	return &structs.RecipeDetail{Recipe: recipeEntity, Ingredients: lines, Comments: commentEntities}, nil
}

// Update touches name, description and category only; ingredient lines
// are not editable through update.
func (s *RecipeService) Update(id int64, payload structs.RecipePayload, actorID int64, partial bool) (*structs.RecipeDetail, error) {
	var recipeEntity models.Recipe
	if err := database.Mysql.First(&recipeEntity, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, structs.NewAppError(enums.ErrorNotFound, fmt.Sprintf("recipe %d does not exist", id))
		}
		return nil, err
	}

	if !partial && (strings.TrimSpace(payload.Name) == "" || strings.TrimSpace(payload.Description) == "") {
		return nil, structs.NewAppError(enums.ErrorValidationFailed, "name and description are required")
	}

	if payload.Name != "" {
		recipeEntity.Name = payload.Name
	}
	if payload.Description != "" {
		recipeEntity.Description = payload.Description
	}
	if payload.Category != 0 {
		var categoryEntity models.RecipeCategory
		if err := database.Mysql.First(&categoryEntity, payload.Category).Error; err != nil {
			if gorm.IsRecordNotFoundError(err) {
				return nil, structs.NewAppError(enums.ErrorNotFound, fmt.Sprintf("recipe category %d does not exist", payload.Category))
			}
			return nil, err
		}
		recipeEntity.CategoryID = &categoryEntity.ID
	}

	if err := database.Mysql.Save(&recipeEntity).Error; err != nil {
		return nil, err
	}

	activity.Record(actorID, enums.ActionUpdate, enums.EntityRecipe, id)
	return s.Get(id)
}

// Delete removes the recipe and its ingredient lines. Comments stay,
// with a dangling recipe reference, to preserve history.
func (s *RecipeService) Delete(id int64, actorID int64) error {
	var recipeEntity models.Recipe
	if err := database.Mysql.First(&recipeEntity, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return structs.NewAppError(enums.ErrorNotFound, fmt.Sprintf("recipe %d does not exist", id))
		}
		return err
	}

	tx := database.Mysql.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := tx.Where(models.RecipeIngredient{RecipeID: id}).Delete(models.RecipeIngredient{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&recipeEntity).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit().Error; err != nil {
		return err
	}

	activity.Record(actorID, enums.ActionDelete, enums.EntityRecipe, id)
	events.Publish(enums.ActionDelete, enums.EntityRecipe, id, actorID)
	return nil
}

func offset(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}
