package ingredients

import (
	"net/http"
	"strconv"

	"kitchenbook-go-server/enums"
	"kitchenbook-go-server/middleware"
	"kitchenbook-go-server/services/ingredient"
	"kitchenbook-go-server/structs"
	"kitchenbook-go-server/utils"

	"github.com/gin-gonic/gin"
)

// List returns one page of ingredients, or the ingredients of one
// category when ?category_id= is present. An unknown category is a 404.
func List(c *gin.Context) {
	var ingredientService ingredient.IngredientService

	if raw := c.Query("category_id"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": structs.NewAppError(enums.ErrorValidationFailed, "category_id must be an integer"),
			})
			return
		}
		ingredientEntities, err := ingredientService.ListByCategory(categoryID)
		if err != nil {
			utils.AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, ingredientEntities)
		return
	}

	ingredientEntities, err := ingredientService.List(utils.QueryPage(c))
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredientEntities)
}

func Get(c *gin.Context) {
	id, ok := utils.ParamID(c)
	if !ok {
		return
	}
	var ingredientService ingredient.IngredientService
	ingredientEntity, err := ingredientService.Get(id)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredientEntity)
}

func Create(c *gin.Context) {
	var payload structs.IngredientPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": structs.NewAppError(enums.ErrorValidationFailed, err.Error()),
		})
		return
	}
	var ingredientService ingredient.IngredientService
	requester := middleware.RequesterFrom(c)
	ingredientEntity, err := ingredientService.Create(payload, requester.ID)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ingredientEntity)
}

func Update(c *gin.Context) {
	id, ok := utils.ParamID(c)
	if !ok {
		return
	}
	var payload structs.IngredientPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": structs.NewAppError(enums.ErrorValidationFailed, err.Error()),
		})
		return
	}
	var ingredientService ingredient.IngredientService
	requester := middleware.RequesterFrom(c)
	ingredientEntity, err := ingredientService.Update(id, payload, requester.ID)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredientEntity)
}

func Delete(c *gin.Context) {
	id, ok := utils.ParamID(c)
	if !ok {
		return
	}
	var ingredientService ingredient.IngredientService
	requester := middleware.RequesterFrom(c)
	if err := ingredientService.Delete(id, requester.ID); err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
