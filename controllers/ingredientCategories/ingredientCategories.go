package ingredientCategories

import (
	"net/http"

	"kitchenbook-go-server/enums"
	"kitchenbook-go-server/middleware"
	"kitchenbook-go-server/services/category"
	"kitchenbook-go-server/structs"
	"kitchenbook-go-server/utils"

	"github.com/gin-gonic/gin"
)

func List(c *gin.Context) {
	var categoryService category.IngredientCategoryService
	categoryEntities, err := categoryService.List(utils.QueryPage(c))
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, categoryEntities)
}

func Get(c *gin.Context) {
	id, ok := utils.ParamID(c)
	if !ok {
		return
	}
	var categoryService category.IngredientCategoryService
	categoryEntity, err := categoryService.Get(id)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, categoryEntity)
}

func Create(c *gin.Context) {
	var payload structs.CategoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": structs.NewAppError(enums.ErrorValidationFailed, err.Error()),
		})
		return
	}
	var categoryService category.IngredientCategoryService
	requester := middleware.RequesterFrom(c)
	categoryEntity, err := categoryService.Create(payload, requester.ID)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, categoryEntity)
}

func Update(c *gin.Context) {
	id, ok := utils.ParamID(c)
	if !ok {
		return
	}
	var payload structs.CategoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": structs.NewAppError(enums.ErrorValidationFailed, err.Error()),
		})
		return
	}
	var categoryService category.IngredientCategoryService
	requester := middleware.RequesterFrom(c)
	categoryEntity, err := categoryService.Update(id, payload, requester.ID)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, categoryEntity)
}

// Delete cascades: the category's ingredients and their recipe lines go
// with it.
func Delete(c *gin.Context) {
	id, ok := utils.ParamID(c)
	if !ok {
		return
	}
	var categoryService category.IngredientCategoryService
	requester := middleware.RequesterFrom(c)
	if err := categoryService.Delete(id, requester.ID); err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
