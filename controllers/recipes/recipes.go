package recipes

import (
	"net/http"
	"strconv"

	"kitchenbook-go-server/enums"
	"kitchenbook-go-server/middleware"
	"kitchenbook-go-server/services/recipe"
	"kitchenbook-go-server/structs"
	"kitchenbook-go-server/utils"

	"github.com/gin-gonic/gin"
)

// List returns one page of recipes, or the recipes of one category when
// ?category_id= is present. An unknown category is a 404.
func List(c *gin.Context) {
	var recipeService recipe.RecipeService

	if raw := c.Query("category_id"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": structs.NewAppError(enums.ErrorValidationFailed, "category_id must be an integer"),
			})
			return
		}
		recipeEntities, err := recipeService.ListByCategory(categoryID)
		if err != nil {
			utils.AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, recipeEntities)
		return
	}

	recipeEntities, err := recipeService.List(utils.QueryPage(c))
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipeEntities)
}

func Get(c *gin.Context) {
	id, ok := utils.ParamID(c)
	if !ok {
		return
	}
	var recipeService recipe.RecipeService
	detail, err := recipeService.Get(id)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func Create(c *gin.Context) {
	var payload structs.RecipePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": structs.NewAppError(enums.ErrorValidationFailed, err.Error()),
		})
		return
	}
	var recipeService recipe.RecipeService
	requester := middleware.RequesterFrom(c)
	detail, err := recipeService.Create(payload, requester.ID)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, detail)
}

func Update(c *gin.Context) {
	id, ok := utils.ParamID(c)
	if !ok {
		return
	}
	var payload structs.RecipePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": structs.NewAppError(enums.ErrorValidationFailed, err.Error()),
		})
		return
	}
	var recipeService recipe.RecipeService
	requester := middleware.RequesterFrom(c)
	partial := c.Request.Method == http.MethodPatch
	detail, err := recipeService.Update(id, payload, requester.ID, partial)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func Delete(c *gin.Context) {
	id, ok := utils.ParamID(c)
	if !ok {
		return
	}
	var recipeService recipe.RecipeService
	requester := middleware.RequesterFrom(c)
	if err := recipeService.Delete(id, requester.ID); err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
