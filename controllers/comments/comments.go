package comments

import (
	"net/http"
	"strconv"

	"kitchenbook-go-server/enums"
	"kitchenbook-go-server/middleware"
	"kitchenbook-go-server/services/comment"
	"kitchenbook-go-server/structs"
	"kitchenbook-go-server/utils"

	"github.com/gin-gonic/gin"
)

// List returns one page of comments, or all comments of one recipe when
// ?recipe_id= is present.
func List(c *gin.Context) {
	var commentService comment.CommentService

	if raw := c.Query("recipe_id"); raw != "" {
		recipeID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": structs.NewAppError(enums.ErrorValidationFailed, "recipe_id must be an integer"),
			})
			return
		}
		commentEntities, err := commentService.ListByRecipe(recipeID)
		if err != nil {
			utils.AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, commentEntities)
		return
	}

	commentEntities, err := commentService.List(utils.QueryPage(c))
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, commentEntities)
}

func Get(c *gin.Context) {
	id, ok := utils.ParamID(c)
	if !ok {
		return
	}
	var commentService comment.CommentService
	commentEntity, err := commentService.Get(id)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, commentEntity)
}

func Create(c *gin.Context) {
	var payload structs.CommentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": structs.NewAppError(enums.ErrorValidationFailed, err.Error()),
		})
		return
	}
	var commentService comment.CommentService
	requester := middleware.RequesterFrom(c)
	commentEntity, err := commentService.Create(payload, requester.ID)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, commentEntity)
}

func Update(c *gin.Context) {
	id, ok := utils.ParamID(c)
	if !ok {
		return
	}
	var payload structs.CommentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": structs.NewAppError(enums.ErrorValidationFailed, err.Error()),
		})
		return
	}
	var commentService comment.CommentService
	requester := middleware.RequesterFrom(c)
	commentEntity, err := commentService.Update(id, payload, requester.ID)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, commentEntity)
}

func Delete(c *gin.Context) {
	id, ok := utils.ParamID(c)
	if !ok {
		return
	}
	var commentService comment.CommentService
	requester := middleware.RequesterFrom(c)
	if err := commentService.Delete(id, requester.ID); err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
