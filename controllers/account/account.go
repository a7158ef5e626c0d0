package account

import (
	"net/http"

	"kitchenbook-go-server/database"
	"kitchenbook-go-server/enums"
	"kitchenbook-go-server/middleware"
	"kitchenbook-go-server/models"
	"kitchenbook-go-server/services/auth"
	"kitchenbook-go-server/services/recipe"
	"kitchenbook-go-server/structs"
	"kitchenbook-go-server/utils"

	"github.com/gin-gonic/gin"
)

func Register(c *gin.Context) {
	var payload structs.RegisterPayload
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": structs.NewAppError(enums.ErrorValidationFailed, err.Error()),
		})
		return
	}
	var authService auth.AuthService
	userEntity, err := authService.Register(payload)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, userEntity)
}

// ObtainToken is the credential exchange: username and password in,
// the user's permanent API token out.
func ObtainToken(c *gin.Context) {
	var payload structs.TokenAuthPayload
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": structs.NewAppError(enums.ErrorValidationFailed, err.Error()),
		})
		return
	}
	var authService auth.AuthService
	token, err := authService.ObtainToken(payload)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token.Key})
}

// Profile returns the requester's account data, their recipes and their
// API token.
func Profile(c *gin.Context) {
	requester := middleware.RequesterFrom(c)

	var userEntity models.User
	if err := database.Mysql.First(&userEntity, requester.ID).Error; err != nil {
		utils.AbortWithError(c, err)
		return
	}

	var authService auth.AuthService
	token, err := authService.GetOrCreateToken(requester.ID)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	var recipeService recipe.RecipeService
	recipeEntities, err := recipeService.MyRecipes(requester.ID)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, structs.ProfileResponse{
		Username:  userEntity.Username,
		FirstName: userEntity.FirstName,
		LastName:  userEntity.LastName,
		Email:     userEntity.Email,
		AuthToken: token.Key,
		Recipes:   recipeEntities,
	})
}
