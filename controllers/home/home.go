package home

import (
	"net/http"

	"kitchenbook-go-server/database"
	"kitchenbook-go-server/models"
	"kitchenbook-go-server/structs"
	"kitchenbook-go-server/utils"

	"github.com/gin-gonic/gin"
)

// Stats is the homepage payload: how much is in the catalog.
func Stats(c *gin.Context) {
	var stats structs.HomeStats
	if err := database.Mysql.Model(&models.Recipe{}).Count(&stats.Recipes).Error; err != nil {
		utils.AbortWithError(c, err)
		return
	}
	if err := database.Mysql.Model(&models.Ingredient{}).Count(&stats.Ingredients).Error; err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
