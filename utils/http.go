package utils

import (
	"errors"
	"net/http"
	"strconv"

	"kitchenbook-go-server/enums"
	"kitchenbook-go-server/structs"

	"github.com/gin-gonic/gin"
)

// AbortWithError maps service errors to HTTP responses. Anything that
// is not an AppError is an internal error.
func AbortWithError(c *gin.Context, err error) {
	var appErr *structs.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status(), gin.H{"error": appErr})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": structs.NewAppError(enums.ErrorInternal, err.Error()),
	})
}

// ParamID reads the :id route parameter.
func ParamID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": structs.NewAppError(enums.ErrorValidationFailed, "id must be a positive integer"),
		})
		return 0, false
	}
	return id, true
}

// QueryPage reads the ?page= parameter, defaulting to the first page.
func QueryPage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
