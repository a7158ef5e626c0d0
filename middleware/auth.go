package middleware

import (
	"net/http"
	"strings"

	"kitchenbook-go-server/enums"
	"kitchenbook-go-server/services/auth"
	"kitchenbook-go-server/services/policy"
	"kitchenbook-go-server/structs"

	"github.com/gin-gonic/gin"
)

const RequesterKey = "requester"

// TokenAuth resolves "Authorization: Token <key>" to a requester and
// stores it on the context. Anonymous requests pass through; Authorize
// and RequireAuth decide whether they get anywhere.
func TokenAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Token ") {
			key := strings.TrimSpace(strings.TrimPrefix(header, "Token "))
			var authService auth.AuthService
			if requester, err := authService.Authenticate(key); err == nil {
				c.Set(RequesterKey, requester)
			}
		}
		c.Next()
	}
}

func RequesterFrom(c *gin.Context) policy.Requester {
	if value, ok := c.Get(RequesterKey); ok {
		if requester, ok := value.(policy.Requester); ok {
			return requester
		}
	}
	return policy.Requester{}
}

// Authorize gates one resource with the permission policy. Anonymous
// denials are 401, insufficient privilege is 403.
func Authorize(resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		requester := RequesterFrom(c)
		if policy.Allow(resource, c.Request.Method, requester) {
			c.Next()
			return
		}
		if !requester.IsAuthenticated {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": structs.NewAppError(enums.ErrorAuthenticationRequired, "authentication required"),
			})
			return
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": structs.NewAppError(enums.ErrorPermissionDenied, "superuser required"),
		})
	}
}

// RequireAuth gates endpoints that need a requester but no policy check.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !RequesterFrom(c).IsAuthenticated {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": structs.NewAppError(enums.ErrorAuthenticationRequired, "authentication required"),
			})
			return
		}
		c.Next()
	}
}
