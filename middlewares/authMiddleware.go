package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/repuestoscl/catalog_backend/utils"
)

const bearerPrefix = "Bearer "

func bearerToken(c *gin.Context) string {
	auth := c.Request.Header.Get("Authorization")
	if !strings.HasPrefix(auth, bearerPrefix) {
		return ""
	}
	return auth[len(bearerPrefix):]
}

// TokenMiddleware stores the bearer token in the request context without
// judging it, so resolvers can enforce auth per operation.
func TokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token != "" {
			ctx := utils.SetTokenInContext(c.Request.Context(), token)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

// AuthMiddleware rejects the request outright unless it carries the API token.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if !utils.ValidAPIToken(token) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}
