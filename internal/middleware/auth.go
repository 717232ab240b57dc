package middleware

import (
	"net/http"
	"strings"

	"github.com/circuitlab-dev/circuitlab/internal/auth"
	"github.com/circuitlab-dev/circuitlab/internal/store"
	"github.com/circuitlab-dev/circuitlab/internal/types"
	"github.com/gin-gonic/gin"
)

type AuthenticatedUser struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Active bool   `json:"active"`
}

// AuthMiddleware is the single enforcement point: extract the bearer token,
// verify it, resolve the subject email to a stored user, and hand the user
// to the route via the context. Each stage rejects with its own message so
// a missing header, a bad token and a vanished user stay distinguishable.
func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		email, err := auth.VerifyToken(parts[1])

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		user, err := store.GetUserByEmail(email)

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			ID:     user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Active: user.Active,
		})
		ctx.Next()
	}
}
