package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "finbuddy/internal/errors"
	"finbuddy/internal/identity"
)

// ExternalIDKey is the Gin context key holding the resolved external user
// identifier.
const ExternalIDKey = "externalID"

// Authenticate returns a Gin middleware that resolves the request's identity
// and stores the external identifier in the context. Requests with no
// resolvable identity are rejected with 401 before any handler runs.
func Authenticate(resolver identity.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		externalID, err := resolver.Resolve(c.Request)
		if err != nil {
			var appErr *apperrors.AppError
			if !errors.As(err, &appErr) {
				appErr = apperrors.ErrUnauthorized
			}
			c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
				"error": gin.H{
					"code":    appErr.Code,
					"message": appErr.Message,
				},
			})
			return
		}

		c.Set(ExternalIDKey, externalID)
		c.Next()
	}
}
