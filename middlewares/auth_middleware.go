package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"diettracker/apperrors"
	"diettracker/models"
	"diettracker/services"
)

const userContextKey = "currentUser"

// Auth gates a route group behind token authentication. It extracts the
// bearer token, validates it, resolves the identity to a full user row,
// and aborts with 401 before the handler runs if any step fails. Handlers
// behind it read the verified user via CurrentUser and never authenticate
// themselves.
func Auth(tokens *services.TokenService, users *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c.GetHeader("Authorization"))

		userID, err := tokens.Validate(tokenStr)
		if err != nil {
			if errors.Is(err, apperrors.ErrTokenMissing) {
				logrus.Warn("request rejected: missing token")
			} else {
				logrus.Warn("request rejected: invalid token")
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
			return
		}

		user, err := users.FindByID(userID)
		if err != nil {
			// A valid token for a vanished account is still unauthorized.
			logrus.WithField("user_id", userID).Warn("request rejected: token user no longer exists")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the user resolved by Auth. It must only be called
// from handlers registered behind the middleware.
func CurrentUser(c *gin.Context) *models.User {
	user, ok := c.MustGet(userContextKey).(*models.User)
	if !ok {
		panic("CurrentUser called outside Auth middleware")
	}
	return user
}

// extractToken pulls the raw token out of an Authorization header value.
// Both a bare token and a scheme-prefixed "Bearer <token>" are accepted.
func extractToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	parts := strings.Fields(header)
	if len(parts) == 2 {
		return parts[1]
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return ""
}
