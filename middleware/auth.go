package middleware

import (
	"net/http"
	"strings"

	"travelease/utils"

	"github.com/gin-gonic/gin"
)

// FirebaseAuth verifies a Bearer ID token when one is present and puts
// the Firebase uid on the context as "userID". Requests without a
// token run as guest with an empty userID; guests can browse and book.
// A token that is present but invalid is rejected.
func FirebaseAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.Set("userID", "")
			c.Next()
			return
		}

		if utils.AuthClient == nil {
			utils.JSONError(c, http.StatusServiceUnavailable, "Auth unavailable", "token verification is not configured")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		decoded, err := utils.AuthClient.VerifyIDToken(c.Request.Context(), token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid auth token", err.Error())
			c.Abort()
			return
		}

		c.Set("userID", decoded.UID)
		c.Next()
	}
}

// UserID reads the authenticated uid set by FirebaseAuth, falling back
// to the user_id query parameter for guest flows.
func UserID(c *gin.Context) string {
	if uid := c.GetString("userID"); uid != "" {
		return uid
	}
	return c.Query("user_id")
}
