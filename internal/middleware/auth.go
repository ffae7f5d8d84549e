package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/udhayakumar-002/inventory-management-system-v3/internal/apierror"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/session"
)

const SessionKey = "session"

// RequireSession gates every protected route on a valid server-side session.
// Browsers are bounced to the login page with a notice; API callers get 401.
func RequireSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := sessions.Current(c)
		if err != nil {
			if strings.HasPrefix(c.Request.URL.Path, "/api/") {
				c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Authentication required"))
				return
			}
			sessions.AddFlash(c, "Please log in to access this page.", "warning")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(SessionKey, data)
		c.Next()
	}
}

// CurrentUser retrieves the session payload stored by RequireSession.
func CurrentUser(c *gin.Context) *session.Data {
	data, _ := c.MustGet(SessionKey).(*session.Data)
	return data
}
