package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/udhayakumar-002/inventory-management-system-v3/internal/apierror"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/middleware"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/session"
)

var validate = validator.New()

// bindAndValidate binds a JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// parseID reads the :id route parameter. A non-numeric id behaves like a
// missing record: flash and bounce, never a raw 400 page.
func parseID(c *gin.Context, sessions *session.Manager, fallback string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		sessions.AddFlash(c, "Page not found!", "warning")
		c.Redirect(http.StatusFound, fallback)
		return 0, false
	}
	return uint(id), true
}

// currentUserID is the logged-in user recorded on audited writes.
func currentUserID(c *gin.Context) uint {
	if u := middleware.CurrentUser(c); u != nil {
		return u.UserID
	}
	return 0
}

// render writes an HTML page, injecting the pending flash notices and the
// logged-in user that every template expects.
func render(c *gin.Context, sessions *session.Manager, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Flashes"] = sessions.PopFlashes(c)
	if user, exists := c.Get(middleware.SessionKey); exists {
		data["User"] = user
	}
	c.HTML(http.StatusOK, name, data)
}
