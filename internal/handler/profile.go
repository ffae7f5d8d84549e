package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/udhayakumar-002/inventory-management-system-v3/internal/dto"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/middleware"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/service"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/session"
)

type ProfileHandler struct {
	svc      service.AuthService
	sessions *session.Manager
}

func NewProfileHandler(svc service.AuthService, sessions *session.Manager) *ProfileHandler {
	return &ProfileHandler{svc: svc, sessions: sessions}
}

// Show GET /profile
func (h *ProfileHandler) Show(c *gin.Context) {
	user, err := h.svc.GetUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	render(c, h.sessions, "profile.html", gin.H{"Profile": user})
}

// Update POST /profile/update — a changed display name is pushed back into
// the live session so the navbar greeting stays current.
func (h *ProfileHandler) Update(c *gin.Context) {
	var form dto.UpdateProfileForm
	if err := c.ShouldBind(&form); err != nil {
		h.sessions.AddFlash(c, "Please enter your name", "warning")
		c.Redirect(http.StatusFound, "/profile")
		return
	}

	user, err := h.svc.UpdateProfile(c.Request.Context(), currentUserID(c), form)
	if err != nil {
		c.Error(err)
		return
	}

	if data := middleware.CurrentUser(c); data != nil {
		data.Name = user.Name
		if err := h.sessions.Update(c, data); err != nil {
			c.Error(err)
			return
		}
	}

	h.sessions.AddFlash(c, "Profile updated successfully!", "success")
	c.Redirect(http.StatusFound, "/profile")
}

// ChangePassword POST /profile/change-password
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	var form dto.ChangePasswordForm
	_ = c.ShouldBind(&form)

	if err := h.svc.ChangePassword(c.Request.Context(), currentUserID(c), form); err != nil {
		switch {
		case errors.Is(err, service.ErrWrongPassword),
			errors.Is(err, service.ErrPasswordMismatch),
			errors.Is(err, service.ErrPasswordTooShort):
			h.sessions.AddFlash(c, err.Error(), "danger")
		default:
			c.Error(err)
			return
		}
	} else {
		h.sessions.AddFlash(c, "Password changed successfully!", "success")
	}
	c.Redirect(http.StatusFound, "/profile")
}
