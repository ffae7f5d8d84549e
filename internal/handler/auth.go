package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/udhayakumar-002/inventory-management-system-v3/internal/dto"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/service"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/session"
)

type AuthHandler struct {
	svc      service.AuthService
	sessions *session.Manager
}

func NewAuthHandler(svc service.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{svc: svc, sessions: sessions}
}

// Home GET / — send authenticated users to the dashboard, everyone else to login.
func (h *AuthHandler) Home(c *gin.Context) {
	if _, err := h.sessions.Current(c); err == nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

// LoginPage GET /login
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if _, err := h.sessions.Current(c); err == nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	render(c, h.sessions, "login.html", nil)
}

// Login POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	if _, err := h.sessions.Current(c); err == nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	var form dto.LoginForm
	_ = c.ShouldBind(&form)
	if form.Username == "" || form.Password == "" {
		h.sessions.AddFlash(c, "Please enter both username and password", "warning")
		render(c, h.sessions, "login.html", nil)
		return
	}

	user, err := h.svc.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		h.sessions.AddFlash(c, "Invalid username or password", "danger")
		render(c, h.sessions, "login.html", nil)
		return
	}

	data := &session.Data{
		UserID:   user.ID,
		Username: user.Username,
		Name:     user.Name,
		Role:     user.Role,
	}
	if err := h.sessions.Start(c, data); err != nil {
		c.Error(err)
		return
	}
	h.sessions.AddFlash(c, fmt.Sprintf("Welcome back, %s!", user.Name), "success")
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Destroy(c)
	h.sessions.AddFlash(c, "You have been logged out.", "info")
	c.Redirect(http.StatusFound, "/login")
}
