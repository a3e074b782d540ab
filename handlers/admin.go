package handlers

import (
	"net/http"

	"restaurant-site-api/config"
	"restaurant-site-api/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// AdminHandler issues admin tokens when a password is configured. The hash
// is computed once at startup so login compares against bcrypt, not the
// plaintext env value.
type AdminHandler struct {
	cfg          *config.Config
	passwordHash []byte
}

func NewAdminHandler(cfg *config.Config) *AdminHandler {
	h := &AdminHandler{cfg: cfg}
	if cfg.AdminPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err == nil {
			h.passwordHash = hash
		}
	}
	return h
}

// Login exchanges the admin password for a JWT.
func (h *AdminHandler) Login(c *gin.Context) {
	if len(h.passwordHash) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "admin login is not configured"})
		return
	}

	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := bcrypt.CompareHashAndPassword(h.passwordHash, []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid password"})
		return
	}

	token, err := middleware.GenerateAdminToken(h.cfg.JWTSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
