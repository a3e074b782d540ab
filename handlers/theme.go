package handlers

import (
	"encoding/json"
	"net/http"

	"restaurant-site-api/services"

	"github.com/gin-gonic/gin"
)

type ThemeHandler struct {
	svc *services.SettingsService
}

func NewThemeHandler(svc *services.SettingsService) *ThemeHandler {
	return &ThemeHandler{svc: svc}
}

// Get returns the stored theme object, or the built-in default when nothing
// has been saved yet.
func (h *ThemeHandler) Get(c *gin.Context) {
	theme, err := h.svc.GetTheme(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", theme)
}

// Set replaces the theme with the posted object. Whatever keys the admin
// screen sends become the new theme wholesale.
func (h *ThemeHandler) Set(c *gin.Context) {
	var value map[string]interface{}
	if err := c.ShouldBindJSON(&value); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "theme must be a JSON object"})
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.SetTheme(c.Request.Context(), raw); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}
