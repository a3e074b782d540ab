package handlers

import (
	"net/http"

	"restaurant-site-api/models"
	"restaurant-site-api/services"

	"github.com/gin-gonic/gin"
)

type CategoryRequest struct {
	Name     string `json:"name" binding:"required"`
	Image    string `json:"image"`
	Priority int    `json:"priority"`
}

type CategoryHandler struct {
	svc *services.CategoryService
}

func NewCategoryHandler(svc *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	cat := models.Category{Name: req.Name, Image: req.Image, Priority: req.Priority}
	if err := h.svc.Create(c.Request.Context(), &cat); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// Update renames or reprioritizes a category. A rename cascades into the
// menu inside the service's transaction.
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req CategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	cat, err := h.svc.Update(c.Request.Context(), id, models.Category{
		Name:     req.Name,
		Image:    req.Image,
		Priority: req.Priority,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
