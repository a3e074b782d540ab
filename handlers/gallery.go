package handlers

import (
	"net/http"

	"restaurant-site-api/models"
	"restaurant-site-api/services"

	"github.com/gin-gonic/gin"
)

type GalleryImageRequest struct {
	Image   string `json:"image" binding:"required"`
	Caption string `json:"caption"`
}

type GalleryHandler struct {
	svc *services.GalleryService
}

func NewGalleryHandler(svc *services.GalleryService) *GalleryHandler {
	return &GalleryHandler{svc: svc}
}

func (h *GalleryHandler) List(c *gin.Context) {
	images, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}

func (h *GalleryHandler) Create(c *gin.Context) {
	var req GalleryImageRequest
	if !bindJSON(c, &req) {
		return
	}

	img := models.GalleryImage{Image: req.Image, Caption: req.Caption}
	if err := h.svc.Create(c.Request.Context(), &img); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, img)
}

func (h *GalleryHandler) ToggleHome(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	img, err := h.svc.ToggleHomeFeatured(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, img)
}

func (h *GalleryHandler) Delete(c *gin.Context) {
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
