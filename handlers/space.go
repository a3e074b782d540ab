package handlers

import (
	"net/http"

	"restaurant-site-api/models"
	"restaurant-site-api/services"

	"github.com/gin-gonic/gin"
)

type SpaceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type SpaceHandler struct {
	svc *services.SpaceService
}

func NewSpaceHandler(svc *services.SpaceService) *SpaceHandler {
	return &SpaceHandler{svc: svc}
}

func (h *SpaceHandler) List(c *gin.Context) {
	spaces, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, spaces)
}

func (h *SpaceHandler) Create(c *gin.Context) {
	var req SpaceRequest
	if !bindJSON(c, &req) {
		return
	}

	space := models.Space{Name: req.Name, Description: req.Description, Image: req.Image}
	if err := h.svc.Create(c.Request.Context(), &space); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, space)
}

func (h *SpaceHandler) Delete(c *gin.Context) {
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
