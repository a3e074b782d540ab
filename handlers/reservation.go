package handlers

import (
	"net/http"

	"restaurant-site-api/models"
	"restaurant-site-api/services"

	"github.com/gin-gonic/gin"
)

// ReservationRequest rejects missing required fields outright rather than
// defaulting them to empty strings.
type ReservationRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Guests   int    `json:"guests" binding:"required,min=1"`
	Space    string `json:"space"`
	Occasion string `json:"occasion"`
}

type ReservationHandler struct {
	svc *services.ReservationService
}

func NewReservationHandler(svc *services.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

func (h *ReservationHandler) List(c *gin.Context) {
	reservations, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

func (h *ReservationHandler) Create(c *gin.Context) {
	var req ReservationRequest
	if !bindJSON(c, &req) {
		return
	}

	reservation := models.Reservation{
		Name:     req.Name,
		Phone:    req.Phone,
		Date:     req.Date,
		Time:     req.Time,
		Guests:   req.Guests,
		Space:    req.Space,
		Occasion: req.Occasion,
	}
	if err := h.svc.Create(c.Request.Context(), &reservation); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}

func (h *ReservationHandler) Delete(c *gin.Context) {
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
