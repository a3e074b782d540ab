package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"restaurant-site-api/config"
	"restaurant-site-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handlers bundles every resource handler so route wiring takes one value.
type Handlers struct {
	Menu         *MenuHandler
	Categories   *CategoryHandler
	Gallery      *GalleryHandler
	Spaces       *SpaceHandler
	Reservations *ReservationHandler
	Theme        *ThemeHandler
	Upload       *UploadHandler
	Admin        *AdminHandler
}

func New(db *gorm.DB, cfg *config.Config) *Handlers {
	return &Handlers{
		Menu:         NewMenuHandler(services.NewMenuService(db)),
		Categories:   NewCategoryHandler(services.NewCategoryService(db)),
		Gallery:      NewGalleryHandler(services.NewGalleryService(db)),
		Spaces:       NewSpaceHandler(services.NewSpaceService(db)),
		Reservations: NewReservationHandler(services.NewReservationService(db)),
		Theme:        NewThemeHandler(services.NewSettingsService(db)),
		Upload:       NewUploadHandler(cfg.UploadDir),
		Admin:        NewAdminHandler(cfg),
	}
}

// parseID reads the :id path parameter. On failure it writes the 400
// envelope itself and the caller just returns.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// writeServiceError maps service failures onto the error envelope: missing
// ids are a 404, everything else (connectivity, constraint violations)
// surfaces as a generic 500 with the underlying message.
func writeServiceError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
