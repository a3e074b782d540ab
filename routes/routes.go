package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"restaurant-site-api/config"
	"restaurant-site-api/handlers"
	"restaurant-site-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handlers, cfg *config.Config) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.GET("/menu", h.Menu.List)
		public.GET("/categories", h.Categories.List)
		public.GET("/gallery", h.Gallery.List)
		public.GET("/spaces", h.Spaces.List)
		public.GET("/theme", h.Theme.Get)

		// Visitors submit reservations from the booking form.
		public.POST("/reservations", h.Reservations.Create)

		public.POST("/admin/login", h.Admin.Login)
	}

	// ── Admin routes ───────────────────────────────────────────────
	// Gated only when ADMIN_PASSWORD is configured; open otherwise.
	admin := r.Group("/api")
	admin.Use(middleware.AdminRequired(cfg))
	{
		admin.POST("/menu", h.Menu.Create)
		admin.PUT("/menu/:id", h.Menu.Update)
		admin.PATCH("/menu/:id/toggle-feature", h.Menu.ToggleFeature)
		admin.DELETE("/menu/:id", h.Menu.Delete)

		admin.POST("/categories", h.Categories.Create)
		admin.PUT("/categories/:id", h.Categories.Update)
		admin.DELETE("/categories/:id", h.Categories.Delete)

		admin.POST("/gallery", h.Gallery.Create)
		admin.PATCH("/gallery/:id/toggle-home", h.Gallery.ToggleHome)
		admin.DELETE("/gallery/:id", h.Gallery.Delete)

		admin.POST("/spaces", h.Spaces.Create)
		admin.DELETE("/spaces/:id", h.Spaces.Delete)

		admin.GET("/reservations", h.Reservations.List)
		admin.DELETE("/reservations/:id", h.Reservations.Delete)

		admin.POST("/theme", h.Theme.Set)

		admin.POST("/upload", h.Upload.Upload)
	}

	// Uploaded images are served straight from disk.
	r.Static("/uploads", cfg.UploadDir)

	// ── Front end ──────────────────────────────────────────────────
	// Serve the pre-built site; unknown non-API paths fall back to the
	// entry document so client-side routing works.
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}

		path := filepath.Join(cfg.StaticDir, filepath.Clean(c.Request.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}
		c.File(filepath.Join(cfg.StaticDir, "index.html"))
	})
}
