package router

import (
	"github.com/gin-gonic/gin"

	"palettehub/internal/handler"
	"palettehub/internal/middleware"
	"palettehub/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	allowedOrigins []string,
	authH *handler.AuthHandler,
	paletteH *handler.PaletteHandler,
	savedH *handler.SavedPaletteHandler,
	folderH *handler.FolderHandler,
	userH *handler.UserHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.Refresh)

	// Public catalog routes; a valid token annotates save state
	catalog := v1.Group("/palettes")
	catalog.Use(middleware.AuthOptional(authSvc))
	catalog.GET("/search", paletteH.Search)
	catalog.GET("/popular", paletteH.Popular)
	catalog.GET("/global/:id", paletteH.GetByID)
	catalog.GET("/external/:externalId", paletteH.GetByExternalID)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthRequired(authSvc))

	// Saved palette collection
	saved := protected.Group("/palettes")
	saved.GET("/saved", savedH.List)
	saved.GET("/saved/:id", savedH.Get)
	saved.PUT("/saved/:id", savedH.Update)
	saved.DELETE("/saved/:id", savedH.Delete)
	saved.POST("/save", savedH.Save)
	saved.POST("/create", savedH.Create)

	// Folder management
	folders := protected.Group("/folders")
	folders.GET("", folderH.List)
	folders.POST("", folderH.Create)
	folders.GET("/:id", folderH.Get)
	folders.PUT("/:id", folderH.Update)
	folders.DELETE("/:id", folderH.Delete)
	folders.GET("/:id/palettes", folderH.ListPalettes)

	// Profile and statistics
	users := protected.Group("/users")
	users.GET("/profile", userH.GetProfile)
	users.PUT("/profile", userH.UpdateProfile)
	users.GET("/stats", userH.GetStats)

	return r
}
