package api

import (
	"net/http"                          // HTTP status codes
	"rental_system/internal/domain"     // Importing domain models
	"rental_system/internal/middleware" // Auth middleware
	"rental_system/internal/repository" // Data access layer

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// NewRouter builds the Gin engine with every route of the API.
// rdb may be nil, which disables the listing cache.
func NewRouter(users *repository.UserRepository, equipment *repository.EquipmentRepository, rdb *redis.Client, jwtSecret string) *gin.Engine {
	r := gin.Default() // Gin router instance

	// Liveness endpoint
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Rental Equipment System API is running!")
	})

	// Auth routes
	r.POST("/api/register", RegisterHandler(users))          // Registration endpoint
	r.POST("/api/login", LoginHandler(users, jwtSecret))     // Login endpoint

	// Public catalog listing
	r.GET("/api/equipment", ListEquipmentHandler(equipment, rdb))

	// Catalog mutations (protected, admin only)
	adminGroup := r.Group("/api/equipment")
	// Protect mutations with JWT and role middleware
	adminGroup.Use(middleware.JWTAuthMiddleware(jwtSecret), middleware.RequireRole(domain.RoleAdmin))
	adminGroup.POST("", CreateEquipmentHandler(equipment, rdb))       // Add equipment endpoint
	adminGroup.PUT("/:id", UpdateEquipmentHandler(equipment, rdb))    // Update equipment endpoint
	adminGroup.DELETE("/:id", DeleteEquipmentHandler(equipment, rdb)) // Delete equipment endpoint

	return r
}
