package api

import (
	"context"                           // Context for Redis operations
	"net/http"                          // HTTP status codes
	"rental_system/internal/domain"     // Importing domain models
	"rental_system/internal/middleware" // Context keys
	"rental_system/internal/repository" // Data access layer
	"rental_system/internal/utils"      // Utility functions
	"strconv"                           // String conversion
	"time"                              // Time durations

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client

	"github.com/sirupsen/logrus" // Logging library
)

// Cache key and TTL for the equipment listing
const (
	equipmentCacheKey = "equipment:all" // Single key, no pagination
	equipmentCacheTTL = 60 * time.Second
)

// CreateEquipmentRequest represents a new catalog entry
type CreateEquipmentRequest struct {
	Name        string   `json:"name" binding:"required"`  // Name must be provided
	Description string   `json:"description"`              // Optional, defaults to empty
	Price       *float64 `json:"price" binding:"required"` // Price must be provided (pointer keeps 0 valid)
	Available   *bool    `json:"available"`                // Optional, defaults to true
}

// UpdateEquipmentRequest carries a partial update; absent fields stay untouched
type UpdateEquipmentRequest struct {
	Name        *string  `json:"name"`        // New name, if supplied
	Description *string  `json:"description"` // New description, if supplied
	Price       *float64 `json:"price"`       // New price, if supplied
	Available   *bool    `json:"available"`   // New availability, if supplied
}

// CreateEquipmentHandler adds a catalog entry (admin only, gated upstream)
func CreateEquipmentHandler(equipment *repository.EquipmentRepository, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateEquipmentRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// New entries are available unless the payload says otherwise
		available := true
		if req.Available != nil {
			available = *req.Available
		}
		e := domain.Equipment{
			Name:        req.Name,        // Display name
			Description: req.Description, // Empty when absent
			Price:       *req.Price,      // Rental price
			Available:   available,       // Availability flag
		}
		// Attempt to create the row
		if err := equipment.Create(&e); err != nil {
			logrus.WithFields(logrus.Fields{
				"name":  req.Name,    // Equipment name
				"error": err.Error(), // Error message
			}).Error("Failed to add equipment") // Log failure
			// Return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add equipment"})
			return
		}
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"equipment_id": e.ID,                           // New equipment ID
			"user_id":      c.GetUint(middleware.ContextUserID), // Acting admin
			"type":         "add_equipment",                // Operation type
		}).Info("Equipment added")
		// Invalidate the listing cache
		_ = utils.DeleteCache(context.Background(), rdb, equipmentCacheKey)
		// Return success response
		c.JSON(http.StatusCreated, gin.H{"message": "Equipment added"})
	}
}

// ListEquipmentHandler returns the whole catalog, read through the cache
func ListEquipmentHandler(equipment *repository.EquipmentRepository, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		var items []domain.Equipment
		// Try the cache first
		found, err := utils.GetCache(ctx, rdb, equipmentCacheKey, &items)
		if err == nil && found {
			c.JSON(http.StatusOK, items) // Return cached listing
			return
		}
		// If not in cache, fetch from DB
		items, err = equipment.List()
		if err != nil {
			// If fetching fails, return error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch equipment"})
			return
		}
		_ = utils.SetCache(ctx, rdb, equipmentCacheKey, items, equipmentCacheTTL) // Cache the listing
		c.JSON(http.StatusOK, items)                                              // Return the listing
	}
}

// UpdateEquipmentHandler applies a partial update to one catalog entry (admin only)
func UpdateEquipmentHandler(equipment *repository.EquipmentRepository, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32) // Parse path ID
		if err != nil {
			// If the ID is not numeric, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid equipment id"})
			return
		}
		var req UpdateEquipmentRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Collect only the supplied fields
		fields := map[string]any{}
		if req.Name != nil {
			fields["name"] = *req.Name
		}
		if req.Description != nil {
			fields["description"] = *req.Description
		}
		if req.Price != nil {
			fields["price"] = *req.Price
		}
		if req.Available != nil {
			fields["available"] = *req.Available
		}
		// Apply the partial update
		if _, err := equipment.Update(uint(id), fields); err != nil {
			// Absent IDs report not found, nothing mutated
			if repository.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Equipment not found"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"equipment_id": id,          // Target equipment ID
				"error":        err.Error(), // Error message
			}).Error("Failed to update equipment") // Log failure
			// Return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update equipment"})
			return
		}
		// Log successful update
		logrus.WithFields(logrus.Fields{
			"equipment_id": id,                                  // Target equipment ID
			"user_id":      c.GetUint(middleware.ContextUserID), // Acting admin
			"type":         "update_equipment",                  // Operation type
		}).Info("Equipment updated")
		// Invalidate the listing cache
		_ = utils.DeleteCache(context.Background(), rdb, equipmentCacheKey)
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Equipment updated"})
	}
}

// DeleteEquipmentHandler removes one catalog entry (admin only)
func DeleteEquipmentHandler(equipment *repository.EquipmentRepository, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32) // Parse path ID
		if err != nil {
			// If the ID is not numeric, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid equipment id"})
			return
		}
		// Delete by ID; a second delete on the same ID reads as not found
		deleted, err := equipment.Delete(uint(id))
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"equipment_id": id,          // Target equipment ID
				"error":        err.Error(), // Error message
			}).Error("Failed to delete equipment") // Log failure
			// Return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete equipment"})
			return
		}
		if !deleted {
			// If no row matched, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Equipment not found"})
			return
		}
		// Log successful deletion
		logrus.WithFields(logrus.Fields{
			"equipment_id": id,                                  // Target equipment ID
			"user_id":      c.GetUint(middleware.ContextUserID), // Acting admin
			"type":         "delete_equipment",                  // Operation type
		}).Info("Equipment deleted")
		// Invalidate the listing cache
		_ = utils.DeleteCache(context.Background(), rdb, equipmentCacheKey)
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Equipment deleted"})
	}
}
