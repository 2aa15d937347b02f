package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pawtrail/internal/middleware"
)

// CreateAnimal registers a new animal owned by the authenticated user.
func (h *Handlers) CreateAnimal(c *gin.Context) {
	claims := middleware.UserFromContext(c)
	if claims == nil {
		c.JSON(http.StatusForbidden, gin.H{"message": "No token is provided."})
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}

	name, ok := stringField(body, "name")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or missing name."})
		return
	}

	hoursTrained, ok := numberField(body, "hoursTrained")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or missing hours trained."})
		return
	}

	dateOfBirth, ok := coerceDate(body["dateOfBirth"])
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or missing date of birth."})
		return
	}

	profilePicture, ok := optionalStringField(body, "profilePicture")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid data types"})
		return
	}

	query := `INSERT INTO animals (id, name, hours_trained, owner, date_of_birth, profile_picture)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := h.db.Exec(query, uuid.New().String(), name, hoursTrained, claims.ID, dateOfBirth, profilePicture)
	if err != nil {
		h.log.Error().Err(err).Msg("inserting animal")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create animal."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Animal Added Successfully."})
}
