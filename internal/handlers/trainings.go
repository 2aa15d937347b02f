package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pawtrail/internal/middleware"
)

// CreateTraining records a training session for one of the authenticated
// user's animals and adds its hours to the animal's running total. The
// total is bumped with an in-database increment so concurrent trainings on
// the same animal cannot lose updates.
func (h *Handlers) CreateTraining(c *gin.Context) {
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

	date, ok := coerceDate(body["date"])
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing training date."})
		return
	}

	description, ok := stringField(body, "description")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or missing description."})
		return
	}

	hours, ok := numberField(body, "hours")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or missing training hours."})
		return
	}

	animalID, ok := stringField(body, "animal")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or missing animal ID."})
		return
	}

	var owner string
	err := h.db.QueryRow(`SELECT owner FROM animals WHERE id = $1`, animalID).Scan(&owner)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Animal doesn't exist."})
			return
		}
		h.log.Error().Err(err).Msg("querying animal for training")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to train animal."})
		return
	}

	if owner != claims.ID {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Animal doesn't belong to the specific user."})
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		h.log.Error().Err(err).Msg("starting training transaction")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to train animal."})
		return
	}
	defer tx.Rollback()

	insertQuery := `INSERT INTO trainings (id, date, description, hours, animal, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = tx.Exec(insertQuery, uuid.New().String(), date, description, hours, animalID, claims.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("inserting training")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to train animal."})
		return
	}

	_, err = tx.Exec(`UPDATE animals SET hours_trained = hours_trained + $1 WHERE id = $2`, hours, animalID)
	if err != nil {
		h.log.Error().Err(err).Msg("updating animal hours")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to train animal."})
		return
	}

	if err := tx.Commit(); err != nil {
		h.log.Error().Err(err).Msg("committing training transaction")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to train animal."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Animal Successfully Trained."})
}
