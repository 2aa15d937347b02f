package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"pawtrail/internal/models"
)

// The admin listing endpoints all follow the same protocol: ascending id
// order, a page size from ?limit and an optional ?startAfterId resume cursor.
// The response carries nextStartAfterId, null once the collection is
// exhausted. Pages are not snapshot-isolated against concurrent writes.

// ListUsers returns a page of users. The password column is excluded from the
// SELECT projection so a hash can never leak into a response.
func (h *Handlers) ListUsers(c *gin.Context) {
	limit := parsePageLimit(c.Query("limit"))

	cursor, err := resolveStartAfter(h.db, "users", c.Query("startAfterId"))
	if err != nil {
		h.log.Error().Err(err).Msg("resolving users cursor")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch users."})
		return
	}

	query := `SELECT id, first_name, last_name, email, profile_picture
		FROM users
		WHERE ($1 = '' OR id > $1)
		ORDER BY id ASC
		LIMIT $2`

	rows, err := h.db.Query(query, cursor, limit)
	if err != nil {
		h.log.Error().Err(err).Msg("querying users page")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch users."})
		return
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		var profilePicture sql.NullString

		if err := rows.Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email, &profilePicture); err != nil {
			h.log.Error().Err(err).Msg("scanning user row")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch users."})
			return
		}

		if profilePicture.Valid {
			user.ProfilePicture = &profilePicture.String
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		h.log.Error().Err(err).Msg("iterating users page")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch users."})
		return
	}

	var lastID string
	if len(users) > 0 {
		lastID = users[len(users)-1].ID
	}

	c.JSON(http.StatusOK, gin.H{
		"users":            users,
		"nextStartAfterId": nextCursor(lastID, len(users)),
	})
}

// ListAnimals returns a page of animals.
func (h *Handlers) ListAnimals(c *gin.Context) {
	limit := parsePageLimit(c.Query("limit"))

	cursor, err := resolveStartAfter(h.db, "animals", c.Query("startAfterId"))
	if err != nil {
		h.log.Error().Err(err).Msg("resolving animals cursor")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch animals."})
		return
	}

	query := `SELECT id, name, hours_trained, owner, date_of_birth, profile_picture
		FROM animals
		WHERE ($1 = '' OR id > $1)
		ORDER BY id ASC
		LIMIT $2`

	rows, err := h.db.Query(query, cursor, limit)
	if err != nil {
		h.log.Error().Err(err).Msg("querying animals page")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch animals."})
		return
	}
	defer rows.Close()

	animals := []models.Animal{}
	for rows.Next() {
		var animal models.Animal
		var profilePicture sql.NullString

		if err := rows.Scan(&animal.ID, &animal.Name, &animal.HoursTrained, &animal.Owner, &animal.DateOfBirth, &profilePicture); err != nil {
			h.log.Error().Err(err).Msg("scanning animal row")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch animals."})
			return
		}

		if profilePicture.Valid {
			animal.ProfilePicture = &profilePicture.String
		}
		animals = append(animals, animal)
	}
	if err := rows.Err(); err != nil {
		h.log.Error().Err(err).Msg("iterating animals page")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch animals."})
		return
	}

	var lastID string
	if len(animals) > 0 {
		lastID = animals[len(animals)-1].ID
	}

	c.JSON(http.StatusOK, gin.H{
		"animals":          animals,
		"nextStartAfterId": nextCursor(lastID, len(animals)),
	})
}

// ListTrainings returns a page of training logs.
func (h *Handlers) ListTrainings(c *gin.Context) {
	limit := parsePageLimit(c.Query("limit"))

	cursor, err := resolveStartAfter(h.db, "trainings", c.Query("startAfterId"))
	if err != nil {
		h.log.Error().Err(err).Msg("resolving trainings cursor")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch training logs."})
		return
	}

	query := `SELECT id, date, description, hours, animal, user_id, training_log_video
		FROM trainings
		WHERE ($1 = '' OR id > $1)
		ORDER BY id ASC
		LIMIT $2`

	rows, err := h.db.Query(query, cursor, limit)
	if err != nil {
		h.log.Error().Err(err).Msg("querying trainings page")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch training logs."})
		return
	}
	defer rows.Close()

	trainings := []models.Training{}
	for rows.Next() {
		var training models.Training
		var video sql.NullString

		if err := rows.Scan(&training.ID, &training.Date, &training.Description, &training.Hours, &training.Animal, &training.User, &video); err != nil {
			h.log.Error().Err(err).Msg("scanning training row")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch training logs."})
			return
		}

		if video.Valid {
			training.TrainingLogVideo = &video.String
		}
		trainings = append(trainings, training)
	}
	if err := rows.Err(); err != nil {
		h.log.Error().Err(err).Msg("iterating trainings page")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch training logs."})
		return
	}

	var lastID string
	if len(trainings) > 0 {
		lastID = trainings[len(trainings)-1].ID
	}

	c.JSON(http.StatusOK, gin.H{
		"trainings":        trainings,
		"nextStartAfterId": nextCursor(lastID, len(trainings)),
	})
}
