package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pawtrail/internal/models"
	"pawtrail/internal/utils"
)

// Register handles user registration.
func (h *Handlers) Register(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}

	firstName, ok := stringField(body, "firstName")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or missing first name."})
		return
	}

	lastName, ok := stringField(body, "lastName")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or missing last name."})
		return
	}

	email, ok := stringField(body, "email")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or missing email."})
		return
	}

	password, ok := stringField(body, "password")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or missing password."})
		return
	}

	profilePicture, ok := optionalStringField(body, "profilePicture")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid data types"})
		return
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		h.log.Error().Err(err).Msg("hashing password")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create user."})
		return
	}

	query := `INSERT INTO users (id, first_name, last_name, email, password, profile_picture)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = h.db.Exec(query, uuid.New().String(), firstName, lastName, email, hashedPassword, profilePicture)
	if err != nil {
		h.log.Error().Err(err).Msg("inserting user")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create user."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User Registered Successfully."})
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// findUserByEmail returns the first user matching the email in id order.
// Email uniqueness is not enforced atomically, so first match wins.
func (h *Handlers) findUserByEmail(email string) (models.User, error) {
	var user models.User
	var profilePicture sql.NullString

	query := `SELECT id, first_name, last_name, email, password, profile_picture
		FROM users WHERE email = $1 ORDER BY id ASC LIMIT 1`
	err := h.db.QueryRow(query, email).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Password,
		&profilePicture,
	)
	if err != nil {
		return models.User{}, err
	}

	if profilePicture.Valid {
		user.ProfilePicture = &profilePicture.String
	}
	return user, nil
}

// Login checks a user's credentials.
func (h *Handlers) Login(c *gin.Context) {
	var creds credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}

	user, err := h.findUserByEmail(creds.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusForbidden, gin.H{"message": "Invalid Email."})
			return
		}
		h.log.Error().Err(err).Msg("querying user for login")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to login."})
		return
	}

	if !utils.CheckPasswordHash(creds.Password, user.Password) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Incorrect Password."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login Successfully."})
}

// Verify checks a user's credentials and issues a bearer token.
func (h *Handlers) Verify(c *gin.Context) {
	var creds credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}

	user, err := h.findUserByEmail(creds.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusForbidden, gin.H{"message": "Invalid Email."})
			return
		}
		h.log.Error().Err(err).Msg("querying user for verify")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to login."})
		return
	}

	if !utils.CheckPasswordHash(creds.Password, user.Password) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Incorrect password."})
		return
	}

	issued, err := h.tokens.Issue(user)
	if err != nil {
		h.log.Error().Err(err).Msg("issuing token")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to login."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login Successfully.", "token": issued})
}
