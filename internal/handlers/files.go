package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"pawtrail/internal/middleware"
)

// UploadFile stores an uploaded file (profile picture or training-log video)
// in the blob store and records the resulting URL on the referenced document.
func (h *Handlers) UploadFile(c *gin.Context) {
	claims := middleware.UserFromContext(c)
	if claims == nil {
		c.JSON(http.StatusForbidden, gin.H{"message": "No token is provided."})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded."})
		return
	}
	defer file.Close()

	dataType := c.PostForm("dataType")
	id := c.PostForm("id")
	if dataType == "" || id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing data type or id."})
		return
	}

	var table, column string
	switch dataType {
	case "user":
		table, column = "users", "profile_picture"
	case "animal":
		table, column = "animals", "profile_picture"
	case "training":
		table, column = "trainings", "training_log_video"
	default:
		// 500 for an unknown dataType is the established contract.
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Invalid dataType."})
		return
	}

	if header.Size > h.cfg.Upload.MaxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"message": "File is too large."})
		return
	}

	// Sniff the content type from the first bytes, then rewind for the upload.
	buffer := make([]byte, 512)
	bytesRead, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error reading file."})
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		h.log.Error().Err(err).Msg("rewinding upload")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to upload file"})
		return
	}
	contentType := mimetype.Detect(buffer[:bytesRead]).String()

	key := fmt.Sprintf("%s/%s/%s", dataType, id, filepath.Base(header.Filename))
	fileURL, err := h.blob.Upload(c.Request.Context(), key, contentType, file)
	if err != nil {
		h.log.Error().Err(err).Str("key", key).Msg("uploading to blob store")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to upload file"})
		return
	}

	result, err := h.db.Exec(`UPDATE `+table+` SET `+column+` = $1 WHERE id = $2`, fileURL, id)
	if err != nil {
		h.log.Error().Err(err).Msg("recording file url")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to upload file"})
		return
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to upload file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "File uploaded successfully.", "fileUrl": fileURL})
}
