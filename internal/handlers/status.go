package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"Hello": "World", "Version": 2})
}

func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"healthy": true})
}
