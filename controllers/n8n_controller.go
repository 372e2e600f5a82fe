package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hajruuudin/life-line/services"
)

type N8NController struct {
	n8n *services.N8NService
}

func NewN8NController(n8n *services.N8NService) *N8NController {
	return &N8NController{n8n: n8n}
}

// Summarize pushes a stored Drive file through the summary workflow. Called
// server-to-server with an API key, not a user session.
func (ctrl *N8NController) Summarize(c *gin.Context) {
	fileID := c.Query("file_id")
	if fileID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_id is required"})
		return
	}

	user := currentUser(c)
	if err := ctrl.n8n.SummarizeFile(c.Request.Context(), user, fileID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Summary workflow triggered"})
}
