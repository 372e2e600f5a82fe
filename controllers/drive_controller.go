package controllers

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/hajruuudin/life-line/services"
)

type DriveController struct {
	drive *services.GoogleDriveService
	n8n   *services.N8NService
}

func NewDriveController(drive *services.GoogleDriveService, n8n *services.N8NService) *DriveController {
	return &DriveController{drive: drive, n8n: n8n}
}

// ListFiles reports the dedicated folder's contents. A user without Google
// credentials gets an empty listing with connected=false, not an error.
func (ctrl *DriveController) ListFiles(c *gin.Context) {
	files, err := ctrl.drive.ListFiles(c.Request.Context(), currentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrGoogleNotConnected) {
			c.JSON(http.StatusOK, gin.H{"files": []any{}, "connected": false, "message": err.Error()})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"files": files, "connected": true})
}

// UploadFile stores a multipart upload in the dedicated folder and hands the
// bytes to the workflow webhook. The webhook is best-effort; its failure
// never fails the upload.
func (ctrl *DriveController) UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		respondError(c, err)
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	user := currentUser(c)

	uploaded, err := ctrl.drive.UploadFile(c.Request.Context(), user.ID, fileHeader.Filename, mimeType, bytes.NewReader(content))
	if err != nil {
		respondError(c, err)
		return
	}

	if !ctrl.n8n.TriggerFileSummary(user.Email, user.ID, fileHeader.Filename, content, mimeType) {
		log.Warnf("summary webhook skipped for file %s", uploaded.Id)
	}

	c.JSON(http.StatusOK, gin.H{"file": uploaded, "message": "File uploaded and processed successfully"})
}

// DeleteFile removes a file from the dedicated folder.
func (ctrl *DriveController) DeleteFile(c *gin.Context) {
	fileID := c.Param("id")
	if err := ctrl.drive.DeleteFile(c.Request.Context(), currentUserID(c), fileID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "File deleted successfully"})
}
