package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/hajruuudin/life-line/models"
	"github.com/hajruuudin/life-line/services"
)

func currentUserID(c *gin.Context) uint {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func currentUser(c *gin.Context) *models.User {
	if v, ok := c.Get("user"); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// parseDate accepts the YYYY-MM-DD wire format used by the frontend.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// respondError maps a service error onto the HTTP taxonomy: validation and
// business-rule failures are 400, missing or foreign-owned records are 404,
// everything else is a generic 500 with the detail only logged server-side.
func respondError(c *gin.Context, err error) {
	var validation *services.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message})
		return
	}

	var insufficient *services.InsufficientStockError
	if errors.As(err, &insufficient) {
		c.JSON(http.StatusBadRequest, gin.H{"error": insufficient.Error()})
		return
	}

	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if errors.Is(err, services.ErrGoogleNotConnected) {
		c.JSON(http.StatusBadRequest, gin.H{"error": services.ErrGoogleNotConnected.Error()})
		return
	}

	log.Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
