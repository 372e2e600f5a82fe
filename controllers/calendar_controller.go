package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hajruuudin/life-line/services"
)

type CalendarController struct {
	calendar *services.GoogleCalendarService
}

func NewCalendarController(calendar *services.GoogleCalendarService) *CalendarController {
	return &CalendarController{calendar: calendar}
}

type CalendarEventInput struct {
	Summary     string    `json:"summary" binding:"required"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	Description string    `json:"description"`
}

// Upcoming lists events on the dedicated calendar over the next `days` days,
// grouped by date and capped at `max_per_day` per day.
func (ctrl *CalendarController) Upcoming(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))
	maxPerDay, _ := strconv.Atoi(c.DefaultQuery("max_per_day", "3"))

	groups, err := ctrl.calendar.UpcomingEvents(c.Request.Context(), currentUserID(c), days, maxPerDay)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": groups})
}

func (ctrl *CalendarController) CreateEvent(c *gin.Context) {
	var input CalendarEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := ctrl.calendar.CreateEvent(c.Request.Context(), currentUserID(c), input.Summary, input.Description, input.StartTime, input.EndTime)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": event, "message": "Event created successfully"})
}
