package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hajruuudin/life-line/services"
)

type IllnessLogController struct {
	logs *services.IllnessLogService
}

func NewIllnessLogController(logs *services.IllnessLogService) *IllnessLogController {
	return &IllnessLogController{logs: logs}
}

type IllnessLogCreateInput struct {
	FamilyMemberID uint   `json:"family_member_id" binding:"required"`
	IllnessName    string `json:"illness_name" binding:"required"`
	StartDate      string `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate        string `json:"end_date"`                      // YYYY-MM-DD
	Notes          string `json:"notes"`
}

type IllnessLogUpdateInput struct {
	IllnessName *string `json:"illness_name"`
	StartDate   *string `json:"start_date"` // YYYY-MM-DD
	EndDate     *string `json:"end_date"`   // YYYY-MM-DD
	Notes       *string `json:"notes"`
}

func (ctrl *IllnessLogController) List(c *gin.Context) {
	var memberFilter *uint
	if raw := c.Query("family_member_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid family_member_id"})
			return
		}
		memberID := uint(id)
		memberFilter = &memberID
	}

	entries, err := ctrl.logs.List(currentUserID(c), memberFilter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (ctrl *IllnessLogController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	entry, err := ctrl.logs.Get(currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (ctrl *IllnessLogController) Create(c *gin.Context) {
	var input IllnessLogCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startDate, err := parseDate(input.StartDate)
	if err != nil || startDate == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
		return
	}
	endDate, err := parseDate(input.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be YYYY-MM-DD"})
		return
	}

	entry, err := ctrl.logs.Create(c.Request.Context(), currentUserID(c), input.FamilyMemberID, input.IllnessName, *startDate, endDate, input.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (ctrl *IllnessLogController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input IllnessLogUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := services.IllnessLogPatch{
		IllnessName: input.IllnessName,
		Notes:       input.Notes,
	}
	if input.StartDate != nil {
		start, err := parseDate(*input.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
			return
		}
		patch.StartDate = start
	}
	if input.EndDate != nil {
		end, err := parseDate(*input.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be YYYY-MM-DD"})
			return
		}
		patch.EndDate = end
	}

	entry, err := ctrl.logs.Update(currentUserID(c), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (ctrl *IllnessLogController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	deleted, err := ctrl.logs.Delete(currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "illness log not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
