package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hajruuudin/life-line/services"
)

type MedicationUsageController struct {
	usage *services.MedicationUsageService
}

func NewMedicationUsageController(usage *services.MedicationUsageService) *MedicationUsageController {
	return &MedicationUsageController{usage: usage}
}

type MedicationUsageInput struct {
	FamilyMemberID uint `json:"family_member_id" binding:"required"`
	MedicationID   uint `json:"medication_id" binding:"required"`
	QuantityUsed   *int `json:"quantity_used"` // defaults to 1
}

// Log records a usage event and decrements the medication stock in one
// transaction.
func (ctrl *MedicationUsageController) Log(c *gin.Context) {
	var input MedicationUsageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quantityUsed := 1
	if input.QuantityUsed != nil {
		quantityUsed = *input.QuantityUsed
	}

	usage, err := ctrl.usage.LogUsage(currentUserID(c), input.FamilyMemberID, input.MedicationID, quantityUsed)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, usage)
}

func (ctrl *MedicationUsageController) List(c *gin.Context) {
	logs, err := ctrl.usage.List(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
