package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hajruuudin/life-line/services"
)

type MedicationController struct {
	medications *services.MedicationService
}

func NewMedicationController(medications *services.MedicationService) *MedicationController {
	return &MedicationController{medications: medications}
}

type MedicationCreateInput struct {
	Name           string `json:"name" binding:"required"`
	Quantity       int    `json:"quantity" binding:"required"`
	ExpirationDate string `json:"expiration_date"` // YYYY-MM-DD
}

type MedicationUpdateInput struct {
	Name           *string `json:"name"`
	Quantity       *int    `json:"quantity"`
	ExpirationDate *string `json:"expiration_date"` // YYYY-MM-DD
}

func (ctrl *MedicationController) List(c *gin.Context) {
	medications, err := ctrl.medications.List(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, medications)
}

func (ctrl *MedicationController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	medication, err := ctrl.medications.Get(currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, medication)
}

// CreateOrRestock upserts by case-insensitive name: a new medication is
// created, an existing one has its quantity incremented.
func (ctrl *MedicationController) CreateOrRestock(c *gin.Context) {
	var input MedicationCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expiration, err := parseDate(input.ExpirationDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expiration_date must be YYYY-MM-DD"})
		return
	}

	medication, err := ctrl.medications.CreateOrRestock(currentUserID(c), input.Name, input.Quantity, expiration)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, medication)
}

func (ctrl *MedicationController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input MedicationUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := services.MedicationPatch{
		Name:     input.Name,
		Quantity: input.Quantity,
	}
	if input.ExpirationDate != nil {
		expiration, err := parseDate(*input.ExpirationDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "expiration_date must be YYYY-MM-DD"})
			return
		}
		patch.ExpirationDate = expiration
	}

	medication, err := ctrl.medications.Update(currentUserID(c), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, medication)
}

func (ctrl *MedicationController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	deleted, err := ctrl.medications.Delete(currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "medication not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
