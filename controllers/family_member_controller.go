package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hajruuudin/life-line/services"
)

type FamilyMemberController struct {
	members *services.FamilyMemberService
}

func NewFamilyMemberController(members *services.FamilyMemberService) *FamilyMemberController {
	return &FamilyMemberController{members: members}
}

type FamilyMemberCreateInput struct {
	Name        string `json:"name" binding:"required"`
	DateOfBirth string `json:"date_of_birth"` // YYYY-MM-DD
	Gender      string `json:"gender"`
	Profession  string `json:"profession"`
	HealthNotes string `json:"health_notes"`
}

type FamilyMemberUpdateInput struct {
	Name        *string `json:"name"`
	DateOfBirth *string `json:"date_of_birth"` // YYYY-MM-DD
	Gender      *string `json:"gender"`
	Profession  *string `json:"profession"`
	HealthNotes *string `json:"health_notes"`
}

func (ctrl *FamilyMemberController) List(c *gin.Context) {
	members, err := ctrl.members.List(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

func (ctrl *FamilyMemberController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	member, err := ctrl.members.Get(currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (ctrl *FamilyMemberController) Create(c *gin.Context) {
	var input FamilyMemberCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dateOfBirth, err := parseDate(input.DateOfBirth)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date_of_birth must be YYYY-MM-DD"})
		return
	}

	member, err := ctrl.members.Create(currentUserID(c), input.Name, dateOfBirth, input.Gender, input.Profession, input.HealthNotes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

func (ctrl *FamilyMemberController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input FamilyMemberUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := services.FamilyMemberPatch{
		Name:        input.Name,
		Gender:      input.Gender,
		Profession:  input.Profession,
		HealthNotes: input.HealthNotes,
	}
	if input.DateOfBirth != nil {
		dob, err := parseDate(*input.DateOfBirth)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date_of_birth must be YYYY-MM-DD"})
			return
		}
		patch.DateOfBirth = dob
	}

	member, err := ctrl.members.Update(currentUserID(c), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (ctrl *FamilyMemberController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	deleted, err := ctrl.members.Delete(currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "family member not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
