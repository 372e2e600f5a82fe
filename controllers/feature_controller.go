package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hajruuudin/life-line/config"
)

type FeatureController struct {
	cfg *config.Config
}

func NewFeatureController(cfg *config.Config) *FeatureController {
	return &FeatureController{cfg: cfg}
}

// Flags exposes the feature toggles the frontend keys off.
func (ctrl *FeatureController) Flags(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ai_chat_enabled":                ctrl.cfg.FeatureAIChat,
		"ai_illness_suggestions_enabled": ctrl.cfg.FeatureAIIllnessSuggestions,
		"ai_drive_enabled":               ctrl.cfg.FeatureAIDrive,
	})
}
