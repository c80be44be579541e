package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func NewSettingsController(settings SettingsStore) *SettingsController {
	return &SettingsController{settings: settings}
}

type SettingsController struct {
	settings SettingsStore
}

func (ctrl *SettingsController) Get(c *gin.Context) {
	settings, err := ctrl.settings.Get(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (ctrl *SettingsController) UpdateTheme(c *gin.Context) {
	var body struct {
		Theme string `json:"theme"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Theme == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Theme is required"})
		return
	}

	if err := ctrl.settings.SetTheme(c.Request.Context(), body.Theme); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Theme updated successfully", "theme": body.Theme})
}
