package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"haircare-web/config"
	"haircare-web/session"
	"haircare-web/utils"
)

type LanguageInput struct {
	Language string `json:"language" binding:"required,oneof=PT EN"`
}

// SiteController serves the small bits of site chrome the views need: the
// persisted language preference and the contact constants.
type SiteController struct {
	Settings config.Settings
	Sessions *session.Manager
}

// GetLanguage returns the persisted display language.
func (s *SiteController) GetLanguage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"language": s.Sessions.Language(c.Request)})
}

// SetLanguage persists the display language for future visits.
func (s *SiteController) SetLanguage(c *gin.Context) {
	var input LanguageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := s.Sessions.SetLanguage(c.Writer, c.Request, input.Language); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to persist language")
		return
	}
	c.JSON(http.StatusOK, gin.H{"language": input.Language})
}

// Contact returns the externally configured contact details.
func (s *SiteController) Contact(c *gin.Context) {
	phone := s.Settings.ContactPhone
	if phone != "" && !utils.ValidatePhone(phone) {
		phone = ""
	}
	c.JSON(http.StatusOK, gin.H{
		"phone": phone,
		"email": s.Settings.ContactEmail,
	})
}
