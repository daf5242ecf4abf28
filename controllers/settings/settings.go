package settingsController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sr-Das-Ofertas/probotsv2/models"
)

type SettingsInput struct {
	WhatsappNumber string `json:"whatsappNumber" binding:"required"`
	PixelID        string `json:"pixelId"`
}

// GetCurrent returns the single settings row, or an empty record if nothing
// has been saved yet.
func GetCurrent(db *gorm.DB) (models.Settings, error) {
	var settings models.Settings
	err := db.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Settings{}, nil
	}
	return settings, err
}

// Source hands the current settings to other controllers without exposing
// the database.
type Source struct {
	db *gorm.DB
}

func NewSource(db *gorm.DB) *Source {
	return &Source{db: db}
}

func (s *Source) Current() (models.Settings, error) {
	return GetCurrent(s.db)
}

// GET /settings
func GetSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := GetCurrent(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

// POST /admin/settings
func UpdateSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SettingsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "whatsappNumber is required"})
			return
		}

		settings, err := GetCurrent(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}

		settings.WhatsappNumber = input.WhatsappNumber
		settings.PixelID = input.PixelID
		if err := db.Save(&settings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Settings updated", "settings": settings})
	}
}
