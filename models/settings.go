package models

// Settings is a single-row table: the checkout recipient number and the
// optional analytics pixel the storefront injects.
type Settings struct {
	ID             uint   `gorm:"primaryKey" json:"-"`
	WhatsappNumber string `json:"whatsappNumber"`
	PixelID        string `json:"pixelId,omitempty"`
}
