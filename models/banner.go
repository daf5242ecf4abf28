package models

type Banner struct {
	ID     string `gorm:"primaryKey" json:"id"`
	Title  string `json:"title"`
	Image  string `gorm:"not null" json:"image"`
	Link   string `json:"link,omitempty"`
	Active bool   `json:"active"`
}
