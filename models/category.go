package models

type Category struct {
	ID          string   `gorm:"primaryKey" json:"id"`
	Name        string   `gorm:"not null" json:"name"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	ProductIDs  []string `gorm:"serializer:json" json:"productIds"`
}
