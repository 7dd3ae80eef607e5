package domain

// Equipment Model
type Equipment struct {
	ID          uint    `gorm:"primaryKey" json:"id"`          // Primary key
	Name        string  `gorm:"not null" json:"name"`          // Display name
	Description string  `gorm:"default:''" json:"description"` // Optional description
	Price       float64 `gorm:"not null" json:"price"`         // Rental price
	Available   bool    `gorm:"not null" json:"available"`     // Availability flag, defaulted by the create handler
}
