package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal is one meal served on an itinerary day. Names are stored lowercase
// and each meal type appears at most once per day.
type Meal struct {
	ID          string `json:"id" gorm:"primaryKey;size:36"`
	Name        string `json:"name" gorm:"uniqueIndex:idx_meal_itinerary_name"`
	ItineraryID string `json:"itineraryId" gorm:"size:36;uniqueIndex:idx_meal_itinerary_name"`
}

func (m *Meal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
