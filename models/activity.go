package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity is one thing done during an itinerary day
type Activity struct {
	ID          string `json:"id" gorm:"primaryKey;size:36"`
	Name        string `json:"name"`
	ItineraryID string `json:"itineraryId" gorm:"size:36;index"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
