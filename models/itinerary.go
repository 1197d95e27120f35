package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItineraryDay is one dated segment of a package's schedule. Day numbers
// are unique within a package; activities and meals live and die with it.
type ItineraryDay struct {
	ID            string `json:"id" gorm:"primaryKey;size:36"`
	Day           int    `json:"day" gorm:"uniqueIndex:idx_itinerary_package_day"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Accommodation string `json:"accommodation,omitempty"`
	PackageID     string `json:"packageId" gorm:"size:36;uniqueIndex:idx_itinerary_package_day"`

	Activities []Activity `json:"activities,omitempty" gorm:"foreignKey:ItineraryID;constraint:OnDelete:CASCADE"`
	Meals      []Meal     `json:"meals,omitempty" gorm:"foreignKey:ItineraryID;constraint:OnDelete:CASCADE"`
}

func (d *ItineraryDay) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
