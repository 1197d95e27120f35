package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Package is the root bookable tour product. All child collections are
// created through it and removed when it is deleted.
type Package struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	PackageTitle string    `json:"packageTitle"`
	Duration     string    `json:"duration"` // free text, e.g. "7D6N"
	Price        float64   `json:"price"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	Location     string    `json:"location,omitempty"`
	MinGroupSize int       `json:"minGroupSize"`
	MaxGroupSize int       `json:"maxGroupSize"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"autoUpdateTime"`

	Gallery        []Gallery        `json:"gallery,omitempty" gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`
	Highlights     []Highlight      `json:"highlights,omitempty" gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`
	Itinerary      []ItineraryDay   `json:"itinerary,omitempty" gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`
	Inclusions     []Inclusion      `json:"inclusions,omitempty" gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`
	Exclusions     []Exclusion      `json:"exclusions,omitempty" gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`
	AvailableDates []AvailableDate  `json:"availableDates,omitempty" gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`
	Reviews        []Review         `json:"reviews,omitempty" gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`
	FAQs           []FAQ            `json:"faqs,omitempty" gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`
}

func (p *Package) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
