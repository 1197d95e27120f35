package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gallery is one image of a package's photo gallery
type Gallery struct {
	ID        string `json:"id" gorm:"primaryKey;size:36"`
	ImageURL  string `json:"imageUrl"`
	PackageID string `json:"packageId" gorm:"size:36;index"`
}

func (g *Gallery) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}
