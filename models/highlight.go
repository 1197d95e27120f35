package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Highlight is one selling point shown on the package page
type Highlight struct {
	ID          string `json:"id" gorm:"primaryKey;size:36"`
	Description string `json:"description"`
	PackageID   string `json:"packageId" gorm:"size:36;index"`
}

func (h *Highlight) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
