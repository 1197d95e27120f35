package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Exclusion is one item explicitly not covered by the package price
type Exclusion struct {
	ID          string `json:"id" gorm:"primaryKey;size:36"`
	Description string `json:"description"`
	PackageID   string `json:"packageId" gorm:"size:36;index"`
}

func (e *Exclusion) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
