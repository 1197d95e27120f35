package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Inclusion is one item covered by the package price
type Inclusion struct {
	ID          string `json:"id" gorm:"primaryKey;size:36"`
	Description string `json:"description"`
	PackageID   string `json:"packageId" gorm:"size:36;index"`
}

func (i *Inclusion) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
