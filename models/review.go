package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is one customer review of a package
type Review struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"` // 1 to 5
	Comment   string    `json:"comment"`
	Date      time.Time `json:"date"`
	PackageID string    `json:"packageId" gorm:"size:36;index"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
