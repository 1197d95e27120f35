package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailableDate is one departure date of a package. Dates are truncated to
// midnight and unique per package; spots never goes negative.
type AvailableDate struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Date      time.Time `json:"date" gorm:"uniqueIndex:idx_date_package_date"`
	Spots     int       `json:"spots"`
	PackageID string    `json:"packageId" gorm:"size:36;uniqueIndex:idx_date_package_date"`
}

func (d *AvailableDate) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
