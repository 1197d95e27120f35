package dto

import (
	"time"

	"tourpack/models"
)

type CreateDateRequest struct {
	Date  string `json:"date"`
	Spots *int   `json:"spots"`
}

type UpdateDateRequest struct {
	Date      *string `json:"date"`
	Spots     *int    `json:"spots"`
	PackageID *string `json:"packageId"`
}

// Merge returns existing with only the supplied fields replaced.
// The caller parses and validates the date before merging.
func (r *UpdateDateRequest) Merge(existing models.AvailableDate, parsedDate *time.Time) models.AvailableDate {
	if parsedDate != nil {
		existing.Date = *parsedDate
	}
	if r.Spots != nil {
		existing.Spots = *r.Spots
	}
	if r.PackageID != nil && *r.PackageID != "" {
		existing.PackageID = *r.PackageID
	}
	return existing
}
