package dto

import (
	"time"

	"tourpack/models"
)

type CreateReviewRequest struct {
	Name    string `json:"name"`
	Rating  *int   `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

type UpdateReviewRequest struct {
	Name      *string `json:"name"`
	Rating    *int    `json:"rating"`
	Comment   *string `json:"comment"`
	Date      *string `json:"date"`
	PackageID *string `json:"packageId"`
}

// Merge returns existing with only the supplied fields replaced.
// The caller parses and validates the date before merging.
func (r *UpdateReviewRequest) Merge(existing models.Review, parsedDate *time.Time) models.Review {
	if r.Name != nil {
		existing.Name = *r.Name
	}
	if r.Rating != nil {
		existing.Rating = *r.Rating
	}
	if r.Comment != nil {
		existing.Comment = *r.Comment
	}
	if parsedDate != nil {
		existing.Date = *parsedDate
	}
	if r.PackageID != nil && *r.PackageID != "" {
		existing.PackageID = *r.PackageID
	}
	return existing
}

type ReviewListResponse struct {
	Reviews []models.Review `json:"reviews"`
	Meta    ReviewListMeta  `json:"meta"`
}
