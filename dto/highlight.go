package dto

import "tourpack/models"

type CreateHighlightRequest struct {
	Description string `json:"description"`
}

type UpdateHighlightRequest struct {
	Description *string `json:"description"`
	PackageID   *string `json:"packageId"`
}

// Merge returns existing with only the supplied fields replaced
func (r *UpdateHighlightRequest) Merge(existing models.Highlight) models.Highlight {
	if r.Description != nil && *r.Description != "" {
		existing.Description = *r.Description
	}
	if r.PackageID != nil && *r.PackageID != "" {
		existing.PackageID = *r.PackageID
	}
	return existing
}
