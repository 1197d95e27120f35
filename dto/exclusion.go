package dto

import "tourpack/models"

type CreateExclusionRequest struct {
	Description string `json:"description"`
}

type UpdateExclusionRequest struct {
	Description *string `json:"description"`
	PackageID   *string `json:"packageId"`
}

// Merge returns existing with only the supplied fields replaced
func (r *UpdateExclusionRequest) Merge(existing models.Exclusion) models.Exclusion {
	if r.Description != nil && *r.Description != "" {
		existing.Description = *r.Description
	}
	if r.PackageID != nil && *r.PackageID != "" {
		existing.PackageID = *r.PackageID
	}
	return existing
}
