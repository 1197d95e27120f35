package dto

import "tourpack/models"

type CreateInclusionRequest struct {
	Description string `json:"description"`
}

type UpdateInclusionRequest struct {
	Description *string `json:"description"`
	PackageID   *string `json:"packageId"`
}

// Merge returns existing with only the supplied fields replaced
func (r *UpdateInclusionRequest) Merge(existing models.Inclusion) models.Inclusion {
	if r.Description != nil && *r.Description != "" {
		existing.Description = *r.Description
	}
	if r.PackageID != nil && *r.PackageID != "" {
		existing.PackageID = *r.PackageID
	}
	return existing
}
