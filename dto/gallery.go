package dto

import "tourpack/models"

type CreateGalleryRequest struct {
	ImageURL string `json:"imageUrl"`
}

type UpdateGalleryRequest struct {
	ImageURL  *string `json:"imageUrl"`
	PackageID *string `json:"packageId"`
}

// Merge returns existing with only the supplied fields replaced
func (r *UpdateGalleryRequest) Merge(existing models.Gallery) models.Gallery {
	if r.ImageURL != nil && *r.ImageURL != "" {
		existing.ImageURL = *r.ImageURL
	}
	if r.PackageID != nil && *r.PackageID != "" {
		existing.PackageID = *r.PackageID
	}
	return existing
}
