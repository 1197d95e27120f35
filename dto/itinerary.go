package dto

import "tourpack/models"

type CreateItineraryRequest struct {
	Day           int    `json:"day"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Accommodation string `json:"accommodation"`
}

func (r *CreateItineraryRequest) ToModel(packageID string) models.ItineraryDay {
	return models.ItineraryDay{
		Day:           r.Day,
		Title:         r.Title,
		Description:   r.Description,
		Accommodation: r.Accommodation,
		PackageID:     packageID,
	}
}

type UpdateItineraryRequest struct {
	Day           *int    `json:"day"`
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Accommodation *string `json:"accommodation"`
	PackageID     *string `json:"packageId"`
}

// Merge returns existing with only the supplied fields replaced
func (r *UpdateItineraryRequest) Merge(existing models.ItineraryDay) models.ItineraryDay {
	if r.Day != nil {
		existing.Day = *r.Day
	}
	if r.Title != nil {
		existing.Title = *r.Title
	}
	if r.Description != nil {
		existing.Description = *r.Description
	}
	if r.Accommodation != nil {
		existing.Accommodation = *r.Accommodation
	}
	if r.PackageID != nil && *r.PackageID != "" {
		existing.PackageID = *r.PackageID
	}
	return existing
}

type CreateActivityRequest struct {
	Name string `json:"name"`
}

type UpdateActivityRequest struct {
	Name        *string `json:"name"`
	ItineraryID *string `json:"itineraryId"`
}

// Merge returns existing with only the supplied fields replaced
func (r *UpdateActivityRequest) Merge(existing models.Activity) models.Activity {
	if r.Name != nil && *r.Name != "" {
		existing.Name = *r.Name
	}
	if r.ItineraryID != nil && *r.ItineraryID != "" {
		existing.ItineraryID = *r.ItineraryID
	}
	return existing
}

type CreateMealRequest struct {
	Name string `json:"name"`
}

type UpdateMealRequest struct {
	Name        *string `json:"name"`
	ItineraryID *string `json:"itineraryId"`
}

// Merge returns existing with only the supplied fields replaced.
// The caller normalizes the meal name before merging.
func (r *UpdateMealRequest) Merge(existing models.Meal, normalizedName string) models.Meal {
	if normalizedName != "" {
		existing.Name = normalizedName
	}
	if r.ItineraryID != nil && *r.ItineraryID != "" {
		existing.ItineraryID = *r.ItineraryID
	}
	return existing
}
