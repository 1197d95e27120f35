package dto

import (
	"tourpack/constants"
	"tourpack/models"
)

type CreatePackageRequest struct {
	PackageTitle string  `json:"packageTitle"`
	Duration     string  `json:"duration"`
	Price        float64 `json:"price"`
	Description  string  `json:"description"`
	Image        string  `json:"image"`
	Location     string  `json:"location"`
	MinGroupSize *int    `json:"minGroupSize"`
	MaxGroupSize *int    `json:"maxGroupSize"`
}

// ToModel builds the package row, applying group-size defaults
func (r *CreatePackageRequest) ToModel() models.Package {
	pkg := models.Package{
		PackageTitle: r.PackageTitle,
		Duration:     r.Duration,
		Price:        r.Price,
		Description:  r.Description,
		Image:        r.Image,
		Location:     r.Location,
		MinGroupSize: constants.DefaultMinGroupSize,
		MaxGroupSize: constants.DefaultMaxGroupSize,
	}
	if r.MinGroupSize != nil {
		pkg.MinGroupSize = *r.MinGroupSize
	}
	if r.MaxGroupSize != nil {
		pkg.MaxGroupSize = *r.MaxGroupSize
	}
	return pkg
}

type UpdatePackageRequest struct {
	PackageTitle *string  `json:"packageTitle"`
	Duration     *string  `json:"duration"`
	Price        *float64 `json:"price"`
	Description  *string  `json:"description"`
	Image        *string  `json:"image"`
	Location     *string  `json:"location"`
	MinGroupSize *int     `json:"minGroupSize"`
	MaxGroupSize *int     `json:"maxGroupSize"`
}

// Merge returns existing with only the supplied fields replaced
func (r *UpdatePackageRequest) Merge(existing models.Package) models.Package {
	if r.PackageTitle != nil {
		existing.PackageTitle = *r.PackageTitle
	}
	if r.Duration != nil {
		existing.Duration = *r.Duration
	}
	if r.Price != nil {
		existing.Price = *r.Price
	}
	if r.Description != nil {
		existing.Description = *r.Description
	}
	if r.Image != nil {
		existing.Image = *r.Image
	}
	if r.Location != nil {
		existing.Location = *r.Location
	}
	if r.MinGroupSize != nil {
		existing.MinGroupSize = *r.MinGroupSize
	}
	if r.MaxGroupSize != nil {
		existing.MaxGroupSize = *r.MaxGroupSize
	}
	return existing
}

// PackageCounts mirrors the child counts shown on catalog rows
type PackageCounts struct {
	Gallery int64 `json:"gallery"`
	Reviews int64 `json:"reviews"`
}

type PackageListItem struct {
	models.Package
	Counts PackageCounts `json:"counts"`
}

type PackageListResponse struct {
	Packages []PackageListItem `json:"packages"`
	Meta     ListMeta          `json:"meta"`
}

// ScoredPackage is a fuzzy-search hit with its relevance score
type ScoredPackage struct {
	Package models.Package `json:"package"`
	Score   int            `json:"score"`
}
