package dto

import "tourpack/models"

type CreateFAQRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type UpdateFAQRequest struct {
	Question  *string `json:"question"`
	Answer    *string `json:"answer"`
	PackageID *string `json:"packageId"`
}

// Merge returns existing with only the supplied fields replaced
func (r *UpdateFAQRequest) Merge(existing models.FAQ) models.FAQ {
	if r.Question != nil {
		existing.Question = *r.Question
	}
	if r.Answer != nil {
		existing.Answer = *r.Answer
	}
	if r.PackageID != nil && *r.PackageID != "" {
		existing.PackageID = *r.PackageID
	}
	return existing
}
