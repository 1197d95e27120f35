package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FAQ is one question and answer shown on the package page
type FAQ struct {
	ID        string `json:"id" gorm:"primaryKey;size:36"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	PackageID string `json:"packageId" gorm:"size:36;index"`
}

func (f *FAQ) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
