package controllers

import (
	"errors"
	"strconv"

	apperrors "tourpack/errors"
	"tourpack/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// parseLimitOffset reads the optional pagination parameters. Values that
// fail to parse are ignored, keeping the parameter absent.
func parseLimitOffset(c *gin.Context) (limit *int, offset *int) {
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = &parsed
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			offset = &parsed
		}
	}
	return limit, offset
}

// packageExists checks the aggregate root by id
func packageExists(db *gorm.DB, id string) (bool, error) {
	var count int64
	err := db.Model(&models.Package{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// itineraryDayExists checks an itinerary day by id
func itineraryDayExists(db *gorm.DB, id string) (bool, error) {
	var count int64
	err := db.Model(&models.ItineraryDay{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// isNotFound reports a missing row from the store
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// isDuplicateKey reports a store-level uniqueness rejection. The in-handler
// pre-checks are a fast path; under concurrent writes the unique index is
// the final authority and its rejection surfaces as a conflict.
func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// validationMessage extracts the user-facing text of a validation error
func validationMessage(err error) string {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		return appErr.Message
	}
	return err.Error()
}
