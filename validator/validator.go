package validator

import (
	"fmt"
	"strings"
	"time"

	"tourpack/constants"
	"tourpack/dto"
	"tourpack/errors"
)

// ValidateOrderParams checks list sort parameters against the allow-lists
func ValidateOrderParams(orderBy, orderDir string) error {
	if _, ok := constants.PackageOrderFields[orderBy]; !ok {
		return errors.NewAppError(errors.ErrCodeValidation,
			"Invalid orderBy parameter. Must be one of: "+strings.Join(constants.PackageOrderFieldNames, ", "), nil)
	}

	valid := false
	for _, dir := range constants.OrderDirections {
		if orderDir == dir {
			valid = true
			break
		}
	}
	if !valid {
		return errors.NewAppError(errors.ErrCodeValidation,
			"Invalid orderDir parameter. Must be one of: "+strings.Join(constants.OrderDirections, ", "), nil)
	}

	return nil
}

// ValidatePackageCreate checks presence of every required field at once,
// then type and range constraints
func ValidatePackageCreate(req *dto.CreatePackageRequest) error {
	var missing []string
	if req.PackageTitle == "" {
		missing = append(missing, "packageTitle")
	}
	if req.Duration == "" {
		missing = append(missing, "duration")
	}
	if req.Price == 0 {
		missing = append(missing, "price")
	}
	if req.Description == "" {
		missing = append(missing, "description")
	}
	if req.Image == "" {
		missing = append(missing, "image")
	}
	if len(missing) > 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField,
			"Missing required fields: "+strings.Join(missing, ", "), nil)
	}

	if req.Price <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Price must be a positive number", nil)
	}

	minSize := constants.DefaultMinGroupSize
	maxSize := constants.DefaultMaxGroupSize
	if req.MinGroupSize != nil {
		minSize = *req.MinGroupSize
	}
	if req.MaxGroupSize != nil {
		maxSize = *req.MaxGroupSize
	}
	return ValidateGroupSizes(minSize, maxSize)
}

// ValidatePackageUpdate checks only the fields present in the patch
func ValidatePackageUpdate(req *dto.UpdatePackageRequest) error {
	if req.PackageTitle != nil && *req.PackageTitle == "" {
		return errors.NewAppError(errors.ErrCodeValidation, "Package title cannot be empty", nil)
	}
	if req.Duration != nil && *req.Duration == "" {
		return errors.NewAppError(errors.ErrCodeValidation, "Duration cannot be empty", nil)
	}
	if req.Description != nil && *req.Description == "" {
		return errors.NewAppError(errors.ErrCodeValidation, "Description cannot be empty", nil)
	}
	if req.Image != nil && *req.Image == "" {
		return errors.NewAppError(errors.ErrCodeValidation, "Image cannot be empty", nil)
	}
	if req.Price != nil && *req.Price <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Price must be a positive number", nil)
	}
	return nil
}

// ValidateGroupSizes enforces positive sizes and min not above max
func ValidateGroupSizes(minSize, maxSize int) error {
	if minSize <= 0 || maxSize <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidRange, "Group sizes must be positive integers", nil)
	}
	if minSize > maxSize {
		return errors.NewAppError(errors.ErrCodeInvalidRange, "minGroupSize cannot be greater than maxGroupSize", nil)
	}
	return nil
}

// ValidateItineraryCreate checks presence of day, title and description
func ValidateItineraryCreate(req *dto.CreateItineraryRequest) error {
	var missing []string
	if req.Day == 0 {
		missing = append(missing, "day")
	}
	if req.Title == "" {
		missing = append(missing, "title")
	}
	if req.Description == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField,
			"Missing required fields: "+strings.Join(missing, ", "), nil)
	}

	if req.Day < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidRange, "Day must be a positive number", nil)
	}
	return nil
}

// ValidateReviewCreate checks presence of name, rating and comment, then
// the rating range
func ValidateReviewCreate(req *dto.CreateReviewRequest) error {
	var missing []string
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if req.Rating == nil {
		missing = append(missing, "rating")
	}
	if req.Comment == "" {
		missing = append(missing, "comment")
	}
	if len(missing) > 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField,
			"Missing required fields: "+strings.Join(missing, ", "), nil)
	}

	return ValidateRating(*req.Rating)
}

// ValidateFAQCreate checks presence of question and answer at once
func ValidateFAQCreate(req *dto.CreateFAQRequest) error {
	var missing []string
	if req.Question == "" {
		missing = append(missing, "question")
	}
	if req.Answer == "" {
		missing = append(missing, "answer")
	}
	if len(missing) > 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField,
			"Missing required fields: "+strings.Join(missing, ", "), nil)
	}
	return nil
}

// ValidateGalleryCreate requires the image reference
func ValidateGalleryCreate(req *dto.CreateGalleryRequest) error {
	if req.ImageURL == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Image URL is required", nil)
	}
	return nil
}

// ValidateHighlightCreate requires the highlight text
func ValidateHighlightCreate(req *dto.CreateHighlightRequest) error {
	if req.Description == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Highlight description is required", nil)
	}
	return nil
}

// ValidateInclusionCreate requires the inclusion text
func ValidateInclusionCreate(req *dto.CreateInclusionRequest) error {
	if req.Description == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Inclusion description is required", nil)
	}
	return nil
}

// ValidateExclusionCreate requires the exclusion text
func ValidateExclusionCreate(req *dto.CreateExclusionRequest) error {
	if req.Description == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Exclusion description is required", nil)
	}
	return nil
}

// ValidateActivityCreate requires the activity name
func ValidateActivityCreate(req *dto.CreateActivityRequest) error {
	if req.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Activity name is required", nil)
	}
	return nil
}

// ValidateDateCreate requires the calendar date
func ValidateDateCreate(req *dto.CreateDateRequest) error {
	if req.Date == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Date is required", nil)
	}
	return nil
}

// ValidateRating enforces the 1 to 5 range
func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return errors.NewAppError(errors.ErrCodeInvalidRange, "Rating must be a number between 1 and 5", nil)
	}
	return nil
}

// NormalizeMealName lowercases the name and checks it against the
// canonical set; rejection lists the valid values
func NormalizeMealName(name string) (string, error) {
	if name == "" {
		return "", errors.NewAppError(errors.ErrCodeRequiredField, "Meal name is required", nil)
	}

	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, valid := range constants.ValidMealNames {
		if normalized == valid {
			return normalized, nil
		}
	}
	return "", errors.NewAppError(errors.ErrCodeInvalidEnum,
		"Meal name must be one of: "+strings.Join(constants.ValidMealNames, ", "), nil)
}

// ValidateSpots rejects negative spot counts
func ValidateSpots(spots int) error {
	if spots < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidRange, "Number of spots cannot be negative", nil)
	}
	return nil
}

// ParseDate accepts an ISO calendar date, with or without a time part,
// and truncates it to midnight UTC
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, value)
	}
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat,
			"Invalid date format. Please use ISO format (YYYY-MM-DD)", err)
	}
	return TruncateToDay(parsed), nil
}

// TruncateToDay drops the time-of-day component
func TruncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EnsureFutureDate rejects dates earlier than today. Today itself passes;
// the comparison ignores time of day.
func EnsureFutureDate(date time.Time) error {
	today := TruncateToDay(time.Now())
	if date.Before(today) {
		return errors.NewAppError(errors.ErrCodeValidation, "Date must be in the future", nil)
	}
	return nil
}

// DayConflictMessage names the duplicated day number on create
func DayConflictMessage(day int) string {
	return fmt.Sprintf("Itinerary day %d already exists for this package", day)
}

// DayUpdateConflictMessage names the duplicated day number on update
func DayUpdateConflictMessage(day int) string {
	return fmt.Sprintf("Day %d already exists in this package's itinerary", day)
}

// MealConflictMessage names the duplicated meal, echoing the submitted
// spelling the way the caller sent it
func MealConflictMessage(name string) string {
	return fmt.Sprintf("%s already exists for this itinerary day", name)
}
