package controllers

import (
	"tourpack/dto"
	"tourpack/models"
	"tourpack/response"
	"tourpack/services"
	"tourpack/services/logger"
	"tourpack/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type ActivityController struct {
	db  *gorm.DB
	rdb *redis.Client
	log logger.Logger
}

func NewActivityController(db *gorm.DB, rdb *redis.Client) *ActivityController {
	return &ActivityController{
		db:  db,
		rdb: rdb,
		log: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// invalidateForDay drops the cached views of the package owning a day
func (ctrl *ActivityController) invalidateForDay(c *gin.Context, itineraryID string) {
	if ctrl.rdb == nil {
		return
	}
	var day models.ItineraryDay
	if err := ctrl.db.Select("package_id").First(&day, "id = ?", itineraryID).Error; err == nil {
		services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, day.PackageID)
	}
}

// GetActivities lists an itinerary day's activities
func (ctrl *ActivityController) GetActivities(c *gin.Context) {
	itineraryID := c.Param("id")

	exists, err := itineraryDayExists(ctrl.db, itineraryID)
	if err != nil {
		ctrl.log.Error("checking itinerary day %s: %v", itineraryID, err)
		response.ServerError(c)
		return
	}
	if !exists {
		response.NotFound(c, "Itinerary day not found")
		return
	}

	var activities []models.Activity
	if err := ctrl.db.Where("itinerary_id = ?", itineraryID).Find(&activities).Error; err != nil {
		ctrl.log.Error("listing activities for day %s: %v", itineraryID, err)
		response.ServerError(c)
		return
	}

	response.Success(c, activities)
}

// CreateActivity adds an activity to an itinerary day
func (ctrl *ActivityController) CreateActivity(c *gin.Context) {
	itineraryID := c.Param("id")

	exists, err := itineraryDayExists(ctrl.db, itineraryID)
	if err != nil {
		ctrl.log.Error("checking itinerary day %s: %v", itineraryID, err)
		response.ServerError(c)
		return
	}
	if !exists {
		response.NotFound(c, "Itinerary day not found")
		return
	}

	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := validator.ValidateActivityCreate(&req); err != nil {
		response.BadRequest(c, validationMessage(err))
		return
	}

	activity := models.Activity{Name: req.Name, ItineraryID: itineraryID}
	if err := ctrl.db.Create(&activity).Error; err != nil {
		ctrl.log.Error("creating activity: %v", err)
		response.ServerError(c)
		return
	}

	ctrl.invalidateForDay(c, itineraryID)
	response.Created(c, activity, "Activity added successfully")
}

// GetActivity returns one activity by id
func (ctrl *ActivityController) GetActivity(c *gin.Context) {
	id := c.Param("id")

	var activity models.Activity
	if err := ctrl.db.First(&activity, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			response.NotFound(c, "Activity not found")
			return
		}
		ctrl.log.Error("loading activity %s: %v", id, err)
		response.ServerError(c)
		return
	}

	response.Success(c, activity)
}

// UpdateActivity merges the supplied fields, re-homing the activity when a
// different itinerary day is supplied
func (ctrl *ActivityController) UpdateActivity(c *gin.Context) {
	id := c.Param("id")

	var existing models.Activity
	if err := ctrl.db.First(&existing, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			response.NotFound(c, "Activity not found")
			return
		}
		ctrl.log.Error("loading activity %s: %v", id, err)
		response.ServerError(c)
		return
	}

	var req dto.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if req.Name != nil && *req.Name == "" {
		response.BadRequest(c, "Activity name cannot be empty")
		return
	}

	if req.ItineraryID != nil && *req.ItineraryID != "" && *req.ItineraryID != existing.ItineraryID {
		exists, err := itineraryDayExists(ctrl.db, *req.ItineraryID)
		if err != nil {
			ctrl.log.Error("checking itinerary day %s: %v", *req.ItineraryID, err)
			response.ServerError(c)
			return
		}
		if !exists {
			response.NotFound(c, "Target itinerary day not found")
			return
		}
	}

	merged := req.Merge(existing)
	if err := ctrl.db.Save(&merged).Error; err != nil {
		ctrl.log.Error("updating activity %s: %v", id, err)
		response.ServerError(c)
		return
	}

	ctrl.invalidateForDay(c, existing.ItineraryID)
	if merged.ItineraryID != existing.ItineraryID {
		ctrl.invalidateForDay(c, merged.ItineraryID)
	}
	response.SuccessWithMessage(c, merged, "Activity updated successfully")
}

// DeleteActivity removes an activity
func (ctrl *ActivityController) DeleteActivity(c *gin.Context) {
	id := c.Param("id")

	var existing models.Activity
	if err := ctrl.db.First(&existing, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			response.NotFound(c, "Activity not found")
			return
		}
		ctrl.log.Error("loading activity %s: %v", id, err)
		response.ServerError(c)
		return
	}

	if err := ctrl.db.Delete(&existing).Error; err != nil {
		ctrl.log.Error("deleting activity %s: %v", id, err)
		response.ServerError(c)
		return
	}

	ctrl.invalidateForDay(c, existing.ItineraryID)
	response.SuccessWithMessage(c, nil, "Activity deleted successfully")
}
