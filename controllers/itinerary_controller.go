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

type ItineraryController struct {
	db  *gorm.DB
	rdb *redis.Client
	svc *services.PackageService
	log logger.Logger
}

func NewItineraryController(db *gorm.DB, rdb *redis.Client) *ItineraryController {
	return &ItineraryController{
		db:  db,
		rdb: rdb,
		svc: services.NewPackageService(services.PackageServiceOptions{DB: db}),
		log: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// GetItinerary lists a package's itinerary days ascending, each with its
// activities and meals
func (ctrl *ItineraryController) GetItinerary(c *gin.Context) {
	packageID := c.Param("id")

	exists, err := packageExists(ctrl.db, packageID)
	if err != nil {
		ctrl.log.Error("checking package %s: %v", packageID, err)
		response.ServerError(c)
		return
	}
	if !exists {
		response.NotFound(c, "Package not found")
		return
	}

	var days []models.ItineraryDay
	if err := ctrl.db.
		Preload("Activities").
		Preload("Meals").
		Where("package_id = ?", packageID).
		Order("day ASC").
		Find(&days).Error; err != nil {
		ctrl.log.Error("listing itinerary for package %s: %v", packageID, err)
		response.ServerError(c)
		return
	}

	response.Success(c, days)
}

// CreateItineraryDay adds a day to a package's itinerary. Day numbers are
// unique within a package; the pre-check gives the friendly message and
// the unique index backs it up under concurrent creates.
func (ctrl *ItineraryController) CreateItineraryDay(c *gin.Context) {
	packageID := c.Param("id")

	exists, err := packageExists(ctrl.db, packageID)
	if err != nil {
		ctrl.log.Error("checking package %s: %v", packageID, err)
		response.ServerError(c)
		return
	}
	if !exists {
		response.NotFound(c, "Package not found")
		return
	}

	var req dto.CreateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := validator.ValidateItineraryCreate(&req); err != nil {
		response.BadRequest(c, validationMessage(err))
		return
	}

	var existingDay models.ItineraryDay
	err = ctrl.db.Where("package_id = ? AND day = ?", packageID, req.Day).First(&existingDay).Error
	if err == nil {
		response.Conflict(c, validator.DayConflictMessage(req.Day))
		return
	}
	if !isNotFound(err) {
		ctrl.log.Error("checking itinerary day: %v", err)
		response.ServerError(c)
		return
	}

	day := req.ToModel(packageID)
	if err := ctrl.db.Create(&day).Error; err != nil {
		if isDuplicateKey(err) {
			response.Conflict(c, validator.DayConflictMessage(req.Day))
			return
		}
		ctrl.log.Error("creating itinerary day: %v", err)
		response.ServerError(c)
		return
	}

	services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, packageID)
	response.Created(c, day, "Itinerary day added successfully")
}

// GetItineraryDay returns one itinerary day with activities and meals
func (ctrl *ItineraryController) GetItineraryDay(c *gin.Context) {
	id := c.Param("id")

	var day models.ItineraryDay
	if err := ctrl.db.
		Preload("Activities").
		Preload("Meals").
		First(&day, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			response.NotFound(c, "Itinerary day not found")
			return
		}
		ctrl.log.Error("loading itinerary day %s: %v", id, err)
		response.ServerError(c)
		return
	}

	response.Success(c, day)
}

// UpdateItineraryDay merges the supplied fields. A changed day number or
// package re-checks uniqueness against the target package, excluding the
// row being updated so an unchanged value never self-conflicts.
func (ctrl *ItineraryController) UpdateItineraryDay(c *gin.Context) {
	id := c.Param("id")

	var existing models.ItineraryDay
	if err := ctrl.db.First(&existing, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			response.NotFound(c, "Itinerary day not found")
			return
		}
		ctrl.log.Error("loading itinerary day %s: %v", id, err)
		response.ServerError(c)
		return
	}

	var req dto.UpdateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if req.Day != nil && *req.Day <= 0 {
		response.BadRequest(c, "Day must be a positive number")
		return
	}

	targetPackageID := existing.PackageID
	if req.PackageID != nil && *req.PackageID != "" && *req.PackageID != existing.PackageID {
		exists, err := packageExists(ctrl.db, *req.PackageID)
		if err != nil {
			ctrl.log.Error("checking package %s: %v", *req.PackageID, err)
			response.ServerError(c)
			return
		}
		if !exists {
			response.NotFound(c, "Target package not found")
			return
		}
		targetPackageID = *req.PackageID
	}

	targetDay := existing.Day
	if req.Day != nil {
		targetDay = *req.Day
	}

	if targetDay != existing.Day || targetPackageID != existing.PackageID {
		var conflict models.ItineraryDay
		err := ctrl.db.
			Where("package_id = ? AND day = ? AND id <> ?", targetPackageID, targetDay, id).
			First(&conflict).Error
		if err == nil {
			response.Conflict(c, validator.DayUpdateConflictMessage(targetDay))
			return
		}
		if !isNotFound(err) {
			ctrl.log.Error("checking itinerary day conflict: %v", err)
			response.ServerError(c)
			return
		}
	}

	merged := req.Merge(existing)
	if err := ctrl.db.Save(&merged).Error; err != nil {
		if isDuplicateKey(err) {
			response.Conflict(c, validator.DayUpdateConflictMessage(targetDay))
			return
		}
		ctrl.log.Error("updating itinerary day %s: %v", id, err)
		response.ServerError(c)
		return
	}

	services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, existing.PackageID)
	if merged.PackageID != existing.PackageID {
		services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, merged.PackageID)
	}
	response.SuccessWithMessage(c, merged, "Itinerary day updated successfully")
}

// DeleteItineraryDay removes a day together with its activities and meals
func (ctrl *ItineraryController) DeleteItineraryDay(c *gin.Context) {
	id := c.Param("id")

	var existing models.ItineraryDay
	if err := ctrl.db.First(&existing, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			response.NotFound(c, "Itinerary day not found")
			return
		}
		ctrl.log.Error("loading itinerary day %s: %v", id, err)
		response.ServerError(c)
		return
	}

	if err := ctrl.svc.DeleteItineraryDayCascade(id); err != nil {
		ctrl.log.Error("deleting itinerary day %s: %v", id, err)
		response.ServerError(c)
		return
	}

	services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, existing.PackageID)
	response.SuccessWithMessage(c, nil, "Itinerary day deleted successfully")
}
