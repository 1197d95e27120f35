package controllers

import (
	"time"

	"tourpack/constants"
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

type DateController struct {
	db  *gorm.DB
	rdb *redis.Client
	log logger.Logger
}

func NewDateController(db *gorm.DB, rdb *redis.Client) *DateController {
	return &DateController{
		db:  db,
		rdb: rdb,
		log: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// GetDates lists a package's available dates soonest first
func (ctrl *DateController) GetDates(c *gin.Context) {
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

	var dates []models.AvailableDate
	if err := ctrl.db.Where("package_id = ?", packageID).Order("date ASC").Find(&dates).Error; err != nil {
		ctrl.log.Error("listing dates for package %s: %v", packageID, err)
		response.ServerError(c)
		return
	}

	response.Success(c, dates)
}

// CreateDate adds an available date. The date must parse, must not be in
// the past, and must not already exist for the package.
func (ctrl *DateController) CreateDate(c *gin.Context) {
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

	var req dto.CreateDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := validator.ValidateDateCreate(&req); err != nil {
		response.BadRequest(c, validationMessage(err))
		return
	}

	parsedDate, err := validator.ParseDate(req.Date)
	if err != nil {
		response.BadRequest(c, validationMessage(err))
		return
	}
	if err := validator.EnsureFutureDate(parsedDate); err != nil {
		response.BadRequest(c, validationMessage(err))
		return
	}

	spots := constants.DefaultDateSpots
	if req.Spots != nil {
		if err := validator.ValidateSpots(*req.Spots); err != nil {
			response.BadRequest(c, validationMessage(err))
			return
		}
		spots = *req.Spots
	}

	var existingDate models.AvailableDate
	err = ctrl.db.Where("package_id = ? AND date = ?", packageID, parsedDate).First(&existingDate).Error
	if err == nil {
		response.Conflict(c, "This date is already available for this package")
		return
	}
	if !isNotFound(err) {
		ctrl.log.Error("checking available date: %v", err)
		response.ServerError(c)
		return
	}

	date := models.AvailableDate{Date: parsedDate, Spots: spots, PackageID: packageID}
	if err := ctrl.db.Create(&date).Error; err != nil {
		if isDuplicateKey(err) {
			response.Conflict(c, "This date is already available for this package")
			return
		}
		ctrl.log.Error("creating available date: %v", err)
		response.ServerError(c)
		return
	}

	services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, packageID)
	response.Created(c, date, "Available date added successfully")
}

// GetDate returns one available date by id
func (ctrl *DateController) GetDate(c *gin.Context) {
	id := c.Param("id")

	var date models.AvailableDate
	if err := ctrl.db.First(&date, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			response.NotFound(c, "Available date not found")
			return
		}
		ctrl.log.Error("loading available date %s: %v", id, err)
		response.ServerError(c)
		return
	}

	response.Success(c, date)
}

// UpdateDate merges the supplied fields. A changed date re-runs the
// past-date and uniqueness checks, excluding the row being updated.
func (ctrl *DateController) UpdateDate(c *gin.Context) {
	id := c.Param("id")

	var existing models.AvailableDate
	if err := ctrl.db.First(&existing, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			response.NotFound(c, "Available date not found")
			return
		}
		ctrl.log.Error("loading available date %s: %v", id, err)
		response.ServerError(c)
		return
	}

	var req dto.UpdateDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if req.Spots != nil {
		if err := validator.ValidateSpots(*req.Spots); err != nil {
			response.BadRequest(c, validationMessage(err))
			return
		}
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

	var parsedDate *time.Time
	if req.Date != nil && *req.Date != "" {
		parsed, err := validator.ParseDate(*req.Date)
		if err != nil {
			response.BadRequest(c, validationMessage(err))
			return
		}
		if err := validator.EnsureFutureDate(parsed); err != nil {
			response.BadRequest(c, validationMessage(err))
			return
		}
		parsedDate = &parsed
	}

	targetDate := existing.Date
	if parsedDate != nil {
		targetDate = *parsedDate
	}

	if !targetDate.Equal(existing.Date) || targetPackageID != existing.PackageID {
		var conflict models.AvailableDate
		err := ctrl.db.
			Where("package_id = ? AND date = ? AND id <> ?", targetPackageID, targetDate, id).
			First(&conflict).Error
		if err == nil {
			response.Conflict(c, "This date is already available for this package")
			return
		}
		if !isNotFound(err) {
			ctrl.log.Error("checking date conflict: %v", err)
			response.ServerError(c)
			return
		}
	}

	merged := req.Merge(existing, parsedDate)
	if err := ctrl.db.Save(&merged).Error; err != nil {
		if isDuplicateKey(err) {
			response.Conflict(c, "This date is already available for this package")
			return
		}
		ctrl.log.Error("updating available date %s: %v", id, err)
		response.ServerError(c)
		return
	}

	services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, existing.PackageID)
	if merged.PackageID != existing.PackageID {
		services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, merged.PackageID)
	}
	response.SuccessWithMessage(c, merged, "Available date updated successfully")
}

// DeleteDate removes an available date
func (ctrl *DateController) DeleteDate(c *gin.Context) {
	id := c.Param("id")

	var existing models.AvailableDate
	if err := ctrl.db.First(&existing, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			response.NotFound(c, "Available date not found")
			return
		}
		ctrl.log.Error("loading available date %s: %v", id, err)
		response.ServerError(c)
		return
	}

	if err := ctrl.db.Delete(&existing).Error; err != nil {
		ctrl.log.Error("deleting available date %s: %v", id, err)
		response.ServerError(c)
		return
	}

	services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, existing.PackageID)
	response.SuccessWithMessage(c, nil, "Available date deleted successfully")
}
