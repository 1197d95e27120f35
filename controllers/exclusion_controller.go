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

type ExclusionController struct {
	db  *gorm.DB
	rdb *redis.Client
	log logger.Logger
}

func NewExclusionController(db *gorm.DB, rdb *redis.Client) *ExclusionController {
	return &ExclusionController{
		db:  db,
		rdb: rdb,
		log: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// GetExclusions lists a package's exclusions
func (ctrl *ExclusionController) GetExclusions(c *gin.Context) {
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

	var items []models.Exclusion
	if err := ctrl.db.Where("package_id = ?", packageID).Find(&items).Error; err != nil {
		ctrl.log.Error("listing exclusions for package %s: %v", packageID, err)
		response.ServerError(c)
		return
	}

	response.Success(c, items)
}

// CreateExclusion adds a exclusion to a package
func (ctrl *ExclusionController) CreateExclusion(c *gin.Context) {
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

	var req dto.CreateExclusionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := validator.ValidateExclusionCreate(&req); err != nil {
		response.BadRequest(c, validationMessage(err))
		return
	}

	item := models.Exclusion{Description: req.Description, PackageID: packageID}
	if err := ctrl.db.Create(&item).Error; err != nil {
		ctrl.log.Error("creating exclusion: %v", err)
		response.ServerError(c)
		return
	}

	services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, packageID)
	response.Created(c, item, "Exclusion added successfully")
}

// GetExclusionDetail returns one exclusion by id
func (ctrl *ExclusionController) GetExclusionDetail(c *gin.Context) {
	id := c.Param("id")

	var item models.Exclusion
	if err := ctrl.db.First(&item, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			response.NotFound(c, "Exclusion not found")
			return
		}
		ctrl.log.Error("loading exclusion %s: %v", id, err)
		response.ServerError(c)
		return
	}

	response.Success(c, item)
}

// UpdateExclusion merges the supplied fields, re-homing the exclusion when a
// different package id is supplied
func (ctrl *ExclusionController) UpdateExclusion(c *gin.Context) {
	id := c.Param("id")

	var existing models.Exclusion
	if err := ctrl.db.First(&existing, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			response.NotFound(c, "Exclusion not found")
			return
		}
		ctrl.log.Error("loading exclusion %s: %v", id, err)
		response.ServerError(c)
		return
	}

	var req dto.UpdateExclusionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if req.Description != nil && *req.Description == "" {
		response.BadRequest(c, "Exclusion description cannot be empty")
		return
	}

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
	}

	merged := req.Merge(existing)
	if err := ctrl.db.Save(&merged).Error; err != nil {
		ctrl.log.Error("updating exclusion %s: %v", id, err)
		response.ServerError(c)
		return
	}

	services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, existing.PackageID)
	if merged.PackageID != existing.PackageID {
		services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, merged.PackageID)
	}
	response.SuccessWithMessage(c, merged, "Exclusion updated successfully")
}

// DeleteExclusion removes a exclusion
func (ctrl *ExclusionController) DeleteExclusion(c *gin.Context) {
	id := c.Param("id")

	var existing models.Exclusion
	if err := ctrl.db.First(&existing, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			response.NotFound(c, "Exclusion not found")
			return
		}
		ctrl.log.Error("loading exclusion %s: %v", id, err)
		response.ServerError(c)
		return
	}

	if err := ctrl.db.Delete(&existing).Error; err != nil {
		ctrl.log.Error("deleting exclusion %s: %v", id, err)
		response.ServerError(c)
		return
	}

	services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, existing.PackageID)
	response.SuccessWithMessage(c, nil, "Exclusion deleted successfully")
}
