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

type InclusionController struct {
	db  *gorm.DB
	rdb *redis.Client
	log logger.Logger
}

func NewInclusionController(db *gorm.DB, rdb *redis.Client) *InclusionController {
	return &InclusionController{
		db:  db,
		rdb: rdb,
		log: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// GetInclusions lists a package's inclusions
func (ctrl *InclusionController) GetInclusions(c *gin.Context) {
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

	var items []models.Inclusion
	if err := ctrl.db.Where("package_id = ?", packageID).Find(&items).Error; err != nil {
		ctrl.log.Error("listing inclusions for package %s: %v", packageID, err)
		response.ServerError(c)
		return
	}

	response.Success(c, items)
}

// CreateInclusion adds a inclusion to a package
func (ctrl *InclusionController) CreateInclusion(c *gin.Context) {
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

	var req dto.CreateInclusionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := validator.ValidateInclusionCreate(&req); err != nil {
		response.BadRequest(c, validationMessage(err))
		return
	}

	item := models.Inclusion{Description: req.Description, PackageID: packageID}
	if err := ctrl.db.Create(&item).Error; err != nil {
		ctrl.log.Error("creating inclusion: %v", err)
		response.ServerError(c)
		return
	}

	services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, packageID)
	response.Created(c, item, "Inclusion added successfully")
}

// GetInclusionDetail returns one inclusion by id
func (ctrl *InclusionController) GetInclusionDetail(c *gin.Context) {
	id := c.Param("id")

	var item models.Inclusion
	if err := ctrl.db.First(&item, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			response.NotFound(c, "Inclusion not found")
			return
		}
		ctrl.log.Error("loading inclusion %s: %v", id, err)
		response.ServerError(c)
		return
	}

	response.Success(c, item)
}

// UpdateInclusion merges the supplied fields, re-homing the inclusion when a
// different package id is supplied
func (ctrl *InclusionController) UpdateInclusion(c *gin.Context) {
	id := c.Param("id")

	var existing models.Inclusion
	if err := ctrl.db.First(&existing, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			response.NotFound(c, "Inclusion not found")
			return
		}
		ctrl.log.Error("loading inclusion %s: %v", id, err)
		response.ServerError(c)
		return
	}

	var req dto.UpdateInclusionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if req.Description != nil && *req.Description == "" {
		response.BadRequest(c, "Inclusion description cannot be empty")
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
		ctrl.log.Error("updating inclusion %s: %v", id, err)
		response.ServerError(c)
		return
	}

	services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, existing.PackageID)
	if merged.PackageID != existing.PackageID {
		services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, merged.PackageID)
	}
	response.SuccessWithMessage(c, merged, "Inclusion updated successfully")
}

// DeleteInclusion removes a inclusion
func (ctrl *InclusionController) DeleteInclusion(c *gin.Context) {
	id := c.Param("id")

	var existing models.Inclusion
	if err := ctrl.db.First(&existing, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			response.NotFound(c, "Inclusion not found")
			return
		}
		ctrl.log.Error("loading inclusion %s: %v", id, err)
		response.ServerError(c)
		return
	}

	if err := ctrl.db.Delete(&existing).Error; err != nil {
		ctrl.log.Error("deleting inclusion %s: %v", id, err)
		response.ServerError(c)
		return
	}

	services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, existing.PackageID)
	response.SuccessWithMessage(c, nil, "Inclusion deleted successfully")
}
