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

type HighlightController struct {
	db  *gorm.DB
	rdb *redis.Client
	log logger.Logger
}

func NewHighlightController(db *gorm.DB, rdb *redis.Client) *HighlightController {
	return &HighlightController{
		db:  db,
		rdb: rdb,
		log: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// GetHighlights lists a package's highlights
func (ctrl *HighlightController) GetHighlights(c *gin.Context) {
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

	var items []models.Highlight
	if err := ctrl.db.Where("package_id = ?", packageID).Find(&items).Error; err != nil {
		ctrl.log.Error("listing highlights for package %s: %v", packageID, err)
		response.ServerError(c)
		return
	}

	response.Success(c, items)
}

// CreateHighlight adds a highlight to a package
func (ctrl *HighlightController) CreateHighlight(c *gin.Context) {
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

	var req dto.CreateHighlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := validator.ValidateHighlightCreate(&req); err != nil {
		response.BadRequest(c, validationMessage(err))
		return
	}

	item := models.Highlight{Description: req.Description, PackageID: packageID}
	if err := ctrl.db.Create(&item).Error; err != nil {
		ctrl.log.Error("creating highlight: %v", err)
		response.ServerError(c)
		return
	}

	services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, packageID)
	response.Created(c, item, "Highlight added successfully")
}

// GetHighlightDetail returns one highlight by id
func (ctrl *HighlightController) GetHighlightDetail(c *gin.Context) {
	id := c.Param("id")

	var item models.Highlight
	if err := ctrl.db.First(&item, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			response.NotFound(c, "Highlight not found")
			return
		}
		ctrl.log.Error("loading highlight %s: %v", id, err)
		response.ServerError(c)
		return
	}

	response.Success(c, item)
}

// UpdateHighlight merges the supplied fields, re-homing the highlight when a
// different package id is supplied
func (ctrl *HighlightController) UpdateHighlight(c *gin.Context) {
	id := c.Param("id")

	var existing models.Highlight
	if err := ctrl.db.First(&existing, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			response.NotFound(c, "Highlight not found")
			return
		}
		ctrl.log.Error("loading highlight %s: %v", id, err)
		response.ServerError(c)
		return
	}

	var req dto.UpdateHighlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if req.Description != nil && *req.Description == "" {
		response.BadRequest(c, "Highlight description cannot be empty")
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
		ctrl.log.Error("updating highlight %s: %v", id, err)
		response.ServerError(c)
		return
	}

	services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, existing.PackageID)
	if merged.PackageID != existing.PackageID {
		services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, merged.PackageID)
	}
	response.SuccessWithMessage(c, merged, "Highlight updated successfully")
}

// DeleteHighlight removes a highlight
func (ctrl *HighlightController) DeleteHighlight(c *gin.Context) {
	id := c.Param("id")

	var existing models.Highlight
	if err := ctrl.db.First(&existing, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			response.NotFound(c, "Highlight not found")
			return
		}
		ctrl.log.Error("loading highlight %s: %v", id, err)
		response.ServerError(c)
		return
	}

	if err := ctrl.db.Delete(&existing).Error; err != nil {
		ctrl.log.Error("deleting highlight %s: %v", id, err)
		response.ServerError(c)
		return
	}

	services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, existing.PackageID)
	response.SuccessWithMessage(c, nil, "Highlight deleted successfully")
}
