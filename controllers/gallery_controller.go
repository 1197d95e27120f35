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

type GalleryController struct {
	db  *gorm.DB
	rdb *redis.Client
	log logger.Logger
}

func NewGalleryController(db *gorm.DB, rdb *redis.Client) *GalleryController {
	return &GalleryController{
		db:  db,
		rdb: rdb,
		log: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// GetGallery lists a package's gallery images
func (ctrl *GalleryController) GetGallery(c *gin.Context) {
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

	var images []models.Gallery
	if err := ctrl.db.Where("package_id = ?", packageID).Find(&images).Error; err != nil {
		ctrl.log.Error("listing gallery for package %s: %v", packageID, err)
		response.ServerError(c)
		return
	}

	response.Success(c, images)
}

// CreateGalleryImage adds an image to a package's gallery
func (ctrl *GalleryController) CreateGalleryImage(c *gin.Context) {
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

	var req dto.CreateGalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := validator.ValidateGalleryCreate(&req); err != nil {
		response.BadRequest(c, validationMessage(err))
		return
	}

	image := models.Gallery{ImageURL: req.ImageURL, PackageID: packageID}
	if err := ctrl.db.Create(&image).Error; err != nil {
		ctrl.log.Error("creating gallery image: %v", err)
		response.ServerError(c)
		return
	}

	services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, packageID)
	response.Created(c, image, "Gallery image added successfully")
}

// GetGalleryImage returns one gallery image by id
func (ctrl *GalleryController) GetGalleryImage(c *gin.Context) {
	id := c.Param("id")

	var image models.Gallery
	if err := ctrl.db.First(&image, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			response.NotFound(c, "Gallery image not found")
			return
		}
		ctrl.log.Error("loading gallery image %s: %v", id, err)
		response.ServerError(c)
		return
	}

	response.Success(c, image)
}

// UpdateGalleryImage merges the supplied fields, re-homing the image when
// a different package id is supplied
func (ctrl *GalleryController) UpdateGalleryImage(c *gin.Context) {
	id := c.Param("id")

	var existing models.Gallery
	if err := ctrl.db.First(&existing, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			response.NotFound(c, "Gallery image not found")
			return
		}
		ctrl.log.Error("loading gallery image %s: %v", id, err)
		response.ServerError(c)
		return
	}

	var req dto.UpdateGalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if req.ImageURL != nil && *req.ImageURL == "" {
		response.BadRequest(c, "Image URL cannot be empty")
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
		ctrl.log.Error("updating gallery image %s: %v", id, err)
		response.ServerError(c)
		return
	}

	services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, existing.PackageID)
	if merged.PackageID != existing.PackageID {
		services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, merged.PackageID)
	}
	response.SuccessWithMessage(c, merged, "Gallery image updated successfully")
}

// DeleteGalleryImage removes a gallery image
func (ctrl *GalleryController) DeleteGalleryImage(c *gin.Context) {
	id := c.Param("id")

	var existing models.Gallery
	if err := ctrl.db.First(&existing, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			response.NotFound(c, "Gallery image not found")
			return
		}
		ctrl.log.Error("loading gallery image %s: %v", id, err)
		response.ServerError(c)
		return
	}

	if err := ctrl.db.Delete(&existing).Error; err != nil {
		ctrl.log.Error("deleting gallery image %s: %v", id, err)
		response.ServerError(c)
		return
	}

	services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, existing.PackageID)
	response.SuccessWithMessage(c, nil, "Gallery image deleted successfully")
}
