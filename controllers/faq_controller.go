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

type FAQController struct {
	db  *gorm.DB
	rdb *redis.Client
	log logger.Logger
}

func NewFAQController(db *gorm.DB, rdb *redis.Client) *FAQController {
	return &FAQController{
		db:  db,
		rdb: rdb,
		log: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// GetFAQs lists a package's FAQs
func (ctrl *FAQController) GetFAQs(c *gin.Context) {
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

	var faqs []models.FAQ
	if err := ctrl.db.Where("package_id = ?", packageID).Find(&faqs).Error; err != nil {
		ctrl.log.Error("listing FAQs for package %s: %v", packageID, err)
		response.ServerError(c)
		return
	}

	response.Success(c, faqs)
}

// CreateFAQ adds a question and answer to a package
func (ctrl *FAQController) CreateFAQ(c *gin.Context) {
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

	var req dto.CreateFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := validator.ValidateFAQCreate(&req); err != nil {
		response.BadRequest(c, validationMessage(err))
		return
	}

	faq := models.FAQ{Question: req.Question, Answer: req.Answer, PackageID: packageID}
	if err := ctrl.db.Create(&faq).Error; err != nil {
		ctrl.log.Error("creating FAQ: %v", err)
		response.ServerError(c)
		return
	}

	services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, packageID)
	response.Created(c, faq, "FAQ added successfully")
}

// GetFAQ returns one FAQ by id
func (ctrl *FAQController) GetFAQ(c *gin.Context) {
	id := c.Param("id")

	var faq models.FAQ
	if err := ctrl.db.First(&faq, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			response.NotFound(c, "FAQ not found")
			return
		}
		ctrl.log.Error("loading FAQ %s: %v", id, err)
		response.ServerError(c)
		return
	}

	response.Success(c, faq)
}

// UpdateFAQ merges the supplied fields, re-homing the FAQ when a
// different package id is supplied
func (ctrl *FAQController) UpdateFAQ(c *gin.Context) {
	id := c.Param("id")

	var existing models.FAQ
	if err := ctrl.db.First(&existing, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			response.NotFound(c, "FAQ not found")
			return
		}
		ctrl.log.Error("loading FAQ %s: %v", id, err)
		response.ServerError(c)
		return
	}

	var req dto.UpdateFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if req.Question != nil && *req.Question == "" {
		response.BadRequest(c, "Question cannot be empty")
		return
	}
	if req.Answer != nil && *req.Answer == "" {
		response.BadRequest(c, "Answer cannot be empty")
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
		ctrl.log.Error("updating FAQ %s: %v", id, err)
		response.ServerError(c)
		return
	}

	services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, existing.PackageID)
	if merged.PackageID != existing.PackageID {
		services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, merged.PackageID)
	}
	response.SuccessWithMessage(c, merged, "FAQ updated successfully")
}

// DeleteFAQ removes a FAQ
func (ctrl *FAQController) DeleteFAQ(c *gin.Context) {
	id := c.Param("id")

	var existing models.FAQ
	if err := ctrl.db.First(&existing, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			response.NotFound(c, "FAQ not found")
			return
		}
		ctrl.log.Error("loading FAQ %s: %v", id, err)
		response.ServerError(c)
		return
	}

	if err := ctrl.db.Delete(&existing).Error; err != nil {
		ctrl.log.Error("deleting FAQ %s: %v", id, err)
		response.ServerError(c)
		return
	}

	services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, existing.PackageID)
	response.SuccessWithMessage(c, nil, "FAQ deleted successfully")
}
