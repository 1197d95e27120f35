package controllers

import (
	"time"

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

type ReviewController struct {
	db  *gorm.DB
	rdb *redis.Client
	svc *services.PackageService
	log logger.Logger
}

func NewReviewController(db *gorm.DB, rdb *redis.Client) *ReviewController {
	return &ReviewController{
		db:  db,
		rdb: rdb,
		svc: services.NewPackageService(services.PackageServiceOptions{DB: db}),
		log: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// GetReviews lists a package's reviews newest first. The meta block
// carries the average rating beside the usual pagination fields.
func (ctrl *ReviewController) GetReviews(c *gin.Context) {
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

	limit, offset := parseLimitOffset(c)

	// The unpaginated view is the one the package page hits on every load
	cacheable := ctrl.rdb != nil && limit == nil && offset == nil
	if cacheable {
		var cached dto.ReviewListResponse
		if err := services.GetFromRedis(c.Request.Context(), ctrl.rdb, services.PackageReviewsKey(packageID), &cached); err == nil && cached.Reviews != nil {
			response.Success(c, cached)
			return
		}
	}

	tx := ctrl.db.Where("package_id = ?", packageID).Order("date DESC")
	if limit != nil {
		tx = tx.Limit(*limit)
	}
	if offset != nil {
		tx = tx.Offset(*offset)
	}

	var reviews []models.Review
	if err := tx.Find(&reviews).Error; err != nil {
		ctrl.log.Error("listing reviews for package %s: %v", packageID, err)
		response.ServerError(c)
		return
	}

	var total int64
	if err := ctrl.db.Model(&models.Review{}).Where("package_id = ?", packageID).Count(&total).Error; err != nil {
		ctrl.log.Error("counting reviews for package %s: %v", packageID, err)
		response.ServerError(c)
		return
	}

	averageRating, err := ctrl.svc.AverageRating(packageID)
	if err != nil {
		ctrl.log.Error("averaging reviews for package %s: %v", packageID, err)
		response.ServerError(c)
		return
	}

	if reviews == nil {
		reviews = []models.Review{}
	}
	result := dto.ReviewListResponse{
		Reviews: reviews,
		Meta: dto.ReviewListMeta{
			Total:         total,
			AverageRating: averageRating,
			Limit:         limit,
			Offset:        offset,
		},
	}

	if cacheable {
		if err := services.SetToRedis(c.Request.Context(), ctrl.rdb, services.PackageReviewsKey(packageID), result, 10*time.Minute); err != nil {
			ctrl.log.Warn("caching reviews for package %s: %v", packageID, err)
		}
	}

	response.Success(c, result)
}

// CreateReview adds a review, defaulting its date to submission time
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
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

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := validator.ValidateReviewCreate(&req); err != nil {
		response.BadRequest(c, validationMessage(err))
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := validator.ParseDate(req.Date)
		if err != nil {
			response.BadRequest(c, validationMessage(err))
			return
		}
		date = parsed
	}

	review := models.Review{
		Name:      req.Name,
		Rating:    *req.Rating,
		Comment:   req.Comment,
		Date:      date,
		PackageID: packageID,
	}
	if err := ctrl.db.Create(&review).Error; err != nil {
		ctrl.log.Error("creating review: %v", err)
		response.ServerError(c)
		return
	}

	services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, packageID)
	response.Created(c, review, "Review added successfully")
}

// GetReview returns one review by id
func (ctrl *ReviewController) GetReview(c *gin.Context) {
	id := c.Param("id")

	var review models.Review
	if err := ctrl.db.First(&review, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			response.NotFound(c, "Review not found")
			return
		}
		ctrl.log.Error("loading review %s: %v", id, err)
		response.ServerError(c)
		return
	}

	response.Success(c, review)
}

// UpdateReview merges the supplied fields, validating only what is present
func (ctrl *ReviewController) UpdateReview(c *gin.Context) {
	id := c.Param("id")

	var existing models.Review
	if err := ctrl.db.First(&existing, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			response.NotFound(c, "Review not found")
			return
		}
		ctrl.log.Error("loading review %s: %v", id, err)
		response.ServerError(c)
		return
	}

	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if req.Rating != nil {
		if err := validator.ValidateRating(*req.Rating); err != nil {
			response.BadRequest(c, validationMessage(err))
			return
		}
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

	var parsedDate *time.Time
	if req.Date != nil && *req.Date != "" {
		parsed, err := validator.ParseDate(*req.Date)
		if err != nil {
			response.BadRequest(c, validationMessage(err))
			return
		}
		parsedDate = &parsed
	}

	merged := req.Merge(existing, parsedDate)
	if err := ctrl.db.Save(&merged).Error; err != nil {
		ctrl.log.Error("updating review %s: %v", id, err)
		response.ServerError(c)
		return
	}

	services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, existing.PackageID)
	if merged.PackageID != existing.PackageID {
		services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, merged.PackageID)
	}
	response.SuccessWithMessage(c, merged, "Review updated successfully")
}

// DeleteReview removes a review
func (ctrl *ReviewController) DeleteReview(c *gin.Context) {
	id := c.Param("id")

	var existing models.Review
	if err := ctrl.db.First(&existing, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			response.NotFound(c, "Review not found")
			return
		}
		ctrl.log.Error("loading review %s: %v", id, err)
		response.ServerError(c)
		return
	}

	if err := ctrl.db.Delete(&existing).Error; err != nil {
		ctrl.log.Error("deleting review %s: %v", id, err)
		response.ServerError(c)
		return
	}

	services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, existing.PackageID)
	response.SuccessWithMessage(c, nil, "Review deleted successfully")
}
