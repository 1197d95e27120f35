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

type PackageController struct {
	db  *gorm.DB
	rdb *redis.Client
	svc *services.PackageService
	log logger.Logger
}

func NewPackageController(db *gorm.DB, rdb *redis.Client) *PackageController {
	return &PackageController{
		db:  db,
		rdb: rdb,
		svc: services.NewPackageService(services.PackageServiceOptions{DB: db}),
		log: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// GetPackages lists the catalog with pagination and allow-listed sorting
func (ctrl *PackageController) GetPackages(c *gin.Context) {
	limit, offset := parseLimitOffset(c)
	orderBy := c.DefaultQuery("orderBy", "packageTitle")
	orderDir := c.DefaultQuery("orderDir", "asc")

	if err := validator.ValidateOrderParams(orderBy, orderDir); err != nil {
		response.BadRequest(c, validationMessage(err))
		return
	}

	tx := ctrl.db.Model(&models.Package{}).Order(constants.PackageOrderFields[orderBy] + " " + orderDir)
	if limit != nil {
		tx = tx.Limit(*limit)
	}
	if offset != nil {
		tx = tx.Offset(*offset)
	}

	var packages []models.Package
	if err := tx.Find(&packages).Error; err != nil {
		ctrl.log.Error("listing packages: %v", err)
		response.ServerError(c)
		return
	}

	var total int64
	if err := ctrl.db.Model(&models.Package{}).Count(&total).Error; err != nil {
		ctrl.log.Error("counting packages: %v", err)
		response.ServerError(c)
		return
	}

	ids := make([]string, len(packages))
	for i, pkg := range packages {
		ids[i] = pkg.ID
	}
	counts, err := ctrl.svc.ChildCounts(ids)
	if err != nil {
		ctrl.log.Error("counting package children: %v", err)
		response.ServerError(c)
		return
	}

	items := make([]dto.PackageListItem, len(packages))
	for i, pkg := range packages {
		items[i] = dto.PackageListItem{Package: pkg, Counts: counts[pkg.ID]}
	}

	response.Success(c, dto.PackageListResponse{
		Packages: items,
		Meta: dto.ListMeta{
			Total:    total,
			Limit:    limit,
			Offset:   offset,
			OrderBy:  orderBy,
			OrderDir: orderDir,
		},
	})
}

// SearchPackages scores the catalog against a free-text query
func (ctrl *PackageController) SearchPackages(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Search query is required")
		return
	}

	results, err := services.SearchPackages(ctrl.db, query)
	if err != nil {
		ctrl.log.Error("searching packages: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, results)
}

// GetPackageDetail returns one package with all nine child collections
func (ctrl *PackageController) GetPackageDetail(c *gin.Context) {
	id := c.Param("id")

	if ctrl.rdb != nil {
		var cached models.Package
		cacheKey := services.PackageDetailKey(id)
		if err := services.GetFromRedis(c.Request.Context(), ctrl.rdb, cacheKey, &cached); err == nil && cached.ID != "" {
			response.Success(c, cached)
			return
		}
	}

	pkg, err := ctrl.svc.GetPackageWithDetails(id)
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c, "Package not found")
			return
		}
		ctrl.log.Error("loading package %s: %v", id, err)
		response.ServerError(c)
		return
	}

	if ctrl.rdb != nil {
		if err := services.SetToRedis(c.Request.Context(), ctrl.rdb, services.PackageDetailKey(id), pkg, 10*time.Minute); err != nil {
			ctrl.log.Warn("caching package %s: %v", id, err)
		}
	}

	response.Success(c, pkg)
}

// CreatePackage creates the aggregate root, applying group-size defaults
func (ctrl *PackageController) CreatePackage(c *gin.Context) {
	var req dto.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := validator.ValidatePackageCreate(&req); err != nil {
		response.BadRequest(c, validationMessage(err))
		return
	}

	pkg := req.ToModel()
	if err := ctrl.db.Create(&pkg).Error; err != nil {
		ctrl.log.Error("creating package: %v", err)
		response.ServerError(c)
		return
	}

	services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, pkg.ID)
	response.Created(c, pkg, "Package created successfully")
}

// UpdatePackage merges the supplied fields onto the stored row
func (ctrl *PackageController) UpdatePackage(c *gin.Context) {
	id := c.Param("id")

	var existing models.Package
	if err := ctrl.db.First(&existing, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			response.NotFound(c, "Package not found")
			return
		}
		ctrl.log.Error("loading package %s: %v", id, err)
		response.ServerError(c)
		return
	}

	var req dto.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := validator.ValidatePackageUpdate(&req); err != nil {
		response.BadRequest(c, validationMessage(err))
		return
	}

	merged := req.Merge(existing)
	if err := validator.ValidateGroupSizes(merged.MinGroupSize, merged.MaxGroupSize); err != nil {
		response.BadRequest(c, validationMessage(err))
		return
	}

	if err := ctrl.db.Save(&merged).Error; err != nil {
		ctrl.log.Error("updating package %s: %v", id, err)
		response.ServerError(c)
		return
	}

	services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, id)
	response.SuccessWithMessage(c, merged, "Package updated successfully")
}

// DeletePackage removes the package and cascades to every child collection
func (ctrl *PackageController) DeletePackage(c *gin.Context) {
	id := c.Param("id")

	exists, err := packageExists(ctrl.db, id)
	if err != nil {
		ctrl.log.Error("checking package %s: %v", id, err)
		response.ServerError(c)
		return
	}
	if !exists {
		response.NotFound(c, "Package not found")
		return
	}

	if err := ctrl.svc.DeletePackageCascade(id); err != nil {
		ctrl.log.Error("deleting package %s: %v", id, err)
		response.ServerError(c)
		return
	}

	services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, id)
	response.SuccessWithMessage(c, nil, "Package deleted successfully")
}
