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

type MealController struct {
	db  *gorm.DB
	rdb *redis.Client
	log logger.Logger
}

func NewMealController(db *gorm.DB, rdb *redis.Client) *MealController {
	return &MealController{
		db:  db,
		rdb: rdb,
		log: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

func (ctrl *MealController) invalidateForDay(c *gin.Context, itineraryID string) {
	if ctrl.rdb == nil {
		return
	}
	var day models.ItineraryDay
	if err := ctrl.db.Select("package_id").First(&day, "id = ?", itineraryID).Error; err == nil {
		services.InvalidatePackageCache(c.Request.Context(), ctrl.rdb, day.PackageID)
	}
}

// GetMeals lists an itinerary day's meals
func (ctrl *MealController) GetMeals(c *gin.Context) {
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

	var meals []models.Meal
	if err := ctrl.db.Where("itinerary_id = ?", itineraryID).Find(&meals).Error; err != nil {
		ctrl.log.Error("listing meals for day %s: %v", itineraryID, err)
		response.ServerError(c)
		return
	}

	response.Success(c, meals)
}

// CreateMeal adds a meal to an itinerary day. Names are normalized to
// lowercase, so "Breakfast" and "breakfast" are the same meal; each type
// appears at most once per day.
func (ctrl *MealController) CreateMeal(c *gin.Context) {
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

	var req dto.CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	normalized, err := validator.NormalizeMealName(req.Name)
	if err != nil {
		response.BadRequest(c, validationMessage(err))
		return
	}

	var existingMeal models.Meal
	err = ctrl.db.Where("itinerary_id = ? AND name = ?", itineraryID, normalized).First(&existingMeal).Error
	if err == nil {
		response.Conflict(c, validator.MealConflictMessage(req.Name))
		return
	}
	if !isNotFound(err) {
		ctrl.log.Error("checking meal: %v", err)
		response.ServerError(c)
		return
	}

	meal := models.Meal{Name: normalized, ItineraryID: itineraryID}
	if err := ctrl.db.Create(&meal).Error; err != nil {
		if isDuplicateKey(err) {
			response.Conflict(c, validator.MealConflictMessage(req.Name))
			return
		}
		ctrl.log.Error("creating meal: %v", err)
		response.ServerError(c)
		return
	}

	ctrl.invalidateForDay(c, itineraryID)
	response.Created(c, meal, "Meal added successfully")
}

// GetMeal returns one meal by id
func (ctrl *MealController) GetMeal(c *gin.Context) {
	id := c.Param("id")

	var meal models.Meal
	if err := ctrl.db.First(&meal, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			response.NotFound(c, "Meal not found")
			return
		}
		ctrl.log.Error("loading meal %s: %v", id, err)
		response.ServerError(c)
		return
	}

	response.Success(c, meal)
}

// UpdateMeal merges the supplied fields. A renamed or re-homed meal
// re-checks uniqueness against the target day, excluding this row.
func (ctrl *MealController) UpdateMeal(c *gin.Context) {
	id := c.Param("id")

	var existing models.Meal
	if err := ctrl.db.First(&existing, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			response.NotFound(c, "Meal not found")
			return
		}
		ctrl.log.Error("loading meal %s: %v", id, err)
		response.ServerError(c)
		return
	}

	var req dto.UpdateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	normalized := ""
	if req.Name != nil && *req.Name != "" {
		var err error
		normalized, err = validator.NormalizeMealName(*req.Name)
		if err != nil {
			response.BadRequest(c, validationMessage(err))
			return
		}
	}

	targetDayID := existing.ItineraryID
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
		targetDayID = *req.ItineraryID
	}

	targetName := existing.Name
	if normalized != "" {
		targetName = normalized
	}

	if targetName != existing.Name || targetDayID != existing.ItineraryID {
		var conflict models.Meal
		err := ctrl.db.
			Where("itinerary_id = ? AND name = ? AND id <> ?", targetDayID, targetName, id).
			First(&conflict).Error
		if err == nil {
			response.Conflict(c, validator.MealConflictMessage(targetName))
			return
		}
		if !isNotFound(err) {
			ctrl.log.Error("checking meal conflict: %v", err)
			response.ServerError(c)
			return
		}
	}

	merged := req.Merge(existing, normalized)
	if err := ctrl.db.Save(&merged).Error; err != nil {
		if isDuplicateKey(err) {
			response.Conflict(c, validator.MealConflictMessage(targetName))
			return
		}
		ctrl.log.Error("updating meal %s: %v", id, err)
		response.ServerError(c)
		return
	}

	ctrl.invalidateForDay(c, existing.ItineraryID)
	if merged.ItineraryID != existing.ItineraryID {
		ctrl.invalidateForDay(c, merged.ItineraryID)
	}
	response.SuccessWithMessage(c, merged, "Meal updated successfully")
}

// DeleteMeal removes a meal
func (ctrl *MealController) DeleteMeal(c *gin.Context) {
	id := c.Param("id")

	var existing models.Meal
	if err := ctrl.db.First(&existing, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			response.NotFound(c, "Meal not found")
			return
		}
		ctrl.log.Error("loading meal %s: %v", id, err)
		response.ServerError(c)
		return
	}

	if err := ctrl.db.Delete(&existing).Error; err != nil {
		ctrl.log.Error("deleting meal %s: %v", id, err)
		response.ServerError(c)
		return
	}

	ctrl.invalidateForDay(c, existing.ItineraryID)
	response.SuccessWithMessage(c, nil, "Meal deleted successfully")
}
