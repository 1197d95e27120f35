package routes

import (
	"tourpack/controllers"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupRoutes wires every resource controller under /api/v1. Collection
// routes nest under their parent; item routes are flat per entity.
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client) {

	packageController := controllers.NewPackageController(db, redisCli)
	galleryController := controllers.NewGalleryController(db, redisCli)
	highlightController := controllers.NewHighlightController(db, redisCli)
	itineraryController := controllers.NewItineraryController(db, redisCli)
	activityController := controllers.NewActivityController(db, redisCli)
	mealController := controllers.NewMealController(db, redisCli)
	inclusionController := controllers.NewInclusionController(db, redisCli)
	exclusionController := controllers.NewExclusionController(db, redisCli)
	dateController := controllers.NewDateController(db, redisCli)
	reviewController := controllers.NewReviewController(db, redisCli)
	faqController := controllers.NewFAQController(db, redisCli)

	v1 := router.Group("/api/v1")

	v1.GET("/packages", packageController.GetPackages)
	v1.POST("/packages", packageController.CreatePackage)
	v1.GET("/packages/search", packageController.SearchPackages)
	v1.GET("/packages/:id", packageController.GetPackageDetail)
	v1.PUT("/packages/:id", packageController.UpdatePackage)
	v1.DELETE("/packages/:id", packageController.DeletePackage)

	v1.GET("/packages/:id/gallery", galleryController.GetGallery)
	v1.POST("/packages/:id/gallery", galleryController.CreateGalleryImage)
	v1.GET("/gallery/:id", galleryController.GetGalleryImage)
	v1.PUT("/gallery/:id", galleryController.UpdateGalleryImage)
	v1.DELETE("/gallery/:id", galleryController.DeleteGalleryImage)

	v1.GET("/packages/:id/highlights", highlightController.GetHighlights)
	v1.POST("/packages/:id/highlights", highlightController.CreateHighlight)
	v1.GET("/highlights/:id", highlightController.GetHighlightDetail)
	v1.PUT("/highlights/:id", highlightController.UpdateHighlight)
	v1.DELETE("/highlights/:id", highlightController.DeleteHighlight)

	v1.GET("/packages/:id/itinerary", itineraryController.GetItinerary)
	v1.POST("/packages/:id/itinerary", itineraryController.CreateItineraryDay)
	v1.GET("/itinerary/:id", itineraryController.GetItineraryDay)
	v1.PUT("/itinerary/:id", itineraryController.UpdateItineraryDay)
	v1.DELETE("/itinerary/:id", itineraryController.DeleteItineraryDay)

	v1.GET("/itinerary/:id/activities", activityController.GetActivities)
	v1.POST("/itinerary/:id/activities", activityController.CreateActivity)
	v1.GET("/activities/:id", activityController.GetActivity)
	v1.PUT("/activities/:id", activityController.UpdateActivity)
	v1.DELETE("/activities/:id", activityController.DeleteActivity)

	v1.GET("/itinerary/:id/meals", mealController.GetMeals)
	v1.POST("/itinerary/:id/meals", mealController.CreateMeal)
	v1.GET("/meals/:id", mealController.GetMeal)
	v1.PUT("/meals/:id", mealController.UpdateMeal)
	v1.DELETE("/meals/:id", mealController.DeleteMeal)

	v1.GET("/packages/:id/inclusions", inclusionController.GetInclusions)
	v1.POST("/packages/:id/inclusions", inclusionController.CreateInclusion)
	v1.GET("/inclusions/:id", inclusionController.GetInclusionDetail)
	v1.PUT("/inclusions/:id", inclusionController.UpdateInclusion)
	v1.DELETE("/inclusions/:id", inclusionController.DeleteInclusion)

	v1.GET("/packages/:id/exclusions", exclusionController.GetExclusions)
	v1.POST("/packages/:id/exclusions", exclusionController.CreateExclusion)
	v1.GET("/exclusions/:id", exclusionController.GetExclusionDetail)
	v1.PUT("/exclusions/:id", exclusionController.UpdateExclusion)
	v1.DELETE("/exclusions/:id", exclusionController.DeleteExclusion)

	v1.GET("/packages/:id/dates", dateController.GetDates)
	v1.POST("/packages/:id/dates", dateController.CreateDate)
	v1.GET("/dates/:id", dateController.GetDate)
	v1.PUT("/dates/:id", dateController.UpdateDate)
	v1.DELETE("/dates/:id", dateController.DeleteDate)

	v1.GET("/packages/:id/reviews", reviewController.GetReviews)
	v1.POST("/packages/:id/reviews", reviewController.CreateReview)
	v1.GET("/reviews/:id", reviewController.GetReview)
	v1.PUT("/reviews/:id", reviewController.UpdateReview)
	v1.DELETE("/reviews/:id", reviewController.DeleteReview)

	v1.GET("/packages/:id/faqs", faqController.GetFAQs)
	v1.POST("/packages/:id/faqs", faqController.CreateFAQ)
	v1.GET("/faqs/:id", faqController.GetFAQ)
	v1.PUT("/faqs/:id", faqController.UpdateFAQ)
	v1.DELETE("/faqs/:id", faqController.DeleteFAQ)
}
