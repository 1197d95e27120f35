package services

import (
	"tourpack/dto"
	"tourpack/models"
	"tourpack/services/logger"

	"gorm.io/gorm"
)

// PackageService owns the aggregate-level store operations shared by the
// resource controllers: the eager fetch, the rating aggregate and the
// cascading delete.
type PackageService struct {
	db  *gorm.DB
	log logger.Logger
}

type PackageServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewPackageService(opts PackageServiceOptions) *PackageService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &PackageService{db: opts.DB, log: l}
}

// GetPackageWithDetails loads a package together with all nine child
// collections: itinerary days ordered ascending with their activities and
// meals nested, reviews newest first, dates soonest first.
func (s *PackageService) GetPackageWithDetails(id string) (models.Package, error) {
	var pkg models.Package
	err := s.db.
		Preload("Gallery").
		Preload("Highlights").
		Preload("Itinerary", func(db *gorm.DB) *gorm.DB {
			return db.Order("day ASC")
		}).
		Preload("Itinerary.Activities").
		Preload("Itinerary.Meals").
		Preload("Inclusions").
		Preload("Exclusions").
		Preload("AvailableDates", func(db *gorm.DB) *gorm.DB {
			return db.Order("date ASC")
		}).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC")
		}).
		Preload("FAQs").
		First(&pkg, "id = ?", id).Error
	return pkg, err
}

// AverageRating returns the arithmetic mean of a package's review ratings,
// or 0 when it has none
func (s *PackageService) AverageRating(packageID string) (float64, error) {
	var avg float64
	err := s.db.Model(&models.Review{}).
		Where("package_id = ?", packageID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	return avg, err
}

// ChildCounts returns gallery and review counts for a set of packages
func (s *PackageService) ChildCounts(packageIDs []string) (map[string]dto.PackageCounts, error) {
	counts := make(map[string]dto.PackageCounts, len(packageIDs))
	if len(packageIDs) == 0 {
		return counts, nil
	}

	type row struct {
		PackageID string
		N         int64
	}

	var galleryRows []row
	if err := s.db.Model(&models.Gallery{}).
		Select("package_id, COUNT(*) AS n").
		Where("package_id IN ?", packageIDs).
		Group("package_id").
		Scan(&galleryRows).Error; err != nil {
		return nil, err
	}
	for _, r := range galleryRows {
		c := counts[r.PackageID]
		c.Gallery = r.N
		counts[r.PackageID] = c
	}

	var reviewRows []row
	if err := s.db.Model(&models.Review{}).
		Select("package_id, COUNT(*) AS n").
		Where("package_id IN ?", packageIDs).
		Group("package_id").
		Scan(&reviewRows).Error; err != nil {
		return nil, err
	}
	for _, r := range reviewRows {
		c := counts[r.PackageID]
		c.Reviews = r.N
		counts[r.PackageID] = c
	}

	return counts, nil
}

// DeleteItineraryDayCascade removes an itinerary day together with its
// activities and meals in one transaction
func (s *PackageService) DeleteItineraryDayCascade(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("itinerary_id = ?", id).Delete(&models.Activity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("itinerary_id = ?", id).Delete(&models.Meal{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ItineraryDay{}, "id = ?", id).Error
	})
}

// DeletePackageCascade removes a package and every dependent row in one
// transaction: activities and meals of its itinerary days first, then the
// eight child collections, then the package itself. The schema carries
// ON DELETE CASCADE constraints as well; this keeps the cascade an explicit
// contract rather than a side effect of the migration.
func (s *PackageService) DeletePackageCascade(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		dayIDs := tx.Model(&models.ItineraryDay{}).Select("id").Where("package_id = ?", id)

		if err := tx.Where("itinerary_id IN (?)", dayIDs).Delete(&models.Activity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("itinerary_id IN (?)", dayIDs).Delete(&models.Meal{}).Error; err != nil {
			return err
		}
		if err := tx.Where("package_id = ?", id).Delete(&models.ItineraryDay{}).Error; err != nil {
			return err
		}
		if err := tx.Where("package_id = ?", id).Delete(&models.Gallery{}).Error; err != nil {
			return err
		}
		if err := tx.Where("package_id = ?", id).Delete(&models.Highlight{}).Error; err != nil {
			return err
		}
		if err := tx.Where("package_id = ?", id).Delete(&models.Inclusion{}).Error; err != nil {
			return err
		}
		if err := tx.Where("package_id = ?", id).Delete(&models.Exclusion{}).Error; err != nil {
			return err
		}
		if err := tx.Where("package_id = ?", id).Delete(&models.AvailableDate{}).Error; err != nil {
			return err
		}
		if err := tx.Where("package_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("package_id = ?", id).Delete(&models.FAQ{}).Error; err != nil {
			return err
		}

		if err := tx.Delete(&models.Package{}, "id = ?", id).Error; err != nil {
			return err
		}

		s.log.Info("package %s deleted with all dependent rows", id)
		return nil
	})
}
