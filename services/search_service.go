package services

import (
	"sort"
	"strings"
	"sync"

	"tourpack/dto"
	"tourpack/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

// normalizeInput strips accents and case so "Danau Tobá" matches "danau toba"
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// createMatcher builds a closest-match index over a keyword list
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// calculateSimilarity scores two strings between 0 and 1
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// uniqueLocations collects the distinct normalized package locations
func uniqueLocations(packages []models.Package) []string {
	seen := make(map[string]bool)
	for _, pkg := range packages {
		if pkg.Location != "" {
			seen[normalizeInput(pkg.Location)] = true
		}
	}

	locations := make([]string, 0, len(seen))
	for loc := range seen {
		locations = append(locations, loc)
	}
	return locations
}

// calculatePackageScore rates how well a package matches the query
func calculatePackageScore(query string, pkg models.Package, cmLocation *closestmatch.ClosestMatch) int {
	score := 0

	title := normalizeInput(pkg.PackageTitle)
	if strings.Contains(title, query) || strings.Contains(query, title) {
		score += 20
	} else if calculateSimilarity(query, title) > 0.7 {
		score += 15
	} else {
		for _, word := range strings.Fields(title) {
			if len(word) > 3 && strings.Contains(query, word) {
				score += 5
				break
			}
		}
	}

	if pkg.Location != "" {
		location := normalizeInput(pkg.Location)
		if strings.Contains(query, location) || cmLocation.Closest(query) == location {
			score += 13
		}
	}

	if pkg.Duration != "" && strings.Contains(query, strings.ToLower(pkg.Duration)) {
		score += 5
	}

	return score
}

// SearchPackages loads the catalog and scores every package against the
// query concurrently, returning matches ordered by score
func SearchPackages(db *gorm.DB, query string) ([]dto.ScoredPackage, error) {
	var packages []models.Package
	if err := db.Find(&packages).Error; err != nil {
		return nil, err
	}

	normalizedQuery := normalizeInput(query)
	cmLocation := createMatcher(uniqueLocations(packages))

	scoreCh := make(chan dto.ScoredPackage, len(packages))
	var wg sync.WaitGroup

	for _, pkg := range packages {
		wg.Add(1)
		go func(pkg models.Package) {
			defer wg.Done()
			score := calculatePackageScore(normalizedQuery, pkg, cmLocation)
			if score > 0 {
				scoreCh <- dto.ScoredPackage{Package: pkg, Score: score}
			}
		}(pkg)
	}

	wg.Wait()
	close(scoreCh)

	results := make([]dto.ScoredPackage, 0, len(packages))
	for scored := range scoreCh {
		results = append(results, scored)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Package.PackageTitle < results[j].Package.PackageTitle
	})

	return results, nil
}
