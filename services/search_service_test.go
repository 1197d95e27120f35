package services

import (
	"testing"

	"tourpack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "danau toba", normalizeInput("  Danau Tobá "))
	assert.Equal(t, "bali", normalizeInput("BALI"))
}

func TestCalculateSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, calculateSimilarity("bali", "bali"))
	assert.Equal(t, 1.0, calculateSimilarity("", ""))
	assert.Greater(t, calculateSimilarity("bali retreat", "bali retret"), 0.8)
	assert.Less(t, calculateSimilarity("bali", "reykjavik"), 0.3)
}

func TestUniqueLocations(t *testing.T) {
	locations := uniqueLocations([]models.Package{
		{Location: "Bali"},
		{Location: "bali"},
		{Location: "Alps"},
		{Location: ""},
	})
	assert.Len(t, locations, 2)
	assert.Contains(t, locations, "bali")
	assert.Contains(t, locations, "alps")
}

func TestSearchPackagesRanksTitleMatchFirst(t *testing.T) {
	db := openTestDB(t)

	for _, pkg := range []models.Package{
		{PackageTitle: "Bali Retreat", Duration: "7D6N", Price: 1200, Description: "x", Image: "a.jpg", Location: "Bali", MinGroupSize: 2, MaxGroupSize: 15},
		{PackageTitle: "Alps Trek", Duration: "5D4N", Price: 900, Description: "x", Image: "b.jpg", Location: "Alps", MinGroupSize: 2, MaxGroupSize: 15},
		{PackageTitle: "Bali Dive Week", Duration: "7D6N", Price: 1500, Description: "x", Image: "c.jpg", Location: "Bali", MinGroupSize: 2, MaxGroupSize: 15},
	} {
		p := pkg
		require.NoError(t, db.Create(&p).Error)
	}

	results, err := SearchPackages(db, "bali")
	require.NoError(t, err)
	require.NotEmpty(t, results)

	for _, scored := range results {
		assert.NotEqual(t, "Alps Trek", scored.Package.PackageTitle)
		assert.Greater(t, scored.Score, 0)
	}
	// equal scores fall back to title order
	require.Len(t, results, 2)
	assert.Equal(t, "Bali Dive Week", results[0].Package.PackageTitle)
	assert.Equal(t, "Bali Retreat", results[1].Package.PackageTitle)
}

func TestSearchPackagesEmptyCatalog(t *testing.T) {
	db := openTestDB(t)

	results, err := SearchPackages(db, "anything")
	require.NoError(t, err)
	assert.Empty(t, results)
}
