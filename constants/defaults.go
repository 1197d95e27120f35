package constants

// Group size defaults applied when a package is created without them
const (
	DefaultMinGroupSize = 2
	DefaultMaxGroupSize = 15
)

// Default number of spots for a new available date
const DefaultDateSpots = 15

// Date layout accepted on available dates and review dates
const DateLayout = "2006-01-02"

// Canonical meal names, stored lowercase
var ValidMealNames = []string{"breakfast", "lunch", "dinner", "snack"}

// Sortable fields on the package list endpoint, in the order they are
// reported back on rejection, mapped to their columns
var PackageOrderFieldNames = []string{"packageTitle", "price", "duration", "id"}

var PackageOrderFields = map[string]string{
	"packageTitle": "package_title",
	"price":        "price",
	"duration":     "duration",
	"id":           "id",
}

// Allowed sort directions
var OrderDirections = []string{"asc", "desc"}
