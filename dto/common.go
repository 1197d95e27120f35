package dto

// ListMeta is the meta block returned by list endpoints. Limit and offset
// stay null when the caller did not send them.
type ListMeta struct {
	Total    int64  `json:"total"`
	Limit    *int   `json:"limit"`
	Offset   *int   `json:"offset"`
	OrderBy  string `json:"orderBy,omitempty"`
	OrderDir string `json:"orderDir,omitempty"`
}

// ReviewListMeta additionally carries the package's average rating
type ReviewListMeta struct {
	Total         int64   `json:"total"`
	AverageRating float64 `json:"averageRating"`
	Limit         *int    `json:"limit"`
	Offset        *int    `json:"offset"`
}
