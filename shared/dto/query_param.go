package dto

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams shapes the ordering and size of a list query.
type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// Top returns params for the first limit rows ordered by sortBy descending.
func Top(limit int, sortBy string) QueryParams {
	return QueryParams{Limit: limit, SortBy: sortBy, SortDir: SortDirDesc}
}
