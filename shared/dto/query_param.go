package dto

import (
	"net/http"
	"strings"

	"gymroom/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams holds the list ordering a caller asked for. Lists are always
// returned whole.
type QueryParams struct {
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates QueryParams from the HTTP request. An unknown sort
// direction is ignored; ascending is the default.
func (q *QueryParams) FromRequest(r *http.Request) {
	queryParams := r.URL.Query()

	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	if sortDir := strings.ToUpper(queryParams.Get(constant.RequestParamSortDir)); sortDir == SortDirAsc || sortDir == SortDirDesc {
		q.SortDir = sortDir
	}

	if q.SortDir == "" {
		q.SortDir = SortDirAsc
	}
}
