package dto

import (
	"net/http"
	"strconv"
	"strings"

	"arthive/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams carries the window and ordering of a list query. SortBy must be
// a whitelisted column name; handlers map public sort tokens onto it via
// ApplySort before the value reaches the repository.
type QueryParams struct {
	Limit   int    `json:"limit"    validate:"omitempty,gte=1"`
	Skip    int    `json:"skip"     validate:"omitempty,gte=0"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates QueryParams from the HTTP request. With defaultRequest
// set, missing limit falls back to the given default so unbounded listings
// never hit the store.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool, defaultLimit int) {
	queryParams := r.URL.Query()

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if skip := queryParams.Get(constant.RequestParamSkip); skip != "" {
		if skipInt, err := strconv.Atoi(skip); err == nil && skipInt >= 0 {
			q.Skip = skipInt
		}
	}

	if defaultRequest && q.Limit == 0 {
		q.Limit = defaultLimit
	}
}

// ApplySort translates a public sort token ("-popularity", "title", ...) into
// a column and direction. A leading '-' means descending. Tokens not present
// in allowed are ignored so arbitrary column names never reach the SQL layer.
func (q *QueryParams) ApplySort(token string, allowed map[string]string, defaultToken string) {
	for _, candidate := range []string{token, defaultToken} {
		if candidate == "" {
			continue
		}

		dir := SortDirAsc
		if strings.HasPrefix(candidate, "-") {
			dir = SortDirDesc
			candidate = candidate[1:]
		}

		if column, ok := allowed[candidate]; ok {
			q.SortBy = column
			q.SortDir = dir

			return
		}
	}

	q.SortBy = constant.DefaultValueSortBy
	q.SortDir = constant.DefaultValueSortDir
}
