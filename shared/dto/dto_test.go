package dto_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"gymroom/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name     string
		query    url.Values
		expected dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    url.Values{"sort_by": {"room_id"}, "sort_dir": {"desc"}},
			expected: dto.QueryParams{SortBy: "room_id", SortDir: dto.SortDirDesc},
		},
		{
			name:     "defaults to ascending",
			query:    url.Values{},
			expected: dto.QueryParams{SortDir: dto.SortDirAsc},
		},
		{
			name:     "unknown sort direction is ignored",
			query:    url.Values{"sort_by": {"status"}, "sort_dir": {"sideways"}},
			expected: dto.QueryParams{SortBy: "status", SortDir: dto.SortDirAsc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/trainbooks?"+tt.query.Encode(), nil)

			q := dto.QueryParams{}
			q.FromRequest(req)

			assert.Equal(t, tt.expected, q)
		})
	}
}
