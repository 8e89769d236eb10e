package dto_test

import (
	"hotel/shared/constant"
	"hotel/shared/dto"
	"hotel/shared/model"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 11, 1, 8, 0, 0, 0, time.UTC)

	var metadata dto.Metadata
	metadata.FromModel(model.Metadata{CreatedAt: createdAt, CreatedBy: "manager-1"})

	assert.NotEmpty(t, metadata.CreatedAt)
	assert.Equal(t, "manager-1", metadata.CreatedBy)
	assert.Empty(t, metadata.ModifiedAt, "never modified")
	assert.Empty(t, metadata.ModifiedBy)

	metadata.FromModel(model.Metadata{CreatedAt: createdAt, ModifiedAt: createdAt.Add(time.Hour), ModifiedBy: "admin"})

	assert.NotEmpty(t, metadata.ModifiedAt)
	assert.Equal(t, "admin", metadata.ModifiedBy)
	assert.Empty(t, metadata.CreatedBy, "previous values are replaced")
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		withDefaults bool
		expected     dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    "page=2&limit=20&sort_by=check_in_date&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "check_in_date", SortDir: dto.SortDirAsc},
		},
		{
			name:         "defaults",
			withDefaults: true,
			expected:     dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "no defaults",
			expected: dto.QueryParams{},
		},
		{
			name:         "malformed numbers fall back",
			query:        "page=abc&limit=-5",
			withDefaults: true,
			expected:     dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "limit capped",
			query:    "limit=5000",
			expected: dto.QueryParams{Limit: constant.MaxValueLimit},
		},
		{
			name:     "qualified sort column",
			query:    "sort_by=bookings.created_at&sort_dir=DESC",
			expected: dto.QueryParams{SortBy: "bookings.created_at", SortDir: dto.SortDirDesc},
		},
		{
			name:     "injected sort column ignored",
			query:    "sort_by=id;DROP%20TABLE%20bookings&sort_dir=sideways",
			expected: dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/bookings?"+tt.query, nil)

			var params dto.QueryParams
			params.FromRequest(req, tt.withDefaults)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_Offset(t *testing.T) {
	assert.Equal(t, 0, dto.QueryParams{}.Offset())
	assert.Equal(t, 0, dto.QueryParams{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, dto.QueryParams{Page: 3, Limit: 10}.Offset())
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name          string
		filter        dto.Filter
		expectedWhere string
		expectedArgs  map[string]any
	}{
		{
			name:          "not equal with table",
			filter:        dto.Filter{Field: "status", Table: "rooms", Operator: dto.FilterOperatorNotEq, Value: 2},
			expectedWhere: "rooms.status != :status",
			expectedArgs:  map[string]any{"status": 2},
		},
		{
			name:          "like",
			filter:        dto.Filter{Field: "name", Operator: dto.FilterOperatorLike, Value: "deluxe"},
			expectedWhere: "LOWER(name) LIKE LOWER(:name)",
			expectedArgs:  map[string]any{"name": "%deluxe%"},
		},
		{
			name:          "empty in",
			filter:        dto.Filter{Field: "status", Operator: dto.FilterOperatorIn, Value: []string{}},
			expectedWhere: "FALSE",
			expectedArgs:  map[string]any{},
		},
		{
			name:          "in with scalar",
			filter:        dto.Filter{Field: "hotel_id", Operator: dto.FilterOperatorIn, Value: "h-1"},
			expectedWhere: "hotel_id = :hotel_id",
			expectedArgs:  map[string]any{"hotel_id": "h-1"},
		},
		{
			name:          "is null",
			filter:        dto.Filter{Field: "end_date", Operator: dto.FilterIsNull},
			expectedWhere: "end_date IS NULL",
			expectedArgs:  map[string]any{},
		},
		{
			name:          "unknown operator",
			filter:        dto.Filter{Field: "x", Operator: "between"},
			expectedWhere: "",
			expectedArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.expectedWhere, where)
			assert.Equal(t, tt.expectedArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "room_type_id", Operator: dto.FilterOperatorEq, Value: "rt-1", Table: "room_holds"},
			dto.Filter{Field: "check_in_date", Operator: dto.FilterOperatorLess, Value: "2025-12-03", ArgName: "window_end"},
			dto.Filter{Field: "check_out_date", Operator: dto.FilterOperatorGreater, Value: "2025-12-01", ArgName: "window_start"},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "status", Operator: dto.FilterOperatorIn, Value: []string{"pending", "accepted"}},
					dto.Filter{Field: "expires_at", Operator: "unknown"},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(room_holds.room_type_id = :room_type_id AND check_in_date < :window_end AND check_out_date > :window_start AND (status IN (:status_0, :status_1)))", where)
	assert.Equal(t, map[string]any{
		"room_type_id": "rt-1",
		"window_end":   "2025-12-03",
		"window_start": "2025-12-01",
		"status_0":     "pending",
		"status_1":     "accepted",
	}, args)

	empty := dto.FilterGroup{}
	where, args = empty.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}
