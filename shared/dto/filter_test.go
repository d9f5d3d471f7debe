package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"arthive/shared/dto"
)

func TestFilterGetWhereClause(t *testing.T) {
	tests := []struct {
		name       string
		filter     dto.Filter
		wantClause string
		wantArgs   map[string]any
	}{
		{
			name: "eq with table prefix",
			filter: dto.Filter{
				Field:    "city",
				Value:    "London",
				Operator: dto.FilterOperatorEq,
				Table:    "exhibitions",
			},
			wantClause: "exhibitions.city = :city",
			wantArgs:   map[string]any{"city": "London"},
		},
		{
			name: "like wraps the operand",
			filter: dto.Filter{
				Field:    "title",
				Value:    "light",
				Operator: dto.FilterOperatorLike,
			},
			wantClause: "LOWER(title) LIKE LOWER(:title) ",
			wantArgs:   map[string]any{"title": "%light%"},
		},
		{
			name: "any_like unnests the array column",
			filter: dto.Filter{
				Field:    "artists",
				Value:    "monet",
				Operator: dto.FilterOperatorAnyLike,
				Table:    "exhibitions",
			},
			wantClause: "EXISTS (SELECT 1 FROM unnest(exhibitions.artists) AS entry WHERE entry ILIKE :artists) ",
			wantArgs:   map[string]any{"artists": "%monet%"},
		},
		{
			name: "text search uses plainto_tsquery",
			filter: dto.Filter{
				Field:    "search_vector",
				Value:    "impressionism paris",
				Operator: dto.FilterOperatorText,
			},
			wantClause: "search_vector @@ plainto_tsquery('simple', :search_vector) ",
			wantArgs:   map[string]any{"search_vector": "impressionism paris"},
		},
		{
			name: "in expands the slice to named params",
			filter: dto.Filter{
				Field:    "id",
				Value:    []string{"e1", "e2"},
				Operator: dto.FilterOperatorIn,
			},
			wantClause: "id IN (:id_0, :id_1) ",
			wantArgs:   map[string]any{"id_0": "e1", "id_1": "e2"},
		},
		{
			name: "greater_eq with custom arg name",
			filter: dto.Filter{
				ArgName:  "eligible_from",
				Field:    "end_date",
				Value:    "2026-08-29",
				Operator: dto.FilterOperatorGreaterEq,
			},
			wantClause: "end_date >= :eligible_from",
			wantArgs:   map[string]any{"eligible_from": "2026-08-29"},
		},
		{
			name: "is_not_null takes no args",
			filter: dto.Filter{
				Field:    "latitude",
				Operator: dto.FilterIsNotNull,
				Table:    "exhibitions",
			},
			wantClause: "exhibitions.latitude IS NOT NULL",
			wantArgs:   map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantClause, clause)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroupGetWhereClause(t *testing.T) {
	t.Run("empty group yields no clause", func(t *testing.T) {
		group := dto.FilterGroup{}

		clause, args := group.GetWhereClause()

		assert.Empty(t, clause)
		assert.Empty(t, args)
	})

	t.Run("joins filters with the group operator", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "active", Value: true, Operator: dto.FilterOperatorEq},
				dto.Filter{Field: "featured", Value: true, Operator: dto.FilterOperatorEq},
			},
		}

		clause, args := group.GetWhereClause()

		assert.Equal(t, "(active = :active AND featured = :featured)", clause)
		assert.Equal(t, map[string]any{"active": true, "featured": true}, args)
	})

	t.Run("nested groups keep their own operator", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "active", Value: true, Operator: dto.FilterOperatorEq},
				dto.FilterGroup{
					Operator: dto.FilterGroupOperatorOr,
					Filters: []any{
						dto.Filter{Field: "city", Value: "London", Operator: dto.FilterOperatorEq},
						dto.Filter{ArgName: "city_alt", Field: "city", Value: "Paris", Operator: dto.FilterOperatorEq},
					},
				},
			},
		}

		clause, args := group.GetWhereClause()

		assert.Equal(t, "(active = :active AND (city = :city OR city = :city_alt))", clause)
		assert.Len(t, args, 3)
	})
}
