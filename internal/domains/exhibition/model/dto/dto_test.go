package dto_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"arthive/internal/domains/exhibition/model"
	"arthive/internal/domains/exhibition/model/dto"
	gDto "arthive/shared/dto"
	gModel "arthive/shared/model"
	"arthive/shared/timezone"
)

func TestSearchExhibitionsRequest_ToFilterGroup(t *testing.T) {
	t.Run("empty request keeps only the active filter", func(t *testing.T) {
		req := dto.SearchExhibitionsRequest{}

		group := req.ToFilterGroup()

		assert.Len(t, group.Filters, 1)

		active, ok := group.Filters[0].(gDto.Filter)
		if assert.True(t, ok) {
			assert.Equal(t, model.FieldActive, active.Field)
			assert.Equal(t, true, active.Value)
		}
	})

	t.Run("every field contributes a predicate", func(t *testing.T) {
		start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)

		req := dto.SearchExhibitionsRequest{
			City:      "London",
			Country:   "UK",
			Category:  "painting",
			Artist:    "monet",
			Search:    "impressionism",
			StartDate: &start,
			EndDate:   &end,
		}

		group := req.ToFilterGroup()

		// active + 5 fields + 2 date bounds
		assert.Len(t, group.Filters, 8)
	})

	t.Run("date range matches by overlap", func(t *testing.T) {
		start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)

		req := dto.SearchExhibitionsRequest{StartDate: &start, EndDate: &end}

		group := req.ToFilterGroup()

		var fields []string
		for _, raw := range group.Filters {
			if filter, ok := raw.(gDto.Filter); ok {
				fields = append(fields, filter.Field+" "+filter.Operator)
			}
		}

		// an exhibition overlaps [start, end] when it ends after the range
		// begins and starts before the range ends
		assert.Contains(t, fields, model.FieldEndDate+" "+gDto.FilterOperatorGreaterEq)
		assert.Contains(t, fields, model.FieldStartDate+" "+gDto.FilterOperatorLessEq)
	})
}

func TestCreateExhibitionRequest_ToModel(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	lat := 51.5074

	req := dto.CreateExhibitionRequest{
		Title:    "Color Fields",
		City:     "London",
		VenueID:  "11111111-1111-1111-1111-111111111111",
		Latitude: &lat,
		Artists:  []string{"Rothko"},
	}

	mod := req.ToModel("admin-1", "https://cdn.example.com/cover.jpg", start, end)

	assert.NotEmpty(t, mod.ID, "expected ID to be generated")
	assert.Equal(t, req.Title, mod.Title)
	assert.Equal(t, "https://cdn.example.com/cover.jpg", mod.CoverImage)
	assert.Equal(t, start, mod.StartDate)
	assert.Equal(t, end, mod.EndDate)
	assert.True(t, mod.Active, "exhibitions default to active")
	assert.False(t, mod.Featured)
	assert.True(t, mod.VenueID.Valid)
	assert.True(t, mod.Latitude.Valid)
	assert.Equal(t, lat, mod.Latitude.Float64)
	assert.Equal(t, "admin-1", mod.CreatedBy)
	assert.False(t, mod.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestExhibitionResponse_FromModel(t *testing.T) {
	now := timezone.Now()

	mod := model.Exhibition{
		ID:        "e1",
		Title:     "Light and Shadow",
		StartDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		City:      "London",
		Latitude:  sql.NullFloat64{Float64: 51.5074, Valid: true},
		VenueID:   sql.NullString{String: "v1", Valid: true},
		VenueName: sql.NullString{String: "National Gallery", Valid: true},
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "admin-1",
			ModifiedBy: "admin-1",
		},
	}

	var res dto.ExhibitionResponse
	res.FromModel(mod)

	assert.Equal(t, "e1", res.ID)
	assert.Equal(t, "2026-09-01", res.StartDate)
	assert.Equal(t, "2026-10-01", res.EndDate)

	if assert.NotNil(t, res.Latitude) {
		assert.Equal(t, 51.5074, *res.Latitude)
	}

	if assert.NotNil(t, res.Venue, "venue join fields should surface as a summary") {
		assert.Equal(t, "v1", res.Venue.ID)
		assert.Equal(t, "National Gallery", res.Venue.Name)
	}

	assert.Nil(t, res.TicketPrice)
	assert.Nil(t, res.DistanceKm)
}

func TestSearchExhibitionsResponse_FromModels(t *testing.T) {
	models := []model.Exhibition{
		{ID: "e1", StartDate: time.Now(), EndDate: time.Now()},
		{ID: "e2", StartDate: time.Now(), EndDate: time.Now()},
	}

	var res dto.SearchExhibitionsResponse
	res.FromModels(models, 41, 20)

	assert.Equal(t, 41, res.TotalData)
	assert.Equal(t, 3, res.TotalPage)
	assert.Len(t, res.Exhibitions, 2)
}
