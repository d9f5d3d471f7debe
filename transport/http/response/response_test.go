package response_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"arthive/transport/http/response"
)

func TestWithPagination_MetaEchoes(t *testing.T) {
	t.Run("geo query echoes location and radius", func(t *testing.T) {
		recorder := httptest.NewRecorder()

		response.WithPagination(recorder, 200, map[string]any{}, response.Meta{
			Total:        3,
			Limit:        50,
			UserLocation: &response.Point{Lat: 51.5074, Lng: -0.1278},
			Radius:       10,
		})

		var envelope struct {
			Success bool `json:"success"`
			Meta    struct {
				Total        int             `json:"total"`
				UserLocation *response.Point `json:"userLocation"`
				Radius       float64         `json:"radius"`
			} `json:"meta"`
		}

		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
		assert.Equal(t, 3, envelope.Meta.Total)
		assert.NotNil(t, envelope.Meta.UserLocation)
		assert.Equal(t, 51.5074, envelope.Meta.UserLocation.Lat)
		assert.Equal(t, -0.1278, envelope.Meta.UserLocation.Lng)
		assert.Equal(t, 10.0, envelope.Meta.Radius)
	})

	t.Run("date query echoes the requested day", func(t *testing.T) {
		recorder := httptest.NewRecorder()

		response.WithPagination(recorder, 200, map[string]any{}, response.Meta{
			Total: 1,
			Date:  "2026-09-01",
		})

		var envelope struct {
			Meta struct {
				Date string `json:"date"`
			} `json:"meta"`
		}

		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		assert.Equal(t, "2026-09-01", envelope.Meta.Date)
	})

	t.Run("plain listings omit the echo fields", func(t *testing.T) {
		recorder := httptest.NewRecorder()

		response.WithPagination(recorder, 200, map[string]any{}, response.Meta{
			Total: 2,
			Limit: 20,
		})

		body := recorder.Body.String()

		assert.NotContains(t, body, "userLocation")
		assert.NotContains(t, body, "radius")
		assert.NotContains(t, body, "date")
	})
}
