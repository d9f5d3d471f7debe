package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"arthive/shared"
	"arthive/shared/constant"
	gDto "arthive/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	assert.Nil(t, shared.ConvertStringToBool(""))
	assert.Nil(t, shared.ConvertStringToBool("maybe"))

	got := shared.ConvertStringToBool("true")
	if assert.NotNil(t, got) {
		assert.True(t, *got)
	}
}

func TestConvertStringToInt(t *testing.T) {
	got, err := shared.ConvertStringToInt("42")
	assert.NoError(t, err)
	assert.Equal(t, 42, got)

	_, err = shared.ConvertStringToInt("forty-two")
	assert.Error(t, err)
}

func TestConvertStringToFloat(t *testing.T) {
	got, err := shared.ConvertStringToFloat("51.5074")
	assert.NoError(t, err)
	assert.InDelta(t, 51.5074, got, 0.0001)

	_, err = shared.ConvertStringToFloat("north")
	assert.Error(t, err)
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name         string
		total, limit int
		want         int
	}{
		{name: "empty result is one page", total: 0, limit: 20, want: 1},
		{name: "exact fit", total: 40, limit: 20, want: 2},
		{name: "remainder adds a page", total: 41, limit: 20, want: 3},
		{name: "zero limit falls back to one", total: 100, limit: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "exhibition:get:e1", shared.BuildCacheKey("exhibition:get", "e1"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := gDto.QueryParams{Limit: 20, Skip: 0, SortBy: "start_date", SortDir: gDto.SortDirAsc}

	filterA := shared.FilterByID("e1", "id", "exhibitions")
	filterB := shared.FilterByID("e2", "id", "exhibitions")

	keyA := shared.BuildCacheKeyWithQuery("exhibition:list", params, filterA)
	keyAgain := shared.BuildCacheKeyWithQuery("exhibition:list", params, filterA)
	keyB := shared.BuildCacheKeyWithQuery("exhibition:list", params, filterB)

	assert.Equal(t, keyA, keyAgain)
	assert.NotEqual(t, keyA, keyB)
	assert.Contains(t, keyA, "exhibition:list:20:0:start_date:ASC:")
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Title     string   `db:"title"`
		City      string   `db:"city"`
		Untracked string   `json:"untracked"`
		Images    []string `db:"images"`
	}

	req := updateRequest{Title: "New Title", Untracked: "ignored"}

	fields := shared.TransformFields(req, "admin")

	assert.Equal(t, "New Title", fields["title"])
	assert.Equal(t, "admin", fields[constant.FieldModifiedBy])
	assert.NotNil(t, fields[constant.FieldModifiedAt])

	// zero and untagged fields stay out of the update
	assert.NotContains(t, fields, "city")
	assert.NotContains(t, fields, "images")
	assert.NotContains(t, fields, "untracked")
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("e1", "id", "exhibitions")

	assert.Len(t, filter.Filters, 1)

	f, ok := filter.Filters[0].(gDto.Filter)
	if assert.True(t, ok) {
		assert.Equal(t, "id", f.Field)
		assert.Equal(t, "e1", f.Value)
		assert.Equal(t, gDto.FilterOperatorEq, f.Operator)
		assert.Equal(t, "exhibitions", f.Table)
	}
}
