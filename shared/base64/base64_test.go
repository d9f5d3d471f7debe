package base64_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"arthive/shared/base64"
)

const pngURI = "data:image/png;base64,iVBORw0KGgo="

func TestIsDataURI(t *testing.T) {
	assert.True(t, base64.IsDataURI(pngURI))
	assert.False(t, base64.IsDataURI("https://cdn.example.com/cover.jpg"))
	assert.False(t, base64.IsDataURI("data:image/png,no-encoding-marker"))
}

func TestGetContentType(t *testing.T) {
	assert.Equal(t, "image/png", base64.GetContentType(pngURI))
	assert.Empty(t, base64.GetContentType("https://cdn.example.com/cover.jpg"))
}

func TestStripPrefix(t *testing.T) {
	assert.Equal(t, "iVBORw0KGgo=", base64.StripPrefix(pngURI))
	assert.Equal(t, "plain-value", base64.StripPrefix("plain-value"))
}
