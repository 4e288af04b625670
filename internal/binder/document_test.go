package binder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPage_Query(t *testing.T) {
	page := NewPage("city_autocomplete", "search")

	tests := []struct {
		selector string
		found    bool
	}{
		{"#city_autocomplete", true},
		{"city_autocomplete", true},
		{" #search ", true},
		{"#missing", false},
		{"", false},
		{"#", false},
		{".city_autocomplete", false},
		{"form #search", false},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			input, ok := page.Query(tt.selector)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.NotNil(t, input)
			}
		})
	}
}

func TestPage_AddInput_Existing(t *testing.T) {
	page := NewPage()
	first := page.AddInput("city")
	second := page.AddInput("city")

	assert.Same(t, first, second)
	assert.Equal(t, "city", first.ID())
}

func TestField_Plain(t *testing.T) {
	field := NewPage("city").Field("city")

	assert.False(t, field.Bound())
	assert.Nil(t, field.Config())
	assert.Nil(t, field.Type("anything"))
	assert.Equal(t, 0, field.BindCount())
}
