package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evyataryagoni/citysuggest/internal/models"
)

func TestAutocomplete_MinLength(t *testing.T) {
	ac := NewAutocomplete(models.SuggestionList{"Paris", "London", "Lyon"}, models.DefaultBindOptions())

	t.Run("below threshold", func(t *testing.T) {
		assert.Nil(t, ac.Suggest("L"))
		assert.Nil(t, ac.Suggest(""))
	})

	t.Run("at threshold", func(t *testing.T) {
		assert.Equal(t, []string{"London"}, ac.Suggest("Lo"))
	})

	t.Run("above threshold", func(t *testing.T) {
		assert.Equal(t, []string{"Paris"}, ac.Suggest("Par"))
	})

	t.Run("surrounding spaces do not count", func(t *testing.T) {
		opts := models.DefaultBindOptions()
		opts.MinLength = 3
		ac := NewAutocomplete(models.SuggestionList{"London"}, opts)
		assert.Nil(t, ac.Suggest("Lo "))
		assert.Nil(t, ac.Suggest(" Lo"))
		assert.Equal(t, []string{"London"}, ac.Suggest("Lon "))
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		ac := NewAutocomplete(models.SuggestionList{"Ürümqi"}, models.DefaultBindOptions())
		assert.Nil(t, ac.Suggest("Ü"))
		assert.Equal(t, []string{"Ürümqi"}, ac.Suggest("Ür"))
	})
}

func TestAutocomplete_ZeroMinLength(t *testing.T) {
	opts := models.DefaultBindOptions()
	opts.MinLength = 0
	ac := NewAutocomplete(models.SuggestionList{"Paris", "London"}, opts)

	assert.Equal(t, []string{"Paris", "London"}, ac.Suggest(""))
}

func TestAutocomplete_EmptySource(t *testing.T) {
	opts := models.DefaultBindOptions()
	opts.MinLength = 0
	ac := NewAutocomplete(models.SuggestionList{}, opts)

	for _, typed := range []string{"", "L", "Lo", "London"} {
		assert.Nil(t, ac.Suggest(typed), "typed %q", typed)
	}
}

func TestAutocomplete_Options(t *testing.T) {
	opts := models.BindOptions{
		MinLength: 3,
		Position: models.Position{
			My:        "right top+5",
			At:        "right bottom",
			Collision: "flip fit",
		},
	}
	ac := NewAutocomplete(models.SuggestionList{"Paris"}, opts)

	assert.Equal(t, opts, ac.Options())
}
