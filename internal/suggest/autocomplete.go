package suggest

import (
	"unicode/utf8"

	"github.com/evyataryagoni/citysuggest/internal/models"
)

// Autocomplete is the configuration attached to one input: the suggestion
// source plus the options it was bound with. It answers what the dropdown
// shows for a given input value.
type Autocomplete struct {
	Source    models.SuggestionList
	MinLength int
	Position  models.Position

	index *Index
}

// NewAutocomplete creates a binding of source with opts.
// Options are kept exactly as given.
func NewAutocomplete(source models.SuggestionList, opts models.BindOptions) *Autocomplete {
	return &Autocomplete{
		Source:    source,
		MinLength: opts.MinLength,
		Position:  opts.Position,
		index:     NewIndex(source),
	}
}

// Options returns the options this binding was created with
func (a *Autocomplete) Options() models.BindOptions {
	return models.BindOptions{
		MinLength: a.MinLength,
		Position:  a.Position,
	}
}

// Suggest returns the suggestions for the current input value.
// Nothing is offered until the normalised value has at least MinLength
// characters, so surrounding spaces and punctuation do not count.
func (a *Autocomplete) Suggest(typed string) []string {
	if utf8.RuneCountInString(normalize(typed)) < a.MinLength {
		return nil
	}
	if a.index.Len() == 0 {
		return nil
	}
	return a.index.Match(typed)
}
