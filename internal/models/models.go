package models

// SuggestionList is the ordered list of names offered by an autocomplete input.
// It is supplied in full by the server and never mutated by the client.
type SuggestionList []string

// Position describes where the suggestion dropdown is anchored relative to
// the input, using the jQuery UI position vocabulary.
type Position struct {
	My        string `json:"my" yaml:"my" validate:"required,anchor"`               // Corner of the dropdown, e.g. "left top"
	At        string `json:"at" yaml:"at" validate:"required,anchor"`               // Corner of the input, e.g. "left bottom"
	Collision string `json:"collision" yaml:"collision" validate:"required,collision"` // "none", "flip", "fit", "flipfit"
}

// BindOptions configures an autocomplete binding
type BindOptions struct {
	MinLength int      `json:"minLength" yaml:"min_length" validate:"min=0"`
	Position  Position `json:"position" yaml:"position"`
}

// DefaultBindOptions returns the options used by the search page:
// two characters before suggesting, dropdown directly under the input.
func DefaultBindOptions() BindOptions {
	return BindOptions{
		MinLength: 2,
		Position: Position{
			My:        "left top",
			At:        "left bottom",
			Collision: "none",
		},
	}
}

// SuggestionsResponse is returned by the versioned suggestions endpoint
type SuggestionsResponse struct {
	Term        string         `json:"term"`
	Count       int            `json:"count"`
	Suggestions SuggestionList `json:"suggestions"`
}

// ErrorResponse is the standard error response format
type ErrorResponse struct {
	Error string `json:"error"`
}
