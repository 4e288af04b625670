package binder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/tidwall/gjson"

	"github.com/evyataryagoni/citysuggest/internal/logger"
	"github.com/evyataryagoni/citysuggest/internal/models"
	"github.com/evyataryagoni/citysuggest/internal/suggest"
)

// maxBodySize caps the suggestion list response
const maxBodySize = 8 << 20

var (
	ErrInvalidOptions = errors.New("invalid bind options")
	ErrFetch          = errors.New("suggestion retrieval failed")
	ErrDecode         = errors.New("suggestion list is not a JSON array of strings")
	ErrInputNotFound  = errors.New("input not found")
)

// State is the outcome of a Bind call
type State int

const (
	Unbound State = iota
	Bound
)

func (s State) String() string {
	if s == Bound {
		return "bound"
	}
	return "unbound"
}

// Result reports what Bind did. Err is set whenever State is Unbound.
type Result struct {
	State State
	Count int // number of suggestions attached
	Err   error
}

// Binder fetches a suggestion list and attaches it to an input.
//
// Flow per Bind call:
//  1. Validate options
//  2. GET the endpoint once (no retry)
//  3. Decode the body as a JSON array of strings
//  4. Resolve the input and attach the binding
//
// Any failure leaves the input as a plain text field and is logged as a warning.
type Binder struct {
	document Document
	client   *http.Client
	validate *validator.Validate
	logger   *logger.Logger
}

// New creates a binder for doc. A nil client uses http.DefaultClient,
// a nil logger the default logger.
func New(doc Document, client *http.Client, log *logger.Logger) *Binder {
	if client == nil {
		client = http.DefaultClient
	}
	if log == nil {
		log = logger.NewDefault()
	}
	return &Binder{
		document: doc,
		client:   client,
		validate: NewValidator(),
		logger:   log.WithComponent("Binder"),
	}
}

// Bind retrieves endpointURL and binds the list to the input matched by selector
func (b *Binder) Bind(ctx context.Context, endpointURL, selector string, opts models.BindOptions) Result {
	if err := validateOptions(b.validate, opts); err != nil {
		return b.unbound(endpointURL, selector, err)
	}

	list, err := b.Fetch(ctx, endpointURL)
	if err != nil {
		return b.unbound(endpointURL, selector, err)
	}

	input, ok := b.document.Query(selector)
	if !ok {
		return b.unbound(endpointURL, selector, fmt.Errorf("%w: %s", ErrInputNotFound, selector))
	}

	input.Autocomplete(suggest.NewAutocomplete(list, opts))

	b.logger.Debug().
		Str("endpoint", endpointURL).
		Str("selector", selector).
		Int("suggestions", len(list)).
		Int("min_length", opts.MinLength).
		Msg("Suggestions bound")

	return Result{State: Bound, Count: len(list)}
}

// Fetch performs the single GET of endpointURL and decodes the suggestion list
func (b *Binder) Fetch(ctx context.Context, endpointURL string) (models.SuggestionList, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpointURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrFetch, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	return decodeList(body)
}

func decodeList(body []byte) (models.SuggestionList, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrDecode)
	}

	res := gjson.ParseBytes(body)
	if !res.IsArray() {
		return nil, fmt.Errorf("%w: got %s", ErrDecode, res.Type)
	}

	list := make(models.SuggestionList, 0)
	var bad error
	res.ForEach(func(_, value gjson.Result) bool {
		if value.Type != gjson.String {
			bad = fmt.Errorf("%w: element %d is %s", ErrDecode, len(list), value.Type)
			return false
		}
		list = append(list, value.Str)
		return true
	})
	if bad != nil {
		return nil, bad
	}

	return list, nil
}

func (b *Binder) unbound(endpointURL, selector string, err error) Result {
	b.logger.Warn().
		Err(err).
		Str("endpoint", endpointURL).
		Str("selector", selector).
		Msg("Suggestions not bound, input left as plain text field")
	return Result{State: Unbound, Err: err}
}
