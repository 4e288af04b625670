package binder

import (
	"strings"
	"sync"

	"github.com/evyataryagoni/citysuggest/internal/suggest"
)

// Input is a text input that can carry an autocomplete binding.
// Autocomplete replaces any binding the input already has.
type Input interface {
	Autocomplete(ac *suggest.Autocomplete)
}

// Document resolves selectors to inputs
type Document interface {
	Query(selector string) (Input, bool)
}

// Page is an in-memory Document holding inputs by id.
// Selectors are "#id" or a bare id.
type Page struct {
	mu     sync.RWMutex
	fields map[string]*Field
}

// NewPage creates a page with one input per id
func NewPage(ids ...string) *Page {
	p := &Page{fields: make(map[string]*Field)}
	for _, id := range ids {
		p.AddInput(id)
	}
	return p
}

// AddInput adds an input to the page, returning the existing one if the id is taken
func (p *Page) AddInput(id string) *Field {
	p.mu.Lock()
	defer p.mu.Unlock()

	if f, ok := p.fields[id]; ok {
		return f
	}
	f := &Field{id: id}
	p.fields[id] = f
	return f
}

// Field returns the input with the given id, or nil
func (p *Page) Field(id string) *Field {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.fields[id]
}

// Query implements Document
func (p *Page) Query(selector string) (Input, bool) {
	id := strings.TrimPrefix(strings.TrimSpace(selector), "#")
	if id == "" || strings.ContainsAny(id, " .#[>:") {
		return nil, false
	}

	f := p.Field(id)
	if f == nil {
		return nil, false
	}
	return f, true
}

// Field is a text input on a Page
type Field struct {
	id string

	mu    sync.RWMutex
	ac    *suggest.Autocomplete
	binds int
}

// ID returns the input's id
func (f *Field) ID() string {
	return f.id
}

// Autocomplete implements Input
func (f *Field) Autocomplete(ac *suggest.Autocomplete) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ac = ac
	f.binds++
}

// Config returns the active binding, or nil for a plain text field
func (f *Field) Config() *suggest.Autocomplete {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.ac
}

// Bound reports whether the input has an autocomplete binding
func (f *Field) Bound() bool {
	return f.Config() != nil
}

// BindCount returns how many times the input has been bound
func (f *Field) BindCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.binds
}

// Type returns what the dropdown offers once the input holds text.
// A plain text field offers nothing.
func (f *Field) Type(text string) []string {
	ac := f.Config()
	if ac == nil {
		return nil
	}
	return ac.Suggest(text)
}
