//go:build js

// Command binder is compiled with GopherJS and exposes bindSuggestions to the page:
//
//	bindSuggestions("/_autocomplete", "#city_autocomplete", {minLength: 2}, function(result) {...})
//
// The callback is optional and receives {state, count, error}.
package main

import (
	"context"
	"net/http"

	"github.com/gopherjs/gopherjs/js"

	"github.com/evyataryagoni/citysuggest/internal/binder"
	"github.com/evyataryagoni/citysuggest/internal/logger"
	"github.com/evyataryagoni/citysuggest/internal/suggest"
)

// jqueryDocument resolves selectors with jQuery
type jqueryDocument struct{}

func (jqueryDocument) Query(selector string) (binder.Input, bool) {
	el := js.Global.Call("jQuery", selector)
	if el == nil || el == js.Undefined || el.Length() == 0 {
		return nil, false
	}
	return jqueryInput{el: el}, true
}

// jqueryInput is a jQuery UI autocomplete widget host
type jqueryInput struct {
	el *js.Object
}

// Autocomplete hands the widget a source callback backed by ac, so the
// dropdown filters exactly like Autocomplete.Suggest.
func (in jqueryInput) Autocomplete(ac *suggest.Autocomplete) {
	in.el.Call("autocomplete", js.M{
		"source": func(request, response *js.Object) {
			matches := ac.Suggest(request.Get("term").String())
			items := make([]interface{}, len(matches))
			for i, name := range matches {
				items[i] = name
			}
			response.Invoke(items)
		},
		"minLength": ac.MinLength,
		"position": js.M{
			"my":        ac.Position.My,
			"at":        ac.Position.At,
			"collision": ac.Position.Collision,
		},
	})
}

func main() {
	b := binder.New(jqueryDocument{}, http.DefaultClient, logger.New(logger.Config{Level: "warn"}))

	js.Global.Set("bindSuggestions", func(endpointURL, selector string, options *js.Object, callback *js.Object) {
		raw := ""
		if options != nil && options != js.Undefined {
			raw = js.Global.Get("JSON").Call("stringify", options).String()
		}
		opts := binder.ParseOptions(raw)

		// Bind blocks on the fetch, the page must stay responsive
		go func() {
			result := b.Bind(context.Background(), endpointURL, selector, opts)
			if callback == nil || callback == js.Undefined {
				return
			}

			errText := ""
			if result.Err != nil {
				errText = result.Err.Error()
			}
			callback.Invoke(js.M{
				"state": result.State.String(),
				"count": result.Count,
				"error": errText,
			})
		}()
	})
}
