package binder

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tidwall/gjson"

	"github.com/evyataryagoni/citysuggest/internal/models"
)

var anchorToken = regexp.MustCompile(`^(left|center|right|top|bottom)([+-]\d+%?)?$`)

var collisionTokens = map[string]bool{
	"none":    true,
	"flip":    true,
	"fit":     true,
	"flipfit": true,
}

// NewValidator returns a validator that knows the position rules used by
// models.BindOptions ("anchor" and "collision").
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("anchor", func(fl validator.FieldLevel) bool {
		return validTokens(fl.Field().String(), func(tok string) bool {
			return anchorToken.MatchString(tok)
		})
	})
	v.RegisterValidation("collision", func(fl validator.FieldLevel) bool {
		return validTokens(fl.Field().String(), func(tok string) bool {
			return collisionTokens[tok]
		})
	})
	return v
}

// validTokens accepts one value for both axes or one value per axis
func validTokens(value string, valid func(string) bool) bool {
	tokens := strings.Fields(value)
	if len(tokens) == 0 || len(tokens) > 2 {
		return false
	}
	for _, tok := range tokens {
		if !valid(tok) {
			return false
		}
	}
	return true
}

// ValidateOptions checks opts with a fresh validator
func ValidateOptions(opts models.BindOptions) error {
	return validateOptions(NewValidator(), opts)
}

func validateOptions(v *validator.Validate, opts models.BindOptions) error {
	if err := v.Struct(opts); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return nil
}

// ParseOptions reads bind options from a JSON object such as
// {"minLength": 3, "position": {"my": "left top"}}. Missing or mistyped keys
// keep their default and a fractional minLength is rounded up; the result
// still has to pass ValidateOptions.
func ParseOptions(raw string) models.BindOptions {
	opts := models.DefaultBindOptions()
	if !gjson.Valid(raw) {
		return opts
	}

	res := gjson.Parse(raw)
	if v := res.Get("minLength"); v.Type == gjson.Number {
		// the widget compares whole characters, so 2.5 needs 3
		opts.MinLength = int(math.Ceil(v.Num))
	}
	if v := res.Get("position.my"); v.Type == gjson.String {
		opts.Position.My = v.Str
	}
	if v := res.Get("position.at"); v.Type == gjson.String {
		opts.Position.At = v.Str
	}
	if v := res.Get("position.collision"); v.Type == gjson.String {
		opts.Position.Collision = v.Str
	}
	return opts
}
