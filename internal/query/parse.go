// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/tomtom215/foodiug/internal/models"
)

// Search parameter names.
const (
	ParamType       = "type"
	ParamCategory   = "category"
	ParamAmbiance   = "ambiance"
	ParamPriceLevel = "priceLevel"
	ParamRating     = "rating"
	ParamHalal      = "halal"
	ParamVegetarien = "vegetarien"
	ParamEnfant     = "enfant"
)

// containsAnyParams map a parameter to the document field it searches.
var containsAnyParams = []struct {
	param string
	field string
}{
	{ParamType, models.FieldType},
	{ParamCategory, models.FieldCategory},
	{ParamAmbiance, models.FieldAmbiance},
}

// Parse builds a Filter from query parameters. Every parameter may repeat;
// empty values are ignored and unknown parameters have no effect. Conditions
// come out in a fixed order so rendered queries are stable.
func Parse(values url.Values) Filter {
	var f Filter

	for _, p := range containsAnyParams {
		vals := nonEmpty(values[p.param])
		if len(vals) == 0 {
			continue
		}
		patterns := make([]Pattern, len(vals))
		for i, v := range vals {
			patterns[i] = NewPattern(v)
		}
		f.Conditions = append(f.Conditions, Condition{Field: p.field, Op: OpMatchAny, Patterns: patterns})
	}

	if vals := nonEmpty(values[ParamPriceLevel]); len(vals) > 0 {
		patterns := make([]Pattern, len(vals))
		for i, v := range vals {
			patterns[i] = NewPattern(escapeDollar(v))
		}
		f.Conditions = append(f.Conditions, Condition{Field: models.FieldPriceLevel, Op: OpElemMatchAny, Patterns: patterns})
	}

	if minimum, ok := minRating(values[ParamRating]); ok {
		f.Conditions = append(f.Conditions, Condition{Field: models.FieldRating, Op: OpGte, Number: minimum})
	}

	if anyOf(values[ParamHalal], "true", "Oui") {
		f.Conditions = append(f.Conditions, Condition{Field: models.FieldHalal, Op: OpEquals, Value: "Oui"})
	}
	if anyOf(values[ParamVegetarien], "true") {
		f.Conditions = append(f.Conditions, Condition{Field: models.FieldVegetarien, Op: OpEquals, Value: true})
	}
	if anyOf(values[ParamEnfant], "true") {
		f.Conditions = append(f.Conditions, Condition{Field: models.FieldEnfant, Op: OpEquals, Value: true})
	}

	return f
}

// Echo returns the raw query for the response: a parameter given once maps
// to its string, a repeated one to the list of its values.
func Echo(values url.Values) map[string]any {
	out := make(map[string]any, len(values))
	for k, vs := range values {
		switch len(vs) {
		case 0:
		case 1:
			out[k] = vs[0]
		default:
			out[k] = append([]string(nil), vs...)
		}
	}
	return out
}

func nonEmpty(vals []string) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// minRating returns the smallest parseable rating; ok is false when none parse.
func minRating(vals []string) (float64, bool) {
	var (
		minimum float64
		found   bool
	)
	for _, v := range vals {
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || n != n { // NaN never compares
			continue
		}
		if !found || n < minimum {
			minimum = n
			found = true
		}
	}
	return minimum, found
}

func anyOf(vals []string, accepted ...string) bool {
	for _, v := range vals {
		for _, a := range accepted {
			if v == a {
				return true
			}
		}
	}
	return false
}
