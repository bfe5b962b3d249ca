// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

package query

import "github.com/tomtom215/foodiug/internal/models"

// Match reports whether doc satisfies every condition of f, following the
// same rules MongoDB applies to the rendered query. Missing fields never match.
func (f Filter) Match(doc models.Restaurant) bool {
	for i := range f.Conditions {
		if !f.Conditions[i].match(doc) {
			return false
		}
	}
	return true
}

func (c *Condition) match(doc models.Restaurant) bool {
	v, ok := doc[c.Field]
	if !ok {
		return false
	}

	switch c.Op {
	case OpMatchAny:
		if s, ok := v.(string); ok {
			return c.anyPattern(s)
		}
		return c.anyElement(v)
	case OpElemMatchAny:
		return c.anyElement(v)
	case OpGte:
		n, ok := toFloat(v)
		return ok && n >= c.Number
	case OpEquals:
		if equal(v, c.Value) {
			return true
		}
		for _, e := range toSlice(v) {
			if equal(e, c.Value) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func (c *Condition) anyElement(v any) bool {
	for _, e := range toSlice(v) {
		if s, ok := e.(string); ok && c.anyPattern(s) {
			return true
		}
	}
	return false
}

func (c *Condition) anyPattern(s string) bool {
	for _, p := range c.Patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

func toSlice(v any) []any {
	switch t := v.(type) {
	case []any:
		return t
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	default:
		return nil
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func equal(a, b any) bool {
	switch bv := b.(type) {
	case string:
		av, ok := a.(string)
		return ok && av == bv
	case bool:
		av, ok := a.(bool)
		return ok && av == bv
	default:
		return false
	}
}
