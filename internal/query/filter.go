// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

// Package query turns restaurant search parameters into a backend-neutral
// predicate.
//
// A Filter is a list of conditions joined with AND. Store backends either
// render it to their native query language (see mongostore.FilterDocument)
// or evaluate it in-process with Filter.Match. Both paths must agree.
//
//	f := query.Parse(r.URL.Query())
//	docs, err := restaurants.Find(ctx, city.Rabat, f)
//
// A Filter is immutable after Parse and safe for concurrent use.
package query

import (
	"regexp"
	"strings"
)

// Op identifies how a Condition compares a document field.
type Op int

const (
	// OpMatchAny holds when the field, a string or an array of strings, has
	// some element matching any pattern.
	OpMatchAny Op = iota

	// OpElemMatchAny is OpMatchAny restricted to array fields.
	OpElemMatchAny

	// OpGte holds when the numeric field is >= Number.
	OpGte

	// OpEquals holds when the field equals Value, or is an array containing it.
	OpEquals
)

func (o Op) String() string {
	switch o {
	case OpMatchAny:
		return "match_any"
	case OpElemMatchAny:
		return "elem_match_any"
	case OpGte:
		return "gte"
	case OpEquals:
		return "equals"
	default:
		return "unknown"
	}
}

// Pattern is a case-insensitive regular expression taken from user input.
type Pattern struct {
	// Source is the expression handed to the store. It is the raw input when
	// that compiles, otherwise the input quoted as a literal.
	Source string
	re     *regexp.Regexp
}

// NewPattern compiles raw case-insensitively. Input that is not a valid
// expression is matched literally instead of being rejected.
func NewPattern(raw string) Pattern {
	re, err := regexp.Compile("(?i)" + raw)
	if err != nil {
		quoted := regexp.QuoteMeta(raw)
		return Pattern{Source: quoted, re: regexp.MustCompile("(?i)" + quoted)}
	}
	return Pattern{Source: raw, re: re}
}

// MatchString reports whether s contains a match.
func (p Pattern) MatchString(s string) bool {
	if p.re == nil {
		p = NewPattern(p.Source)
	}
	return p.re.MatchString(s)
}

// Condition is one clause of a Filter.
type Condition struct {
	Field    string
	Op       Op
	Patterns []Pattern // OpMatchAny, OpElemMatchAny
	Number   float64   // OpGte
	Value    any       // OpEquals
}

// Filter is a conjunction of conditions. The zero value matches everything.
type Filter struct {
	Conditions []Condition
}

// Empty reports whether f has no conditions.
func (f Filter) Empty() bool {
	return len(f.Conditions) == 0
}

// And returns a new filter holding the conditions of f followed by c.
func (f Filter) And(c ...Condition) Filter {
	out := make([]Condition, 0, len(f.Conditions)+len(c))
	out = append(out, f.Conditions...)
	out = append(out, c...)
	return Filter{Conditions: out}
}

// RatingAtLeast matches documents whose rating is >= minimum.
func RatingAtLeast(minimum float64) Filter {
	return Filter{Conditions: []Condition{{Field: "rating", Op: OpGte, Number: minimum}}}
}

// escapeDollar makes '$' literal so price tiers like "$$" do not anchor.
func escapeDollar(s string) string {
	return strings.ReplaceAll(s, "$", `\$`)
}
