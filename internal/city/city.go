// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

// Package city is the closed set of cities the directory serves.
//
// Each city is an isolated restaurant partition. The set is fixed at
// build time and never discovered from stored data; selecting a city
// outside it fails before any store access.
package city

import (
	"errors"
	"fmt"
)

// City identifies one restaurant partition. Its value is the partition
// name used by the stores (the MongoDB collection name).
type City string

// Supported cities, in enumeration order.
const (
	Rabat  City = "Rabat"
	Tanger City = "Tanger"
)

var supported = []City{Rabat, Tanger}

// ErrUnknownCity is returned by Resolve for names outside the supported set.
var ErrUnknownCity = errors.New("unknown city")

// UnknownCityError carries the rejected name.
type UnknownCityError struct {
	Name string
}

func (e *UnknownCityError) Error() string {
	return fmt.Sprintf("city %q is not available", e.Name)
}

// Is makes errors.Is(err, ErrUnknownCity) hold.
func (e *UnknownCityError) Is(target error) bool {
	return target == ErrUnknownCity
}

// Resolve maps a name to its partition. The match is exact and case-sensitive:
// "rabat" is not Rabat.
func Resolve(name string) (City, error) {
	for _, c := range supported {
		if string(c) == name {
			return c, nil
		}
	}
	return "", &UnknownCityError{Name: name}
}

// Supported returns the cities in their fixed order. The slice is a copy.
func Supported() []City {
	out := make([]City, len(supported))
	copy(out, supported)
	return out
}

// Names returns Supported as plain strings, for response bodies.
func Names() []string {
	out := make([]string, len(supported))
	for i, c := range supported {
		out[i] = string(c)
	}
	return out
}

// Valid reports whether c belongs to the supported set.
func (c City) Valid() bool {
	_, err := Resolve(string(c))
	return err == nil
}

func (c City) String() string {
	return string(c)
}
