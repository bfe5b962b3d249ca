// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

package models

// Restaurant field names as stored in the datasets. Vegetarien is capitalized
// in the source data and must stay that way.
const (
	FieldID          = "_id"
	FieldPosition    = "position"
	FieldTitle       = "title"
	FieldAddress     = "address"
	FieldLatitude    = "latitude"
	FieldLongitude   = "longitude"
	FieldRating      = "rating"
	FieldRatingCount = "ratingCount"
	FieldPriceLevel  = "priceLevel"
	FieldType        = "type"
	FieldEnfant      = "enfant"
	FieldHalal       = "halal"
	FieldVegetarien  = "Vegetarien"
	FieldCategory    = "category"
	FieldAmbiance    = "ambiance"
	FieldPhoneNumber = "phoneNumber"
	FieldCID         = "cid"

	// FieldVille is added by the all-cities listing; it is never stored.
	FieldVille = "ville"
)

// Restaurant is an open-schema document. Known fields are listed above;
// anything else from the source data is carried through untouched.
type Restaurant map[string]any

// ID returns the document identifier, or "" when missing.
func (r Restaurant) ID() string {
	id, _ := r[FieldID].(string)
	return id
}

// Clone returns a shallow copy. Nested values are shared.
func (r Restaurant) Clone() Restaurant {
	c := make(Restaurant, len(r)+1)
	for k, v := range r {
		c[k] = v
	}
	return c
}

// WithCity returns a copy tagged with its origin city; r is left unchanged.
func (r Restaurant) WithCity(name string) Restaurant {
	c := r.Clone()
	c[FieldVille] = name
	return c
}
