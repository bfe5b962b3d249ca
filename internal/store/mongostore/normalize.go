// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

package mongostore

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tomtom215/foodiug/internal/models"
	"github.com/tomtom215/foodiug/internal/store"
)

// toRestaurant converts a decoded BSON document into plain Go values so the
// JSON encoder renders ids as hex strings and nested data as objects.
func toRestaurant(m bson.M) models.Restaurant {
	out := make(models.Restaurant, len(m))
	for k, v := range m {
		out[k] = normalize(v)
	}
	return out
}

func normalize(v any) any {
	switch t := v.(type) {
	case bson.ObjectID:
		return t.Hex()
	case bson.DateTime:
		return t.Time().UTC()
	case bson.M:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = normalize(e)
		}
		return out
	case bson.D:
		out := make(map[string]any, len(t))
		for _, e := range t {
			out[e.Key] = normalize(e.Value)
		}
		return out
	case bson.A:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalize(e)
		}
		return out
	default:
		return v
	}
}

// fromRestaurant prepares a document for insertion. The _id is always an
// ObjectID: hex strings are converted and anything else is replaced, so
// FindByID can reach every stored document.
func fromRestaurant(r models.Restaurant) bson.M {
	out := make(bson.M, len(r)+1)
	for k, v := range r {
		out[k] = v
	}
	_, id := store.EnsureID(r)
	oid, _ := bson.ObjectIDFromHex(id)
	out[models.FieldID] = oid
	return out
}
