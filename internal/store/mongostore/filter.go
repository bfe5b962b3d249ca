// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

package mongostore

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tomtom215/foodiug/internal/query"
)

// FilterDocument renders f as a MongoDB query document. An empty filter
// renders as an empty document, which matches the whole collection.
//
//	type=café&priceLevel=$$&rating=4
//	{type: {$in: [/café/i]}, $or: [{priceLevel: {$elemMatch: {$regex: "\$\$", $options: "i"}}}], rating: {$gte: 4}}
func FilterDocument(f query.Filter) bson.D {
	doc := bson.D{}
	for _, c := range f.Conditions {
		switch c.Op {
		case query.OpMatchAny:
			in := make(bson.A, len(c.Patterns))
			for i, p := range c.Patterns {
				in[i] = bson.Regex{Pattern: p.Source, Options: "i"}
			}
			doc = append(doc, bson.E{Key: c.Field, Value: bson.D{{Key: "$in", Value: in}}})

		case query.OpElemMatchAny:
			or := make(bson.A, len(c.Patterns))
			for i, p := range c.Patterns {
				or[i] = bson.D{{Key: c.Field, Value: bson.D{{Key: "$elemMatch", Value: bson.D{
					{Key: "$regex", Value: p.Source},
					{Key: "$options", Value: "i"},
				}}}}}
			}
			doc = append(doc, bson.E{Key: "$or", Value: or})

		case query.OpGte:
			doc = append(doc, bson.E{Key: c.Field, Value: bson.D{{Key: "$gte", Value: c.Number}}})

		case query.OpEquals:
			doc = append(doc, bson.E{Key: c.Field, Value: c.Value})
		}
	}
	return doc
}
