// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

// Package seed imports restaurant datasets into empty city partitions.
//
// The directory holds one file per city named after it (Rabat.json,
// Tanger.json). A file is either a JSON array of documents or the JSON lines
// written by mongoexport. Extended-JSON wrappers are flattened to plain
// values: $oid to its hex string, $numberInt, $numberLong, $numberDouble and
// $numberDecimal to a number, and $date to an RFC 3339 UTC string.
package seed

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/foodiug/internal/city"
	"github.com/tomtom215/foodiug/internal/logging"
	"github.com/tomtom215/foodiug/internal/models"
	"github.com/tomtom215/foodiug/internal/store"
)

// Result is the number of documents imported per city. Cities skipped
// because their file is missing or their partition is populated are absent.
type Result map[city.City]int

// LoadDir imports <dir>/<Ville>.json for every supported city whose
// partition is empty.
func LoadDir(ctx context.Context, s store.RestaurantStore, dir string) (Result, error) {
	log := logging.WithComponent("seed")
	result := Result{}

	for _, c := range city.Supported() {
		path := filepath.Join(dir, c.String()+".json")

		existing, err := s.Count(ctx, c)
		if err != nil {
			return result, fmt.Errorf("count %s: %w", c, err)
		}
		if existing > 0 {
			log.Debug().Str("ville", c.String()).Int64("existing", existing).Msg("Partition already populated, skipping seed")
			continue
		}

		docs, err := ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			log.Debug().Str("path", path).Msg("No seed file")
			continue
		}
		if err != nil {
			return result, err
		}
		if len(docs) == 0 {
			continue
		}

		if err := s.InsertMany(ctx, c, docs); err != nil {
			return result, fmt.Errorf("seed %s: %w", c, err)
		}
		result[c] = len(docs)
		log.Info().Str("ville", c.String()).Int("count", len(docs)).Msg("Seeded restaurants")
	}

	return result, nil
}

// ReadFile decodes one dataset file.
func ReadFile(path string) ([]models.Restaurant, error) {
	f, err := os.Open(path) //nolint:gosec // path is built from config and a fixed city name
	if err != nil {
		return nil, err
	}
	defer f.Close()

	docs, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return docs, nil
}

// Decode reads a JSON array or a stream of JSON documents.
func Decode(r io.Reader) ([]models.Restaurant, error) {
	br := bufio.NewReader(r)
	first, err := peekNonSpace(br)
	if errors.Is(err, io.EOF) {
		return []models.Restaurant{}, nil
	}
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(br)
	var docs []models.Restaurant

	if first == '[' {
		if err := dec.Decode(&docs); err != nil {
			return nil, err
		}
	} else {
		for {
			var doc models.Restaurant
			err := dec.Decode(&doc)
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return nil, fmt.Errorf("document %d: %w", len(docs)+1, err)
			}
			docs = append(docs, doc)
		}
	}

	for i, doc := range docs {
		docs[i] = flatten(doc)
	}
	return docs, nil
}

// peekNonSpace skips a UTF-8 byte order mark and leading whitespace and
// returns the first significant byte without consuming it.
func peekNonSpace(br *bufio.Reader) (byte, error) {
	if bom, err := br.Peek(3); err == nil && bytes.Equal(bom, []byte{0xEF, 0xBB, 0xBF}) {
		_, _ = br.Discard(3)
	}
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b, br.UnreadByte()
	}
}

// flatten replaces extended-JSON wrappers anywhere in doc with plain values.
func flatten(doc models.Restaurant) models.Restaurant {
	for k, v := range doc {
		doc[k] = flattenValue(v)
	}
	return doc
}

func flattenValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		if len(t) == 1 {
			if plain, ok := unwrap(t); ok {
				return plain
			}
		}
		for k, e := range t {
			t[k] = flattenValue(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = flattenValue(e)
		}
		return t
	default:
		return v
	}
}

// unwrap converts a single-key extended-JSON wrapper. Wrappers it cannot
// read are reported as not ok and kept as objects.
func unwrap(m map[string]any) (any, bool) {
	for key, inner := range m {
		switch key {
		case "$oid":
			oid, ok := inner.(string)
			return oid, ok
		case "$numberInt", "$numberLong", "$numberDouble", "$numberDecimal":
			return parseNumber(inner)
		case "$date":
			return parseDate(inner)
		}
	}
	return nil, false
}

func parseNumber(v any) (any, bool) {
	s, ok := v.(string)
	if !ok {
		return nil, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	return f, true
}

// parseDate accepts the relaxed form ("2024-03-01T10:00:00Z") and the
// canonical form ({"$numberLong": "<ms since epoch>"}).
func parseDate(v any) (any, bool) {
	var ms float64
	switch t := v.(type) {
	case string:
		ts, err := time.Parse(time.RFC3339Nano, t)
		if err != nil {
			return nil, false
		}
		return ts.UTC().Format(time.RFC3339Nano), true
	case float64:
		ms = t
	case map[string]any:
		n, ok := t["$numberLong"]
		if !ok || len(t) != 1 {
			return nil, false
		}
		f, ok := parseNumber(n)
		if !ok {
			return nil, false
		}
		ms = f.(float64)
	default:
		return nil, false
	}
	return time.UnixMilli(int64(ms)).UTC().Format(time.RFC3339Nano), true
}
