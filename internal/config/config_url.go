// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

package config

import (
	"fmt"
	"net/url"
)

// validateMongoURI checks the scheme and host of a MongoDB connection string.
// Supports mongodb:// (host list allowed) and mongodb+srv:// (single host).
func validateMongoURI(rawURI string) error {
	parsedURL, err := url.Parse(rawURI)
	if err != nil {
		return fmt.Errorf("failed to parse URI: %w", err)
	}

	switch parsedURL.Scheme {
	case "mongodb", "mongodb+srv":
	default:
		return fmt.Errorf("scheme must be mongodb or mongodb+srv, got: %s", parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("host is required")
	}

	return nil
}
