// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

/*
Package models defines the data shapes shared by the stores, services and HTTP layer.

  - User: account with a bcrypt hash that never leaves the credential path
  - UserSummary: {id, nom, email} returned with a session token
  - Restaurant: open-schema document (map) preserving unknown dataset fields
*/
package models
