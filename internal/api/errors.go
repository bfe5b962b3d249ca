// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tomtom215/foodiug/internal/auth"
	"github.com/tomtom215/foodiug/internal/city"
	"github.com/tomtom215/foodiug/internal/store"
	"github.com/tomtom215/foodiug/internal/validation"
)

// Client-facing messages.
const (
	MsgRouteNotFound      = "Route non trouvée"
	MsgRestaurantNotFound = "Restaurant non trouvé"
	MsgUserNotFound       = "Utilisateur non trouvé"
	MsgDuplicateEmail     = "Cet email est déjà utilisé"
	MsgMissingCredentials = "Veuillez fournir un email et un mot de passe"
	MsgInvalidCredentials = "Email ou mot de passe incorrect"
	MsgInvalidBody        = "Corps de requête invalide"
	MsgSignupSuccess      = "Compte créé avec succès"
	MsgLoginSuccess       = "Connexion réussie"
	MsgAPIRunning         = "API FOODIUG fonctionne correctement!"
)

// Operation-specific messages for 500 responses.
const (
	MsgSignupFailed          = "Erreur lors de l'inscription"
	MsgLoginFailed           = "Erreur lors de la connexion"
	MsgProfileFailed         = "Erreur lors de la récupération du profil"
	MsgCitiesFailed          = "Erreur lors de la récupération des villes"
	MsgRestaurantsFailed     = "Erreur lors de la récupération des restaurants"
	MsgRestaurantFailed      = "Erreur lors de la récupération du restaurant"
	MsgSearchFailed          = "Erreur lors de la recherche"
	MsgRecommendationsFailed = "Erreur lors de la récupération des recommandations"
)

// cityUnavailable is the 404 message for a city outside the supported set.
func cityUnavailable(ville string) string {
	return fmt.Sprintf("La ville %s n'est pas disponible", ville)
}

// respondRestaurantError maps a restaurant service failure. internal is the
// operation-specific 500 message.
func respondRestaurantError(w http.ResponseWriter, r *http.Request, ville string, err error, internal string) {
	switch {
	case errors.Is(err, city.ErrUnknownCity):
		respondMessage(w, http.StatusNotFound, cityUnavailable(ville))
	case errors.Is(err, store.ErrNotFound):
		respondMessage(w, http.StatusNotFound, MsgRestaurantNotFound)
	default:
		respondInternal(w, r, internal, err)
	}
}

// respondAuthError maps a credential service failure.
func respondAuthError(w http.ResponseWriter, r *http.Request, err error, internal string) {
	var verr *validation.RequestValidationError
	switch {
	case errors.As(err, &verr):
		respondMessage(w, http.StatusBadRequest, firstMessage(verr))
	case errors.Is(err, store.ErrDuplicateEmail):
		respondMessage(w, http.StatusBadRequest, MsgDuplicateEmail)
	case errors.Is(err, auth.ErrInvalidCredentials):
		respondMessage(w, http.StatusUnauthorized, MsgInvalidCredentials)
	case errors.Is(err, store.ErrNotFound):
		respondMessage(w, http.StatusNotFound, MsgUserNotFound)
	default:
		respondInternal(w, r, internal, err)
	}
}

// firstMessage returns the message of the first failing field, in struct order.
func firstMessage(verr *validation.RequestValidationError) string {
	if errs := verr.Errors(); len(errs) > 0 {
		return errs[0].Error()
	}
	return MsgInvalidBody
}
