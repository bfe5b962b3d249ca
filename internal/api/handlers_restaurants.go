// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/foodiug/internal/logging"
	"github.com/tomtom215/foodiug/internal/query"
)

// URL parameters.
const (
	paramVille = "ville"
	paramID    = "id"
)

// Villes godoc
// @Summary Supported cities
// @Tags restaurants
// @Produce json
// @Success 200 {object} Envelope{data=[]string}
// @Router /api/restaurants/villes [get]
func (h *Handler) Villes(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, &Envelope{Success: true, Data: h.restaurants.Cities()})
}

// AllRestaurants godoc
// @Summary Every restaurant of every city
// @Description Each record carries a "ville" field naming its city. Cities are listed in their fixed order.
// @Tags restaurants
// @Produce json
// @Success 200 {object} Envelope{data=[]object}
// @Failure 500 {object} Envelope
// @Router /api/restaurants [get]
func (h *Handler) AllRestaurants(w http.ResponseWriter, r *http.Request) {
	docs, err := h.restaurants.ListAll(r.Context())
	if err != nil {
		respondInternal(w, r, MsgRestaurantsFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, listEnvelope("", docs))
}

// RestaurantsByCity godoc
// @Summary One city's restaurants
// @Tags restaurants
// @Produce json
// @Param ville path string true "City" Enums(Rabat, Tanger)
// @Success 200 {object} Envelope{data=[]object}
// @Failure 404 {object} Envelope "City not available"
// @Failure 500 {object} Envelope
// @Router /api/restaurants/{ville} [get]
func (h *Handler) RestaurantsByCity(w http.ResponseWriter, r *http.Request) {
	ville := chi.URLParam(r, paramVille)

	docs, err := h.restaurants.List(r.Context(), ville)
	if err != nil {
		respondRestaurantError(w, r, ville, err, MsgRestaurantsFailed)
		return
	}
	respondJSON(w, http.StatusOK, listEnvelope(ville, docs))
}

// Search godoc
// @Summary Filtered search in one city
// @Description Repeated parameters are combined: any of the values may match. rating keeps the smallest value.
// @Tags restaurants
// @Produce json
// @Param ville path string true "City" Enums(Rabat, Tanger)
// @Param type query []string false "Meal type" collectionFormat(multi)
// @Param category query []string false "Cuisine category" collectionFormat(multi)
// @Param ambiance query []string false "Ambiance" collectionFormat(multi)
// @Param priceLevel query []string false "Price level, e.g. $$" collectionFormat(multi)
// @Param rating query []number false "Minimum rating" collectionFormat(multi)
// @Param halal query string false "true or Oui"
// @Param vegetarien query string false "true"
// @Param enfant query string false "true"
// @Success 200 {object} Envelope{data=[]object}
// @Failure 404 {object} Envelope "City not available"
// @Failure 500 {object} Envelope
// @Router /api/restaurants/{ville}/search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ville := chi.URLParam(r, paramVille)
	values := r.URL.Query()
	filter := query.Parse(values)

	docs, err := h.restaurants.Search(r.Context(), ville, filter)
	if err != nil {
		respondRestaurantError(w, r, ville, err, MsgSearchFailed)
		return
	}

	logging.Ctx(r.Context()).Debug().
		Str("ville", ville).
		Int("conditions", len(filter.Conditions)).
		Int("count", len(docs)).
		Msg("Search executed")

	env := listEnvelope(ville, docs)
	env.Filters = query.Echo(values)
	respondJSON(w, http.StatusOK, env)
}

// Recommendations godoc
// @Summary Recommendations in one city
// @Description Up to four restaurants rated 4 or more, drawn at random on every call.
// @Tags restaurants
// @Produce json
// @Param ville path string true "City" Enums(Rabat, Tanger)
// @Success 200 {object} Envelope{data=[]object}
// @Failure 404 {object} Envelope "City not available"
// @Failure 500 {object} Envelope
// @Router /api/restaurants/{ville}/recommendations [get]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	ville := chi.URLParam(r, paramVille)

	docs, err := h.restaurants.Recommend(r.Context(), ville)
	if err != nil {
		respondRestaurantError(w, r, ville, err, MsgRecommendationsFailed)
		return
	}
	respondJSON(w, http.StatusOK, listEnvelope(ville, docs))
}

// RestaurantByID godoc
// @Summary One restaurant
// @Tags restaurants
// @Produce json
// @Param ville path string true "City" Enums(Rabat, Tanger)
// @Param id path string true "Restaurant id (24 hex characters)"
// @Success 200 {object} Envelope{data=object}
// @Failure 404 {object} Envelope "City not available or restaurant not found"
// @Failure 500 {object} Envelope
// @Router /api/restaurants/{ville}/{id} [get]
func (h *Handler) RestaurantByID(w http.ResponseWriter, r *http.Request) {
	ville := chi.URLParam(r, paramVille)

	doc, err := h.restaurants.Get(r.Context(), ville, chi.URLParam(r, paramID))
	if err != nil {
		respondRestaurantError(w, r, ville, err, MsgRestaurantFailed)
		return
	}
	respondJSON(w, http.StatusOK, &Envelope{Success: true, Data: doc})
}
