package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/alexivanou/worldinfo-api/internal/model"
	"github.com/alexivanou/worldinfo-api/internal/service"
	"github.com/gorilla/mux"
)

// Handler handles HTTP requests
type Handler struct {
	service service.ServiceInterface
}

// NewHandler creates a new handler instance
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// ResolveCities handles GET /api/v1/city/{name}
func (h *Handler) ResolveCities(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if name == "" {
		http.Error(w, "city name is required", http.StatusBadRequest)
		return
	}

	cities, err := h.service.ResolveCities(r.Context(), name)
	if err != nil {
		log.Printf("Error resolving cities: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if len(cities) == 0 {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	writeJSON(w, cities)
}

// CitiesByCodes handles GET /api/v1/city?codes=GB,London&codes=FR,Paris
func (h *Handler) CitiesByCodes(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query()["codes"]
	if len(raw) == 0 {
		http.Error(w, "query parameter 'codes' is required", http.StatusBadRequest)
		return
	}

	pairs := make([]model.CountryCity, 0, len(raw))
	for _, item := range raw {
		code, city, ok := strings.Cut(item, ",")
		if !ok || len(code) != 2 || city == "" {
			http.Error(w, "codes items must have the form 'XX,City'", http.StatusBadRequest)
			return
		}
		pairs = append(pairs, model.CountryCity{Alpha2Code: code, CityName: city})
	}

	limit, offset, err := parseLimitOffset(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cities, err := h.service.CitiesByPairs(r.Context(), pairs)
	if err != nil {
		log.Printf("Error getting cities by codes: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	cities = paginate(cities, limit, offset)
	if len(cities) == 0 {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	writeJSON(w, cities)
}

// ResolveCountries handles GET /api/v1/country/{name}
func (h *Handler) ResolveCountries(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if name == "" {
		http.Error(w, "country name is required", http.StatusBadRequest)
		return
	}

	countries, err := h.service.ResolveCountries(r.Context(), name)
	if err != nil {
		log.Printf("Error resolving countries: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if len(countries) == 0 {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	writeJSON(w, countries)
}

// CountriesByCodes handles GET /api/v1/country?codes=gb&codes=fr
func (h *Handler) CountriesByCodes(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query()["codes"]
	if len(raw) == 0 {
		http.Error(w, "query parameter 'codes' is required", http.StatusBadRequest)
		return
	}

	var codes []string
	for _, item := range raw {
		for _, code := range strings.Split(item, ",") {
			code = strings.TrimSpace(code)
			if len(code) != 2 {
				http.Error(w, "country codes must be exactly 2 characters", http.StatusBadRequest)
				return
			}
			codes = append(codes, code)
		}
	}

	limit, offset, err := parseLimitOffset(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	countries, err := h.service.CountriesByCodes(r.Context(), codes)
	if err != nil {
		log.Printf("Error getting countries by codes: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	countries = paginate(countries, limit, offset)
	if len(countries) == 0 {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	writeJSON(w, countries)
}

// GetWeather handles GET /api/v1/weather/{alpha2code}/{city}
func (h *Handler) GetWeather(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	alpha2code := vars["alpha2code"]
	city := vars["city"]

	if len(alpha2code) != 2 {
		http.Error(w, "alpha2code must be exactly 2 characters", http.StatusBadRequest)
		return
	}

	weather, err := h.service.Weather(r.Context(), alpha2code, city)
	if err != nil {
		log.Printf("Error getting weather: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if weather == nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	writeJSON(w, weather)
}

// GetCurrencyRates handles GET /api/v1/currency/{base}
func (h *Handler) GetCurrencyRates(w http.ResponseWriter, r *http.Request) {
	base := mux.Vars(r)["base"]
	if base == "" {
		http.Error(w, "base currency is required", http.StatusBadRequest)
		return
	}

	rates, err := h.service.CurrencyRates(r.Context(), base)
	if err != nil {
		log.Printf("Error getting currency rates: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if rates == nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	writeJSON(w, rates)
}

// GetHeadlines handles GET /api/v1/news/{alpha2code}
func (h *Handler) GetHeadlines(w http.ResponseWriter, r *http.Request) {
	alpha2code := mux.Vars(r)["alpha2code"]
	if len(alpha2code) != 2 {
		http.Error(w, "alpha2code must be exactly 2 characters", http.StatusBadRequest)
		return
	}

	limit, offset, err := parseLimitOffset(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	news, err := h.service.Headlines(r.Context(), alpha2code)
	if err != nil {
		log.Printf("Error getting headlines: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// An empty headline list is a valid answer, not a 404.
	writeJSON(w, paginate(news, limit, offset))
}

// GetStoredNews handles GET /api/v1/news/{alpha2code}/archive
func (h *Handler) GetStoredNews(w http.ResponseWriter, r *http.Request) {
	alpha2code := mux.Vars(r)["alpha2code"]
	if len(alpha2code) != 2 {
		http.Error(w, "alpha2code must be exactly 2 characters", http.StatusBadRequest)
		return
	}

	limit, offset, err := parseLimitOffset(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	news, err := h.service.StoredNews(r.Context(), alpha2code, limit, offset)
	if err != nil {
		log.Printf("Error getting stored news: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, news)
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

const (
	defaultLimit  = 10
	defaultOffset = 0
)

var (
	errInvalidLimit  = errors.New("limit must be a positive integer")
	errInvalidOffset = errors.New("offset must be a non-negative integer")
)

func parseLimitOffset(r *http.Request) (int, int, error) {
	limit := defaultLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			return 0, 0, errInvalidLimit
		}
		limit = parsed
	}

	offset := defaultOffset
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		parsed, err := strconv.Atoi(offsetStr)
		if err != nil || parsed < 0 {
			return 0, 0, errInvalidOffset
		}
		offset = parsed
	}

	return limit, offset, nil
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
