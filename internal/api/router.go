package api

import (
	"github.com/alexivanou/worldinfo-api/internal/service"
	"github.com/alexivanou/worldinfo-api/internal/stats"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter creates a new HTTP router
func NewRouter(service service.ServiceInterface, statsCollector *stats.Collector, logger *zap.Logger) *mux.Router {
	handler := NewHandler(service)
	statsHandler := NewStatsHandler(statsCollector)

	router := mux.NewRouter()
	router.Use(RequestID, AccessLog(logger))

	// Health check and metrics
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// API v1
	v1 := router.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/city/{name}", handler.ResolveCities).Methods("GET")
	v1.HandleFunc("/city", handler.CitiesByCodes).Methods("GET")
	v1.HandleFunc("/country/{name}", handler.ResolveCountries).Methods("GET")
	v1.HandleFunc("/country", handler.CountriesByCodes).Methods("GET")
	v1.HandleFunc("/weather/{alpha2code}/{city}", handler.GetWeather).Methods("GET")
	v1.HandleFunc("/currency/{base}", handler.GetCurrencyRates).Methods("GET")
	v1.HandleFunc("/news/{alpha2code}/archive", handler.GetStoredNews).Methods("GET")
	v1.HandleFunc("/news/{alpha2code}", handler.GetHeadlines).Methods("GET")
	v1.HandleFunc("/stats", statsHandler.GetStats).Methods("GET")

	return router
}
