package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

var httpRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "precificador_http_requests_total",
		Help: "HTTP requests served, by method and route pattern.",
	},
	[]string{"method", "route"},
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
}

func countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)

		// The route pattern is only known after routing, and keeps label
		// cardinality flat (no ids).
		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(r.Method, route).Inc()
	})
}
