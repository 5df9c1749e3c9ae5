package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	HttpRequests   *prometheus.CounterVec
	HttpDuration   *prometheus.HistogramVec
	SearchDuration *prometheus.HistogramVec
	CacheLookups   *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HttpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "supplyroute",
			Name:      "http_requests_total",
			Help:      "Number of http requests.",
		}, []string{"method", "route", "code"}),
		HttpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "supplyroute",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of http requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		SearchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "supplyroute",
			Name:      "search_duration_seconds",
			Help:      "Time spent inside the routing engine per query kind.",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5},
		}, []string{"kind"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "supplyroute",
			Name:      "route_cache_lookups_total",
			Help:      "Route cache lookups by result.",
		}, []string{"kind", "result"}),
	}
	reg.MustRegister(m.HttpRequests, m.HttpDuration, m.SearchDuration, m.CacheLookups)
	return m
}

func (m *Metrics) ObserveSearch(kind string, d time.Duration) {
	m.SearchDuration.WithLabelValues(kind).Observe(d.Seconds())
}

func (m *Metrics) CacheLookup(kind string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(kind, result).Inc()
}

// PromeHttpMiddleware catat jumlah & durasi request per route pattern chi.
func PromeHttpMiddleware(m *Metrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			route := "unknown"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			m.HttpRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
			m.HttpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		}
		return http.HandlerFunc(fn)
	}
}
