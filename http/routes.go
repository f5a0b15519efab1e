package http

import "net/http"

// NewRouter registers every budget route behind the rate limiter.
func NewRouter(handler *BudgetHandler, limiter *RateLimiter) *http.ServeMux {
	mux := http.NewServeMux()

	routes := map[string]http.HandlerFunc{
		"/budget/calculate":     handler.Calculate,
		"/budget/latest":        handler.Latest,
		"/budget/{id}":          handler.Get,
		"/budget/{id}/schedule": handler.ExportSchedule,
		"/rates":                handler.Rates,
	}
	for pattern, h := range routes {
		mux.Handle(pattern, RateLimitMiddleware(limiter, h))
	}
	return mux
}
