package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
)

// ValidateRequests rejects requests that do not match the OpenAPI document
// with 400. Routes the document does not describe pass through untouched.
func ValidateRequests(swagger *openapi3.T, logger *slog.Logger) func(http.Handler) http.Handler {
	// Match on path only; the declared server URL is for clients.
	swagger.Servers = nil
	router, err := legacy.NewRouter(swagger)
	if err != nil {
		panic(fmt.Sprintf("http: openapi router: %v", err))
	}
	opts := &openapi3filter.Options{AuthenticationFunc: openapi3filter.NoopAuthenticationFunc}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, params, err := router.FindRoute(escaped(r))
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: params,
				Route:      route,
				Options:    opts,
			}
			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				logger.Warn("request rejected", "method", r.Method, "path", r.URL.Path, "error", err)
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// escaped returns r with an undecoded path, so an encoded slash stays inside
// one path parameter the same way chi routes it.
func escaped(r *http.Request) *http.Request {
	if r.URL.RawPath == "" {
		return r
	}
	u := *r.URL
	u.Path, u.RawPath = r.URL.RawPath, ""
	c := r.WithContext(r.Context())
	c.URL = &u
	return c
}
