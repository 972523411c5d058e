// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up the HTTP routes and middleware chain for the
// public site.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"pediatricdir/internal/handlers"
	"pediatricdir/internal/middleware"
)

// New creates and returns the configured Chi router. limiter may be nil,
// in which case public routes are not rate-limited. trustProxy installs
// RealIP so RemoteAddr comes from forwarding headers; leave it off unless
// a proxy in front overwrites them.
func New(public *handlers.Public, health http.Handler, limiter *middleware.RateLimiter, trustProxy bool) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(chimw.RequestID)
	if trustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.Recoverer(http.HandlerFunc(public.ServerError)))
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(chimw.GetHead)

	// Health check, exempt from rate limiting.
	r.Method(http.MethodGet, "/health", health)

	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware)
		}

		base := "/" + public.Slug()
		r.Get(base+"/", public.CategoryPage)
		r.Get(base, public.RedirectToCategory)
		r.Get(base+"/feed.xml", public.Feed)
		r.Get("/sitemap.xml", public.Sitemap)
	})

	r.NotFound(public.NotFound)
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	return r
}
