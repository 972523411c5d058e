// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render writes templ components as HTTP responses. Components are
// rendered into a buffer first so a failing component never leaves a
// half-written page behind a 200 status.
package render

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
)

// ContentTypeHTML is the Content-Type of every rendered page.
const ContentTypeHTML = "text/html; charset=utf-8"

// HTML writes a component as a 200 HTML response.
func HTML(w http.ResponseWriter, r *http.Request, c templ.Component) error {
	return HTMLStatus(w, r, http.StatusOK, c)
}

// HTMLStatus writes a component with a specific HTTP status code. If the
// component fails nothing is written and the error is returned, leaving
// the caller free to send an error page instead.
func HTMLStatus(w http.ResponseWriter, r *http.Request, status int, c templ.Component) error {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		return fmt.Errorf("render component: %w", err)
	}

	w.Header().Set("Content-Type", ContentTypeHTML)
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
