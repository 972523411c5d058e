// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package views

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/a-h/templ"

	"pediatricdir/internal/models"
)

// DateLayout is how publish dates appear on cards.
const DateLayout = "January 2, 2006"

// FormatDate renders a publish date in UTC, or "" when t is nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(DateLayout)
}

// BuildURL joins path segments onto a base URL, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join("/", u.Path, path.Join(pathSegments...))
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// CollectionPageJSONLD produces a Schema.org CollectionPage block listing the
// category's articles.
func CollectionPageJSONLD(site SiteConfig, meta PageMeta, articles []models.Article) string {
	items := make([]map[string]any, 0, len(articles))
	for i, a := range articles {
		items = append(items, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"url":      BuildURL(site.URL, "blog", a.Slug),
			"name":     a.Title,
		})
	}
	data := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "CollectionPage",
		"name":        meta.Title,
		"description": meta.Description,
		"url":         meta.URL,
		"isPartOf": map[string]string{
			"@type": "WebSite",
			"name":  site.Name,
			"url":   BuildURL(site.URL),
		},
		"mainEntity": map[string]any{
			"@type":           "ItemList",
			"itemListElement": items,
		},
	}
	// json.Marshal escapes <, > and &, so the result is safe inside <script>.
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// htmlWriter writes markup and keeps the first error, so components can
// emit a long run of writes and check once.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(parts ...string) {
	for _, s := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, s)
	}
}

// text writes HTML-escaped content.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// attr writes name="value" with the value escaped.
func (h *htmlWriter) attr(name, value string) {
	h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// href writes an href attribute after templ's URL sanitization.
func (h *htmlWriter) href(u string) {
	h.attr("href", string(templ.URL(u)))
}

func (h *htmlWriter) component(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}
