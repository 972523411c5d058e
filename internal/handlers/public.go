// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"pediatricdir/internal/categorypage"
	"pediatricdir/internal/render"
	"pediatricdir/internal/views"
)

// PageLoader loads the data for the category page. *categorypage.Loader
// satisfies it.
type PageLoader interface {
	Load(ctx context.Context) (*categorypage.PageData, error)
	Slug() string
}

// Public groups handlers for the public-facing category page and the feeds
// derived from it. Every request loads fresh data; nothing is cached.
type Public struct {
	loader PageLoader
	site   views.SiteConfig
}

// NewPublic creates a new Public handler group.
func NewPublic(loader PageLoader, site views.SiteConfig) *Public {
	return &Public{loader: loader, site: site}
}

// Slug returns the slug of the category the handlers serve.
func (p *Public) Slug() string {
	return p.loader.Slug()
}

// CategoryURL returns the absolute URL of the category page.
func (p *Public) CategoryURL() string {
	return views.BuildURL(p.site.URL, p.loader.Slug())
}

// CategoryPage renders the category listing. A missing category yields the
// 404 page; a failed load yields the 500 page.
func (p *Public) CategoryPage(w http.ResponseWriter, r *http.Request) {
	data, err := p.loader.Load(r.Context())
	if err != nil {
		slog.Error("load category page failed", "slug", p.loader.Slug(), "error", err)
		p.ServerError(w, r)
		return
	}
	if data == nil {
		p.NotFound(w, r)
		return
	}

	md := categorypage.MetadataFor(data, p.site.Name)
	meta := views.PageMeta{
		Title:         md.Title,
		Description:   md.Description,
		OGTitle:       md.OpenGraph.Title,
		OGDescription: md.OpenGraph.Description,
		URL:           p.CategoryURL(),
		OGType:        "website",
		FeedURL:       p.CategoryURL() + "feed.xml",
	}
	meta.JSONLD = views.CollectionPageJSONLD(p.site, meta, data.Articles)

	if err := render.HTML(w, r, views.CategoryPage(p.site, meta, data)); err != nil {
		slog.Error("render category page failed", "slug", p.loader.Slug(), "error", err)
		p.ServerError(w, r)
	}
}

// RedirectToCategory sends the slash-less category path to the canonical
// trailing-slash URL.
func (p *Public) RedirectToCategory(w http.ResponseWriter, r *http.Request) {
	target := "/" + p.loader.Slug() + "/"
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusMovedPermanently)
}

// NotFound renders the 404 page with the fallback category metadata.
func (p *Public) NotFound(w http.ResponseWriter, r *http.Request) {
	md := categorypage.MetadataFor(nil, p.site.Name)
	meta := views.PageMeta{
		Title:         md.Title,
		Description:   md.Description,
		OGTitle:       md.OpenGraph.Title,
		OGDescription: md.OpenGraph.Description,
	}
	if err := render.HTMLStatus(w, r, http.StatusNotFound, views.NotFound(p.site, meta)); err != nil {
		slog.Error("render not found page failed", "error", err)
		http.NotFound(w, r)
	}
}

// ServerError renders the generic 500 page.
func (p *Public) ServerError(w http.ResponseWriter, r *http.Request) {
	if err := render.HTMLStatus(w, r, http.StatusInternalServerError, views.ServerError(p.site)); err != nil {
		slog.Error("render error page failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
