// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package views holds the public HTML components, written directly against
// the templ runtime.
package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Layout wraps body in the document shell and renders meta into <head>.
func Layout(site SiteConfig, meta PageMeta, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		head(h, meta)
		h.raw(`</head><body class="bg-white text-slate-800">`)

		h.raw(`<header class="site-header border-b border-slate-200"><div class="mx-auto max-w-6xl px-4 py-4"><a class="font-semibold text-sky-700"`)
		h.href(BuildURL(site.URL))
		h.raw(`>`)
		h.text(site.Name)
		h.raw(`</a></div></header>`)

		h.raw(`<div class="site-content">`)
		h.component(ctx, body)
		h.raw(`</div>`)

		h.raw(`<footer class="site-footer border-t border-slate-200"><div class="mx-auto max-w-6xl px-4 py-6 text-sm text-slate-500">`)
		h.text(site.Name)
		h.raw(`</div></footer></body></html>`)
		return h.err
	})
}

func head(h *htmlWriter, meta PageMeta) {
	ogTitle, ogDescription := meta.OGTitle, meta.OGDescription
	if ogTitle == "" {
		ogTitle = meta.Title
	}
	if ogDescription == "" {
		ogDescription = meta.Description
	}
	ogType := meta.OGType
	if ogType == "" {
		ogType = "website"
	}

	h.raw(`<title>`)
	h.text(meta.Title)
	h.raw(`</title>`)
	if meta.Description != "" {
		h.raw(`<meta name="description"`)
		h.attr("content", meta.Description)
		h.raw(`>`)
	}
	h.raw(`<meta property="og:title"`)
	h.attr("content", ogTitle)
	h.raw(`>`)
	if ogDescription != "" {
		h.raw(`<meta property="og:description"`)
		h.attr("content", ogDescription)
		h.raw(`>`)
	}
	h.raw(`<meta property="og:type"`)
	h.attr("content", ogType)
	h.raw(`>`)
	if meta.URL != "" {
		h.raw(`<meta property="og:url"`)
		h.attr("content", meta.URL)
		h.raw(`><link rel="canonical"`)
		h.href(meta.URL)
		h.raw(`>`)
	}
	if meta.FeedURL != "" {
		h.raw(`<link rel="alternate" type="application/rss+xml"`)
		h.attr("title", meta.Title)
		h.href(meta.FeedURL)
		h.raw(`>`)
	}
	if meta.JSONLD != "" {
		h.raw(`<script type="application/ld+json">`, meta.JSONLD, `</script>`)
	}
}
