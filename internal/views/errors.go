// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// NotFound renders the 404 page.
func NotFound(site SiteConfig, meta PageMeta) templ.Component {
	return Layout(site, meta, message("Page not found",
		"The page you are looking for does not exist or has moved.", site.URL))
}

// ServerError renders the generic 500 page.
func ServerError(site SiteConfig) templ.Component {
	meta := PageMeta{Title: "Something went wrong | " + site.Name}
	return Layout(site, meta, message("Something went wrong",
		"We could not load this page. Please try again in a moment.", site.URL))
}

func message(title, body, home string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<section class="error-page mx-auto max-w-xl px-4 py-20 text-center"><h1 class="text-3xl font-bold">`)
		h.text(title)
		h.raw(`</h1><p class="mt-4 text-slate-600">`)
		h.text(body)
		h.raw(`</p><a class="mt-6 inline-block text-sky-700"`)
		h.href(BuildURL(home))
		h.raw(`>Back to home</a></section>`)
		return h.err
	})
}
