// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"pediatricdir/internal/models"
)

// Sidebar lists sibling categories with their article counts and the
// related articles.
func Sidebar(p SidebarProps) templ.Component {
	link := p.CategoryLink
	if link == nil {
		link = models.CategoryPath
	}

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<aside class="sidebar space-y-8">`)

		if len(p.SiblingCategories) > 0 {
			h.raw(`<section class="sidebar-categories"><h2 class="text-sm font-semibold uppercase tracking-wide text-slate-500">More topics</h2><ul class="mt-3 space-y-2">`)
			for _, c := range p.SiblingCategories {
				h.raw(`<li`)
				if c.Slug == p.ActiveCategorySlug {
					h.raw(` aria-current="page"`)
				}
				h.raw(`><a class="flex justify-between"`)
				h.href(link(c.Slug))
				h.raw(`><span>`)
				h.text(c.Name)
				h.raw(`</span><span class="count text-slate-400">`, strconv.Itoa(c.Count), `</span></a></li>`)
			}
			h.raw(`</ul></section>`)
		}

		if len(p.RelatedArticles) > 0 {
			h.raw(`<section class="sidebar-related"><h2 class="text-sm font-semibold uppercase tracking-wide text-slate-500">Popular in `)
			h.text(p.CategoryName)
			h.raw(`</h2><ul class="mt-3 space-y-3">`)
			for i := range p.RelatedArticles {
				a := &p.RelatedArticles[i]
				h.raw(`<li class="related-article"><a`)
				h.href(a.Path())
				h.raw(`>`)
				h.text(a.Title)
				h.raw(`</a></li>`)
			}
			h.raw(`</ul></section>`)
		}

		h.raw(`</aside>`)
		return h.err
	})
}
