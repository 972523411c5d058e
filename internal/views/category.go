// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"pediatricdir/internal/categorypage"
	"pediatricdir/internal/models"
)

// Fixed copy shown on the category page.
const (
	HeroLabel             = "Oral Health Resources"
	FallbackSubheading    = "Expert advice from pediatric dentists to help your child build healthy habits for a lifetime of smiles."
	EmptyStateTitle       = "Articles coming soon"
	EmptyStateMessage     = "Our pediatric dentists are working on new tips. Check back soon."
	ReadArticleLabel      = "Read article"
	RelatedArticlesLimit  = 3
	imagePlaceholderClass = "card-image-placeholder"
)

// SidebarPropsFor builds the sidebar input from loaded page data.
func SidebarPropsFor(data *categorypage.PageData) SidebarProps {
	return SidebarProps{
		CategoryName:       data.Category.Name,
		SiblingCategories:  data.SiblingCategories,
		RelatedArticles:    data.RelatedArticles(RelatedArticlesLimit),
		CategoryLink:       models.CategoryPath,
		ActiveCategorySlug: data.Category.Slug,
	}
}

// CategoryPage renders the full category page. data must be non-nil.
func CategoryPage(site SiteConfig, meta PageMeta, data *categorypage.PageData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		hero(h, data.Category)

		h.raw(`<div class="mx-auto grid max-w-6xl gap-8 px-4 py-10 lg:grid-cols-[1fr_18rem]">`)
		h.raw(`<section class="article-listing" aria-label="Articles">`)
		if len(data.Articles) == 0 {
			emptyState(h)
		} else {
			h.raw(`<div class="grid gap-6 sm:grid-cols-2">`)
			for i := range data.Articles {
				articleCard(h, &data.Articles[i])
			}
			h.raw(`</div>`)
		}
		h.raw(`</section>`)
		h.component(ctx, Sidebar(SidebarPropsFor(data)))
		h.raw(`</div>`)
		return h.err
	})
	return Layout(site, meta, body)
}

func hero(h *htmlWriter, c *models.Category) {
	subheading := FallbackSubheading
	if c.Description != nil && *c.Description != "" {
		subheading = *c.Description
	}
	h.raw(`<section class="hero bg-sky-50"><div class="mx-auto max-w-6xl px-4 py-12">`)
	h.raw(`<p class="hero-label text-xs font-semibold uppercase tracking-widest text-sky-700">`)
	h.text(HeroLabel)
	h.raw(`</p><h1 class="mt-2 text-4xl font-bold">`)
	h.text(c.Name)
	h.raw(`</h1><p class="hero-description mt-4 max-w-2xl text-lg text-slate-600">`)
	h.text(subheading)
	h.raw(`</p></div></section>`)
}

func emptyState(h *htmlWriter) {
	h.raw(`<div class="empty-state rounded-lg border border-dashed border-slate-300 p-10 text-center"><h2 class="text-xl font-semibold">`)
	h.text(EmptyStateTitle)
	h.raw(`</h2><p class="mt-2 text-slate-600">`)
	h.text(EmptyStateMessage)
	h.raw(`</p></div>`)
}

func articleCard(h *htmlWriter, a *models.Article) {
	link := a.Path()

	h.raw(`<article class="article-card overflow-hidden rounded-lg border border-slate-200">`)
	if a.FeaturedImage != nil && *a.FeaturedImage != "" {
		h.raw(`<img class="card-image h-48 w-full object-cover"`)
		h.attr("src", string(templ.URL(*a.FeaturedImage)))
		h.attr("alt", a.Title)
		h.raw(` loading="lazy">`)
	} else {
		h.raw(`<div class="`, imagePlaceholderClass, ` h-48 w-full bg-gradient-to-br from-sky-100 to-teal-100" aria-hidden="true"></div>`)
	}

	h.raw(`<div class="p-5"><span class="category-badge rounded-full bg-sky-100 px-3 py-1 text-xs font-medium text-sky-800">`)
	h.text(a.Category.Name)
	h.raw(`</span><h2 class="mt-3 text-lg font-semibold"><a`)
	h.href(link)
	h.raw(`>`)
	h.text(a.Title)
	h.raw(`</a></h2>`)

	if a.Excerpt != nil && *a.Excerpt != "" {
		h.raw(`<p class="excerpt mt-2 text-slate-600">`)
		h.text(*a.Excerpt)
		h.raw(`</p>`)
	}

	h.raw(`<div class="byline mt-4 flex items-center gap-3 text-sm text-slate-500"><span class="author">`)
	h.text(a.Author.Name)
	h.raw(`</span>`)
	if a.PublishedAt != nil {
		h.raw(`<time`)
		h.attr("datetime", a.PublishedAt.UTC().Format("2006-01-02"))
		h.raw(`>`)
		h.text(FormatDate(a.PublishedAt))
		h.raw(`</time>`)
	}
	h.raw(`</div><a class="read-link mt-4 inline-block font-medium text-sky-700"`)
	h.href(link)
	h.raw(`>`)
	h.text(ReadArticleLabel)
	h.raw(`</a></div></article>`)
}
