// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package categorypage loads everything a single category page needs and
// derives its SEO metadata.
package categorypage

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"pediatricdir/internal/models"
)

// CategorySource reads categories. *store.CategoryStore satisfies it.
type CategorySource interface {
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
	ListSiblingsWithPublished(ctx context.Context, slug string) ([]models.SiblingCategory, error)
}

// ArticleSource reads articles. *store.ArticleStore satisfies it.
type ArticleSource interface {
	ListPublishedByCategorySlug(ctx context.Context, slug string) ([]models.Article, error)
}

// PageData is the joined result of one load.
type PageData struct {
	Category          *models.Category
	Articles          []models.Article
	SiblingCategories []models.SiblingCategorySummary
}

// RelatedArticles returns at most the first n articles.
func (d *PageData) RelatedArticles(n int) []models.Article {
	if len(d.Articles) <= n {
		return d.Articles
	}
	return d.Articles[:n]
}

// Loader fetches a category, its published articles and its sibling
// categories in parallel.
type Loader struct {
	categories CategorySource
	articles   ArticleSource
	slug       string
}

// NewLoader creates a Loader bound to one category slug.
func NewLoader(categories CategorySource, articles ArticleSource, slug string) *Loader {
	return &Loader{categories: categories, articles: articles, slug: slug}
}

// Slug returns the category slug the loader is bound to.
func (l *Loader) Slug() string {
	return l.slug
}

// Load runs the three queries concurrently and joins the results. It
// returns nil, nil when the category does not exist. The first query error
// cancels the others and is returned; nothing is retried.
func (l *Loader) Load(ctx context.Context) (*PageData, error) {
	var (
		category *models.Category
		articles []models.Article
		siblings []models.SiblingCategory
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := l.categories.FindBySlug(gctx, l.slug)
		if err != nil {
			return fmt.Errorf("load category %q: %w", l.slug, err)
		}
		category = c
		return nil
	})
	g.Go(func() error {
		a, err := l.articles.ListPublishedByCategorySlug(gctx, l.slug)
		if err != nil {
			return fmt.Errorf("load articles for %q: %w", l.slug, err)
		}
		articles = a
		return nil
	})
	g.Go(func() error {
		s, err := l.categories.ListSiblingsWithPublished(gctx, l.slug)
		if err != nil {
			return fmt.Errorf("load sibling categories for %q: %w", l.slug, err)
		}
		siblings = s
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Checked only after every query finished.
	if category == nil {
		return nil, nil
	}

	data := &PageData{
		Category:          category,
		Articles:          articles,
		SiblingCategories: make([]models.SiblingCategorySummary, 0, len(siblings)),
	}
	for _, s := range siblings {
		data.SiblingCategories = append(data.SiblingCategories, s.Summary())
	}
	return data, nil
}
