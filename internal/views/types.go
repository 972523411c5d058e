// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package views

import "pediatricdir/internal/models"

// SiteConfig holds site-wide settings every page needs.
type SiteConfig struct {
	Name string
	URL  string // absolute base URL without trailing slash
}

// PageMeta carries per-page SEO and OpenGraph metadata into the <head>.
type PageMeta struct {
	Title         string
	Description   string
	OGTitle       string
	OGDescription string
	URL           string // canonical + og:url
	OGType        string // "website" or "article"
	JSONLD        string // optional Schema.org block, already encoded
	FeedURL       string // optional RSS alternate link
}

// SidebarProps is everything the category sidebar renders.
type SidebarProps struct {
	CategoryName       string
	SiblingCategories  []models.SiblingCategorySummary
	RelatedArticles    []models.Article
	CategoryLink       func(slug string) string
	ActiveCategorySlug string
}
