// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups articles under a unique slug. SEO fields override the
// generated title and description when set.
type Category struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Description    *string   `json:"description,omitempty"`
	SEOTitle       *string   `json:"seo_title,omitempty"`
	SEODescription *string   `json:"seo_description,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// SiblingCategory is a category other than the one being viewed, projected
// with the IDs of its published articles.
type SiblingCategory struct {
	Name                string      `json:"name"`
	Slug                string      `json:"slug"`
	PublishedArticleIDs []uuid.UUID `json:"published_article_ids"`
}

// SiblingCategorySummary is what the sidebar shows for a sibling category.
type SiblingCategorySummary struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

// Summary collapses the article ID list into a count.
func (s SiblingCategory) Summary() SiblingCategorySummary {
	return SiblingCategorySummary{
		Name:  s.Name,
		Slug:  s.Slug,
		Count: len(s.PublishedArticleIDs),
	}
}
