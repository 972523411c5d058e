// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ArticleStatus represents the publishing state of an article.
type ArticleStatus string

const (
	ArticleStatusDraft     ArticleStatus = "DRAFT"
	ArticleStatusPublished ArticleStatus = "PUBLISHED"
	ArticleStatusArchived  ArticleStatus = "ARCHIVED"
)

// ArticleCategory is the slice of the owning category an article card needs.
type ArticleCategory struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ArticleAuthor is the slice of the author an article byline needs.
type ArticleAuthor struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Article is a content item belonging to exactly one category and one author.
type Article struct {
	ID            uuid.UUID       `json:"id"`
	Slug          string          `json:"slug"`
	Title         string          `json:"title"`
	Excerpt       *string         `json:"excerpt,omitempty"`
	FeaturedImage *string         `json:"featured_image,omitempty"`
	Status        ArticleStatus   `json:"status"`
	PublishedAt   *time.Time      `json:"published_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	Category      ArticleCategory `json:"category"`
	Author        ArticleAuthor   `json:"author"`
}

// Path returns the site-relative URL of the article.
func (a *Article) Path() string {
	return ArticlePath(a.Slug)
}

// ArticlePath returns "/blog/{slug}/".
func ArticlePath(slug string) string {
	return "/blog/" + slug + "/"
}

// CategoryPath returns "/{slug}/".
func CategoryPath(slug string) string {
	return "/" + slug + "/"
}
