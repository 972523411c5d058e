// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"pediatricdir/internal/models"
)

// ArticleStore reads articles from the database.
type ArticleStore struct {
	db *sql.DB
}

// NewArticleStore returns a new ArticleStore.
func NewArticleStore(db *sql.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// ListPublishedByCategorySlug returns the published articles of a category,
// newest first. Articles without a publish date sort after dated ones and
// are ordered among themselves by creation time.
func (s *ArticleStore) ListPublishedByCategorySlug(ctx context.Context, slug string) ([]models.Article, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT a.id, a.slug, a.title, a.excerpt, a.featured_image, a.status,
		       a.published_at, a.created_at,
		       c.name, c.slug, au.name, au.slug
		FROM articles a
		JOIN categories c ON c.id = a.category_id
		JOIN authors au ON au.id = a.author_id
		WHERE a.status = 'PUBLISHED' AND c.slug = $1
		ORDER BY a.published_at DESC NULLS LAST, a.created_at DESC
	`, slug)
	if err != nil {
		return nil, fmt.Errorf("list published articles: %w", err)
	}
	defer rows.Close()

	var items []models.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		items = append(items, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list published articles: %w", err)
	}
	return items, nil
}

func scanArticle(scanner interface{ Scan(...any) error }) (*models.Article, error) {
	var (
		a           models.Article
		publishedAt sql.NullTime
	)
	err := scanner.Scan(
		&a.ID, &a.Slug, &a.Title, &a.Excerpt, &a.FeaturedImage, &a.Status,
		&publishedAt, &a.CreatedAt,
		&a.Category.Name, &a.Category.Slug, &a.Author.Name, &a.Author.Slug,
	)
	if err != nil {
		return nil, err
	}
	if publishedAt.Valid {
		t := publishedAt.Time
		a.PublishedAt = &t
	}
	return &a, nil
}
