// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"pediatricdir/internal/models"
)

// CategoryStore reads categories from the database.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

const categoryColumns = `id, name, slug, description, seo_title, seo_description, created_at, updated_at`

// scanCategory scans a row into a Category struct.
func scanCategory(scanner interface{ Scan(...any) error }) (*models.Category, error) {
	var c models.Category
	err := scanner.Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description,
		&c.SEOTitle, &c.SEODescription, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindBySlug retrieves a category by slug. Returns nil if not found.
func (s *CategoryStore) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+categoryColumns+` FROM categories WHERE slug = $1`, slug)
	c, err := scanCategory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by slug: %w", err)
	}
	return c, nil
}

// ListSiblingsWithPublished returns every category except the one with the
// given slug that has at least one published article, ordered by name. Each
// entry carries the IDs of its published articles.
func (s *CategoryStore) ListSiblingsWithPublished(ctx context.Context, slug string) ([]models.SiblingCategory, error) {
	// The inner join drops categories without published articles.
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.name, c.slug, a.id
		FROM categories c
		JOIN articles a ON a.category_id = c.id AND a.status = 'PUBLISHED'
		WHERE c.slug <> $1
		ORDER BY c.name, c.slug, a.id
	`, slug)
	if err != nil {
		return nil, fmt.Errorf("list sibling categories: %w", err)
	}
	defer rows.Close()

	var items []models.SiblingCategory
	for rows.Next() {
		var (
			name, catSlug string
			articleID     uuid.UUID
		)
		if err := rows.Scan(&name, &catSlug, &articleID); err != nil {
			return nil, fmt.Errorf("scan sibling category: %w", err)
		}
		if n := len(items); n > 0 && items[n-1].Slug == catSlug {
			items[n-1].PublishedArticleIDs = append(items[n-1].PublishedArticleIDs, articleID)
			continue
		}
		items = append(items, models.SiblingCategory{
			Name:                name,
			Slug:                catSlug,
			PublishedArticleIDs: []uuid.UUID{articleID},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sibling categories: %w", err)
	}
	return items, nil
}
