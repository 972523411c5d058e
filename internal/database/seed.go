// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"pediatricdir/internal/models"
	"pediatricdir/internal/slug"
)

type seedCategory struct {
	name           string
	description    string
	seoTitle       string
	seoDescription string
}

type seedArticle struct {
	title    string
	excerpt  string
	image    string
	category string
	author   string
	status   models.ArticleStatus
	// daysAgo of -1 leaves published_at NULL.
	daysAgo int
}

var seedAuthors = []string{"Dr. Maya Chen", "Dr. Luís Ortega", "Dr. Priya Raman"}

var seedCategories = []seedCategory{
	{
		name:        "Oral Health Tips",
		description: "Practical advice from pediatric dentists on keeping your child's smile healthy at every age.",
	},
	{name: "Nutrition", description: "How food and drink choices shape your child's teeth."},
	{name: "Orthodontics", description: "Braces, aligners and early orthodontic checks."},
	{name: "Dental Anxiety", description: "Helping kids feel calm and confident at the dentist."},
	{name: "Baby Teeth"},
}

var seedArticles = []seedArticle{
	{title: "How to Brush a Toddler's Teeth", excerpt: "A step-by-step routine that works even with wiggly toddlers.", category: "Oral Health Tips", author: "Dr. Maya Chen", status: models.ArticleStatusPublished, daysAgo: 2},
	{title: "Flossing for Kids: When and How to Start", excerpt: "Start flossing as soon as two teeth touch.", image: "https://images.example.com/flossing.jpg", category: "Oral Health Tips", author: "Dr. Priya Raman", status: models.ArticleStatusPublished, daysAgo: 9},
	{title: "Choosing the Right Toothpaste", category: "Oral Health Tips", author: "Dr. Luís Ortega", status: models.ArticleStatusPublished, daysAgo: 21},
	{title: "Fluoride Varnish Explained", excerpt: "What happens during a fluoride treatment and why it matters.", category: "Oral Health Tips", author: "Dr. Maya Chen", status: models.ArticleStatusPublished, daysAgo: -1},
	{title: "Mouthguards for Young Athletes", category: "Oral Health Tips", author: "Dr. Luís Ortega", status: models.ArticleStatusDraft, daysAgo: -1},
	{title: "Sugary Drinks and Cavities", excerpt: "Juice, sports drinks and soda compared.", category: "Nutrition", author: "Dr. Priya Raman", status: models.ArticleStatusPublished, daysAgo: 5},
	{title: "Tooth-Friendly Snacks", category: "Nutrition", author: "Dr. Maya Chen", status: models.ArticleStatusPublished, daysAgo: 14},
	{title: "When Should My Child See an Orthodontist?", category: "Orthodontics", author: "Dr. Luís Ortega", status: models.ArticleStatusPublished, daysAgo: 30},
	{title: "Preparing for a First Dental Visit", category: "Dental Anxiety", author: "Dr. Priya Raman", status: models.ArticleStatusArchived, daysAgo: 60},
}

// Seed populates the database with development data: authors, a handful of
// categories and articles in mixed statuses. It does nothing if any
// category already exists.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed begin tx: %w", err)
	}
	defer tx.Rollback()

	authorIDs := make(map[string]string, len(seedAuthors))
	for _, name := range seedAuthors {
		var id string
		err := tx.QueryRow(
			`INSERT INTO authors (name, slug) VALUES ($1, $2) RETURNING id`,
			name, slug.Generate(name),
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed insert author %q: %w", name, err)
		}
		authorIDs[name] = id
	}

	categoryIDs := make(map[string]string, len(seedCategories))
	for _, c := range seedCategories {
		var id string
		err := tx.QueryRow(`
			INSERT INTO categories (name, slug, description, seo_title, seo_description)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, c.name, slug.Generate(c.name), nullString(c.description),
			nullString(c.seoTitle), nullString(c.seoDescription),
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed insert category %q: %w", c.name, err)
		}
		categoryIDs[c.name] = id
	}

	now := time.Now().UTC()
	for _, a := range seedArticles {
		var publishedAt *time.Time
		if a.daysAgo >= 0 {
			t := now.AddDate(0, 0, -a.daysAgo)
			publishedAt = &t
		}
		_, err := tx.Exec(`
			INSERT INTO articles (slug, title, excerpt, featured_image, status,
			                      published_at, category_id, author_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, slug.Generate(a.title), a.title, nullString(a.excerpt), nullString(a.image),
			string(a.status), publishedAt, categoryIDs[a.category], authorIDs[a.author],
		)
		if err != nil {
			return fmt.Errorf("seed insert article %q: %w", a.title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("database seeded",
		"authors", len(seedAuthors),
		"categories", len(seedCategories),
		"articles", len(seedArticles),
	)
	return nil
}

// nullString maps "" to SQL NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
