// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests.
// Most tests run against a fake loader; the integration tests are skipped
// when PostgreSQL is unavailable.
package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"pediatricdir/internal/categorypage"
	"pediatricdir/internal/database"
	"pediatricdir/internal/models"
	"pediatricdir/internal/views"
)

var testSite = views.SiteConfig{Name: "Pediatric Dentist Directory", URL: "https://kids.example.com"}

// fakeLoader returns canned page data.
type fakeLoader struct {
	data  *categorypage.PageData
	err   error
	slug  string
	loads int
}

func (f *fakeLoader) Load(context.Context) (*categorypage.PageData, error) {
	f.loads++
	return f.data, f.err
}

func (f *fakeLoader) Slug() string {
	if f.slug == "" {
		return "oral-health-tips"
	}
	return f.slug
}

func strPtr(s string) *string { return &s }

func pageData(n int) *categorypage.PageData {
	base := time.Date(2026, 4, 15, 10, 0, 0, 0, time.UTC)
	articles := make([]models.Article, n)
	for i := range articles {
		published := base.AddDate(0, 0, -i)
		articles[i] = models.Article{
			ID:          uuid.New(),
			Slug:        fmt.Sprintf("tip-%d", i+1),
			Title:       fmt.Sprintf("Tip %d", i+1),
			Excerpt:     strPtr("Short excerpt"),
			Status:      models.ArticleStatusPublished,
			PublishedAt: &published,
			CreatedAt:   published,
			Category:    models.ArticleCategory{Name: "Oral Health Tips", Slug: "oral-health-tips"},
			Author:      models.ArticleAuthor{Name: "Dr. Maya Chen", Slug: "dr-maya-chen"},
		}
	}
	return &categorypage.PageData{
		Category: &models.Category{Name: "Oral Health Tips", Slug: "oral-health-tips"},
		Articles: articles,
		SiblingCategories: []models.SiblingCategorySummary{
			{Name: "Nutrition", Slug: "nutrition", Count: 2},
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "pediatricdir")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "pediatricdir")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}
