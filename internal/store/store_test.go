// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"pediatricdir/internal/database"
	"pediatricdir/internal/models"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "pediatricdir")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "pediatricdir")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := testDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Downgrade goose global state.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// suffix returns a short random string to keep fixture slugs unique when
// the database is shared with other packages.
func suffix() string {
	return uuid.NewString()[:8]
}

// createAuthor inserts an author and removes it when the test finishes.
// Register it before any category so its cleanup runs after theirs.
func createAuthor(t *testing.T, db *sql.DB) uuid.UUID {
	t.Helper()
	s := "author-" + suffix()
	var id uuid.UUID
	err := db.QueryRow(`INSERT INTO authors (name, slug) VALUES ($1, $2) RETURNING id`,
		"Dr. "+s, s).Scan(&id)
	if err != nil {
		t.Fatalf("insert author: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM authors WHERE id = $1", id) })
	return id
}

// createCategory inserts a category. Its articles are removed with it
// (ON DELETE CASCADE).
func createCategory(t *testing.T, db *sql.DB, name, slug string, description *string) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := db.QueryRow(`
		INSERT INTO categories (name, slug, description) VALUES ($1, $2, $3) RETURNING id`,
		name, slug, description).Scan(&id)
	if err != nil {
		t.Fatalf("insert category %q: %v", slug, err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM categories WHERE id = $1", id) })
	return id
}

// createArticle inserts an article with the given status and timestamps.
func createArticle(t *testing.T, db *sql.DB, categoryID, authorID uuid.UUID, slug string,
	status models.ArticleStatus, publishedAt *time.Time, createdAt time.Time) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := db.QueryRow(`
		INSERT INTO articles (slug, title, status, published_at, created_at, category_id, author_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		slug, "Title "+slug, string(status), publishedAt, createdAt, categoryID, authorID,
	).Scan(&id)
	if err != nil {
		t.Fatalf("insert article %q: %v", slug, err)
	}
	return id
}

func ptr[T any](v T) *T { return &v }
