// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package categorypage

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"go.uber.org/goleak"

	"pediatricdir/internal/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeSource implements CategorySource and ArticleSource. Each query either
// returns its canned value, fails with its error, or, when block is set,
// waits for the context to end.
type fakeSource struct {
	category *models.Category
	articles []models.Article
	siblings []models.SiblingCategory

	categoryErr error
	articlesErr error
	siblingsErr error

	block bool
	calls atomic.Int32
	slugs chan string
}

func (f *fakeSource) record(ctx context.Context, slug string) error {
	f.calls.Add(1)
	if f.slugs != nil {
		f.slugs <- slug
	}
	if f.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return nil
}

func (f *fakeSource) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	if f.categoryErr != nil {
		f.calls.Add(1)
		return nil, f.categoryErr
	}
	if err := f.record(ctx, slug); err != nil {
		return nil, err
	}
	return f.category, nil
}

func (f *fakeSource) ListPublishedByCategorySlug(ctx context.Context, slug string) ([]models.Article, error) {
	if f.articlesErr != nil {
		f.calls.Add(1)
		return nil, f.articlesErr
	}
	if err := f.record(ctx, slug); err != nil {
		return nil, err
	}
	return f.articles, nil
}

func (f *fakeSource) ListSiblingsWithPublished(ctx context.Context, slug string) ([]models.SiblingCategory, error) {
	if f.siblingsErr != nil {
		f.calls.Add(1)
		return nil, f.siblingsErr
	}
	if err := f.record(ctx, slug); err != nil {
		return nil, err
	}
	return f.siblings, nil
}

func strPtr(s string) *string { return &s }

func testCategory() *models.Category {
	return &models.Category{
		ID:          uuid.New(),
		Name:        "Oral Health Tips",
		Slug:        "oral-health-tips",
		Description: strPtr("Practical advice for healthy smiles."),
	}
}

func testArticles(n int) []models.Article {
	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	items := make([]models.Article, n)
	for i := range items {
		published := base.AddDate(0, 0, -i)
		items[i] = models.Article{
			ID:          uuid.New(),
			Slug:        "tip-" + string(rune('a'+i)),
			Title:       "Tip " + string(rune('A'+i)),
			Status:      models.ArticleStatusPublished,
			PublishedAt: &published,
			CreatedAt:   published,
			Category:    models.ArticleCategory{Name: "Oral Health Tips", Slug: "oral-health-tips"},
			Author:      models.ArticleAuthor{Name: "Dr. Maya Chen", Slug: "dr-maya-chen"},
		}
	}
	return items
}

func TestLoaderLoad(t *testing.T) {
	src := &fakeSource{
		category: testCategory(),
		articles: testArticles(2),
		siblings: []models.SiblingCategory{
			{Name: "Baby Teeth", Slug: "baby-teeth", PublishedArticleIDs: []uuid.UUID{uuid.New()}},
			{Name: "Nutrition", Slug: "nutrition", PublishedArticleIDs: []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}},
		},
		slugs: make(chan string, 3),
	}

	data, err := NewLoader(src, src, "oral-health-tips").Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if data == nil {
		t.Fatal("expected page data, got nil")
	}

	close(src.slugs)
	for slug := range src.slugs {
		if slug != "oral-health-tips" {
			t.Errorf("query received slug %q, want %q", slug, "oral-health-tips")
		}
	}
	if n := src.calls.Load(); n != 3 {
		t.Errorf("queries issued: got %d, want 3", n)
	}

	if data.Category != src.category {
		t.Error("category not passed through")
	}
	if diff := cmp.Diff(src.articles, data.Articles); diff != "" {
		t.Errorf("articles mismatch (-want +got):\n%s", diff)
	}

	want := []models.SiblingCategorySummary{
		{Name: "Baby Teeth", Slug: "baby-teeth", Count: 1},
		{Name: "Nutrition", Slug: "nutrition", Count: 3},
	}
	if diff := cmp.Diff(want, data.SiblingCategories); diff != "" {
		t.Errorf("sibling summaries mismatch (-want +got):\n%s", diff)
	}
}

// A missing category is reported as nil data even when the other queries
// return rows, and only after all three queries ran.
func TestLoaderLoadMissingCategory(t *testing.T) {
	src := &fakeSource{
		articles: testArticles(3),
		siblings: []models.SiblingCategory{
			{Name: "Nutrition", Slug: "nutrition", PublishedArticleIDs: []uuid.UUID{uuid.New()}},
		},
	}

	data, err := NewLoader(src, src, "oral-health-tips").Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if data != nil {
		t.Errorf("expected nil data for missing category, got %+v", data)
	}
	if n := src.calls.Load(); n != 3 {
		t.Errorf("queries issued: got %d, want 3", n)
	}
}

func TestLoaderLoadEmptyCategory(t *testing.T) {
	src := &fakeSource{category: testCategory()}

	data, err := NewLoader(src, src, "oral-health-tips").Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if data == nil {
		t.Fatal("expected page data, got nil")
	}
	if len(data.Articles) != 0 {
		t.Errorf("articles: got %d, want 0", len(data.Articles))
	}
	if data.SiblingCategories == nil || len(data.SiblingCategories) != 0 {
		t.Errorf("sibling categories: got %#v, want empty slice", data.SiblingCategories)
	}
}

func TestLoaderLoadErrors(t *testing.T) {
	boom := errors.New("connection reset")

	tests := []struct {
		name string
		src  *fakeSource
	}{
		{name: "category query", src: &fakeSource{categoryErr: boom, block: true}},
		{name: "articles query", src: &fakeSource{articlesErr: boom, block: true}},
		{name: "siblings query", src: &fakeSource{siblingsErr: boom, block: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The two healthy queries block until the failing one cancels
			// the shared context; Load returning at all proves cancellation.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			data, err := NewLoader(tt.src, tt.src, "oral-health-tips").Load(ctx)
			if !errors.Is(err, boom) {
				t.Fatalf("error: got %v, want %v", err, boom)
			}
			if data != nil {
				t.Errorf("expected nil data on error, got %+v", data)
			}
			if ctx.Err() != nil {
				t.Error("Load only returned after the outer deadline")
			}
		})
	}
}

func TestLoaderLoadParentCancelled(t *testing.T) {
	src := &fakeSource{category: testCategory(), block: true}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader(src, src, "oral-health-tips").Load(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error: got %v, want context.Canceled", err)
	}
}

func TestPageDataRelatedArticles(t *testing.T) {
	tests := []struct {
		total int
		want  int
	}{
		{0, 0},
		{2, 2},
		{3, 3},
		{5, 3},
	}
	for _, tt := range tests {
		data := &PageData{Articles: testArticles(tt.total)}
		got := data.RelatedArticles(3)
		if len(got) != tt.want {
			t.Errorf("RelatedArticles(3) with %d articles: got %d, want %d", tt.total, len(got), tt.want)
		}
		for i := range got {
			if got[i].ID != data.Articles[i].ID {
				t.Errorf("related[%d] is not the %dth article", i, i)
			}
		}
	}
}
