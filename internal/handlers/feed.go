// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/xml"
	"log/slog"
	"net/http"
	"time"

	"pediatricdir/internal/categorypage"
	"pediatricdir/internal/models"
	"pediatricdir/internal/views"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	LastBuildDate string    `xml:"lastBuildDate,omitempty"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description,omitempty"`
	Author      string `xml:"author,omitempty"`
	Category    string `xml:"category,omitempty"`
	PubDate     string `xml:"pubDate,omitempty"`
	GUID        string `xml:"guid"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// articleTime is the publish date, or the creation date for undated articles.
func articleTime(a *models.Article) time.Time {
	if a.PublishedAt != nil {
		return *a.PublishedAt
	}
	return a.CreatedAt
}

// Feed serves the category's published articles as RSS 2.0, in listing order.
func (p *Public) Feed(w http.ResponseWriter, r *http.Request) {
	data, err := p.loader.Load(r.Context())
	if err != nil {
		slog.Error("load category feed failed", "slug", p.loader.Slug(), "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if data == nil {
		http.NotFound(w, r)
		return
	}

	md := categorypage.MetadataFor(data, p.site.Name)
	items := make([]rssItem, 0, len(data.Articles))
	var latest time.Time
	for i := range data.Articles {
		a := &data.Articles[i]
		link := views.BuildURL(p.site.URL, "blog", a.Slug)
		item := rssItem{
			Title:    a.Title,
			Link:     link,
			Author:   a.Author.Name,
			Category: a.Category.Name,
			PubDate:  articleTime(a).UTC().Format(time.RFC1123Z),
			GUID:     link,
		}
		if a.Excerpt != nil {
			item.Description = *a.Excerpt
		}
		if t := articleTime(a); t.After(latest) {
			latest = t
		}
		items = append(items, item)
	}

	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       md.Title,
			Link:        p.CategoryURL(),
			Description: md.Description,
			Items:       items,
		},
	}
	if !latest.IsZero() {
		feed.Channel.LastBuildDate = latest.UTC().Format(time.RFC1123Z)
	}

	writeXML(w, "application/rss+xml; charset=utf-8", feed)
}

// Sitemap lists the category page and its published articles. Only URLs
// this server answers are included, so a missing category yields an empty set.
func (p *Public) Sitemap(w http.ResponseWriter, r *http.Request) {
	data, err := p.loader.Load(r.Context())
	if err != nil {
		slog.Error("load sitemap failed", "slug", p.loader.Slug(), "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var urls []sitemapURL
	if data != nil {
		category := sitemapURL{Loc: p.CategoryURL()}
		if len(data.Articles) > 0 {
			category.LastMod = articleTime(&data.Articles[0]).UTC().Format("2006-01-02")
		}
		urls = append(urls, category)

		for i := range data.Articles {
			a := &data.Articles[i]
			urls = append(urls, sitemapURL{
				Loc:     views.BuildURL(p.site.URL, "blog", a.Slug),
				LastMod: articleTime(a).UTC().Format("2006-01-02"),
			})
		}
	}

	writeXML(w, "application/xml; charset=utf-8", sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	})
}

func writeXML(w http.ResponseWriter, contentType string, v any) {
	out, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		slog.Error("encode xml failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(xml.Header))
	w.Write(out)
}
