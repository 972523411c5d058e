// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package categorypage

import (
	"context"
	"fmt"
)

// Fallback metadata used when the category is missing or has no copy.
const (
	DefaultSiteName     = "Pediatric Dentist Directory"
	FallbackTitle       = "Oral Health Tips for Kids"
	FallbackDescription = "Expert oral health tips for kids from pediatric dentists: brushing, flossing, nutrition and keeping young smiles healthy."
)

// OpenGraph mirrors the page title and description for social previews.
type OpenGraph struct {
	Title       string
	Description string
}

// Metadata is the head metadata of a category page.
type Metadata struct {
	Title       string
	Description string
	OpenGraph   OpenGraph
}

// MetadataFor derives metadata from loaded page data. A nil data yields the
// fallback pair.
func MetadataFor(data *PageData, siteName string) Metadata {
	if siteName == "" {
		siteName = DefaultSiteName
	}
	if data == nil || data.Category == nil {
		return newMetadata(FallbackTitle, FallbackDescription)
	}

	c := data.Category
	title := fmt.Sprintf("%s | %s", c.Name, siteName)
	if c.SEOTitle != nil && *c.SEOTitle != "" {
		title = *c.SEOTitle
	}

	description := FallbackDescription
	switch {
	case c.SEODescription != nil && *c.SEODescription != "":
		description = *c.SEODescription
	case c.Description != nil && *c.Description != "":
		description = *c.Description
	}

	return newMetadata(title, description)
}

func newMetadata(title, description string) Metadata {
	return Metadata{
		Title:       title,
		Description: description,
		OpenGraph:   OpenGraph{Title: title, Description: description},
	}
}

// MetadataBuilder produces metadata by running its own load. It serves
// callers that do not already hold PageData; handlers that loaded the page
// call MetadataFor directly and skip the second fetch.
type MetadataBuilder struct {
	loader   *Loader
	siteName string
}

// NewMetadataBuilder creates a MetadataBuilder.
func NewMetadataBuilder(loader *Loader, siteName string) *MetadataBuilder {
	return &MetadataBuilder{loader: loader, siteName: siteName}
}

// Build loads the page data and derives metadata from it. Load errors are
// returned unchanged.
func (b *MetadataBuilder) Build(ctx context.Context) (Metadata, error) {
	data, err := b.loader.Load(ctx)
	if err != nil {
		return Metadata{}, err
	}
	return MetadataFor(data, b.siteName), nil
}
