package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Draft is the on-disk form of one ad being composed
type Draft struct {
	Name         string          `yaml:"name"`
	Destination  DestinationSpec `yaml:"destination"`
	Headlines    []string        `yaml:"headlines"`
	Descriptions []string        `yaml:"descriptions"`
	Slug         string          `yaml:"-"` // e.g. "summer-sale"
	Filename     string          `yaml:"-"` // e.g. "summer-sale.yaml"
}

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)
	slugDashes  = regexp.MustCompile(`-+`)
)

// GenerateSlug creates a file-friendly slug from a draft name
// Converts "Summer Sale 2025" -> "summer-sale-2025"
func GenerateSlug(name string) string {
	slug := strings.ToLower(name)
	slug = slugInvalid.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	return slugDashes.ReplaceAllString(slug, "-")
}

// GenerateFilename returns the draft file name for a slug
func GenerateFilename(slug string) string {
	return slug + ".yaml"
}

// ParseFilename extracts the slug from a draft file name
func ParseFilename(filename string) string {
	return strings.TrimSuffix(filename, ".yaml")
}

// ValidateName checks if a draft name is usable
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if len(name) > 200 {
		return fmt.Errorf("name too long (max 200 characters)")
	}
	if GenerateSlug(name) == "" {
		return fmt.Errorf("name must contain at least one letter or digit")
	}
	return nil
}

// NewDraft creates an empty draft with the default asset slots
func NewDraft(name string) (*Draft, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	slug := GenerateSlug(name)
	c := NewAssetCollection()
	return &Draft{
		Name:         name,
		Headlines:    c.Headlines(),
		Descriptions: c.Descriptions(),
		Slug:         slug,
		Filename:     GenerateFilename(slug),
	}, nil
}

// Collection returns the draft's assets as a collection
func (d *Draft) Collection() *AssetCollection {
	return NewAssetCollectionFrom(d.Headlines, d.Descriptions)
}

// Update copies a collection's current assets back into the draft
func (d *Draft) Update(c *AssetCollection) {
	d.Headlines = c.Headlines()
	d.Descriptions = c.Descriptions()
}
