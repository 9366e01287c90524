package domain

import (
	"strings"
	"testing"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Summer Sale", "summer-sale"},
		{"with numbers", "Summer Sale 2025", "summer-sale-2025"},
		{"punctuation", "Shoes & Boots!", "shoes-boots"},
		{"leading and trailing", "  --Hello--  ", "hello"},
		{"repeated separators", "a   b___c", "a-b-c"},
		{"already slug", "winter-boots", "winter-boots"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateSlug(tt.input); got != tt.expected {
				t.Errorf("GenerateSlug(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFilenameRoundTrip(t *testing.T) {
	filename := GenerateFilename("summer-sale")
	if filename != "summer-sale.yaml" {
		t.Errorf("GenerateFilename() = %q", filename)
	}
	if got := ParseFilename(filename); got != "summer-sale" {
		t.Errorf("ParseFilename() = %q", got)
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "Summer Sale", false},
		{"empty", "", true},
		{"whitespace", "   ", true},
		{"symbols only", "!!!", true},
		{"too long", strings.Repeat("a", 201), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestNewDraft(t *testing.T) {
	d, err := NewDraft("Summer Sale")
	if err != nil {
		t.Fatalf("NewDraft() failed: %v", err)
	}
	if d.Slug != "summer-sale" || d.Filename != "summer-sale.yaml" {
		t.Errorf("slug/filename = %q/%q", d.Slug, d.Filename)
	}
	if len(d.Headlines) != 3 || len(d.Descriptions) != 2 {
		t.Errorf("default slots = %d/%d, want 3/2", len(d.Headlines), len(d.Descriptions))
	}

	if _, err := NewDraft(""); err == nil {
		t.Error("NewDraft(\"\") should fail")
	}
}

func TestDraft_CollectionUpdate(t *testing.T) {
	d, _ := NewDraft("Summer Sale")
	c := d.Collection()
	c.Edit(Headline, 0, "Summer Sale")
	c.Add(Description)

	// The collection is a copy until Update is called
	if d.Headlines[0] != "" {
		t.Error("editing the collection changed the draft")
	}

	d.Update(c)
	if d.Headlines[0] != "Summer Sale" || len(d.Descriptions) != 3 {
		t.Errorf("after Update: %q / %d descriptions", d.Headlines, len(d.Descriptions))
	}
}

func TestDraft_CollectionNormalizes(t *testing.T) {
	d := &Draft{
		Headlines:    make([]string, 20),
		Descriptions: nil,
	}
	c := d.Collection()
	if c.Len(Headline) != MaxHeadlines {
		t.Errorf("headlines = %d, want %d", c.Len(Headline), MaxHeadlines)
	}
	if c.Len(Description) != 1 {
		t.Errorf("descriptions = %d, want 1", c.Len(Description))
	}
}
