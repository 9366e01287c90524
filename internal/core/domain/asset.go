package domain

import (
	"fmt"
	"unicode/utf8"
)

// AssetKind identifies which list of text assets an operation targets
type AssetKind int

const (
	// Headline assets are shown joined by " | " at the top of the ad
	Headline AssetKind = iota
	// Description assets are shown as body text below the headlines
	Description
)

const (
	MaxHeadlines      = 15
	MaxDescriptions   = 4
	HeadlineCharLimit = 30
	DescCharLimit     = 90
)

// String returns the lowercase name used in commands and messages
func (k AssetKind) String() string {
	switch k {
	case Headline:
		return "headline"
	case Description:
		return "description"
	default:
		return fmt.Sprintf("AssetKind(%d)", int(k))
	}
}

// ParseAssetKind converts a user supplied name ("headline", "h", "description", "d")
func ParseAssetKind(s string) (AssetKind, error) {
	switch s {
	case "headline", "headlines", "h":
		return Headline, nil
	case "description", "descriptions", "desc", "d":
		return Description, nil
	}
	return 0, fmt.Errorf("unknown asset kind %q (valid: headline, description)", s)
}

// Limit returns the maximum number of entries for the kind
func (k AssetKind) Limit() int {
	if k == Description {
		return MaxDescriptions
	}
	return MaxHeadlines
}

// CharLimit returns the maximum character count of a single entry
func (k AssetKind) CharLimit() int {
	if k == Description {
		return DescCharLimit
	}
	return HeadlineCharLimit
}

// CharCount counts characters the way the limits are expressed (code points, not bytes)
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}

// AssetCollection holds the ordered headline and description texts of one ad.
// Both lists always contain at least one entry.
type AssetCollection struct {
	headlines    []string
	descriptions []string
}

// NewAssetCollection creates a collection with three blank headlines and two
// blank descriptions, the slot counts a fresh ad starts with.
func NewAssetCollection() *AssetCollection {
	return &AssetCollection{
		headlines:    []string{"", "", ""},
		descriptions: []string{"", ""},
	}
}

// NewAssetCollectionFrom builds a collection from existing texts. Lists are
// truncated to their capacity and empty lists get a single blank entry.
func NewAssetCollectionFrom(headlines, descriptions []string) *AssetCollection {
	return &AssetCollection{
		headlines:    normalize(headlines, MaxHeadlines),
		descriptions: normalize(descriptions, MaxDescriptions),
	}
}

func normalize(values []string, limit int) []string {
	if len(values) == 0 {
		return []string{""}
	}
	if len(values) > limit {
		values = values[:limit]
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}

func (c *AssetCollection) list(kind AssetKind) *[]string {
	if kind == Description {
		return &c.descriptions
	}
	return &c.headlines
}

// Add appends a blank entry. Returns false when the list is already at capacity.
func (c *AssetCollection) Add(kind AssetKind) bool {
	l := c.list(kind)
	if len(*l) >= kind.Limit() {
		return false
	}
	*l = append(*l, "")
	return true
}

// Edit replaces the entry at index. Character limits are not checked here;
// they are enforced when the ad is added to an export batch.
func (c *AssetCollection) Edit(kind AssetKind, index int, value string) bool {
	l := c.list(kind)
	if index < 0 || index >= len(*l) {
		return false
	}
	(*l)[index] = value
	return true
}

// Remove deletes the entry at index unless it is the last one left
func (c *AssetCollection) Remove(kind AssetKind, index int) bool {
	l := c.list(kind)
	if len(*l) <= 1 || index < 0 || index >= len(*l) {
		return false
	}
	*l = append((*l)[:index], (*l)[index+1:]...)
	return true
}

// Get returns the entry at index, or "" when out of range
func (c *AssetCollection) Get(kind AssetKind, index int) string {
	l := *c.list(kind)
	if index < 0 || index >= len(l) {
		return ""
	}
	return l[index]
}

// Len returns the number of entries for the kind
func (c *AssetCollection) Len(kind AssetKind) int {
	return len(*c.list(kind))
}

// CanAdd reports whether Add would succeed
func (c *AssetCollection) CanAdd(kind AssetKind) bool {
	return c.Len(kind) < kind.Limit()
}

// CanRemove reports whether Remove would succeed for a valid index
func (c *AssetCollection) CanRemove(kind AssetKind) bool {
	return c.Len(kind) > 1
}

// Headlines returns a copy of the headline texts
func (c *AssetCollection) Headlines() []string {
	return append([]string(nil), c.headlines...)
}

// Descriptions returns a copy of the description texts
func (c *AssetCollection) Descriptions() []string {
	return append([]string(nil), c.descriptions...)
}

// Clone returns an independent copy of the collection
func (c *AssetCollection) Clone() *AssetCollection {
	return &AssetCollection{
		headlines:    c.Headlines(),
		descriptions: c.Descriptions(),
	}
}

// Counter renders "n/limit" for the render collaborator
func (c *AssetCollection) Counter(kind AssetKind) string {
	return fmt.Sprintf("%d/%d", c.Len(kind), kind.Limit())
}
