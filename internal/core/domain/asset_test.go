package domain

import (
	"strings"
	"testing"
)

func TestAssetCollection_AddRespectsCapacity(t *testing.T) {
	tests := []struct {
		kind  AssetKind
		limit int
	}{
		{Headline, MaxHeadlines},
		{Description, MaxDescriptions},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			c := NewAssetCollection()
			for i := 0; i < tt.limit*2; i++ {
				c.Add(tt.kind)
				if c.Len(tt.kind) > tt.limit {
					t.Fatalf("Len(%s) = %d, exceeds limit %d", tt.kind, c.Len(tt.kind), tt.limit)
				}
			}
			if c.Len(tt.kind) != tt.limit {
				t.Errorf("Len(%s) = %d, want %d", tt.kind, c.Len(tt.kind), tt.limit)
			}
			if c.Add(tt.kind) {
				t.Error("Add() at capacity should report false")
			}
			if c.CanAdd(tt.kind) {
				t.Error("CanAdd() at capacity should be false")
			}
		})
	}
}

func TestAssetCollection_AddAppendsBlank(t *testing.T) {
	c := NewAssetCollectionFrom([]string{"One"}, []string{"Desc"})
	if !c.Add(Headline) {
		t.Fatal("Add() should succeed below capacity")
	}
	got := c.Headlines()
	if len(got) != 2 || got[0] != "One" || got[1] != "" {
		t.Errorf("Headlines() = %q, want [One \"\"]", got)
	}
}

func TestAssetCollection_RemoveKeepsOne(t *testing.T) {
	for _, kind := range []AssetKind{Headline, Description} {
		t.Run(kind.String(), func(t *testing.T) {
			c := NewAssetCollection()
			for i := 0; i < 20; i++ {
				c.Remove(kind, 0)
				if c.Len(kind) < 1 {
					t.Fatalf("Len(%s) dropped below 1", kind)
				}
			}
			if c.Len(kind) != 1 {
				t.Errorf("Len(%s) = %d, want 1", kind, c.Len(kind))
			}
			if c.Remove(kind, 0) {
				t.Error("Remove() of last entry should report false")
			}
			if c.CanRemove(kind) {
				t.Error("CanRemove() with one entry should be false")
			}
		})
	}
}

func TestAssetCollection_RemoveDeletesAtIndex(t *testing.T) {
	c := NewAssetCollectionFrom([]string{"A", "B", "C"}, []string{"D"})
	if !c.Remove(Headline, 1) {
		t.Fatal("Remove() should succeed")
	}
	got := strings.Join(c.Headlines(), ",")
	if got != "A,C" {
		t.Errorf("Headlines() = %q, want %q", got, "A,C")
	}
}

func TestAssetCollection_OutOfRange(t *testing.T) {
	c := NewAssetCollectionFrom([]string{"A", "B"}, []string{"D"})

	if c.Edit(Headline, 5, "x") {
		t.Error("Edit() out of range should report false")
	}
	if c.Edit(Headline, -1, "x") {
		t.Error("Edit() negative index should report false")
	}
	if c.Remove(Headline, 2) {
		t.Error("Remove() out of range should report false")
	}
	if c.Get(Description, 3) != "" {
		t.Error("Get() out of range should return empty string")
	}
	if c.Len(Headline) != 2 {
		t.Errorf("collection changed after rejected operations: Len = %d", c.Len(Headline))
	}
}

func TestAssetCollection_EditSkipsLengthCheck(t *testing.T) {
	c := NewAssetCollection()
	long := strings.Repeat("x", 50)
	if !c.Edit(Headline, 0, long) {
		t.Fatal("Edit() should accept over-limit text")
	}
	if c.Get(Headline, 0) != long {
		t.Errorf("Get() = %q, want the over-limit text", c.Get(Headline, 0))
	}
}

func TestAssetCollection_AccessorsReturnCopies(t *testing.T) {
	c := NewAssetCollectionFrom([]string{"A"}, []string{"B"})
	h := c.Headlines()
	h[0] = "changed"
	if c.Get(Headline, 0) != "A" {
		t.Error("mutating Headlines() result changed the collection")
	}

	clone := c.Clone()
	clone.Edit(Description, 0, "other")
	if c.Get(Description, 0) != "B" {
		t.Error("editing a clone changed the original")
	}
}

func TestNewAssetCollectionFrom_Normalizes(t *testing.T) {
	many := make([]string, 20)
	c := NewAssetCollectionFrom(many, nil)
	if c.Len(Headline) != MaxHeadlines {
		t.Errorf("Len(headline) = %d, want %d", c.Len(Headline), MaxHeadlines)
	}
	if c.Len(Description) != 1 {
		t.Errorf("Len(description) = %d, want 1", c.Len(Description))
	}
}

func TestParseAssetKind(t *testing.T) {
	tests := []struct {
		input   string
		want    AssetKind
		wantErr bool
	}{
		{"headline", Headline, false},
		{"h", Headline, false},
		{"description", Description, false},
		{"desc", Description, false},
		{"d", Description, false},
		{"banner", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAssetKind(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAssetKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseAssetKind(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCharCount_CountsRunes(t *testing.T) {
	if n := CharCount("Café › ünïcode"); n != 14 {
		t.Errorf("CharCount() = %d, want 14", n)
	}
}

func TestCounter(t *testing.T) {
	c := NewAssetCollection()
	if got := c.Counter(Headline); got != "3/15" {
		t.Errorf("Counter(headline) = %q, want %q", got, "3/15")
	}
	if got := c.Counter(Description); got != "2/4" {
		t.Errorf("Counter(description) = %q, want %q", got, "2/4")
	}
}
