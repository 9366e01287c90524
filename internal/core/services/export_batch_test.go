package services

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/kamal-hamza/rsa-cli/internal/core/domain"
)

func TestExportBatch_TryAppend(t *testing.T) {
	long30 := strings.Repeat("h", 30)
	long31 := strings.Repeat("h", 31)
	long91 := strings.Repeat("d", 91)

	tests := []struct {
		name         string
		headlines    []string
		descriptions []string
		finalURL     string
		wantErr      error
	}{
		{
			name:         "valid ad",
			headlines:    []string{"Summer Sale"},
			descriptions: []string{"Best deals"},
			finalURL:     "example.com",
		},
		{
			name:         "headline at limit",
			headlines:    []string{long30},
			descriptions: []string{"ok"},
			finalURL:     "example.com",
		},
		{
			name:         "headline over limit",
			headlines:    []string{long31},
			descriptions: []string{"ok"},
			finalURL:     "example.com",
			wantErr:      domain.ErrLengthExceeded,
		},
		{
			name:         "description over limit",
			headlines:    []string{"ok"},
			descriptions: []string{long91},
			finalURL:     "example.com",
			wantErr:      domain.ErrLengthExceeded,
		},
		{
			name:         "length checked before final url",
			headlines:    []string{long31},
			descriptions: []string{"ok"},
			finalURL:     "",
			wantErr:      domain.ErrLengthExceeded,
		},
		{
			name:         "missing final url",
			headlines:    []string{"ok"},
			descriptions: []string{"ok"},
			finalURL:     "",
			wantErr:      domain.ErrMissingFinalURL,
		},
		{
			name:         "blank assets are allowed",
			headlines:    []string{""},
			descriptions: []string{""},
			finalURL:     "example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewExportBatch()
			c := domain.NewAssetCollectionFrom(tt.headlines, tt.descriptions)

			_, err := b.TryAppend(c, domain.DestinationSpec{FinalURL: tt.finalURL})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("TryAppend() error = %v, want %v", err, tt.wantErr)
				}
				var verr *domain.ValidationError
				if !errors.As(err, &verr) {
					t.Errorf("error is not a *ValidationError: %T", err)
				}
				if b.Len() != 0 {
					t.Errorf("rejected ad was appended: Len() = %d", b.Len())
				}
				return
			}

			if err != nil {
				t.Fatalf("TryAppend() unexpected error: %v", err)
			}
			if b.Len() != 1 {
				t.Errorf("Len() = %d, want 1", b.Len())
			}
		})
	}
}

func TestExportBatch_ScenarioRecord(t *testing.T) {
	c := domain.NewAssetCollectionFrom(
		[]string{"Summer Sale", "", "Shop Now"},
		[]string{"Best deals online", ""},
	)
	d := domain.DestinationSpec{FinalURL: "example.com/shoes"}

	b := NewExportBatch()
	r, err := b.TryAppend(c, d)
	if err != nil {
		t.Fatalf("TryAppend() unexpected error: %v", err)
	}

	m := r.Map()
	want := map[string]string{
		"FinalURL":     "example.com/shoes",
		"Path1":        "",
		"Path2":        "",
		"Headline1":    "Summer Sale",
		"Headline2":    "",
		"Headline3":    "Shop Now",
		"Description1": "Best deals online",
		"Description2": "",
		"Description3": "",
		"Description4": "",
	}
	for i := 4; i <= 15; i++ {
		want["Headline"+strconv.Itoa(i)] = ""
	}
	if len(m) != len(want) {
		t.Fatalf("record has %d fields, want %d", len(m), len(want))
	}
	for k, v := range want {
		if m[k] != v {
			t.Errorf("%s = %q, want %q", k, m[k], v)
		}
	}
}

func TestExportBatch_RecordsAreSnapshots(t *testing.T) {
	c := domain.NewAssetCollectionFrom([]string{"Original"}, []string{"Desc"})
	d := domain.DestinationSpec{FinalURL: "a.com"}

	b := NewExportBatch()
	if _, err := b.TryAppend(c, d); err != nil {
		t.Fatal(err)
	}

	c.Edit(domain.Headline, 0, "Changed")
	records := b.Records()
	if records[0].Headlines[0] != "Original" {
		t.Errorf("record changed after collection edit: %q", records[0].Headlines[0])
	}

	records[0].FinalURL = "tampered"
	if b.Records()[0].FinalURL != "a.com" {
		t.Error("mutating Records() result changed the batch")
	}
}

func TestExportBatch_StateUsableAfterRejection(t *testing.T) {
	b := NewExportBatch()
	c := domain.NewAssetCollectionFrom([]string{"Ok"}, []string{"Ok"})

	if _, err := b.TryAppend(c, domain.DestinationSpec{}); !errors.Is(err, domain.ErrMissingFinalURL) {
		t.Fatalf("expected ErrMissingFinalURL, got %v", err)
	}
	if _, err := b.TryAppend(c, domain.DestinationSpec{FinalURL: "ok.com"}); err != nil {
		t.Fatalf("second TryAppend() failed: %v", err)
	}
	if b.Len() != 1 {
		t.Errorf("Len() = %d, want 1", b.Len())
	}

	b.Reset()
	if b.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", b.Len())
	}
}
