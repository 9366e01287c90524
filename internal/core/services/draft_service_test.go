package services

import (
	"context"
	"strings"
	"testing"

	"github.com/kamal-hamza/rsa-cli/internal/core/domain"
	"github.com/kamal-hamza/rsa-cli/internal/core/ports/mocks"
)

func TestDraftService_Create(t *testing.T) {
	tests := []struct {
		name        string
		request     CreateDraftRequest
		setup       func(*mocks.MockDraftRepository)
		expectError bool
		errorMsg    string
	}{
		{
			name:    "successful draft creation",
			request: CreateDraftRequest{Name: "Summer Sale"},
			setup:   func(r *mocks.MockDraftRepository) {},
		},
		{
			name: "draft with assets and destination",
			request: CreateDraftRequest{
				Name:         "Shoes",
				Destination:  domain.DestinationSpec{FinalURL: "acme.com/shoes"},
				Headlines:    []string{"A", "B"},
				Descriptions: []string{"C"},
			},
			setup: func(r *mocks.MockDraftRepository) {},
		},
		{
			name:        "empty name should fail",
			request:     CreateDraftRequest{Name: "   "},
			setup:       func(r *mocks.MockDraftRepository) {},
			expectError: true,
			errorMsg:    "invalid name",
		},
		{
			name:        "symbols only should fail",
			request:     CreateDraftRequest{Name: "!!!"},
			setup:       func(r *mocks.MockDraftRepository) {},
			expectError: true,
			errorMsg:    "invalid name",
		},
		{
			name:    "duplicate draft should fail",
			request: CreateDraftRequest{Name: "Dup"},
			setup: func(r *mocks.MockDraftRepository) {
				d, _ := domain.NewDraft("Dup")
				r.Save(context.Background(), d)
			},
			expectError: true,
			errorMsg:    "already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockDraftRepository()
			tt.setup(repo)
			svc := NewDraftService(repo)

			draft, err := svc.Create(context.Background(), tt.request)

			if tt.expectError {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errorMsg)
				}
				if !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errorMsg)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !repo.Exists(context.Background(), draft.Slug) {
				t.Errorf("draft %q was not saved", draft.Slug)
			}
			if len(tt.request.Headlines) > 0 && draft.Headlines[0] != tt.request.Headlines[0] {
				t.Errorf("Headlines = %q", draft.Headlines)
			}
			if draft.Destination != tt.request.Destination {
				t.Errorf("Destination = %+v", draft.Destination)
			}
		})
	}
}

func TestDraftService_Mutate(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockDraftRepository()
	svc := NewDraftService(repo)

	draft, err := svc.Create(ctx, CreateDraftRequest{Name: "Edit Me", Headlines: []string{"One"}, Descriptions: []string{"Desc"}})
	if err != nil {
		t.Fatal(err)
	}

	resp, err := svc.Mutate(ctx, MutateRequest{Slug: draft.Slug, Op: OpAdd, Kind: domain.Headline, Value: "Two"})
	if err != nil || !resp.Changed {
		t.Fatalf("add: changed=%v err=%v", resp != nil && resp.Changed, err)
	}

	resp, err = svc.Mutate(ctx, MutateRequest{Slug: draft.Slug, Op: OpEdit, Kind: domain.Headline, Index: 0, Value: "Uno"})
	if err != nil || !resp.Changed {
		t.Fatalf("edit: err=%v", err)
	}

	stored, _ := repo.Get(ctx, draft.Slug)
	if strings.Join(stored.Headlines, ",") != "Uno,Two" {
		t.Errorf("Headlines = %q, want [Uno Two]", stored.Headlines)
	}

	// Removing the last description is ignored
	resp, err = svc.Mutate(ctx, MutateRequest{Slug: draft.Slug, Op: OpRemove, Kind: domain.Description, Index: 0})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Changed {
		t.Error("removing the last description should not change the draft")
	}

	if _, err := svc.Mutate(ctx, MutateRequest{Slug: draft.Slug, Op: "rotate"}); err == nil {
		t.Error("unknown operation should fail")
	}
	if _, err := svc.Mutate(ctx, MutateRequest{Slug: "missing", Op: OpAdd}); err == nil {
		t.Error("missing draft should fail")
	}
}

func TestDraftService_ListAndSearch(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockDraftRepository()
	svc := NewDraftService(repo)

	for _, req := range []CreateDraftRequest{
		{Name: "Winter Boots", Destination: domain.DestinationSpec{FinalURL: "boots.example.org"}},
		{Name: "Summer Sale", Destination: domain.DestinationSpec{FinalURL: "acme.com"}},
		{Name: "Autumn Hats"},
	} {
		if _, err := svc.Create(ctx, req); err != nil {
			t.Fatal(err)
		}
	}

	list, err := svc.List(ctx, ListRequest{SortBy: "name"})
	if err != nil {
		t.Fatal(err)
	}
	if list.Total != 3 || list.Drafts[0].Name != "Autumn Hats" {
		t.Errorf("List() = %v", list.Drafts)
	}

	rev, _ := svc.List(ctx, ListRequest{SortBy: "name", Reverse: true})
	if rev.Drafts[0].Name != "Winter Boots" {
		t.Errorf("reverse List()[0] = %q", rev.Drafts[0].Name)
	}

	res, err := svc.Search(ctx, SearchRequest{Query: "summer"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Total == 0 || res.Drafts[0].Name != "Summer Sale" {
		t.Errorf("Search(summer) = %v", res.Drafts)
	}

	res, _ = svc.Search(ctx, SearchRequest{Query: "acme"})
	if res.Total != 1 || res.Drafts[0].Slug != "summer-sale" {
		t.Errorf("Search(acme) = %v", res.Drafts)
	}

	res, _ = svc.Search(ctx, SearchRequest{Query: ""})
	if res.Total != 3 {
		t.Errorf("empty Search() Total = %d, want 3", res.Total)
	}
}

func TestDraftService_SetDestination(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockDraftRepository()
	svc := NewDraftService(repo)
	draft, _ := svc.Create(ctx, CreateDraftRequest{Name: "Dest"})

	dest := domain.DestinationSpec{FinalURL: "acme.com", Path1: "a", Path2: "b"}
	if _, err := svc.SetDestination(ctx, draft.Slug, dest); err != nil {
		t.Fatal(err)
	}
	stored, _ := repo.Get(ctx, draft.Slug)
	if stored.Destination != dest {
		t.Errorf("Destination = %+v, want %+v", stored.Destination, dest)
	}
}

func TestFuzzyMatchScore(t *testing.T) {
	if fuzzyMatchScore("Summer Sale", "xyz") != 0 {
		t.Error("unrelated query should not match")
	}
	if fuzzyMatchScore("Summer Sale", "summer sale") <= fuzzyMatchScore("Summer Sale", "sum") {
		t.Error("exact match should outrank prefix match")
	}
	if fuzzyMatchScore("Summer Sale", "ssl") <= 0 {
		t.Error("subsequence should match")
	}
}
