package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/kamal-hamza/rsa-cli/internal/core/domain"
	"github.com/kamal-hamza/rsa-cli/internal/core/ports"
)

// DraftService handles creating, listing and editing ad drafts
type DraftService struct {
	draftRepo ports.DraftRepository
}

// NewDraftService creates a new draft service
func NewDraftService(draftRepo ports.DraftRepository) *DraftService {
	return &DraftService{
		draftRepo: draftRepo,
	}
}

// CreateDraftRequest represents a request to create a new draft
type CreateDraftRequest struct {
	Name         string
	Destination  domain.DestinationSpec
	Headlines    []string // optional, replaces the default blank slots
	Descriptions []string // optional, replaces the default blank slots
}

// Create validates the name and stores a new draft
func (s *DraftService) Create(ctx context.Context, req CreateDraftRequest) (*domain.Draft, error) {
	draft, err := domain.NewDraft(req.Name)
	if err != nil {
		return nil, fmt.Errorf("invalid name: %w", err)
	}

	if s.draftRepo.Exists(ctx, draft.Slug) {
		return nil, fmt.Errorf("draft with slug '%s' already exists", draft.Slug)
	}

	draft.Destination = req.Destination
	if len(req.Headlines) > 0 || len(req.Descriptions) > 0 {
		c := draft.Collection()
		if len(req.Headlines) > 0 {
			c = domain.NewAssetCollectionFrom(req.Headlines, c.Descriptions())
		}
		if len(req.Descriptions) > 0 {
			c = domain.NewAssetCollectionFrom(c.Headlines(), req.Descriptions)
		}
		draft.Update(c)
	}

	if err := s.draftRepo.Save(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return draft, nil
}

// ListRequest represents a request to list drafts
type ListRequest struct {
	SortBy  string // "name", "slug" (default: slug)
	Reverse bool
}

// ListResponse represents the response from listing drafts
type ListResponse struct {
	Drafts []domain.Draft
	Total  int
}

// List returns drafts in the requested order
func (s *DraftService) List(ctx context.Context, req ListRequest) (*ListResponse, error) {
	drafts, err := s.draftRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}

	sort.SliceStable(drafts, func(i, j int) bool {
		var less bool
		switch req.SortBy {
		case "name":
			less = strings.ToLower(drafts[i].Name) < strings.ToLower(drafts[j].Name)
		default:
			less = drafts[i].Slug < drafts[j].Slug
		}
		if req.Reverse {
			return !less
		}
		return less
	})

	return &ListResponse{Drafts: drafts, Total: len(drafts)}, nil
}

// SearchRequest represents a search query
type SearchRequest struct {
	Query string
}

// Search performs fuzzy search over draft names, slugs and domains
func (s *DraftService) Search(ctx context.Context, req SearchRequest) (*ListResponse, error) {
	drafts, err := s.draftRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		return &ListResponse{Drafts: drafts, Total: len(drafts)}, nil
	}

	type match struct {
		draft domain.Draft
		score int
	}
	var matches []match
	for _, d := range drafts {
		if score := fuzzyMatchScore(d.Name, query); score > 0 {
			matches = append(matches, match{d, score + 1000})
		} else if score := fuzzyMatchScore(d.Slug, query); score > 0 {
			matches = append(matches, match{d, score + 500})
		} else if score := fuzzyMatchScore(d.Destination.Domain(), query); score > 0 {
			matches = append(matches, match{d, score + 200})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	result := make([]domain.Draft, len(matches))
	for i, m := range matches {
		result[i] = m.draft
	}
	return &ListResponse{Drafts: result, Total: len(result)}, nil
}

// AssetOp names a mutation of a draft's asset lists
type AssetOp string

const (
	OpAdd    AssetOp = "add"
	OpEdit   AssetOp = "edit"
	OpRemove AssetOp = "remove"
)

// MutateRequest represents one asset mutation on a stored draft
type MutateRequest struct {
	Slug  string
	Op    AssetOp
	Kind  domain.AssetKind
	Index int // zero based, ignored for OpAdd
	Value string
}

// MutateResponse reports the draft after the mutation
type MutateResponse struct {
	Draft   *domain.Draft
	Changed bool // false when the collection ignored the request
}

// Mutate applies an add, edit or remove to a draft and saves it when it changed
func (s *DraftService) Mutate(ctx context.Context, req MutateRequest) (*MutateResponse, error) {
	draft, err := s.draftRepo.Get(ctx, req.Slug)
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}

	c := draft.Collection()
	var changed bool
	switch req.Op {
	case OpAdd:
		changed = c.Add(req.Kind)
		if changed && req.Value != "" {
			c.Edit(req.Kind, c.Len(req.Kind)-1, req.Value)
		}
	case OpEdit:
		changed = c.Edit(req.Kind, req.Index, req.Value)
	case OpRemove:
		changed = c.Remove(req.Kind, req.Index)
	default:
		return nil, fmt.Errorf("unknown asset operation %q", req.Op)
	}

	if changed {
		draft.Update(c)
		if err := s.draftRepo.Save(ctx, draft); err != nil {
			return nil, fmt.Errorf("failed to save draft: %w", err)
		}
	}

	return &MutateResponse{Draft: draft, Changed: changed}, nil
}

// SetDestination replaces the final URL and display path of a draft
func (s *DraftService) SetDestination(ctx context.Context, slug string, dest domain.DestinationSpec) (*domain.Draft, error) {
	draft, err := s.draftRepo.Get(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	draft.Destination = dest
	if err := s.draftRepo.Save(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return draft, nil
}

// fuzzyMatchScore calculates a score for fuzzy matching query against text
// Returns 0 if no match, higher scores for better matches
func fuzzyMatchScore(text, query string) int {
	if text == "" || query == "" {
		return 0
	}

	textLower := strings.ToLower(text)
	queryLower := strings.ToLower(query)

	if text == query {
		return 10000
	}
	if textLower == queryLower {
		return 9000
	}

	if strings.Contains(textLower, queryLower) {
		score := 5000
		if strings.HasPrefix(textLower, queryLower) {
			score += 2000
		}
		return score
	}

	// Character-by-character matching
	score := 0
	textRunes := []rune(textLower)
	queryRunes := []rune(queryLower)

	queryIdx := 0
	consecutive := 0
	lastMatchIdx := -1

	for textIdx := 0; textIdx < len(textRunes) && queryIdx < len(queryRunes); textIdx++ {
		if textRunes[textIdx] != queryRunes[queryIdx] {
			continue
		}
		score += 100
		if textIdx == lastMatchIdx+1 {
			consecutive++
			score += consecutive * 50
		} else {
			consecutive = 0
		}
		if textIdx == 0 || unicode.IsSpace(textRunes[textIdx-1]) || textRunes[textIdx-1] == '-' || textRunes[textIdx-1] == '.' {
			score += 200
		}
		lastMatchIdx = textIdx
		queryIdx++
	}

	if queryIdx != len(queryRunes) {
		return 0
	}

	// Penalty for gaps between matches
	score -= (lastMatchIdx + 1 - len(queryRunes)) * 10
	if score <= 0 {
		score = 1
	}
	return score
}
