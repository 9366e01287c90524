package services

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/kamal-hamza/rsa-cli/internal/core/domain"
)

// PreviewComposer derives displayable ad combinations from the current assets
type PreviewComposer struct {
	rng *rand.Rand
}

// NewPreviewComposer creates a composer drawing randomness from rng.
// A nil rng gets a time seeded source.
func NewPreviewComposer(rng *rand.Rand) *PreviewComposer {
	if rng == nil {
		rng = NewRand(0)
	}
	return &PreviewComposer{rng: rng}
}

// NewRand returns a PCG source for seed, or a time seeded one when seed is 0
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Compose builds a preview. With randomize false the result depends only on
// the inputs; with randomize true headlines and description are sampled.
func (p *PreviewComposer) Compose(c *domain.AssetCollection, d domain.DestinationSpec, randomize bool) domain.PreviewResult {
	return domain.PreviewResult{
		DisplayDomain:       d.Domain(),
		DisplayPath:         d.DisplayPath(),
		SelectedHeadlines:   p.selectHeadlines(c.Headlines(), randomize),
		SelectedDescription: p.selectDescription(c.Descriptions(), randomize),
	}
}

func (p *PreviewComposer) selectHeadlines(headlines []string, randomize bool) []string {
	filled := nonBlank(headlines)
	if len(filled) == 0 {
		return append([]string(nil), domain.PlaceholderHeadlines...)
	}

	count := 3
	if randomize {
		p.shuffle(filled)
		// Two or three headlines, equally likely
		if p.rng.IntN(2) == 0 {
			count = 2
		}
	}
	if count > len(filled) {
		count = len(filled)
	}
	return filled[:count]
}

func (p *PreviewComposer) selectDescription(descriptions []string, randomize bool) string {
	filled := nonBlank(descriptions)
	if len(filled) == 0 {
		return domain.PlaceholderDescription
	}
	if randomize {
		return filled[p.rng.IntN(len(filled))]
	}
	return filled[0]
}

func (p *PreviewComposer) shuffle(values []string) {
	p.rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
}

// nonBlank returns the entries that contain more than whitespace, in order
func nonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
