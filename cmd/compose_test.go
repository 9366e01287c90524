package cmd

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kamal-hamza/rsa-cli/internal/core/domain"
	"github.com/kamal-hamza/rsa-cli/internal/core/ports/mocks"
	"github.com/kamal-hamza/rsa-cli/internal/core/services"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m composeModel, msgs ...tea.Msg) composeModel {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(composeModel)
	}
	return m
}

func typeText(s string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

func newTestComposer(t *testing.T) (composeModel, *mocks.MockBatchRepository, *mocks.MockSink) {
	t.Helper()
	batch := mocks.NewMockBatchRepository()
	out := mocks.NewMockSink()
	session := services.NewSession(nil, domain.DestinationSpec{}, nil,
		services.NewPreviewComposer(services.NewRand(7)))

	m := newComposeModel(context.Background(), session, composeOptions{
		batch:    batch,
		download: services.NewDownloadService("", out),
	})
	return m, batch, out
}

func TestComposeModel_Initialization(t *testing.T) {
	m, _, _ := newTestComposer(t)

	if m.mode != composeBrowse {
		t.Errorf("mode = %v, want browse", m.mode)
	}
	if m.kind != domain.Headline || m.cursor != 0 {
		t.Errorf("kind/cursor = %v/%d", m.kind, m.cursor)
	}
	if m.device != domain.DeviceDesktop {
		t.Errorf("device = %v", m.device)
	}
	if m.session.Assets.Len(domain.Headline) != 3 || m.session.Assets.Len(domain.Description) != 2 {
		t.Error("new session should start with 3 headline and 2 description slots")
	}
	if m.preview.HeadlineText() != "Headline 1 | Headline 2 | Headline 3" {
		t.Errorf("initial preview = %q", m.preview.HeadlineText())
	}
}

func TestComposeModel_EditAsset(t *testing.T) {
	m, _, _ := newTestComposer(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != composeEditAsset {
		t.Fatalf("mode = %v, want edit", m.mode)
	}
	m = press(t, m, typeText("Summer Sale")...)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.mode != composeBrowse {
		t.Errorf("mode = %v after confirm", m.mode)
	}
	if got := m.session.Assets.Get(domain.Headline, 0); got != "Summer Sale" {
		t.Errorf("headline 1 = %q", got)
	}
	if m.preview.HeadlineText() != "Summer Sale" {
		t.Errorf("preview not refreshed: %q", m.preview.HeadlineText())
	}
}

func TestComposeModel_EditAssetRespectsCharLimit(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.Msg
		kind domain.AssetKind
	}{
		{"headline", nil, domain.Headline},
		{"description", []tea.Msg{tea.KeyMsg{Type: tea.KeyTab}}, domain.Description},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _ := newTestComposer(t)
			m = press(t, m, tt.keys...)
			m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			if m.input.CharLimit != tt.kind.CharLimit() {
				t.Fatalf("input limit = %d, want %d", m.input.CharLimit, tt.kind.CharLimit())
			}

			m = press(t, m, typeText(strings.Repeat("x", tt.kind.CharLimit()+10))...)
			m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

			if got := domain.CharCount(m.session.Assets.Get(tt.kind, 0)); got != tt.kind.CharLimit() {
				t.Errorf("stored %d characters, want %d", got, tt.kind.CharLimit())
			}
		})
	}
}

func TestComposeModel_URLEditResetsCharLimit(t *testing.T) {
	m, _, _ := newTestComposer(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEsc})
	m = press(t, m, runes("u"))
	if m.mode != composeEditURL {
		t.Fatalf("mode = %v, want url edit", m.mode)
	}
	if m.input.CharLimit != urlCharLimit {
		t.Errorf("input limit = %d, want %d", m.input.CharLimit, urlCharLimit)
	}
}

func TestComposeModel_EscapeCancelsEdit(t *testing.T) {
	m, _, _ := newTestComposer(t)

	m = press(t, m, runes("e"))
	m = press(t, m, typeText("discard")...)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.session.Assets.Get(domain.Headline, 0) != "" {
		t.Error("escape should not store the edit")
	}
}

func TestComposeModel_AddRemoveSlots(t *testing.T) {
	m, _, _ := newTestComposer(t)

	m = press(t, m, runes("n"))
	if m.session.Assets.Len(domain.Headline) != 4 || m.cursor != 3 {
		t.Errorf("after add: len=%d cursor=%d", m.session.Assets.Len(domain.Headline), m.cursor)
	}

	m = press(t, m, runes("x"))
	if m.session.Assets.Len(domain.Headline) != 3 || m.cursor != 2 {
		t.Errorf("after remove: len=%d cursor=%d", m.session.Assets.Len(domain.Headline), m.cursor)
	}

	// Descriptions stop at the minimum of one
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, runes("x"), runes("x"))
	if m.session.Assets.Len(domain.Description) != 1 {
		t.Errorf("descriptions = %d, want 1", m.session.Assets.Len(domain.Description))
	}
	if m.message == "" {
		t.Error("expected a message when removing the last description")
	}

	// and at the maximum of four
	m = press(t, m, runes("n"), runes("n"), runes("n"), runes("n"))
	if m.session.Assets.Len(domain.Description) != domain.MaxDescriptions {
		t.Errorf("descriptions = %d, want %d", m.session.Assets.Len(domain.Description), domain.MaxDescriptions)
	}
	if !strings.Contains(m.message, "4/4") {
		t.Errorf("message = %q", m.message)
	}
}

func TestComposeModel_Navigation(t *testing.T) {
	m, _, _ := newTestComposer(t)

	m = press(t, m, runes("k"))
	if m.cursor != 0 {
		t.Errorf("cursor moved above the first slot: %d", m.cursor)
	}
	m = press(t, m, runes("j"), runes("j"), runes("j"), runes("j"))
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2 (last headline)", m.cursor)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.kind != domain.Description || m.cursor != 0 {
		t.Errorf("tab: kind=%v cursor=%d", m.kind, m.cursor)
	}
}

func TestComposeModel_AddToBatchAndExport(t *testing.T) {
	m, batch, out := newTestComposer(t)

	// Missing URL is refused
	m = press(t, m, runes("a"))
	if m.session.Batch.Len() != 0 {
		t.Fatal("ad without final URL was accepted")
	}
	if !strings.Contains(m.message, "Final URL") {
		t.Errorf("message = %q", m.message)
	}

	// Set URL, path1 and skip path2
	m = press(t, m, runes("u"))
	m = press(t, m, typeText("example.com/shoes")...)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = press(t, m, typeText("shoes")...)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != composeBrowse {
		t.Fatalf("mode = %v after URL entry", m.mode)
	}
	if m.session.Destination.FinalURL != "example.com/shoes" || m.session.Destination.Path1 != "shoes" {
		t.Errorf("destination = %+v", m.session.Destination)
	}
	if m.preview.DisplayURL() != "example.com › shoes" {
		t.Errorf("display URL = %q", m.preview.DisplayURL())
	}

	m = press(t, m, runes("a"))
	if m.session.Batch.Len() != 1 {
		t.Fatalf("batch len = %d, want 1", m.session.Batch.Len())
	}
	stored, _ := batch.Load(context.Background())
	if len(stored) != 1 {
		t.Errorf("stored records = %d, want 1", len(stored))
	}

	m = press(t, m, runes("w"))
	if len(out.Payloads) != 1 {
		t.Fatalf("payloads = %d, want 1", len(out.Payloads))
	}
	if !strings.Contains(string(out.Payloads[0].Content), `"example.com/shoes","shoes",""`) {
		t.Errorf("unexpected CSV:\n%s", out.Payloads[0].Content)
	}
	if !strings.Contains(m.message, "Exported 1 ads") {
		t.Errorf("message = %q", m.message)
	}
}

func TestComposeModel_OverLimitRejected(t *testing.T) {
	m, _, _ := newTestComposer(t)
	m.session.Destination.FinalURL = "example.com"

	// Drafts edited on disk can carry assets the input field would have cut
	m.session.Assets.Edit(domain.Headline, 0, strings.Repeat("x", 31))
	m = press(t, m, runes("a"))

	if m.session.Batch.Len() != 0 {
		t.Error("over-limit ad was accepted")
	}
	if !strings.Contains(m.message, "headline 1 has 31 characters") {
		t.Errorf("message = %q", m.message)
	}
}

func TestComposeModel_ExportEmpty(t *testing.T) {
	m, _, out := newTestComposer(t)

	m = press(t, m, runes("w"))
	if len(out.Payloads) != 0 {
		t.Error("empty batch should not be delivered")
	}
	if !strings.Contains(m.message, "Nothing to export") {
		t.Errorf("message = %q", m.message)
	}
}

func TestComposeModel_DeviceAndShuffle(t *testing.T) {
	m, _, _ := newTestComposer(t)

	m = press(t, m, runes("d"))
	if m.device != domain.DeviceMobile {
		t.Errorf("device = %v after toggle", m.device)
	}
	m = press(t, m, runes("r"))
	if !m.randomize {
		t.Error("r should switch to shuffled previews")
	}
	m = press(t, m, runes("o"))
	if m.randomize {
		t.Error("o should switch back to ordered previews")
	}
}

func TestComposeModel_View(t *testing.T) {
	m, _, _ := newTestComposer(t)
	m = press(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})

	view := m.View()
	for _, want := range []string{"New ad", "Headlines 3/15", "Descriptions 2/4", "example.com", "batch: 0"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = press(t, m, runes("?"))
	if !strings.Contains(m.View(), "Composer help") {
		t.Error("help view not shown")
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != composeBrowse {
		t.Error("esc should leave help")
	}
}

func TestComposeModel_Quit(t *testing.T) {
	m, _, _ := newTestComposer(t)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestPreviewLines(t *testing.T) {
	p := domain.PreviewResult{
		DisplayDomain:       "example.com",
		DisplayPath:         " › shoes",
		SelectedHeadlines:   []string{"Summer Sale", "Shop Now", "Free Shipping"},
		SelectedDescription: "Best deals online for every season",
	}

	lines := previewLines(p, domain.DeviceMobile.Width())
	width := len([]rune(lines[0].text))
	for _, l := range lines {
		if n := len([]rune(l.text)); n != width {
			t.Errorf("line %q has width %d, want %d", l.text, n, width)
		}
	}
	if lines[0].role != lineBorder || lines[len(lines)-1].role != lineBorder {
		t.Error("card should be boxed")
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  []string
	}{
		{"one two three", 7, []string{"one two", "three"}},
		{"abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"", 10, nil},
	}
	for _, tt := range tests {
		got := wrapText(tt.text, tt.width)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("wrapText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
