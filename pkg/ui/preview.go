package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kamal-hamza/rsa-cli/internal/core/domain"
)

// RenderPreviewCard draws a search-result style card for a preview at the device's width
func RenderPreviewCard(p domain.PreviewResult, device domain.Device) string {
	inner := device.Width() - 4

	var b strings.Builder
	b.WriteString(StyleSponsored.Render("Sponsored"))
	b.WriteString("\n")
	b.WriteString(StyleCardDomain.Render(IconDomain + " " + p.DisplayDomain))
	b.WriteString("\n")
	b.WriteString(StyleMuted.Render(truncate(p.DisplayURL(), inner)))
	b.WriteString("\n")
	b.WriteString(StyleCardHeadline.Width(inner).Render(p.HeadlineText()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(inner).Render(p.SelectedDescription))

	title := StyleMuted.Render(fmt.Sprintf("%s preview", device))
	return title + "\n" + StyleCardFrame.Width(device.Width()-2).Render(b.String())
}

// RenderCounter renders "count/limit", highlighting counts at or over the limit
func RenderCounter(count, limit int) string {
	return LimitStyle(count, limit).Render(fmt.Sprintf("%d/%d", count, limit))
}

// RenderAssetList renders the numbered assets of one kind with per-entry character counters
func RenderAssetList(c *domain.AssetCollection, kind domain.AssetKind) string {
	var b strings.Builder
	header := fmt.Sprintf("%ss (%s)", strings.ToUpper(kind.String()[:1])+kind.String()[1:], c.Counter(kind))
	b.WriteString(StyleHeader.Render(header))
	b.WriteString("\n")
	for i := 0; i < c.Len(kind); i++ {
		text := c.Get(kind, i)
		shown := text
		if strings.TrimSpace(text) == "" {
			shown = StyleSubtle.Render("(empty)")
		}
		b.WriteString(fmt.Sprintf("  %2d. %s %s\n", i+1, shown,
			RenderCounter(domain.CharCount(text), kind.CharLimit())))
	}
	return b.String()
}

// truncate shortens s to at most width runes, marking the cut with an ellipsis
func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 1 || len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
