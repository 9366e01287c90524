package cmd

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/kamal-hamza/rsa-cli/internal/core/domain"
	"github.com/kamal-hamza/rsa-cli/internal/core/services"
)

// InteractivePreview is a full-screen previewer that reshuffles on demand
type InteractivePreview struct {
	draft     *domain.Draft
	assets    *domain.AssetCollection
	composer  *services.PreviewComposer
	device    domain.Device
	randomize bool
	current   domain.PreviewResult
	shuffles  int
	screen    tcell.Screen
	width     int
	height    int
}

// NewInteractivePreview creates a previewer for a draft
func NewInteractivePreview(draft *domain.Draft, composer *services.PreviewComposer, device domain.Device) (*InteractivePreview, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	if err := screen.Init(); err != nil {
		return nil, err
	}

	width, height := screen.Size()

	v := &InteractivePreview{
		draft:    draft,
		assets:   draft.Collection(),
		composer: composer,
		device:   device,
		screen:   screen,
		width:    width,
		height:   height,
	}
	v.current = composer.Compose(v.assets, draft.Destination, false)
	return v, nil
}

// Run starts the event loop
func (v *InteractivePreview) Run() error {
	defer v.screen.Fini()

	v.screen.Clear()
	v.render()

	for {
		ev := v.screen.PollEvent()

		switch ev := ev.(type) {
		case *tcell.EventResize:
			v.width, v.height = ev.Size()
			v.screen.Sync()
			v.render()

		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}

			v.handleKeyPress(ev)
			v.render()
		}
	}
}

// handleKeyPress processes keyboard input
func (v *InteractivePreview) handleKeyPress(ev *tcell.EventKey) {
	switch ev.Rune() {
	case 'r', ' ':
		v.randomize = true
		v.shuffles++
		v.current = v.composer.Compose(v.assets, v.draft.Destination, true)
	case 'o':
		v.randomize = false
		v.current = v.composer.Compose(v.assets, v.draft.Destination, false)
	case 'd':
		v.device = v.device.Toggle()
	}
}

func (v *InteractivePreview) render() {
	v.screen.Clear()

	y := 0
	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorPurple)
	v.drawText(0, y, v.draft.Name, titleStyle)
	y++
	mode := "ordered"
	if v.randomize {
		mode = fmt.Sprintf("shuffled #%d", v.shuffles)
	}
	v.drawText(0, y, fmt.Sprintf("%s preview │ %s │ H %s │ D %s", v.device, mode,
		v.assets.Counter(domain.Headline), v.assets.Counter(domain.Description)),
		tcell.StyleDefault.Foreground(tcell.ColorGray))
	y += 2

	border := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for _, line := range previewLines(v.current, v.device.Width()) {
		style := tcell.StyleDefault
		switch line.role {
		case lineBorder:
			style = border
		case lineDomain:
			style = style.Foreground(tcell.ColorTeal)
		case lineURL:
			style = style.Foreground(tcell.ColorGray)
		case lineHeadline:
			style = style.Foreground(tcell.ColorBlue).Bold(true)
		case lineSponsored:
			style = style.Bold(true)
		}
		v.drawText(0, y, line.text, style)
		y++
	}

	footerY := v.height - 2
	v.drawText(0, footerY, strings.Repeat("─", v.width), tcell.StyleDefault.Foreground(tcell.ColorGray))
	footerY++
	v.drawText(0, footerY, "r/space: shuffle │ o: ordered │ d: desktop/mobile │ q: quit", tcell.StyleDefault.Foreground(tcell.ColorGray))

	v.screen.Show()
}

// drawText draws text at the specified position
func (v *InteractivePreview) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		if col >= v.width {
			break
		}
		v.screen.SetContent(col, y, r, nil, style)
		col++
	}
}

type lineRole int

const (
	lineBorder lineRole = iota
	lineSponsored
	lineDomain
	lineURL
	lineHeadline
	lineBody
)

type previewLine struct {
	text string
	role lineRole
}

// previewLines lays a preview out as a boxed card of the given outer width
func previewLines(p domain.PreviewResult, width int) []previewLine {
	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	lines := []previewLine{{"┌" + strings.Repeat("─", inner+2) + "┐", lineBorder}}
	add := func(text string, role lineRole) {
		pad := inner - len([]rune(text))
		if pad < 0 {
			pad = 0
		}
		lines = append(lines, previewLine{"│ " + text + strings.Repeat(" ", pad) + " │", role})
	}

	add("Sponsored", lineSponsored)
	add("◉ "+truncate(p.DisplayDomain, inner-2), lineDomain)
	add(truncate(p.DisplayURL(), inner), lineURL)
	for _, l := range wrapText(p.HeadlineText(), inner) {
		add(l, lineHeadline)
	}
	for _, l := range wrapText(p.SelectedDescription, inner) {
		add(l, lineBody)
	}

	lines = append(lines, previewLine{"└" + strings.Repeat("─", inner+2) + "┘", lineBorder})
	return lines
}

// wrapText breaks text into lines of at most width runes, splitting on spaces
// and hard-breaking words longer than a line
func wrapText(text string, width int) []string {
	var lines []string
	var line []rune
	for _, word := range strings.Fields(text) {
		w := []rune(word)
		for len(w) > width {
			if len(line) > 0 {
				lines = append(lines, string(line))
				line = nil
			}
			lines = append(lines, string(w[:width]))
			w = w[width:]
		}
		switch {
		case len(line) == 0:
			line = w
		case len(line)+1+len(w) <= width:
			line = append(append(line, ' '), w...)
		default:
			lines = append(lines, string(line))
			line = w
		}
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return lines
}
