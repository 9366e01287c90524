package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/rsa-cli/internal/adapters/sink"
	"github.com/kamal-hamza/rsa-cli/internal/core/domain"
	"github.com/kamal-hamza/rsa-cli/internal/core/ports"
	"github.com/kamal-hamza/rsa-cli/internal/core/services"
	"github.com/kamal-hamza/rsa-cli/pkg/ui"
)

var composeSeed uint64

// composeCmd represents the compose command
var composeCmd = &cobra.Command{
	Use:   "compose [draft]",
	Short: "Compose ads in a full-screen editor with a live preview",
	Long: `Open a full-screen editor for headlines, descriptions and the
destination URL, with a live preview card that updates as you type.

Without a draft argument a blank ad is composed; with one, edits can be
saved back to the draft with 's'.

Keyboard Shortcuts:
  ↑/k ↓/j     Move between slots
  tab         Switch between headlines and descriptions
  enter/e     Edit the selected slot
  n           Add a slot
  x           Remove the selected slot
  u           Edit final URL and display path
  r           Shuffle the preview
  o           Ordered preview
  d           Toggle desktop/mobile width
  a           Add the ad to the export batch
  w           Export the batch as CSV
  s           Save the draft
  ?           Help
  q           Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompose,
}

func init() {
	composeCmd.Flags().Uint64Var(&composeSeed, "seed", 0, "Seed for shuffled previews")
}

func runCompose(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	var draft *domain.Draft
	assets := domain.NewAssetCollection()
	var dest domain.DestinationSpec
	if len(args) > 0 {
		d, err := resolveDraft(args)
		if err != nil {
			return err
		}
		draft = d
		assets = d.Collection()
		dest = d.Destination
	}

	batch, err := batchService.Load(ctx)
	if err != nil {
		return err
	}

	session := services.NewSession(assets, dest, batch, newComposer(composeSeed))

	sinks := []ports.Sink{sink.NewFileSink(exportDir())}
	if appConfig.CopyToClipboard {
		if cb := sink.NewClipboardSink(); cb.Available() {
			sinks = append(sinks, cb)
		}
	}

	m := newComposeModel(ctx, session, composeOptions{
		draft:    draft,
		drafts:   draftRepo,
		batch:    batchRepo,
		download: services.NewDownloadService(appConfig.ExportFilename, sinks...),
		device:   previewDeviceFor(""),
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running composer: %w", err)
	}
	return nil
}

type composeMode int

const (
	composeBrowse composeMode = iota
	composeEditAsset
	composeEditURL
	composeHelp
)

// Key bindings
type composeKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Switch  key.Binding
	Edit    key.Binding
	New     key.Binding
	Remove  key.Binding
	URL     key.Binding
	Shuffle key.Binding
	Ordered key.Binding
	Device  key.Binding
	Add     key.Binding
	Export  key.Binding
	Save    key.Binding
	Help    key.Binding
	Quit    key.Binding
	Escape  key.Binding
	Confirm key.Binding
}

func (k composeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.New, k.Shuffle, k.Device, k.Add, k.Export, k.Help, k.Quit}
}

func (k composeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch},
		{k.Edit, k.New, k.Remove, k.URL},
		{k.Shuffle, k.Ordered, k.Device},
		{k.Add, k.Export, k.Save, k.Help, k.Quit},
	}
}

var composeKeys = composeKeyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Switch:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "headlines/descriptions")),
	Edit:    key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "edit")),
	New:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "add slot")),
	Remove:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove slot")),
	URL:     key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "edit URL")),
	Shuffle: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "shuffle")),
	Ordered: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "ordered")),
	Device:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "device")),
	Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add to batch")),
	Export:  key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "export CSV")),
	Save:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save draft")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Escape:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
}

// composeOptions wires the composer to storage; every field is optional
type composeOptions struct {
	draft    *domain.Draft
	drafts   ports.DraftRepository
	batch    ports.BatchRepository
	download *services.DownloadService
	device   domain.Device
}

type composeModel struct {
	ctx       context.Context
	session   *services.Session
	opts      composeOptions
	mode      composeMode
	kind      domain.AssetKind
	cursor    int
	urlField  int // 0 final URL, 1 path1, 2 path2
	input     textinput.Model
	help      help.Model
	keys      composeKeyMap
	device    domain.Device
	randomize bool
	preview   domain.PreviewResult
	width     int
	height    int
	message   string
	msgStyle  lipgloss.Style
}

// urlCharLimit bounds the final URL and path fields
const urlCharLimit = 2048

func newComposeModel(ctx context.Context, session *services.Session, opts composeOptions) composeModel {
	ti := textinput.New()
	ti.CharLimit = urlCharLimit
	ti.Width = 60

	device := opts.device
	if device == "" {
		device = domain.DeviceDesktop
	}

	return composeModel{
		ctx:     ctx,
		session: session,
		opts:    opts,
		mode:    composeBrowse,
		kind:    domain.Headline,
		input:   ti,
		help:    help.New(),
		keys:    composeKeys,
		device:  device,
		preview: session.Preview(false),
	}
}

func (m composeModel) Init() tea.Cmd {
	return nil
}

func (m composeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case composeEditAsset:
			return m.updateEditAsset(msg)
		case composeEditURL:
			return m.updateEditURL(msg)
		case composeHelp:
			if key.Matches(msg, m.keys.Escape, m.keys.Help, m.keys.Quit) {
				m.mode = composeBrowse
			}
			return m, nil
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m composeModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	assets := m.session.Assets

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < assets.Len(m.kind)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Switch):
		if m.kind == domain.Headline {
			m.kind = domain.Description
		} else {
			m.kind = domain.Headline
		}
		m.cursor = 0

	case key.Matches(msg, m.keys.Edit):
		m.mode = composeEditAsset
		m.input.CharLimit = m.kind.CharLimit()
		m.input.Placeholder = fmt.Sprintf("%s %d", m.kind, m.cursor+1)
		m.input.SetValue(assets.Get(m.kind, m.cursor))
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.New):
		if assets.Add(m.kind) {
			m.cursor = assets.Len(m.kind) - 1
			m.refresh()
		} else {
			m.setMessage(fmt.Sprintf("%s limit reached (%s)", m.kind, assets.Counter(m.kind)), ui.StyleWarning)
		}

	case key.Matches(msg, m.keys.Remove):
		if assets.Remove(m.kind, m.cursor) {
			if m.cursor >= assets.Len(m.kind) {
				m.cursor = assets.Len(m.kind) - 1
			}
			m.refresh()
		} else {
			m.setMessage(fmt.Sprintf("At least one %s is required", m.kind), ui.StyleWarning)
		}

	case key.Matches(msg, m.keys.URL):
		m.mode = composeEditURL
		m.urlField = 0
		m.loadURLField()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Shuffle):
		m.randomize = true
		m.refresh()

	case key.Matches(msg, m.keys.Ordered):
		m.randomize = false
		m.refresh()

	case key.Matches(msg, m.keys.Device):
		m.device = m.device.Toggle()

	case key.Matches(msg, m.keys.Add):
		m.addToBatch()

	case key.Matches(msg, m.keys.Export):
		m.export()

	case key.Matches(msg, m.keys.Save):
		m.saveDraft()

	case key.Matches(msg, m.keys.Help):
		m.mode = composeHelp
	}

	return m, nil
}

func (m composeModel) updateEditAsset(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = composeBrowse
		m.input.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		m.session.Assets.Edit(m.kind, m.cursor, m.input.Value())
		m.mode = composeBrowse
		m.input.Blur()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m composeModel) updateEditURL(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = composeBrowse
		m.input.Blur()
		m.refresh()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		m.storeURLField()
		m.urlField++
		if m.urlField > 2 {
			m.mode = composeBrowse
			m.input.Blur()
			m.refresh()
			return m, nil
		}
		m.loadURLField()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *composeModel) loadURLField() {
	d := m.session.Destination
	values := []string{d.FinalURL, d.Path1, d.Path2}
	placeholders := []string{"Final URL (https://example.com/page)", "Path 1", "Path 2"}
	m.input.CharLimit = urlCharLimit
	m.input.Placeholder = placeholders[m.urlField]
	m.input.SetValue(values[m.urlField])
	m.input.CursorEnd()
}

func (m *composeModel) storeURLField() {
	value := strings.TrimSpace(m.input.Value())
	switch m.urlField {
	case 0:
		m.session.Destination.FinalURL = value
	case 1:
		m.session.Destination.Path1 = value
	case 2:
		m.session.Destination.Path2 = value
	}
}

func (m *composeModel) refresh() {
	m.preview = m.session.Preview(m.randomize)
}

func (m *composeModel) setMessage(text string, style lipgloss.Style) {
	m.message = text
	m.msgStyle = style
}

func (m *composeModel) addToBatch() {
	record, err := m.session.AddToBatch()
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr) && errors.Is(err, domain.ErrLengthExceeded):
			parts := make([]string, len(verr.Violations))
			for i, v := range verr.Violations {
				parts[i] = v.String()
			}
			m.setMessage(ui.IconError+" "+strings.Join(parts, "; "), ui.StyleError)
		case errors.Is(err, domain.ErrMissingFinalURL):
			m.setMessage(ui.IconError+" Final URL is required (press u)", ui.StyleError)
		default:
			m.setMessage(ui.IconError+" "+err.Error(), ui.StyleError)
		}
		return
	}

	if m.opts.batch != nil {
		if err := m.opts.batch.Append(m.ctx, record); err != nil {
			m.setMessage(ui.IconWarning+" Added for this session only: "+err.Error(), ui.StyleWarning)
			return
		}
	}
	m.setMessage(fmt.Sprintf("%s Added to batch (ads in batch: %d)", ui.IconBatch, m.session.Batch.Len()), ui.StyleSuccess)
}

func (m *composeModel) export() {
	if m.opts.download == nil {
		return
	}
	resp, err := m.opts.download.Deliver(m.ctx, m.session.Batch)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyBatch) {
			m.setMessage(ui.IconWarning+" Nothing to export: add an ad first (press a)", ui.StyleWarning)
			return
		}
		m.setMessage(ui.IconError+" Export failed: "+err.Error(), ui.StyleError)
		return
	}
	m.setMessage(fmt.Sprintf("%s Exported %d ads to %s", ui.IconExport, resp.Records, resp.Payload.Filename), ui.StyleSuccess)
}

func (m *composeModel) saveDraft() {
	if m.opts.draft == nil || m.opts.drafts == nil {
		m.setMessage(ui.IconInfo+" No draft open, create one with: rsa new", ui.StyleInfo)
		return
	}
	m.opts.draft.Update(m.session.Assets)
	m.opts.draft.Destination = m.session.Destination
	if err := m.opts.drafts.Save(m.ctx, m.opts.draft); err != nil {
		m.setMessage(ui.IconError+" Save failed: "+err.Error(), ui.StyleError)
		return
	}
	m.setMessage(ui.IconSuccess+" Saved "+m.opts.draft.Slug, ui.StyleSuccess)
}

func (m composeModel) View() string {
	if m.mode == composeHelp {
		return ui.FormatTitle("Composer help") + "\n\n" + m.help.FullHelpView(m.keys.FullHelp()) + "\n\n" +
			ui.FormatMuted("esc to go back")
	}

	var b strings.Builder

	title := "New ad"
	if m.opts.draft != nil {
		title = m.opts.draft.Name
	}
	b.WriteString(ui.StyleTitle.Render(title))
	b.WriteString("  ")
	b.WriteString(ui.FormatMuted(fmt.Sprintf("batch: %d", m.session.Batch.Len())))
	b.WriteString("\n\n")

	editor := m.renderSlots(domain.Headline) + "\n" + m.renderSlots(domain.Description) + "\n" + m.renderDestination()
	card := ui.RenderPreviewCard(m.preview, m.device)
	if m.width >= 120 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(m.width-m.device.Width()-2).Render(editor), card))
	} else {
		b.WriteString(card)
		b.WriteString("\n\n")
		b.WriteString(editor)
	}
	b.WriteString("\n")

	switch m.mode {
	case composeEditAsset:
		b.WriteString(fmt.Sprintf("\n%s %s\n", m.input.View(),
			ui.RenderCounter(domain.CharCount(m.input.Value()), m.kind.CharLimit())))
	case composeEditURL:
		b.WriteString("\n" + m.input.View() + "\n")
	}

	if m.message != "" {
		b.WriteString("\n" + m.msgStyle.Render(m.message) + "\n")
	}
	b.WriteString("\n" + m.help.ShortHelpView(m.keys.ShortHelp()))
	return b.String()
}

func (m composeModel) renderSlots(kind domain.AssetKind) string {
	assets := m.session.Assets
	var b strings.Builder

	header := fmt.Sprintf("%ss %s", strings.ToUpper(kind.String()[:1])+kind.String()[1:], assets.Counter(kind))
	if kind == m.kind {
		b.WriteString(ui.StyleHeader.Render("▸ " + header))
	} else {
		b.WriteString(ui.StyleMuted.Render("  " + header))
	}
	b.WriteString("\n")

	for i := 0; i < assets.Len(kind); i++ {
		text := assets.Get(kind, i)
		shown := text
		if strings.TrimSpace(text) == "" {
			shown = ui.StyleSubtle.Render("(empty)")
		}
		prefix := "   "
		if kind == m.kind && i == m.cursor {
			prefix = ui.StylePrimary.Render(" ▶ ")
		}
		b.WriteString(fmt.Sprintf("%s%2d. %s %s\n", prefix, i+1, shown,
			ui.RenderCounter(domain.CharCount(text), kind.CharLimit())))
	}
	return b.String()
}

func (m composeModel) renderDestination() string {
	d := m.session.Destination
	finalURL := d.FinalURL
	if finalURL == "" {
		finalURL = ui.StyleSubtle.Render("(not set)")
	}
	return ui.RenderKeyValue("Final URL", finalURL) + "\n" +
		ui.RenderKeyValue("Display", d.Domain()+d.DisplayPath()) + "\n"
}
