package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"

	"github.com/kamal-hamza/rsa-cli/internal/core/domain"
	"github.com/kamal-hamza/rsa-cli/internal/core/services"
	"github.com/kamal-hamza/rsa-cli/pkg/ui"
)

// GetPreferredEditor returns the editor command from config, env, or default
func GetPreferredEditor() string {
	// 1. Check Config
	if appConfig != nil && appConfig.Editor != "" {
		return appConfig.Editor
	}
	// 2. Check Environment
	if env := os.Getenv("EDITOR"); env != "" {
		return env
	}
	// 3. Fallback
	return "vi"
}

// openInEditor opens path in the preferred editor and waits for it to exit
func openInEditor(path string) error {
	editor := GetPreferredEditor()
	c := exec.Command(editor, path)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}

// OpenFile opens a file with the OS default application
func OpenFile(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	// Start detaches so rsa can exit while the viewer stays open
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open '%s': %w", path, err)
	}
	return nil
}

// resolveDraft finds the draft named by args[0], or opens a fuzzy finder when no argument is given
func resolveDraft(args []string) (*domain.Draft, error) {
	ctx := getContext()

	if len(args) > 0 {
		query := args[0]
		if draftRepo.Exists(ctx, query) {
			return draftRepo.Get(ctx, query)
		}
		resp, err := draftService.Search(ctx, services.SearchRequest{Query: query})
		if err != nil {
			return nil, err
		}
		if resp.Total == 0 {
			return nil, fmt.Errorf("no draft matches %q", query)
		}
		if resp.Total > 1 {
			fmt.Println(ui.FormatMuted(fmt.Sprintf("%d drafts match %q, using %s", resp.Total, query, resp.Drafts[0].Slug)))
		}
		return &resp.Drafts[0], nil
	}

	resp, err := draftService.List(ctx, services.ListRequest{})
	if err != nil {
		return nil, err
	}
	if resp.Total == 0 {
		return nil, fmt.Errorf("no drafts found, create one with: rsa new \"My Ad\"")
	}

	idx, err := fuzzyfinder.Find(
		resp.Drafts,
		func(i int) string { return resp.Drafts[i].Name },
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			d := resp.Drafts[i]
			c := d.Collection()
			return fmt.Sprintf("%s\n\nSlug: %s\nDomain: %s\nHeadlines: %s\nDescriptions: %s",
				d.Name, d.Slug, d.Destination.Domain(),
				c.Counter(domain.Headline), c.Counter(domain.Description))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("no draft selected")
	}
	return &resp.Drafts[idx], nil
}

// printAddError explains why an ad was refused by the batch
func printAddError(err error) {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		fmt.Println(ui.FormatError("Failed to add to batch: " + err.Error()))
		return
	}

	switch {
	case errors.Is(err, domain.ErrLengthExceeded):
		fmt.Println(ui.FormatError("Some assets are over their character limit"))
		for _, v := range verr.Violations {
			fmt.Println(ui.FormatMuted("  • " + v.String()))
		}
	case errors.Is(err, domain.ErrMissingFinalURL):
		fmt.Println(ui.FormatError("A final URL is required before adding to the batch"))
	}
}

// exportDir returns the directory exports are written to
func exportDir() string {
	if appConfig != nil && appConfig.ExportDir != "" {
		return appConfig.ExportDir
	}
	return appWorkspace.ExportsPath
}

// newComposer creates a preview composer seeded from the flag or the config
func newComposer(seed uint64) *services.PreviewComposer {
	if seed == 0 && appConfig != nil {
		seed = appConfig.RandomSeed
	}
	return services.NewPreviewComposer(services.NewRand(seed))
}

// truncate shortens a string to max runes
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// parseSlot turns a 1-based slot number argument into a zero based index
func parseSlot(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(s, "#"))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid slot number %q (slots start at 1)", s)
	}
	return n - 1, nil
}
