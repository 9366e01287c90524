package cmd

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/rsa-cli/internal/core/domain"
	"github.com/kamal-hamza/rsa-cli/pkg/ui"
)

var (
	watchShuffle bool
	watchDevice  string
	watchFile    string
)

var watchCmd = &cobra.Command{
	Use:   "watch [draft]",
	Short: "Re-render the preview whenever a draft file changes",
	Long: `Watch a draft file and re-render its preview card every time it is saved.

Keep an editor open on the draft in another pane and the preview follows
your edits, including character counters and over-limit warnings.

Examples:
  rsa watch summer-sale
  rsa watch --file ./boots.yaml --device mobile
  rsa watch summer-sale --shuffle`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVarP(&watchShuffle, "shuffle", "s", false, "Shuffle the preview on every change")
	watchCmd.Flags().StringVarP(&watchDevice, "device", "d", "", "Card width: desktop or mobile")
	watchCmd.Flags().StringVarP(&watchFile, "file", "f", "", "Watch a draft file outside the workspace")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	path := watchFile
	if path == "" {
		draft, err := resolveDraft(args)
		if err != nil {
			return err
		}
		path = appWorkspace.DraftPath(draft.Filename)
	}
	path, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file on save, so watch the directory
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	device := previewDeviceFor(watchDevice)
	composer := newComposer(0)

	render := func() {
		draft, err := draftRepo.Load(path)
		if err != nil {
			fmt.Println(ui.FormatError(err.Error()))
			return
		}
		c := draft.Collection()

		fmt.Print("\033[H\033[2J")
		fmt.Println(ui.FormatTitle(draft.Name) + "  " + ui.FormatMuted(time.Now().Format("15:04:05")))
		fmt.Println()
		fmt.Println(ui.RenderPreviewCard(composer.Compose(c, draft.Destination, watchShuffle), device))
		fmt.Println()
		fmt.Print(ui.RenderAssetList(c, domain.Headline))
		fmt.Print(ui.RenderAssetList(c, domain.Description))
		if violations := domain.CheckLengths(c); len(violations) > 0 {
			fmt.Println()
			for _, v := range violations {
				fmt.Println(ui.FormatWarning(v.String()))
			}
		}
		if strings.TrimSpace(draft.Destination.FinalURL) == "" {
			fmt.Println(ui.FormatWarning("No final URL set"))
		}
		fmt.Println()
		fmt.Println(ui.FormatMuted("Watching " + path + " (Ctrl+C to stop)"))
	}

	render()

	debounce := newDebouncer(time.Duration(appConfig.WatchDebounceMS) * time.Millisecond)
	defer debounce.Stop()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != path {
				continue
			}

			if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) || event.Has(fsnotify.Rename) {
				debounce.Trigger()
			}
			if event.Has(fsnotify.Remove) {
				fmt.Println(ui.FormatWarning("Draft file removed, waiting for it to come back..."))
			}

		case <-debounce.C:
			render()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)

		case <-ctx.Done():
			fmt.Println()
			fmt.Println(ui.FormatMuted("Watch stopped"))
			return nil
		}
	}
}

// debouncer coalesces bursts of Trigger calls into a single value on C,
// sent once the delay has passed without another Trigger
type debouncer struct {
	C     chan struct{}
	delay time.Duration
	timer *time.Timer
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{C: make(chan struct{}, 1), delay: delay}
}

// Trigger restarts the delay. It must be called from a single goroutine.
func (d *debouncer) Trigger() {
	d.Stop()
	d.timer = time.AfterFunc(d.delay, func() {
		select {
		case d.C <- struct{}{}:
		default:
		}
	})
}

// Stop cancels a pending fire
func (d *debouncer) Stop() {
	if d.timer != nil {
		d.timer.Stop()
	}
}
