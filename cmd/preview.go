package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/rsa-cli/internal/core/domain"
	"github.com/kamal-hamza/rsa-cli/pkg/ui"
)

var (
	previewShuffle     bool
	previewSeed        uint64
	previewDevice      string
	previewCount       int
	previewInteractive bool
	previewFile        string
)

var previewCmd = &cobra.Command{
	Use:     "preview [draft]",
	Short:   "Preview how a draft renders as a search ad",
	Aliases: []string{"p"},
	Long: `Render a draft as a search result card.

By default the first three filled headlines and the first filled
description are shown. With --shuffle, two or three headlines and one
description are picked at random, the way the ad network rotates them.

Examples:
  rsa preview summer-sale
  rsa preview summer-sale --shuffle -n 3
  rsa preview summer-sale --shuffle --seed 42 --device mobile
  rsa preview --file ./drafts/boots.yaml
  rsa preview -i summer-sale   # r: shuffle, d: device, q: quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().BoolVarP(&previewShuffle, "shuffle", "s", false, "Pick headlines and description at random")
	previewCmd.Flags().Uint64Var(&previewSeed, "seed", 0, "Seed for --shuffle (0 uses the config seed or a random one)")
	previewCmd.Flags().StringVarP(&previewDevice, "device", "d", "", "Card width: desktop or mobile")
	previewCmd.Flags().IntVarP(&previewCount, "count", "n", 1, "Number of shuffled variations to print")
	previewCmd.Flags().BoolVarP(&previewInteractive, "interactive", "i", false, "Open the interactive previewer")
	previewCmd.Flags().StringVarP(&previewFile, "file", "f", "", "Preview a draft file outside the workspace")
}

func runPreview(cmd *cobra.Command, args []string) error {
	var (
		draft *domain.Draft
		err   error
	)
	if previewFile != "" {
		draft, err = draftRepo.Load(previewFile)
	} else {
		draft, err = resolveDraft(args)
	}
	if err != nil {
		return err
	}

	device := previewDeviceFor(previewDevice)
	composer := newComposer(previewSeed)
	c := draft.Collection()

	if previewInteractive {
		view, err := NewInteractivePreview(draft, composer, device)
		if err != nil {
			return fmt.Errorf("failed to start interactive preview: %w", err)
		}
		return view.Run()
	}

	fmt.Println(ui.FormatTitle(draft.Name))
	fmt.Println()

	count := 1
	if previewShuffle && previewCount > 1 {
		count = previewCount
	}
	for i := 0; i < count; i++ {
		if count > 1 {
			fmt.Println(ui.FormatMuted(fmt.Sprintf("%s Variation %d/%d", ui.IconShuffle, i+1, count)))
		}
		p := composer.Compose(c, draft.Destination, previewShuffle)
		fmt.Println(ui.RenderPreviewCard(p, device))
		fmt.Println()
	}

	fmt.Println(ui.RenderKeyValue("Headlines", c.Counter(domain.Headline)))
	fmt.Println(ui.RenderKeyValue("Descriptions", c.Counter(domain.Description)))
	if violations := domain.CheckLengths(c); len(violations) > 0 {
		fmt.Println(ui.FormatWarning(fmt.Sprintf("%d assets over their character limit (rsa show %s)", len(violations), draft.Slug)))
	}
	return nil
}

// previewDeviceFor resolves the device flag, falling back to the config default
func previewDeviceFor(flag string) domain.Device {
	if flag != "" {
		return domain.ParseDevice(flag)
	}
	if appConfig != nil {
		return domain.ParseDevice(appConfig.DefaultDevice)
	}
	return domain.DeviceDesktop
}
