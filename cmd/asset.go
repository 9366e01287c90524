package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/rsa-cli/internal/core/domain"
	"github.com/kamal-hamza/rsa-cli/internal/core/services"
	"github.com/kamal-hamza/rsa-cli/pkg/ui"
)

var assetCmd = &cobra.Command{
	Use:   "asset",
	Short: "Add, edit or remove headlines and descriptions",
	Long: `Manage the headline and description slots of a draft.

A draft holds up to 15 headlines and 4 descriptions, and always keeps at
least one slot of each. Slots are numbered from 1.

Examples:
  rsa asset add summer-sale headline "Free Shipping"
  rsa asset edit summer-sale headline 2 "Shop Now"
  rsa asset remove summer-sale description 2`,
}

var assetAddCmd = &cobra.Command{
	Use:   "add <draft> <headline|description> [text]",
	Short: "Append a slot, optionally filled with text",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		value := ""
		if len(args) == 3 {
			value = args[2]
		}
		return mutateAsset(args[0], services.OpAdd, args[1], 0, value)
	},
}

var assetEditCmd = &cobra.Command{
	Use:   "edit <draft> <headline|description> <slot> <text>",
	Short: "Replace the text of a slot",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseSlot(args[2])
		if err != nil {
			return err
		}
		return mutateAsset(args[0], services.OpEdit, args[1], index, args[3])
	},
}

var assetRemoveCmd = &cobra.Command{
	Use:     "remove <draft> <headline|description> <slot>",
	Short:   "Remove a slot",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseSlot(args[2])
		if err != nil {
			return err
		}
		return mutateAsset(args[0], services.OpRemove, args[1], index, "")
	},
}

func init() {
	assetCmd.AddCommand(assetAddCmd)
	assetCmd.AddCommand(assetEditCmd)
	assetCmd.AddCommand(assetRemoveCmd)
}

func mutateAsset(slug string, op services.AssetOp, kindArg string, index int, value string) error {
	kind, err := domain.ParseAssetKind(kindArg)
	if err != nil {
		return err
	}

	resp, err := draftService.Mutate(getContext(), services.MutateRequest{
		Slug:  slug,
		Op:    op,
		Kind:  kind,
		Index: index,
		Value: value,
	})
	if err != nil {
		fmt.Println(ui.FormatError("Failed to update draft"))
		return err
	}

	c := resp.Draft.Collection()
	if !resp.Changed {
		switch op {
		case services.OpAdd:
			fmt.Println(ui.FormatWarning(fmt.Sprintf("%s limit reached (%s)", kind, c.Counter(kind))))
		case services.OpRemove:
			if !c.CanRemove(kind) {
				fmt.Println(ui.FormatWarning(fmt.Sprintf("A draft keeps at least one %s", kind)))
			} else {
				fmt.Println(ui.FormatWarning(fmt.Sprintf("No %s in slot %d", kind, index+1)))
			}
		default:
			fmt.Println(ui.FormatWarning(fmt.Sprintf("No %s in slot %d", kind, index+1)))
		}
		return nil
	}

	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Updated %s", resp.Draft.Name)))
	fmt.Println()
	fmt.Print(ui.RenderAssetList(c, kind))
	return nil
}
