package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hctool/internal/outfits"
	"hctool/internal/savefile"
)

func newOutfitsCommand(ctx *commandContext) *cobra.Command {
	var outfitsPathFlag string

	cmd := &cobra.Command{
		Use:   "outfits",
		Short: "Manage a library of named outfits",
	}
	cmd.PersistentFlags().StringVar(&outfitsPathFlag, "outfits-path", "", "Outfit library path (defaults to outfits.json next to the saves)")

	cmd.AddCommand(newOutfitsListCommand(ctx, &outfitsPathFlag))
	cmd.AddCommand(newOutfitsSaveCommand(ctx, &outfitsPathFlag))
	cmd.AddCommand(newOutfitsLoadCommand(ctx, &outfitsPathFlag))
	return cmd
}

func (c *commandContext) outfitsPath(override string) (string, error) {
	resolver, err := c.resolver()
	if err != nil {
		return "", err
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(override) == "" {
		override = cfg.Paths.OutfitsPath
	}
	return resolver.OutfitsPath(override, outfits.FileName)
}

func newOutfitsListCommand(ctx *commandContext, pathFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored outfits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := ctx.outfitsPath(*pathFlag)
			if err != nil {
				return err
			}
			store, err := outfits.LoadStore(path)
			if err != nil {
				return err
			}

			headers := []string{"Name"}
			for _, slot := range savefile.Slots() {
				headers = append(headers, slot.String())
			}
			rows := make([][]string, 0, len(store.Outfits)+1)
			for _, name := range store.Names() {
				outfit, err := store.Get(name)
				if err != nil {
					return err
				}
				row := []string{name}
				for _, slot := range savefile.Slots() {
					row = append(row, describeSlot(outfit, slot))
				}
				rows = append(rows, row)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows))
			return nil
		},
	}
}

func describeSlot(outfit outfits.Outfit, slot savefile.Slot) string {
	code, present := outfit.Slot(slot)
	switch {
	case !present:
		return "-"
	case code == "":
		return "(nothing)"
	default:
		return code
	}
}

func newOutfitsSaveCommand(ctx *commandContext, pathFlag *string) *cobra.Command {
	var partial bool

	cmd := &cobra.Command{
		Use:   "save <slot> <name>",
		Short: "Store the outfit currently worn in a save",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			slot, err := parseSlot(args[0])
			if err != nil {
				return err
			}
			name := args[1]
			if name == outfits.DefaultName {
				return fmt.Errorf("%w: %q is reserved for the starting outfit", outfits.ErrInvalidName, name)
			}
			if err := outfits.ValidateName(name); err != nil {
				return err
			}

			save, _, err := ctx.loadSlot(slot)
			if err != nil {
				return err
			}
			fresh, err := outfits.Extract(save)
			if err != nil {
				return err
			}

			path, err := ctx.outfitsPath(*pathFlag)
			if err != nil {
				return err
			}
			store, err := outfits.LoadStore(path)
			if err != nil {
				return err
			}

			stored := fresh
			if existing, err := store.Get(name); err == nil {
				stored = outfits.Merge(existing, fresh, partial)
			} else if !errors.Is(err, outfits.ErrNotFound) {
				return err
			}
			store.Set(name, stored)
			if err := store.Save(path); err != nil {
				return err
			}
			log.Info("stored outfit", "name", name, "outfit", stored.String())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&partial, "partial", "p", false, "Only update the parts the outfit already tracks")
	return cmd
}

func newOutfitsLoadCommand(ctx *commandContext, pathFlag *string) *cobra.Command {
	var partial bool

	cmd := &cobra.Command{
		Use:   "load <slot> [name]",
		Short: "Dress a save in a stored outfit",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			slot, err := parseSlot(args[0])
			if err != nil {
				return err
			}
			name := outfits.DefaultName
			if len(args) == 2 {
				name = args[1]
			}

			path, err := ctx.outfitsPath(*pathFlag)
			if err != nil {
				return err
			}
			store, err := outfits.LoadStore(path)
			if err != nil {
				return err
			}
			outfit, err := store.Get(name)
			if err != nil {
				return err
			}

			save, savePath, err := ctx.loadSlot(slot)
			if err != nil {
				return err
			}
			if err := outfits.Apply(save, outfit, partial, log); err != nil {
				return err
			}
			if err := writeSlot(savePath, save); err != nil {
				return err
			}
			log.Info("applied outfit", "name", name, "outfit", outfit.String())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&partial, "partial", "p", false, "Skip outfit parts the save does not own")
	return cmd
}
