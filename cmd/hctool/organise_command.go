package main

import (
	"github.com/spf13/cobra"

	"hctool/internal/organiser"
)

func newOrganiseCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "organise <slot>",
		Short: "Sort the inventory lists of a save and drop duplicate emails",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			slot, err := parseSlot(args[0])
			if err != nil {
				return err
			}
			groups, err := ctx.groups()
			if err != nil {
				return err
			}

			save, path, err := ctx.loadSlot(slot)
			if err != nil {
				return err
			}
			log.Info("organising save", "path", path)
			if err := organiser.New(groups, log).Normalise(save); err != nil {
				return err
			}
			return writeSlot(path, save)
		},
	}
}
