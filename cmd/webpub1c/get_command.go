package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"webpub1c/internal/publication"
)

func newGetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Show publication info",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			store, err := ctx.newStore(logger)
			if err != nil {
				return err
			}
			rec, err := store.GetPublication(args[0])
			if err != nil {
				return err
			}
			if rec == nil {
				return fmt.Errorf("%w: infobase %q", publication.ErrNotFound, args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), rec.Describe())
			return nil
		},
	}
}
