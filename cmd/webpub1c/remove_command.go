package main

import (
	"github.com/spf13/cobra"

	"webpub1c/internal/logging"
)

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a publication and its artifacts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			logger, err := ctx.operationLogger("remove")
			if err != nil {
				return err
			}
			store, err := ctx.newStore(logger)
			if err != nil {
				return err
			}
			if _, err := store.RemovePublication(name, true, force); err != nil {
				return err
			}
			logger.Info("publication removed", logging.String("name", name))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Ignore artifact removal failures")
	return cmd
}
