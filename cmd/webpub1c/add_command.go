package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"webpub1c/internal/logging"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var url string
	var infobaseFile string
	var force bool

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Publish an infobase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			logger, err := ctx.operationLogger("add")
			if err != nil {
				return err
			}
			store, err := ctx.newStore(logger)
			if err != nil {
				return err
			}
			rec, _, err := store.CreatePublication(name, url, infobaseFile, force)
			if err != nil {
				return err
			}
			if err := store.AddPublication(rec, force); err != nil {
				return err
			}
			logger.Info("publication added", logging.String("name", name))
			fmt.Fprintln(cmd.OutOrStdout(), rec.URLPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "URL path override, relative to the base URL")
	cmd.Flags().StringVar(&infobaseFile, "file", "", "File infobase directory path")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing artifacts")
	return cmd
}
