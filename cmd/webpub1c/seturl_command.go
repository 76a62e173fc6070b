package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"webpub1c/internal/logging"
	"webpub1c/internal/publication"
	"webpub1c/internal/urlpath"
)

// set-url rewrites only the URL of an existing publication. The record
// keeps its directory and descriptor; the config block is re-rendered
// with the new path.
func newSetURLCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set-url <name> <url>",
		Short: "Change the URL of a publication",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, url := args[0], args[1]
			logger, err := ctx.operationLogger("set-url")
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := ctx.newStore(logger)
			if err != nil {
				return err
			}
			rec, err := store.GetPublication(name)
			if err != nil {
				return err
			}
			if rec == nil {
				return fmt.Errorf("%w: infobase %q", publication.ErrNotFound, name)
			}
			rec.URLPath = urlpath.Join(cfg.Paths.URLBase, url)
			if _, err := store.RemovePublication(name, false, false); err != nil {
				return err
			}
			if err := store.AddPublication(rec, false); err != nil {
				return err
			}
			logger.Info("publication url changed", logging.String("name", name))
			fmt.Fprintln(cmd.OutOrStdout(), rec.URLPath)
			return nil
		},
	}
}
