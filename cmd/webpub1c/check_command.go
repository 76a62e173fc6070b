package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"webpub1c/internal/urlpath"
)

// check runs shallow diagnostics over the configured paths. It reports
// each item as ok or invalid and fails when any is invalid.
func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the configured environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
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

			checks := []struct {
				label string
				ok    bool
			}{
				{"apache config", store.IsValid()},
				{"vrd directory", isDir(cfg.Paths.VRDDir)},
				{"publication directory", isDir(cfg.Paths.PubDir)},
				{"url base", urlpath.IsAbsolute(cfg.Paths.URLBase)},
				{"ws module", cfg.WSModuleValid()},
			}

			out := cmd.OutOrStdout()
			failed := false
			for _, check := range checks {
				fmt.Fprintf(out, "%s: %s\n", check.label, okInvalid(check.ok))
				if !check.ok {
					failed = true
				}
			}
			if failed {
				return fmt.Errorf("environment check failed")
			}
			return nil
		},
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
