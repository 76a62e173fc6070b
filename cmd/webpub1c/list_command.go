package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List publications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			store, err := ctx.newStore(logger)
			if err != nil {
				return err
			}
			names, err := store.Publications()
			if err != nil {
				return err
			}

			if asJSON {
				if names == nil {
					names = []string{}
				}
				return writeJSON(cmd, names)
			}

			out := cmd.OutOrStdout()
			if stdoutIsTTY() {
				rows := make([][]string, 0, len(names))
				for _, name := range names {
					rows = append(rows, []string{name})
				}
				fmt.Fprintln(out, renderTable([]string{"Publication"}, rows))
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of text")
	return cmd
}
