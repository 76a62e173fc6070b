package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"webpub1c/internal/logging"
	"webpub1c/internal/publication"
)

func newModuleCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "module",
		Short: "Manage the 1C web service Apache module",
	}
	cmd.AddCommand(newModuleHasCommand(ctx))
	cmd.AddCommand(newModuleAddCommand(ctx))
	return cmd
}

func newModuleHasCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "has",
		Short: "Report whether the module is loaded",
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
			present, err := store.HasWSModule()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), yesNo(present))
			return nil
		},
	}
}

func newModuleAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Add the module load directive to the Apache config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.operationLogger("module-add")
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			modulePath := cfg.WSModulePath()
			if modulePath == "" {
				return fmt.Errorf("%w: ws module path is not configured", publication.ErrConfiguration)
			}
			store, err := ctx.newStore(logger)
			if err != nil {
				return err
			}
			if err := store.AddWSModule(modulePath); err != nil {
				return err
			}
			logger.Info("ws module directive ensured", logging.String("path", modulePath))
			return nil
		},
	}
}
