package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fabric-scaffold/internal/app"
	"fabric-scaffold/internal/shared"
	"fabric-scaffold/internal/types"
)

type inspectOptions struct {
	Selection string
	Verify    bool
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show a written selection and optionally check it against the catalogs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Selection, "selection", "fabric-selection.yaml", "Selection file path")
	cmd.Flags().BoolVar(&opts.Verify, "verify", false, "Check the versions against the current catalogs")
	_ = viper.BindPFlag("selection_file", cmd.Flags().Lookup("selection"))
	_ = viper.BindPFlag("inspect_verify", cmd.Flags().Lookup("verify"))
	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService(cmd)
	result, err := service.Inspect(ctx, app.InspectRequest{
		SelectionPath: resolveString(cmd, opts.Selection, "selection_file", "selection"),
		Verify:        resolveBool(cmd, opts.Verify, "inspect_verify", "verify"),
	})
	if err != nil {
		return err
	}
	printSelection(cmd, result.Selection)
	if result.Verified {
		fmt.Fprintln(cmd.OutOrStdout(), "selection matches the current catalogs")
	}
	return nil
}

func printSelection(cmd *cobra.Command, selection types.Selection) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "mod: %s (%s) %s by %s\n", selection.Mod.Name, selection.Mod.ID, selection.Mod.Version, selection.Mod.Author)
	fmt.Fprintf(out, "license: %s\n", shared.DisplayOr(selection.Mod.License, "-"))
	fmt.Fprintf(out, "minecraft: %s\n", selection.GameVersion)
	fmt.Fprintf(out, "fabric api: %s\n", selection.APIVersion)
	fmt.Fprintf(out, "yarn mappings: %s\n", selection.YarnMappings)
	fmt.Fprintf(out, "loom: %s (modern=%t)\n", selection.LoomVersion, selection.ModernLoom)
	fmt.Fprintf(out, "loader: %s\n", selection.LoaderVersion)
}
