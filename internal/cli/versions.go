package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fabric-scaffold/internal/app"
)

type versionsOptions struct {
	GameVersion string
	YarnMapping string
	All         bool
}

func newVersionsCommand() *cobra.Command {
	opts := versionsOptions{}
	cmd := &cobra.Command{
		Use:   "versions",
		Short: "Show the compatible toolchain versions for a Minecraft version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVersions(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.GameVersion, "minecraft", "", "Minecraft version (default: newest stable)")
	cmd.Flags().StringVar(&opts.YarnMapping, "yarn", "", "Yarn mappings version (default: newest for the Minecraft version)")
	cmd.Flags().BoolVar(&opts.All, "all", false, "List every allowed Yarn and Loom version")
	_ = viper.BindPFlag("minecraft_version", cmd.Flags().Lookup("minecraft"))
	_ = viper.BindPFlag("yarn_mappings", cmd.Flags().Lookup("yarn"))
	return cmd
}

func runVersions(ctx context.Context, cmd *cobra.Command, opts versionsOptions) error {
	service := newAppService(cmd)
	result, err := service.Versions(ctx, app.VersionsRequest{
		GameVersion: resolveString(cmd, opts.GameVersion, "minecraft_version", "minecraft"),
		YarnMapping: resolveString(cmd, opts.YarnMapping, "yarn_mappings", "yarn"),
	})
	if err != nil {
		return err
	}
	line := "legacy"
	if result.LoomLine != nil && result.LoomLine.Modern() {
		line = "modern"
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "minecraft:     %s\n", result.GameVersion)
	fmt.Fprintf(out, "fabric api:    %s (%s)\n", result.APIVersion, result.APIRelease.Label)
	fmt.Fprintf(out, "yarn mappings: %s\n", result.YarnMapping)
	fmt.Fprintf(out, "loom:          %s (%s line)\n", result.LoomVersion, line)
	fmt.Fprintf(out, "loader:        %s\n", result.LoaderVersion)
	if !opts.All {
		return nil
	}
	fmt.Fprintln(out, "allowed yarn mappings:")
	for _, mapping := range result.YarnMappings {
		fmt.Fprintf(out, "- %s\n", mapping.Version)
	}
	fmt.Fprintln(out, "allowed loom versions:")
	for _, loom := range result.LoomVersions {
		fmt.Fprintf(out, "- %s\n", loom.Version)
	}
	return nil
}
