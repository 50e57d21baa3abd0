package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fabric-scaffold/internal/app"
)

type catalogOptions struct {
	Output string
}

func newCatalogCommand() *cobra.Command {
	opts := catalogOptions{}
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Fetch the version catalogs and save them for offline runs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCatalog(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Output, "output", "fabric-catalogs.yaml", "Catalog snapshot output path")
	_ = viper.BindPFlag("catalog_output", cmd.Flags().Lookup("output"))
	return cmd
}

func runCatalog(ctx context.Context, cmd *cobra.Command, opts catalogOptions) error {
	service := newAppService(cmd)
	result, err := service.SnapshotCatalogs(ctx, app.SnapshotRequest{
		OutputPath: resolveString(cmd, opts.Output, "catalog_output", "output"),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote catalog snapshot: %s (%d game versions, %d api releases, %d yarn mappings, %d loom versions, %d loaders)\n",
		result.OutputPath, result.GameVersions, result.APIReleases, result.YarnMappings, result.LoomVersions, result.Loaders)
	return nil
}
