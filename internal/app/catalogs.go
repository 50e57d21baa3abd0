package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"fabric-scaffold/internal/core"
	"fabric-scaffold/internal/types"
)

// LoadCatalogs fetches all five catalogs. The first failure aborts the
// load; nothing is retried.
func (s Service) LoadCatalogs(ctx context.Context) (types.Catalogs, error) {
	if s.Catalogs == nil {
		return types.Catalogs{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("no catalog source configured")
	}
	var catalogs types.Catalogs
	var err error
	if catalogs.GameVersions, err = s.Catalogs.GameVersions(ctx); err != nil {
		return types.Catalogs{}, err
	}
	if catalogs.APILabels, err = s.Catalogs.APIReleaseLabels(ctx); err != nil {
		return types.Catalogs{}, err
	}
	if catalogs.YarnMappings, err = s.Catalogs.YarnMappings(ctx); err != nil {
		return types.Catalogs{}, err
	}
	if catalogs.LoomVersions, err = s.Catalogs.LoomVersions(ctx); err != nil {
		return types.Catalogs{}, err
	}
	if catalogs.LoaderReleases, err = s.Catalogs.LoaderReleases(ctx); err != nil {
		return types.Catalogs{}, err
	}
	log.Debug().
		Int("game_versions", len(catalogs.GameVersions)).
		Int("api_labels", len(catalogs.APILabels)).
		Int("yarn_mappings", len(catalogs.YarnMappings)).
		Int("loom_versions", len(catalogs.LoomVersions)).
		Int("loader_releases", len(catalogs.LoaderReleases)).
		Msg("catalogs loaded")
	return catalogs, nil
}

func (s Service) loadResolver(ctx context.Context) (*core.Resolver, error) {
	catalogs, err := s.LoadCatalogs(ctx)
	if err != nil {
		return nil, err
	}
	return core.NewResolver(catalogs, s.Rules)
}

// SnapshotCatalogs saves the current catalogs for offline runs. The
// catalogs are checked with a resolver first so a broken snapshot is never
// written.
func (s Service) SnapshotCatalogs(ctx context.Context, req SnapshotRequest) (SnapshotResult, error) {
	output := strings.TrimSpace(req.OutputPath)
	if output == "" {
		return SnapshotResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("catalog output path is required")
	}
	catalogs, err := s.LoadCatalogs(ctx)
	if err != nil {
		return SnapshotResult{}, err
	}
	resolver, err := core.NewResolver(catalogs, s.Rules)
	if err != nil {
		return SnapshotResult{}, err
	}
	if err := s.SnapshotWriter.Write(output, catalogs); err != nil {
		return SnapshotResult{}, err
	}
	return SnapshotResult{
		OutputPath:   output,
		GameVersions: len(catalogs.GameVersions),
		APIReleases:  len(resolver.APIReleases()),
		YarnMappings: len(catalogs.YarnMappings),
		LoomVersions: len(catalogs.LoomVersions),
		Loaders:      len(catalogs.LoaderReleases),
	}, nil
}
