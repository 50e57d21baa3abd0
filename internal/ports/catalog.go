package ports

import (
	"context"

	"fabric-scaffold/internal/types"
)

// CatalogPort fetches the remote version catalogs. Each call is a single
// attempt; failures are types.Error values of kind transport or parse.
type CatalogPort interface {
	GameVersions(ctx context.Context) ([]types.GameVersion, error)
	APIReleaseLabels(ctx context.Context) ([]string, error)
	YarnMappings(ctx context.Context) ([]types.YarnMapping, error)
	LoomVersions(ctx context.Context) ([]types.LoomVersion, error)
	LoaderReleases(ctx context.Context) ([]types.LoaderRelease, error)
}

type CatalogSnapshotWriterPort interface {
	Write(path string, catalogs types.Catalogs) error
}
