package adapters

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	"fabric-scaffold/internal/ports"
	"fabric-scaffold/internal/types"
)

// CatalogFileAdapter serves catalogs from a YAML snapshot written by
// CatalogSnapshotWriterAdapter, for offline runs. Snapshots whose path ends
// in ".zst" are zstd-compressed.
type CatalogFileAdapter struct {
	Path string
}

type CatalogSnapshotWriterAdapter struct{}

func NewCatalogFileAdapter(path string) CatalogFileAdapter {
	return CatalogFileAdapter{Path: path}
}

func NewCatalogSnapshotWriterAdapter() CatalogSnapshotWriterAdapter {
	return CatalogSnapshotWriterAdapter{}
}

func (a CatalogFileAdapter) GameVersions(ctx context.Context) ([]types.GameVersion, error) {
	catalogs, err := a.load(ctx)
	if err != nil {
		return nil, err
	}
	return catalogs.GameVersions, nil
}

func (a CatalogFileAdapter) APIReleaseLabels(ctx context.Context) ([]string, error) {
	catalogs, err := a.load(ctx)
	if err != nil {
		return nil, err
	}
	return catalogs.APILabels, nil
}

func (a CatalogFileAdapter) YarnMappings(ctx context.Context) ([]types.YarnMapping, error) {
	catalogs, err := a.load(ctx)
	if err != nil {
		return nil, err
	}
	return catalogs.YarnMappings, nil
}

func (a CatalogFileAdapter) LoomVersions(ctx context.Context) ([]types.LoomVersion, error) {
	catalogs, err := a.load(ctx)
	if err != nil {
		return nil, err
	}
	return catalogs.LoomVersions, nil
}

func (a CatalogFileAdapter) LoaderReleases(ctx context.Context) ([]types.LoaderRelease, error) {
	catalogs, err := a.load(ctx)
	if err != nil {
		return nil, err
	}
	return catalogs.LoaderReleases, nil
}

func (a CatalogFileAdapter) load(ctx context.Context) (types.Catalogs, error) {
	if err := ctx.Err(); err != nil {
		return types.Catalogs{}, err
	}
	if strings.TrimSpace(a.Path) == "" {
		return types.Catalogs{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("catalog snapshot path is empty")
	}
	data, err := os.ReadFile(a.Path)
	if err != nil {
		return types.Catalogs{}, types.TransportError("catalog snapshot", "failed to read catalog snapshot", err)
	}
	if isCompressedSnapshot(a.Path) {
		if data, err = decompressSnapshot(data); err != nil {
			return types.Catalogs{}, types.ParseError("catalog snapshot", "failed to decompress catalog snapshot", err)
		}
	}
	var catalogs types.Catalogs
	if err := yaml.Unmarshal(data, &catalogs); err != nil {
		return types.Catalogs{}, types.ParseError("catalog snapshot", "failed to parse catalog snapshot yaml", err)
	}
	return catalogs, nil
}

func (a CatalogSnapshotWriterAdapter) Write(path string, catalogs types.Catalogs) error {
	if strings.TrimSpace(path) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output path is required")
	}
	data, err := yaml.Marshal(catalogs)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal catalog snapshot").
			WithCause(err)
	}
	if isCompressedSnapshot(path) {
		if data, err = compressSnapshot(data); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to compress catalog snapshot").
				WithCause(err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create catalog snapshot directory").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write catalog snapshot").
			WithCause(err)
	}
	return nil
}

func isCompressedSnapshot(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".zst")
}

func compressSnapshot(data []byte) ([]byte, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer encoder.Close()
	return encoder.EncodeAll(data, nil), nil
}

func decompressSnapshot(data []byte) ([]byte, error) {
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer decoder.Close()
	return decoder.DecodeAll(data, nil)
}

var _ ports.CatalogPort = CatalogFileAdapter{}
var _ ports.CatalogSnapshotWriterPort = CatalogSnapshotWriterAdapter{}
