package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fabric-scaffold/internal/adapters"
	"fabric-scaffold/internal/core"
	"fabric-scaffold/internal/policies"
	"fabric-scaffold/internal/types"
)

// stubCatalogs satisfies ports.CatalogPort from fixed catalogs.
type stubCatalogs struct {
	catalogs types.Catalogs
	err      error
}

func (s stubCatalogs) GameVersions(_ context.Context) ([]types.GameVersion, error) {
	return s.catalogs.GameVersions, s.err
}
func (s stubCatalogs) APIReleaseLabels(_ context.Context) ([]string, error) {
	return s.catalogs.APILabels, nil
}
func (s stubCatalogs) YarnMappings(_ context.Context) ([]types.YarnMapping, error) {
	return s.catalogs.YarnMappings, nil
}
func (s stubCatalogs) LoomVersions(_ context.Context) ([]types.LoomVersion, error) {
	return s.catalogs.LoomVersions, nil
}
func (s stubCatalogs) LoaderReleases(_ context.Context) ([]types.LoaderRelease, error) {
	return s.catalogs.LoaderReleases, nil
}

func fixtureCatalogs() types.Catalogs {
	return types.Catalogs{
		GameVersions: []types.GameVersion{
			{Version: "1.16", Stable: true},
			{Version: "20w14a", Stable: false},
			{Version: "1.15.2", Stable: true},
			{Version: "1.14.4", Stable: true},
		},
		APILabels: []string{
			"[1.16] Fabric API 0.14.0 build 5",
			"[1.15.2] Fabric API 0.5.1 build 9",
			"[1.15.2] Fabric API 0.5.0 build 3",
			"[1.14.4] Fabric API 0.4.1 build 2",
			"Fabric API nightly",
		},
		YarnMappings: []types.YarnMapping{
			{GameVersion: "1.16", Build: 1, Version: "1.16+build.1"},
			{GameVersion: "1.15.2", Build: 17, Version: "1.15.2+build.17"},
			{GameVersion: "1.14.4", Build: 20, Version: "1.14.4+build.20"},
			{GameVersion: "1.14.4", Build: 10, Version: "1.14.4+build.10"},
		},
		LoomVersions: []types.LoomVersion{
			{Version: "0.4.29"},
			{Version: "0.2.6-SNAPSHOT"},
			{Version: "0.2.5-SNAPSHOT"},
		},
		LoaderReleases: []types.LoaderRelease{
			{Version: "0.8.2+build.194", Stable: true},
			{Version: "0.8.1+build.193", Stable: true},
		},
	}
}

func newTestService(answers map[string]string) Service {
	selection := adapters.NewSelectionFileAdapter()
	return Service{
		Catalogs:        stubCatalogs{catalogs: fixtureCatalogs()},
		SnapshotWriter:  adapters.NewCatalogSnapshotWriterAdapter(),
		SelectionWriter: selection,
		SelectionReader: selection,
		Prompter:        adapters.NewAnswersAdapter(answers),
		Metadata:        policies.NewMetadataPolicy(),
		Rules:           core.DefaultCompatibilityRules(),
	}
}

func baseAnswers() map[string]string {
	return map[string]string{
		"mod_name":          "Example Mod",
		"mod_id":            "examplemod",
		"mod_description":   "An example",
		"author":            "Alex",
		"minecraft_version": "1.15.2",
	}
}

// ---------------------------------------------------------------------------
// Init
// ---------------------------------------------------------------------------

func TestInitWritesDefaults(t *testing.T) {
	output := filepath.Join(t.TempDir(), "selection.yaml")
	service := newTestService(baseAnswers())

	result, err := service.Init(t.Context(), InitRequest{OutputPath: output})
	require.NoError(t, err)

	want := types.Selection{
		Mod: types.ModMetadata{
			Name:          "Example Mod",
			ID:            "examplemod",
			Description:   "An example",
			Version:       "0.1.0",
			Author:        "Alex",
			License:       "MIT",
			LicenseAuthor: "Alex",
		},
		GameVersion:   "1.15.2",
		APIVersion:    "0.5.1+build.9",
		YarnMappings:  "1.15.2+build.17",
		LoomVersion:   "0.2.6-SNAPSHOT",
		ModernLoom:    true,
		LoaderVersion: "0.8.2+build.194",
	}
	if diff := cmp.Diff(want, result.Selection); diff != "" {
		t.Fatalf("unexpected selection (-want +got):\n%s", diff)
	}

	written, err := adapters.NewSelectionFileAdapter().Read(output)
	require.NoError(t, err)
	if diff := cmp.Diff(want, written); diff != "" {
		t.Fatalf("unexpected written selection (-want +got):\n%s", diff)
	}
}

func TestInitLegacyLoomLine(t *testing.T) {
	answers := baseAnswers()
	answers["minecraft_version"] = "1.14.4"
	answers["yarn_mappings"] = "1.14.4+build.10"
	answers["license"] = "unlicense"
	service := newTestService(answers)

	result, err := service.Init(t.Context(), InitRequest{OutputPath: filepath.Join(t.TempDir(), "out.yaml")})
	require.NoError(t, err)
	assert.False(t, result.Selection.ModernLoom)
	assert.Equal(t, "0.2.5-SNAPSHOT", result.Selection.LoomVersion)
	assert.Equal(t, "0.4.1+build.2", result.Selection.APIVersion)
	assert.Empty(t, result.Selection.Mod.LicenseAuthor)
}

func TestInitDefaultsToNewestStableGameVersion(t *testing.T) {
	answers := baseAnswers()
	delete(answers, "minecraft_version")
	service := newTestService(answers)

	result, err := service.Init(t.Context(), InitRequest{OutputPath: filepath.Join(t.TempDir(), "out.yaml")})
	require.NoError(t, err)
	assert.Equal(t, "1.16", result.Selection.GameVersion)
	assert.Equal(t, "0.14.0+build.5", result.Selection.APIVersion)
}

func TestInitRejectsInvalidMetadata(t *testing.T) {
	answers := baseAnswers()
	answers["mod_version"] = "1.0"
	service := newTestService(answers)

	_, err := service.Init(t.Context(), InitRequest{OutputPath: filepath.Join(t.TempDir(), "out.yaml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SemVer")
}

func TestInitRejectsUnknownChoice(t *testing.T) {
	answers := baseAnswers()
	answers["loom_version"] = "0.4.29-doesnotexist"
	service := newTestService(answers)

	_, err := service.Init(t.Context(), InitRequest{OutputPath: filepath.Join(t.TempDir(), "out.yaml")})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestInitRequiresOutputPath(t *testing.T) {
	_, err := Service{}.Init(t.Context(), InitRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "selection output path is required")
}

func TestInitPropagatesTransportErrors(t *testing.T) {
	service := newTestService(baseAnswers())
	service.Catalogs = stubCatalogs{err: types.TransportError("game versions", "request failed", assert.AnError)}

	_, err := service.Init(t.Context(), InitRequest{OutputPath: filepath.Join(t.TempDir(), "out.yaml")})
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.ErrorKindTransport))
}

// ---------------------------------------------------------------------------
// Versions
// ---------------------------------------------------------------------------

func TestVersionsReport(t *testing.T) {
	service := newTestService(nil)

	result, err := service.Versions(t.Context(), VersionsRequest{GameVersion: "1.15.2"})
	require.NoError(t, err)
	assert.Equal(t, "0.5.1+build.9", result.APIVersion)
	assert.Equal(t, "1.15.2+build.17", result.YarnMapping)
	assert.True(t, result.LoomLine.Modern())
	assert.Equal(t, "0.2.6-SNAPSHOT", result.LoomVersion)
	assert.Equal(t, "0.8.2+build.194", result.LoaderVersion)
}

func TestVersionsExplicitLegacyMapping(t *testing.T) {
	service := newTestService(nil)

	result, err := service.Versions(t.Context(), VersionsRequest{GameVersion: "1.14.4", YarnMapping: "1.14.4+build.10"})
	require.NoError(t, err)
	assert.False(t, result.LoomLine.Modern())
	if diff := cmp.Diff([]types.LoomVersion{{Version: "0.2.5-SNAPSHOT"}}, result.LoomVersions); diff != "" {
		t.Fatalf("unexpected loom versions (-want +got):\n%s", diff)
	}
}

func TestVersionsDefaultGameVersion(t *testing.T) {
	result, err := newTestService(nil).Versions(t.Context(), VersionsRequest{})
	require.NoError(t, err)
	assert.Equal(t, "1.16", result.GameVersion)
}

func TestVersionsUnknownGameVersion(t *testing.T) {
	_, err := newTestService(nil).Versions(t.Context(), VersionsRequest{GameVersion: "9.9"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

// ---------------------------------------------------------------------------
// SnapshotCatalogs / Inspect
// ---------------------------------------------------------------------------

func TestSnapshotCatalogsRoundTripsThroughFileAdapter(t *testing.T) {
	output := filepath.Join(t.TempDir(), "catalogs", "snapshot.yaml")
	service := newTestService(nil)

	result, err := service.SnapshotCatalogs(t.Context(), SnapshotRequest{OutputPath: output})
	require.NoError(t, err)
	assert.Equal(t, 4, result.APIReleases)
	assert.Equal(t, 4, result.GameVersions)

	offline := newTestService(nil)
	offline.Catalogs = adapters.NewCatalogFileAdapter(output)
	report, err := offline.Versions(t.Context(), VersionsRequest{GameVersion: "1.15.2"})
	require.NoError(t, err)
	assert.Equal(t, "0.5.1+build.9", report.APIVersion)
}

func TestInspectVerifiesSelection(t *testing.T) {
	output := filepath.Join(t.TempDir(), "selection.yaml")
	service := newTestService(baseAnswers())
	_, err := service.Init(t.Context(), InitRequest{OutputPath: output})
	require.NoError(t, err)

	result, err := service.Inspect(t.Context(), InspectRequest{SelectionPath: output, Verify: true})
	require.NoError(t, err)
	assert.True(t, result.Verified)
	assert.Equal(t, "examplemod", result.Selection.Mod.ID)
}

func TestInspectDetectsStaleLoomLine(t *testing.T) {
	output := filepath.Join(t.TempDir(), "selection.yaml")
	selection := types.Selection{
		GameVersion:   "1.14.4",
		APIVersion:    "0.4.1+build.2",
		YarnMappings:  "1.14.4+build.10",
		LoomVersion:   "0.2.5-SNAPSHOT",
		ModernLoom:    true,
		LoaderVersion: "0.8.2+build.194",
	}
	require.NoError(t, adapters.NewSelectionFileAdapter().Write(output, selection))

	_, err := newTestService(nil).Inspect(t.Context(), InspectRequest{SelectionPath: output, Verify: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "modern_loom")
}

func TestInspectMissingFile(t *testing.T) {
	_, err := newTestService(nil).Inspect(t.Context(), InspectRequest{SelectionPath: filepath.Join(t.TempDir(), "none.yaml")})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
