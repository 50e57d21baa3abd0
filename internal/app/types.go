package app

import "fabric-scaffold/internal/types"

type InitRequest struct {
	OutputPath string
}

type InitResult struct {
	OutputPath string
	Selection  types.Selection
}

type VersionsRequest struct {
	GameVersion string
	YarnMapping string
}

type VersionsResult struct {
	GameVersion   string
	APIRelease    types.APIRelease
	APIVersion    string
	YarnMappings  []types.YarnMapping
	YarnMapping   string
	LoomLine      types.LoomLine
	LoomVersions  []types.LoomVersion
	LoomVersion   string
	LoaderVersion string
}

type SnapshotRequest struct {
	OutputPath string
}

type SnapshotResult struct {
	OutputPath   string
	GameVersions int
	APIReleases  int
	YarnMappings int
	LoomVersions int
	Loaders      int
}

type InspectRequest struct {
	SelectionPath string
	Verify        bool
}

type InspectResult struct {
	Selection types.Selection
	Verified  bool
}
