package types

type GameVersion struct {
	Version string `yaml:"version" json:"version"`
	Stable  bool   `yaml:"stable" json:"stable"`
}

// APIRelease is a Fabric API file entry after its display label has been
// parsed and correlated against the game version catalog.
type APIRelease struct {
	Label       string `yaml:"label"`
	GameVersion string `yaml:"game_version"`
	Version     string `yaml:"version,omitempty"`
	Build       int    `yaml:"build"`
	HasBuild    bool   `yaml:"has_build"`
	// Correlation is the position of GameVersion in the game catalog, or
	// len(catalog) when the tag is unknown.
	Correlation int `yaml:"correlation"`
}

type YarnMapping struct {
	GameVersion string `yaml:"game_version" json:"gameVersion"`
	Build       int    `yaml:"build" json:"build"`
	Version     string `yaml:"version" json:"version"`
}

type LoomVersion struct {
	Version string `yaml:"version"`
}

type LoaderRelease struct {
	Version string `yaml:"version" json:"version"`
	Stable  bool   `yaml:"stable,omitempty" json:"stable"`
}

// Catalogs holds every remote catalog for one run. Values are read-only
// once loaded.
type Catalogs struct {
	GameVersions   []GameVersion   `yaml:"game_versions"`
	APILabels      []string        `yaml:"api_labels"`
	YarnMappings   []YarnMapping   `yaml:"yarn_mappings"`
	LoomVersions   []LoomVersion   `yaml:"loom_versions"`
	LoaderReleases []LoaderRelease `yaml:"loader_releases"`
}

type CatalogEndpoints struct {
	GameVersionsURL string
	APIFilesURL     string
	YarnURL         string
	LoomMetadataURL string
	LoaderURL       string
}

const (
	DefaultGameVersionsURL = "https://meta.fabricmc.net/v2/versions/game"
	DefaultAPIFilesURL     = "https://addons-ecs.forgesvc.net/api/v2/addon/306612/files"
	DefaultYarnURL         = "https://meta.fabricmc.net/v2/versions/yarn"
	DefaultLoomMetadataURL = "https://maven.fabricmc.net/net/fabricmc/fabric-loom/maven-metadata.xml"
	DefaultLoaderURL       = "https://meta.fabricmc.net/v2/versions/loader"
)

func DefaultCatalogEndpoints() CatalogEndpoints {
	return CatalogEndpoints{
		GameVersionsURL: DefaultGameVersionsURL,
		APIFilesURL:     DefaultAPIFilesURL,
		YarnURL:         DefaultYarnURL,
		LoomMetadataURL: DefaultLoomMetadataURL,
		LoaderURL:       DefaultLoaderURL,
	}
}
