package types

type ModMetadata struct {
	Name          string `yaml:"name"`
	ID            string `yaml:"id"`
	Description   string `yaml:"description"`
	Version       string `yaml:"version"`
	Author        string `yaml:"author"`
	Homepage      string `yaml:"homepage,omitempty"`
	Sources       string `yaml:"sources,omitempty"`
	License       string `yaml:"license"`
	LicenseAuthor string `yaml:"license_author,omitempty"`
}

// Selection is the fully resolved answer set handed to the project writer.
type Selection struct {
	Mod           ModMetadata `yaml:"mod"`
	GameVersion   string      `yaml:"minecraft_version"`
	APIVersion    string      `yaml:"fabric_api_version"`
	YarnMappings  string      `yaml:"yarn_mappings"`
	LoomVersion   string      `yaml:"loom_version"`
	ModernLoom    bool        `yaml:"modern_loom"`
	LoaderVersion string      `yaml:"loader_version"`
}
