package adapters

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"fabric-scaffold/internal/ports"
	"fabric-scaffold/internal/shared"
	"fabric-scaffold/internal/types"
)

const defaultCatalogTimeout = 30 * time.Second

// maxErrorBody bounds how much of a failed response is kept in the error.
const maxErrorBody = 512

// CatalogHTTPAdapter fetches the Fabric catalogs over HTTP. Every request
// is a single attempt bounded by Timeout.
type CatalogHTTPAdapter struct {
	Endpoints types.CatalogEndpoints
	Client    *http.Client
}

func NewCatalogHTTPAdapter(endpoints types.CatalogEndpoints, timeoutSec int) CatalogHTTPAdapter {
	timeout := time.Duration(timeoutSec) * time.Second
	if timeout <= 0 {
		timeout = defaultCatalogTimeout
	}
	return CatalogHTTPAdapter{
		Endpoints: endpoints,
		Client:    &http.Client{Timeout: timeout},
	}
}

type metaGameVersion struct {
	Version string `json:"version"`
	Stable  bool   `json:"stable"`
}

type metaYarnVersion struct {
	GameVersion string `json:"gameVersion"`
	Separator   string `json:"separator"`
	Build       int    `json:"build"`
	Maven       string `json:"maven"`
	Version     string `json:"version"`
}

type metaLoaderVersion struct {
	Version string `json:"version"`
	Stable  bool   `json:"stable"`
}

type addonFile struct {
	ID          int    `json:"id"`
	DisplayName string `json:"displayName"`
	FileName    string `json:"fileName"`
}

type mavenMetadata struct {
	XMLName    xml.Name        `xml:"metadata"`
	GroupID    string          `xml:"groupId"`
	ArtifactID string          `xml:"artifactId"`
	Versioning mavenVersioning `xml:"versioning"`
}

type mavenVersioning struct {
	Latest   string   `xml:"latest"`
	Release  string   `xml:"release"`
	Versions []string `xml:"versions>version"`
}

func (a CatalogHTTPAdapter) GameVersions(ctx context.Context) ([]types.GameVersion, error) {
	const source = "game versions"
	var raw []metaGameVersion
	if err := a.fetchJSON(ctx, source, a.Endpoints.GameVersionsURL, &raw); err != nil {
		return nil, err
	}
	games := make([]types.GameVersion, 0, len(raw))
	for _, entry := range raw {
		version := strings.TrimSpace(entry.Version)
		if version == "" {
			return nil, types.ParseError(source, "game version entry without version", nil)
		}
		games = append(games, types.GameVersion{Version: version, Stable: entry.Stable})
	}
	return games, nil
}

func (a CatalogHTTPAdapter) APIReleaseLabels(ctx context.Context) ([]string, error) {
	const source = "fabric api releases"
	var raw []addonFile
	if err := a.fetchJSON(ctx, source, a.Endpoints.APIFilesURL, &raw); err != nil {
		return nil, err
	}
	labels := make([]string, 0, len(raw))
	for _, file := range raw {
		labels = append(labels, file.DisplayName)
	}
	return labels, nil
}

func (a CatalogHTTPAdapter) YarnMappings(ctx context.Context) ([]types.YarnMapping, error) {
	const source = "yarn mappings"
	var raw []metaYarnVersion
	if err := a.fetchJSON(ctx, source, a.Endpoints.YarnURL, &raw); err != nil {
		return nil, err
	}
	mappings := make([]types.YarnMapping, 0, len(raw))
	for _, entry := range raw {
		if strings.TrimSpace(entry.GameVersion) == "" || strings.TrimSpace(entry.Version) == "" {
			return nil, types.ParseError(source, "yarn entry without game version or version", nil)
		}
		mappings = append(mappings, types.YarnMapping{
			GameVersion: entry.GameVersion,
			Build:       entry.Build,
			Version:     entry.Version,
		})
	}
	return mappings, nil
}

func (a CatalogHTTPAdapter) LoomVersions(ctx context.Context) ([]types.LoomVersion, error) {
	const source = "loom versions"
	body, err := a.fetch(ctx, source, a.Endpoints.LoomMetadataURL)
	if err != nil {
		return nil, err
	}
	var metadata mavenMetadata
	if err := xml.Unmarshal(body, &metadata); err != nil {
		return nil, types.ParseError(source, "failed to parse maven metadata", err)
	}
	versions := make([]types.LoomVersion, 0, len(metadata.Versioning.Versions))
	for _, version := range metadata.Versioning.Versions {
		version = strings.TrimSpace(version)
		if version == "" {
			continue
		}
		versions = append(versions, types.LoomVersion{Version: version})
	}
	return versions, nil
}

func (a CatalogHTTPAdapter) LoaderReleases(ctx context.Context) ([]types.LoaderRelease, error) {
	const source = "loader versions"
	var raw []metaLoaderVersion
	if err := a.fetchJSON(ctx, source, a.Endpoints.LoaderURL, &raw); err != nil {
		return nil, err
	}
	loaders := make([]types.LoaderRelease, 0, len(raw))
	for _, entry := range raw {
		if strings.TrimSpace(entry.Version) == "" {
			return nil, types.ParseError(source, "loader entry without version", nil)
		}
		loaders = append(loaders, types.LoaderRelease{Version: entry.Version, Stable: entry.Stable})
	}
	return loaders, nil
}

func (a CatalogHTTPAdapter) fetchJSON(ctx context.Context, source string, url string, out any) error {
	body, err := a.fetch(ctx, source, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return types.ParseError(source, "failed to decode catalog json", err)
	}
	return nil
}

func (a CatalogHTTPAdapter) fetch(ctx context.Context, source string, url string) ([]byte, error) {
	if strings.TrimSpace(url) == "" {
		return nil, types.TransportError(source, "catalog endpoint is not configured", nil)
	}
	client := a.Client
	if client == nil {
		client = &http.Client{Timeout: defaultCatalogTimeout}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, types.TransportError(source, "failed to create request", err)
	}
	req.Header.Set("Accept", "application/json, application/xml;q=0.9, */*;q=0.8")
	started := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return nil, types.TransportError(source, "request failed", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, types.TransportError(source, "failed to fetch catalog",
			shared.HTTPStatusErrorWithBody(resp.StatusCode, url, strings.TrimSpace(string(snippet))))
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, types.TransportError(source, "failed to read catalog", err)
	}
	log.Debug().
		Str("catalog", source).
		Str("url", url).
		Int("bytes", len(body)).
		Dur("elapsed", time.Since(started)).
		Msg("catalog fetched")
	return body, nil
}

var _ ports.CatalogPort = CatalogHTTPAdapter{}
