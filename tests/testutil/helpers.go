// Package testutil provides shared test helpers used across integration
// and e2e test packages.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"fabric-scaffold/internal/types"
)

// RepoRoot returns the absolute path to the repository root by walking
// up from the current working directory. It fails the test if the
// working directory cannot be determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// CatalogServer serves the fixture catalogs under tests/testdata/catalogs
// in the upstream wire formats. The server is closed with the test.
func CatalogServer(t *testing.T) types.CatalogEndpoints {
	t.Helper()
	dir := filepath.Join(RepoRoot(t), "tests", "testdata", "catalogs")
	mux := http.NewServeMux()
	serveFile(mux, "/v2/versions/game", filepath.Join(dir, "game.json"))
	serveFile(mux, "/v2/versions/yarn", filepath.Join(dir, "yarn.json"))
	serveFile(mux, "/v2/versions/loader", filepath.Join(dir, "loader.json"))
	serveFile(mux, "/api/v2/addon/306612/files", filepath.Join(dir, "api.json"))
	serveFile(mux, "/net/fabricmc/fabric-loom/maven-metadata.xml", filepath.Join(dir, "loom.xml"))
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return types.CatalogEndpoints{
		GameVersionsURL: server.URL + "/v2/versions/game",
		APIFilesURL:     server.URL + "/api/v2/addon/306612/files",
		YarnURL:         server.URL + "/v2/versions/yarn",
		LoomMetadataURL: server.URL + "/net/fabricmc/fabric-loom/maven-metadata.xml",
		LoaderURL:       server.URL + "/v2/versions/loader",
	}
}

func serveFile(mux *http.ServeMux, route string, path string) {
	mux.HandleFunc(route, func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, path)
	})
}
