package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"fabric-scaffold/internal/adapters"
	"fabric-scaffold/tests/testutil"
)

func TestCatalogAndInitCommandsE2E(t *testing.T) {
	root := testutil.RepoRoot(t)
	endpoints := testutil.CatalogServer(t)
	outDir := t.TempDir()
	snapshot := filepath.Join(outDir, "catalogs.yaml")
	selection := filepath.Join(outDir, "selection.yaml")

	env := append(os.Environ(),
		"GO111MODULE=on",
		"FABRIC_SCAFFOLD_GAME_VERSIONS_URL="+endpoints.GameVersionsURL,
		"FABRIC_SCAFFOLD_API_FILES_URL="+endpoints.APIFilesURL,
		"FABRIC_SCAFFOLD_YARN_URL="+endpoints.YarnURL,
		"FABRIC_SCAFFOLD_LOOM_METADATA_URL="+endpoints.LoomMetadataURL,
		"FABRIC_SCAFFOLD_LOADER_URL="+endpoints.LoaderURL,
	)

	cmd := exec.Command("go", "run", "./cmd/fabric-scaffold", "catalog", "--output", snapshot)
	cmd.Dir = root
	cmd.Env = env
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
	require.FileExists(t, snapshot)

	cmd = exec.Command("go", "run", "./cmd/fabric-scaffold", "init",
		"--catalog-file", snapshot,
		"--answers", "tests/testdata/answers.yaml",
		"--output", selection,
	)
	cmd.Dir = root
	cmd.Env = env
	out, err = cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	written, err := adapters.NewSelectionFileAdapter().Read(selection)
	require.NoError(t, err)
	require.Equal(t, "0.5.1+build.294", written.APIVersion)
	require.True(t, written.ModernLoom)
}
