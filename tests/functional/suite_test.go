package functional

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cucumber/godog"

	"fabric-scaffold/internal/types"
	"fabric-scaffold/tests/testutil"
)

type stateKeyType struct{}

var stateKey = stateKeyType{}

type testState struct {
	workDir   string
	binPath   string
	endpoints types.CatalogEndpoints
	stdout    string
	stderr    string
	exitCode  int
}

func getState(ctx context.Context) *testState {
	if s, ok := ctx.Value(stateKey).(*testState); ok {
		return s
	}
	return nil
}

func setState(ctx context.Context, s *testState) context.Context {
	return context.WithValue(ctx, stateKey, s)
}

func TestFeatures(t *testing.T) {
	binPath := os.Getenv("FABRIC_SCAFFOLD_TEST_BINARY")
	if binPath == "" {
		t.Skip("FABRIC_SCAFFOLD_TEST_BINARY not set; build cmd/fabric-scaffold and point it at the binary")
	}

	// go test runs from the package directory
	absBin, err := filepath.Abs(binPath)
	if err != nil {
		t.Fatalf("resolving binary path: %v", err)
	}
	endpoints := testutil.CatalogServer(t)

	opts := &godog.Options{
		Format:   "pretty",
		Paths:    []string{"features"},
		TestingT: t,
	}
	if tags := os.Getenv("FABRIC_SCAFFOLD_TEST_TAGS"); tags != "" {
		opts.Tags = tags
	}

	suite := godog.TestSuite{
		ScenarioInitializer: func(ctx *godog.ScenarioContext) {
			initializeScenario(ctx, absBin, endpoints)
		},
		Options: opts,
	}
	if suite.Run() != 0 {
		t.Fatal("functional tests failed")
	}
}

func initializeScenario(ctx *godog.ScenarioContext, binPath string, endpoints types.CatalogEndpoints) {
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		workDir, err := os.MkdirTemp("", "fabric-scaffold-functional-")
		if err != nil {
			return ctx, err
		}
		state := &testState{
			workDir:   workDir,
			binPath:   binPath,
			endpoints: endpoints,
		}
		return setState(ctx, state), nil
	})
	ctx.After(func(ctx context.Context, _ *godog.Scenario, err error) (context.Context, error) {
		if state := getState(ctx); state != nil {
			os.RemoveAll(state.workDir)
		}
		return ctx, err
	})

	ctx.Step(`^a clean workspace$`, aCleanWorkspace)
	ctx.Step(`^an answers file "([^"]*)" with:$`, anAnswersFileWith)

	ctx.Step(`^I run "([^"]*)"$`, iRun)

	ctx.Step(`^the exit code is (\d+)$`, theExitCodeIs)
	ctx.Step(`^the output contains "([^"]*)"$`, theOutputContains)
	ctx.Step(`^the output does not contain "([^"]*)"$`, theOutputDoesNotContain)
	ctx.Step(`^the error output contains "([^"]*)"$`, theErrorOutputContains)
	ctx.Step(`^the file "([^"]*)" exists$`, theFileExists)
	ctx.Step(`^the file "([^"]*)" does not exist$`, theFileDoesNotExist)
	ctx.Step(`^the file "([^"]*)" contains "([^"]*)"$`, theFileContains)
}
