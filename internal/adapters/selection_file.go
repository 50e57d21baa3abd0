package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"fabric-scaffold/internal/ports"
	"fabric-scaffold/internal/types"
)

// SelectionFileAdapter stores the resolved selection as YAML for the
// project writer.
type SelectionFileAdapter struct{}

func NewSelectionFileAdapter() SelectionFileAdapter {
	return SelectionFileAdapter{}
}

func (a SelectionFileAdapter) Write(path string, selection types.Selection) error {
	if strings.TrimSpace(path) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("selection output path is required")
	}
	data, err := yaml.Marshal(selection)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal selection").
			WithCause(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create selection directory").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write selection").
			WithCause(err)
	}
	return nil
}

func (a SelectionFileAdapter) Read(path string) (types.Selection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Selection{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("selection file not found").
			WithCause(err)
	}
	var selection types.Selection
	if err := yaml.Unmarshal(data, &selection); err != nil {
		return types.Selection{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse selection yaml").
			WithCause(err)
	}
	return selection, nil
}

var _ ports.SelectionWriterPort = SelectionFileAdapter{}
var _ ports.SelectionReaderPort = SelectionFileAdapter{}
