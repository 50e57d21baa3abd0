package app

import (
	"os"

	"fabric-scaffold/internal/adapters"
	"fabric-scaffold/internal/core"
	"fabric-scaffold/internal/policies"
	"fabric-scaffold/internal/ports"
	"fabric-scaffold/internal/types"
)

type Service struct {
	Catalogs        ports.CatalogPort
	SnapshotWriter  ports.CatalogSnapshotWriterPort
	SelectionWriter ports.SelectionWriterPort
	SelectionReader ports.SelectionReaderPort
	Prompter        ports.PrompterPort
	Metadata        policies.MetadataPolicy
	Rules           core.CompatibilityRules
}

func NewService() Service {
	selection := adapters.NewSelectionFileAdapter()
	return Service{
		Catalogs:        adapters.NewCatalogHTTPAdapter(types.DefaultCatalogEndpoints(), 0),
		SnapshotWriter:  adapters.NewCatalogSnapshotWriterAdapter(),
		SelectionWriter: selection,
		SelectionReader: selection,
		Prompter:        adapters.NewTerminalPrompterAdapter(os.Stdin, os.Stdout),
		Metadata:        policies.NewMetadataPolicy(),
		Rules:           core.DefaultCompatibilityRules(),
	}
}
