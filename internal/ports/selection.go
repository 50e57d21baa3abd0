package ports

import "fabric-scaffold/internal/types"

type SelectionWriterPort interface {
	Write(path string, selection types.Selection) error
}

type SelectionReaderPort interface {
	Read(path string) (types.Selection, error)
}
