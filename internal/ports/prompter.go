package ports

import (
	"context"

	"fabric-scaffold/internal/types"
)

type Choice struct {
	Label string
	Value string
}

// Question is one step of the interview. Choices is empty for free-text
// questions. Validate, when set, rejects unacceptable answers.
type Question struct {
	Slot     types.Slot
	Message  string
	Default  string
	Choices  []Choice
	Validate func(value string) error
}

// PrompterPort collects one answer per question, blocking until an
// acceptable value is given.
type PrompterPort interface {
	Ask(ctx context.Context, question Question) (string, error)
}
