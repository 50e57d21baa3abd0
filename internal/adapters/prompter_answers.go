package adapters

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"fabric-scaffold/internal/ports"
	"fabric-scaffold/internal/types"
)

// AnswersFileAdapter answers questions from a YAML or TOML map of slot to
// value, using the question default for slots the file leaves out. An invalid
// answer fails the run instead of asking again.
type AnswersFileAdapter struct {
	answers map[types.Slot]string
}

func NewAnswersFileAdapter(path string) (AnswersFileAdapter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AnswersFileAdapter{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("answers file not found").
			WithCause(err)
	}
	var raw map[string]string
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return AnswersFileAdapter{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to parse answers toml").
				WithCause(err)
		}
		return NewAnswersAdapter(raw), nil
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return AnswersFileAdapter{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse answers yaml").
			WithCause(err)
	}
	return NewAnswersAdapter(raw), nil
}

func NewAnswersAdapter(raw map[string]string) AnswersFileAdapter {
	answers := make(map[types.Slot]string, len(raw))
	for key, value := range raw {
		answers[types.Slot(strings.TrimSpace(key))] = value
	}
	return AnswersFileAdapter{answers: answers}
}

func (a AnswersFileAdapter) Ask(ctx context.Context, question ports.Question) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	answer, ok := a.answers[question.Slot]
	if !ok || strings.TrimSpace(answer) == "" {
		answer = question.Default
	}
	value, err := pickChoice(question, strings.TrimSpace(answer))
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid answer for " + string(question.Slot)).
			WithCause(err)
	}
	if question.Validate != nil {
		if err := question.Validate(value); err != nil {
			return "", err
		}
	}
	return value, nil
}

var _ ports.PrompterPort = AnswersFileAdapter{}
