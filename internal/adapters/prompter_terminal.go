package adapters

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"fabric-scaffold/internal/ports"
	"fabric-scaffold/internal/shared"
)

// TerminalPrompterAdapter asks questions on a line-oriented terminal.
// Invalid answers are reported and the question is asked again.
type TerminalPrompterAdapter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewTerminalPrompterAdapter(in io.Reader, out io.Writer) *TerminalPrompterAdapter {
	return &TerminalPrompterAdapter{in: bufio.NewReader(in), out: out}
}

func (a *TerminalPrompterAdapter) Ask(ctx context.Context, question ports.Question) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		a.render(question)
		line, readErr := a.in.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to read answer").
				WithCause(readErr)
		}
		answer := strings.TrimSpace(line)
		if answer == "" {
			answer = question.Default
		}
		value, err := pickChoice(question, answer)
		if err == nil && question.Validate != nil {
			err = question.Validate(value)
		}
		if err == nil {
			return value, nil
		}
		if readErr == io.EOF {
			return "", err
		}
		fmt.Fprintf(a.out, ">> %s\n", shared.ErrorMessage(err))
	}
}

func (a *TerminalPrompterAdapter) render(question ports.Question) {
	if len(question.Choices) == 0 {
		if question.Default != "" {
			fmt.Fprintf(a.out, "? %s (%s) ", question.Message, question.Default)
			return
		}
		fmt.Fprintf(a.out, "? %s ", question.Message)
		return
	}
	fmt.Fprintf(a.out, "? %s\n", question.Message)
	for i, choice := range question.Choices {
		marker := " "
		if choice.Value == question.Default {
			marker = "*"
		}
		fmt.Fprintf(a.out, " %s %2d) %s\n", marker, i+1, shared.DisplayOr(choice.Label, choice.Value))
	}
	fmt.Fprint(a.out, "  Answer: ")
}

// pickChoice maps an answer to a choice value. Answers may be the 1-based
// index, the value or the label. Free-text questions pass through.
func pickChoice(question ports.Question, answer string) (string, error) {
	if len(question.Choices) == 0 {
		return answer, nil
	}
	if index, err := strconv.Atoi(answer); err == nil && index >= 1 && index <= len(question.Choices) {
		return question.Choices[index-1].Value, nil
	}
	for _, choice := range question.Choices {
		if answer == choice.Value || answer == choice.Label {
			return choice.Value, nil
		}
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("%q is not one of the listed choices", answer))
}

var _ ports.PrompterPort = (*TerminalPrompterAdapter)(nil)
