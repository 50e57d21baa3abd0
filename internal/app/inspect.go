package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"fabric-scaffold/internal/core"
	"fabric-scaffold/internal/types"
)

// Inspect reads a written selection. With Verify set, the version answers
// are replayed against the current catalogs.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	path := strings.TrimSpace(req.SelectionPath)
	if path == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("selection path is required")
	}
	selection, err := s.SelectionReader.Read(path)
	if err != nil {
		return InspectResult{}, err
	}
	if !req.Verify {
		return InspectResult{Selection: selection}, nil
	}
	resolver, err := s.loadResolver(ctx)
	if err != nil {
		return InspectResult{}, err
	}
	if err := verifySelection(core.NewSession(resolver), selection); err != nil {
		return InspectResult{}, err
	}
	return InspectResult{Selection: selection, Verified: true}, nil
}

func verifySelection(session *core.Session, selection types.Selection) error {
	answers := []struct {
		slot  types.Slot
		value string
	}{
		{types.SlotGameVersion, selection.GameVersion},
		{types.SlotAPIRelease, selection.APIVersion},
		{types.SlotYarnMapping, selection.YarnMappings},
		{types.SlotLoomVersion, selection.LoomVersion},
		{types.SlotLoaderVersion, selection.LoaderVersion},
	}
	for _, answer := range answers {
		if err := session.Set(answer.slot, answer.value); err != nil {
			return err
		}
	}
	line, _ := session.LoomLine()
	if line.Modern() != selection.ModernLoom {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("modern_loom is %t but yarn %s selects the other loom line",
				selection.ModernLoom, selection.YarnMappings))
	}
	return nil
}
