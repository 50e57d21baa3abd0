package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"fabric-scaffold/internal/core"
	"fabric-scaffold/internal/policies"
	"fabric-scaffold/internal/ports"
	"fabric-scaffold/internal/types"
)

// Init runs the interview and writes the resulting selection.
func (s Service) Init(ctx context.Context, req InitRequest) (InitResult, error) {
	output := strings.TrimSpace(req.OutputPath)
	if output == "" {
		return InitResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("selection output path is required")
	}
	if s.Prompter == nil {
		return InitResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("no prompter configured")
	}
	resolver, err := s.loadResolver(ctx)
	if err != nil {
		return InitResult{}, err
	}
	session := core.NewSession(resolver)
	if err := s.askMetadata(ctx, session); err != nil {
		return InitResult{}, err
	}
	if err := s.askVersions(ctx, session, resolver); err != nil {
		return InitResult{}, err
	}
	selection, err := session.Selection()
	if err != nil {
		return InitResult{}, err
	}
	if err := s.SelectionWriter.Write(output, selection); err != nil {
		return InitResult{}, err
	}
	log.Info().
		Str("mod_id", selection.Mod.ID).
		Str("minecraft", selection.GameVersion).
		Str("loom", selection.LoomVersion).
		Str("output", output).
		Msg("selection written")
	return InitResult{OutputPath: output, Selection: selection}, nil
}

func (s Service) askMetadata(ctx context.Context, session *core.Session) error {
	questions := []ports.Question{
		s.metadataQuestion(types.SlotModName, "Name of your mod:", ""),
		s.metadataQuestion(types.SlotModID, "Mod id (this must be unique!):", ""),
		s.metadataQuestion(types.SlotDescription, "Mod description:", ""),
		s.metadataQuestion(types.SlotModVersion, "Mod version:", policies.DefaultModVersion),
		s.metadataQuestion(types.SlotAuthor, "Author:", ""),
		s.metadataQuestion(types.SlotHomepage, "Mod homepage:", ""),
		s.metadataQuestion(types.SlotSources, "Source code URL:", ""),
	}
	license := s.metadataQuestion(types.SlotLicense, "Select a license:", types.DefaultLicense)
	license.Choices = licenseChoices()
	questions = append(questions, license)

	for _, question := range questions {
		if _, err := s.ask(ctx, session, question); err != nil {
			return err
		}
	}

	chosen, _ := session.Value(types.SlotLicense)
	if !s.Metadata.AsksLicenseAuthor(chosen) {
		return nil
	}
	author, _ := session.Value(types.SlotAuthor)
	_, err := s.ask(ctx, session, s.metadataQuestion(types.SlotLicenseAuthor, "Name on license:", author))
	return err
}

func (s Service) askVersions(ctx context.Context, session *core.Session, resolver *core.Resolver) error {
	game, err := resolver.DefaultGameVersion()
	if err != nil {
		return err
	}
	if _, err := s.ask(ctx, session, ports.Question{
		Slot:    types.SlotGameVersion,
		Message: "Minecraft version:",
		Default: game.Version,
		Choices: gameChoices(resolver.GameVersions()),
	}); err != nil {
		return err
	}

	releases, err := session.APIReleaseChoices()
	if err != nil {
		return err
	}
	release, err := session.DefaultAPIRelease()
	if err != nil {
		return err
	}
	log.Debug().Str("api_release", release.Label).Int("correlation", release.Correlation).Msg("default api release")
	if _, err := s.ask(ctx, session, ports.Question{
		Slot:    types.SlotAPIRelease,
		Message: "Fabric API version:",
		Default: release.Label,
		Choices: apiChoices(releases),
	}); err != nil {
		return err
	}

	mappings, err := session.YarnChoices()
	if err != nil {
		return err
	}
	if _, err := s.ask(ctx, session, ports.Question{
		Slot:    types.SlotYarnMapping,
		Message: "Yarn mappings:",
		Default: mappings[0].Version,
		Choices: yarnChoices(mappings),
	}); err != nil {
		return err
	}

	looms, err := session.LoomChoices()
	if err != nil {
		return err
	}
	loom, err := session.DefaultLoom()
	if err != nil {
		return err
	}
	if line, ok := session.LoomLine(); ok {
		log.Debug().Bool("modern", line.Modern()).Str("default", loom.Version).Msg("loom line")
	}
	if _, err := s.ask(ctx, session, ports.Question{
		Slot:    types.SlotLoomVersion,
		Message: "Loom version:",
		Default: loom.Version,
		Choices: loomChoices(looms),
	}); err != nil {
		return err
	}

	loaders, err := session.LoaderChoices()
	if err != nil {
		return err
	}
	loader, err := session.DefaultLoader()
	if err != nil {
		return err
	}
	_, err = s.ask(ctx, session, ports.Question{
		Slot:    types.SlotLoaderVersion,
		Message: "Fabric Loader version:",
		Default: loader.Version,
		Choices: loaderChoices(loaders),
	})
	return err
}

// ask records the prompter's answer in the session. Session rejections
// are returned unchanged so callers see the coded error.
func (s Service) ask(ctx context.Context, session *core.Session, question ports.Question) (string, error) {
	answer, err := s.Prompter.Ask(ctx, question)
	if err != nil {
		return "", err
	}
	if err := session.Set(question.Slot, answer); err != nil {
		return "", err
	}
	return answer, nil
}

func (s Service) metadataQuestion(slot types.Slot, message string, fallback string) ports.Question {
	policy := s.Metadata
	return ports.Question{
		Slot:    slot,
		Message: message,
		Default: fallback,
		Validate: func(value string) error {
			return policy.Validate(slot, value)
		},
	}
}

func licenseChoices() []ports.Choice {
	choices := make([]ports.Choice, 0, len(types.Licenses))
	for _, license := range types.Licenses {
		choices = append(choices, ports.Choice{Label: license.Name, Value: license.Value})
	}
	return choices
}

func gameChoices(games []types.GameVersion) []ports.Choice {
	choices := make([]ports.Choice, 0, len(games))
	for _, game := range games {
		label := game.Version
		if !game.Stable {
			label += " (snapshot)"
		}
		choices = append(choices, ports.Choice{Label: label, Value: game.Version})
	}
	return choices
}

func apiChoices(releases []types.APIRelease) []ports.Choice {
	choices := make([]ports.Choice, 0, len(releases))
	for _, release := range releases {
		choices = append(choices, ports.Choice{Label: release.Label, Value: release.Label})
	}
	return choices
}

func yarnChoices(mappings []types.YarnMapping) []ports.Choice {
	choices := make([]ports.Choice, 0, len(mappings))
	for _, mapping := range mappings {
		choices = append(choices, ports.Choice{Label: mapping.Version, Value: mapping.Version})
	}
	return choices
}

func loomChoices(versions []types.LoomVersion) []ports.Choice {
	choices := make([]ports.Choice, 0, len(versions))
	for _, version := range versions {
		choices = append(choices, ports.Choice{Label: version.Version, Value: version.Version})
	}
	return choices
}

func loaderChoices(releases []types.LoaderRelease) []ports.Choice {
	choices := make([]ports.Choice, 0, len(releases))
	for _, release := range releases {
		label := release.Version
		if !release.Stable {
			label += " (unstable)"
		}
		choices = append(choices, ports.Choice{Label: label, Value: release.Version})
	}
	return choices
}
