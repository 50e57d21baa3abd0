package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"fabric-scaffold/internal/types"
)

// slotPrerequisites lists the slots that must be answered before a slot
// may be written or its choices queried.
var slotPrerequisites = map[types.Slot][]types.Slot{
	types.SlotAPIRelease:    {types.SlotGameVersion},
	types.SlotYarnMapping:   {types.SlotGameVersion},
	types.SlotLoomVersion:   {types.SlotYarnMapping},
	types.SlotLicenseAuthor: {types.SlotAuthor, types.SlotLicense},
}

var requiredSlots = []types.Slot{
	types.SlotModName,
	types.SlotModID,
	types.SlotDescription,
	types.SlotModVersion,
	types.SlotAuthor,
	types.SlotLicense,
	types.SlotGameVersion,
	types.SlotAPIRelease,
	types.SlotYarnMapping,
	types.SlotLoomVersion,
	types.SlotLoaderVersion,
}

// Session accumulates the answers of one scaffolding run. Every slot is
// written at most once.
type Session struct {
	resolver   *Resolver
	answers    map[types.Slot]string
	apiRelease types.APIRelease
	yarn       types.YarnMapping
	loomLine   types.LoomLine
}

func NewSession(resolver *Resolver) *Session {
	return &Session{
		resolver: resolver,
		answers:  map[types.Slot]string{},
	}
}

func (s *Session) Value(slot types.Slot) (string, bool) {
	value, ok := s.answers[slot]
	return value, ok
}

// Set records the answer for slot. Catalog-backed slots only accept values
// the resolver currently allows.
func (s *Session) Set(slot types.Slot, value string) error {
	if _, ok := s.answers[slot]; ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeAlreadyExists).
			WithMsg(fmt.Sprintf("%s is already answered", slot))
	}
	if err := s.requirePrior(slot); err != nil {
		return err
	}
	value = strings.TrimSpace(value)
	switch slot {
	case types.SlotGameVersion:
		if !s.resolver.HasGameVersion(value) {
			return invalidChoice(slot, value)
		}
	case types.SlotAPIRelease:
		release, ok := s.findAPIRelease(value)
		if !ok {
			return invalidChoice(slot, value)
		}
		s.apiRelease = release
		value = release.Label
	case types.SlotYarnMapping:
		mapping, err := s.findYarnMapping(value)
		if err != nil {
			return err
		}
		line, err := s.resolver.LoomLineFor(mapping)
		if err != nil {
			return err
		}
		s.yarn = mapping
		s.loomLine = line
	case types.SlotLoomVersion:
		allowed, err := s.resolver.AllowedLoomVersions(s.yarn)
		if err != nil {
			return err
		}
		if !containsLoom(allowed, value) {
			return invalidChoice(slot, value)
		}
	case types.SlotLoaderVersion:
		loaders, err := s.resolver.LoaderReleases()
		if err != nil {
			return err
		}
		if !containsLoader(loaders, value) {
			return invalidChoice(slot, value)
		}
	}
	s.answers[slot] = value
	return nil
}

func (s *Session) APIReleaseChoices() ([]types.APIRelease, error) {
	if err := s.requirePrior(types.SlotAPIRelease); err != nil {
		return nil, err
	}
	return s.resolver.APIReleases(), nil
}

func (s *Session) DefaultAPIRelease() (types.APIRelease, error) {
	if err := s.requirePrior(types.SlotAPIRelease); err != nil {
		return types.APIRelease{}, err
	}
	return s.resolver.DefaultAPIRelease(s.answers[types.SlotGameVersion])
}

func (s *Session) YarnChoices() ([]types.YarnMapping, error) {
	if err := s.requirePrior(types.SlotYarnMapping); err != nil {
		return nil, err
	}
	return s.resolver.AllowedYarnMappings(s.answers[types.SlotGameVersion])
}

func (s *Session) LoomChoices() ([]types.LoomVersion, error) {
	if err := s.requirePrior(types.SlotLoomVersion); err != nil {
		return nil, err
	}
	return s.resolver.AllowedLoomVersions(s.yarn)
}

func (s *Session) DefaultLoom() (types.LoomVersion, error) {
	if err := s.requirePrior(types.SlotLoomVersion); err != nil {
		return types.LoomVersion{}, err
	}
	return s.resolver.DefaultLoomVersion(s.yarn)
}

// LoomLine reports the line derived from the chosen Yarn mapping.
func (s *Session) LoomLine() (types.LoomLine, bool) {
	return s.loomLine, s.loomLine != nil
}

func (s *Session) LoaderChoices() ([]types.LoaderRelease, error) {
	return s.resolver.LoaderReleases()
}

// DefaultLoader is the newest loader release.
func (s *Session) DefaultLoader() (types.LoaderRelease, error) {
	loaders, err := s.resolver.LoaderReleases()
	if err != nil {
		return types.LoaderRelease{}, err
	}
	return loaders[0], nil
}

// Selection builds the handoff object once every required slot is set.
func (s *Session) Selection() (types.Selection, error) {
	for _, slot := range requiredSlots {
		if _, ok := s.answers[slot]; !ok {
			return types.Selection{}, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("selection incomplete: %s is not answered", slot))
		}
	}
	apiVersion, err := CanonicalAPIVersion(s.apiRelease)
	if err != nil {
		return types.Selection{}, err
	}
	return types.Selection{
		Mod: types.ModMetadata{
			Name:          s.answers[types.SlotModName],
			ID:            s.answers[types.SlotModID],
			Description:   s.answers[types.SlotDescription],
			Version:       s.answers[types.SlotModVersion],
			Author:        s.answers[types.SlotAuthor],
			Homepage:      s.answers[types.SlotHomepage],
			Sources:       s.answers[types.SlotSources],
			License:       s.answers[types.SlotLicense],
			LicenseAuthor: s.answers[types.SlotLicenseAuthor],
		},
		GameVersion:   s.answers[types.SlotGameVersion],
		APIVersion:    apiVersion,
		YarnMappings:  s.yarn.Version,
		LoomVersion:   s.answers[types.SlotLoomVersion],
		ModernLoom:    s.loomLine.Modern(),
		LoaderVersion: s.answers[types.SlotLoaderVersion],
	}, nil
}

func (s *Session) requirePrior(slot types.Slot) error {
	for _, prior := range slotPrerequisites[slot] {
		if _, ok := s.answers[prior]; !ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("%s must be answered before %s", prior, slot))
		}
	}
	return nil
}

// findAPIRelease accepts either the display label or the canonical
// "<version>+build.<n>" form.
func (s *Session) findAPIRelease(value string) (types.APIRelease, bool) {
	for _, release := range s.resolver.APIReleases() {
		if release.Label == value {
			return release, true
		}
		if canonical, err := CanonicalAPIVersion(release); err == nil && canonical == value {
			return release, true
		}
	}
	return types.APIRelease{}, false
}

func (s *Session) findYarnMapping(value string) (types.YarnMapping, error) {
	allowed, err := s.resolver.AllowedYarnMappings(s.answers[types.SlotGameVersion])
	if err != nil {
		return types.YarnMapping{}, err
	}
	for _, mapping := range allowed {
		if mapping.Version == value {
			return mapping, nil
		}
	}
	return types.YarnMapping{}, invalidChoice(types.SlotYarnMapping, value)
}

func invalidChoice(slot types.Slot, value string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("%q is not a valid choice for %s", value, slot))
}

func containsLoom(versions []types.LoomVersion, value string) bool {
	for _, version := range versions {
		if version.Version == value {
			return true
		}
	}
	return false
}

func containsLoader(releases []types.LoaderRelease, value string) bool {
	for _, release := range releases {
		if release.Version == value {
			return true
		}
	}
	return false
}
