package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"fabric-scaffold/internal/core"
	"fabric-scaffold/internal/types"
)

// Versions reports the defaults the interview would offer for a game
// version without asking anything. An empty game version means the newest
// stable one; an empty Yarn mapping means the first allowed one.
func (s Service) Versions(ctx context.Context, req VersionsRequest) (VersionsResult, error) {
	resolver, err := s.loadResolver(ctx)
	if err != nil {
		return VersionsResult{}, err
	}
	game := strings.TrimSpace(req.GameVersion)
	if game == "" {
		fallback, err := resolver.DefaultGameVersion()
		if err != nil {
			return VersionsResult{}, err
		}
		game = fallback.Version
	}
	if !resolver.HasGameVersion(game) {
		return VersionsResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown minecraft version %q", game))
	}

	session := core.NewSession(resolver)
	if err := session.Set(types.SlotGameVersion, game); err != nil {
		return VersionsResult{}, err
	}
	release, err := session.DefaultAPIRelease()
	if err != nil {
		return VersionsResult{}, err
	}
	apiVersion, err := core.CanonicalAPIVersion(release)
	if err != nil {
		return VersionsResult{}, err
	}
	mappings, err := session.YarnChoices()
	if err != nil {
		return VersionsResult{}, err
	}
	mapping := strings.TrimSpace(req.YarnMapping)
	if mapping == "" {
		mapping = mappings[0].Version
	}
	if err := session.Set(types.SlotYarnMapping, mapping); err != nil {
		return VersionsResult{}, err
	}
	line, _ := session.LoomLine()
	looms, err := session.LoomChoices()
	if err != nil {
		return VersionsResult{}, err
	}
	loom, err := session.DefaultLoom()
	if err != nil {
		return VersionsResult{}, err
	}
	loader, err := session.DefaultLoader()
	if err != nil {
		return VersionsResult{}, err
	}
	return VersionsResult{
		GameVersion:   game,
		APIRelease:    release,
		APIVersion:    apiVersion,
		YarnMappings:  mappings,
		YarnMapping:   mapping,
		LoomLine:      line,
		LoomVersions:  looms,
		LoomVersion:   loom.Version,
		LoaderVersion: loader.Version,
	}, nil
}
