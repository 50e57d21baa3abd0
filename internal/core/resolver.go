package core

import (
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"fabric-scaffold/internal/types"
)

// CompatibilityRules holds the thresholds that decide which Loom line a
// Yarn mapping needs and which Loom version to recommend on each line.
type CompatibilityRules struct {
	BaselineGameVersion string
	BaselineYarnBuild   int
	LegacyLoomCeiling   string
	ModernLoomDefault   string
	LegacyLoomDefault   string
}

func DefaultCompatibilityRules() CompatibilityRules {
	return CompatibilityRules{
		BaselineGameVersion: "1.14.4",
		BaselineYarnBuild:   14,
		LegacyLoomCeiling:   "0.2.6-SNAPSHOT",
		ModernLoomDefault:   "0.2.6-SNAPSHOT",
		LegacyLoomDefault:   "0.2.5-SNAPSHOT",
	}
}

// Resolver answers compatibility queries against one set of catalogs.
// It is not safe for concurrent use.
type Resolver struct {
	catalogs  types.Catalogs
	rules     CompatibilityRules
	releases  []types.APIRelease
	positions map[string]int
	cache     *versionCache
}

func NewResolver(catalogs types.Catalogs, rules CompatibilityRules) (*Resolver, error) {
	if err := validateGameCatalog(catalogs.GameVersions); err != nil {
		return nil, err
	}
	cache := newVersionCache()
	if _, err := cache.semver(rules.LegacyLoomCeiling); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid legacy loom ceiling " + strconv.Quote(rules.LegacyLoomCeiling)).
			WithCause(err)
	}
	releases, err := Correlate(catalogs.GameVersions, catalogs.APILabels)
	if err != nil {
		return nil, err
	}
	return &Resolver{
		catalogs:  catalogs,
		rules:     rules,
		releases:  releases,
		positions: gamePositions(catalogs.GameVersions),
		cache:     cache,
	}, nil
}

func validateGameCatalog(games []types.GameVersion) error {
	seen := map[string]struct{}{}
	for _, game := range games {
		version := strings.TrimSpace(game.Version)
		if version == "" {
			return types.ParseError("game versions", "empty game version identifier", nil)
		}
		if _, ok := seen[version]; ok {
			return types.ParseError("game versions", "duplicate game version "+strconv.Quote(version), nil)
		}
		seen[version] = struct{}{}
	}
	return nil
}

func (r *Resolver) Rules() CompatibilityRules {
	return r.rules
}

func (r *Resolver) GameVersions() []types.GameVersion {
	return append([]types.GameVersion(nil), r.catalogs.GameVersions...)
}

func (r *Resolver) HasGameVersion(version string) bool {
	_, ok := r.positions[version]
	return ok
}

// DefaultGameVersion is the newest stable game version, or the newest of
// any kind when the catalog has no stable entry.
func (r *Resolver) DefaultGameVersion() (types.GameVersion, error) {
	if len(r.catalogs.GameVersions) == 0 {
		return types.GameVersion{}, types.NoCompatibleVersionError("game versions", "game version catalog is empty")
	}
	for _, game := range r.catalogs.GameVersions {
		if game.Stable {
			return game, nil
		}
	}
	return r.catalogs.GameVersions[0], nil
}

// APIReleases returns the correlated releases in resolver order.
func (r *Resolver) APIReleases() []types.APIRelease {
	return append([]types.APIRelease(nil), r.releases...)
}

// DefaultAPIRelease picks the oldest release that is not older than the
// game version: the first release, in resolver order, whose correlation is
// at or past the game's catalog position. An unknown game version counts
// as position 0.
func (r *Resolver) DefaultAPIRelease(gameVersion string) (types.APIRelease, error) {
	if len(r.releases) == 0 {
		return types.APIRelease{}, types.NoCompatibleVersionError(apiSource, "no fabric api releases available")
	}
	position := r.positions[gameVersion]
	for _, release := range r.releases {
		if release.Correlation >= position {
			return release, nil
		}
	}
	return r.releases[0], nil
}

// AllowedYarnMappings returns the mappings built for gameVersion in
// catalog order.
func (r *Resolver) AllowedYarnMappings(gameVersion string) ([]types.YarnMapping, error) {
	var allowed []types.YarnMapping
	for _, mapping := range r.catalogs.YarnMappings {
		if mapping.GameVersion == gameVersion {
			allowed = append(allowed, mapping)
		}
	}
	if len(allowed) == 0 {
		return nil, types.NoCompatibleVersionError("yarn mappings", "no yarn mappings for game version "+strconv.Quote(gameVersion))
	}
	return allowed, nil
}

// LoomLineFor decides the Loom line a mapping needs. Mappings for a game
// version past the baseline, or for the baseline itself with a build past
// the baseline build, need the modern line.
func (r *Resolver) LoomLineFor(mapping types.YarnMapping) (types.LoomLine, error) {
	cmp, err := r.compareGameVersions(mapping.GameVersion, r.rules.BaselineGameVersion)
	if err != nil {
		return nil, err
	}
	if cmp > 0 || (cmp == 0 && mapping.Build > r.rules.BaselineYarnBuild) {
		return types.ModernLoomLine{}, nil
	}
	return types.LegacyLoomLine{Ceiling: r.rules.LegacyLoomCeiling}, nil
}

// AllowedLoomVersions lists the Loom versions usable with mapping, newest
// first.
func (r *Resolver) AllowedLoomVersions(mapping types.YarnMapping) ([]types.LoomVersion, error) {
	line, err := r.LoomLineFor(mapping)
	if err != nil {
		return nil, err
	}
	return r.loomVersionsForLine(line)
}

func (r *Resolver) loomVersionsForLine(line types.LoomLine) ([]types.LoomVersion, error) {
	sorted, err := sortLoomDescending(r.catalogs.LoomVersions, r.cache)
	if err != nil {
		return nil, err
	}
	var allowed []types.LoomVersion
	switch l := line.(type) {
	case types.ModernLoomLine:
		allowed = sorted
	case types.LegacyLoomLine:
		for _, version := range sorted {
			cmp, err := r.cache.compare(version.Version, l.Ceiling)
			if err != nil {
				return nil, types.ParseError("loom versions", "invalid loom version "+version.Version, err)
			}
			if cmp < 0 {
				allowed = append(allowed, version)
			}
		}
	}
	if len(allowed) == 0 {
		return nil, types.NoCompatibleVersionError("loom versions", "no loom version is compatible with the selected yarn mappings")
	}
	return allowed, nil
}

// DefaultLoomVersion returns the recommended Loom version for the mapping's
// line, or the newest allowed version when the recommendation is not
// published.
func (r *Resolver) DefaultLoomVersion(mapping types.YarnMapping) (types.LoomVersion, error) {
	line, err := r.LoomLineFor(mapping)
	if err != nil {
		return types.LoomVersion{}, err
	}
	allowed, err := r.loomVersionsForLine(line)
	if err != nil {
		return types.LoomVersion{}, err
	}
	recommended := r.rules.LegacyLoomDefault
	if line.Modern() {
		recommended = r.rules.ModernLoomDefault
	}
	for _, version := range allowed {
		if version.Version == recommended {
			return version, nil
		}
	}
	return allowed[0], nil
}

func (r *Resolver) LoaderReleases() ([]types.LoaderRelease, error) {
	if len(r.catalogs.LoaderReleases) == 0 {
		return nil, types.NoCompatibleVersionError("loader versions", "no fabric loader releases available")
	}
	return append([]types.LoaderRelease(nil), r.catalogs.LoaderReleases...), nil
}

// compareGameVersions orders game versions by semantic version when both
// parse, and by catalog position otherwise (snapshots such as "20w14a").
func (r *Resolver) compareGameVersions(a string, b string) (int, error) {
	if cmp, err := r.cache.compare(a, b); err == nil {
		return cmp, nil
	}
	posA, okA := r.positions[a]
	posB, okB := r.positions[b]
	if !okA || !okB {
		return 0, types.ParseError("yarn mappings", "cannot order game version "+strconv.Quote(a)+" against "+strconv.Quote(b), nil)
	}
	// Lower positions are newer.
	switch {
	case posA < posB:
		return 1, nil
	case posA > posB:
		return -1, nil
	default:
		return 0, nil
	}
}
