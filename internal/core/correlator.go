package core

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"fabric-scaffold/internal/types"
)

const apiSource = "fabric api releases"

// ErrNotARelease marks an API file label without a leading game version
// tag. Such files are not offered as releases.
var ErrNotARelease = errors.New("label has no game version tag")

var (
	apiTagPattern     = regexp.MustCompile(`^\[([^\]]+)\]`)
	apiBuildPattern   = regexp.MustCompile(`(?i)(?:\bbuild\s+|\+build\.)(\d+)`)
	apiVersionPattern = regexp.MustCompile(`\d+(?:\.\d+)+(?:-[0-9A-Za-z.]+)?`)
)

// ParseAPILabel extracts the game version tag, the API version and the
// build counter from a display label such as
// "[1.15.2] Fabric API 0.5.1 build 295". The version and build are optional
// here; callers that need them check HasBuild and Version.
func ParseAPILabel(label string) (types.APIRelease, error) {
	trimmed := strings.TrimSpace(label)
	if !strings.HasPrefix(trimmed, "[") {
		return types.APIRelease{}, ErrNotARelease
	}
	tag := apiTagPattern.FindStringSubmatch(trimmed)
	if len(tag) != 2 || strings.TrimSpace(tag[1]) == "" {
		return types.APIRelease{}, types.ParseError(apiSource, "malformed game version tag in "+strconv.Quote(label), nil)
	}
	release := types.APIRelease{
		Label:       label,
		GameVersion: strings.TrimSpace(tag[1]),
	}
	rest := trimmed[len(tag[0]):]
	versionText := rest
	if loc := apiBuildPattern.FindStringSubmatchIndex(rest); loc != nil {
		build, err := strconv.Atoi(rest[loc[2]:loc[3]])
		if err != nil {
			return types.APIRelease{}, types.ParseError(apiSource, "invalid build number in "+strconv.Quote(label), err)
		}
		release.Build = build
		release.HasBuild = true
		versionText = rest[:loc[0]]
	}
	if versions := apiVersionPattern.FindAllString(versionText, -1); len(versions) > 0 {
		release.Version = versions[len(versions)-1]
	}
	return release, nil
}

// Correlate parses the API file labels, drops the ones that are not
// releases, assigns each release its position in the game catalog and
// returns them ordered by correlation ascending then build descending.
func Correlate(games []types.GameVersion, labels []string) ([]types.APIRelease, error) {
	positions := gamePositions(games)
	releases := make([]types.APIRelease, 0, len(labels))
	for _, label := range labels {
		release, err := ParseAPILabel(label)
		if errors.Is(err, ErrNotARelease) {
			continue
		}
		if err != nil {
			return nil, err
		}
		release.Correlation = correlationIndex(positions, len(games), release.GameVersion)
		releases = append(releases, release)
	}
	if err := sortAPIReleases(releases); err != nil {
		return nil, err
	}
	return releases, nil
}

// correlationIndex is the tag's catalog position, or catalogLen for a tag
// the catalog does not know, which sorts after every known release.
func correlationIndex(positions map[string]int, catalogLen int, gameVersion string) int {
	if pos, ok := positions[gameVersion]; ok {
		return pos
	}
	return catalogLen
}

func sortAPIReleases(releases []types.APIRelease) error {
	var sortErr error
	sort.SliceStable(releases, func(i, j int) bool {
		a, b := releases[i], releases[j]
		if a.Correlation != b.Correlation {
			return a.Correlation < b.Correlation
		}
		if !a.HasBuild || !b.HasBuild {
			if sortErr == nil {
				missing := a.Label
				if a.HasBuild {
					missing = b.Label
				}
				sortErr = types.ParseError(apiSource, "missing build number in "+strconv.Quote(missing), nil)
			}
			return false
		}
		return a.Build > b.Build
	})
	return sortErr
}

// CanonicalAPIVersion renders a release as "<version>+build.<n>".
func CanonicalAPIVersion(release types.APIRelease) (string, error) {
	if release.Version == "" || !release.HasBuild {
		return "", types.ParseError(apiSource, "cannot derive api version from "+strconv.Quote(release.Label), nil)
	}
	return fmt.Sprintf("%s+build.%d", release.Version, release.Build), nil
}

func gamePositions(games []types.GameVersion) map[string]int {
	positions := make(map[string]int, len(games))
	for i, game := range games {
		if _, ok := positions[game.Version]; ok {
			continue
		}
		positions[game.Version] = i
	}
	return positions
}
