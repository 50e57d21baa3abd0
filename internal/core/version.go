package core

import (
	"sort"

	"github.com/Masterminds/semver/v3"

	"fabric-scaffold/internal/types"
)

// versionCache memoizes parsed semantic versions so repeated comparisons
// during sorting and filtering parse each identifier once.
type versionCache struct {
	parsed map[string]*semver.Version
}

func newVersionCache() *versionCache {
	return &versionCache{parsed: map[string]*semver.Version{}}
}

// semver returns a parsed version, caching the result.
func (c *versionCache) semver(value string) (*semver.Version, error) {
	if parsed, ok := c.parsed[value]; ok {
		return parsed, nil
	}
	parsed, err := semver.NewVersion(value)
	if err != nil {
		return nil, err
	}
	c.parsed[value] = parsed
	return parsed, nil
}

// compare returns -1, 0, or 1 comparing two identifiers by semantic
// version precedence, pre-release tags included.
func (c *versionCache) compare(a string, b string) (int, error) {
	v1, err := c.semver(a)
	if err != nil {
		return 0, err
	}
	v2, err := c.semver(b)
	if err != nil {
		return 0, err
	}
	return v1.Compare(v2), nil
}

// sortLoomDescending orders Loom versions newest first. Equal versions keep
// catalog order.
func sortLoomDescending(versions []types.LoomVersion, cache *versionCache) ([]types.LoomVersion, error) {
	for _, version := range versions {
		if _, err := cache.semver(version.Version); err != nil {
			return nil, types.ParseError("loom versions", "invalid loom version "+version.Version, err)
		}
	}
	out := append([]types.LoomVersion(nil), versions...)
	sort.SliceStable(out, func(i, j int) bool {
		cmp, _ := cache.compare(out[i].Version, out[j].Version)
		return cmp > 0
	})
	return out, nil
}
