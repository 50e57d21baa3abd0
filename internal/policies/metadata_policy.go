package policies

import (
	"net/url"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"fabric-scaffold/internal/types"
)

const DefaultModVersion = "0.1.0"

// MetadataPolicy validates the free-form mod metadata answers.
type MetadataPolicy struct {
	licenses map[string]struct{}
}

func NewMetadataPolicy() MetadataPolicy {
	licenses := make(map[string]struct{}, len(types.Licenses))
	for _, license := range types.Licenses {
		licenses[license.Value] = struct{}{}
	}
	return MetadataPolicy{licenses: licenses}
}

func (p MetadataPolicy) Validate(slot types.Slot, value string) error {
	switch slot {
	case types.SlotModName:
		return requireText(value, "The mod name may not be blank")
	case types.SlotModID:
		return requireText(value, "The mod id may not be blank")
	case types.SlotDescription:
		return requireText(value, "The description may not be blank")
	case types.SlotAuthor:
		return requireText(value, "Author may not be blank")
	case types.SlotLicenseAuthor:
		return requireText(value, "Name may not be blank")
	case types.SlotModVersion:
		if _, err := semver.StrictNewVersion(strings.TrimSpace(value)); err != nil {
			return invalid("Please format your version according to SemVer")
		}
	case types.SlotHomepage, types.SlotSources:
		if strings.TrimSpace(value) != "" && !isValidURL(value) {
			return invalid("Please enter a valid URL or leave it blank")
		}
	case types.SlotLicense:
		if _, ok := p.licenses[strings.TrimSpace(value)]; !ok {
			return invalid("Please select one of the listed licenses")
		}
	}
	return nil
}

// AsksLicenseAuthor reports whether the license needs a name on it.
func (p MetadataPolicy) AsksLicenseAuthor(license string) bool {
	return strings.TrimSpace(license) != types.LicenseUnlicense
}

func requireText(value string, msg string) error {
	if strings.TrimSpace(value) == "" {
		return invalid(msg)
	}
	return nil
}

func isValidURL(value string) bool {
	parsed, err := url.Parse(strings.TrimSpace(value))
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && (parsed.Host != "" || parsed.Opaque != "")
}

func invalid(msg string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(msg)
}
