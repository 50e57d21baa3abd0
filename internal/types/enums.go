package types

type Slot string

const (
	SlotModName       Slot = "mod_name"
	SlotModID         Slot = "mod_id"
	SlotDescription   Slot = "mod_description"
	SlotModVersion    Slot = "mod_version"
	SlotAuthor        Slot = "author"
	SlotHomepage      Slot = "homepage"
	SlotSources       Slot = "sources"
	SlotLicense       Slot = "license"
	SlotLicenseAuthor Slot = "license_author"
	SlotGameVersion   Slot = "minecraft_version"
	SlotAPIRelease    Slot = "fabric_api_version"
	SlotYarnMapping   Slot = "yarn_mappings"
	SlotLoomVersion   Slot = "loom_version"
	SlotLoaderVersion Slot = "loader_version"
)

type License struct {
	Name  string
	Value string
}

const LicenseUnlicense = "unlicense"

var Licenses = []License{
	{Name: "Apache 2.0", Value: "Apache-2.0"},
	{Name: "MIT", Value: "MIT"},
	{Name: "Mozilla Public License 2.0", Value: "MPL-2.0"},
	{Name: "BSD 2-Clause (FreeBSD) License", Value: "BSD-2-Clause-FreeBSD"},
	{Name: "BSD 3-Clause (NewBSD) License", Value: "BSD-3-Clause"},
	{Name: "Internet Systems Consortium (ISC) License", Value: "ISC"},
	{Name: "GNU AGPL 3.0", Value: "AGPL-3.0"},
	{Name: "GNU GPL 3.0", Value: "GPL-3.0"},
	{Name: "GNU LGPL 3.0", Value: "LGPL-3.0"},
	{Name: "Unlicense", Value: LicenseUnlicense},
	{Name: "No License (Copyrighted)", Value: "All-Rights-Reserved"},
}

const DefaultLicense = "MIT"
