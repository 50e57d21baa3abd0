package types

// LoomLine is the outcome of the Yarn/Loom compatibility threshold. It is
// either LegacyLoomLine or ModernLoomLine.
type LoomLine interface {
	isLoomLine()
	Modern() bool
}

// LegacyLoomLine restricts Loom to versions strictly below Ceiling.
type LegacyLoomLine struct {
	Ceiling string
}

// ModernLoomLine allows every Loom version.
type ModernLoomLine struct{}

func (LegacyLoomLine) isLoomLine() {}
func (ModernLoomLine) isLoomLine() {}

func (LegacyLoomLine) Modern() bool { return false }
func (ModernLoomLine) Modern() bool { return true }
