package report

import "regexp"

// lineURIPattern matches the identifier formats the directory stores:
// "tel:+<digits>", "+<digits>;ext=<digits>", "<digits>;<tag>" and plain
// digits. Group 1 is the DDI, group 2 the extension, group 3 an optional
// trailing tag.
var lineURIPattern = regexp.MustCompile(`^(?:tel:)?(?:\+)?(\d+)(?:;ext=(\d+))?(?:;([\w-]+))?$`)

// LineURI holds the structured fields parsed out of a raw telephony
// identifier. Tag is captured for pattern completeness but is not surfaced in
// assignment records.
type LineURI struct {
	Raw string
	DDI string
	Ext string
	Tag string
}

// ParseLineURI extracts the DDI and extension from a raw identifier string.
// Input that does not match the pattern, including empty input, yields empty
// fields rather than an error; the raw string is preserved either way.
func ParseLineURI(raw string) LineURI {
	parsed := LineURI{Raw: raw}
	if raw == "" {
		return parsed
	}

	m := lineURIPattern.FindStringSubmatch(raw)
	if m == nil {
		return parsed
	}

	parsed.DDI = m[1]
	parsed.Ext = m[2]
	parsed.Tag = m[3]
	return parsed
}
