package model

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind is the single-letter reference category of a tag.
type Kind string

// kindNames maps the conventional kind letters to their names.
var kindNames = map[Kind]string{
	"f": "figure",
	"t": "table",
	"e": "equation",
	"s": "section",
	"l": "listing",
	"a": "appendix",
}

// Label returns the title-cased name of the kind, e.g. "Figure".
// Unknown letters are labeled "Kind <letter>".
func (k Kind) Label() string {
	name, ok := kindNames[k]
	if !ok {
		return "Kind " + string(k)
	}
	return cases.Title(language.English).String(name)
}
