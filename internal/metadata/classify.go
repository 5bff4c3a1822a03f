package metadata

import (
	"regexp"

	"github.com/CodeNinja0929/PDF-Metadata-Extractor/constants"
)

// classificationRules are evaluated in order; the first matching rule wins.
// The patterns are case-insensitive substring matches and are not mutually
// exclusive, so order is significant: a field containing both "date" and
// "yes" classifies as checkbox. The rule set is preserved exactly as
// shipped; classification is advisory and users may override it.
var classificationRules = []struct {
	fieldType constants.FieldType
	pattern   *regexp.Regexp
}{
	{constants.FieldTypeCheckbox, regexp.MustCompile(`(?i)yes|no|do|does|do not|does not`)},
	{constants.FieldTypeDate, regexp.MustCompile(`(?i)date|dob|birth`)},
	{constants.FieldTypeDropdown, regexp.MustCompile(`(?i)select|dropdown`)},
}

// Classify assigns a field type from the reconstructed text. Every input,
// including the empty string, falls through to the default "text".
func Classify(text string) constants.FieldType {
	for _, rule := range classificationRules {
		if rule.pattern.MatchString(text) {
			return rule.fieldType
		}
	}
	return constants.FieldTypeText
}

// ClassifyFields applies Classify to every field in place. It runs once
// after normalization; later user edits are never re-classified.
func ClassifyFields(fields []Field) {
	for i := range fields {
		fields[i].FieldType = Classify(fields[i].Text)
	}
}
