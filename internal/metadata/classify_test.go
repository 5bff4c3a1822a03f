package metadata

import (
	"testing"

	"github.com/CodeNinja0929/PDF-Metadata-Extractor/constants"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want constants.FieldType
	}{
		{name: "yes_no", text: "Smoker? yes / no", want: constants.FieldTypeCheckbox},
		{name: "does_not", text: "Patient does not consent", want: constants.FieldTypeCheckbox},
		{name: "date", text: "Date of admission", want: constants.FieldTypeDate},
		{name: "dob_case_insensitive", text: "DOB", want: constants.FieldTypeDate},
		{name: "birth", text: "Place of birth", want: constants.FieldTypeDate},
		{name: "select", text: "Select one", want: constants.FieldTypeDropdown},
		{name: "select_uppercase", text: "SELECT an item", want: constants.FieldTypeDropdown},
		// "dropdown" itself contains the substring "do", so the checkbox
		// rule captures it first. Preserved as-is from the rule set.
		{name: "dropdown_word_hits_checkbox_rule", text: "dropdown menu", want: constants.FieldTypeCheckbox},
		{name: "plain_text", text: "John Smith", want: constants.FieldTypeText},
		{name: "empty", text: "", want: constants.FieldTypeText},
		// Rules are not mutually exclusive; the checkbox rule wins over the
		// date rule because it is evaluated first.
		{name: "checkbox_beats_date", text: "Date of birth: yes?", want: constants.FieldTypeCheckbox},
		{name: "date_beats_dropdown", text: "select a date", want: constants.FieldTypeDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyFieldsInPlace(t *testing.T) {
	fields := []Field{
		{Text: "Date of birth: yes?", FieldType: constants.FieldTypeText},
		{Text: "Select one", FieldType: constants.FieldTypeText},
		{Text: "John Smith", FieldType: constants.FieldTypeText},
	}
	ClassifyFields(fields)

	want := []constants.FieldType{
		constants.FieldTypeCheckbox,
		constants.FieldTypeDropdown,
		constants.FieldTypeText,
	}
	for i, w := range want {
		if fields[i].FieldType != w {
			t.Errorf("field %d: got %q, want %q", i, fields[i].FieldType, w)
		}
	}
}
