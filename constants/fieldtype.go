package constants

// FieldType is the canonical semantic type assigned to an extracted field.
type FieldType string

// Stable values (these exact strings appear in API responses and exports).
const (
	FieldTypeText     FieldType = "text"     // free-text input
	FieldTypeDate     FieldType = "date"     // date input
	FieldTypeDropdown FieldType = "dropdown" // single-choice selection
	FieldTypeCheckbox FieldType = "checkbox" // boolean / yes-no
)

// FieldTypes holds every valid field type, in display order.
var FieldTypes = []FieldType{
	FieldTypeText,
	FieldTypeDate,
	FieldTypeDropdown,
	FieldTypeCheckbox,
}

// Valid reports whether t is one of the enumerated field types.
func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeText, FieldTypeDate, FieldTypeDropdown, FieldTypeCheckbox:
		return true
	}
	return false
}
