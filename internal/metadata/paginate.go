package metadata

// MaxPage returns the maximum page number across all fields, or 1 when the
// field list is empty.
func MaxPage(fields []Field) int {
	if len(fields) == 0 {
		return 1
	}
	max := fields[0].PageNumber
	for _, f := range fields[1:] {
		if f.PageNumber > max {
			max = f.PageNumber
		}
	}
	return max
}

// ClampPage bounds a requested page to [1, maxPage]. Navigation past either
// bound is a no-op: clamped, not wrapped.
func ClampPage(page, maxPage int) int {
	if page < 1 {
		return 1
	}
	if page > maxPage {
		return maxPage
	}
	return page
}

// FieldsForPage returns the fields on the given page, preserving their
// relative order from the full list.
func FieldsForPage(fields []Field, page int) []Field {
	out := make([]Field, 0)
	for _, f := range fields {
		if f.PageNumber == page {
			out = append(out, f)
		}
	}
	return out
}
