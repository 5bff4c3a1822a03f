package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeNinja0929/PDF-Metadata-Extractor/constants"
	"github.com/CodeNinja0929/PDF-Metadata-Extractor/internal/common"
	"github.com/CodeNinja0929/PDF-Metadata-Extractor/internal/metadata"
)

func newDoc(t *testing.T) (*Store, *Document) {
	t.Helper()
	s := NewStore()
	doc := s.Put("/uploads/test.pdf", []metadata.Field{
		{PageNumber: 1, Text: "Patient Name", FieldType: constants.FieldTypeText, BoundingBox: []metadata.Point{}},
		{PageNumber: 2, Text: "Date of Birth", FieldType: constants.FieldTypeDate, BoundingBox: []metadata.Point{}},
	})
	return s, doc
}

func TestPutAndGet(t *testing.T) {
	s, doc := newDoc(t)

	got, fields, err := s.Get(doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, got.ID)
	assert.Equal(t, "/uploads/test.pdf", got.FileURL)
	require.Len(t, fields, 2)

	// The snapshot is a copy: mutating it must not touch session state.
	fields[0].Text = "tampered"
	_, again, err := s.Get(doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Patient Name", again[0].Text)
}

func TestGetUnknownDocument(t *testing.T) {
	s := NewStore()
	_, _, err := s.Get(uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdateFieldOverride(t *testing.T) {
	s, doc := newDoc(t)

	ft := constants.FieldTypeCheckbox
	length := "10"
	values := "yes;no"
	updated, err := s.UpdateField(doc.ID, 0, FieldUpdate{
		FieldType:   &ft,
		Length:      &length,
		Values:      &values,
		Annotations: map[string]string{"note": "verified"},
	})
	require.NoError(t, err)

	assert.Equal(t, constants.FieldTypeCheckbox, updated.FieldType)
	assert.Equal(t, "10", updated.Length)
	assert.Equal(t, "yes;no", updated.Values)
	assert.Equal(t, "verified", updated.Annotations["note"])

	// pageNumber and text are untouched by edits.
	assert.Equal(t, 1, updated.PageNumber)
	assert.Equal(t, "Patient Name", updated.Text)

	// The override sticks; no re-classification happens afterwards.
	_, fields, err := s.Get(doc.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.FieldTypeCheckbox, fields[0].FieldType)
}

func TestUpdateFieldPartial(t *testing.T) {
	s, doc := newDoc(t)

	length := "8"
	updated, err := s.UpdateField(doc.ID, 1, FieldUpdate{Length: &length})
	require.NoError(t, err)
	assert.Equal(t, "8", updated.Length)
	assert.Equal(t, constants.FieldTypeDate, updated.FieldType)
	assert.Equal(t, "", updated.Values)
}

func TestUpdateFieldValidation(t *testing.T) {
	s, doc := newDoc(t)

	_, err := s.UpdateField(doc.ID, 99, FieldUpdate{})
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = s.UpdateField(doc.ID, -1, FieldUpdate{})
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	bad := constants.FieldType("radio")
	_, err = s.UpdateField(doc.ID, 0, FieldUpdate{FieldType: &bad})
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = s.UpdateField(uuid.New(), 0, FieldUpdate{})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDelete(t *testing.T) {
	s, doc := newDoc(t)
	s.Delete(doc.ID)
	_, _, err := s.Get(doc.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
