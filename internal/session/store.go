// Package session holds the ephemeral per-document state: one field list
// per successful upload, replaced wholesale by the next upload and never
// persisted.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/CodeNinja0929/PDF-Metadata-Extractor/constants"
	"github.com/CodeNinja0929/PDF-Metadata-Extractor/internal/common"
	"github.com/CodeNinja0929/PDF-Metadata-Extractor/internal/metadata"
)

// Document is one upload's session state. Fields are addressed by position;
// the list is never reordered after creation.
type Document struct {
	ID        uuid.UUID
	FileURL   string
	Fields    []metadata.Field
	CreatedAt time.Time
}

// FieldUpdate carries a manual override for one field. Nil members leave
// the attribute untouched; pageNumber and text are not editable.
type FieldUpdate struct {
	FieldType   *constants.FieldType
	Length      *string
	Values      *string
	Annotations map[string]string
}

// Store is an in-memory document registry. Reads take the shared lock;
// edits are single-writer per the session contract.
type Store struct {
	mu   sync.RWMutex
	docs map[uuid.UUID]*Document
}

func NewStore() *Store {
	return &Store{docs: make(map[uuid.UUID]*Document)}
}

// Put registers a freshly processed upload and returns its session.
func (s *Store) Put(fileURL string, fields []metadata.Field) *Document {
	doc := &Document{
		ID:        uuid.New(),
		FileURL:   fileURL,
		Fields:    fields,
		CreatedAt: time.Now().UTC(),
	}
	s.mu.Lock()
	s.docs[doc.ID] = doc
	s.mu.Unlock()
	return doc
}

// Get returns a snapshot of the document's fields along with its handle.
// The returned slice is a copy; callers cannot mutate session state
// through it.
func (s *Store) Get(id uuid.UUID) (*Document, []metadata.Field, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		return nil, nil, common.NotFoundError("document not found")
	}
	fields := make([]metadata.Field, len(doc.Fields))
	copy(fields, doc.Fields)
	return doc, fields, nil
}

// UpdateField applies a manual override to the field at index. FieldType
// must be one of the enumerated kinds; pageNumber is immutable and no
// re-classification is triggered by the edit.
func (s *Store) UpdateField(id uuid.UUID, index int, upd FieldUpdate) (metadata.Field, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return metadata.Field{}, common.NotFoundError("document not found")
	}
	if index < 0 || index >= len(doc.Fields) {
		return metadata.Field{}, common.InvalidInputErrorf("field index %d out of range", index)
	}

	f := &doc.Fields[index]
	if upd.FieldType != nil {
		if !upd.FieldType.Valid() {
			return metadata.Field{}, common.InvalidInputErrorf("invalid field type: %q", *upd.FieldType)
		}
		f.FieldType = *upd.FieldType
	}
	if upd.Length != nil {
		f.Length = *upd.Length
	}
	if upd.Values != nil {
		f.Values = *upd.Values
	}
	if len(upd.Annotations) > 0 {
		if f.Annotations == nil {
			f.Annotations = make(map[string]string, len(upd.Annotations))
		}
		for k, v := range upd.Annotations {
			f.Annotations[k] = v
		}
	}
	return *f, nil
}

// Delete drops a document session.
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	delete(s.docs, id)
	s.mu.Unlock()
}
