package services

import "github.com/google/uuid"

// TransientID is a call-scoped reference used during bulk import: the 1-based
// position of a candidate in its input array. It exists only until the
// import transaction commits and is never persisted.
type TransientID int

// NoParent is the sentinel transient id meaning "no parent". It always
// resolves to a nil persisted id.
const NoParent TransientID = 0

// transientIDMap records persisted ids as candidate rows are inserted so
// later candidates can resolve their parent references.
type transientIDMap struct {
	ids map[TransientID]uuid.UUID
}

func newTransientIDMap() *transientIDMap {
	return &transientIDMap{ids: make(map[TransientID]uuid.UUID)}
}

func (m *transientIDMap) bind(t TransientID, id uuid.UUID) {
	if t == NoParent {
		return
	}
	m.ids[t] = id
}

// resolve returns the persisted id for t. The second return value is false
// when t is unknown; callers treat that as "parent not yet available", not
// as an error. The sentinel always resolves to (nil, true).
func (m *transientIDMap) resolve(t TransientID) (*uuid.UUID, bool) {
	if t == NoParent {
		return nil, true
	}
	id, ok := m.ids[t]
	if !ok {
		return nil, false
	}
	return &id, true
}
