package store

import "github.com/mesh-intelligence/dailies/pkg/types"

// BeginEdit points the edit cursor at id. An empty id selects create mode.
// An unknown id leaves the cursor as it was and returns false.
func (s *Store) BeginEdit(id string) bool {
	if id == "" {
		s.CancelEdit()
		return true
	}
	if s.links.IndexOf(id) < 0 {
		return false
	}
	s.editing = true
	s.editingID = id
	return true
}

// EditingID returns the id under the cursor. ok is false in create mode.
func (s *Store) EditingID() (id string, ok bool) {
	return s.editingID, s.editing
}

// CancelEdit returns the cursor to create mode.
func (s *Store) CancelEdit() {
	s.editing = false
	s.editingID = ""
}

// Submit saves the edit form. In create mode it appends a new link; in edit
// mode it updates the link under the cursor. If that link has since been
// removed nothing changes. The cursor returns to create mode on success.
func (s *Store) Submit(name, url string) (types.Link, error) {
	id, editing := s.EditingID()
	if !editing {
		link, err := s.Create(name, url)
		if err != nil {
			return types.Link{}, err
		}
		s.CancelEdit()
		return link, nil
	}

	ok, err := s.Update(id, name, url)
	if err != nil {
		return types.Link{}, err
	}
	s.CancelEdit()
	if !ok {
		return types.Link{}, nil
	}
	link, _ := s.Get(id)
	return link, nil
}
