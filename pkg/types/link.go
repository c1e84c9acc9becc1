package types

// StorageKey is the fixed key under which the link collection is persisted.
const StorageKey = "dailies-links"

// Link is a named shortcut to a URL.
type Link struct {
	// ID is opaque and unique within a collection. It is assigned on
	// creation and never changes.
	ID string `json:"id"`

	// Name is the display label shown under the grid icon.
	Name string `json:"name"`

	// URL is the destination. It is not checked for well-formedness.
	URL string `json:"url"`
}

// Collection is an ordered sequence of links. Order determines render
// position.
type Collection []Link

// Clone returns a copy that shares no backing array with c.
func (c Collection) Clone() Collection {
	if c == nil {
		return nil
	}
	out := make(Collection, len(c))
	copy(out, c)
	return out
}

// IndexOf returns the position of the link with the given id, or -1.
func (c Collection) IndexOf(id string) int {
	for i, l := range c {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// IDs returns the ids in collection order.
func (c Collection) IDs() []string {
	ids := make([]string, len(c))
	for i, l := range c {
		ids[i] = l.ID
	}
	return ids
}

// DefaultLinks returns a fresh copy of the seed collection used when no
// valid persisted state exists.
func DefaultLinks() Collection {
	return Collection{
		{ID: "1", Name: "Sam", URL: "https://www.cluesbysam.com/"},
		{ID: "2", Name: "NYT", URL: "https://www.nytimes.com/crosswords"},
		{ID: "3", Name: "Puzzmo", URL: "https://www.puzzmo.com/"},
	}
}
