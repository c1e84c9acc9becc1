// Package store owns the in-memory link collection and its mutations.
//
// Every successful mutation is written through the Saver before the call
// returns, then subscribers are notified with a snapshot. A Store is meant
// to be driven from a single goroutine and takes no locks.
package store

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/dailies/internal/codec"
	"github.com/mesh-intelligence/dailies/internal/logging"
	"github.com/mesh-intelligence/dailies/internal/reorder"
	"github.com/mesh-intelligence/dailies/pkg/types"
)

// Saver persists a whole collection.
type Saver interface {
	Save(types.Collection) error
}

// Loader returns the collection to start from.
type Loader interface {
	Load() (types.Collection, error)
}

// Persister is implemented by persist.Adapter.
type Persister interface {
	Loader
	Saver
}

// Listener receives a snapshot after each committed mutation.
type Listener func(types.Collection)

// Store holds the ordered collection and the edit cursor.
type Store struct {
	links     types.Collection
	saver     Saver
	logger    *zap.Logger
	newID     func() string
	listeners []Listener

	editing   bool
	editingID string
}

// Option customizes a Store.
type Option func(*Store)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.logger = logging.OrNop(l) }
}

// WithIDFunc replaces the id generator.
func WithIDFunc(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// Open loads the collection through p and returns a Store that writes back
// through p.
func Open(p Persister, opts ...Option) (*Store, error) {
	links, err := p.Load()
	if err != nil {
		return nil, err
	}
	return New(links, p, opts...), nil
}

// New returns a Store over an already loaded collection. links is copied.
func New(links types.Collection, saver Saver, opts ...Option) *Store {
	s := &Store{
		links:  links.Clone(),
		saver:  saver,
		logger: zap.NewNop(),
		newID:  newUUID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// newUUID generates a UUID v7 string. v7 is time ordered, so ids sort by
// creation time like the timestamp ids of older exports.
func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// Links returns a snapshot of the collection.
func (s *Store) Links() types.Collection {
	return s.links.Clone()
}

// Len returns the number of links.
func (s *Store) Len() int {
	return len(s.links)
}

// Get returns the link with the given id.
func (s *Store) Get(id string) (types.Link, bool) {
	i := s.links.IndexOf(id)
	if i < 0 {
		return types.Link{}, false
	}
	return s.links[i], true
}

// Subscribe registers fn to run after each committed mutation. The returned
// func removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	i := len(s.listeners)
	s.listeners = append(s.listeners, fn)
	return func() { s.listeners[i] = nil }
}

// Create appends a new link. name and url are trimmed and must not be
// empty.
func (s *Store) Create(name, url string) (types.Link, error) {
	name, url, err := clean(name, url)
	if err != nil {
		return types.Link{}, err
	}

	link := types.Link{ID: s.uniqueID(), Name: name, URL: url}
	next := append(s.links.Clone(), link)
	if err := s.commit(next, "create"); err != nil {
		return types.Link{}, err
	}
	s.logger.Debug("created link", zap.String(logging.FieldID, link.ID), zap.String(logging.FieldName, link.Name))
	return link, nil
}

// Update replaces name and url of the link with id, keeping its id and
// position. It returns false without writing when id is unknown.
func (s *Store) Update(id, name, url string) (bool, error) {
	name, url, err := clean(name, url)
	if err != nil {
		return false, err
	}

	i := s.links.IndexOf(id)
	if i < 0 {
		s.logger.Debug("update of unknown link ignored", zap.String(logging.FieldID, id))
		return false, nil
	}

	next := s.links.Clone()
	next[i].Name = name
	next[i].URL = url
	if err := s.commit(next, "update"); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes the link with id. It returns false without writing when id
// is unknown. Removing the last link leaves the collection empty.
func (s *Store) Delete(id string) (bool, error) {
	i := s.links.IndexOf(id)
	if i < 0 {
		s.logger.Debug("delete of unknown link ignored", zap.String(logging.FieldID, id))
		return false, nil
	}

	next := make(types.Collection, 0, len(s.links)-1)
	next = append(next, s.links[:i]...)
	next = append(next, s.links[i+1:]...)
	if err := s.commit(next, "delete"); err != nil {
		return false, err
	}
	return true, nil
}

// Reorder moves the link at from so it ends up at index to. Moving a link
// onto itself changes nothing and is not written.
func (s *Store) Reorder(from, to int) error {
	next, err := reorder.Move(s.links, from, to)
	if err != nil {
		return err
	}
	if from == to {
		return nil
	}
	if err := s.commit(next, "reorder"); err != nil {
		return err
	}
	s.logger.Debug("reordered links", zap.Int(logging.FieldFrom, from), zap.Int(logging.FieldTo, to))
	return nil
}

// ReplaceAll swaps in c wholesale after checking every record has a
// non-empty id, name and url. On failure the current collection is kept.
func (s *Store) ReplaceAll(c types.Collection) error {
	if err := codec.Validate(c); err != nil {
		return err
	}
	return s.commit(c.Clone(), "replace")
}

// Import decodes text and replaces the collection with it.
func (s *Store) Import(text string) error {
	c, err := codec.Import(text)
	if err != nil {
		s.logger.Debug("import rejected", zap.Error(err))
		return err
	}
	if err := s.ReplaceAll(c); err != nil {
		return err
	}
	s.logger.Info("imported links", zap.Int(logging.FieldCount, len(c)))
	return nil
}

// Export renders the collection in the pretty-printed transfer format.
func (s *Store) Export() (string, error) {
	return codec.Export(s.links)
}

// commit persists next, then adopts it and notifies listeners. If the write
// fails the current collection is left untouched.
func (s *Store) commit(next types.Collection, op string) error {
	if err := s.saver.Save(next); err != nil {
		s.logger.Error("persisting links failed", zap.String(logging.FieldOp, op), zap.Error(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	s.links = next
	s.notify()
	return nil
}

func (s *Store) notify() {
	for _, fn := range s.listeners {
		if fn != nil {
			fn(s.links.Clone())
		}
	}
}

// uniqueID draws ids until one is not already in the collection. Imported
// collections may carry arbitrary ids.
func (s *Store) uniqueID() string {
	for {
		id := s.newID()
		if id != "" && s.links.IndexOf(id) < 0 {
			return id
		}
	}
}

func clean(name, url string) (string, string, error) {
	name = strings.TrimSpace(name)
	url = strings.TrimSpace(url)
	if name == "" || url == "" {
		return "", "", types.ErrInvalidInput
	}
	if !utf8.ValidString(name) || !utf8.ValidString(url) {
		return "", "", fmt.Errorf("invalid UTF-8: %w", types.ErrInvalidInput)
	}
	return name, url, nil
}
