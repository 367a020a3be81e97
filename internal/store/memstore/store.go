// Package memstore implements the in-memory record store behind the task list.
//
// A Store is a plain data structure. It is not safe for concurrent mutation:
// callers that share one between goroutines must wrap every call in their own
// lock.
package memstore

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/tasks/internal/model"
)

// ErrInvalidInput is returned when a record is rejected before it reaches the
// store, e.g. a blank label.
var ErrInvalidInput = errors.New("invalid argument")

// Store is a named collection of records keyed by id. Listing order is the
// order in which ids were first inserted.
type Store struct {
	name    string
	records map[int]*model.Record
	order   []int
	ids     IDGenerator
	log     zerolog.Logger

	initial []model.Record
}

// Option configures a Store at construction.
type Option func(*Store)

// WithRecords seeds the store. Records are indexed by id in the given order;
// a later record with the same id replaces an earlier one. Done flags are kept.
// Records with a blank label are dropped; use NewFromRecords to get an error
// for them instead.
func WithRecords(records ...model.Record) Option {
	return func(s *Store) {
		s.initial = append(s.initial, records...)
	}
}

// WithIDGenerator replaces the default Sequence.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) {
		if gen != nil {
			s.ids = gen
		}
	}
}

// WithLogger sets the logger used for mutation events.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// New creates a store named name.
func New(name string, opts ...Option) *Store {
	s := &Store{
		name:    name,
		records: make(map[int]*model.Record),
		ids:     NewSequence(),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	initial := s.initial
	s.initial = nil
	for _, r := range initial {
		label := strings.TrimSpace(r.Label)
		if label == "" {
			s.log.Warn().Int("id", r.ID).Msg("dropping initial record with blank label")
			continue
		}
		s.put(model.Record{ID: r.ID, Label: label, Done: r.Done})
	}

	return s
}

// NewFromRecords is New with an initial record set that must be valid.
func NewFromRecords(name string, records []model.Record, opts ...Option) (*Store, error) {
	for i, r := range records {
		if strings.TrimSpace(r.Label) == "" {
			return nil, fmt.Errorf("%w: record %d (id %d) has a blank label", ErrInvalidInput, i, r.ID)
		}
	}
	return New(name, append(opts, WithRecords(records...))...), nil
}

// Name returns the display name given at creation.
func (s *Store) Name() string { return s.name }

// Len returns the number of records held.
func (s *Store) Len() int { return len(s.order) }

// Add inserts a new incomplete record under a generated id and returns it.
func (s *Store) Add(label string) (int, error) {
	label, err := checkLabel(label)
	if err != nil {
		return 0, err
	}
	id := s.ids.NextID()
	s.put(model.Record{ID: id, Label: label})
	s.log.Debug().Int("id", id).Str("label", label).Msg("record added")
	return id, nil
}

// AddWithID inserts a new incomplete record under id. An existing record with
// the same id is replaced in place.
func (s *Store) AddWithID(label string, id int) (int, error) {
	label, err := checkLabel(label)
	if err != nil {
		return 0, err
	}
	replaced := s.put(model.Record{ID: id, Label: label})
	s.log.Debug().Int("id", id).Str("label", label).Bool("replaced", replaced).Msg("record added")
	return id, nil
}

// Get returns a copy of the record with the given id.
func (s *Store) Get(id int) (model.Record, bool) {
	r, ok := s.records[id]
	if !ok {
		return model.Record{}, false
	}
	return *r, true
}

// Complete marks the record done. Unknown ids are ignored; the result reports
// whether a record was found.
func (s *Store) Complete(id int) bool {
	r, ok := s.records[id]
	if !ok {
		return false
	}
	r.Done = true
	s.log.Debug().Int("id", id).Msg("record completed")
	return true
}

// List returns copies of the records selected by filter in insertion order.
func (s *Store) List(filter model.Filter) []model.Record {
	out := make([]model.Record, 0, len(s.order))
	for _, id := range s.order {
		r := s.records[id]
		if filter.Match(*r) {
			out = append(out, *r)
		}
	}
	return out
}

// RemoveCompleted drops every done record and returns how many went.
func (s *Store) RemoveCompleted() int {
	before := len(s.order)
	s.order = slices.DeleteFunc(s.order, func(id int) bool {
		if s.records[id].Done {
			delete(s.records, id)
			return true
		}
		return false
	})
	n := before - len(s.order)
	if n > 0 {
		s.log.Debug().Int("removed", n).Msg("completed records removed")
	}
	return n
}

// Remove drops the record with the given id, if any.
func (s *Store) Remove(id int) bool {
	if _, ok := s.records[id]; !ok {
		return false
	}
	delete(s.records, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	s.log.Debug().Int("id", id).Msg("record removed")
	return true
}

// Count tallies the current records.
func (s *Store) Count() model.Counts {
	c := model.Counts{Total: len(s.order)}
	for _, id := range s.order {
		if !s.records[id].Done {
			c.Incomplete++
		}
	}
	return c
}

// put stores r, keeping the list position of a record it replaces.
func (s *Store) put(r model.Record) (replaced bool) {
	if obs, ok := s.ids.(idObserver); ok {
		obs.Observe(r.ID)
	}
	if _, replaced = s.records[r.ID]; !replaced {
		s.order = append(s.order, r.ID)
	}
	s.records[r.ID] = &r
	return replaced
}

func checkLabel(label string) (string, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", fmt.Errorf("%w: label must not be blank", ErrInvalidInput)
	}
	return label, nil
}
