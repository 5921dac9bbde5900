package state

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultPlaceholderTitle is the title given to records created by AddItem.
const DefaultPlaceholderTitle = "New record"

// ErrMissingList is returned by New when the initial state carries no list.
var ErrMissingList = errors.New("initial state has no list")

// Option configures a Store.
type Option func(*Store)

// WithLogger attaches a logger used for debug output on every mutation.
func WithLogger(log *logrus.Entry) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithPlaceholderTitle overrides the title used for new records.
func WithPlaceholderTitle(title string) Option {
	return func(s *Store) {
		if title != "" {
			s.placeholder = title
		}
	}
}

type subscription struct {
	id       uint64
	listener func()
}

// Store is an observable container for the record list. It is not safe for
// concurrent use: one goroutine owns it and drives every call.
type Store struct {
	state       State
	listeners   []subscription
	nextID      uint64
	placeholder string
	log         *logrus.Entry
}

// New builds a store from init. MaxCode and UsedCodes are derived from
// init.List; any values the caller set for them are replaced.
func New(init State, opts ...Option) (*Store, error) {
	if init.List == nil {
		return nil, ErrMissingList
	}

	maxCode := 0
	used := make(map[int]struct{}, len(init.List))
	for _, rec := range init.List {
		if rec.Code > maxCode {
			maxCode = rec.Code
		}
		used[rec.Code] = struct{}{}
	}
	init.MaxCode = maxCode
	init.UsedCodes = used

	s := &Store{
		state:       init,
		placeholder: DefaultPlaceholderTitle,
		log:         discardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// GetState returns the current snapshot. The slice and maps are shared with
// the store and must not be modified.
func (s *Store) GetState() State {
	return s.state
}

// SetState replaces the snapshot and notifies listeners in subscription order.
func (s *Store) SetState(next State) {
	s.state = next

	// Listeners may subscribe or unsubscribe while being notified; this round
	// uses the registry as it stood before the first call.
	for _, sub := range s.listeners {
		sub.listener()
	}
}

// Subscribe registers listener and returns a function that removes this
// registration. Calling the returned function more than once is harmless.
func (s *Store) Subscribe(listener func()) func() {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, subscription{id: id, listener: listener})

	return func() {
		s.unsubscribe(id)
	}
}

func (s *Store) unsubscribe(id uint64) {
	kept := make([]subscription, 0, len(s.listeners))
	for _, sub := range s.listeners {
		if sub.id != id {
			kept = append(kept, sub)
		}
	}
	s.listeners = kept
}

// GenerateUniqueCode reserves and returns the next free code above MaxCode.
// It updates the live snapshot in place without notifying listeners; the
// caller is expected to publish a new state afterwards.
func (s *Store) GenerateUniqueCode() int {
	code := s.state.MaxCode + 1
	for {
		if _, taken := s.state.UsedCodes[code]; !taken {
			break
		}
		code++
	}
	if s.state.UsedCodes == nil {
		s.state.UsedCodes = make(map[int]struct{})
	}
	s.state.UsedCodes[code] = struct{}{}
	s.state.MaxCode = code
	return code
}

// AddItem appends a placeholder record with a fresh code.
func (s *Store) AddItem() {
	code := s.GenerateUniqueCode()

	next := s.state
	next.List = make([]Record, len(s.state.List), len(s.state.List)+1)
	copy(next.List, s.state.List)
	next.List = append(next.List, Record{Code: code, Title: s.placeholder})

	s.log.WithField("code", code).Debug("record added")
	s.SetState(next)
}

// DeleteItem removes every record with the given code and frees the code.
func (s *Store) DeleteItem(code int) {
	delete(s.state.UsedCodes, code)

	next := s.state
	next.List = make([]Record, 0, len(s.state.List))
	for _, rec := range s.state.List {
		if rec.Code != code {
			next.List = append(next.List, rec)
		}
	}

	s.log.WithFields(logrus.Fields{
		"code":    code,
		"removed": len(s.state.List) - len(next.List),
	}).Debug("record deleted")
	s.SetState(next)
}

// SelectItem toggles selection of the record with the given code and clears
// it on every other record. Selecting bumps the record's counter; deselecting
// does not. An unknown code leaves nothing selected.
func (s *Store) SelectItem(code int) {
	next := s.state
	next.List = make([]Record, len(s.state.List))
	for i, rec := range s.state.List {
		if rec.Code == code {
			if !rec.Selected {
				rec.SelectionCount++
			}
			rec.Selected = !rec.Selected
		} else {
			rec.Selected = false
		}
		next.List[i] = rec
	}

	s.log.WithField("code", code).Debug("record selection toggled")
	s.SetState(next)
}

// FormatSelectionCount is the method form of the package-level helper.
func (s *Store) FormatSelectionCount(count int) string {
	return FormatSelectionCount(count)
}

func discardLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}
