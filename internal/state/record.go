package state

import "fmt"

// Record is one entry of the list.
type Record struct {
	Code           int
	Title          string
	Selected       bool
	SelectionCount int
}

// Label renders the record as "code. title".
func (r Record) Label() string {
	return fmt.Sprintf("%d. %s", r.Code, r.Title)
}

// State is the snapshot published by a Store. Every mutation replaces the
// whole value; fields the store does not know about travel in Extra.
type State struct {
	List      []Record
	MaxCode   int
	UsedCodes map[int]struct{}
	Extra     map[string]any
}

// Len returns the number of records.
func (s State) Len() int {
	return len(s.List)
}

// Selected returns the selected record, if any.
func (s State) Selected() (Record, bool) {
	for _, rec := range s.List {
		if rec.Selected {
			return rec, true
		}
	}
	return Record{}, false
}

// Index returns the position of the record with code, or -1.
func (s State) Index(code int) int {
	for i, rec := range s.List {
		if rec.Code == code {
			return i
		}
	}
	return -1
}
