// Package eventlog implements a minimal append-only log of processed
// events. It demonstrates how containing messages embed the
// chronoberry wire types: a [Record] carries an instant and a span as
// cramberry fields, and the log orders and measures records through
// the library instead of comparing raw fields.
package eventlog

import (
	"sort"
	"sync"

	"github.com/blockberries/chronoberry"
)

// Record is one processed event.
type Record struct {
	Seq  uint64                `cramberry:"1"`
	Name string                `cramberry:"2"`
	At   chronoberry.Timestamp `cramberry:"3"`
	Took chronoberry.Duration  `cramberry:"4"`
}

// Finished returns the instant the event finished: At shifted by Took.
func (r Record) Finished() chronoberry.Timestamp {
	return r.At.Add(r.Took)
}

// Log is an in-memory append-only event log.
type Log struct {
	mu      sync.RWMutex
	records []Record
	nextSeq uint64
}

// New creates an empty log.
func New() *Log {
	return &Log{nextSeq: 1}
}

// Append records an event that happened at the given instant and took
// the given span. Denormal pairs are stored in canonical form so
// records compare with ==.
func (l *Log) Append(name string, at chronoberry.Timestamp, took chronoberry.Duration) Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	r := Record{
		Seq:  l.nextSeq,
		Name: name,
		At:   at.Normalized(),
		Took: took.Normalized(),
	}
	l.nextSeq++
	l.records = append(l.records, r)
	return r
}

// Len returns the number of records.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// Between returns the records with instants in [from, to), oldest
// first. The endpoints may be denormal; they bound by value.
func (l *Log) Between(from, to chronoberry.Timestamp) []Record {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []Record
	for _, r := range l.records {
		if !r.At.Before(from) && r.At.Before(to) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].At.Before(out[j].At)
	})
	return out
}

// Span returns the elapsed span from the oldest record's instant to
// the newest record's, or the zero span for fewer than two records.
func (l *Log) Span() chronoberry.Duration {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.records) < 2 {
		return chronoberry.Duration{}
	}
	oldest, newest := l.records[0].At, l.records[0].At
	for _, r := range l.records[1:] {
		if r.At.Before(oldest) {
			oldest = r.At
		}
		if r.At.After(newest) {
			newest = r.At
		}
	}
	return newest.Sub(oldest)
}
