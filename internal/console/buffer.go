// Package console keeps the most recent log lines shown in the viewer's
// on-screen console and lets display clients poll or subscribe to them.
package console

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/banshee-data/sceneview/internal/timeutil"
	"github.com/banshee-data/sceneview/internal/units"
)

// DefaultCapacity is the number of entries the console keeps.
const DefaultCapacity = 10

// Entry is a single console line. Entries are immutable once appended.
type Entry struct {
	// ID is a unique key for display lists.
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Timestamp string    `json:"timestamp"`
	Time      time.Time `json:"-"`
}

// Line renders the entry the way the console displays it.
func (e Entry) Line() string {
	return e.Timestamp + " | " + e.Text
}

// Appender is anything that accepts console text.
type Appender interface {
	Append(text string) Entry
}

// Buffer is a capacity-bounded, insertion-ordered list of entries. When an
// append would exceed the capacity the oldest entry is dropped.
//
// All methods are safe for concurrent use. Append and the snapshot methods
// serialise on a single mutex so the length bound and FIFO order hold under
// concurrent writers.
type Buffer struct {
	appendMu sync.Mutex // serialises Append including notification
	mu       sync.Mutex
	entries  []Entry
	capacity int
	clock    timeutil.Clock
	loc      *time.Location

	subscriberMu sync.Mutex
	subscribers  map[string]chan Entry
	callbacks    []func(Entry)
}

// NewBuffer creates a buffer holding at most capacity entries. A capacity of
// zero or less uses DefaultCapacity, a nil clock uses the wall clock and a
// nil location formats timestamps in UTC.
func NewBuffer(capacity int, clock timeutil.Clock, loc *time.Location) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Buffer{
		entries:     make([]Entry, 0, capacity+1),
		capacity:    capacity,
		clock:       clock,
		loc:         loc,
		subscribers: make(map[string]chan Entry),
	}
}

// Append stamps text with the current time and adds it to the end of the
// buffer, evicting the oldest entry if the buffer is full. Subscribers and
// callbacks are notified before Append returns.
//
// Concurrent appends are serialised end to end, so timestamps are
// non-decreasing in buffer order and every subscriber sees entries in the
// same order as Entries.
func (b *Buffer) Append(text string) Entry {
	b.appendMu.Lock()
	defer b.appendMu.Unlock()

	b.mu.Lock()
	now := b.clock.Now()
	e := Entry{
		ID:        uuid.NewString(),
		Text:      text,
		Timestamp: units.FormatStamp(now, b.loc),
		Time:      now,
	}
	b.entries = append(b.entries, e)
	for len(b.entries) > b.capacity {
		copy(b.entries, b.entries[1:])
		b.entries = b.entries[:len(b.entries)-1]
	}
	b.mu.Unlock()

	// mu is released so callbacks may read the buffer.
	b.notify(e)
	return e
}

// Snapshot returns the entries most recent first. The returned slice is a
// copy; the buffer is not modified.
func (b *Buffer) Snapshot() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Entry, len(b.entries))
	for i, e := range b.entries {
		out[len(b.entries)-1-i] = e
	}
	return out
}

// Entries returns a copy of the entries in insertion order.
func (b *Buffer) Entries() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Lines returns the display lines, most recent first.
func (b *Buffer) Lines() []string {
	return linesOf(b.Snapshot())
}

// View is the console state handed to display clients.
type View struct {
	Lines   []string `json:"lines"`
	Entries []Entry  `json:"entries"`
}

// View returns lines and entries from a single snapshot.
func (b *Buffer) View() View {
	snap := b.Snapshot()
	return View{Lines: linesOf(snap), Entries: snap}
}

func linesOf(entries []Entry) []string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Line()
	}
	return lines
}

// Len returns the number of entries currently held.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Cap returns the maximum number of entries held.
func (b *Buffer) Cap() int {
	return b.capacity
}

// Subscribe returns a channel that receives every entry appended after the
// call. The channel is buffered to the console capacity; a subscriber that
// falls further behind misses entries rather than blocking Append.
func (b *Buffer) Subscribe() (string, <-chan Entry) {
	id := uuid.NewString()
	ch := make(chan Entry, b.capacity)

	b.subscriberMu.Lock()
	defer b.subscriberMu.Unlock()
	b.subscribers[id] = ch
	return id, ch
}

// Unsubscribe removes and closes a subscription.
func (b *Buffer) Unsubscribe(id string) {
	b.subscriberMu.Lock()
	defer b.subscriberMu.Unlock()
	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
	}
}

// OnAppend registers fn to be called synchronously after every Append.
// fn may read the buffer but must not call Append on it.
func (b *Buffer) OnAppend(fn func(Entry)) {
	b.subscriberMu.Lock()
	defer b.subscriberMu.Unlock()
	b.callbacks = append(b.callbacks, fn)
}

// Close closes every subscription channel.
func (b *Buffer) Close() {
	b.subscriberMu.Lock()
	defer b.subscriberMu.Unlock()
	for id, ch := range b.subscribers {
		close(ch)
		delete(b.subscribers, id)
	}
}

func (b *Buffer) notify(e Entry) {
	b.subscriberMu.Lock()
	callbacks := b.callbacks
	for _, ch := range b.subscribers {
		select {
		case ch <- e:
		default:
			// slow subscriber; skip so Append never blocks
		}
	}
	b.subscriberMu.Unlock()

	for _, fn := range callbacks {
		fn(e)
	}
}
