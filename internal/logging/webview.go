package logging

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultWebviewEntries is the ring size of the in-app viewer buffer.
const DefaultWebviewEntries = 500

// Record is a log entry as shown in the in-app viewer.
type Record struct {
	Time    time.Time
	Level   logrus.Level
	Message string
	Fields  logrus.Fields
}

// WebviewHook is a logrus hook that keeps the most recent entries in a
// circular buffer and pushes each new entry to subscribers.
type WebviewHook struct {
	entries    []Record
	writeIdx   int
	maxEntries int
	count      int

	nextID      int
	subscribers map[int]func(Record)
	mu          sync.RWMutex
}

// NewWebviewHook creates a hook holding at most maxEntries records.
func NewWebviewHook(maxEntries int) *WebviewHook {
	if maxEntries <= 0 {
		maxEntries = DefaultWebviewEntries
	}
	return &WebviewHook{
		entries:     make([]Record, maxEntries),
		maxEntries:  maxEntries,
		subscribers: make(map[int]func(Record)),
	}
}

// Levels returns the log levels this hook processes.
func (h *WebviewHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire stores the entry and forwards it to subscribers.
func (h *WebviewHook) Fire(entry *logrus.Entry) error {
	rec := Record{
		Time:    entry.Time,
		Level:   entry.Level,
		Message: entry.Message,
		Fields:  make(logrus.Fields, len(entry.Data)),
	}
	for k, v := range entry.Data {
		rec.Fields[k] = v
	}

	h.mu.Lock()
	h.entries[h.writeIdx] = rec
	h.writeIdx = (h.writeIdx + 1) % h.maxEntries
	if h.count < h.maxEntries {
		h.count++
	}
	subs := make([]func(Record), 0, len(h.subscribers))
	for _, fn := range h.subscribers {
		subs = append(subs, fn)
	}
	h.mu.Unlock()

	// outside the lock: subscribers may log themselves
	for _, fn := range subs {
		fn(rec)
	}
	return nil
}

// Entries returns the buffered records, oldest first.
func (h *WebviewHook) Entries() []Record {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.entriesLocked()
}

func (h *WebviewHook) entriesLocked() []Record {
	result := make([]Record, 0, h.count)
	start := 0
	if h.count == h.maxEntries {
		start = h.writeIdx
	}
	for i := 0; i < h.count; i++ {
		result = append(result, h.entries[(start+i)%h.maxEntries])
	}
	return result
}

// Size returns the number of buffered records.
func (h *WebviewHook) Size() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count
}

// Capacity returns the maximum number of buffered records.
func (h *WebviewHook) Capacity() int {
	return h.maxEntries
}

// Subscribe registers fn for every future record. The returned func removes
// the subscription.
func (h *WebviewHook) Subscribe(fn func(Record)) (unsubscribe func()) {
	_, unsubscribe = h.SnapshotAndSubscribe(fn)
	return unsubscribe
}

// SnapshotAndSubscribe returns the buffered records and registers fn in one
// step: every record is either in the snapshot or passed to fn, never both.
func (h *WebviewHook) SnapshotAndSubscribe(fn func(Record)) (snapshot []Record, unsubscribe func()) {
	h.mu.Lock()
	snapshot = h.entriesLocked()
	id := h.nextID
	h.nextID++
	h.subscribers[id] = fn
	h.mu.Unlock()

	return snapshot, func() {
		h.mu.Lock()
		delete(h.subscribers, id)
		h.mu.Unlock()
	}
}
