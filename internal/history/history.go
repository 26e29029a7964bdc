package history

import (
	"sync"
	"time"

	"cutline/internal/timeline"
)

const (
	// DefaultLimit is how many snapshots the log retains before evicting
	// the oldest.
	DefaultLimit = 50

	// DefaultDebounce is the delay applied to keyed saves.
	DefaultDebounce = 500 * time.Millisecond
)

// Log is a bounded undo/redo log of timeline snapshots.
type Log struct {
	mu       sync.Mutex
	entries  []*timeline.Timeline
	index    int
	limit    int
	debounce time.Duration
	sched    Scheduler
}

// New constructs a log. A non-positive limit falls back to DefaultLimit, a
// non-positive debounce to DefaultDebounce, and a nil scheduler to the
// wall-clock TimerScheduler.
func New(limit int, debounce time.Duration, sched Scheduler) *Log {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if sched == nil {
		sched = NewTimerScheduler()
	}
	return &Log{index: -1, limit: limit, debounce: debounce, sched: sched}
}

// Initialize replaces the whole log with a single snapshot of tl. A nil
// timeline resets the log to empty instead.
func (l *Log) Initialize(tl *timeline.Timeline) {
	l.sched.CancelAll()

	l.mu.Lock()
	defer l.mu.Unlock()

	if tl == nil {
		l.entries = nil
		l.index = -1
		return
	}
	l.entries = []*timeline.Timeline{tl.Clone()}
	l.index = 0
}

// Save records a snapshot of tl. With no key the snapshot commits
// immediately. With a key the commit is debounced: it happens once the delay
// elapses without another save under the same key, and only the last
// submitted value is kept. A nil timeline is ignored.
func (l *Log) Save(tl *timeline.Timeline, key ...string) {
	if tl == nil {
		return
	}
	snapshot := tl.Clone()

	if len(key) == 0 || key[0] == "" {
		l.commit(snapshot)
		return
	}
	l.sched.Schedule(key[0], l.debounce, func() {
		l.commit(snapshot)
	})
}

func (l *Log) commit(snapshot *timeline.Timeline) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Anything past the cursor is a stale redo branch.
	if l.index < len(l.entries)-1 {
		l.entries = l.entries[:l.index+1]
	}
	l.entries = append(l.entries, snapshot)
	l.index = len(l.entries) - 1

	if excess := len(l.entries) - l.limit; excess > 0 {
		l.entries = l.entries[excess:]
		l.index -= excess
	}
}

// Undo steps the cursor back one entry and returns a copy of the snapshot now
// under it. It returns nil, leaving the log untouched, when nothing earlier
// exists.
func (l *Log) Undo() *timeline.Timeline {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.index <= 0 {
		return nil
	}
	l.index--
	return l.entries[l.index].Clone()
}

// Redo steps the cursor forward one entry and returns a copy of the snapshot
// now under it, or nil when the cursor already sits at the newest entry.
func (l *Log) Redo() *timeline.Timeline {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.index >= len(l.entries)-1 {
		return nil
	}
	l.index++
	return l.entries[l.index].Clone()
}

// CanUndo reports whether an earlier snapshot exists.
func (l *Log) CanUndo() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.index > 0
}

// CanRedo reports whether a later snapshot exists.
func (l *Log) CanRedo() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.index < len(l.entries)-1
}

// Len returns the number of retained snapshots.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Clear empties the log and cancels every pending debounced save.
func (l *Log) Clear() {
	l.sched.CancelAll()

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
	l.index = -1
}
