package history_test

import (
	"fmt"
	"testing"
	"time"

	"cutline/internal/history"
	"cutline/internal/timeline"
)

// manualScheduler records armed callbacks and fires them only when the test
// says so, standing in for real timers.
type manualScheduler struct {
	pending map[string]func()
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{pending: make(map[string]func())}
}

func (s *manualScheduler) Schedule(key string, _ time.Duration, fn func()) {
	s.pending[key] = fn
}

func (s *manualScheduler) Cancel(key string) {
	delete(s.pending, key)
}

func (s *manualScheduler) CancelAll() {
	s.pending = make(map[string]func())
}

// fire runs the pending callback for key as if its delay elapsed.
func (s *manualScheduler) fire(key string) {
	if fn, ok := s.pending[key]; ok {
		delete(s.pending, key)
		fn()
	}
}

func tl(id string) *timeline.Timeline {
	return &timeline.Timeline{
		ProjectID: "p1",
		Clips:     []timeline.Clip{{ID: id, Start: 0, End: 5}},
	}
}

func firstClipID(t *testing.T, got *timeline.Timeline) string {
	t.Helper()
	if got == nil || len(got.Clips) == 0 {
		t.Fatalf("expected a timeline with clips, got %#v", got)
	}
	return got.Clips[0].ID
}

func newLog(t *testing.T) (*history.Log, *manualScheduler) {
	t.Helper()
	sched := newManualScheduler()
	return history.New(history.DefaultLimit, history.DefaultDebounce, sched), sched
}

func TestEmptyLog(t *testing.T) {
	log, _ := newLog(t)

	if log.CanUndo() || log.CanRedo() {
		t.Fatal("empty log claims undo/redo")
	}
	if log.Undo() != nil || log.Redo() != nil {
		t.Fatal("empty log returned a snapshot")
	}
	if log.Len() != 0 {
		t.Fatalf("len = %d, want 0", log.Len())
	}
}

func TestInitialize(t *testing.T) {
	log, _ := newLog(t)

	log.Initialize(tl("a"))
	if log.Len() != 1 || log.CanUndo() || log.CanRedo() {
		t.Fatalf("after initialize: len=%d canUndo=%v canRedo=%v", log.Len(), log.CanUndo(), log.CanRedo())
	}

	log.Save(tl("b"))
	log.Initialize(nil)
	if log.Len() != 0 || log.CanUndo() {
		t.Fatal("initialize(nil) must reset the log")
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	log, _ := newLog(t)
	log.Initialize(tl("a"))
	log.Save(tl("b"))

	undone := log.Undo()
	if got := firstClipID(t, undone); got != "a" {
		t.Fatalf("undo returned %q, want a", got)
	}
	if !log.CanRedo() {
		t.Fatal("expected canRedo after undo")
	}

	redone := log.Redo()
	if got := firstClipID(t, redone); got != "b" {
		t.Fatalf("redo returned %q, want b", got)
	}
	if log.CanRedo() {
		t.Fatal("redo past the end should not be possible")
	}
}

func TestSaveNilIsIgnored(t *testing.T) {
	log, _ := newLog(t)
	log.Initialize(tl("a"))

	log.Save(nil)
	if log.Len() != 1 {
		t.Fatalf("len = %d after nil save, want 1", log.Len())
	}
}

func TestRedoBranchTruncatedOnSave(t *testing.T) {
	log, _ := newLog(t)
	log.Initialize(tl("a"))
	log.Save(tl("b"))
	log.Save(tl("c"))

	log.Undo()
	log.Undo()
	log.Save(tl("d"))

	if log.CanRedo() {
		t.Fatal("saving after undo must discard the redo branch")
	}
	if got := firstClipID(t, log.Undo()); got != "a" {
		t.Fatalf("undo after divergent save returned %q, want a", got)
	}
	if got := firstClipID(t, log.Redo()); got != "d" {
		t.Fatalf("redo after divergent save returned %q, want d", got)
	}
}

func TestBoundedHistoryEvictsOldest(t *testing.T) {
	sched := newManualScheduler()
	log := history.New(5, history.DefaultDebounce, sched)

	for i := 0; i < 12; i++ {
		log.Save(tl(fmt.Sprintf("t%d", i)))
	}

	if log.Len() != 5 {
		t.Fatalf("len = %d, want 5", log.Len())
	}

	// Walk back: the retained entries are exactly the last five, in order.
	want := []string{"t10", "t9", "t8", "t7"}
	for _, expected := range want {
		if got := firstClipID(t, log.Undo()); got != expected {
			t.Fatalf("undo returned %q, want %q", got, expected)
		}
	}
	if log.CanUndo() {
		t.Fatal("expected oldest retained entry reached")
	}
}

func TestSnapshotsAreIndependentCopies(t *testing.T) {
	log, _ := newLog(t)

	source := tl("a")
	log.Initialize(source)
	source.Clips[0].ID = "mutated-after-save"

	log.Save(tl("b"))
	undone := log.Undo()
	if got := firstClipID(t, undone); got != "a" {
		t.Fatalf("stored snapshot changed with caller's value: %q", got)
	}

	// Mutating a returned snapshot must not poison the log either.
	undone.Clips[0].ID = "mutated-after-undo"
	if got := firstClipID(t, log.Redo()); got != "b" {
		t.Fatalf("redo = %q, want b", got)
	}
	if got := firstClipID(t, log.Undo()); got != "a" {
		t.Fatalf("log poisoned through returned snapshot: %q", got)
	}
}

func TestDebouncedSavesCoalesce(t *testing.T) {
	log, sched := newLog(t)
	log.Initialize(tl("a"))

	log.Save(tl("b"), "update-clip")
	log.Save(tl("c"), "update-clip")
	if log.Len() != 1 {
		t.Fatalf("debounced save committed early: len=%d", log.Len())
	}

	sched.fire("update-clip")
	if log.Len() != 2 {
		t.Fatalf("len = %d after fire, want 2", log.Len())
	}
	if got := firstClipID(t, log.Undo()); got != "a" {
		t.Fatalf("undo = %q, want a", got)
	}
	if got := firstClipID(t, log.Redo()); got != "c" {
		t.Fatalf("coalesced entry = %q, want last value c", got)
	}
}

func TestDebounceKeysAreIndependent(t *testing.T) {
	log, sched := newLog(t)
	log.Initialize(tl("a"))

	log.Save(tl("b"), "clip")
	log.Save(tl("c"), "marker")

	sched.fire("marker")
	sched.fire("clip")

	if log.Len() != 3 {
		t.Fatalf("len = %d, want 3", log.Len())
	}
	// Commits land in fire order.
	if got := firstClipID(t, log.Undo()); got != "c" {
		t.Fatalf("undo = %q, want c", got)
	}
	if got := firstClipID(t, log.Undo()); got != "a" {
		t.Fatalf("undo = %q, want a", got)
	}
}

func TestClearCancelsPendingSaves(t *testing.T) {
	log, sched := newLog(t)
	log.Initialize(tl("a"))
	log.Save(tl("b"), "update-clip")

	log.Clear()
	if log.Len() != 0 {
		t.Fatalf("len = %d after clear, want 0", log.Len())
	}
	if len(sched.pending) != 0 {
		t.Fatal("pending debounce survived clear")
	}

	sched.fire("update-clip")
	if log.Len() != 0 {
		t.Fatal("cancelled debounce still committed")
	}
}

func TestTimerSchedulerRearmReplaces(t *testing.T) {
	sched := history.NewTimerScheduler()
	defer sched.CancelAll()

	fired := make(chan string, 2)
	sched.Schedule("k", 5*time.Millisecond, func() { fired <- "first" })
	sched.Schedule("k", 5*time.Millisecond, func() { fired <- "second" })

	select {
	case got := <-fired:
		if got != "second" {
			t.Fatalf("fired %q, want second", got)
		}
	case <-time.After(time.Second):
		t.Fatal("timer never fired")
	}

	select {
	case got := <-fired:
		t.Fatalf("superseded callback fired: %q", got)
	case <-time.After(50 * time.Millisecond):
	}
}
