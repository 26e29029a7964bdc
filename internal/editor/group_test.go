package editor_test

import (
	"testing"
)

func TestLockUnlockToggle(t *testing.T) {
	ed := newEditor(t)
	loadClips(t, ed, newClip("c1", 0, 5, 0, 10))

	clip, _ := ed.Clip("c1")
	if clip.Locked != nil {
		t.Fatal("lock flag materialized without an explicit lock call")
	}

	ed.LockClip("c1")
	clip, _ = ed.Clip("c1")
	if !clip.IsLocked() {
		t.Fatal("expected locked")
	}

	// Locking twice is the same as locking once.
	ed.LockClip("c1")
	again, _ := ed.Clip("c1")
	if !again.IsLocked() {
		t.Fatal("expected locked after repeat lock")
	}

	ed.ToggleClipLock("c1")
	clip, _ = ed.Clip("c1")
	if clip.IsLocked() {
		t.Fatal("expected unlocked after toggle")
	}

	ed.ToggleClipLock("c1")
	clip, _ = ed.Clip("c1")
	if !clip.IsLocked() {
		t.Fatal("expected locked after second toggle")
	}

	ed.UnlockClip("c1")
	clip, _ = ed.Clip("c1")
	if clip.IsLocked() {
		t.Fatal("expected unlocked")
	}

	// Unknown ids never panic or change state.
	ed.LockClip("ghost")
	ed.ToggleClipLock("ghost")
}

func TestLockClipsAppliesToSelection(t *testing.T) {
	ed := newEditor(t)
	loadClips(t, ed,
		newClip("c1", 0, 5, 0, 10),
		newClip("c2", 0, 5, 5, 10),
		newClip("c3", 0, 5, 10, 10),
	)

	ed.LockClips([]string{"c1", "c3"})

	for id, want := range map[string]bool{"c1": true, "c2": false, "c3": true} {
		clip, _ := ed.Clip(id)
		if clip.IsLocked() != want {
			t.Errorf("%s locked = %v, want %v", id, clip.IsLocked(), want)
		}
	}

	ed.UnlockClips(nil) // empty selection leaves everything alone
	clip, _ := ed.Clip("c1")
	if !clip.IsLocked() {
		t.Fatal("empty selection must not unlock anything")
	}
}

func TestGroupClips(t *testing.T) {
	ed := newEditor(t)
	loadClips(t, ed, newClip("c1", 0, 5, 0, 10), newClip("c2", 0, 5, 5, 10))

	groupID := ed.GroupClips([]string{"c1", "c2"}, "")
	if groupID == "" {
		t.Fatal("expected a group id")
	}

	got := ed.Snapshot()
	if len(got.Groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(got.Groups))
	}
	group := got.Groups[0]
	if group.Name != "Group 1" {
		t.Fatalf("name = %q, want auto-numbered Group 1", group.Name)
	}
	if group.CreatedAt != 1700000000000 {
		t.Fatalf("created_at = %d, want injected clock value", group.CreatedAt)
	}
	for _, id := range []string{"c1", "c2"} {
		if got := ed.ClipGroupID(id); got != groupID {
			t.Fatalf("%s groupId = %q, want %q", id, got, groupID)
		}
		if !ed.IsClipGrouped(id) {
			t.Fatalf("%s not reported grouped", id)
		}
	}
}

func TestGroupClipsRequiresTwo(t *testing.T) {
	ed := newEditor(t)
	loadClips(t, ed, newClip("c1", 0, 5, 0, 10))

	if id := ed.GroupClips([]string{"c1"}, "solo"); id != "" {
		t.Fatalf("expected no-op, got group %q", id)
	}
	if groups := ed.Snapshot().Groups; len(groups) != 0 {
		t.Fatalf("groups = %v, want none", groups)
	}
}

func TestGroupRoundTrip(t *testing.T) {
	ed := newEditor(t)
	loadClips(t, ed, newClip("c1", 0, 5, 0, 10), newClip("c2", 0, 5, 5, 10))

	groupID := ed.GroupClips([]string{"c1", "c2"}, "pair")
	ed.UngroupClips(groupID)

	got := ed.Snapshot()
	if len(got.Groups) != 0 {
		t.Fatalf("group survived ungroup: %v", got.Groups)
	}
	for _, clip := range got.Clips {
		if clip.GroupID != "" {
			t.Fatalf("%s still carries groupId %q", clip.ID, clip.GroupID)
		}
	}

	// Ungrouping again is harmless.
	ed.UngroupClips(groupID)
}

func TestGroupClipIDsIsDefensiveCopy(t *testing.T) {
	ed := newEditor(t)
	loadClips(t, ed, newClip("c1", 0, 5, 0, 10), newClip("c2", 0, 5, 5, 10))

	groupID := ed.GroupClips([]string{"c1", "c2"}, "pair")

	members := ed.GroupClipIDs(groupID)
	members[0] = "mutated"

	fresh := ed.GroupClipIDs(groupID)
	if fresh[0] != "c1" {
		t.Fatalf("stored group mutated through returned slice: %v", fresh)
	}

	if got := ed.GroupClipIDs("ghost"); len(got) != 0 {
		t.Fatalf("unknown group returned members: %v", got)
	}
}

func TestGroupNameNumberingCounts(t *testing.T) {
	ed := newEditor(t)
	loadClips(t, ed,
		newClip("c1", 0, 5, 0, 10),
		newClip("c2", 0, 5, 5, 10),
		newClip("c3", 0, 5, 10, 10),
		newClip("c4", 0, 5, 15, 10),
	)

	ed.GroupClips([]string{"c1", "c2"}, "")
	second := ed.GroupClips([]string{"c3", "c4"}, "")

	got := ed.Snapshot()
	if got.Groups[1].ID != second || got.Groups[1].Name != "Group 2" {
		t.Fatalf("second group = %#v, want Group 2", got.Groups[1])
	}
}

func TestGroupQueriesWithoutTimeline(t *testing.T) {
	ed := newEditor(t)

	if ed.IsClipGrouped("c1") {
		t.Fatal("grouped query on empty editor")
	}
	if got := ed.ClipGroupID("c1"); got != "" {
		t.Fatalf("group id = %q, want empty", got)
	}
	if got := ed.GroupClipIDs("g1"); len(got) != 0 {
		t.Fatalf("members = %v, want empty", got)
	}
	if id := ed.GroupClips([]string{"a", "b"}, ""); id != "" {
		t.Fatalf("grouping without timeline returned %q", id)
	}
}
