package editor

import (
	"strconv"

	"cutline/internal/timeline"
)

// GroupClips creates a group over the given clip ids and stamps each member
// clip with the new group id. At least two ids are required; otherwise this
// is a no-op and the empty string is returned. An empty name is replaced by
// an auto-numbered "Group N".
func (e *Editor) GroupClips(clipIDs []string, name string) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.tl == nil || len(clipIDs) < 2 {
		return ""
	}

	if name == "" {
		name = "Group " + strconv.Itoa(len(e.tl.Groups)+1)
	}
	group := timeline.Group{
		ID:        e.gen.NewID(),
		Name:      name,
		ClipIDs:   append([]string(nil), clipIDs...),
		CreatedAt: e.now().UnixMilli(),
	}
	for _, id := range clipIDs {
		if clip := e.tl.ClipByID(id); clip != nil {
			clip.GroupID = group.ID
		}
	}
	e.tl.Groups = append(e.tl.Groups, group)

	e.logger.Debug("grouped clips", "group", group.ID, "clips", len(clipIDs))
	return group.ID
}

// UngroupClips removes the group and clears the group id from every clip that
// referenced it. Missing group id is a no-op.
func (e *Editor) UngroupClips(groupID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.tl == nil || e.tl.GroupByID(groupID) == nil {
		return
	}

	kept := e.tl.Groups[:0]
	for i := range e.tl.Groups {
		if e.tl.Groups[i].ID != groupID {
			kept = append(kept, e.tl.Groups[i])
		}
	}
	e.tl.Groups = kept

	for i := range e.tl.Clips {
		if e.tl.Clips[i].GroupID == groupID {
			e.tl.Clips[i].GroupID = ""
		}
	}
}

// GroupClipIDs returns a copy of the group's member ids. Mutating the result
// never affects stored state. Unknown group ids yield an empty slice.
func (e *Editor) GroupClipIDs(groupID string) []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.tl == nil {
		return nil
	}
	group := e.tl.GroupByID(groupID)
	if group == nil {
		return nil
	}
	return append([]string(nil), group.ClipIDs...)
}

// IsClipGrouped reports whether the clip belongs to any group.
func (e *Editor) IsClipGrouped(id string) bool {
	return e.ClipGroupID(id) != ""
}

// ClipGroupID returns the clip's group id, or the empty string when the clip
// is ungrouped or absent.
func (e *Editor) ClipGroupID(id string) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.tl == nil {
		return ""
	}
	clip := e.tl.ClipByID(id)
	if clip == nil {
		return ""
	}
	return clip.GroupID
}
