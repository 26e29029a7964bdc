package editor

// LockClip marks the clip as locked. Missing id is a no-op.
func (e *Editor) LockClip(id string) {
	e.setLocked([]string{id}, true)
}

// UnlockClip clears the clip's lock. Missing id is a no-op.
func (e *Editor) UnlockClip(id string) {
	e.setLocked([]string{id}, false)
}

// LockClips locks every listed clip that exists. Used with the current
// selection, which the UI layer owns and passes in.
func (e *Editor) LockClips(clipIDs []string) {
	e.setLocked(clipIDs, true)
}

// UnlockClips unlocks every listed clip that exists.
func (e *Editor) UnlockClips(clipIDs []string) {
	e.setLocked(clipIDs, false)
}

// ToggleClipLock flips the clip's lock state. An absent lock flag counts as
// unlocked, so toggling materializes it as locked.
func (e *Editor) ToggleClipLock(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.tl == nil {
		return
	}
	clip := e.tl.ClipByID(id)
	if clip == nil {
		return
	}
	locked := !clip.IsLocked()
	clip.Locked = &locked
}

func (e *Editor) setLocked(clipIDs []string, locked bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.tl == nil {
		return
	}
	for _, id := range clipIDs {
		if clip := e.tl.ClipByID(id); clip != nil {
			value := locked
			clip.Locked = &value
		}
	}
}
