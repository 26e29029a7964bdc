package timeline

// Clone returns a deep copy of the timeline. The history engine stores one
// clone per snapshot, so no pointer held by the copy may alias the original.
func (t *Timeline) Clone() *Timeline {
	if t == nil {
		return nil
	}

	out := &Timeline{ProjectID: t.ProjectID}

	if t.Clips != nil {
		out.Clips = make([]Clip, len(t.Clips))
		for i := range t.Clips {
			out.Clips[i] = t.Clips[i].Clone()
		}
	}
	if t.Tracks != nil {
		out.Tracks = make([]Track, len(t.Tracks))
		copy(out.Tracks, t.Tracks)
	}
	if t.Markers != nil {
		out.Markers = make([]Marker, len(t.Markers))
		copy(out.Markers, t.Markers)
	}
	if t.TextOverlays != nil {
		out.TextOverlays = make([]TextOverlay, len(t.TextOverlays))
		copy(out.TextOverlays, t.TextOverlays)
	}
	if t.Groups != nil {
		out.Groups = make([]Group, len(t.Groups))
		for i := range t.Groups {
			out.Groups[i] = t.Groups[i]
			if ids := t.Groups[i].ClipIDs; ids != nil {
				out.Groups[i].ClipIDs = make([]string, len(ids))
				copy(out.Groups[i].ClipIDs, ids)
			}
		}
	}
	if t.Output != nil {
		output := *t.Output
		out.Output = &output
	}

	return out
}

// Clone returns a deep copy of a single clip.
func (c Clip) Clone() Clip {
	out := c
	out.SourceDuration = cloneFloat(c.SourceDuration)
	out.Volume = cloneFloat(c.Volume)
	out.Opacity = cloneFloat(c.Opacity)
	out.Speed = cloneFloat(c.Speed)
	if c.Locked != nil {
		locked := *c.Locked
		out.Locked = &locked
	}
	if c.TransitionToNext != nil {
		transition := *c.TransitionToNext
		out.TransitionToNext = &transition
	}
	if c.Crop != nil {
		crop := *c.Crop
		out.Crop = &crop
	}
	return out
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	value := *v
	return &value
}
