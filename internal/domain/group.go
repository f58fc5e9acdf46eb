package domain

// WorkGroup is a contiguous run of frames handed to one set of execution units.
// Groups partition the sorted frame list without overlap.
type WorkGroup struct {
	// Index is the zero-based position of the group in the run
	Index int

	// Frames holds the group's frames in sorted order
	Frames []Frame
}

// Size returns the number of frames in the group.
func (g WorkGroup) Size() int {
	return len(g.Frames)
}

// First returns the first frame name, or "" if empty.
func (g WorkGroup) First() string {
	if len(g.Frames) == 0 {
		return ""
	}
	return g.Frames[0].Name
}

// Last returns the last frame name, or "" if empty.
func (g WorkGroup) Last() string {
	if len(g.Frames) == 0 {
		return ""
	}
	return g.Frames[len(g.Frames)-1].Name
}
