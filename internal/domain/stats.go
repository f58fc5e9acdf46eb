package domain

// Stats accumulates byte counts across a run.
// It is owned by the coordinator and only updated after a group completes.
type Stats struct {
	BytesIn  int64 `json:"bytes_in"`
	BytesOut int64 `json:"bytes_out"`
	Frames   int   `json:"frames"`
	Groups   int   `json:"groups"`
}

// Add folds one frame result into the totals.
func (s *Stats) Add(r FrameResult) {
	s.BytesIn += r.BytesIn
	s.BytesOut += r.BytesOut
	s.Frames++
}

// Merge folds another accumulator into s.
func (s *Stats) Merge(o Stats) {
	s.BytesIn += o.BytesIn
	s.BytesOut += o.BytesOut
	s.Frames += o.Frames
	s.Groups += o.Groups
}

// Rate returns the compression rate as a percentage,
// 100 * (BytesIn - BytesOut) / BytesIn. The second result is false when
// nothing was read, in which case the rate is undefined.
func (s Stats) Rate() (float64, bool) {
	if s.BytesIn == 0 {
		return 0, false
	}
	return 100.0 * float64(s.BytesIn-s.BytesOut) / float64(s.BytesIn), true
}
