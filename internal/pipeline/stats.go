package pipeline

// RunStats tracks per-entry counters and the output size for one run.
type RunStats struct {
	Total       int
	Embedded    int
	Passthrough int
	Skipped     int
	OutputBytes int64
	Written     bool
}

// Kept returns how many tileset entries made it into the output.
func (s *RunStats) Kept() int {
	return s.Embedded + s.Passthrough
}

func (s *RunStats) add(r Result) {
	s.Total++
	switch r.Outcome {
	case OutcomeEmbedded:
		s.Embedded++
	case OutcomePassthrough:
		s.Passthrough++
	case OutcomeSkipped:
		s.Skipped++
	}
}
