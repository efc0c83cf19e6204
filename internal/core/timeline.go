package core

import "strconv"

// Idle is the occupant of a segment in which no process holds the cpu.
const Idle = 0

// Segment is a slice of virtual time ending at End. It starts where the
// previous segment of its timeline ends.
type Segment struct {
	Occupant int
	End      int
}

func (s Segment) IsIdle() bool {
	return s.Occupant == Idle
}

func (s Segment) Label() string {
	if s.IsIdle() {
		return "IDLE"
	}
	return "P" + strconv.Itoa(s.Occupant)
}

// Span is a segment with its start time resolved.
type Span struct {
	Occupant int
	Start    int
	End      int
}

func (s Span) Label() string {
	return Segment{Occupant: s.Occupant, End: s.End}.Label()
}

// Timeline is the append-only execution record of one run.
type Timeline []Segment

func (tl *Timeline) Append(occupant, end int) {
	*tl = append(*tl, Segment{Occupant: occupant, End: end})
}

// End is the time the last segment finishes, 0 for an empty timeline.
func (tl Timeline) End() int {
	if len(tl) == 0 {
		return 0
	}
	return tl[len(tl)-1].End
}

// Merge collapses adjacent segments with the same occupant into one.
// Merging a merged timeline returns an equal timeline.
func (tl Timeline) Merge() Timeline {
	merged := make(Timeline, 0, len(tl))
	for _, s := range tl {
		if n := len(merged); n > 0 && merged[n-1].Occupant == s.Occupant {
			merged[n-1].End = s.End
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

func (tl Timeline) Spans() []Span {
	spans := make([]Span, 0, len(tl))
	start := 0
	for _, s := range tl {
		spans = append(spans, Span{Occupant: s.Occupant, Start: start, End: s.End})
		start = s.End
	}
	return spans
}
