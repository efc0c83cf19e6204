package core

import (
	"reflect"
	"testing"
)

func TestTimelineMerge(t *testing.T) {
	var tl Timeline
	for _, s := range []Segment{{Idle, 1}, {Idle, 2}, {1, 3}, {1, 4}, {2, 6}, {1, 7}, {1, 8}} {
		tl.Append(s.Occupant, s.End)
	}

	want := Timeline{{Idle, 2}, {1, 4}, {2, 6}, {1, 8}}
	merged := tl.Merge()
	if !reflect.DeepEqual(merged, want) {
		t.Errorf("Merge() = %v, want %v", merged, want)
	}
	if again := merged.Merge(); !reflect.DeepEqual(again, merged) {
		t.Errorf("Merge is not idempotent: %v", again)
	}
	if len(tl) != 7 {
		t.Errorf("Merge modified the raw timeline: %v", tl)
	}
	if tl.End() != 8 || (Timeline{}).End() != 0 {
		t.Errorf("End() = %d", tl.End())
	}
}

func TestTimelineSpans(t *testing.T) {
	spans := Timeline{{Idle, 2}, {3, 5}, {1, 9}}.Spans()
	want := []Span{{Idle, 0, 2}, {3, 2, 5}, {1, 5, 9}}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("Spans() = %v, want %v", spans, want)
	}
	if spans[0].Label() != "IDLE" || spans[1].Label() != "P3" {
		t.Errorf("labels %q %q", spans[0].Label(), spans[1].Label())
	}
}
