package core

import (
	"errors"
	"testing"
)

func TestProcessLifecycle(t *testing.T) {
	p := NewProcess(1, 3, 4, 0)
	if p.Remaining != 4 || p.Start.Present() {
		t.Fatalf("new process %+v", p)
	}
	if p.Response() != -1 {
		t.Errorf("response before dispatch %d, want -1", p.Response())
	}

	p.Dispatch(5)
	p.Dispatch(7)
	if start, _ := p.Start.Get(); start != 5 {
		t.Errorf("start %d, want the first dispatch 5", start)
	}

	p.Finish(12)
	if p.Completion != 12 || p.Turnaround != 9 || p.Waiting != 5 || p.Response() != 2 || !p.Done() {
		t.Errorf("finished process %+v", p)
	}
}

func TestSnapshotResetsRunOutputs(t *testing.T) {
	original := []Process{NewProcess(2, 0, 3, 1)}
	original[0].Dispatch(0)
	original[0].Finish(3)

	snapshot := Snapshot(original)
	snapshot[0].Remaining--
	if snapshot[0].Start.Present() || snapshot[0].Completion != 0 || snapshot[0].Remaining != 2 {
		t.Errorf("snapshot %+v", snapshot[0])
	}
	if original[0].Remaining != 0 || original[0].Completion != 3 {
		t.Errorf("original changed: %+v", original[0])
	}
}

func TestSortByArrival(t *testing.T) {
	processes := []Process{
		NewProcess(3, 2, 1, 0),
		NewProcess(2, 0, 1, 0),
		NewProcess(4, 2, 1, 0),
		NewProcess(1, 0, 1, 0),
	}
	SortByArrival(processes)
	for i, want := range []int{1, 2, 3, 4} {
		if processes[i].Pid != want {
			t.Fatalf("order %v", processes)
		}
	}

	SortByPid(processes)
	for i := range processes {
		if processes[i].Pid != i+1 {
			t.Fatalf("order %v", processes)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		processes []Process
		valid     bool
	}{
		{"ok", []Process{NewProcess(1, 0, 1, -3), NewProcess(2, 4, 2, 0)}, true},
		{"empty", nil, false},
		{"zero pid", []Process{NewProcess(0, 0, 1, 0)}, false},
		{"negative arrival", []Process{NewProcess(1, -1, 1, 0)}, false},
		{"zero burst", []Process{NewProcess(1, 0, 0, 0)}, false},
		{"duplicate pid", []Process{NewProcess(1, 0, 1, 0), NewProcess(1, 2, 1, 0)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.processes)
			if tt.valid && err != nil {
				t.Errorf("unexpected error %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidProcess) {
				t.Errorf("got %v, want ErrInvalidProcess", err)
			}
		})
	}
}
