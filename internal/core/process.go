package core

import (
	"errors"
	"fmt"
	"sort"

	"github.com/markphelps/optional"
)

var ErrInvalidProcess = errors.New("invalid process")

// Process is one simulated job. Pid, Arrival, Burst and Priority are inputs;
// the remaining fields are filled in by a scheduling run.
type Process struct {
	Pid      int
	Arrival  int
	Burst    int
	Priority int // lower number is more urgent

	Remaining  int
	Start      optional.Int
	Completion int
	Turnaround int
	Waiting    int
}

func NewProcess(pid, arrival, burst, priority int) Process {
	return Process{
		Pid:       pid,
		Arrival:   arrival,
		Burst:     burst,
		Priority:  priority,
		Remaining: burst,
	}
}

// Dispatch records the first time the process gets the cpu.
func (p *Process) Dispatch(t int) {
	if !p.Start.Present() {
		p.Start.Set(t)
	}
}

// Finish freezes the run outputs once the process is done at time t.
func (p *Process) Finish(t int) {
	p.Remaining = 0
	p.Completion = t
	p.Turnaround = p.Completion - p.Arrival
	p.Waiting = p.Turnaround - p.Burst
}

func (p *Process) Done() bool {
	return p.Remaining == 0
}

// Response is the delay between arrival and first dispatch, -1 if the
// process never ran.
func (p *Process) Response() int {
	start, err := p.Start.Get()
	if err != nil {
		return -1
	}
	return start - p.Arrival
}

func (p Process) String() string {
	return fmt.Sprintf("P%d", p.Pid)
}

// Snapshot returns an independent copy of processes with every run output
// reset, so a run never sees results of another one.
func Snapshot(processes []Process) []Process {
	snapshot := make([]Process, len(processes))
	for i, p := range processes {
		snapshot[i] = NewProcess(p.Pid, p.Arrival, p.Burst, p.Priority)
	}
	return snapshot
}

// SortByArrival orders processes by arrival time, then pid.
func SortByArrival(processes []Process) {
	sort.SliceStable(processes, func(i, j int) bool {
		if processes[i].Arrival != processes[j].Arrival {
			return processes[i].Arrival < processes[j].Arrival
		}
		return processes[i].Pid < processes[j].Pid
	})
}

// SortByPid orders processes for display.
func SortByPid(processes []Process) {
	sort.SliceStable(processes, func(i, j int) bool {
		return processes[i].Pid < processes[j].Pid
	})
}

// Validate checks the input contract every algorithm relies on.
func Validate(processes []Process) error {
	if len(processes) == 0 {
		return fmt.Errorf("%w: no processes given", ErrInvalidProcess)
	}
	seen := make(map[int]struct{}, len(processes))
	for _, p := range processes {
		switch {
		case p.Pid <= 0:
			return fmt.Errorf("%w: pid %d must be positive", ErrInvalidProcess, p.Pid)
		case p.Arrival < 0:
			return fmt.Errorf("%w: %v has negative arrival time %d", ErrInvalidProcess, p, p.Arrival)
		case p.Burst <= 0:
			return fmt.Errorf("%w: %v has non-positive burst time %d", ErrInvalidProcess, p, p.Burst)
		}
		if _, ok := seen[p.Pid]; ok {
			return fmt.Errorf("%w: duplicate pid %d", ErrInvalidProcess, p.Pid)
		}
		seen[p.Pid] = struct{}{}
	}
	return nil
}
