package schedulers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
)

var (
	ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")
	ErrInvalidQuantum   = errors.New("time quantum must be positive")
)

type Algorithm string

const (
	FirstComeFirstServe        Algorithm = "fcfs"
	ShortestJobFirst           Algorithm = "sjf"
	ShortestRemainingTimeFirst Algorithm = "srtf"
	PriorityNonPreemptive      Algorithm = "priority"
	PriorityPreemptive         Algorithm = "priority-preemptive"
	RoundRobin                 Algorithm = "rr"
)

// Algorithms lists every supported algorithm in menu order.
var Algorithms = []Algorithm{
	FirstComeFirstServe,
	ShortestJobFirst,
	ShortestRemainingTimeFirst,
	PriorityNonPreemptive,
	PriorityPreemptive,
	RoundRobin,
}

var titles = map[Algorithm]string{
	FirstComeFirstServe:        "First Come First Serve (FCFS)",
	ShortestJobFirst:           "Shortest Job First (Non-preemptive)",
	ShortestRemainingTimeFirst: "Shortest Job First (Preemptive) / SRTF",
	PriorityNonPreemptive:      "Priority Scheduling (Non-preemptive)",
	PriorityPreemptive:         "Priority Scheduling (Preemptive)",
	RoundRobin:                 "Round Robin",
}

func ParseAlgorithm(name string) (Algorithm, error) {
	alg := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := titles[alg]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return alg, nil
}

func (a Algorithm) Title() string {
	if title, ok := titles[a]; ok {
		return title
	}
	return string(a)
}

type Options struct {
	// TimeQuantum is only read by RoundRobin.
	TimeQuantum int
	Logger      logrus.FieldLogger
}

// Result is the frozen outcome of one run. Processes are in arrival order
// and Timeline is unmerged.
type Result struct {
	Algorithm   Algorithm
	TimeQuantum int
	Processes   []core.Process
	Timeline    core.Timeline
	Metric      core.CpuMetric
}

// Schedule simulates alg over a private snapshot of processes. The caller's
// slice is left untouched.
func Schedule(alg Algorithm, processes []core.Process, opts Options) (*Result, error) {
	if _, ok := titles[alg]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
	if err := core.Validate(processes); err != nil {
		return nil, err
	}
	if alg == RoundRobin && opts.TimeQuantum <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidQuantum, opts.TimeQuantum)
	}

	r := newRun(alg, processes, opts)
	r.log.Debug("running scheduling algorithm")

	switch alg {
	case FirstComeFirstServe:
		scheduleFirstComeFirstServe(r)
	case ShortestJobFirst:
		scheduleNonPreemptive(r, shortestBurst)
	case ShortestRemainingTimeFirst:
		schedulePreemptive(r, shortestRemaining)
	case PriorityNonPreemptive:
		scheduleNonPreemptive(r, highestPriority)
	case PriorityPreemptive:
		schedulePreemptive(r, highestPriority)
	case RoundRobin:
		scheduleRoundRobin(r, opts.TimeQuantum)
	}

	result := &Result{
		Algorithm: alg,
		Processes: r.procs,
		Timeline:  r.cpu.Timeline(),
		Metric:    r.cpu.Metric(),
	}
	if alg == RoundRobin {
		result.TimeQuantum = opts.TimeQuantum
	}
	r.log.WithFields(logrus.Fields{
		"total_time": result.Metric.TotalTime,
		"idle_time":  result.Metric.IdleTime,
	}).Debug("scheduling algorithm finished")
	return result, nil
}

// run holds everything one simulation owns. Nothing in it outlives the call
// to Schedule that created it.
type run struct {
	procs     []core.Process
	next      int
	completed int
	cpu       *core.CPU
	log       *logrus.Entry
}

func newRun(alg Algorithm, processes []core.Process, opts Options) *run {
	procs := core.Snapshot(processes)
	core.SortByArrival(procs)

	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	fields := logrus.Fields{
		"algorithm": alg,
		"processes": len(procs),
	}
	if alg == RoundRobin {
		fields["time_quantum"] = opts.TimeQuantum
	}

	return &run{
		procs: procs,
		cpu:   core.NewCPU(),
		log:   logger.WithFields(fields),
	}
}

// admit hands every process that has arrived by now to ready, in arrival
// order.
func (r *run) admit(ready func(position int)) {
	for r.next < len(r.procs) && r.procs[r.next].Arrival <= r.cpu.Clock() {
		ready(r.next)
		r.next++
	}
}

// nextArrival is the arrival time of the first process not yet admitted.
func (r *run) nextArrival() int {
	if r.next < len(r.procs) {
		return r.procs[r.next].Arrival
	}
	return r.cpu.Clock()
}

func (r *run) execute(position, units int) {
	p := &r.procs[position]
	r.cpu.Execute(p, units)
	if p.Done() {
		r.completed++
		r.log.WithFields(logrus.Fields{
			"pid":        p.Pid,
			"completion": p.Completion,
			"waiting":    p.Waiting,
		}).Debug("process completed")
	}
}

func (r *run) finished() bool {
	return r.completed == len(r.procs)
}
