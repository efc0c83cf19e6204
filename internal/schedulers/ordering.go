package schedulers

import (
	"container/heap"

	"cpu-scheduler/internal/core"
)

// lessFunc reports whether a should get the cpu before b. Processes it
// considers equal fall back to their arrival order position.
type lessFunc func(a, b *core.Process) bool

func shortestBurst(a, b *core.Process) bool {
	return a.Burst < b.Burst
}

func shortestRemaining(a, b *core.Process) bool {
	return a.Remaining < b.Remaining
}

// highestPriority puts the lower priority number first, then the earlier
// arrival.
func highestPriority(a, b *core.Process) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.Arrival < b.Arrival
}

// readyQueue is a min-heap of positions into the arrival ordered processes
// of a run.
type readyQueue struct {
	procs     []core.Process
	positions []int
	less      lessFunc
}

func newReadyQueue(procs []core.Process, less lessFunc) *readyQueue {
	return &readyQueue{
		procs:     procs,
		positions: make([]int, 0, len(procs)),
		less:      less,
	}
}

func (q *readyQueue) Len() int {
	return len(q.positions)
}

func (q *readyQueue) Less(i, j int) bool {
	a, b := q.positions[i], q.positions[j]
	switch {
	case q.less(&q.procs[a], &q.procs[b]):
		return true
	case q.less(&q.procs[b], &q.procs[a]):
		return false
	}
	return a < b
}

func (q *readyQueue) Swap(i, j int) {
	q.positions[i], q.positions[j] = q.positions[j], q.positions[i]
}

func (q *readyQueue) Push(x interface{}) {
	q.positions = append(q.positions, x.(int))
}

func (q *readyQueue) Pop() interface{} {
	old := q.positions
	n := len(old)
	x := old[n-1]
	q.positions = old[0 : n-1]
	return x
}

func (q *readyQueue) push(position int) {
	heap.Push(q, position)
}

func (q *readyQueue) pop() int {
	return heap.Pop(q).(int)
}
