package schedulers

import "testing"

func drain(q *readyQueue) []int {
	var pids []int
	for q.Len() > 0 {
		pids = append(pids, q.procs[q.pop()].Pid)
	}
	return pids
}

func TestReadyQueueOrdering(t *testing.T) {
	// arrival ordered: positions 0..4
	arrivalOrdered := procs(
		[4]int{1, 0, 6, 2},
		[4]int{2, 0, 3, 2},
		[4]int{3, 1, 3, 1},
		[4]int{4, 2, 8, 1},
		[4]int{5, 2, 3, 0},
	)

	tests := []struct {
		name string
		less lessFunc
		want []int
	}{
		{"shortest burst", shortestBurst, []int{2, 3, 5, 1, 4}},
		{"highest priority", highestPriority, []int{5, 3, 4, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := newReadyQueue(arrivalOrdered, tt.less)
			for _, position := range []int{4, 0, 3, 1, 2} {
				q.push(position)
			}
			got := drain(q)
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestReadyQueueFollowsRemaining(t *testing.T) {
	arrivalOrdered := procs([4]int{1, 0, 5, 0}, [4]int{2, 1, 5, 0})
	q := newReadyQueue(arrivalOrdered, shortestRemaining)
	q.push(0)
	q.push(1)

	first := q.pop()
	if first != 0 {
		t.Fatalf("popped position %d on a tie, want 0", first)
	}
	arrivalOrdered[first].Remaining = 4
	q.push(first)
	if got := q.pop(); got != 0 {
		t.Errorf("popped position %d, want the process with less remaining", got)
	}
	arrivalOrdered[1].Remaining = 1
	q.push(0)
	if got := q.pop(); got != 1 {
		t.Errorf("popped position %d, want 1", got)
	}
}

func TestProcessQueueIsFifo(t *testing.T) {
	q := newProcessQueue(3)
	for _, position := range []int{2, 0, 1} {
		q.AddToEnd(position)
	}
	for _, want := range []int{2, 0, 1} {
		got, ok := q.RemoveFromTop()
		if !ok || got != want {
			t.Fatalf("RemoveFromTop() = %d, %v, want %d", got, ok, want)
		}
	}
	if _, ok := q.RemoveFromTop(); ok {
		t.Error("empty queue returned an item")
	}
}
