package schedulers

// processQueue is the fifo ready queue of round robin, holding arrival order
// positions.
type processQueue struct {
	queue []int
}

func newProcessQueue(capacity int) *processQueue {
	return &processQueue{queue: make([]int, 0, capacity)}
}

func (p *processQueue) AddToEnd(position int) {
	p.queue = append(p.queue, position)
}

func (p *processQueue) RemoveFromTop() (int, bool) {
	if len(p.queue) > 0 {
		item := p.queue[0]
		p.queue = p.queue[1:]
		return item, true
	}
	return 0, false
}

// scheduleRoundRobin grants each ready process at most timeQuantum units in
// turn. Processes that arrive during a slice join the queue before the
// process whose slice just ended.
func scheduleRoundRobin(r *run, timeQuantum int) {
	queue := newProcessQueue(len(r.procs))
	r.admit(queue.AddToEnd)

	for !r.finished() {
		i, ok := queue.RemoveFromTop()
		if !ok {
			r.cpu.IdleTick()
			r.admit(queue.AddToEnd)
			continue
		}

		r.execute(i, timeQuantum)
		r.admit(queue.AddToEnd)
		if !r.procs[i].Done() {
			queue.AddToEnd(i)
		}
	}
}
