package schedulers

// scheduleNonPreemptive picks the most eligible ready process by less each
// time the cpu frees up and runs it to completion. With nothing ready the cpu
// jumps straight to the next arrival.
//
// It drives both shortest job first (by burst) and non-preemptive priority
// scheduling.
func scheduleNonPreemptive(r *run, less lessFunc) {
	ready := newReadyQueue(r.procs, less)
	for !r.finished() {
		r.admit(ready.push)
		if ready.Len() == 0 {
			r.cpu.IdleUntil(r.nextArrival())
			continue
		}
		i := ready.pop()
		r.execute(i, r.procs[i].Remaining)
	}
}

// schedulePreemptive re-decides every unit of time: the most eligible ready
// process runs for one unit and goes back to compete with anything that
// arrived meanwhile. Idle time also advances one unit at a time.
//
// It drives shortest remaining time first and preemptive priority
// scheduling.
func schedulePreemptive(r *run, less lessFunc) {
	ready := newReadyQueue(r.procs, less)
	for !r.finished() {
		r.admit(ready.push)
		if ready.Len() == 0 {
			r.cpu.IdleTick()
			continue
		}
		i := ready.pop()
		r.execute(i, 1)
		if !r.procs[i].Done() {
			ready.push(i)
		}
	}
}
