package schedulers

// scheduleFirstComeFirstServe runs processes to completion in arrival order,
// idling the cpu until the next arrival whenever it runs dry.
func scheduleFirstComeFirstServe(r *run) {
	for i := range r.procs {
		r.cpu.IdleUntil(r.procs[i].Arrival)
		r.next = i + 1
		r.execute(i, r.procs[i].Burst)
	}
}
