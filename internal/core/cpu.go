package core

// CpuMetric summarizes how the cpu spent the virtual time of a run.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
	ContextSwitches int
}

// Utilization is the busy fraction of the run, 0 for an empty run.
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}

// Throughput is completed processes per unit of virtual time.
func (m CpuMetric) Throughput(processCount int) float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(processCount) / float64(m.TotalTime)
}

// CPU is a single virtual core. It owns the clock of a run and records every
// slice it executes or sits idle into its timeline.
type CPU struct {
	clock    int
	timeline Timeline
	metric   CpuMetric
	last     int
}

func NewCPU() *CPU {
	return &CPU{}
}

func (c *CPU) Clock() int {
	return c.clock
}

func (c *CPU) Timeline() Timeline {
	return c.timeline
}

// Execute runs p for units of virtual time, dispatching it first if it never
// ran, and finishes it when nothing remains.
func (c *CPU) Execute(p *Process, units int) {
	if units > p.Remaining {
		units = p.Remaining
	}
	p.Dispatch(c.clock)
	if c.last != Idle && c.last != p.Pid {
		c.metric.ContextSwitches++
	}
	c.last = p.Pid

	p.Remaining -= units
	c.clock += units
	c.metric.UtilizationTime += units
	c.timeline.Append(p.Pid, c.clock)

	if p.Done() {
		p.Finish(c.clock)
	}
}

// IdleUntil leaves the cpu idle up to t as a single segment.
func (c *CPU) IdleUntil(t int) {
	if t <= c.clock {
		return
	}
	c.metric.IdleTime += t - c.clock
	c.clock = t
	c.timeline.Append(Idle, c.clock)
}

// IdleTick leaves the cpu idle for one unit of time.
func (c *CPU) IdleTick() {
	c.IdleUntil(c.clock + 1)
}

func (c *CPU) Metric() CpuMetric {
	m := c.metric
	m.TotalTime = c.clock
	return m
}
