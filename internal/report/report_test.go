package report

import (
	"bytes"
	"strings"
	"testing"

	"cpu-scheduler/internal/responses"
)

func sampleResponse() responses.ScheduleResponse {
	return responses.ScheduleResponse{
		Algorithm:             "rr",
		Title:                 "Round Robin",
		TimeQuantum:           2,
		TotalTime:             6,
		IdleTime:              1,
		AverageWaitingTime:    0.5,
		AverageTurnAroundTime: 3,
		CpuUtilization:        5.0 / 6.0,
		CpuThroughput:         2.0 / 6.0,
		Details: []responses.ProcessResponse{
			{ProcessId: 1, BurstTime: 2, CompletionTime: 3, TurnAroundTime: 2, StartTime: 1, ArrivalTime: 1},
			{ProcessId: 2, BurstTime: 3, CompletionTime: 6, TurnAroundTime: 4, WaitingTime: 1, StartTime: 3, ArrivalTime: 2},
		},
		Timeline: []responses.SegmentResponse{
			{Label: "IDLE", Start: 0, End: 1},
			{Label: "P1", ProcessId: 1, Start: 1, End: 3},
			{Label: "P2", ProcessId: 2, Start: 3, End: 6},
		},
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, sampleResponse())
	out := buf.String()

	for _, want := range []string{
		"Round Robin (Quantum=2)",
		"Gantt Chart:",
		"IDLE",
		"COMPLETION TIME",
		"Average Turnaround Time: 3.00",
		"Average Waiting Time:    0.50",
		"CPU Utilization:         83.33%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}
}

func TestWriteGanttPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGanttPNG(&buf, sampleResponse()); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Errorf("output is not a PNG image")
	}
}
