package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/responses"
)

// Render writes the title, the gantt table and the process table of one run.
func Render(w io.Writer, resp responses.ScheduleResponse) {
	outputTitle(w, Title(resp))
	outputGantt(w, resp.Timeline)
	outputSchedule(w, resp)
}

func Title(resp responses.ScheduleResponse) string {
	if resp.TimeQuantum > 0 {
		return fmt.Sprintf("%s (Quantum=%d)", resp.Title, resp.TimeQuantum)
	}
	return resp.Title
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, strings.Repeat("=", len(title)+8))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", 4), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("=", len(title)+8))
}

func outputGantt(w io.Writer, timeline []responses.SegmentResponse) {
	_, _ = fmt.Fprintln(w, "Gantt Chart:")
	rows := make([][]string, 0, len(timeline))
	for _, s := range timeline {
		rows = append(rows, []string{s.Label, fmt.Sprint(s.Start), fmt.Sprint(s.End)})
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Start Time", "Completion Time"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.AppendBulk(rows)
	table.Render()
	_, _ = fmt.Fprintln(w)
}

func outputSchedule(w io.Writer, resp responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Process Execution Table:")
	rows := make([][]string, 0, len(resp.Details))
	for _, p := range resp.Details {
		rows = append(rows, []string{
			fmt.Sprint(p.ProcessId),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.StartTime),
			fmt.Sprint(p.CompletionTime),
			fmt.Sprint(p.TurnAroundTime),
			fmt.Sprint(p.WaitingTime),
		})
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrival", "Burst", "Priority", "Start", "CT", "TAT", "WT"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", resp.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", resp.AverageWaitingTime)})
	table.Render()

	_, _ = fmt.Fprintf(w, "Average Turnaround Time: %.2f\n", resp.AverageTurnAroundTime)
	_, _ = fmt.Fprintf(w, "Average Waiting Time:    %.2f\n", resp.AverageWaitingTime)
	_, _ = fmt.Fprintf(w, "Average Response Time:   %.2f\n", resp.AverageResponseTime)
	_, _ = fmt.Fprintf(w, "CPU Utilization:         %.2f%%\n", resp.CpuUtilization*100)
	_, _ = fmt.Fprintf(w, "Throughput:              %.2f/t\n", resp.CpuThroughput)
}
