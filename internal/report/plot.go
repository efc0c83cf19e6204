package report

import (
	"fmt"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"cpu-scheduler/internal/responses"
)

const barHeight = 0.8

// GanttPlot draws the timeline as one row of bars per process, in pid
// order. Idle spans are left blank.
func GanttPlot(resp responses.ScheduleResponse) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = Title(resp)
	p.X.Label.Text = "time"
	p.X.Min = 0
	p.X.Max = float64(resp.TotalTime)

	rows := make(map[int]int, len(resp.Details))
	names := make([]string, len(resp.Details))
	for i, d := range resp.Details {
		rows[d.ProcessId] = i
		names[i] = fmt.Sprintf("P%d", d.ProcessId)
	}

	for _, s := range resp.Timeline {
		row, ok := rows[s.ProcessId]
		if !ok {
			continue
		}
		y := float64(row)
		bar, err := plotter.NewPolygon(plotter.XYs{
			{X: float64(s.Start), Y: y - barHeight/2},
			{X: float64(s.End), Y: y - barHeight/2},
			{X: float64(s.End), Y: y + barHeight/2},
			{X: float64(s.Start), Y: y + barHeight/2},
		})
		if err != nil {
			return nil, err
		}
		bar.Color = plotutil.Color(row)
		p.Add(bar)
	}
	p.NominalY(names...)
	return p, nil
}

// WriteGanttPNG renders the gantt plot of resp as a PNG image.
func WriteGanttPNG(w io.Writer, resp responses.ScheduleResponse) error {
	p, err := GanttPlot(resp)
	if err != nil {
		return err
	}
	height := vg.Length(len(resp.Details)+2) * vg.Inch / 2
	wt, err := p.WriterTo(8*vg.Inch, height, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

func SaveGanttPNG(path string, resp responses.ScheduleResponse) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteGanttPNG(f, resp); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
