package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/schedulers"
)

type Options struct {
	Algorithms  []schedulers.Algorithm
	TimeQuantum int
	// GanttDir, when set, receives <algorithm>.png for every run.
	GanttDir string
}

// RunBatch schedules processes with each requested algorithm in turn and
// renders every report to w.
func RunBatch(w io.Writer, processes []core.Process, opts Options, logger logrus.FieldLogger) error {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	for _, alg := range opts.Algorithms {
		result, err := schedulers.Schedule(alg, processes, schedulers.Options{
			TimeQuantum: opts.TimeQuantum,
			Logger:      logger,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", alg, err)
		}
		resp := schedulers.GenerateResponse(result)
		report.Render(w, resp)

		if opts.GanttDir != "" {
			path := filepath.Join(opts.GanttDir, string(alg)+".png")
			if err := report.SaveGanttPNG(path, resp); err != nil {
				return fmt.Errorf("saving gantt chart of %s: %w", alg, err)
			}
			logger.WithField("path", path).Info("gantt chart written")
		}
	}
	return nil
}
