package requests

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrInvalidRecord = errors.New("invalid process record")

// LoadJobs reads CSV rows of the form pid,burst,arrival[,priority]. Blank
// lines and lines starting with # are skipped.
func LoadJobs(r io.Reader) ([]Job, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	jobs := make([]Job, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("%w: line %d has %d fields, want 3 or 4", ErrInvalidRecord, i+1, len(row))
		}
		fields := make([]int, 4)
		for j, cell := range row {
			v, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidRecord, i+1, err)
			}
			fields[j] = v
		}
		jobs = append(jobs, Job{
			ProcessId:   fields[0],
			BurstTime:   fields[1],
			ArrivalTime: fields[2],
			Priority:    fields[3],
		})
	}
	return jobs, nil
}
