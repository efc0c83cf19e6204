package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"
)

const exitChoice = 7

var ErrInputClosed = errors.New("input closed")

// Menu is the interactive front end: it collects the process list once and
// then runs whichever algorithm the user picks until they exit.
type Menu struct {
	words *bufio.Scanner
	out   io.Writer
	log   logrus.FieldLogger
	// GanttDir, when set, receives a PNG gantt chart for every run.
	GanttDir string
}

func NewMenu(in io.Reader, out io.Writer, logger logrus.FieldLogger) *Menu {
	words := bufio.NewScanner(in)
	words.Split(bufio.ScanWords)
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Menu{words: words, out: out, log: logger}
}

func (m *Menu) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(m.out, format, args...)
}

func (m *Menu) readInt(prompt string) (int, error) {
	m.printf("%s", prompt)
	if !m.words.Scan() {
		if err := m.words.Err(); err != nil {
			return 0, err
		}
		return 0, ErrInputClosed
	}
	return strconv.Atoi(m.words.Text())
}

// ReadProcesses asks for the process count and then arrival, burst and
// priority of each process. Pids are assigned 1..n.
func (m *Menu) ReadProcesses() ([]core.Process, error) {
	n, err := m.readInt("Enter the number of processes: ")
	if err != nil {
		return nil, fmt.Errorf("reading process count: %w", err)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: process count must be positive, got %d", core.ErrInvalidProcess, n)
	}

	processes := make([]core.Process, 0, n)
	for pid := 1; pid <= n; pid++ {
		m.printf("--- Process P%d ---\n", pid)
		arrival, err := m.readInt("Arrival Time: ")
		if err != nil {
			return nil, fmt.Errorf("reading arrival of P%d: %w", pid, err)
		}
		burst, err := m.readInt("Burst Time:   ")
		if err != nil {
			return nil, fmt.Errorf("reading burst of P%d: %w", pid, err)
		}
		priority, err := m.readInt("Priority (Lower # = Higher Priority): ")
		if err != nil {
			return nil, fmt.Errorf("reading priority of P%d: %w", pid, err)
		}
		processes = append(processes, core.NewProcess(pid, arrival, burst, priority))
	}
	return processes, core.Validate(processes)
}

func (m *Menu) printChoices() {
	m.printf("\nChoose Scheduling Algorithm (Enter %d to Exit):\n", exitChoice)
	for i, alg := range schedulers.Algorithms {
		m.printf("%d. %s\n", i+1, alg.Title())
	}
	m.printf("%d. Exit\n", exitChoice)
}

// Loop runs the selection loop over processes until the exit choice or the
// end of input. Every run starts from the same original list.
func (m *Menu) Loop(processes []core.Process) error {
	for {
		m.printChoices()
		choice, err := m.readInt("Enter your choice: ")
		switch {
		case errors.Is(err, ErrInputClosed):
			return nil
		case err != nil && m.words.Err() != nil:
			return err
		case err != nil:
			choice = 0
		}

		if choice == exitChoice {
			m.printf("Exiting...\n")
			return nil
		}
		if choice < 1 || choice > len(schedulers.Algorithms) {
			m.log.WithField("choice", choice).Warn(schedulers.ErrUnknownAlgorithm)
			m.printf("Invalid Choice\n")
			continue
		}

		alg := schedulers.Algorithms[choice-1]
		opts := Options{Algorithms: []schedulers.Algorithm{alg}, GanttDir: m.GanttDir}
		if alg == schedulers.RoundRobin {
			quantum, err := m.readInt("Enter Time Quantum: ")
			if errors.Is(err, ErrInputClosed) {
				return nil
			}
			if err != nil {
				m.printf("Invalid Time Quantum\n")
				continue
			}
			opts.TimeQuantum = quantum
		}

		if err := RunBatch(m.out, processes, opts, m.log); err != nil {
			m.log.WithError(err).Warn("scheduling failed")
			m.printf("Error: %v\n", err)
		}
	}
}
