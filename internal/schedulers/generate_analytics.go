package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

// ScheduleRequest runs alg against the jobs of request and reports the
// outcome.
func ScheduleRequest(alg Algorithm, request *requests.ScheduleRequests, logger logrus.FieldLogger) (responses.ScheduleResponse, error) {
	result, err := Schedule(alg, request.Processes(), Options{
		TimeQuantum: request.TimeQuantum,
		Logger:      logger,
	})
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return GenerateResponse(result), nil
}

// GenerateResponse derives per process details sorted by pid, the merged
// timeline and the averages from a finished run.
func GenerateResponse(result *Result) responses.ScheduleResponse {
	processes := make([]core.Process, len(result.Processes))
	copy(processes, result.Processes)
	core.SortByPid(processes)

	proccessDetails := make([]responses.ProcessResponse, 0, len(processes))
	for _, p := range processes {
		proccessDetails = append(proccessDetails, generateProcessDetails(p))
	}
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(proccessDetails)

	spans := result.Timeline.Merge().Spans()
	timeline := make([]responses.SegmentResponse, 0, len(spans))
	for _, s := range spans {
		timeline = append(timeline, responses.SegmentResponse{
			Label:     s.Label(),
			ProcessId: s.Occupant,
			Start:     s.Start,
			End:       s.End,
		})
	}

	metric := result.Metric
	return responses.ScheduleResponse{
		Algorithm:             string(result.Algorithm),
		Title:                 result.Algorithm.Title(),
		TimeQuantum:           result.TimeQuantum,
		TotalTime:             metric.TotalTime,
		IdleTime:              metric.IdleTime,
		ContextSwitches:       metric.ContextSwitches,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		CpuUtilization:        metric.Utilization(),
		CpuThroughput:         metric.Throughput(len(processes)),
		Details:               proccessDetails,
		Timeline:              timeline,
	}
}

func generateProcessDetails(p core.Process) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      p.Pid,
		ArrivalTime:    p.Arrival,
		BurstTime:      p.Burst,
		Priority:       p.Priority,
		StartTime:      p.Start.OrElse(-1),
		CompletionTime: p.Completion,
		TurnAroundTime: p.Turnaround,
		WaitingTime:    p.Waiting,
		ResponseTime:   p.Response(),
	}
}
