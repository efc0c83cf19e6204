package util

import (
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat"

	"cpu-scheduler/internal/responses"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// Mean is the arithmetic mean of values, 0 for an empty list.
func Mean[T Number](values []T) float64 {
	if len(values) == 0 {
		return 0
	}
	xs := make([]float64, len(values))
	for i, v := range values {
		xs[i] = float64(v)
	}
	return stat.Mean(xs, nil)
}

func CalculateAverage(proccessDetails []responses.ProcessResponse) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	waitingTimes := make([]int, len(proccessDetails))
	responseTimes := make([]int, len(proccessDetails))
	turnAroundTimes := make([]int, len(proccessDetails))

	for i, proccess := range proccessDetails {
		waitingTimes[i] = proccess.WaitingTime
		responseTimes[i] = proccess.ResponseTime
		turnAroundTimes[i] = proccess.TurnAroundTime
	}

	averageWaitingTime = Mean(waitingTimes)
	averageResponseTime = Mean(responseTimes)
	averageTurnAroundTime = Mean(turnAroundTimes)
	return
}
