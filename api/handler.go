package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	PriorityNonPreemptive(ctx *fiber.Ctx) error
	PriorityPreemptive(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	log    logrus.FieldLogger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger logrus.FieldLogger) *SchedulerHandlerImpl {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &SchedulerHandlerImpl{config: config, log: logger}
}

// Register mounts every scheduling endpoint under /api/v1.
func Register(app *fiber.App, handler SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/srtf", handler.ShortestRemainingTimeFirst)
		v1.Post("/priority", handler.PriorityNonPreemptive)
		v1.Post("/priority-preemptive", handler.PriorityPreemptive)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/all", handler.AllAlgorithms)
	}
}

func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, error) {
	request := new(requests.ScheduleRequests)
	if err := ctx.BodyParser(request); err != nil {
		return nil, err
	}
	if request.TimeQuantum == 0 {
		request.TimeQuantum = s.config.RoundRobinTimeQuantum
	}
	return request, nil
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, alg schedulers.Algorithm) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	response, err := schedulers.ScheduleRequest(alg, request, s.log)
	if err != nil {
		return s.fail(ctx, alg, err)
	}

	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, alg schedulers.Algorithm, err error) error {
	s.log.WithError(err).WithField("algorithm", alg).Warn("can not process request")
	status := fiber.StatusInternalServerError
	if errors.Is(err, core.ErrInvalidProcess) || errors.Is(err, schedulers.ErrInvalidQuantum) {
		status = fiber.StatusUnprocessableEntity
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestRemainingTimeFirst)
}

func (s *SchedulerHandlerImpl) PriorityNonPreemptive(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityNonPreemptive)
}

func (s *SchedulerHandlerImpl) PriorityPreemptive(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityPreemptive)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

// AllAlgorithms runs every algorithm on the same jobs, keyed by algorithm
// name.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}

	all := make(map[string]responses.ScheduleResponse, len(schedulers.Algorithms))
	for _, alg := range schedulers.Algorithms {
		response, err := schedulers.ScheduleRequest(alg, request, s.log)
		if err != nil {
			return s.fail(ctx, alg, err)
		}
		all[string(alg)] = response
	}
	return ctx.JSON(all)
}
