package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
	"cpu-scheduler/internal/cli"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/schedulers"
)

func main() {
	var (
		serve      = flag.Bool("serve", false, "serve the scheduling HTTP API")
		configPath = flag.String("config", "", "configuration file (default ./config.yaml)")
		file       = flag.String("file", "", "CSV file of pid,burst,arrival[,priority] rows; interactive when empty")
		algorithm  = flag.String("algorithm", "all", "algorithm to run on -file: "+algorithmNames()+" or all")
		quantum    = flag.Int("quantum", 0, "round robin time quantum (default from config)")
	)
	flag.Parse()

	conf, err := loadConfig(*configPath)
	if err != nil {
		logrus.WithError(err).Fatal("loading configuration")
	}
	logger, err := conf.Logger()
	if err != nil {
		logrus.WithError(err).Fatal("configuring logger")
	}

	switch {
	case *serve:
		err = runServer(conf, logger)
	case *file != "":
		err = runFile(conf, logger, *file, *algorithm, *quantum)
	default:
		err = runMenu(conf, logger)
	}
	if err != nil {
		logger.WithError(err).Fatal("cpu scheduler failed")
	}
}

func loadConfig(path string) (*config.SchedulerConfig, error) {
	if path == "" {
		return config.GetSchedulerConfig(), nil
	}
	return config.Load(path)
}

func algorithmNames() string {
	names := make([]string, len(schedulers.Algorithms))
	for i, alg := range schedulers.Algorithms {
		names[i] = string(alg)
	}
	return strings.Join(names, ", ")
}

func runServer(conf *config.SchedulerConfig, logger *logrus.Logger) error {
	app := fiber.New()
	api.Register(app, api.NewSchedulerHandlerImpl(conf, logger))

	addr := fmt.Sprintf(":%d", conf.Port)
	logger.WithField("addr", addr).Info("serving scheduler api")
	return app.Listen(addr)
}

func runFile(conf *config.SchedulerConfig, logger *logrus.Logger, path, algorithm string, quantum int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening scheduling file: %w", err)
	}
	defer f.Close()

	jobs, err := requests.LoadJobs(f)
	if err != nil {
		return err
	}
	request := requests.ScheduleRequests{Jobs: jobs}

	opts := cli.Options{
		Algorithms:  schedulers.Algorithms,
		TimeQuantum: quantum,
		GanttDir:    conf.GanttDir,
	}
	if opts.TimeQuantum == 0 {
		opts.TimeQuantum = conf.RoundRobinTimeQuantum
	}
	if algorithm != "all" {
		alg, err := schedulers.ParseAlgorithm(algorithm)
		if err != nil {
			return err
		}
		opts.Algorithms = []schedulers.Algorithm{alg}
	}
	return cli.RunBatch(os.Stdout, request.Processes(), opts, logger)
}

func runMenu(conf *config.SchedulerConfig, logger *logrus.Logger) error {
	fmt.Println("=============================================")
	fmt.Println("         CPU Scheduling Simulator")
	fmt.Println("=============================================")

	menu := cli.NewMenu(os.Stdin, os.Stdout, logger)
	menu.GanttDir = conf.GanttDir
	processes, err := menu.ReadProcesses()
	if err != nil {
		return err
	}
	logger.WithField("processes", len(processes)).Debug("process list collected")
	return menu.Loop(processes)
}
