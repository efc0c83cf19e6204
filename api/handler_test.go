package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/responses"
)

const srtfJobs = `{"jobs":[
	{"process_id":1,"arrival_time":0,"burst_time":7},
	{"process_id":2,"arrival_time":2,"burst_time":4},
	{"process_id":3,"arrival_time":4,"burst_time":1},
	{"process_id":4,"arrival_time":5,"burst_time":4}
]}`

func newTestApp() *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New()
	Register(app, NewSchedulerHandlerImpl(&config.SchedulerConfig{RoundRobinTimeQuantum: 2}, logger))
	return app
}

func post(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestShortestRemainingTimeFirstEndpoint(t *testing.T) {
	resp := post(t, newTestApp(), "/api/v1/srtf", srtfJobs)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}

	var body responses.ScheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	want := []int{16, 7, 5, 11}
	for i, d := range body.Details {
		if d.CompletionTime != want[i] {
			t.Errorf("P%d completion %d, want %d", d.ProcessId, d.CompletionTime, want[i])
		}
	}
	if len(body.Timeline) != 6 {
		t.Errorf("timeline %+v", body.Timeline)
	}
}

func TestRoundRobinUsesConfiguredQuantum(t *testing.T) {
	resp := post(t, newTestApp(), "/api/v1/rr", srtfJobs)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var body responses.ScheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.TimeQuantum != 2 {
		t.Errorf("time quantum %d, want 2", body.TimeQuantum)
	}
}

func TestAllAlgorithmsEndpoint(t *testing.T) {
	resp := post(t, newTestApp(), "/api/v1/all", srtfJobs)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var body map[string]responses.ScheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"fcfs", "sjf", "srtf", "priority", "priority-preemptive", "rr"} {
		if len(body[name].Details) != 4 {
			t.Errorf("%s: %+v", name, body[name])
		}
	}
}

func TestEndpointErrors(t *testing.T) {
	app := newTestApp()
	tests := []struct {
		path, body string
		status     int
	}{
		{"/api/v1/fcfs", `{"jobs":`, fiber.StatusBadRequest},
		{"/api/v1/fcfs", `{"jobs":[]}`, fiber.StatusUnprocessableEntity},
		{"/api/v1/sjf", `{"jobs":[{"process_id":1,"arrival_time":0,"burst_time":0}]}`, fiber.StatusUnprocessableEntity},
		{"/api/v1/rr", `{"jobs":[{"process_id":1,"burst_time":2}],"time_quantum":-1}`, fiber.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		resp := post(t, app, tt.path, tt.body)
		if resp.StatusCode != tt.status {
			t.Errorf("POST %s %s: status %d, want %d", tt.path, tt.body, resp.StatusCode, tt.status)
		}
	}
}
