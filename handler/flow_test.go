package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"lalibela_manager/workflow"
)

func flowApp() *fiber.App {
	app := fiber.New()
	flow := app.Group("/reservations/flow")
	flow.Post("/", StartFlow)
	flow.Get("/:sessionId", GetFlow)
	flow.Post("/:sessionId/arrival", FlowArrival)
	flow.Post("/:sessionId/back", FlowBack)
	app.Get("/reservations/availability", GetAvailability)
	return app
}

type flowResponse struct {
	Status string           `json:"status"`
	Data   workflow.Session `json:"data"`
}

func decodeFlow(t *testing.T, body io.Reader) flowResponse {
	t.Helper()
	var out flowResponse
	if err := json.NewDecoder(body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return out
}

func TestStartAndGetFlow(t *testing.T) {
	app := flowApp()

	resp, err := app.Test(httptest.NewRequest("POST", "/reservations/flow/", nil))
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("start status %d, want 201", resp.StatusCode)
	}
	started := decodeFlow(t, resp.Body)
	if started.Data.ID == "" {
		t.Fatal("started session has no id")
	}
	if started.Data.Step != workflow.StepArrival {
		t.Errorf("step %q, want %q", started.Data.Step, workflow.StepArrival)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/reservations/flow/"+started.Data.ID, nil))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("get status %d, want 200", resp.StatusCode)
	}
}

func TestGetFlowUnknownSession(t *testing.T) {
	app := flowApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/reservations/flow/nope", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status %d, want 404 for an unknown session", resp.StatusCode)
	}
}

func TestFlowArrival(t *testing.T) {
	app := flowApp()

	resp, err := app.Test(httptest.NewRequest("POST", "/reservations/flow/", nil))
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	id := decodeFlow(t, resp.Body).Data.ID

	post := func(body string) (int, flowResponse) {
		req := httptest.NewRequest("POST", "/reservations/flow/"+id+"/arrival", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("arrival: %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			return resp.StatusCode, flowResponse{}
		}
		return resp.StatusCode, decodeFlow(t, resp.Body)
	}

	if code, _ := post(`{"date": "2001-01-01", "time": "7:00 PM", "guests": "2"}`); code != fiber.StatusBadRequest {
		t.Errorf("past date: status %d, want 400", code)
	}
	if code, _ := post(`{"date": "2030-01-04", "time": "3:00 PM", "guests": "2"}`); code != fiber.StatusBadRequest {
		t.Errorf("off-slot time: status %d, want 400", code)
	}

	code, out := post(`{"date": "2030-01-04", "time": "7:00 PM", "guests": "4"}`)
	if code != fiber.StatusOK {
		t.Fatalf("valid arrival: status %d, want 200", code)
	}
	if out.Data.Step != workflow.StepAtmosphere {
		t.Errorf("step %q, want %q", out.Data.Step, workflow.StepAtmosphere)
	}
	if out.Data.Date != "2030-01-04" || out.Data.Guests != "4" {
		t.Errorf("session %+v", out.Data)
	}

	// Back returns to arrival from atmosphere.
	resp, err = app.Test(httptest.NewRequest("POST", "/reservations/flow/"+id+"/back", nil))
	if err != nil {
		t.Fatalf("back: %v", err)
	}
	back := decodeFlow(t, resp.Body)
	if back.Data.Step != workflow.StepArrival {
		t.Errorf("after back: step %q, want %q", back.Data.Step, workflow.StepArrival)
	}
}

func TestGetAvailabilitySlots(t *testing.T) {
	app := flowApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/reservations/availability?date=2030-01-04", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status %d, want 200", resp.StatusCode)
	}
	var out struct {
		Data struct {
			Slots            []string `json:"slots"`
			OccupiedTableIds []string `json:"occupiedTableIds"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// 2030-01-04 is a Friday, the half-hour evening grid.
	if len(out.Data.Slots) != 9 {
		t.Errorf("got %d slots, want 9: %v", len(out.Data.Slots), out.Data.Slots)
	}
	if len(out.Data.OccupiedTableIds) != 0 {
		t.Errorf("occupied %v without a time filter, want empty", out.Data.OccupiedTableIds)
	}
}

func TestGetAvailabilityBadRequest(t *testing.T) {
	app := flowApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/reservations/availability", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("missing date: status %d, want 400", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/reservations/availability?date=Friday", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("unparseable date: status %d, want 400", resp.StatusCode)
	}
}
