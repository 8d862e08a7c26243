package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/workforce-pulse-go/internal/domain/chat"
	"github.com/cmlabs-hris/workforce-pulse-go/internal/domain/workforce"
	"github.com/cmlabs-hris/workforce-pulse-go/internal/handler/http/response"
	"github.com/cmlabs-hris/workforce-pulse-go/internal/pkg/sse"
	"github.com/cmlabs-hris/workforce-pulse-go/internal/repository/memory"
	"github.com/cmlabs-hris/workforce-pulse-go/internal/service/detector"
	pulseService "github.com/cmlabs-hris/workforce-pulse-go/internal/service/pulse"
)

func handlerFloat64Ptr(f float64) *float64  { return &f }
func handlerTimePtr(t time.Time) *time.Time { return &t }

// handlerTestRoster builds a two-person roster where both employees sit
// roughly 45 minutes from their weekly overtime threshold, so every
// evaluation pass yields exactly two OVERTIME_RISK exceptions.
func handlerTestRoster(now time.Time) []workforce.EmployeeRecord {
	build := func(id, name, role string) workforce.EmployeeRecord {
		return workforce.EmployeeRecord{
			ID:     id,
			Name:   name,
			Role:   role,
			Status: workforce.StatusClockedIn,
			CurrentSession: workforce.EmployeeSession{
				ClockInTime:              handlerTimePtr(now.Add(-45 * time.Minute)),
				Method:                   workforce.MethodMobile,
				FaceMatchScore:           handlerFloat64Ptr(0.9),
				LocationConsistencyScore: handlerFloat64Ptr(0.9),
				DeviceFamiliarityScore:   handlerFloat64Ptr(0.9),
			},
			Baselines: workforce.EmployeeBaselines{
				StartWindow:        workforce.StartWindow{Start: "08:00", End: "09:00"},
				ShiftLengthMinutes: 480,
				BreakLengthMinutes: 30,
			},
			Overtime: workforce.OvertimeState{ThresholdHours: 40, WorkedThisWeekHours: 38.5},
		}
	}
	return []workforce.EmployeeRecord{
		build("emp-1", "Maya Chen", "Shift Lead"),
		build("emp-2", "Jae Park", "Associate"),
	}
}

func newTestPulseHandler(t *testing.T) PulseHandler {
	t.Helper()

	repo := memory.NewEmployeeRepository(handlerTestRoster(time.Now()))
	svc := pulseService.NewPulseService(repo, detector.NewEngine(), workforce.OrgSettings{
		SchedulingEnabled: true,
		OvertimeEnabled:   true,
		KioskPhotoEnabled: true,
		GeofenceEnabled:   true,
	})
	return NewPulseHandler(svc, sse.NewHub())
}

func newPulseServer(t *testing.T) (*httptest.Server, func()) {
	t.Helper()

	router := NewRouter("http://localhost:3000", "test", newTestPulseHandler(t), newNoopChatHandler(t))
	server := httptest.NewServer(router)
	return server, server.Close
}

func newNoopChatHandler(t *testing.T) ChatHandler {
	t.Helper()
	return NewChatHandler(noopChatService{})
}

type noopChatService struct{}

func (noopChatService) Complete(ctx context.Context, req chat.CompletionRequest) (*chat.CompletionResponse, error) {
	return &chat.CompletionResponse{Text: "ok"}, nil
}

func getEnvelope(t *testing.T, server *httptest.Server, path string) (int, response.Response) {
	t.Helper()
	resp, err := http.Get(server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope response.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}

func postEnvelope(t *testing.T, server *httptest.Server, path, body string) (int, response.Response) {
	t.Helper()
	resp, err := http.Post(server.URL+path, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope response.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}

func TestGetSnapshotEndpoint(t *testing.T) {
	server, cleanup := newPulseServer(t)
	defer cleanup()

	status, envelope := getEnvelope(t, server, "/api/v1/workforce/snapshot")

	require.Equal(t, http.StatusOK, status)
	require.True(t, envelope.Success)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Len(t, data["employees"], 2)
	assert.Len(t, data["exceptions"], 2)
	assert.Equal(t, "Overtime risk building", data["status_sentence"])

	counts, ok := data["counts"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), counts["clocked_in"])
	assert.Equal(t, float64(2), counts["approaching_overtime"])
}

func TestListEmployeesEndpoint_Search(t *testing.T) {
	server, cleanup := newPulseServer(t)
	defer cleanup()

	status, envelope := getEnvelope(t, server, "/api/v1/workforce/employees?search=maya")

	require.Equal(t, http.StatusOK, status)
	require.True(t, envelope.Success)

	employees, ok := envelope.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, employees, 1)

	emp, ok := employees[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Maya Chen", emp["name"])
}

func TestListExceptionsEndpoint(t *testing.T) {
	server, cleanup := newPulseServer(t)
	defer cleanup()

	status, envelope := getEnvelope(t, server, "/api/v1/workforce/exceptions")

	require.Equal(t, http.StatusOK, status)
	require.True(t, envelope.Success)

	exceptions, ok := envelope.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, exceptions, 2)

	first, ok := exceptions[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "OVERTIME_RISK", first["type"])
	assert.Equal(t, "emp-1-OVERTIME_RISK", first["id"])
}

func TestGetHeaderEndpoint(t *testing.T) {
	server, cleanup := newPulseServer(t)
	defer cleanup()

	status, envelope := getEnvelope(t, server, "/api/v1/workforce/header")

	require.Equal(t, http.StatusOK, status)
	require.True(t, envelope.Success)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Overtime risk building", data["status_sentence"])
}

func TestDismissEndpoint(t *testing.T) {
	server, cleanup := newPulseServer(t)
	defer cleanup()

	status, envelope := postEnvelope(t, server, "/api/v1/workforce/exceptions/emp-1-OVERTIME_RISK/dismiss", `{}`)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, envelope.Success)
	assert.Equal(t, "Exception dismissed", envelope.Message)

	_, after := getEnvelope(t, server, "/api/v1/workforce/exceptions")
	exceptions, ok := after.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, exceptions, 1)

	remaining, ok := exceptions[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "emp-2-OVERTIME_RISK", remaining["id"])
}

func TestSnoozeEndpoint(t *testing.T) {
	server, cleanup := newPulseServer(t)
	defer cleanup()

	status, envelope := postEnvelope(t, server, "/api/v1/workforce/exceptions/emp-1-OVERTIME_RISK/snooze", `{"duration":"30m"}`)
	require.Equal(t, http.StatusOK, status)
	require.True(t, envelope.Success)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "emp-1-OVERTIME_RISK", data["exception_id"])
	assert.NotEmpty(t, data["until"])

	_, after := getEnvelope(t, server, "/api/v1/workforce/exceptions")
	exceptions, ok := after.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, exceptions, 1)
}

func TestSnoozeEndpoint_InvalidDuration(t *testing.T) {
	server, cleanup := newPulseServer(t)
	defer cleanup()

	status, envelope := postEnvelope(t, server, "/api/v1/workforce/exceptions/emp-1-OVERTIME_RISK/snooze", `{"duration":"1w"}`)

	assert.Equal(t, http.StatusBadRequest, status)
	require.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "BAD_REQUEST", envelope.Error.Code)
}

func TestSnoozeEndpoint_InvalidJSON(t *testing.T) {
	server, cleanup := newPulseServer(t)
	defer cleanup()

	status, envelope := postEnvelope(t, server, "/api/v1/workforce/exceptions/emp-1-OVERTIME_RISK/snooze", `{"duration":`)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, envelope.Success)
}

func TestEventsEndpoint_SendsInitialSnapshot(t *testing.T) {
	server, cleanup := newPulseServer(t)
	defer cleanup()

	resp, err := http.Get(server.URL + "/api/v1/workforce/events")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	buf := make([]byte, 64)
	n, err := resp.Body.Read(buf)
	require.NoError(t, err)
	assert.Contains(t, string(buf[:n]), "event: snapshot")
}
