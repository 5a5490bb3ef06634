package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/diegoclair/form-window-bot/internal/domain/entity"
	"github.com/diegoclair/form-window-bot/internal/handlers"
	"github.com/diegoclair/form-window-bot/mocks"
)

const TestToken = "test-intake-token"

type ServiceMocks struct {
	WindowServiceMock *mocks.MockWindowService
	IntakeServiceMock *mocks.MockIntakeService
}

// scheduleSource serves a fixed schedule snapshot to the handler under test.
type scheduleSource struct {
	cfg entity.ScheduleConfig
}

func (s scheduleSource) Current() entity.ScheduleConfig {
	return s.cfg
}

func GetHandlerTest(t *testing.T, cfg entity.ScheduleConfig) (m ServiceMocks, handler *handlers.WindowHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		WindowServiceMock: mocks.NewMockWindowService(ctrl),
		IntakeServiceMock: mocks.NewMockIntakeService(ctrl),
	}

	handler = handlers.New(m.WindowServiceMock, m.IntakeServiceMock, scheduleSource{cfg: cfg}, TestToken, zerolog.Nop())

	return
}

// NewJSONRequest builds an authenticated JSON request for handler tests.
func NewJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Form-Token", TestToken)

	return req
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}

// TestSchedule is a valid two-edge schedule usable by handler tests.
func TestSchedule() entity.ScheduleConfig {
	limit := 50
	return entity.ScheduleConfig{
		OpenRule:      &entity.WeeklyRule{Weekday: time.Monday, Hour: 10, Minute: 0},
		CloseRule:     &entity.WeeklyRule{Weekday: time.Wednesday, Hour: 8, Minute: 0},
		ResponseLimit: &limit,
		Notify: entity.NotifySet{
			entity.NotifyOnOpen:  true,
			entity.NotifyOnClose: true,
			entity.NotifyOnLimit: true,
		},
		Location: time.UTC,
	}
}
