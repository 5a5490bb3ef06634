package service

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/diegoclair/form-window-bot/mocks"
)

type allMocks struct {
	mockDataManager *mocks.MockDataManager
	mockFormRepo    *mocks.MockFormRepo
	mockSubmission  *mocks.MockSubmissionRepo
	mockTriggerRepo *mocks.MockTriggerRepo
	mockRegistry    *mocks.MockTriggerRegistry
	mockProvider    *mocks.MockFormProvider
	mockNotifier    *mocks.MockNotifier
	mockIdentity    *mocks.MockIdentity
	mockSink        *mocks.MockEventSink
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	formRepo := mocks.NewMockFormRepo(ctrl)
	dm.EXPECT().Form().Return(formRepo).AnyTimes()

	submissionRepo := mocks.NewMockSubmissionRepo(ctrl)
	dm.EXPECT().Submission().Return(submissionRepo).AnyTimes()

	triggerRepo := mocks.NewMockTriggerRepo(ctrl)
	dm.EXPECT().Trigger().Return(triggerRepo).AnyTimes()

	m = allMocks{
		mockDataManager: dm,
		mockFormRepo:    formRepo,
		mockSubmission:  submissionRepo,
		mockTriggerRepo: triggerRepo,
		mockRegistry:    mocks.NewMockTriggerRegistry(ctrl),
		mockProvider:    mocks.NewMockFormProvider(ctrl),
		mockNotifier:    mocks.NewMockNotifier(ctrl),
		mockIdentity:    mocks.NewMockIdentity(ctrl),
		mockSink:        mocks.NewMockEventSink(ctrl),
	}

	// validate service creation
	require.NotNil(t, newTestWindow(m))

	return
}

func newTestWindow(m allMocks) *windowService {
	return newWindow(m.mockRegistry, m.mockProvider, m.mockNotifier, m.mockIdentity, zerolog.Nop())
}

func newTestIntake(m allMocks, slug string) *intakeService {
	return newIntake(m.mockDataManager, m.mockSink, slug, zerolog.Nop())
}
