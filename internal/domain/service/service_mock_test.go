package service

import (
	"testing"
	"time"

	"github.com/diegoclair/corrupted-zone-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager *mocks.MockDataManager
	mockChannelRepo *mocks.MockChannelRepo
	mockNotifier    *mocks.MockNotifier
	mockOracle      *mocks.MockScheduleOracle
	mockClock       *mocks.MockClock
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	channelRepo := mocks.NewMockChannelRepo(ctrl)
	dm.EXPECT().Channel().Return(channelRepo).AnyTimes()

	m = allMocks{
		mockDataManager: dm,
		mockChannelRepo: channelRepo,
		mockNotifier:    mocks.NewMockNotifier(ctrl),
		mockOracle:      mocks.NewMockScheduleOracle(ctrl),
		mockClock:       mocks.NewMockClock(ctrl),
	}

	// validate service creation
	zoneService := newZoneService(dm, NewScheduleOracle(), m.mockClock)
	require.NotNil(t, zoneService)

	return
}

// ms builds a UTC instant from Unix milliseconds
func ms(v int64) time.Time {
	return time.UnixMilli(v).UTC()
}
