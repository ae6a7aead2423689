package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/corrupted-zone-bot/internal/domain"
	"github.com/diegoclair/corrupted-zone-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const defaultChannel = "C000DEFAULT"

func Test_newScheduler(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newScheduler(m.mockDataManager, m.mockOracle, m.mockNotifier, m.mockClock, defaultChannel)

	require.NotNil(t, s)
	assert.Equal(t, m.mockDataManager, s.dm)
	assert.Equal(t, m.mockNotifier, s.notifier)
	assert.Equal(t, defaultChannel, s.defaultChannelID)
	assert.Equal(t, domain.AlertTargetZoneActive, s.activeAlert.kind)
	assert.Equal(t, domain.AlertCowWarning, s.cowAlert.kind)
	assert.False(t, s.running)
}

func Test_scheduler_checkActiveZone(t *testing.T) {
	cowWindow := int64(1_735_716_600_000)

	t.Run("Should alert once while a target zone stays active", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockChannelRepo.EXPECT().GetActiveChannels().Return(nil, nil).Times(1)
		m.mockNotifier.EXPECT().
			SendMessage(gomock.Any(), defaultChannel, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, text string) error {
				assert.Contains(t, text, "ACTIVE NOW")
				assert.Contains(t, text, domain.CowLevel)
				return nil
			}).Times(1)

		s := newScheduler(m.mockDataManager, NewScheduleOracle(), m.mockNotifier, m.mockClock, defaultChannel)

		for now := ms(cowWindow); now.Before(ms(cowWindow).Add(domain.WindowLength)); now = now.Add(domain.PollInterval) {
			s.checkActiveZone(context.Background(), now)
		}

		seed, ok := s.activeAlert.last()
		assert.True(t, ok)
		assert.Equal(t, int64(1_948_663), seed)
	})

	t.Run("Should stay quiet for other zones", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newScheduler(m.mockDataManager, NewScheduleOracle(), m.mockNotifier, m.mockClock, defaultChannel)
		s.checkActiveZone(context.Background(), ms(1_735_689_600_000))

		_, ok := s.activeAlert.last()
		assert.False(t, ok)
	})

	t.Run("Should retry on the next tick when delivery failed", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockChannelRepo.EXPECT().GetActiveChannels().Return(nil, nil).Times(2)
		gomock.InOrder(
			m.mockNotifier.EXPECT().SendMessage(gomock.Any(), defaultChannel, gomock.Any()).Return(errors.New("timeout")).Times(1),
			m.mockNotifier.EXPECT().SendMessage(gomock.Any(), defaultChannel, gomock.Any()).Return(nil).Times(1),
		)

		s := newScheduler(m.mockDataManager, NewScheduleOracle(), m.mockNotifier, m.mockClock, defaultChannel)
		for i := 0; i < 3; i++ {
			s.checkActiveZone(context.Background(), ms(cowWindow).Add(time.Duration(i)*domain.PollInterval))
		}
	})
}

func Test_scheduler_checkUpcomingWarning(t *testing.T) {
	w := ms(1_800_000_000_000)
	cow := entity.ZoneInfo{Zone: domain.CowLevel, WindowStart: w, Seed: 2_020_833}
	warnAt := w.Add(-domain.WarningLeadTime)

	tests := []struct {
		name      string
		ticks     []time.Time
		wantSends int
	}{
		{
			name:      "Should fire exactly lead time before the window",
			ticks:     []time.Time{warnAt},
			wantSends: 1,
		},
		{
			name:      "Should not fire one tick early",
			ticks:     []time.Time{warnAt.Add(-domain.PollInterval)},
			wantSends: 0,
		},
		{
			name:      "Should fire late within the tick",
			ticks:     []time.Time{warnAt.Add(29_999 * time.Millisecond)},
			wantSends: 1,
		},
		{
			name:      "Should not fire once the tick has passed",
			ticks:     []time.Time{warnAt.Add(domain.PollInterval)},
			wantSends: 0,
		},
		{
			name: "Should fire at most once across several ticks in the same interval",
			ticks: []time.Time{
				warnAt.Add(-domain.PollInterval),
				warnAt,
				warnAt.Add(10 * time.Second),
				warnAt.Add(29_999 * time.Millisecond),
				warnAt.Add(domain.PollInterval),
			},
			wantSends: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			m.mockOracle.EXPECT().
				FindNext(gomock.Any(), domain.CowLevel, domain.MaxLookahead).
				Return(cow, true).AnyTimes()
			m.mockChannelRepo.EXPECT().GetActiveChannels().Return(nil, nil).Times(tt.wantSends)
			m.mockNotifier.EXPECT().
				SendMessage(gomock.Any(), defaultChannel, gomock.Any()).
				DoAndReturn(func(_ context.Context, _, text string) error {
					assert.Contains(t, text, "Cow Level in 10 minutes")
					return nil
				}).Times(tt.wantSends)

			s := newScheduler(m.mockDataManager, m.mockOracle, m.mockNotifier, m.mockClock, defaultChannel)
			for _, now := range tt.ticks {
				s.checkUpcomingWarning(context.Background(), now)
			}
		})
	}

	t.Run("Should do nothing when the lookahead is exhausted", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockOracle.EXPECT().
			FindNext(gomock.Any(), domain.CowLevel, domain.MaxLookahead).
			Return(entity.ZoneInfo{}, false).Times(1)

		s := newScheduler(m.mockDataManager, m.mockOracle, m.mockNotifier, m.mockClock, defaultChannel)
		s.checkUpcomingWarning(context.Background(), warnAt)

		_, ok := s.cowAlert.last()
		assert.False(t, ok)
	})
}

func Test_scheduler_tick(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	// 10 minutes before the Cow Level window of 2025-01-01T07:30Z; Forgotten Tower is active
	now := ms(1_735_716_000_000)

	m.mockChannelRepo.EXPECT().GetActiveChannels().Return([]*entity.Channel{
		{SlackChannelID: "C111"},
	}, nil).Times(1)
	m.mockNotifier.EXPECT().SendMessage(gomock.Any(), defaultChannel, gomock.Any()).Return(nil).Times(1)
	m.mockNotifier.EXPECT().SendMessage(gomock.Any(), "C111", gomock.Any()).Return(nil).Times(1)

	s := newScheduler(m.mockDataManager, NewScheduleOracle(), m.mockNotifier, m.mockClock, defaultChannel)
	s.tick(context.Background(), now)
	s.tick(context.Background(), now.Add(15*time.Second))

	_, activeFired := s.activeAlert.last()
	assert.False(t, activeFired)

	seed, ok := s.cowAlert.last()
	assert.True(t, ok)
	assert.Equal(t, int64(1_948_663), seed)
}

func Test_scheduler_broadcast(t *testing.T) {
	t.Run("Should succeed when one channel accepts the message", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockChannelRepo.EXPECT().GetActiveChannels().Return([]*entity.Channel{
			{SlackChannelID: defaultChannel},
			{SlackChannelID: "C222"},
		}, nil).Times(1)
		m.mockNotifier.EXPECT().SendMessage(gomock.Any(), defaultChannel, "hello").Return(errors.New("channel_not_found")).Times(1)
		m.mockNotifier.EXPECT().SendMessage(gomock.Any(), "C222", "hello").Return(nil).Times(1)

		s := newScheduler(m.mockDataManager, m.mockOracle, m.mockNotifier, m.mockClock, defaultChannel)
		assert.NoError(t, s.broadcast(context.Background(), "hello"))
	})

	t.Run("Should fail when every channel fails", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		sendErr := errors.New("rate_limited")
		m.mockChannelRepo.EXPECT().GetActiveChannels().Return(nil, errors.New("database is locked")).Times(1)
		m.mockNotifier.EXPECT().SendMessage(gomock.Any(), defaultChannel, "hello").Return(sendErr).Times(1)

		s := newScheduler(m.mockDataManager, m.mockOracle, m.mockNotifier, m.mockClock, defaultChannel)
		err := s.broadcast(context.Background(), "hello")
		assert.ErrorIs(t, err, sendErr)
	})

	t.Run("Should report missing recipients", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockChannelRepo.EXPECT().GetActiveChannels().Return(nil, nil).Times(1)

		s := newScheduler(m.mockDataManager, m.mockOracle, m.mockNotifier, m.mockClock, "")
		err := s.broadcast(context.Background(), "hello")
		assert.ErrorIs(t, err, ErrNoRecipients)
	})
}

func Test_scheduler_StartStop(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockClock.EXPECT().Now().Return(ms(1_735_689_600_000)).AnyTimes()

	s := newScheduler(m.mockDataManager, NewScheduleOracle(), m.mockNotifier, m.mockClock, defaultChannel)
	s.Start()
	s.Start()
	assert.True(t, s.running)

	s.Stop()
	assert.False(t, s.running)
	s.Stop()
}
