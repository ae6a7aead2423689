package contract

import (
	"context"

	"github.com/diegoclair/corrupted-zone-bot/internal/domain/entity"
)

//go:generate mockgen -destination=../../../mocks/mock_repo.go -package=mocks . DataManager,ChannelRepo

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Channel() ChannelRepo
}

// ChannelRepo defines the contract for channel subscriptions
type ChannelRepo interface {
	Create(channel *entity.Channel) error
	GetBySlackID(slackChannelID string) (*entity.Channel, error)
	Update(channel *entity.Channel) error
	GetActiveChannels() ([]*entity.Channel, error)
}
