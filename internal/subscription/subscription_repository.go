package subscription

import (
	"context"

	"viztube/internal/domain"
)

//go:generate mockgen -source=subscription_repository.go -destination=mock_repository_test.go -package=subscription

type SubscriptionRepository interface {
	UserExists(ctx context.Context, id string) (bool, error)
	DeleteSubscription(ctx context.Context, subscriberID, channelID string) (bool, error)
	// domain.ErrDuplicate when the pair already exists
	CreateSubscription(ctx context.Context, subscriberID, channelID string) error
	ListSubscribers(ctx context.Context, channelID string) ([]domain.ChannelRow, error)
	ListSubscribedChannels(ctx context.Context, subscriberID string) ([]domain.ChannelRow, error)
}
