package subscription

import (
	"context"
	"errors"

	"viztube/internal/common"
	"viztube/internal/domain"
	"viztube/internal/metrics"
	"viztube/internal/query"
)

type ToggleResult struct {
	IsSubscribed bool `json:"isSubscribed"`
}

type SubscriptionService struct {
	repo SubscriptionRepository
	ids  query.IDNormalizer
}

func NewSubscriptionService(repo SubscriptionRepository, ids query.IDNormalizer) *SubscriptionService {
	return &SubscriptionService{repo: repo, ids: ids}
}

// Toggle subscribes the viewer to the channel or undoes an existing
// subscription, delete first.
func (s *SubscriptionService) Toggle(ctx context.Context, viewerID, rawChannelID string) (ToggleResult, error) {
	channelID, err := s.ids.Normalize("channelId", rawChannelID)
	if err != nil {
		return ToggleResult{}, err
	}
	if channelID == viewerID {
		return ToggleResult{}, common.Validation("You cannot subscribe to your own channel")
	}
	if err := s.requireUser(ctx, channelID, "Channel not found"); err != nil {
		return ToggleResult{}, err
	}

	removed, err := s.repo.DeleteSubscription(ctx, viewerID, channelID)
	if err != nil {
		return ToggleResult{}, common.Internal(err)
	}
	if removed {
		metrics.RecordToggle("subscription", false)
		return ToggleResult{IsSubscribed: false}, nil
	}

	err = s.repo.CreateSubscription(ctx, viewerID, channelID)
	if err != nil && !errors.Is(err, domain.ErrDuplicate) {
		return ToggleResult{}, common.Internal(err)
	}
	metrics.RecordToggle("subscription", true)
	return ToggleResult{IsSubscribed: true}, nil
}

// Subscribers lists the users subscribed to a channel.
func (s *SubscriptionService) Subscribers(ctx context.Context, rawChannelID string) ([]domain.ChannelSummary, error) {
	channelID, err := s.ids.Normalize("channelId", rawChannelID)
	if err != nil {
		return nil, err
	}
	if err := s.requireUser(ctx, channelID, "Channel not found"); err != nil {
		return nil, err
	}
	rows, err := s.repo.ListSubscribers(ctx, channelID)
	if err != nil {
		return nil, common.Internal(err)
	}
	return summaries(rows), nil
}

// SubscribedChannels lists the channels a user subscribes to.
func (s *SubscriptionService) SubscribedChannels(ctx context.Context, rawSubscriberID string) ([]domain.ChannelSummary, error) {
	subscriberID, err := s.ids.Normalize("subscriberId", rawSubscriberID)
	if err != nil {
		return nil, err
	}
	if err := s.requireUser(ctx, subscriberID, "User not found"); err != nil {
		return nil, err
	}
	rows, err := s.repo.ListSubscribedChannels(ctx, subscriberID)
	if err != nil {
		return nil, common.Internal(err)
	}
	return summaries(rows), nil
}

func (s *SubscriptionService) requireUser(ctx context.Context, id, notFound string) error {
	ok, err := s.repo.UserExists(ctx, id)
	if err != nil {
		return common.Internal(err)
	}
	if !ok {
		return common.NotFound(notFound)
	}
	return nil
}

func summaries(rows []domain.ChannelRow) []domain.ChannelSummary {
	out := make([]domain.ChannelSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, query.ComposeChannelSummary(row))
	}
	return out
}
