package dashboard

import (
	"context"

	"viztube/internal/domain"
	"viztube/internal/query"
)

//go:generate mockgen -source=dashboard_repository.go -destination=mock_repository_test.go -package=dashboard

type DashboardRepository interface {
	// views, videos and likes summed over the owner's videos plus the
	// owner's subscriber count
	ChannelStats(ctx context.Context, ownerID string) (domain.CountBag, error)
	ListVideos(ctx context.Context, q query.VideoQuery) (query.Page[domain.VideoRow], error)
}
