package video

import (
	"context"
	"time"

	"viztube/internal/domain"
	"viztube/internal/query"
)

//go:generate mockgen -source=video_repository.go -destination=mock_repository_test.go -package=video

// VideoRepository is the store side of the video service.
type VideoRepository interface {
	CreateVideo(ctx context.Context, v domain.Video) (domain.Video, error)
	// joined with the owner summary
	FindVideoByID(ctx context.Context, id string) (domain.Video, error)
	ListVideos(ctx context.Context, q query.VideoQuery) (query.Page[domain.VideoRow], error)

	// atomic views = views + 1; returns the video after the increment
	IncrementViews(ctx context.Context, id string) (domain.Video, error)
	// upsert keyed by (user, video)
	RecordWatch(ctx context.Context, userID, videoID string, at time.Time) error

	// Update and Delete match on (id, owner) and return domain.ErrNotFound
	// when no row matched.
	UpdateVideo(ctx context.Context, id, ownerID string, patch domain.VideoPatch) (domain.Video, error)
	DeleteVideo(ctx context.Context, id, ownerID string) error
}
