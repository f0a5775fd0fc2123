package like

import (
	"context"

	"viztube/internal/domain"
)

//go:generate mockgen -source=like_repository.go -destination=mock_repository_test.go -package=like

// LikeRepository stores at most one like per (user, target); CreateLike
// returns domain.ErrDuplicate when the pair already exists.
type LikeRepository interface {
	LikeTargetExists(ctx context.Context, t domain.LikeTarget) (bool, error)
	DeleteLike(ctx context.Context, userID string, t domain.LikeTarget) (bool, error)
	CreateLike(ctx context.Context, userID string, t domain.LikeTarget) error
	// most recently liked first
	LikedVideos(ctx context.Context, userID string) ([]domain.Video, error)
}
