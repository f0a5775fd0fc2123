package like

import (
	"context"
	"errors"

	"viztube/internal/common"
	"viztube/internal/domain"
	"viztube/internal/logging"
	"viztube/internal/metrics"
	"viztube/internal/query"
)

// ToggleResult is the state after a toggle.
type ToggleResult struct {
	IsLiked bool `json:"isLiked"`
}

type LikeService struct {
	repo LikeRepository
	ids  query.IDNormalizer
}

func NewLikeService(repo LikeRepository, ids query.IDNormalizer) *LikeService {
	return &LikeService{repo: repo, ids: ids}
}

var idField = map[domain.LikeKind]string{
	domain.LikeVideo:   "videoId",
	domain.LikeComment: "commentId",
	domain.LikeTweet:   "tweetId",
}

var missing = map[domain.LikeKind]string{
	domain.LikeVideo:   "Video not found",
	domain.LikeComment: "Comment not found",
	domain.LikeTweet:   "Tweet not found",
}

// Toggle removes the viewer's like if present, otherwise adds it. The delete
// goes first so two racing toggles cannot both insert; a duplicate on insert
// means another request already liked it.
func (s *LikeService) Toggle(ctx context.Context, viewerID string, kind domain.LikeKind, rawID string) (ToggleResult, error) {
	field, ok := idField[kind]
	if !ok {
		return ToggleResult{}, common.Validation("unknown like target")
	}
	id, err := s.ids.Normalize(field, rawID)
	if err != nil {
		return ToggleResult{}, err
	}
	target := domain.LikeTarget{Kind: kind, ID: id}

	exists, err := s.repo.LikeTargetExists(ctx, target)
	if err != nil {
		return ToggleResult{}, common.Internal(err)
	}
	if !exists {
		return ToggleResult{}, common.NotFound(missing[kind])
	}

	removed, err := s.repo.DeleteLike(ctx, viewerID, target)
	if err != nil {
		return ToggleResult{}, common.Internal(err)
	}
	if removed {
		metrics.RecordToggle("like_"+string(kind), false)
		return ToggleResult{IsLiked: false}, nil
	}

	err = s.repo.CreateLike(ctx, viewerID, target)
	if errors.Is(err, domain.ErrDuplicate) {
		logging.Ctx(ctx).Debug().Str("target", id).Msg("like already present")
		err = nil
	}
	if err != nil {
		return ToggleResult{}, common.Internal(err)
	}
	metrics.RecordToggle("like_"+string(kind), true)
	return ToggleResult{IsLiked: true}, nil
}

func (s *LikeService) LikedVideos(ctx context.Context, viewerID string) ([]domain.Video, error) {
	videos, err := s.repo.LikedVideos(ctx, viewerID)
	if err != nil {
		return nil, common.Internal(err)
	}
	if videos == nil {
		videos = []domain.Video{}
	}
	return videos, nil
}
