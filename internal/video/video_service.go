package video

import (
	"context"
	"errors"
	"strings"
	"time"

	"viztube/internal/common"
	"viztube/internal/domain"
	"viztube/internal/logging"
	"viztube/internal/metrics"
	"viztube/internal/query"
)

// ListParams are the raw query-string values of a video listing.
type ListParams struct {
	Query    string
	SortBy   string
	SortType string
	UserID   string
	Page     string
	Limit    string
}

type PublishInput struct {
	Title       string       `json:"title" validate:"nonblank,max=200"`
	Description string       `json:"description" validate:"max=5000"`
	VideoFile   domain.Media `json:"videoFile"`
	Thumbnail   domain.Media `json:"thumbnail"`
	Duration    float64      `json:"duration" validate:"gte=0"`
}

// UpdateInput changes any subset of title, description and thumbnail.
type UpdateInput struct {
	Title       *string       `json:"title" validate:"omitempty,max=200"`
	Description *string       `json:"description" validate:"omitempty,max=5000"`
	Thumbnail   *domain.Media `json:"thumbnail"`
}

type VideoService struct {
	repo VideoRepository
	ids  query.IDNormalizer
	now  func() time.Time
}

func NewVideoService(repo VideoRepository, ids query.IDNormalizer) *VideoService {
	return &VideoService{repo: repo, ids: ids, now: time.Now}
}

// ListVideos is the public feed: published only, optional owner filter.
func (s *VideoService) ListVideos(ctx context.Context, p ListParams) (query.Page[domain.Video], error) {
	filter, err := query.BuildPublicFilter(s.ids, p.Query, p.UserID)
	if err != nil {
		return query.Page[domain.Video]{}, err
	}
	srt, err := query.ResolveSort(p.SortBy, p.SortType)
	if err != nil {
		return query.Page[domain.Video]{}, err
	}
	page, err := query.ParsePageRequest(p.Page, p.Limit)
	if err != nil {
		return query.Page[domain.Video]{}, err
	}

	rows, err := s.repo.ListVideos(ctx, query.VideoQuery{Filter: filter, Sort: srt, Page: page})
	if err != nil {
		return query.Page[domain.Video]{}, common.Internal(err)
	}
	return query.MapPage(rows, query.VideoComposer(false)), nil
}

func (s *VideoService) Publish(ctx context.Context, ownerID string, in PublishInput) (domain.Video, error) {
	if strings.TrimSpace(in.VideoFile.URL) == "" {
		return domain.Video{}, common.Validation("Video file is required")
	}
	if strings.TrimSpace(in.Thumbnail.URL) == "" {
		return domain.Video{}, common.Validation("Thumbnail is required")
	}

	v, err := s.repo.CreateVideo(ctx, domain.Video{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		OwnerID:     ownerID,
		VideoFile:   in.VideoFile,
		Thumbnail:   in.Thumbnail,
		Duration:    in.Duration,
		IsPublished: true,
	})
	if err != nil {
		return domain.Video{}, common.Internal(err)
	}
	logging.Ctx(ctx).Info().Str("video_id", v.ID).Str("owner_id", ownerID).Msg("video published")
	return v, nil
}

// GetVideo counts a view atomically and, for a signed-in viewer, upserts the
// watch-history row.
func (s *VideoService) GetVideo(ctx context.Context, rawID string, viewer *common.Viewer) (domain.Video, error) {
	id, err := s.ids.Normalize("videoId", rawID)
	if err != nil {
		return domain.Video{}, err
	}

	v, err := s.repo.IncrementViews(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Video{}, common.NotFound("Video not found")
	}
	if err != nil {
		return domain.Video{}, common.Internal(err)
	}
	metrics.RecordView()

	if viewer != nil {
		if err := s.repo.RecordWatch(ctx, viewer.ID, id, s.now()); err != nil {
			return domain.Video{}, common.Internal(err)
		}
	}
	return v, nil
}

func (s *VideoService) UpdateVideo(ctx context.Context, viewerID, rawID string, in UpdateInput) (domain.Video, error) {
	patch := domain.VideoPatch{Thumbnail: in.Thumbnail}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return domain.Video{}, common.Validation("title cannot be empty")
		}
		patch.Title = &title
	}
	if in.Description != nil {
		desc := strings.TrimSpace(*in.Description)
		patch.Description = &desc
	}
	if patch.Thumbnail != nil && strings.TrimSpace(patch.Thumbnail.URL) == "" {
		return domain.Video{}, common.Validation("thumbnail url cannot be empty")
	}
	if patch.Title == nil && patch.Description == nil && patch.Thumbnail == nil {
		return domain.Video{}, common.Validation("At least one of title, description or thumbnail is required")
	}

	id, err := s.owned(ctx, viewerID, rawID, "update")
	if err != nil {
		return domain.Video{}, err
	}
	return s.apply(ctx, id, viewerID, patch)
}

func (s *VideoService) DeleteVideo(ctx context.Context, viewerID, rawID string) error {
	id, err := s.owned(ctx, viewerID, rawID, "delete")
	if err != nil {
		return err
	}
	err = s.repo.DeleteVideo(ctx, id, viewerID)
	if errors.Is(err, domain.ErrNotFound) {
		return common.NotFound("Video not found")
	}
	if err != nil {
		return common.Internal(err)
	}
	logging.Ctx(ctx).Info().Str("video_id", id).Msg("video deleted")
	return nil
}

func (s *VideoService) TogglePublish(ctx context.Context, viewerID, rawID string) (domain.Video, error) {
	id, err := s.ids.Normalize("videoId", rawID)
	if err != nil {
		return domain.Video{}, err
	}
	current, err := s.load(ctx, id)
	if err != nil {
		return domain.Video{}, err
	}
	if current.OwnerID != viewerID {
		return domain.Video{}, common.Forbidden("You are not allowed to change this video")
	}
	flipped := !current.IsPublished
	return s.apply(ctx, id, viewerID, domain.VideoPatch{IsPublished: &flipped})
}

func (s *VideoService) apply(ctx context.Context, id, ownerID string, patch domain.VideoPatch) (domain.Video, error) {
	v, err := s.repo.UpdateVideo(ctx, id, ownerID, patch)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Video{}, common.NotFound("Video not found")
	}
	if err != nil {
		return domain.Video{}, common.Internal(err)
	}
	return v, nil
}

// owned normalizes the id and checks the viewer owns the video.
func (s *VideoService) owned(ctx context.Context, viewerID, rawID, action string) (string, error) {
	id, err := s.ids.Normalize("videoId", rawID)
	if err != nil {
		return "", err
	}
	v, err := s.load(ctx, id)
	if err != nil {
		return "", err
	}
	if v.OwnerID != viewerID {
		return "", common.Forbidden("You are not allowed to " + action + " this video")
	}
	return id, nil
}

func (s *VideoService) load(ctx context.Context, id string) (domain.Video, error) {
	v, err := s.repo.FindVideoByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Video{}, common.NotFound("Video not found")
	}
	if err != nil {
		return domain.Video{}, common.Internal(err)
	}
	return v, nil
}
