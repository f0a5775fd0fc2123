package dashboard

import (
	"context"

	"viztube/internal/common"
	"viztube/internal/domain"
	"viztube/internal/query"
)

// ChannelVideos is the owner's own listing: every publish state, with like
// counts. TotalVideos repeats TotalDocs under the name the dashboard uses.
type ChannelVideos struct {
	query.Page[domain.Video]
	TotalVideos int64 `json:"totalVideos"`
}

type VideoParams struct {
	Query    string
	SortBy   string
	SortType string
	Page     string
	Limit    string
}

type DashboardService struct {
	repo DashboardRepository
}

func NewDashboardService(repo DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

func (s *DashboardService) Stats(ctx context.Context, ownerID string) (domain.ChannelStats, error) {
	counts, err := s.repo.ChannelStats(ctx, ownerID)
	if err != nil {
		return domain.ChannelStats{}, common.Internal(err)
	}
	return query.ComposeStats(counts), nil
}

func (s *DashboardService) Videos(ctx context.Context, ownerID string, p VideoParams) (ChannelVideos, error) {
	srt, err := query.ResolveSort(p.SortBy, p.SortType)
	if err != nil {
		return ChannelVideos{}, err
	}
	page, err := query.ParsePageRequest(p.Page, p.Limit)
	if err != nil {
		return ChannelVideos{}, err
	}

	rows, err := s.repo.ListVideos(ctx, query.VideoQuery{
		Filter:         query.BuildOwnerFilter(ownerID, p.Query),
		Sort:           srt,
		Page:           page,
		WithLikeCounts: true,
	})
	if err != nil {
		return ChannelVideos{}, common.Internal(err)
	}
	videos := query.MapPage(rows, query.VideoComposer(true))
	return ChannelVideos{Page: videos, TotalVideos: videos.TotalDocs}, nil
}
