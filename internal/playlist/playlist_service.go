package playlist

import (
	"context"
	"errors"
	"strings"

	"viztube/internal/common"
	"viztube/internal/domain"
	"viztube/internal/logging"
	"viztube/internal/query"
)

type PlaylistInput struct {
	Name        string `json:"name" validate:"nonblank,max=120"`
	Description string `json:"description" validate:"max=1000"`
}

type PlaylistService struct {
	repo PlaylistRepository
	ids  query.IDNormalizer
}

func NewPlaylistService(repo PlaylistRepository, ids query.IDNormalizer) *PlaylistService {
	return &PlaylistService{repo: repo, ids: ids}
}

func (s *PlaylistService) CreatePlaylist(ctx context.Context, viewerID string, in PlaylistInput) (domain.Playlist, error) {
	name, desc, err := clean(in)
	if err != nil {
		return domain.Playlist{}, err
	}
	p, err := s.repo.CreatePlaylist(ctx, domain.Playlist{Name: name, Description: desc, OwnerID: viewerID})
	if err != nil {
		return domain.Playlist{}, common.Internal(err)
	}
	return p, nil
}

// UserPlaylists summarizes each playlist of a user with its size and cover.
func (s *PlaylistService) UserPlaylists(ctx context.Context, rawUserID string) ([]domain.PlaylistSummary, error) {
	userID, err := s.ids.Normalize("userId", rawUserID)
	if err != nil {
		return nil, err
	}
	ok, err := s.repo.UserExists(ctx, userID)
	if err != nil {
		return nil, common.Internal(err)
	}
	if !ok {
		return nil, common.NotFound("User not found")
	}

	rows, err := s.repo.ListPlaylistsByUser(ctx, userID)
	if err != nil {
		return nil, common.Internal(err)
	}
	out := make([]domain.PlaylistSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, query.ComposePlaylistSummary(row))
	}
	return out, nil
}

func (s *PlaylistService) GetPlaylist(ctx context.Context, rawID string) (domain.PlaylistDetail, error) {
	id, err := s.ids.Normalize("playlistId", rawID)
	if err != nil {
		return domain.PlaylistDetail{}, err
	}
	return s.detail(ctx, id)
}

func (s *PlaylistService) AddVideo(ctx context.Context, viewerID, rawPlaylistID, rawVideoID string) (domain.PlaylistDetail, error) {
	playlistID, videoID, err := s.memberIDs(rawPlaylistID, rawVideoID)
	if err != nil {
		return domain.PlaylistDetail{}, err
	}
	if err := s.checkOwner(ctx, viewerID, playlistID); err != nil {
		return domain.PlaylistDetail{}, err
	}
	ok, err := s.repo.VideoExists(ctx, videoID)
	if err != nil {
		return domain.PlaylistDetail{}, common.Internal(err)
	}
	if !ok {
		return domain.PlaylistDetail{}, common.NotFound("Video not found")
	}

	err = s.repo.AddPlaylistVideo(ctx, playlistID, videoID)
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		return domain.PlaylistDetail{}, common.Conflict("Video is already in the playlist")
	case errors.Is(err, domain.ErrNotFound):
		return domain.PlaylistDetail{}, common.NotFound("Playlist not found")
	case err != nil:
		return domain.PlaylistDetail{}, common.Internal(err)
	}
	return s.detail(ctx, playlistID)
}

func (s *PlaylistService) RemoveVideo(ctx context.Context, viewerID, rawPlaylistID, rawVideoID string) (domain.PlaylistDetail, error) {
	playlistID, videoID, err := s.memberIDs(rawPlaylistID, rawVideoID)
	if err != nil {
		return domain.PlaylistDetail{}, err
	}
	if err := s.checkOwner(ctx, viewerID, playlistID); err != nil {
		return domain.PlaylistDetail{}, err
	}

	removed, err := s.repo.RemovePlaylistVideo(ctx, playlistID, videoID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.PlaylistDetail{}, common.NotFound("Playlist not found")
	}
	if err != nil {
		return domain.PlaylistDetail{}, common.Internal(err)
	}
	if !removed {
		return domain.PlaylistDetail{}, common.NotFound("Video is not in the playlist")
	}
	return s.detail(ctx, playlistID)
}

func (s *PlaylistService) UpdatePlaylist(ctx context.Context, viewerID, rawID string, in PlaylistInput) (domain.Playlist, error) {
	name, desc, err := clean(in)
	if err != nil {
		return domain.Playlist{}, err
	}
	id, err := s.ids.Normalize("playlistId", rawID)
	if err != nil {
		return domain.Playlist{}, err
	}
	if err := s.checkOwner(ctx, viewerID, id); err != nil {
		return domain.Playlist{}, err
	}

	p, err := s.repo.UpdatePlaylist(ctx, id, viewerID, name, desc)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Playlist{}, common.NotFound("Playlist not found")
	}
	if err != nil {
		return domain.Playlist{}, common.Internal(err)
	}
	return p, nil
}

func (s *PlaylistService) DeletePlaylist(ctx context.Context, viewerID, rawID string) error {
	id, err := s.ids.Normalize("playlistId", rawID)
	if err != nil {
		return err
	}
	if err := s.checkOwner(ctx, viewerID, id); err != nil {
		return err
	}
	err = s.repo.DeletePlaylist(ctx, id, viewerID)
	if errors.Is(err, domain.ErrNotFound) {
		return common.NotFound("Playlist not found")
	}
	if err != nil {
		return common.Internal(err)
	}
	logging.Ctx(ctx).Info().Str("playlist_id", id).Msg("playlist deleted")
	return nil
}

func (s *PlaylistService) detail(ctx context.Context, id string) (domain.PlaylistDetail, error) {
	row, err := s.repo.PlaylistDetail(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.PlaylistDetail{}, common.NotFound("Playlist not found")
	}
	if err != nil {
		return domain.PlaylistDetail{}, common.Internal(err)
	}
	return query.ComposePlaylistDetail(row), nil
}

func (s *PlaylistService) checkOwner(ctx context.Context, viewerID, playlistID string) error {
	p, err := s.repo.FindPlaylistByID(ctx, playlistID)
	if errors.Is(err, domain.ErrNotFound) {
		return common.NotFound("Playlist not found")
	}
	if err != nil {
		return common.Internal(err)
	}
	if p.OwnerID != viewerID {
		return common.Forbidden("You are not allowed to modify this playlist")
	}
	return nil
}

func (s *PlaylistService) memberIDs(rawPlaylistID, rawVideoID string) (string, string, error) {
	playlistID, err := s.ids.Normalize("playlistId", rawPlaylistID)
	if err != nil {
		return "", "", err
	}
	videoID, err := s.ids.Normalize("videoId", rawVideoID)
	if err != nil {
		return "", "", err
	}
	return playlistID, videoID, nil
}

func clean(in PlaylistInput) (string, string, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return "", "", common.Validation("name is required")
	}
	return name, strings.TrimSpace(in.Description), nil
}
