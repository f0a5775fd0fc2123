package playlist

import (
	"context"

	"viztube/internal/domain"
)

//go:generate mockgen -source=playlist_repository.go -destination=mock_repository_test.go -package=playlist

type PlaylistRepository interface {
	UserExists(ctx context.Context, id string) (bool, error)
	VideoExists(ctx context.Context, id string) (bool, error)

	CreatePlaylist(ctx context.Context, p domain.Playlist) (domain.Playlist, error)
	FindPlaylistByID(ctx context.Context, id string) (domain.Playlist, error)
	// owner summary plus every member video, in insertion order
	PlaylistDetail(ctx context.Context, id string) (domain.PlaylistDetailRow, error)
	ListPlaylistsByUser(ctx context.Context, userID string) ([]domain.PlaylistRow, error)

	// ErrNotFound for a missing playlist, ErrDuplicate for an existing member
	AddPlaylistVideo(ctx context.Context, playlistID, videoID string) error
	RemovePlaylistVideo(ctx context.Context, playlistID, videoID string) (bool, error)

	UpdatePlaylist(ctx context.Context, id, ownerID, name, description string) (domain.Playlist, error)
	DeletePlaylist(ctx context.Context, id, ownerID string) error
}
