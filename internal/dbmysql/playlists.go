package dbmysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"viztube/internal/domain"
)

func (s *Store) CreatePlaylist(ctx context.Context, p domain.Playlist) (domain.Playlist, error) {
	m := Playlist{OwnerID: parseID(p.OwnerID), Name: p.Name, Description: p.Description}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.Playlist{}, translate(err)
	}
	return m.toDomain(), nil
}

func (s *Store) FindPlaylistByID(ctx context.Context, id string) (domain.Playlist, error) {
	var m Playlist
	if err := s.db.WithContext(ctx).Where("id = ?", parseID(id)).First(&m).Error; err != nil {
		return domain.Playlist{}, translate(err)
	}
	return m.toDomain(), nil
}

// PlaylistDetail lists every member in insertion order, so its counts agree
// with the summary from ListPlaylistsByUser.
func (s *Store) PlaylistDetail(ctx context.Context, id string) (domain.PlaylistDetailRow, error) {
	n := parseID(id)
	var p Playlist
	if err := s.db.WithContext(ctx).Preload("Owner").Where("id = ?", n).First(&p).Error; err != nil {
		return domain.PlaylistDetailRow{}, translate(err)
	}

	var videos []Video
	err := s.db.WithContext(ctx).
		Preload("Owner").
		Joins("JOIN playlist_videos ON playlist_videos.video_id = videos.id").
		Where("playlist_videos.playlist_id = ?", n).
		Order("playlist_videos.id ASC").
		Find(&videos).Error
	if err != nil {
		return domain.PlaylistDetailRow{}, err
	}

	row := domain.PlaylistDetailRow{Playlist: p.toDomain(), Videos: make([]domain.Video, 0, len(videos))}
	if o := ownerSummary(p.Owner); o != nil {
		row.Owner = *o
	}
	for _, v := range videos {
		row.Videos = append(row.Videos, v.toDomain())
	}
	return row, nil
}

type playlistSummaryRow struct {
	ID          uint64
	OwnerID     uint64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	TotalVideos int64
	FirstThumb  *string
}

func (r playlistSummaryRow) playlist() Playlist {
	return Playlist{ID: r.ID, OwnerID: r.OwnerID, Name: r.Name, Description: r.Description, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
}

func (s *Store) ListPlaylistsByUser(ctx context.Context, userID string) ([]domain.PlaylistRow, error) {
	var rows []playlistSummaryRow
	err := s.db.WithContext(ctx).Model(&Playlist{}).
		Select("playlists.*, " +
			"(SELECT COUNT(*) FROM playlist_videos pv WHERE pv.playlist_id = playlists.id) AS total_videos, " +
			"(SELECT v.thumbnail_url FROM playlist_videos pv JOIN videos v ON v.id = pv.video_id " +
			"WHERE pv.playlist_id = playlists.id ORDER BY pv.id ASC LIMIT 1) AS first_thumb").
		Where("playlists.owner_id = ?", parseID(userID)).
		Order("playlists.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.PlaylistRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.PlaylistRow{
			Playlist:   r.playlist().toDomain(),
			Counts:     domain.CountBag{domain.CountVideos: r.TotalVideos},
			FirstThumb: r.FirstThumb,
		})
	}
	return out, nil
}

func (s *Store) AddPlaylistVideo(ctx context.Context, playlistID, videoID string) error {
	n := parseID(playlistID)
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Playlist{}).Where("id = ?", n).Update("updated_at", time.Now())
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		member := PlaylistVideo{PlaylistID: n, VideoID: parseID(videoID)}
		return translate(tx.Create(&member).Error)
	})
}

func (s *Store) RemovePlaylistVideo(ctx context.Context, playlistID, videoID string) (bool, error) {
	n := parseID(playlistID)
	ok, err := s.exists(ctx, &Playlist{}, playlistID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, domain.ErrNotFound
	}
	res := s.db.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", n, parseID(videoID)).
		Delete(&PlaylistVideo{})
	return res.RowsAffected > 0, res.Error
}

func (s *Store) UpdatePlaylist(ctx context.Context, id, ownerID, name, description string) (domain.Playlist, error) {
	n, owner := parseID(id), parseID(ownerID)
	err := s.db.WithContext(ctx).Model(&Playlist{}).
		Where("id = ? AND owner_id = ?", n, owner).
		Updates(map[string]interface{}{"name": name, "description": description}).Error
	if err != nil {
		return domain.Playlist{}, err
	}
	var m Playlist
	if err := s.db.WithContext(ctx).Where("id = ? AND owner_id = ?", n, owner).First(&m).Error; err != nil {
		return domain.Playlist{}, translate(err)
	}
	return m.toDomain(), nil
}

func (s *Store) DeletePlaylist(ctx context.Context, id, ownerID string) error {
	n := parseID(id)
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND owner_id = ?", n, parseID(ownerID)).Delete(&Playlist{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return tx.Where("playlist_id = ?", n).Delete(&PlaylistVideo{}).Error
	})
}

// ChannelStats sums over the owner's videos with one aggregate per source.
func (s *Store) ChannelStats(ctx context.Context, ownerID string) (domain.CountBag, error) {
	owner := parseID(ownerID)
	db := s.db.WithContext(ctx)

	var videoAgg struct {
		Videos int64
		Views  int64
	}
	err := db.Model(&Video{}).
		Select("COUNT(*) AS videos, COALESCE(SUM(views), 0) AS views").
		Where("owner_id = ?", owner).
		Scan(&videoAgg).Error
	if err != nil {
		return nil, err
	}

	var likes int64
	err = db.Model(&Like{}).
		Joins("JOIN videos ON videos.id = likes.target_id").
		Where("likes.target_kind = ? AND videos.owner_id = ?", string(domain.LikeVideo), owner).
		Count(&likes).Error
	if err != nil {
		return nil, err
	}

	var subscribers int64
	if err := db.Model(&Subscription{}).Where("channel_id = ?", owner).Count(&subscribers).Error; err != nil {
		return nil, err
	}

	return domain.CountBag{
		domain.CountVideos:      videoAgg.Videos,
		domain.CountViews:       videoAgg.Views,
		domain.CountLikes:       likes,
		domain.CountSubscribers: subscribers,
	}, nil
}
