package dbmysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"viztube/internal/domain"
	"viztube/internal/query"
)

func (s *Store) CreateVideo(ctx context.Context, v domain.Video) (domain.Video, error) {
	m := videoFromDomain(v)
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.Video{}, translate(err)
	}
	return m.toDomain(), nil
}

func (s *Store) FindVideoByID(ctx context.Context, id string) (domain.Video, error) {
	n := parseID(id)
	if n == 0 {
		return domain.Video{}, domain.ErrNotFound
	}
	var m Video
	if err := s.db.WithContext(ctx).Preload("Owner").First(&m, n).Error; err != nil {
		return domain.Video{}, translate(err)
	}
	return m.toDomain(), nil
}

func (s *Store) VideoExists(ctx context.Context, id string) (bool, error) {
	return s.exists(ctx, &Video{}, id)
}

// ListVideos runs a count and a windowed select over the same predicate and
// reports the page metadata from both.
func (s *Store) ListVideos(ctx context.Context, q query.VideoQuery) (query.Page[domain.VideoRow], error) {
	base := func() *gorm.DB {
		return s.db.WithContext(ctx).Model(&Video{}).Scopes(filterScope(q.Filter))
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return query.Page[domain.VideoRow]{}, err
	}

	var videos []Video
	err := base().
		Preload("Owner").
		Scopes(sortScope(q.Sort), pageScope(q.Page)).
		Find(&videos).Error
	if err != nil {
		return query.Page[domain.VideoRow]{}, err
	}

	var likes map[uint64]int64
	if q.WithLikeCounts {
		ids := make([]uint64, 0, len(videos))
		for _, v := range videos {
			ids = append(ids, v.ID)
		}
		if likes, err = s.countLikes(ctx, domain.LikeVideo, ids); err != nil {
			return query.Page[domain.VideoRow]{}, err
		}
	}

	rows := make([]domain.VideoRow, 0, len(videos))
	for _, v := range videos {
		row := domain.VideoRow{Video: v.toDomain()}
		if q.WithLikeCounts {
			row.Counts = domain.CountBag{domain.CountLikes: likes[v.ID]}
		}
		rows = append(rows, row)
	}
	return query.NewPage(rows, total, q.Page), nil
}

func (s *Store) IncrementViews(ctx context.Context, id string) (domain.Video, error) {
	n := parseID(id)
	if n == 0 {
		return domain.Video{}, domain.ErrNotFound
	}
	res := incrementViews(s.db.WithContext(ctx), n)
	if res.Error != nil {
		return domain.Video{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.Video{}, domain.ErrNotFound
	}
	return s.FindVideoByID(ctx, id)
}

func (s *Store) RecordWatch(ctx context.Context, userID, videoID string, at time.Time) error {
	entry := WatchHistory{UserID: parseID(userID), VideoID: parseID(videoID), WatchedAt: at}
	return s.db.WithContext(ctx).Clauses(watchUpsert()).Create(&entry).Error
}

func (s *Store) UpdateVideo(ctx context.Context, id, ownerID string, p domain.VideoPatch) (domain.Video, error) {
	n, owner := parseID(id), parseID(ownerID)

	updates := map[string]interface{}{}
	if p.Title != nil {
		updates["title"] = *p.Title
	}
	if p.Description != nil {
		updates["description"] = *p.Description
	}
	if p.Thumbnail != nil {
		updates["thumbnail_url"] = p.Thumbnail.URL
		updates["thumbnail_public_id"] = p.Thumbnail.PublicID
	}
	if p.IsPublished != nil {
		updates["is_published"] = *p.IsPublished
	}

	if len(updates) > 0 {
		err := s.db.WithContext(ctx).Model(&Video{}).
			Where("id = ? AND owner_id = ?", n, owner).
			Updates(updates).Error
		if err != nil {
			return domain.Video{}, translate(err)
		}
	}

	var m Video
	err := s.db.WithContext(ctx).Preload("Owner").
		Where("id = ? AND owner_id = ?", n, owner).
		First(&m).Error
	if err != nil {
		return domain.Video{}, translate(err)
	}
	return m.toDomain(), nil
}

// DeleteVideo removes the video and everything hanging off it in one
// transaction.
func (s *Store) DeleteVideo(ctx context.Context, id, ownerID string) error {
	n, owner := parseID(id), parseID(ownerID)
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND owner_id = ?", n, owner).Delete(&Video{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		commentIDs := tx.Model(&Comment{}).Select("id").Where("video_id = ?", n)
		if err := tx.Where("target_kind = ? AND target_id IN (?)", string(domain.LikeComment), commentIDs).Delete(&Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", n).Delete(&Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("target_kind = ? AND target_id = ?", string(domain.LikeVideo), n).Delete(&Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", n).Delete(&WatchHistory{}).Error; err != nil {
			return err
		}
		return tx.Where("video_id = ?", n).Delete(&PlaylistVideo{}).Error
	})
}
