package dbmysql

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"viztube/internal/domain"
	"viztube/internal/query"
)

// Store implements every repository port on top of GORM.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// translate maps GORM sentinel errors onto the store contract. It relies on
// gorm.Config.TranslateError for duplicate keys.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrDuplicate
	}
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user text match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// filterScope translates a VideoFilter. Both sides of the LIKE are lowered so
// the match stays case-insensitive under a binary collation.
func filterScope(f query.VideoFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.PublicOnly() {
			db = db.Where("videos.is_published = ?", true)
		}
		if f.OwnerID != "" {
			db = db.Where("videos.owner_id = ?", parseID(f.OwnerID))
		}
		if f.Text != "" {
			pattern := "%" + escapeLike(f.Text) + "%"
			db = db.Where("(LOWER(videos.title) LIKE LOWER(?) OR LOWER(videos.description) LIKE LOWER(?))", pattern, pattern)
		}
		return db
	}
}

var sortColumns = map[query.SortField]string{
	query.SortCreatedAt: "created_at",
	query.SortUpdatedAt: "updated_at",
	query.SortViews:     "views",
	query.SortTitle:     "title",
}

// sortScope orders by the resolved field with id as a stable tiebreak.
func sortScope(s query.Sort) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		col, ok := sortColumns[s.Field]
		if !ok {
			col = "created_at"
		}
		return db.
			Order(clause.OrderByColumn{Column: clause.Column{Table: "videos", Name: col}, Desc: !s.Ascending}).
			Order(clause.OrderByColumn{Column: clause.Column{Table: "videos", Name: "id"}, Desc: !s.Ascending})
	}
}

func pageScope(p query.PageRequest) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		p = query.NewPageRequest(p.Page, p.Limit)
		return db.Offset(int(p.Offset())).Limit(int(p.Limit))
	}
}

// incrementViews is a single atomic UPDATE; UpdateColumn leaves updated_at
// alone.
func incrementViews(db *gorm.DB, id uint64) *gorm.DB {
	return db.Model(&Video{}).Where("id = ?", id).UpdateColumn("views", gorm.Expr("views + ?", 1))
}

// watchUpsert turns a second watch of the same video into a timestamp update.
func watchUpsert() clause.OnConflict {
	return clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"watched_at"}),
	}
}

func (s *Store) countLikes(ctx context.Context, kind domain.LikeKind, ids []uint64) (map[uint64]int64, error) {
	out := make(map[uint64]int64, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []struct {
		TargetID uint64
		N        int64
	}
	err := s.db.WithContext(ctx).Model(&Like{}).
		Select("target_id, COUNT(*) AS n").
		Where("target_kind = ? AND target_id IN ?", string(kind), ids).
		Group("target_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.TargetID] = r.N
	}
	return out, nil
}

func (s *Store) exists(ctx context.Context, model interface{}, id string) (bool, error) {
	n := parseID(id)
	if n == 0 {
		return false, nil
	}
	var count int64
	if err := s.db.WithContext(ctx).Model(model).Where("id = ?", n).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
