package dbmongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"viztube/internal/domain"
)

func (s *Store) CreatePlaylist(ctx context.Context, p domain.Playlist) (domain.Playlist, error) {
	now := s.now()
	doc := playlistDoc{
		ID:          primitive.NewObjectID(),
		Name:        p.Name,
		Description: p.Description,
		Owner:       oid(p.OwnerID),
		Videos:      []primitive.ObjectID{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := s.col(colPlaylists).InsertOne(ctx, doc); err != nil {
		return domain.Playlist{}, translate(err)
	}
	return doc.toDomain(), nil
}

func (s *Store) FindPlaylistByID(ctx context.Context, id string) (domain.Playlist, error) {
	var doc playlistDoc
	if err := s.col(colPlaylists).FindOne(ctx, bson.D{{Key: "_id", Value: oid(id)}}).Decode(&doc); err != nil {
		return domain.Playlist{}, translate(err)
	}
	return doc.toDomain(), nil
}

func (s *Store) PlaylistDetail(ctx context.Context, id string) (domain.PlaylistDetailRow, error) {
	var docs []playlistDetailDoc
	if err := s.aggregate(ctx, colPlaylists, playlistDetailPipeline(oid(id)), &docs); err != nil {
		return domain.PlaylistDetailRow{}, err
	}
	if len(docs) == 0 {
		return domain.PlaylistDetailRow{}, domain.ErrNotFound
	}
	d := docs[0]
	row := domain.PlaylistDetailRow{Playlist: d.Doc.toDomain(), Videos: make([]domain.Video, 0, len(d.Members))}
	if o := firstOwner(d.OwnerInfo); o != nil {
		row.Owner = *o
	}
	for _, m := range d.Members {
		row.Videos = append(row.Videos, m.row().Video)
	}
	return row, nil
}

func (s *Store) ListPlaylistsByUser(ctx context.Context, userID string) ([]domain.PlaylistRow, error) {
	var docs []playlistSummaryDoc
	if err := s.aggregate(ctx, colPlaylists, playlistListPipeline(oid(userID)), &docs); err != nil {
		return nil, err
	}
	rows := make([]domain.PlaylistRow, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, domain.PlaylistRow{
			Playlist:   d.Doc.toDomain(),
			Counts:     domain.CountBag(d.Count),
			FirstThumb: d.FirstThumb,
		})
	}
	return rows, nil
}

// AddPlaylistVideo pushes only when the video is absent, so a concurrent
// duplicate add matches nothing and is reported as ErrDuplicate.
func (s *Store) AddPlaylistVideo(ctx context.Context, playlistID, videoID string) error {
	p, v := oid(playlistID), oid(videoID)
	res, err := s.col(colPlaylists).UpdateOne(ctx,
		bson.D{{Key: "_id", Value: p}, {Key: "videos", Value: bson.D{{Key: "$ne", Value: v}}}},
		bson.D{
			{Key: "$push", Value: bson.D{{Key: "videos", Value: v}}},
			{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: s.now()}}},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount > 0 {
		return nil
	}
	ok, err := s.existsByID(ctx, colPlaylists, playlistID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return domain.ErrDuplicate
}

func (s *Store) RemovePlaylistVideo(ctx context.Context, playlistID, videoID string) (bool, error) {
	p, v := oid(playlistID), oid(videoID)
	res, err := s.col(colPlaylists).UpdateOne(ctx,
		bson.D{{Key: "_id", Value: p}, {Key: "videos", Value: v}},
		bson.D{
			{Key: "$pull", Value: bson.D{{Key: "videos", Value: v}}},
			{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: s.now()}}},
		},
	)
	if err != nil {
		return false, err
	}
	if res.MatchedCount > 0 {
		return true, nil
	}
	ok, err := s.existsByID(ctx, colPlaylists, playlistID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, domain.ErrNotFound
	}
	return false, nil
}

func (s *Store) UpdatePlaylist(ctx context.Context, id, ownerID, name, description string) (domain.Playlist, error) {
	var doc playlistDoc
	err := s.col(colPlaylists).FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid(id)}, {Key: "owner", Value: oid(ownerID)}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "name", Value: name},
			{Key: "description", Value: description},
			{Key: "updatedAt", Value: s.now()},
		}}},
		afterUpdate(),
	).Decode(&doc)
	if err != nil {
		return domain.Playlist{}, translate(err)
	}
	return doc.toDomain(), nil
}

func (s *Store) DeletePlaylist(ctx context.Context, id, ownerID string) error {
	res, err := s.col(colPlaylists).DeleteOne(ctx, bson.D{{Key: "_id", Value: oid(id)}, {Key: "owner", Value: oid(ownerID)}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ---- dashboard ----

func (s *Store) ChannelStats(ctx context.Context, ownerID string) (domain.CountBag, error) {
	owner := oid(ownerID)

	var groups []map[string]interface{}
	if err := s.aggregate(ctx, colVideos, channelStatsPipeline(owner), &groups); err != nil {
		return nil, err
	}
	bag := domain.CountBag{}
	if len(groups) > 0 {
		for _, k := range []string{domain.CountVideos, domain.CountViews, domain.CountLikes} {
			bag[k] = asInt64(groups[0][k])
		}
	}

	subs, err := s.col(colSubscriptions).CountDocuments(ctx, bson.D{{Key: "channel", Value: owner}})
	if err != nil {
		return nil, err
	}
	bag[domain.CountSubscribers] = subs
	return bag, nil
}

// asInt64 widens the numeric types $sum may return.
func asInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int32:
		return int64(n)
	case int64:
		return n
	case float64:
		return int64(n)
	}
	return 0
}
