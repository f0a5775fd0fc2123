package dbmongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"viztube/internal/domain"
	"viztube/internal/query"
)

func (s *Store) CreateVideo(ctx context.Context, v domain.Video) (domain.Video, error) {
	doc := videoDocFrom(v)
	doc.ID = primitive.NewObjectID()
	doc.CreatedAt = s.now()
	doc.UpdatedAt = doc.CreatedAt
	if _, err := s.col(colVideos).InsertOne(ctx, doc); err != nil {
		return domain.Video{}, translate(err)
	}
	return doc.toDomain(nil), nil
}

func (s *Store) FindVideoByID(ctx context.Context, id string) (domain.Video, error) {
	o := oid(id)
	if o.IsZero() {
		return domain.Video{}, domain.ErrNotFound
	}
	var docs []joinedVideo
	if err := s.aggregate(ctx, colVideos, videoByIDPipeline(o), &docs); err != nil {
		return domain.Video{}, err
	}
	if len(docs) == 0 {
		return domain.Video{}, domain.ErrNotFound
	}
	return docs[0].row().Video, nil
}

func (s *Store) VideoExists(ctx context.Context, id string) (bool, error) {
	return s.existsByID(ctx, colVideos, id)
}

func (s *Store) ListVideos(ctx context.Context, q query.VideoQuery) (query.Page[domain.VideoRow], error) {
	var res []facetResult[joinedVideo]
	if err := s.aggregate(ctx, colVideos, videoListPipeline(q), &res); err != nil {
		return query.Page[domain.VideoRow]{}, err
	}
	if len(res) == 0 {
		return query.NewPage([]domain.VideoRow{}, 0, q.Page), nil
	}
	rows := make([]domain.VideoRow, 0, len(res[0].Docs))
	for _, d := range res[0].Docs {
		rows = append(rows, d.row())
	}
	return query.NewPage(rows, res[0].total(), q.Page), nil
}

// IncrementViews is a single $inc; concurrent viewers never lose a count.
func (s *Store) IncrementViews(ctx context.Context, id string) (domain.Video, error) {
	o := oid(id)
	if o.IsZero() {
		return domain.Video{}, domain.ErrNotFound
	}
	res, err := s.col(colVideos).UpdateOne(ctx,
		bson.D{{Key: "_id", Value: o}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "views", Value: 1}}}},
	)
	if err != nil {
		return domain.Video{}, err
	}
	if res.MatchedCount == 0 {
		return domain.Video{}, domain.ErrNotFound
	}
	return s.FindVideoByID(ctx, id)
}

func (s *Store) UpdateVideo(ctx context.Context, id, ownerID string, p domain.VideoPatch) (domain.Video, error) {
	set := bson.D{{Key: "updatedAt", Value: s.now()}}
	if p.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *p.Title})
	}
	if p.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *p.Description})
	}
	if p.Thumbnail != nil {
		set = append(set, bson.E{Key: "thumbnail", Value: mediaDoc{URL: p.Thumbnail.URL, PublicID: p.Thumbnail.PublicID}})
	}
	if p.IsPublished != nil {
		set = append(set, bson.E{Key: "isPublished", Value: *p.IsPublished})
	}

	res, err := s.col(colVideos).UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid(id)}, {Key: "owner", Value: oid(ownerID)}},
		bson.D{{Key: "$set", Value: set}},
	)
	if err != nil {
		return domain.Video{}, translate(err)
	}
	if res.MatchedCount == 0 {
		return domain.Video{}, domain.ErrNotFound
	}
	return s.FindVideoByID(ctx, id)
}

// DeleteVideo removes the video first so nothing new can reference it, then
// its comments, every like on it or its comments, history and playlist slots.
func (s *Store) DeleteVideo(ctx context.Context, id, ownerID string) error {
	o := oid(id)
	res, err := s.col(colVideos).DeleteOne(ctx, bson.D{{Key: "_id", Value: o}, {Key: "owner", Value: oid(ownerID)}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}

	commentIDs, err := s.col(colComments).Distinct(ctx, "_id", bson.D{{Key: "video", Value: o}})
	if err != nil {
		return err
	}
	if len(commentIDs) > 0 {
		_, err = s.col(colLikes).DeleteMany(ctx, bson.D{
			{Key: "kind", Value: string(domain.LikeComment)},
			{Key: "target", Value: bson.D{{Key: "$in", Value: commentIDs}}},
		})
		if err != nil {
			return err
		}
	}
	if _, err := s.col(colComments).DeleteMany(ctx, bson.D{{Key: "video", Value: o}}); err != nil {
		return err
	}
	_, err = s.col(colLikes).DeleteMany(ctx, bson.D{{Key: "kind", Value: string(domain.LikeVideo)}, {Key: "target", Value: o}})
	if err != nil {
		return err
	}
	if _, err := s.col(colHistory).DeleteMany(ctx, bson.D{{Key: "video", Value: o}}); err != nil {
		return err
	}
	_, err = s.col(colPlaylists).UpdateMany(ctx,
		bson.D{{Key: "videos", Value: o}},
		bson.D{{Key: "$pull", Value: bson.D{{Key: "videos", Value: o}}}},
	)
	return err
}
