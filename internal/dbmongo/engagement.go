package dbmongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"viztube/internal/domain"
	"viztube/internal/query"
)

// ---- comments ----

func (s *Store) ListComments(ctx context.Context, videoID string, page query.PageRequest) (query.Page[domain.Comment], error) {
	var res []facetResult[joinedComment]
	if err := s.aggregate(ctx, colComments, commentListPipeline(oid(videoID), page), &res); err != nil {
		return query.Page[domain.Comment]{}, err
	}
	if len(res) == 0 {
		return query.NewPage([]domain.Comment{}, 0, page), nil
	}
	docs := make([]domain.Comment, 0, len(res[0].Docs))
	for _, d := range res[0].Docs {
		docs = append(docs, d.Doc.toDomain(firstOwner(d.OwnerInfo)))
	}
	return query.NewPage(docs, res[0].total(), page), nil
}

func (s *Store) CreateComment(ctx context.Context, c domain.Comment) (domain.Comment, error) {
	now := s.now()
	doc := commentDoc{
		ID:        primitive.NewObjectID(),
		Content:   c.Content,
		Video:     oid(c.VideoID),
		Owner:     oid(c.OwnerID),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.col(colComments).InsertOne(ctx, doc); err != nil {
		return domain.Comment{}, translate(err)
	}
	return doc.toDomain(s.ownerOf(ctx, c.OwnerID)), nil
}

func (s *Store) FindCommentByID(ctx context.Context, id string) (domain.Comment, error) {
	var doc commentDoc
	if err := s.col(colComments).FindOne(ctx, bson.D{{Key: "_id", Value: oid(id)}}).Decode(&doc); err != nil {
		return domain.Comment{}, translate(err)
	}
	return doc.toDomain(nil), nil
}

func (s *Store) UpdateComment(ctx context.Context, id, ownerID, content string) (domain.Comment, error) {
	var doc commentDoc
	err := s.col(colComments).FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid(id)}, {Key: "owner", Value: oid(ownerID)}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "content", Value: content}, {Key: "updatedAt", Value: s.now()}}}},
		afterUpdate(),
	).Decode(&doc)
	if err != nil {
		return domain.Comment{}, translate(err)
	}
	return doc.toDomain(nil), nil
}

func (s *Store) DeleteComment(ctx context.Context, id, ownerID string) error {
	return s.deleteOwned(ctx, colComments, domain.LikeComment, id, ownerID)
}

// deleteOwned removes an owned document and the likes pointing at it.
func (s *Store) deleteOwned(ctx context.Context, col string, kind domain.LikeKind, id, ownerID string) error {
	o := oid(id)
	res, err := s.col(col).DeleteOne(ctx, bson.D{{Key: "_id", Value: o}, {Key: "owner", Value: oid(ownerID)}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	_, err = s.col(colLikes).DeleteMany(ctx, bson.D{{Key: "kind", Value: string(kind)}, {Key: "target", Value: o}})
	return err
}

// ---- tweets ----

func (s *Store) CreateTweet(ctx context.Context, t domain.Tweet) (domain.Tweet, error) {
	now := s.now()
	doc := tweetDoc{ID: primitive.NewObjectID(), Content: t.Content, Owner: oid(t.OwnerID), CreatedAt: now, UpdatedAt: now}
	if _, err := s.col(colTweets).InsertOne(ctx, doc); err != nil {
		return domain.Tweet{}, translate(err)
	}
	return doc.toDomain(nil), nil
}

func (s *Store) ListTweetsByUser(ctx context.Context, userID string) ([]domain.TweetRow, error) {
	var docs []joinedTweet
	if err := s.aggregate(ctx, colTweets, tweetListPipeline(oid(userID)), &docs); err != nil {
		return nil, err
	}
	rows := make([]domain.TweetRow, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, domain.TweetRow{Tweet: d.Doc.toDomain(firstOwner(d.OwnerInfo)), Counts: domain.CountBag(d.Count)})
	}
	return rows, nil
}

func (s *Store) FindTweetByID(ctx context.Context, id string) (domain.Tweet, error) {
	var doc tweetDoc
	if err := s.col(colTweets).FindOne(ctx, bson.D{{Key: "_id", Value: oid(id)}}).Decode(&doc); err != nil {
		return domain.Tweet{}, translate(err)
	}
	return doc.toDomain(nil), nil
}

func (s *Store) UpdateTweet(ctx context.Context, id, ownerID, content string) (domain.Tweet, error) {
	var doc tweetDoc
	err := s.col(colTweets).FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid(id)}, {Key: "owner", Value: oid(ownerID)}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "content", Value: content}, {Key: "updatedAt", Value: s.now()}}}},
		afterUpdate(),
	).Decode(&doc)
	if err != nil {
		return domain.Tweet{}, translate(err)
	}
	return doc.toDomain(nil), nil
}

func (s *Store) DeleteTweet(ctx context.Context, id, ownerID string) error {
	return s.deleteOwned(ctx, colTweets, domain.LikeTweet, id, ownerID)
}

// ---- likes ----

var likeCollections = map[domain.LikeKind]string{
	domain.LikeVideo:   colVideos,
	domain.LikeComment: colComments,
	domain.LikeTweet:   colTweets,
}

func (s *Store) LikeTargetExists(ctx context.Context, t domain.LikeTarget) (bool, error) {
	col, ok := likeCollections[t.Kind]
	if !ok {
		return false, nil
	}
	return s.existsByID(ctx, col, t.ID)
}

func likeKey(userID string, t domain.LikeTarget) bson.D {
	return bson.D{
		{Key: "likedBy", Value: oid(userID)},
		{Key: "kind", Value: string(t.Kind)},
		{Key: "target", Value: oid(t.ID)},
	}
}

func (s *Store) DeleteLike(ctx context.Context, userID string, t domain.LikeTarget) (bool, error) {
	res, err := s.col(colLikes).DeleteOne(ctx, likeKey(userID, t))
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// CreateLike relies on the unique (likedBy, kind, target) index.
func (s *Store) CreateLike(ctx context.Context, userID string, t domain.LikeTarget) error {
	doc := likeDoc{
		ID:        primitive.NewObjectID(),
		LikedBy:   oid(userID),
		Kind:      string(t.Kind),
		Target:    oid(t.ID),
		CreatedAt: s.now(),
	}
	_, err := s.col(colLikes).InsertOne(ctx, doc)
	return translate(err)
}

func (s *Store) LikedVideos(ctx context.Context, userID string) ([]domain.Video, error) {
	var docs []videoRefDoc
	if err := s.aggregate(ctx, colLikes, likedVideosPipeline(oid(userID)), &docs); err != nil {
		return nil, err
	}
	out := make([]domain.Video, 0, len(docs))
	for _, d := range docs {
		if len(d.VideoInfo) == 0 {
			continue
		}
		out = append(out, d.VideoInfo[0].row().Video)
	}
	return out, nil
}

// ---- subscriptions ----

func subscriptionKey(subscriberID, channelID string) bson.D {
	return bson.D{{Key: "subscriber", Value: oid(subscriberID)}, {Key: "channel", Value: oid(channelID)}}
}

func (s *Store) DeleteSubscription(ctx context.Context, subscriberID, channelID string) (bool, error) {
	res, err := s.col(colSubscriptions).DeleteOne(ctx, subscriptionKey(subscriberID, channelID))
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (s *Store) CreateSubscription(ctx context.Context, subscriberID, channelID string) error {
	doc := subscriptionDoc{
		ID:         primitive.NewObjectID(),
		Subscriber: oid(subscriberID),
		Channel:    oid(channelID),
		CreatedAt:  s.now(),
	}
	_, err := s.col(colSubscriptions).InsertOne(ctx, doc)
	return translate(err)
}

func (s *Store) listChannels(ctx context.Context, matchField, userField, id string) ([]domain.ChannelRow, error) {
	var docs []channelDoc
	if err := s.aggregate(ctx, colSubscriptions, channelListPipeline(matchField, userField, oid(id)), &docs); err != nil {
		return nil, err
	}
	rows := make([]domain.ChannelRow, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, domain.ChannelRow{Channel: d.Doc.summary(), Counts: domain.CountBag(d.Count)})
	}
	return rows, nil
}

func (s *Store) ListSubscribers(ctx context.Context, channelID string) ([]domain.ChannelRow, error) {
	return s.listChannels(ctx, "channel", "subscriber", channelID)
}

func (s *Store) ListSubscribedChannels(ctx context.Context, subscriberID string) ([]domain.ChannelRow, error) {
	return s.listChannels(ctx, "subscriber", "channel", subscriberID)
}
