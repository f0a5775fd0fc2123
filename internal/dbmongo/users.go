package dbmongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"viztube/internal/domain"
)

func (s *Store) CreateUser(ctx context.Context, rec domain.UserRecord) (domain.UserRecord, error) {
	now := s.now()
	doc := userDoc{
		ID:           primitive.NewObjectID(),
		Username:     rec.Username,
		Email:        rec.Email,
		Fullname:     rec.Fullname,
		Avatar:       rec.Avatar,
		CoverImage:   rec.CoverImage,
		Password:     rec.PasswordHash,
		RefreshToken: rec.RefreshToken,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := s.col(colUsers).InsertOne(ctx, doc); err != nil {
		return domain.UserRecord{}, translate(err)
	}
	return doc.record(), nil
}

func (s *Store) FindUserByID(ctx context.Context, id string) (domain.UserRecord, error) {
	o := oid(id)
	if o.IsZero() {
		return domain.UserRecord{}, domain.ErrNotFound
	}
	var u userDoc
	if err := s.col(colUsers).FindOne(ctx, bson.D{{Key: "_id", Value: o}}).Decode(&u); err != nil {
		return domain.UserRecord{}, translate(err)
	}
	return u.record(), nil
}

// FindUserByLogin matches either identifier; an empty one is ignored.
func (s *Store) FindUserByLogin(ctx context.Context, username, email string) (domain.UserRecord, error) {
	or := bson.A{}
	if username != "" {
		or = append(or, bson.D{{Key: "username", Value: username}})
	}
	if email != "" {
		or = append(or, bson.D{{Key: "email", Value: email}})
	}
	if len(or) == 0 {
		return domain.UserRecord{}, domain.ErrNotFound
	}
	var u userDoc
	if err := s.col(colUsers).FindOne(ctx, bson.D{{Key: "$or", Value: or}}).Decode(&u); err != nil {
		return domain.UserRecord{}, translate(err)
	}
	return u.record(), nil
}

func (s *Store) UserExists(ctx context.Context, id string) (bool, error) {
	return s.existsByID(ctx, colUsers, id)
}

func (s *Store) FindChannel(ctx context.Context, username string) (domain.UserRow, error) {
	var docs []channelDoc
	if err := s.aggregate(ctx, colUsers, channelPipeline(username), &docs); err != nil {
		return domain.UserRow{}, err
	}
	if len(docs) == 0 {
		return domain.UserRow{}, domain.ErrNotFound
	}
	return domain.UserRow{User: docs[0].Doc.record(), Counts: domain.CountBag(docs[0].Count)}, nil
}

func (s *Store) UpdateUser(ctx context.Context, id string, p domain.UserPatch) (domain.UserRecord, error) {
	o := oid(id)
	if o.IsZero() {
		return domain.UserRecord{}, domain.ErrNotFound
	}

	set := bson.D{{Key: "updatedAt", Value: s.now()}}
	add := func(field string, v *string) {
		if v != nil {
			set = append(set, bson.E{Key: field, Value: *v})
		}
	}
	add("fullname", p.Fullname)
	add("email", p.Email)
	add("username", p.Username)
	add("avatar", p.Avatar)
	add("coverImage", p.CoverImage)
	add("password", p.PasswordHash)
	add("refreshToken", p.RefreshToken)

	var u userDoc
	err := s.col(colUsers).FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: o}},
		bson.D{{Key: "$set", Value: set}},
		afterUpdate(),
	).Decode(&u)
	if err != nil {
		return domain.UserRecord{}, translate(err)
	}
	return u.record(), nil
}

func (s *Store) IsSubscribed(ctx context.Context, subscriberID, channelID string) (bool, error) {
	return s.exists(ctx, colSubscriptions, bson.D{
		{Key: "subscriber", Value: oid(subscriberID)},
		{Key: "channel", Value: oid(channelID)},
	})
}

func (s *Store) WatchHistory(ctx context.Context, userID string) ([]domain.HistoryRow, error) {
	var docs []videoRefDoc
	if err := s.aggregate(ctx, colHistory, historyPipeline(oid(userID)), &docs); err != nil {
		return nil, err
	}
	rows := make([]domain.HistoryRow, 0, len(docs))
	for _, d := range docs {
		if len(d.VideoInfo) == 0 {
			continue
		}
		rows = append(rows, domain.HistoryRow{Video: d.VideoInfo[0].row().Video, WatchedAt: d.WatchedAt})
	}
	return rows, nil
}

// RecordWatch keeps one entry per (user, video); a rewatch moves it to now.
func (s *Store) RecordWatch(ctx context.Context, userID, videoID string, at time.Time) error {
	_, err := s.col(colHistory).UpdateOne(ctx,
		bson.D{{Key: "user", Value: oid(userID)}, {Key: "video", Value: oid(videoID)}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "watchedAt", Value: at.UTC()}}}},
		options.Update().SetUpsert(true),
	)
	if errors.Is(translate(err), domain.ErrDuplicate) {
		// lost an upsert race with the same key; the other writer set watchedAt
		return nil
	}
	return err
}
