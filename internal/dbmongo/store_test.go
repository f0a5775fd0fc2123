package dbmongo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"viztube/internal/domain"
	"viztube/internal/query"
)

func duplicateKey() bson.D {
	return mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "E11000 duplicate key error"})
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(mongo.ErrNoDocuments), domain.ErrNotFound)
	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "dup"}}}
	assert.ErrorIs(t, translate(dup), domain.ErrDuplicate)
	other := errors.New("boom")
	assert.Equal(t, other, translate(other))
}

func TestStoreWithMockDeployment(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	videoID := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	mt.Run("create like reports duplicate", func(mt *mtest.T) {
		s := newStore(mt.DB)
		mt.AddMockResponses(duplicateKey())

		err := s.CreateLike(ctx, userID.Hex(), domain.LikeTarget{Kind: domain.LikeVideo, ID: videoID.Hex()})
		assert.ErrorIs(mt, err, domain.ErrDuplicate)
	})

	mt.Run("delete like reports whether a row went away", func(mt *mtest.T) {
		s := newStore(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)
		target := domain.LikeTarget{Kind: domain.LikeVideo, ID: videoID.Hex()}

		removed, err := s.DeleteLike(ctx, userID.Hex(), target)
		require.NoError(mt, err)
		assert.True(mt, removed)

		removed, err = s.DeleteLike(ctx, userID.Hex(), target)
		require.NoError(mt, err)
		assert.False(mt, removed)
	})

	mt.Run("increment views on a missing video", func(mt *mtest.T) {
		s := newStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		_, err := s.IncrementViews(ctx, videoID.Hex())
		assert.ErrorIs(mt, err, domain.ErrNotFound)
	})

	mt.Run("increment views returns the joined video", func(mt *mtest.T) {
		s := newStore(mt.DB)
		ns := mt.DB.Name() + "." + colVideos
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
				{Key: "_id", Value: videoID},
				{Key: "title", Value: "intro"},
				{Key: "views", Value: int64(8)},
				{Key: "isPublished", Value: true},
				{Key: "owner", Value: userID},
				{Key: "ownerInfo", Value: bson.A{bson.D{{Key: "_id", Value: userID}, {Key: "username", Value: "alice"}}}},
			}),
		)

		v, err := s.IncrementViews(ctx, videoID.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, int64(8), v.Views)
		require.NotNil(mt, v.Owner)
		assert.Equal(mt, "alice", v.Owner.Username)
	})

	mt.Run("list videos reads the count facet", func(mt *mtest.T) {
		s := newStore(mt.DB)
		ns := mt.DB.Name() + "." + colVideos
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "docs", Value: bson.A{
				bson.D{{Key: "_id", Value: videoID}, {Key: "title", Value: "v"}, {Key: "owner", Value: userID}},
			}},
			{Key: "total", Value: bson.A{bson.D{{Key: "n", Value: int32(12)}}}},
		}))

		page, err := s.ListVideos(ctx, query.VideoQuery{
			Filter: query.VideoFilter{Visibility: query.PublishedOnly},
			Sort:   query.DefaultSort,
			Page:   query.PageRequest{Page: 2, Limit: 5},
		})
		require.NoError(mt, err)
		assert.Equal(mt, int64(12), page.TotalDocs)
		assert.Equal(mt, int64(3), page.TotalPages)
		assert.True(mt, page.HasNextPage)
		require.Len(mt, page.Docs, 1)
		assert.Equal(mt, videoID.Hex(), page.Docs[0].Video.ID)
	})

	mt.Run("add playlist video distinguishes missing and duplicate", func(mt *mtest.T) {
		s := newStore(mt.DB)
		playlistID := primitive.NewObjectID().Hex()

		// matched nothing, playlist exists: duplicate
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),
			mtest.CreateCursorResponse(0, mt.DB.Name()+"."+colPlaylists, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(1)}}),
		)
		assert.ErrorIs(mt, s.AddPlaylistVideo(ctx, playlistID, videoID.Hex()), domain.ErrDuplicate)

		// matched nothing, no playlist: not found
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),
			mtest.CreateCursorResponse(0, mt.DB.Name()+"."+colPlaylists, mtest.FirstBatch),
		)
		assert.ErrorIs(mt, s.AddPlaylistVideo(ctx, playlistID, videoID.Hex()), domain.ErrNotFound)
	})

	mt.Run("delete comment not owned", func(mt *mtest.T) {
		s := newStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := s.DeleteComment(ctx, primitive.NewObjectID().Hex(), userID.Hex())
		assert.ErrorIs(mt, err, domain.ErrNotFound)
	})

	mt.Run("find user by login with no identifiers", func(mt *mtest.T) {
		s := newStore(mt.DB)
		_, err := s.FindUserByLogin(ctx, "", "")
		assert.ErrorIs(mt, err, domain.ErrNotFound)
	})
}
