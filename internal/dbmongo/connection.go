// Package dbmongo is the document-store backend: every repository port on
// aggregation pipelines, plus GridFS media storage.
package dbmongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"viztube/internal/config"
	"viztube/internal/logging"
)

const mediaBucket = "media_files"

type MongoClient struct {
	Client   *mongo.Client
	Database *mongo.Database
	GridFS   *gridfs.Bucket
}

// NewMongoConnection connects, pings and makes sure the unique indexes the
// toggles depend on exist before any request is served.
func NewMongoConnection(c *config.Config) (*MongoClient, error) {
	uri := c.GetMongoURI()
	clientOptions := options.Client().ApplyURI(uri)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	database := client.Database(c.MongoDB.Database)
	bucket, err := gridfs.NewBucket(database, options.GridFSBucket().SetName(mediaBucket))
	if err != nil {
		return nil, fmt.Errorf("failed to create GridFSBucket: %w", err)
	}

	if err := EnsureIndexes(ctx, database); err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	logging.Info().Str("host", c.MongoDB.Host).Str("database", c.MongoDB.Database).Msg("connected to MongoDB")
	return &MongoClient{
		Client:   client,
		Database: database,
		GridFS:   bucket,
	}, nil
}

func (mc *MongoClient) Close(ctx context.Context) error {
	return mc.Client.Disconnect(ctx)
}

// indexPlan lists the indexes per collection.
func indexPlan() map[string][]mongo.IndexModel {
	unique := func(keys bson.D) mongo.IndexModel {
		return mongo.IndexModel{Keys: keys, Options: options.Index().SetUnique(true)}
	}
	plain := func(keys bson.D) mongo.IndexModel {
		return mongo.IndexModel{Keys: keys}
	}
	return map[string][]mongo.IndexModel{
		colUsers: {
			unique(bson.D{{Key: "username", Value: 1}}),
			unique(bson.D{{Key: "email", Value: 1}}),
		},
		colVideos: {
			plain(bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}}),
			plain(bson.D{{Key: "isPublished", Value: 1}, {Key: "createdAt", Value: -1}}),
		},
		colComments: {
			plain(bson.D{{Key: "video", Value: 1}, {Key: "_id", Value: -1}}),
		},
		colTweets: {
			plain(bson.D{{Key: "owner", Value: 1}, {Key: "_id", Value: -1}}),
		},
		colLikes: {
			unique(bson.D{{Key: "likedBy", Value: 1}, {Key: "kind", Value: 1}, {Key: "target", Value: 1}}),
			plain(bson.D{{Key: "kind", Value: 1}, {Key: "target", Value: 1}}),
		},
		colSubscriptions: {
			unique(bson.D{{Key: "subscriber", Value: 1}, {Key: "channel", Value: 1}}),
			plain(bson.D{{Key: "channel", Value: 1}}),
		},
		colPlaylists: {
			plain(bson.D{{Key: "owner", Value: 1}}),
		},
		colHistory: {
			unique(bson.D{{Key: "user", Value: 1}, {Key: "video", Value: 1}}),
		},
	}
}

func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for col, models := range indexPlan() {
		if _, err := db.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("%s: %w", col, err)
		}
	}
	return nil
}
