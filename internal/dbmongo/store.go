package dbmongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"viztube/internal/domain"
)

// Store implements every repository port on one database. Cascading deletes
// run as ordered single-document operations since transactions need a
// replica set.
type Store struct {
	db  *mongo.Database
	now func() time.Time
}

func NewStore(mc *MongoClient) *Store {
	return newStore(mc.Database)
}

func newStore(db *mongo.Database) *Store {
	return &Store{db: db, now: func() time.Time { return time.Now().UTC() }}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}

func (s *Store) col(name string) *mongo.Collection {
	return s.db.Collection(name)
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return domain.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return domain.ErrDuplicate
	}
	return err
}

// aggregate decodes every result of pipeline into out.
func (s *Store) aggregate(ctx context.Context, col string, pipeline mongo.Pipeline, out interface{}) error {
	cur, err := s.col(col).Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

func (s *Store) exists(ctx context.Context, col string, filter bson.D) (bool, error) {
	n, err := s.col(col).CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) existsByID(ctx context.Context, col, id string) (bool, error) {
	o := oid(id)
	if o.IsZero() {
		return false, nil
	}
	return s.exists(ctx, col, bson.D{{Key: "_id", Value: o}})
}

func (s *Store) ownerOf(ctx context.Context, id string) *domain.OwnerSummary {
	var u userDoc
	if err := s.col(colUsers).FindOne(ctx, bson.D{{Key: "_id", Value: oid(id)}}).Decode(&u); err != nil {
		return nil
	}
	o := u.summary()
	return &o
}

func afterUpdate() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}
