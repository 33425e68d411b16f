package utils

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultQueryTimeout is the default timeout for MongoDB queries
const DefaultQueryTimeout = 10 * time.Second

// FindOneWithTimeout performs a MongoDB FindOne operation with timeout
func FindOneWithTimeout(ctx context.Context, collection *mongo.Collection, filter bson.M, result interface{}, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return collection.FindOne(ctx, filter).Decode(result)
}

// FindAllWithTimeout runs Find and decodes every document into results.
// The timeout covers both the query and the cursor iteration.
func FindAllWithTimeout(ctx context.Context, collection *mongo.Collection, filter bson.M, results interface{}, timeout time.Duration, opts ...*options.FindOptions) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, filter, opts...)
	if err != nil {
		return err
	}
	return cursor.All(ctx, results)
}

// UpsertOneWithTimeout performs a MongoDB UpdateOne operation with upsert and timeout
func UpsertOneWithTimeout(ctx context.Context, collection *mongo.Collection, filter bson.M, update bson.M, timeout time.Duration) (*mongo.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
}

// InsertOneWithTimeout performs a MongoDB InsertOne operation with timeout
func InsertOneWithTimeout(ctx context.Context, collection *mongo.Collection, document interface{}, timeout time.Duration) (*mongo.InsertOneResult, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return collection.InsertOne(ctx, document)
}

// DeleteOneWithTimeout performs a MongoDB DeleteOne operation with timeout
func DeleteOneWithTimeout(ctx context.Context, collection *mongo.Collection, filter bson.M, timeout time.Duration) (*mongo.DeleteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return collection.DeleteOne(ctx, filter)
}
