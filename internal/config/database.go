package config

import (
	"context"
	"strings"
	"time"

	"github.com/microcuotas/app-solicitudes/internal/logging"
	"github.com/microcuotas/app-solicitudes/internal/redisclient"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
	"go.uber.org/zap"
)

var (
	// MongoDB client
	MongoDB *mongo.Database
	// Redis client
	Redis *redisclient.Client
)

// InitMongoDB initializes the MongoDB connection
func InitMongoDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(AppConfig.MongoURI).
		SetMonitor(otelmongo.NewMonitor()).
		SetMaxPoolSize(50).
		SetMinPoolSize(5).
		SetMaxConnIdleTime(5 * time.Minute).
		SetRetryWrites(true).
		SetRetryReads(true)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		logging.Logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logging.Logger.Fatal("failed to ping MongoDB", zap.Error(err))
	}

	MongoDB = client.Database(AppConfig.MongoDatabase)

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer indexCancel()
	if err := EnsureSolicitudIndexes(indexCtx, MongoDB, AppConfig.SolicitudesCollection); err != nil {
		logging.Logger.Error("failed to ensure indexes on startup", zap.Error(err))
	}

	logging.Logger.Info("Connected to MongoDB",
		zap.String("uri", maskMongoURI(AppConfig.MongoURI)),
		zap.String("database", AppConfig.MongoDatabase),
	)
}

// InitRedis initializes the Redis connection. A failed ping is logged and the
// service keeps running without caches.
func InitRedis() {
	opts := &redis.Options{
		Addr:         AppConfig.RedisURI,
		Password:     AppConfig.RedisPassword,
		DB:           AppConfig.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	}
	if strings.HasPrefix(AppConfig.RedisURI, "redis://") || strings.HasPrefix(AppConfig.RedisURI, "rediss://") {
		parsed, err := redis.ParseURL(AppConfig.RedisURI)
		if err != nil {
			logging.Logger.Error("invalid REDIS_URI", zap.Error(err))
			return
		}
		opts.Addr = parsed.Addr
		opts.TLSConfig = parsed.TLSConfig
		if parsed.Password != "" {
			opts.Password = parsed.Password
		}
	}

	Redis = redisclient.NewClient(redis.NewClient(opts))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Redis.Ping(ctx).Err(); err != nil {
		logging.Logger.Error("failed to connect to Redis",
			zap.String("addr", opts.Addr),
			zap.Error(err))
		return
	}

	logging.Logger.Info("connected to Redis", zap.String("addr", opts.Addr))
}

// maskMongoURI hides credentials in a MongoDB URI
func maskMongoURI(uri string) string {
	at := strings.LastIndex(uri, "@")
	if at < 0 {
		return uri
	}
	scheme := "mongodb://"
	if strings.HasPrefix(uri, "mongodb+srv://") {
		scheme = "mongodb+srv://"
	}
	return scheme + "****:****@" + uri[at+1:]
}

// EnsureSolicitudIndexes creates the lookup indexes used by the uniqueness and
// recency checks and by the report listing.
func EnsureSolicitudIndexes(ctx context.Context, db *mongo.Database, collectionName string) error {
	logger := logging.Logger.Named("database")
	collection := db.Collection(collectionName)

	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "cuil", Value: 1}}, Options: options.Index().SetName("cuil_1")},
		{Keys: bson.D{{Key: "telefono", Value: 1}}, Options: options.Index().SetName("telefono_1")},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetName("email_1")},
		{Keys: bson.D{{Key: "timestamp", Value: -1}}, Options: options.Index().SetName("timestamp_-1")},
	}

	existing, err := listIndexNames(ctx, collection)
	if err != nil {
		logger.Error("failed to list indexes", zap.String("collection", collectionName), zap.Error(err))
		return err
	}

	for _, model := range models {
		name := *model.Options.Name
		if existing[name] {
			logger.Debug("index already exists", zap.String("collection", collectionName), zap.String("index", name))
			continue
		}

		if _, err := collection.Indexes().CreateOne(ctx, model); err != nil {
			// another instance may have created it concurrently
			if mongo.IsDuplicateKeyError(err) {
				logger.Info("index already exists (created by another instance)", zap.String("index", name))
				continue
			}
			logger.Error("failed to create index",
				zap.String("collection", collectionName),
				zap.String("index", name),
				zap.Error(err))
			return err
		}

		logger.Info("created index", zap.String("collection", collectionName), zap.String("index", name))
	}

	return nil
}

func listIndexNames(ctx context.Context, collection *mongo.Collection) (map[string]bool, error) {
	cursor, err := collection.Indexes().List(ctx)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	names := make(map[string]bool)
	for cursor.Next(ctx) {
		var index bson.M
		if err := cursor.Decode(&index); err != nil {
			continue
		}
		if name, ok := index["name"].(string); ok {
			names[name] = true
		}
	}
	return names, cursor.Err()
}
