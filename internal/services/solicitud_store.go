package services

import (
	"context"
	"fmt"
	"time"

	"github.com/microcuotas/app-solicitudes/internal/models"
	"github.com/microcuotas/app-solicitudes/internal/observability"
	"github.com/microcuotas/app-solicitudes/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StoredDocument is a raw application document with its id. Data is kept
// untyped because older records carry heterogeneous timestamp encodings.
type StoredDocument struct {
	ID   string
	Data bson.M
}

// ListQuery bounds a listing by server timestamp (inclusive). Nil means open.
type ListQuery struct {
	From *time.Time
	To   *time.Time
}

// SolicitudStore persists loan applications
type SolicitudStore interface {
	// Insert stores a new document, assigning its timestamp server-side
	Insert(ctx context.Context, doc *models.Solicitud) (string, error)
	// FindByField returns every document whose field equals value
	FindByField(ctx context.Context, field string, value interface{}) ([]StoredDocument, error)
	// List returns documents ordered by timestamp, newest first
	List(ctx context.Context, query ListQuery) ([]StoredDocument, error)
	// Delete removes a document by id
	Delete(ctx context.Context, id string) error
}

// MongoSolicitudStore is the MongoDB-backed SolicitudStore
type MongoSolicitudStore struct {
	collection *mongo.Collection
	timeout    time.Duration
	now        func() time.Time
}

// NewMongoSolicitudStore creates a store over db.collection
func NewMongoSolicitudStore(db *mongo.Database, collection string) *MongoSolicitudStore {
	return &MongoSolicitudStore{
		collection: db.Collection(collection),
		timeout:    utils.DefaultQueryTimeout,
		now:        time.Now,
	}
}

func (s *MongoSolicitudStore) Insert(ctx context.Context, doc *models.Solicitud) (string, error) {
	ctx, span := utils.TraceDatabaseInsert(ctx, s.collection.Name())
	defer span.End()

	stored := *doc
	ts := s.now().UTC()
	stored.Timestamp = &ts

	result, err := utils.InsertOneWithTimeout(ctx, s.collection, &stored, s.timeout)
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("insert", "error").Inc()
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"operation": "insert"})
		return "", fmt.Errorf("failed to insert solicitud: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("insert", "success").Inc()

	id := formatID(result.InsertedID)
	utils.AddSpanAttribute(span, "db.inserted_id", id)
	return id, nil
}

func (s *MongoSolicitudStore) FindByField(ctx context.Context, field string, value interface{}) ([]StoredDocument, error) {
	ctx, span := utils.TraceDatabaseFind(ctx, s.collection.Name(), field)
	defer span.End()

	var raw []bson.M
	if err := utils.FindAllWithTimeout(ctx, s.collection, bson.M{field: value}, &raw, s.timeout); err != nil {
		observability.DatabaseOperations.WithLabelValues("find", "error").Inc()
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"field": field})
		return nil, fmt.Errorf("failed to query solicitudes by %s: %w", field, err)
	}
	observability.DatabaseOperations.WithLabelValues("find", "success").Inc()
	utils.AddSpanAttribute(span, "db.results", len(raw))

	return toStoredDocuments(raw), nil
}

func (s *MongoSolicitudStore) List(ctx context.Context, query ListQuery) ([]StoredDocument, error) {
	ctx, span := utils.TraceDatabaseFind(ctx, s.collection.Name(), "timestamp")
	defer span.End()

	filter := bson.M{}
	rng := bson.M{}
	if query.From != nil {
		rng["$gte"] = *query.From
	}
	if query.To != nil {
		rng["$lte"] = *query.To
	}
	if len(rng) > 0 {
		filter["timestamp"] = rng
	}

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	var raw []bson.M
	if err := utils.FindAllWithTimeout(ctx, s.collection, filter, &raw, s.timeout, opts); err != nil {
		observability.DatabaseOperations.WithLabelValues("list", "error").Inc()
		utils.RecordErrorInSpan(span, err, nil)
		return nil, fmt.Errorf("failed to list solicitudes: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("list", "success").Inc()
	utils.AddSpanAttribute(span, "db.results", len(raw))

	return toStoredDocuments(raw), nil
}

func (s *MongoSolicitudStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return models.ErrInvalidSolicitudID
	}

	ctx, span := utils.TraceDatabaseDelete(ctx, s.collection.Name())
	defer span.End()

	var key interface{} = id
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		key = oid
	}

	result, err := utils.DeleteOneWithTimeout(ctx, s.collection, bson.M{"_id": key}, s.timeout)
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("delete", "error").Inc()
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"id": id})
		return fmt.Errorf("failed to delete solicitud: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("delete", "success").Inc()

	if result.DeletedCount == 0 {
		return models.ErrSolicitudNotFound
	}
	return nil
}

func toStoredDocuments(raw []bson.M) []StoredDocument {
	docs := make([]StoredDocument, 0, len(raw))
	for _, m := range raw {
		id := formatID(m["_id"])
		delete(m, "_id")
		docs = append(docs, StoredDocument{ID: id, Data: m})
	}
	return docs
}

func formatID(v interface{}) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	case nil:
		return ""
	default:
		return fmt.Sprint(id)
	}
}
