package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/microcuotas/app-solicitudes/internal/logging"
	"github.com/microcuotas/app-solicitudes/internal/models"
	"github.com/microcuotas/app-solicitudes/internal/observability"
	"github.com/microcuotas/app-solicitudes/internal/redisclient"
	"github.com/microcuotas/app-solicitudes/internal/utils"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const simulationParamsCacheKey = "config:simulation_params"

// SimulationParamsStore persists the simulation parameters document
type SimulationParamsStore interface {
	// Get returns nil without error when no parameters were stored
	Get(ctx context.Context) (*models.SimulationParams, error)
	Save(ctx context.Context, params models.SimulationParams) error
}

// MongoSimulationParamsStore keeps the parameters in the config collection
type MongoSimulationParamsStore struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func NewMongoSimulationParamsStore(db *mongo.Database, collection string) *MongoSimulationParamsStore {
	return &MongoSimulationParamsStore{
		collection: db.Collection(collection),
		timeout:    utils.DefaultQueryTimeout,
	}
}

func (s *MongoSimulationParamsStore) Get(ctx context.Context) (*models.SimulationParams, error) {
	ctx, span := utils.TraceDatabaseFind(ctx, s.collection.Name(), "_id")
	defer span.End()

	var params models.SimulationParams
	err := utils.FindOneWithTimeout(ctx, s.collection, bson.M{"_id": models.SimulationParamsID}, &params, s.timeout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			observability.DatabaseOperations.WithLabelValues("find_config", "not_found").Inc()
			return nil, nil
		}
		observability.DatabaseOperations.WithLabelValues("find_config", "error").Inc()
		utils.RecordErrorInSpan(span, err, nil)
		return nil, fmt.Errorf("failed to read simulation params: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("find_config", "success").Inc()
	return &params, nil
}

func (s *MongoSimulationParamsStore) Save(ctx context.Context, params models.SimulationParams) error {
	ctx, span := utils.TraceDatabaseUpsert(ctx, s.collection.Name(), "_id")
	defer span.End()

	_, err := utils.UpsertOneWithTimeout(ctx, s.collection,
		bson.M{"_id": models.SimulationParamsID},
		bson.M{"$set": params},
		s.timeout)
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("upsert_config", "error").Inc()
		utils.RecordErrorInSpan(span, err, nil)
		return fmt.Errorf("failed to save simulation params: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("upsert_config", "success").Inc()
	return nil
}

// MemorySimulationParamsStore is the in-process SimulationParamsStore
type MemorySimulationParamsStore struct {
	mu     sync.RWMutex
	params *models.SimulationParams
}

func NewMemorySimulationParamsStore() *MemorySimulationParamsStore {
	return &MemorySimulationParamsStore{}
}

func (s *MemorySimulationParamsStore) Get(ctx context.Context) (*models.SimulationParams, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.params == nil {
		return nil, nil
	}
	cp := copyParams(*s.params)
	return &cp, nil
}

func (s *MemorySimulationParamsStore) Save(ctx context.Context, params models.SimulationParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := copyParams(params)
	s.params = &cp
	return nil
}

func copyParams(p models.SimulationParams) models.SimulationParams {
	intereses := make(map[string]float64, len(p.InteresesPorCuota))
	for k, v := range p.InteresesPorCuota {
		intereses[k] = v
	}
	p.InteresesPorCuota = intereses
	return p
}

// SimulationParamsService reads and maintains the simulation parameters
type SimulationParamsService struct {
	store    SimulationParamsStore
	cache    *redisclient.Client
	cacheTTL time.Duration
	logger   *logging.SafeLogger
	now      func() time.Time
}

// NewSimulationParamsService creates the service. cache may be nil.
func NewSimulationParamsService(store SimulationParamsStore, cache *redisclient.Client, cacheTTL time.Duration, logger *logging.SafeLogger) *SimulationParamsService {
	return &SimulationParamsService{
		store:    store,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger.Named("simulation_params"),
		now:      time.Now,
	}
}

// Get returns the stored parameters, or the defaults when none exist
func (s *SimulationParamsService) Get(ctx context.Context) (models.SimulationParams, error) {
	if params, ok := s.fromCache(ctx); ok {
		return params, nil
	}

	stored, err := s.store.Get(ctx)
	if err != nil {
		s.logger.Error("failed to load simulation params", zap.Error(err))
		return models.SimulationParams{}, err
	}

	params := models.DefaultSimulationParams()
	if stored != nil {
		params = *stored
		if params.InteresesPorCuota == nil {
			params.InteresesPorCuota = map[string]float64{}
		}
	}

	s.toCache(ctx, params)
	return params, nil
}

// Update validates and stores new parameters, stamping updatedAt
func (s *SimulationParamsService) Update(ctx context.Context, params models.SimulationParams) (models.SimulationParams, error) {
	if params.InteresesPorCuota == nil {
		params.InteresesPorCuota = map[string]float64{}
	}
	if err := params.Validate(); err != nil {
		return models.SimulationParams{}, err
	}

	now := s.now().UTC()
	params.UpdatedAt = &now

	if err := s.store.Save(ctx, params); err != nil {
		s.logger.Error("failed to save simulation params", zap.Error(err))
		return models.SimulationParams{}, err
	}

	s.invalidate(ctx)
	s.logger.Info("simulation params updated",
		zap.Int("min_cuotas", params.MinCuotas),
		zap.Int("max_cuotas", params.MaxCuotas),
		zap.Int64("min_monto", params.MinMonto),
		zap.Int64("max_monto", params.MaxMonto))
	return params, nil
}

func (s *SimulationParamsService) fromCache(ctx context.Context) (models.SimulationParams, bool) {
	if s.cache == nil {
		return models.SimulationParams{}, false
	}
	ctx, span := utils.TraceCacheGet(ctx, simulationParamsCacheKey)
	defer span.End()

	cached, err := s.cache.Get(ctx, simulationParamsCacheKey).Result()
	if err != nil {
		if err != redis.Nil {
			s.logger.Debug("simulation params cache read failed", zap.Error(err))
		}
		observability.CacheHits.WithLabelValues("simulation_params", "miss").Inc()
		return models.SimulationParams{}, false
	}

	var params models.SimulationParams
	if err := json.Unmarshal([]byte(cached), &params); err != nil {
		observability.CacheHits.WithLabelValues("simulation_params", "miss").Inc()
		return models.SimulationParams{}, false
	}
	if params.InteresesPorCuota == nil {
		params.InteresesPorCuota = map[string]float64{}
	}
	observability.CacheHits.WithLabelValues("simulation_params", "hit").Inc()
	return params, true
}

func (s *SimulationParamsService) toCache(ctx context.Context, params models.SimulationParams) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	ctx, span := utils.TraceCacheSet(ctx, simulationParamsCacheKey, s.cacheTTL)
	defer span.End()

	data, err := json.Marshal(params)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, simulationParamsCacheKey, string(data), s.cacheTTL).Err(); err != nil {
		s.logger.Debug("simulation params cache write failed", zap.Error(err))
	}
}

func (s *SimulationParamsService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	ctx, span := utils.TraceCacheInvalidation(ctx, simulationParamsCacheKey)
	defer span.End()

	if err := s.cache.Del(ctx, simulationParamsCacheKey).Err(); err != nil {
		s.logger.Warn("failed to invalidate simulation params cache", zap.Error(err))
	}
}
