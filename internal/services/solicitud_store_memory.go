package services

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/microcuotas/app-solicitudes/internal/models"
	"github.com/microcuotas/app-solicitudes/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemorySolicitudStore keeps applications in process memory. Documents go
// through a BSON round trip so they look exactly like MongoDB reads.
// Used by the "memory" store backend and by tests.
type MemorySolicitudStore struct {
	mu    sync.RWMutex
	docs  map[string]bson.M
	order []string
	err   error
	now   func() time.Time
}

// NewMemorySolicitudStore creates an empty store
func NewMemorySolicitudStore() *MemorySolicitudStore {
	return &MemorySolicitudStore{
		docs: make(map[string]bson.M),
		now:  time.Now,
	}
}

// SetError makes every subsequent operation fail with err (nil clears it)
func (s *MemorySolicitudStore) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// SetClock overrides the timestamp source used by Insert
func (s *MemorySolicitudStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Seed stores a raw document under id, bypassing timestamp assignment.
// It lets callers load legacy records with arbitrary field encodings.
func (s *MemorySolicitudStore) Seed(id string, data bson.M) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.docs[id]; !exists {
		s.order = append(s.order, id)
	}
	s.docs[id] = copyDocument(data)
}

// Len returns the number of stored documents
func (s *MemorySolicitudStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// Get returns a copy of the document stored under id
func (s *MemorySolicitudStore) Get(id string) (bson.M, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		return nil, false
	}
	return copyDocument(doc), true
}

func (s *MemorySolicitudStore) Insert(ctx context.Context, doc *models.Solicitud) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}

	stored := *doc
	ts := s.now().UTC()
	stored.Timestamp = &ts

	raw, err := bson.Marshal(&stored)
	if err != nil {
		return "", fmt.Errorf("failed to encode solicitud: %w", err)
	}
	var data bson.M
	if err := bson.Unmarshal(raw, &data); err != nil {
		return "", fmt.Errorf("failed to decode solicitud: %w", err)
	}

	id := primitive.NewObjectID().Hex()
	s.docs[id] = data
	s.order = append(s.order, id)
	return id, nil
}

func (s *MemorySolicitudStore) FindByField(ctx context.Context, field string, value interface{}) ([]StoredDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.err != nil {
		return nil, s.err
	}

	var out []StoredDocument
	for _, id := range s.order {
		data := s.docs[id]
		if v, ok := data[field]; ok && reflect.DeepEqual(v, value) {
			out = append(out, StoredDocument{ID: id, Data: copyDocument(data)})
		}
	}
	return out, nil
}

func (s *MemorySolicitudStore) List(ctx context.Context, query ListQuery) ([]StoredDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.err != nil {
		return nil, s.err
	}

	type entry struct {
		doc StoredDocument
		ts  time.Time
		ok  bool
	}
	entries := make([]entry, 0, len(s.docs))
	for _, id := range s.order {
		data := s.docs[id]
		ts, ok := utils.ParseTimestamp(data["timestamp"])
		if query.From != nil && (!ok || ts.Before(*query.From)) {
			continue
		}
		if query.To != nil && (!ok || ts.After(*query.To)) {
			continue
		}
		entries = append(entries, entry{doc: StoredDocument{ID: id, Data: copyDocument(data)}, ts: ts, ok: ok})
	}

	// newest first; documents without a timestamp sort last
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].ok != entries[j].ok {
			return entries[i].ok
		}
		return entries[i].ts.After(entries[j].ts)
	})

	out := make([]StoredDocument, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.doc)
	}
	return out, nil
}

func (s *MemorySolicitudStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return models.ErrInvalidSolicitudID
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}

	if _, ok := s.docs[id]; !ok {
		return models.ErrSolicitudNotFound
	}
	delete(s.docs, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func copyDocument(data bson.M) bson.M {
	out := make(bson.M, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}
