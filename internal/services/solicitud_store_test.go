package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/microcuotas/app-solicitudes/internal/models"
	"github.com/microcuotas/app-solicitudes/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// exerciseSolicitudStore runs the behaviour every SolicitudStore must share
func exerciseSolicitudStore(t *testing.T, store SolicitudStore) {
	ctx := context.Background()

	first := &models.Solicitud{
		Nombre:   "Ana",
		Apellido: "Pérez",
		CUIL:     models.StringPtr("20303948091"),
		Telefono: models.StringPtr("1142681704"),
		Email:    models.StringPtr("ana@mail.com"),
		Estado:   models.EstadoAceptada,
	}
	firstID, err := store.Insert(ctx, first)
	require.NoError(t, err)
	require.NotEmpty(t, firstID)
	assert.Nil(t, first.Timestamp, "caller document must not be mutated")

	time.Sleep(5 * time.Millisecond)

	second := &models.Solicitud{
		CUIL:   models.StringPtr("27111111112"),
		Estado: models.EstadoRechazada,
	}
	secondID, err := store.Insert(ctx, second)
	require.NoError(t, err)

	t.Run("find by field", func(t *testing.T) {
		docs, err := store.FindByField(ctx, "cuil", "20303948091")
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, firstID, docs[0].ID)
		assert.Equal(t, "aceptada", docs[0].Data["estado"])
		assert.NotNil(t, docs[0].Data["timestamp"])
		_, hasID := docs[0].Data["_id"]
		assert.False(t, hasID)

		docs, err = store.FindByField(ctx, "email", "nobody@mail.com")
		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("missing fields are stored as null", func(t *testing.T) {
		docs, err := store.FindByField(ctx, "cuil", "27111111112")
		require.NoError(t, err)
		require.Len(t, docs, 1)
		v, present := docs[0].Data["telefono"]
		assert.True(t, present)
		assert.Nil(t, v)
	})

	t.Run("list newest first", func(t *testing.T) {
		docs, err := store.List(ctx, ListQuery{})
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, secondID, docs[0].ID)
		assert.Equal(t, firstID, docs[1].ID)
	})

	t.Run("list range", func(t *testing.T) {
		future := time.Now().Add(time.Hour)
		docs, err := store.List(ctx, ListQuery{From: &future})
		require.NoError(t, err)
		assert.Empty(t, docs)

		past := time.Now().Add(-time.Hour)
		docs, err = store.List(ctx, ListQuery{From: &past, To: &future})
		require.NoError(t, err)
		assert.Len(t, docs, 2)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, secondID))
		assert.ErrorIs(t, store.Delete(ctx, secondID), models.ErrSolicitudNotFound)
		assert.ErrorIs(t, store.Delete(ctx, ""), models.ErrInvalidSolicitudID)
		assert.ErrorIs(t, store.Delete(ctx, primitive.NewObjectID().Hex()), models.ErrSolicitudNotFound)

		docs, err := store.List(ctx, ListQuery{})
		require.NoError(t, err)
		assert.Len(t, docs, 1)
	})
}

func TestMemorySolicitudStore(t *testing.T) {
	exerciseSolicitudStore(t, NewMemorySolicitudStore())
}

func TestMongoSolicitudStore(t *testing.T) {
	db := testutil.StartMongo(t)
	exerciseSolicitudStore(t, NewMongoSolicitudStore(db, "clientes"))
}

func TestMemorySolicitudStore_SetError(t *testing.T) {
	store := NewMemorySolicitudStore()
	boom := errors.New("permission denied")
	store.SetError(boom)

	ctx := context.Background()
	_, err := store.Insert(ctx, &models.Solicitud{})
	assert.ErrorIs(t, err, boom)
	_, err = store.FindByField(ctx, "cuil", "1")
	assert.ErrorIs(t, err, boom)
	_, err = store.List(ctx, ListQuery{})
	assert.ErrorIs(t, err, boom)

	store.SetError(nil)
	_, err = store.Insert(ctx, &models.Solicitud{})
	assert.NoError(t, err)
}

func TestMemorySolicitudStore_CanceledContext(t *testing.T) {
	store := NewMemorySolicitudStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.FindByField(ctx, "cuil", "1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemorySolicitudStore_SeedSortsUntimestampedLast(t *testing.T) {
	store := NewMemorySolicitudStore()
	store.Seed("legacy", bson.M{"cuil": "20303948091"})
	store.Seed("dated", bson.M{"cuil": "20303948091", "timestamp": "2024-05-01T10:00:00Z"})

	docs, err := store.List(context.Background(), ListQuery{})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "dated", docs[0].ID)
	assert.Equal(t, "legacy", docs[1].ID)
	assert.Equal(t, 2, store.Len())

	got, ok := store.Get("legacy")
	require.True(t, ok)
	assert.Equal(t, "20303948091", got["cuil"])
}
