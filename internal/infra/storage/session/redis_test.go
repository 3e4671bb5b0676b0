package session

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRepository_SaveGet(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	repo := NewRedisRepository(client, 10*time.Minute)
	ctx := context.Background()
	s := newTestSession()

	require.NoError(t, repo.Save(ctx, s))
	assert.True(t, mr.Exists("calendar_session:session-1"))
	assert.Equal(t, 10*time.Minute, mr.TTL("calendar_session:session-1"))

	got, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.Selection.DisplayedMonth, got.Selection.DisplayedMonth)
	assert.Equal(t, "15:00", got.Selection.SelectedTime.String())
	assert.Equal(t, "Mental Health Consultation", got.Selection.Service.Name)
}

func TestRedisRepository_Expired(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	repo := NewRedisRepository(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newTestSession()))
	mr.FastForward(2 * time.Minute)

	_, err := repo.Get(ctx, "session-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisRepository_GetExtendsTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	repo := NewRedisRepository(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newTestSession()))

	mr.FastForward(45 * time.Second)
	_, err := repo.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, time.Minute, mr.TTL("calendar_session:session-1"))

	mr.FastForward(45 * time.Second)
	_, err = repo.Get(ctx, "session-1")
	require.NoError(t, err)
}

func TestRedisRepository_CorruptedPayload(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	require.NoError(t, mr.Set("calendar_session:broken", "{not json"))

	repo := NewRedisRepository(client, time.Minute)
	_, err := repo.Get(context.Background(), "broken")
	assert.ErrorIs(t, err, ErrDecode)
}
