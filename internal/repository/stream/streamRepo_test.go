package streamRepo

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) IStreamRepo {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	return New(nil, client)
}

func TestViewerCountLifecycle(t *testing.T) {
	repo := newTestRepo(t)

	count, err := repo.GetViewers(5)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count, "unknown stream reads as zero viewers")

	count, err = repo.IncrViewers(5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = repo.IncrViewers(5)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.DecrViewers(5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = repo.GetViewers(5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestViewerCountClampsAtZero(t *testing.T) {
	repo := newTestRepo(t)

	count, err := repo.DecrViewers(9)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	count, err = repo.GetViewers(9)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestViewerCountsAreIndependentPerStream(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.IncrViewers(1)
	require.NoError(t, err)

	count, err := repo.GetViewers(2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
