package swipeRepo

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwipedProfileIDsFromCache(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	// Warm the cache the way CreateSwipe does.
	require.NoError(t, client.SAdd(swipedProfilesKey(1), 20, 30).Err())

	repo := New(nil, client)

	ids, err := repo.GetSwipedProfileIDs(context.Background(), 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{20, 30}, ids)
}
